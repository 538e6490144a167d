package handler

import (
	"log/slog"
	"net/http"

	"locus/internal/delivery/http/response"
	domainerrors "locus/internal/domain/errors"
	"locus/internal/domain/service"
	"locus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

// ViewerHandlerParams holds dependencies for ViewerHandler, injected by Fx.
type ViewerHandlerParams struct {
	fx.In

	ViewerUC usecase.ViewerUsecase
	Document service.DocumentSource
	Logger   *slog.Logger
}

// ViewerHandler serves the reading session to the renderer
type ViewerHandler struct {
	viewerUC usecase.ViewerUsecase
	document service.DocumentSource
	logger   *slog.Logger
}

// NewViewerHandler is the constructor for ViewerHandler
func NewViewerHandler(params ViewerHandlerParams) *ViewerHandler {
	return &ViewerHandler{
		viewerUC: params.ViewerUC,
		document: params.Document,
		logger:   params.Logger,
	}
}

// GoToPageRequest represents the request body for jumping to a page
type GoToPageRequest struct {
	Page int `json:"page" validate:"required,min=1"`
}

// GetView returns the current view state
func (h *ViewerHandler) GetView(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.viewerUC.View(), "")
}

// NextPage turns forward one page
func (h *ViewerHandler) NextPage(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.viewerUC.Next(c.Request().Context()), "")
}

// PrevPage turns back one page
func (h *ViewerHandler) PrevPage(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.viewerUC.Prev(c.Request().Context()), "")
}

// GoToPage jumps to the requested page
func (h *ViewerHandler) GoToPage(c echo.Context) error {
	var req GoToPageRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid page input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	state, err := h.viewerUC.GoTo(c.Request().Context(), req.Page)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, state, "")
}

// GetRoute returns the path as GeoJSON, with the current position when known
func (h *ViewerHandler) GetRoute(c echo.Context) error {
	path := h.viewerUC.Route()
	if path.Len() == 0 {
		return domainerrors.ErrRouteUnavailable.WithDetails("route has not been loaded yet")
	}

	line := geojson.NewFeature(path.LineString())
	line.Properties["points"] = path.Len()
	line.Properties["length_km"] = path.LengthKm()

	fc := geojson.NewFeatureCollection()
	fc.Append(line)

	if state := h.viewerUC.View(); state.Fix != nil {
		position := geojson.NewFeature(state.Fix.Position.Point())
		position.Properties["index"] = state.Fix.Index
		position.Properties["bearing"] = state.Fix.Bearing.Degrees()
		position.Properties["page"] = state.SettledPage
		fc.Append(position)
	}

	return c.JSON(http.StatusOK, fc)
}

// GetPanorama proxies the street-level image for the current position
func (h *ViewerHandler) GetPanorama(c echo.Context) error {
	img, err := h.viewerUC.PanoramaImage(c.Request().Context())
	if err != nil {
		return err
	}
	defer img.Body.Close()

	c.Response().Header().Set("Cache-Control", "no-store")

	return c.Stream(http.StatusOK, img.ContentType, img.Body)
}

// GetDocument serves the document being read
func (h *ViewerHandler) GetDocument(c echo.Context) error {
	return c.File(h.document.Path())
}
