// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"locus/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ViewerHandler *handler.ViewerHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	viewerHandler *handler.ViewerHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		viewerHandler: params.ViewerHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// The renderer loads the document directly
	e.GET("/document", r.viewerHandler.GetDocument)

	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/view", r.viewerHandler.GetView)
		apiGroup.GET("/route", r.viewerHandler.GetRoute)
		apiGroup.GET("/panorama", r.viewerHandler.GetPanorama)

		apiGroup.PUT("/page", r.viewerHandler.GoToPage)
		apiGroup.POST("/page/next", r.viewerHandler.NextPage)
		apiGroup.POST("/page/prev", r.viewerHandler.PrevPage)
	}
}
