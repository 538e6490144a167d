package file

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"locus/internal/domain/entity"
	"locus/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// Loader reads a pre-computed route from disk
type Loader struct {
	path string
}

// NewLoader creates a route provider for a .geojson, .json or .csv file
func NewLoader(path string) service.RouteProvider {
	return &Loader{path: path}
}

// Name identifies the provider in logs
func (l *Loader) Name() string {
	return "file"
}

// Route loads the path, choosing the format from the file extension
func (l *Loader) Route(ctx context.Context) (entity.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	f, err := os.Open(l.path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	var path entity.Path
	switch ext := strings.ToLower(filepath.Ext(l.path)); ext {
	case ".geojson", ".json":
		path, err = LoadGeoJSON(f)
	case ".csv":
		path, err = LoadCSV(f)
	default:
		return nil, errors.Errorf("unsupported route file extension %q", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load route from %s", l.path)
	}

	return path, nil
}

// LoadCSV reads points from CSV.
// Expected CSV format: lat,lng (header row required)
func LoadCSV(r io.Reader) (entity.Path, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return nil, errors.WithStack(err)
	}

	var path entity.Path
	lineNum := 1 // Start at 1 because we skipped header

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.WithStack(readErr)
		}
		lineNum++

		if len(record) < 2 {
			return nil, errors.Errorf("invalid route csv at line %d: expected 2 columns, got %d", lineNum, len(record))
		}

		point, parseErr := parsePoint(record, lineNum)
		if parseErr != nil {
			return nil, parseErr
		}

		path = append(path, point)
	}

	if len(path) == 0 {
		return nil, errors.New("route csv has no points")
	}

	return path, nil
}

func parsePoint(record []string, lineNum int) (entity.GeoPoint, error) {
	lat, err := strconv.ParseFloat(record[0], 64)
	if err != nil {
		return entity.GeoPoint{}, errors.Wrapf(err, "invalid lat at line %d", lineNum)
	}

	lng, err := strconv.ParseFloat(record[1], 64)
	if err != nil {
		return entity.GeoPoint{}, errors.Wrapf(err, "invalid lng at line %d", lineNum)
	}

	point := entity.GeoPoint{Lat: lat, Lng: lng}
	if !point.Valid() {
		return entity.GeoPoint{}, errors.Errorf("coordinate out of bounds at line %d", lineNum)
	}

	return point, nil
}

// LoadGeoJSON reads the first line geometry from a FeatureCollection, a
// Feature or a bare geometry. MultiLineStrings are joined in order, the way
// a route's legs follow one another.
func LoadGeoJSON(r io.Reader) (entity.Path, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.Wrap(err, "invalid geojson")
	}

	var geometries []orb.Geometry
	switch probe.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, errors.Wrap(err, "invalid feature collection")
		}
		for _, f := range fc.Features {
			geometries = append(geometries, f.Geometry)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, errors.Wrap(err, "invalid feature")
		}
		geometries = append(geometries, f.Geometry)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, errors.Wrap(err, "invalid geometry")
		}
		geometries = append(geometries, g.Geometry())
	}

	for _, g := range geometries {
		if path := pathFromGeometry(g); len(path) > 0 {
			return path, nil
		}
	}

	return nil, errors.New("geojson contains no LineString or MultiLineString")
}

func pathFromGeometry(g orb.Geometry) entity.Path {
	switch geom := g.(type) {
	case orb.LineString:
		return appendLine(nil, geom)
	case orb.MultiLineString:
		var path entity.Path
		for _, line := range geom {
			path = appendLine(path, line)
		}

		return path
	default:
		return nil
	}
}

// appendLine appends line to path, skipping a first point that repeats the
// path's last one where two legs meet
func appendLine(path entity.Path, line orb.LineString) entity.Path {
	for _, pt := range line {
		point := entity.NewGeoPointFromOrb(pt)
		if n := len(path); n > 0 && path[n-1] == point {
			continue
		}
		path = append(path, point)
	}

	return path
}
