package osrm

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"locus/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	taipei101 = entity.GeoPoint{Lat: 25.0330, Lng: 121.5654}
	taipeiMRT = entity.GeoPoint{Lat: 25.0478, Lng: 121.5170}
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewClient(server.URL+"/", "driving", taipei101, taipeiMRT, time.Second, logger).(*Client)
}

func TestClient_Route(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"code": "Ok",
			"routes": [{
				"distance": 5230.1,
				"duration": 611.4,
				"geometry": {"type": "LineString", "coordinates": [[121.5654, 25.0330], [121.5600, 25.0400], [121.5170, 25.0478]]}
			}]
		}`)
	})

	path, err := client.Route(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/route/v1/driving/121.565400,25.033000;121.517000,25.047800", gotPath)
	assert.Equal(t, "overview=full&geometries=geojson", gotQuery)

	require.Len(t, path, 3)
	assert.Equal(t, taipei101, path[0])
	assert.Equal(t, entity.GeoPoint{Lat: 25.0400, Lng: 121.5600}, path[1])
	assert.Equal(t, taipeiMRT, path[2])
	assert.Equal(t, "osrm", client.Name())
}

func TestClient_Route_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{}`, wantErr: "status 500"},
		{name: "malformed json", status: http.StatusOK, body: `{"code":`, wantErr: "decode"},
		{name: "no route found", status: http.StatusOK, body: `{"code":"NoRoute","message":"Impossible route","routes":[]}`, wantErr: "NoRoute"},
		{name: "empty route list", status: http.StatusOK, body: `{"code":"Ok","routes":[]}`, wantErr: "no routes"},
		{
			name:    "point geometry",
			status:  http.StatusOK,
			body:    `{"code":"Ok","routes":[{"geometry":{"type":"Point","coordinates":[121.5,25.0]}}]}`,
			wantErr: "want LineString",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			path, err := client.Route(context.Background())
			require.Error(t, err)
			assert.Nil(t, path)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestClient_Route_ContextCanceled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Route(ctx)
	require.Error(t, err)
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		input   string
		want    entity.GeoPoint
		wantErr bool
	}{
		{input: "25.0330,121.5654", want: taipei101},
		{input: " 25.0330 , 121.5654 ", want: taipei101},
		{input: "-33.8688,151.2093", want: entity.GeoPoint{Lat: -33.8688, Lng: 151.2093}},
		{input: "25.0330", wantErr: true},
		{input: "north,east", wantErr: true},
		{input: "25.0,abc", wantErr: true},
		{input: "95,0", wantErr: true},
		{input: "1,2,3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCoordinate(tt.input)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
