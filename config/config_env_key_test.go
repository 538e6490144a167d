package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"route": map[string]any{
			"provider": "osrm",
			"osrm": map[string]any{
				"baseUrl": "http://localhost:5000",
			},
		},
		"panorama": map[string]any{
			"apiKey": "",
		},
		"viewer": map[string]any{
			"debounceWindow": "500ms",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "ROUTE_PROVIDER", want: "route.provider"},
		{envKey: "ROUTE_OSRM_BASEURL", want: "route.osrm.baseUrl"},
		{envKey: "PANORAMA_APIKEY", want: "panorama.apiKey"},
		{envKey: "VIEWER_DEBOUNCEWINDOW", want: "viewer.debounceWindow"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
