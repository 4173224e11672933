package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponse_IncludesRequestID(t *testing.T) {
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ErrorResponse(w, r, http.StatusBadRequest, "Please provide a list of locations")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/transportation-tips", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Please provide a list of locations", body["error"])
	assert.NotEmpty(t, body["request_id"])
}

func TestDecodeJSONBody(t *testing.T) {
	type payload struct {
		Locations []string `json:"locations"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"locations":["Cairo"]}`},
		{name: "empty", body: ``, wantErr: "body must not be empty"},
		{name: "malformed", body: `{"locations":`, wantErr: "badly-formed JSON"},
		{name: "wrong type", body: `{"locations":"Cairo"}`, wantErr: `incorrect JSON type for field "locations"`},
		{name: "unknown key", body: `{"places":[]}`, wantErr: `unknown key "places"`},
		{name: "trailing data", body: `{"locations":[]}{}`, wantErr: "single JSON value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst payload
			err := DecodeJSONBody(httptest.NewRecorder(), req, &dst)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, []string{"Cairo"}, dst.Locations)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDecodeJSONBody_TooLarge(t *testing.T) {
	body := `{"locations":["` + strings.Repeat("a", maxBodyBytes) + `"]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	var dst struct {
		Locations []string `json:"locations"`
	}
	err := DecodeJSONBody(httptest.NewRecorder(), req, &dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be larger than")
}
