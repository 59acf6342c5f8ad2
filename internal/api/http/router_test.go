package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mind-engage/sensory-profile/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sensory Profile Calculator Backend is running.", rec.Body.String())
}

func TestIndexHead(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSAllowsAnyRequestHeader(t *testing.T) {
	pre := httptest.NewRequest(http.MethodOptions, "/calculate", nil)
	pre.Header.Set("Origin", "https://frontend.example.org")
	pre.Header.Set("Access-Control-Request-Method", http.MethodPost)
	pre.Header.Set("Access-Control-Request-Headers", "X-Requested-With, Authorization")
	rec := httptest.NewRecorder()
	newTestRouter(nil).ServeHTTP(rec, pre)

	assert.Less(t, rec.Code, 300)
	allowed := strings.ToLower(rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Contains(t, allowed, "x-requested-with")
	assert.Contains(t, allowed, "authorization")
}

func TestHealthEndpoints(t *testing.T) {
	for _, path := range []string{"/healthz", "/readyz"} {
		rec := httptest.NewRecorder()
		newTestRouter(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestProfile(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got scoring.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Sections, 9)
	require.Len(t, got.Quadrants, 4)
	assert.Equal(t, "auditory", got.Sections[0].Name)
	assert.Equal(t, 40, got.Sections[0].Max)
	assert.Equal(t, "registration", got.Quadrants[3].Name)
	assert.Equal(t, 110, got.Quadrants[3].Max)
	assert.Equal(t, []int{10, 11, 17, 29, 42, 43}, got.Excluded)
}

func TestCORSAnyOrigin(t *testing.T) {
	const origin = "https://frontend.example.org"
	h := newTestRouter(nil)

	pre := httptest.NewRequest(http.MethodOptions, "/calculate", nil)
	pre.Header.Set("Origin", origin)
	pre.Header.Set("Access-Control-Request-Method", http.MethodPost)
	pre.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, pre)
	assert.Less(t, rec.Code, 300)
	assert.Contains(t, []string{"*", origin}, rec.Header().Get("Access-Control-Allow-Origin"))

	rec = post(t, h, `{"scores": {"1": 1}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", origin)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Contains(t, []string{"*", origin}, rec.Header().Get("Access-Control-Allow-Origin"))
}
