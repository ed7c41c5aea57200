package web

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandler(rateLimit int) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(log, rateLimit, time.Minute).Handler()
}

func postJSON(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transliterate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestTransliterateEndpoint(t *testing.T) {
	h := testHandler(100)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"default scheme", `{"text":"rāma"}`, "राम"},
		{"explicit iso15919", `{"text":"saṁskr̥ta","scheme":"iso15919"}`, "संस्कृत"},
		{"iast", `{"text":"saṃskṛta","scheme":"iast"}`, "संस्कृत"},
		{"numerals", `{"text":"108","numerals":true}`, "१०८"},
		{"passthrough", `{"text":"@"}`, "@"},
		{"empty text", `{"text":""}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h, tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var resp struct {
				Output string `json:"output"`
				Scheme string `json:"scheme"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.Output)
		})
	}
}

func TestTransliterateBadRequests(t *testing.T) {
	h := testHandler(100)

	rec := postJSON(t, h, `{"text":"ka","scheme":"itrans"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown scheme")

	rec = postJSON(t, h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSchemesEndpoint(t *testing.T) {
	h := testHandler(100)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schemes", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Schemes []struct {
			Name    string `json:"name"`
			Default bool   `json:"default"`
		} `json:"schemes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Schemes, 2)
	assert.Equal(t, "iso15919", resp.Schemes[0].Name)
	assert.True(t, resp.Schemes[0].Default)
	assert.Equal(t, "iast", resp.Schemes[1].Name)
}

func TestHealthEndpoint(t *testing.T) {
	h := testHandler(100)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestTransliterateRateLimited(t *testing.T) {
	h := testHandler(2)

	for range 2 {
		rec := postJSON(t, h, `{"text":"ka"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := postJSON(t, h, `{"text":"ka"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
