package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jusunglee/ur2ud/internal/devanagari"
	"github.com/jusunglee/ur2ud/internal/metrics"
	"github.com/samber/lo"
)

// maxBodyBytes caps request bodies; the engine is linear in input size but
// there is no reason to accept arbitrarily large payloads.
const maxBodyBytes = 1 << 20

type TransliterateHandler struct {
	log *slog.Logger
}

func NewTransliterateHandler(log *slog.Logger) *TransliterateHandler {
	return &TransliterateHandler{log: log}
}

type transliterateRequest struct {
	Text     string `json:"text"`
	Scheme   string `json:"scheme,omitempty"`
	Numerals bool   `json:"numerals,omitempty"`
}

type transliterateResponse struct {
	Output string `json:"output"`
	Scheme string `json:"scheme"`
}

func (h *TransliterateHandler) Transliterate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req transliterateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, `{"error":"request body too large"}`, http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, `{"error":"invalid JSON body"}`, http.StatusBadRequest)
		return
	}

	scheme := devanagari.ISO15919
	if req.Scheme != "" {
		var err error
		scheme, err = devanagari.ParseScheme(req.Scheme)
		if err != nil {
			metrics.TransliterationsTotal.WithLabelValues(req.Scheme, "bad_scheme").Inc()
			http.Error(w, `{"error":"unknown scheme, expected iso15919 or iast"}`, http.StatusBadRequest)
			return
		}
	}

	var opts []devanagari.Option
	if req.Numerals {
		opts = append(opts, devanagari.WithNumerals())
	}

	output := devanagari.New(scheme, opts...).Transliterate(req.Text)

	metrics.TransliterationsTotal.WithLabelValues(scheme.String(), "ok").Inc()
	metrics.TransliterationInputBytes.Observe(float64(len(req.Text)))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(transliterateResponse{
		Output: output,
		Scheme: scheme.String(),
	}); err != nil {
		h.log.Error("failed to encode response", "error", err)
	}
}

type schemeInfo struct {
	Name    string `json:"name"`
	Default bool   `json:"default"`
}

// Schemes lists the supported romanization conventions.
func (h *TransliterateHandler) Schemes(w http.ResponseWriter, r *http.Request) {
	list := lo.Map(devanagari.Schemes(), func(name string, i int) schemeInfo {
		return schemeInfo{Name: name, Default: i == 0}
	})

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"schemes": list}); err != nil {
		h.log.Error("failed to encode response", "error", err)
	}
}
