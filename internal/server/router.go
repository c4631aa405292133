package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/philipparndt/stlquote/internal/config"
	"github.com/philipparndt/stlquote/internal/observability/metrics"
	"github.com/philipparndt/stlquote/pkg/quote"
	"github.com/philipparndt/stlquote/pkg/stl"
)

const (
	serviceName     = "stlquote"
	defaultMaterial = "pla"

	// multipart bodies beyond this are spooled to disk by net/http
	multipartMemory = 8 << 20
)

type Router struct {
	extractor stl.Extractor
	prices    quote.PriceList
	metrics   *metrics.Metrics
	logger    *slog.Logger
	server    config.ServerConfig
}

type summaryResponse struct {
	Summary stl.GeometrySummary `json:"summary"`
	Quote   *quote.Quote        `json:"quote,omitempty"`
	Warning string              `json:"warning,omitempty"`
	Error   string              `json:"error,omitempty"`
}

type materialsResponse struct {
	Currency    string           `json:"currency"`
	SetupFee    float64          `json:"setupFee"`
	UnitsPerCm3 float64          `json:"unitsPerCm3"`
	Materials   []quote.Material `json:"materials"`
}

func NewRouter(cfg config.Config, m *metrics.Metrics, logger *slog.Logger) *Router {
	return &Router{
		extractor: stl.Extractor{FillFactor: cfg.FillFactor},
		prices:    cfg.Pricing,
		metrics:   m,
		logger:    logger,
		server:    cfg.Server,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/materials", rt.listMaterials)
	mux.HandleFunc("/v1/summary", rt.summarize)
	mux.HandleFunc("/v1/quote", rt.quote)
	mux.Handle("/metrics", rt.metrics.Handler())

	var handler http.Handler = mux
	handler = rateLimitMiddleware(rt.server.RateLimitRPS, rt.server.RateLimitBurst, handler)
	handler = rt.metrics.Middleware(serviceName, handler)
	handler = accessLogMiddleware(rt.logger, handler)
	return requestIDMiddleware(handler)
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) listMaterials(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, materialsResponse{
		Currency:    rt.prices.Currency,
		SetupFee:    rt.prices.SetupFee,
		UnitsPerCm3: rt.prices.UnitsPerCm3,
		Materials:   rt.prices.Sorted(),
	})
}

func (rt *Router) summarize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	resp, status, ok := rt.readAndSummarize(w, r)
	if !ok {
		return
	}
	writeJSON(w, status, resp)
}

func (rt *Router) quote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	materialKey := strings.TrimSpace(r.URL.Query().Get("material"))
	if materialKey == "" {
		materialKey = defaultMaterial
	}
	if _, err := rt.prices.Material(materialKey); err != nil {
		writeError(w, mapErrorToHTTPStatus(err), err.Error())
		return
	}

	resp, status, ok := rt.readAndSummarize(w, r)
	if !ok {
		return
	}

	q, err := rt.prices.Quote(resp.Summary, materialKey)
	if err != nil {
		writeError(w, mapErrorToHTTPStatus(err), err.Error())
		return
	}
	rt.metrics.RecordQuote(materialKey)
	resp.Quote = &q

	writeJSON(w, status, resp)
}

// readAndSummarize reads the upload and scans it. Soft parse errors still
// produce a response; ok is false when an error reply was already written.
func (rt *Router) readAndSummarize(w http.ResponseWriter, r *http.Request) (summaryResponse, int, bool) {
	data, err := rt.readUpload(w, r)
	if err != nil {
		writeError(w, mapErrorToHTTPStatus(err), err.Error())
		return summaryResponse{}, 0, false
	}

	summary, err := rt.extractor.Summarize(data)
	resp := summaryResponse{Summary: summary}
	status := http.StatusOK
	outcome := "ok"

	switch {
	case err == nil:
	case errors.Is(err, stl.ErrBufferTooSmall):
		outcome = "empty"
		resp.Warning = err.Error()
	case errors.Is(err, stl.ErrTruncated):
		outcome = "truncated"
		status = http.StatusUnprocessableEntity
		resp.Error = err.Error()
	default:
		outcome = "error"
		status = http.StatusUnprocessableEntity
		resp.Error = err.Error()
	}

	rt.metrics.RecordParse(summary.Format.String(), outcome, summary.TriangleCount)
	rt.logger.Debug("stl_summarized",
		"request_id", requestIDFromContext(r.Context()),
		"format", summary.Format.String(),
		"outcome", outcome,
		"triangles", summary.TriangleCount,
		"bytes", len(data),
	)
	return resp, status, true
}

// readUpload accepts either a raw body or a multipart form field "file"
func (rt *Router) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, rt.server.MaxUploadBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return io.ReadAll(r.Body)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, fmt.Errorf("%w: %w", errBadUpload, err)
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("%w: multipart field 'file' is required", errBadUpload)
	}
	defer file.Close()

	return io.ReadAll(file)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
