// Package server exposes the report engine over HTTP: configuration upload,
// stateless what-if recomputation, and template discovery.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/config"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/roi"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/internal/sheet"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/pkg/constants"
	"github.com/kshipra-ai/bagbuddy-roi-analysis/pkg/output"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the reports API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Reports API endpoint (configuration upload)
	mux.HandleFunc("/api/reports", h.handleReports)

	// Stateless what-if recomputation endpoint
	mux.HandleFunc("/api/reports/recompute", h.handleRecompute)

	// Template discovery endpoint
	mux.HandleFunc("/api/templates", h.handleTemplates)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type reportsResponse struct {
	Reports  []output.Document `json:"reports"`
	CSV      string            `json:"csv"`
	Warnings []string          `json:"warnings,omitempty"`
	Duration string            `json:"duration"`
}

func (h *handler) handleReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	op := "server.handleReports"
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	configBytes, err := h.readConfigUpload(w, r)
	if err != nil {
		// readConfigUpload already responded.
		return
	}

	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	warnings := cfg.ValidateConfiguration()

	reports, err := roi.BuildReports(h.logger, *cfg)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to build reports: %v", err), op)
		return
	}

	var csvBuf bytes.Buffer
	output.WriteCsv(&csvBuf, reports)

	elapsed := time.Since(start)
	h.logger.Info("reports computed",
		zap.String("op", op),
		zap.Int("reports", len(reports)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, reportsResponse{
		Reports:  output.Documents(reports),
		CSV:      csvBuf.String(),
		Warnings: warnings,
		Duration: elapsed.String(),
	})
}

// readConfigUpload accepts either a multipart "file" field or a raw YAML
// body. It responds with an error itself when reading fails.
func (h *handler) readConfigUpload(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	op := "server.handleReports"
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				h.respondError(w, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
				return nil, err
			}
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), op)
			return nil, err
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "missing configuration file", op)
			return nil, err
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				h.logger.Warn("failed to close uploaded file",
					zap.String("op", op),
					zap.Error(closeErr),
				)
			}
		}()
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, file); err != nil {
			h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), op)
			return nil, err
		}
		return buf.Bytes(), nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return nil, err
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read configuration: %v", err), op)
		return nil, err
	}
	return data, nil
}

type recomputeRequest struct {
	Template string                 `json:"template"`
	Config   map[string]interface{} `json:"config,omitempty"`
	Changes  map[string]interface{} `json:"changes"`
}

type recomputeResponse struct {
	Template string      `json:"template"`
	Rows     []sheet.Row `json:"rows"`
	Duration string      `json:"duration"`
}

func (h *handler) handleRecompute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	op := "server.handleRecompute"

	var req recomputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	cfg := config.DefaultConfiguration()
	if len(req.Config) > 0 {
		configBytes, err := yaml.Marshal(req.Config)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), op)
			return
		}
		cfg, err = config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
		if err != nil {
			h.respondError(w, http.StatusBadRequest, err.Error(), op)
			return
		}
	}

	report, err := roi.BuildTemplate(req.Template, *cfg)
	if err != nil {
		h.respondError(w, http.StatusNotFound, err.Error(), op)
		return
	}

	overrides := make(map[sheet.Address]sheet.Value, len(req.Changes))
	for addr, raw := range req.Changes {
		value, err := sheet.CoerceValue(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("cell %s: %v", addr, err), op)
			return
		}
		overrides[sheet.Address(addr)] = value
	}

	rows, err := report.Recompute(overrides)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, sheet.ErrUnknownAddress) {
			status = http.StatusNotFound
		}
		h.respondError(w, status, err.Error(), op)
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("recompute completed",
		zap.String("op", op),
		zap.String("template", req.Template),
		zap.Int("changes", len(overrides)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, recomputeResponse{
		Template: req.Template,
		Rows:     rows,
		Duration: elapsed.String(),
	})
}

func (h *handler) handleTemplates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string][]string{
		"templates": roi.TemplateNames(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
