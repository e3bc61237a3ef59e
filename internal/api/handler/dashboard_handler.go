package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"go-trade-dashboard/internal/logging"
	"go-trade-dashboard/internal/model"
	"go-trade-dashboard/internal/pipeline"
	"go-trade-dashboard/internal/render"
	"go-trade-dashboard/pkg/utils"
)

// RunIDHeader names the response header carrying the id of an export run
const RunIDHeader = "X-Run-ID"

// DatasetInfo is the part of the dataset store reported by the health check
type DatasetInfo interface {
	Count(ctx context.Context) (int, error)
	Source() string
	LoadedAt() time.Time
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HealthResponse reports the loaded dataset
type HealthResponse struct {
	Status   string    `json:"status"`
	Records  int       `json:"records"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loaded_at"`
}

// DashboardHandler serves the dashboard for one loaded dataset
type DashboardHandler struct {
	deps    pipeline.Dependencies
	options model.Options
	dataset DatasetInfo
	log     logging.Logger
	now     func() time.Time
}

// NewDashboardHandler wires the pipeline dependencies and the precomputed
// selector options into a handler
func NewDashboardHandler(deps pipeline.Dependencies, options model.Options, dataset DatasetInfo, log logging.Logger) *DashboardHandler {
	if log == nil {
		log = logging.NewNop()
	}
	deps.Logger = log
	return &DashboardHandler{
		deps:    deps,
		options: options,
		dataset: dataset,
		log:     log,
		now:     time.Now,
	}
}

// GetOptions lists the selectable years and countries
// @Summary List selector options
// @Description Years present in the dataset, countries from the directory sorted by name, and the default selection
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.Options
// @Router /api/v1/options [get]
func (h *DashboardHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.options)
}

// GetDashboard computes the full dashboard for a selection
// @Summary Get dashboard
// @Description Filter, aggregate and normalize the trades of one exporter in one year, returning the status line, map and bar payloads
// @Tags dashboard
// @Produce json
// @Param year query int false "Year (defaults to the configured year)"
// @Param country query string false "ISO-3 exporter code (defaults to the configured country)"
// @Success 200 {object} model.Dashboard
// @Failure 400 {object} handler.ErrorResponse "Invalid query parameter"
// @Failure 422 {object} handler.ErrorResponse "Country code not in directory"
// @Failure 500 {object} handler.ErrorResponse "Internal server error"
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d, ok := h.run(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// GetMap returns only the flow map payload
// @Summary Get flow map
// @Description Line segments, choropleth entries and origin marker for a selection
// @Tags dashboard
// @Produce json
// @Param year query int false "Year"
// @Param country query string false "ISO-3 exporter code"
// @Success 200 {object} model.MapPayload
// @Failure 400 {object} handler.ErrorResponse
// @Failure 422 {object} handler.ErrorResponse
// @Failure 500 {object} handler.ErrorResponse
// @Router /api/v1/dashboard/map [get]
func (h *DashboardHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	d, ok := h.run(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, d.Map)
}

// GetBar returns only the bar series
// @Summary Get bar series
// @Description Aggregated country pairs sorted by total volume, largest first
// @Tags dashboard
// @Produce json
// @Param year query int false "Year"
// @Param country query string false "ISO-3 exporter code"
// @Success 200 {object} model.BarPayload
// @Failure 400 {object} handler.ErrorResponse
// @Failure 422 {object} handler.ErrorResponse
// @Failure 500 {object} handler.ErrorResponse
// @Router /api/v1/dashboard/bar [get]
func (h *DashboardHandler) GetBar(w http.ResponseWriter, r *http.Request) {
	d, ok := h.run(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, d.Bar)
}

// GetBarPNG renders the bar series as an image
// @Summary Bar chart preview
// @Tags charts
// @Produce png
// @Param year query int false "Year"
// @Param country query string false "ISO-3 exporter code"
// @Success 200 {file} binary
// @Failure 400 {object} handler.ErrorResponse
// @Failure 422 {object} handler.ErrorResponse
// @Failure 500 {object} handler.ErrorResponse
// @Router /api/v1/charts/bar.png [get]
func (h *DashboardHandler) GetBarPNG(w http.ResponseWriter, r *http.Request) {
	d, ok := h.run(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := render.BarChartPNG(&buf, d.Bar); err != nil {
		h.writeError(w, err)
		return
	}
	writePNG(w, buf.Bytes())
}

// GetMapPNG renders the flow map as an image
// @Summary Flow map preview
// @Tags charts
// @Produce png
// @Param year query int false "Year"
// @Param country query string false "ISO-3 exporter code"
// @Success 200 {file} binary
// @Failure 400 {object} handler.ErrorResponse
// @Failure 422 {object} handler.ErrorResponse
// @Failure 500 {object} handler.ErrorResponse
// @Router /api/v1/charts/map.png [get]
func (h *DashboardHandler) GetMapPNG(w http.ResponseWriter, r *http.Request) {
	d, ok := h.run(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := render.FlowMapPNG(&buf, d.Map); err != nil {
		h.writeError(w, err)
		return
	}
	writePNG(w, buf.Bytes())
}

// Export downloads the filtered records of a selection
// @Summary Export selection
// @Description Download the filtered records with their intensities as CSV, JSON or XLSX
// @Tags export
// @Produce text/csv
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param year query int false "Year"
// @Param country query string false "ISO-3 exporter code"
// @Param format query string false "csv (default), json or xlsx"
// @Success 200 {file} binary
// @Failure 400 {object} handler.ErrorResponse
// @Failure 422 {object} handler.ErrorResponse
// @Failure 500 {object} handler.ErrorResponse
// @Router /api/v1/export [get]
func (h *DashboardHandler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := utils.ResolveExportFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "bad_request"})
		return
	}

	d, ok := h.run(w, r)
	if !ok {
		return
	}

	em := &pipeline.ExportManager{
		RunID:      uuid.New().String(),
		Format:     format,
		ExportedAt: h.now(),
	}
	var buf bytes.Buffer
	res, err := em.Export(&buf, d)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.log.Info("selection exported",
		logging.String("run_id", em.RunID),
		logging.String("format", res.Type),
		logging.Int("records", res.RecordCount),
	)

	w.Header().Set("Content-Type", format.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.FileName))
	w.Header().Set(RunIDHeader, em.RunID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// Health reports whether the dataset is loaded
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} handler.HealthResponse
// @Failure 500 {object} handler.ErrorResponse
// @Router /healthz [get]
func (h *DashboardHandler) Health(w http.ResponseWriter, r *http.Request) {
	n, err := h.dataset.Count(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Records:  n,
		Source:   h.dataset.Source(),
		LoadedAt: h.dataset.LoadedAt(),
	})
}

// run parses the selection and computes the dashboard, writing the error
// response itself when it fails
func (h *DashboardHandler) run(w http.ResponseWriter, r *http.Request) (*model.Dashboard, bool) {
	sel, err := h.selection(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "bad_request"})
		return nil, false
	}

	d, err := pipeline.Run(r.Context(), h.deps, sel)
	if err != nil {
		h.writeError(w, err)
		return nil, false
	}
	return d, true
}

func (h *DashboardHandler) selection(r *http.Request) (model.Selection, error) {
	year, err := utils.QueryInt(r, "year", h.options.Default.Year)
	if err != nil {
		return model.Selection{}, err
	}
	return model.Selection{
		Year:    year,
		Country: utils.QueryCode(r, "country", h.options.Default.Country),
	}, nil
}

func (h *DashboardHandler) writeError(w http.ResponseWriter, err error) {
	var lookupErr *model.LookupError
	if errors.As(err, &lookupErr) {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Code: "unknown_country"})
		return
	}
	h.log.Error("request failed", logging.Err(err))
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: "internal"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writePNG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
