package public

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"oceanwatch/internal/domain"
)

// 10 MiB cap on report media uploads.
const maxMediaBytes = 10 << 20

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type PublicReports interface {
	Create(ctx context.Context, req domain.CreateReportRequest) (*domain.HazardReport, error)
	List(ctx context.Context) ([]*domain.HazardReport, error)
}

type Aggregations interface {
	PriorityReports(ctx context.Context) ([]domain.PriorityReport, error)
	Heatmap(ctx context.Context) ([]domain.HeatmapPoint, error)
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

type Weather interface {
	Current(ctx context.Context, lat, lon float64) (*domain.WeatherData, error)
}

type Handler struct {
	logger       *slog.Logger
	Reports      PublicReports
	Aggregations Aggregations
	Weather      Weather
}

func NewHandler(logger *slog.Logger, reports PublicReports, aggregations Aggregations, weather Weather) *Handler {
	return &Handler{
		logger:       logger,
		Reports:      reports,
		Aggregations: aggregations,
		Weather:      weather,
	}
}

func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("CreateReport", slog.String("remote", r.RemoteAddr))

	if err := r.ParseMultipartForm(maxMediaBytes); err != nil {
		l.Warn("invalid multipart form", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}

	lat, err := strconv.ParseFloat(r.FormValue("latitude"), 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "latitude must be a number"})
		return
	}
	lng, err := strconv.ParseFloat(r.FormValue("longitude"), 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "longitude must be a number"})
		return
	}

	req := domain.CreateReportRequest{
		Name:        r.FormValue("name"),
		Latitude:    lat,
		Longitude:   lng,
		Address:     r.FormValue("address"),
		HazardType:  r.FormValue("hazard_type"),
		Description: r.FormValue("description"),
	}

	file, header, err := r.FormFile("media")
	if err == nil {
		defer file.Close()

		data, readErr := io.ReadAll(io.LimitReader(file, maxMediaBytes))
		if readErr != nil {
			l.Warn("media read failed", slog.String("error", readErr.Error()))
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "could not read media"})
			return
		}
		req.MediaBase64 = base64.StdEncoding.EncodeToString(data)
		req.MediaType = header.Header.Get("Content-Type")
	} else if err != http.ErrMissingFile {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid media upload"})
		return
	}

	report, err := h.Reports.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report created",
		slog.String("id", report.ID.String()),
		slog.String("hazard_type", report.HazardType),
		slog.String("severity", string(report.Severity)),
	)
	h.writeJSON(w, http.StatusCreated, report)
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ListReports", slog.String("remote", r.RemoteAddr))

	reports, err := h.Reports.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if reports == nil {
		reports = []*domain.HazardReport{}
	}

	h.writeJSON(w, http.StatusOK, reports)
}

func (h *Handler) PriorityReports(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("PriorityReports", slog.String("remote", r.RemoteAddr))

	reports, err := h.Aggregations.PriorityReports(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if reports == nil {
		reports = []domain.PriorityReport{}
	}

	h.writeJSON(w, http.StatusOK, reports)
}

func (h *Handler) Heatmap(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("Heatmap", slog.String("remote", r.RemoteAddr))

	points, err := h.Aggregations.Heatmap(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if points == nil {
		points = []domain.HeatmapPoint{}
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"heatmap_data": points})
}

func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("DashboardStats", slog.String("remote", r.RemoteAddr))

	stats, err := h.Aggregations.DashboardStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) CurrentWeather(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("CurrentWeather", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat must be a number in [-90, 90]"})
		return
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lon must be a number in [-180, 180]"})
		return
	}

	weather, err := h.Weather.Current(r.Context(), lat, lon)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, weather)
}
