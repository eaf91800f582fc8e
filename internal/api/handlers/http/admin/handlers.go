package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"oceanwatch/internal/domain"
	"oceanwatch/pkg/e"
	"oceanwatch/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AdminReports interface {
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReportStatus) error
}

type Handler struct {
	logger *slog.Logger
	Admin  AdminReports
}

func NewHandler(logger *slog.Logger, admin AdminReports) *Handler {
	return &Handler{
		logger: logger,
		Admin:  admin,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("DeleteReport", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.Admin.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report deleted", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Report deleted successfully"})
}

func (h *Handler) UpdateReportStatus(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("UpdateReportStatus", slog.String("remote", r.RemoteAddr))

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		l.Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req domain.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		h.handleError(w, r, e.Wrap("status must be one of pending, reviewed, resolved", e.ErrInvalidInput))
		return
	}

	if err := h.Admin.UpdateStatus(r.Context(), id, req.Status); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("report status updated", slog.String("id", id.String()), slog.String("status", string(req.Status)))
	w.WriteHeader(http.StatusNoContent)
}
