package system

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

const serviceName = "Ocean Hazard Alert API"

type Handler struct {
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": serviceName,
	}); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
