package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"oceanwatch/internal/api/handlers/http/admin"
	"oceanwatch/internal/api/handlers/http/public"
	"oceanwatch/internal/api/handlers/http/system"
	"oceanwatch/internal/config"
	"oceanwatch/internal/middleware"
	"oceanwatch/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	publicHandler := public.NewHandler(logger, svc.PublicReportService, svc.AggregationService, svc.WeatherService)
	adminHandler := admin.NewHandler(logger, svc.AdminReportService)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(publicHandler, adminHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(publicHandler *public.Handler, adminHandler *admin.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", systemHandler.SystemHealth)

		api.Route("/reports", func(rr chi.Router) {
			rr.With(middleware.Limit(10, 20, 5*time.Minute, logger)).Post("/", publicHandler.CreateReport)
			rr.Get("/", publicHandler.ListReports)
			rr.Get("/priority", publicHandler.PriorityReports)
			rr.Get("/heatmap", publicHandler.Heatmap)

			rr.Route("/{id}", func(ir chi.Router) {
				ir.Delete("/", adminHandler.DeleteReport)
				ir.Patch("/status", adminHandler.UpdateReportStatus)
			})
		})

		api.Get("/weather", publicHandler.CurrentWeather)
		api.Get("/dashboard/stats", publicHandler.DashboardStats)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
