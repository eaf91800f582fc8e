package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"oceanwatch/internal/config"
	"oceanwatch/internal/domain"
	"oceanwatch/pkg/e"
)

// AlertSource is the blocking consumer side of the alert queue.
type AlertSource interface {
	Dequeue(ctx context.Context, timeout time.Duration) (domain.AlertPayload, error)
}

// AlertDispatcher drains the alert queue and POSTs each payload to the
// configured webhook. Delivery is best-effort: a payload is retried a few
// times and then dropped with a log line.
type AlertDispatcher struct {
	logger     *slog.Logger
	cfg        config.WebhookConfig
	queue      AlertSource
	http       *http.Client
	retryDelay time.Duration
}

func NewAlertDispatcher(logger *slog.Logger, cfg config.WebhookConfig, queue AlertSource) *AlertDispatcher {
	return &AlertDispatcher{
		logger:     logger,
		cfg:        cfg,
		queue:      queue,
		http:       &http.Client{Timeout: 5 * time.Second},
		retryDelay: time.Second,
	}
}

func (d *AlertDispatcher) Run(ctx context.Context) {
	if d.cfg.Disabled {
		d.logger.Info("alert dispatcher disabled")
		return
	}
	d.logger.Info("alert dispatcher started", slog.String("url", d.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("alert dispatcher stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		payload, err := d.queue.Dequeue(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrAlertQueueEmpty) || errors.Is(err, context.Canceled) {
				continue
			}
			d.logger.Error("alert dequeue failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		d.sendWithRetry(ctx, payload)
	}
}

func (d *AlertDispatcher) sendWithRetry(ctx context.Context, p domain.AlertPayload) {
	const maxRetries = 3

	body, err := json.Marshal(p)
	if err != nil {
		d.logger.Error("marshal alert payload failed", slog.Any("error", err))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.URL, bytes.NewReader(body))
		if err != nil {
			d.logger.Error("create alert request failed", slog.Any("error", err))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := d.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			d.logger.Info("alert delivered", slog.String("report_id", p.ReportID.String()))
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else {
			reason = resp.Status
		}
		d.logger.Warn("alert delivery failed",
			slog.Int("attempt", attempt),
			slog.String("report_id", p.ReportID.String()),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * d.retryDelay)
	}

	d.logger.Error("alert dropped after retries", slog.String("report_id", p.ReportID.String()))
}
