// Package notifyhttp adapts inbound gateway callbacks to the notify
// verifier. It is the thin HTTP edge around the core: parse the form POST,
// verify, hand the decoded result to the application hook. Business logic
// stays in the hook.
package notifyhttp

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"newebpay/internal/platform/metrics"
	"newebpay/internal/platform/middleware"
	"newebpay/pkg/notify"
)

// Hook receives each verified callback. It runs synchronously before the
// 200 response; keep it fast or dispatch internally.
type Hook func(ctx context.Context, n *notify.Handler)

// Handler handles the gateway's ReturnURL and NotifyURL deliveries.
type Handler struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	hashKey string
	hashIV  string
	hook    Hook
}

// New creates a callback Handler.
func New(hashKey, hashIV string, logger *slog.Logger, m *metrics.Metrics, hook Hook) *Handler {
	return &Handler{
		logger:  logger,
		metrics: m,
		hashKey: hashKey,
		hashIV:  hashIV,
		hook:    hook,
	}
}

// Register registers the callback routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequestID)
		r.Post("/payment/notify", h.handleCallback)
		r.Post("/payment/return", h.handleCallback)
	})
}

// handleCallback verifies one inbound delivery. Rejections answer 400 with
// no body detail: the gateway retries server errors, and an attacker
// probing the endpoint learns nothing beyond pass/fail.
func (h *Handler) handleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	if err := r.ParseForm(); err != nil {
		h.logger.WarnContext(ctx, "unparseable callback form",
			"request_id", requestID,
			"error", err.Error(),
		)
		h.metrics.IncrementRejected()
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	fields := make(map[string]string, len(r.PostForm))
	for key, vals := range r.PostForm {
		if len(vals) > 0 {
			fields[key] = vals[0]
		}
	}

	n := notify.New(h.hashKey, h.hashIV)
	if !n.Verify(fields) {
		h.logger.WarnContext(ctx, "callback failed verification",
			"request_id", requestID,
			"remote_addr", r.RemoteAddr,
		)
		h.metrics.IncrementRejected()
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	h.metrics.IncrementVerified()
	h.logger.InfoContext(ctx, "callback verified",
		"request_id", requestID,
		"merchant_order_no", n.MerchantOrderNo(),
		"status", n.Status(),
		"payment_type", n.PaymentType().String(),
	)

	if h.hook != nil {
		h.hook(ctx, n)
	}
	w.WriteHeader(http.StatusOK)
}
