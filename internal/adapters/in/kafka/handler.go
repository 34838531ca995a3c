package kafka

import (
	"context"
	"log/slog"

	"orderservice/internal/core/domain/model/order"
)

// LoggingEventHandler records received status events. Downstream systems
// plug in their own EventHandler; this one is the default sink.
type LoggingEventHandler struct {
	log *slog.Logger
}

// NewLoggingEventHandler creates a handler that logs each event.
func NewLoggingEventHandler(log *slog.Logger) *LoggingEventHandler {
	return &LoggingEventHandler{log: log}
}

// Handle logs the event at info level.
func (h *LoggingEventHandler) Handle(_ context.Context, event order.StatusEvent) error {
	h.log.Info("order status event received",
		slog.String("orderId", event.OrderID.String()),
		slog.String("partnerId", event.PartnerID.String()),
		slog.String("totalAmount", event.TotalAmount.String()),
		slog.String("status", event.Status.String()),
		slog.Time("updatedAt", event.UpdatedAt),
	)
	return nil
}
