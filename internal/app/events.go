package app

import (
	"context"

	"stockroom/pkg/rabbitmq"

	"github.com/sirupsen/logrus"
)

// AuditEvents returns a consumer handler that writes every inventory event
// to the log.
func AuditEvents(logger logrus.FieldLogger) func(context.Context, rabbitmq.Event) error {
	return func(_ context.Context, event rabbitmq.Event) error {
		logger.WithFields(logrus.Fields{
			"event":       event.Type,
			"occurred_at": event.OccurredAt,
			"payload":     string(event.Payload),
		}).Info("inventory event")
		return nil
	}
}
