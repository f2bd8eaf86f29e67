package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// EventPublisher delivers domain events to interested consumers.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}

// TokenDenylist records tokens revoked before their expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Option configures optional collaborators of a service.
type Option func(*options)

type options struct {
	publisher EventPublisher
	logger    logrus.FieldLogger
	denylist  TokenDenylist
	tokenTTL  time.Duration
}

// WithEventPublisher publishes domain events through p.
func WithEventPublisher(p EventPublisher) Option {
	return func(o *options) { o.publisher = p }
}

// WithLogger sets the service logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.logger = l }
}

// WithTokenDenylist enables token revocation.
func WithTokenDenylist(d TokenDenylist) Option {
	return func(o *options) { o.denylist = d }
}

// WithTokenTTL overrides how long issued tokens stay valid.
func WithTokenTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.tokenTTL = ttl
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:   logrus.StandardLogger(),
		tokenTTL: defaultTokenTTL,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// notify publishes an event if a publisher is configured. Publishing is
// best effort: failures are logged and never fail the request.
func (o options) notify(ctx context.Context, eventType string, payload interface{}) {
	if o.publisher == nil {
		return
	}
	if err := o.publisher.Publish(ctx, eventType, payload); err != nil {
		o.logger.WithError(err).WithField("event", eventType).Warn("failed to publish event")
	}
}
