package rabbitmq

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	amqp "github.com/streadway/amqp"
)

// DefaultQueue is the queue inventory events are published to.
const DefaultQueue = "inventory_events"

// Event is the message body published for every domain event.
type Event struct {
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL   string
	Queue string
}

// Client holds the RabbitMQ connection and publishing channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  logrus.FieldLogger
	mu      sync.Mutex // amqp channels are not safe for concurrent publishing
}

// NewClient connects to RabbitMQ, opens a channel and declares the event queue.
func NewClient(cfg Config, logger logrus.FieldLogger) (*Client, error) {
	if cfg.Queue == "" {
		cfg.Queue = DefaultQueue
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to RabbitMQ")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "failed to open channel")
	}

	if err := declareQueue(ch, cfg.Queue); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.WithField("queue", cfg.Queue).Info("RabbitMQ client connected")

	return &Client{
		conn:    conn,
		channel: ch,
		queue:   cfg.Queue,
		logger:  logger,
	}, nil
}

func declareQueue(ch *amqp.Channel, name string) error {
	_, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return errors.Wrapf(err, "failed to declare queue %s", name)
	}
	return nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, errors.Wrap(err, "failed to close channel"))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, errors.Wrap(err, "failed to close connection"))
		}
	}
	if len(errs) > 0 {
		return errors.Errorf("errors during RabbitMQ client close: %v", errs)
	}
	return nil
}

// EncodeEvent builds the JSON message body for an event.
func EncodeEvent(eventType string, payload interface{}, at time.Time) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s payload", eventType)
	}
	return json.Marshal(Event{Type: eventType, OccurredAt: at.UTC(), Payload: raw})
}

// Publish sends a persistent event message to the event queue.
func (c *Client) Publish(ctx context.Context, eventType string, payload interface{}) error {
	if c.channel == nil {
		return errors.New("RabbitMQ channel is not available")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	now := time.Now()
	body, err := EncodeEvent(eventType, payload, now)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	err = c.channel.Publish(
		"",      // default exchange
		c.queue, // routing key: the queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Type:         eventType,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    now,
		})
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s", eventType)
	}

	c.logger.WithField("event", eventType).Debug("event published")
	return nil
}

// Consume delivers events from the queue to handle until ctx is cancelled or
// the broker closes the delivery channel. Messages whose handler fails are
// rejected without requeue; malformed bodies are dropped the same way.
func (c *Client) Consume(ctx context.Context, handle func(context.Context, Event) error) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return errors.Wrap(err, "failed to open consumer channel")
	}
	defer ch.Close()

	if err := declareQueue(ch, c.queue); err != nil {
		return err
	}

	msgs, err := ch.Consume(
		c.queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return errors.Wrap(err, "failed to register consumer")
	}

	c.logger.WithField("queue", c.queue).Info("waiting for inventory events")

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed by broker")
			}
			c.dispatch(ctx, msg, handle)
		}
	}
}

func (c *Client) dispatch(ctx context.Context, msg amqp.Delivery, handle func(context.Context, Event) error) {
	log := c.logger.WithField("delivery_tag", msg.DeliveryTag)

	var event Event
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.WithError(err).Warn("dropping malformed event")
		if nackErr := msg.Nack(false, false); nackErr != nil {
			log.WithError(nackErr).Error("failed to nack message")
		}
		return
	}

	if err := handle(ctx, event); err != nil {
		log.WithError(err).WithField("event", event.Type).Error("event handler failed")
		if nackErr := msg.Nack(false, false); nackErr != nil {
			log.WithError(nackErr).Error("failed to nack message")
		}
		return
	}

	if err := msg.Ack(false); err != nil {
		log.WithError(err).Error("failed to ack message")
	}
}
