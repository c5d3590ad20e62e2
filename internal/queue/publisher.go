package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends events to the broker.
type Publisher interface {
	Publish(ctx context.Context, ev ListingChangedEvent) error
}

// AMQPPublisher dials the broker for each publish.  Listing changes are rare
// and the site must keep working while the broker is down.
type AMQPPublisher struct {
	url string
}

func NewAMQPPublisher(url string) *AMQPPublisher {
	return &AMQPPublisher{url: url}
}

// Publish sends ev as a persistent JSON message to QueueName.
func (p *AMQPPublisher) Publish(ctx context.Context, ev ListingChangedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(QueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	return ch.PublishWithContext(ctx, "", QueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
}

// NopPublisher drops events.  Used when the queue is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ListingChangedEvent) error { return nil }
