package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"budget-tracker/internal/model"
)

// ActivityEventPublisher publishes activity events to a durable queue for the
// persist worker to consume.
type ActivityEventPublisher struct {
	conn      *amqp.Connection
	queueName string
}

func NewActivityEventPublisher(conn *amqp.Connection, queueName string) *ActivityEventPublisher {
	return &ActivityEventPublisher{
		conn:      conn,
		queueName: queueName,
	}
}

func (p *ActivityEventPublisher) Publish(ctx context.Context, event model.ActivityEvent) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel failed: %w", err)
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		p.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue failed: %w", err)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal activity event failed: %w", err)
	}

	if err := ch.PublishWithContext(
		ctx,
		"",
		p.queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         payload,
			DeliveryMode: amqp.Persistent,
		},
	); err != nil {
		return fmt.Errorf("publish activity event failed: %w", err)
	}
	return nil
}
