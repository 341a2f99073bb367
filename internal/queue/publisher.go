package queue

import (
    "context"
    "encoding/json"
    "log"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
)

const bookingQueueName = "booking.changed"

// Publisher sends booking change events to RabbitMQ.  A nil Publisher
// (no broker configured) is valid and drops events silently, so the
// request path never depends on the broker being up.
type Publisher struct {
    url string
}

// NewPublisher returns a Publisher for the given AMQP URL, or nil when
// the URL is empty.
func NewPublisher(url string) *Publisher {
    if url == "" {
        return nil
    }
    return &Publisher{url: url}
}

// PublishBookingChanged publishes a BookingChangedEvent to the durable
// booking.changed queue.  The function never panics; errors are logged
// and returned so callers can ignore them without breaking the main
// request flow.  Messages are marked persistent.
func (p *Publisher) PublishBookingChanged(ctx context.Context, event BookingChangedEvent) error {
    if p == nil {
        return nil
    }
    conn, err := amqp.Dial(p.url)
    if err != nil {
        log.Printf("rabbitmq: dial failed: %v", err)
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        log.Printf("rabbitmq: channel open failed: %v", err)
        return err
    }
    defer func() { _ = ch.Close() }()

    // Idempotent declare; durable so messages survive broker restarts.
    if _, err := ch.QueueDeclare(bookingQueueName, true, false, false, false, nil); err != nil {
        log.Printf("rabbitmq: queue declare failed: %v", err)
        return err
    }

    if event.ChangedAt == "" {
        event.ChangedAt = time.Now().UTC().Format(time.RFC3339)
    }
    body, err := json.Marshal(event)
    if err != nil {
        log.Printf("rabbitmq: marshal event failed: %v", err)
        return err
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        Timestamp:    time.Now().UTC(),
        Body:         body,
    }

    if err := ch.PublishWithContext(ctx, "", bookingQueueName, false, false, pub); err != nil {
        log.Printf("rabbitmq: publish failed: %v", err)
        return err
    }
    return nil
}
