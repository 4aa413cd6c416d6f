package producer

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/service"

	"github.com/segmentio/kafka-go"
)

var (
	_ service.EmailSender = (*EmailProducer)(nil)
	_ service.EventBus    = (*OrderEventProducer)(nil)
)

// messageWriter is the part of *kafka.Writer the producers use.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func newWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
	}
}

func write(ctx context.Context, w messageWriter, key string, headers []kafka.Header, v any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	value, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return w.WriteMessages(ctx, kafka.Message{
		Key:     []byte(key),
		Value:   value,
		Headers: headers,
	})
}

type EmailProducer struct {
	writer messageWriter
}

func NewEmailProducer(brokers []string, topic string) *EmailProducer {
	return &EmailProducer{writer: newWriter(brokers, topic)}
}

func (p *EmailProducer) SendEmail(ctx context.Context, key string, msg service.EmailMessage) error {
	return write(ctx, p.writer, key, nil, msg)
}

func (p *EmailProducer) Close() error {
	return p.writer.Close()
}

const (
	EventOrderCreated   = "order.created"
	EventOrderCancelled = "order.cancelled"
)

// OrderEventProducer publishes order lifecycle events keyed by order id so
// that all events of one order land on the same partition.
type OrderEventProducer struct {
	writer messageWriter
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	return &OrderEventProducer{writer: newWriter(brokers, topic)}
}

func eventHeader(name string) []kafka.Header {
	return []kafka.Header{{Key: "event", Value: []byte(name)}}
}

func (p *OrderEventProducer) PublishOrderCreated(ctx context.Context, e service.OrderCreatedEvent) error {
	return write(ctx, p.writer, e.OrderID.Hex(), eventHeader(EventOrderCreated), e)
}

func (p *OrderEventProducer) PublishOrderCancelled(ctx context.Context, e service.OrderCancelledEvent) error {
	return write(ctx, p.writer, e.OrderID.Hex(), eventHeader(EventOrderCancelled), e)
}

func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}
