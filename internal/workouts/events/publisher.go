package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes workout events to a single topic, keyed by owner so
// events of one owner keep their order.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	if topic == "" {
		topic = DefaultTopic
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		BatchTimeout: 50 * time.Millisecond,
		Async:        false,
	}
	return newKafkaPublisher(writer, topic)
}

func newKafkaPublisher(writer messageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		topic:  topic,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event WorkoutLogged) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "events.publish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("topic", p.topic))
	span.SetAttributes(attribute.String("event.id", event.EventID))

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OwnerID),
		Value: payload,
		Time:  event.OccurredAt.UTC(),
		Headers: []kafka.Header{
			{Key: EventTypeHeader, Value: []byte(EventTypeWorkoutLogged)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write event [%s] to [%s]: %w", event.EventID, p.topic, err)
	}

	log.Tracef("published event [%s] for owner [%s]", event.EventID, event.OwnerID)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops all events. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(_ context.Context, event WorkoutLogged) error {
	log.Tracef("event publishing disabled, dropping event [%s]", event.EventID)
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
