package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var jsonMarshal = json.Marshal

// DefaultTopic receives every change event of the directory.
const DefaultTopic = "workforce.changes"

const queueSize = 1000

type EventType string

const (
	ProvinceCreated    EventType = "province_created"
	ProvinceUpdated    EventType = "province_updated"
	ProvinceDeleted    EventType = "province_deleted"
	EmployeeCreated    EventType = "employee_created"
	EmployeeUpdated    EventType = "employee_updated"
	EmployeeDeleted    EventType = "employee_deleted"
	WorkCenterCreated  EventType = "work_center_created"
	WorkCenterUpdated  EventType = "work_center_updated"
	WorkCenterDeleted  EventType = "work_center_deleted"
	AssignmentLinked   EventType = "assignment_linked"
	AssignmentUnlinked EventType = "assignment_unlinked"
)

// Resource is the entity name prefix of the event type, e.g. "work_center".
func (t EventType) Resource() string {
	s := string(t)
	if i := strings.LastIndex(s, "_"); i > 0 {
		return s[:i]
	}
	return s
}

type Event struct {
	ID         uuid.UUID `json:"id"`
	Type       EventType `json:"type"`
	Resource   string    `json:"resource"`
	ResourceID uint      `json:"resourceId"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload,omitempty"`
}

// Key partitions events so that all changes of one entity stay ordered.
func (e Event) Key() string {
	return fmt.Sprintf("%s:%d", e.Resource, e.ResourceID)
}

type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes events asynchronously. Produce never blocks the
// caller: when the queue is full the event is dropped and logged.
type Producer struct {
	writer    KafkaWriter
	events    chan Event
	logger    *zap.Logger
	closeChan chan struct{}
}

func NewProducer(brokers []string, logger *zap.Logger, topic string) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers configured")
	}
	// Create topic if it doesn't exist
	conn, err := kafka.Dial("tcp", brokers[0])
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	err = conn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     3,
		ReplicationFactor: 1,
	})
	if err != nil {
		logger.Warn("failed to create topic (may already exist)", zap.Error(err))
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Balancer: &kafka.Hash{},
		Topic:    topic,
	}
	return newProducer(writer, logger, queueSize), nil
}

func newProducer(writer KafkaWriter, logger *zap.Logger, size int) *Producer {
	p := &Producer{
		writer:    writer,
		events:    make(chan Event, size),
		logger:    logger.Named("kafka_producer"),
		closeChan: make(chan struct{}),
	}
	go p.eventLoop()
	return p
}

func (p *Producer) Produce(eventType EventType, id uint, payload any) {
	event := Event{
		ID:         uuid.New(),
		Type:       eventType,
		Resource:   eventType.Resource(),
		ResourceID: id,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	select {
	case p.events <- event:
	default:
		p.logger.Warn("Kafka producer queue full, dropping event",
			zap.String("event_type", string(eventType)),
			zap.Uint("resource_id", id),
		)
	}
}

func (p *Producer) eventLoop() {
	for {
		select {
		case event := <-p.events:
			p.sendEvent(context.Background(), event)
		case <-p.closeChan:
			return
		}
	}
}

func (p *Producer) sendEvent(ctx context.Context, event Event) {
	value, err := jsonMarshal(event)
	if err != nil {
		p.logger.Error("Failed to serialize event",
			zap.Error(err),
			zap.String("event_key", event.Key()),
		)
		return
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Key()),
		Value: value,
	})
	if err != nil {
		p.logger.Error("Failed to produce event",
			zap.Error(err),
			zap.String("event_type", string(event.Type)),
			zap.String("event_key", event.Key()),
		)
	}
}

func (p *Producer) Close() {
	close(p.closeChan)
	if err := p.writer.Close(); err != nil {
		p.logger.Error("Failed to close Kafka writer", zap.Error(err))
	}
}

// NopProducer discards events. It is used when no brokers are configured.
type NopProducer struct{}

func (NopProducer) Produce(EventType, uint, any) {}

func (NopProducer) Close() {}
