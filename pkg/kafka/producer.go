// Package kafka publishes matching lifecycle events for downstream
// consumers (the collaboration email workflow among them).
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/segmentio/kafka-go"

	"github.com/Ramsey-B/clover/pkg/tracing"
)

// Producer handles Kafka event emission
type Producer struct {
	writer *kafka.Writer
	logger ectologger.Logger
	topic  string
}

// ProducerConfig holds Kafka producer configuration
type ProducerConfig struct {
	Brokers      []string
	Topic        string
	BatchSize    int
	BatchTimeout time.Duration
	RequiredAcks int
	Compression  string
}

// NewProducer creates a new Kafka producer
func NewProducer(cfg ProducerConfig, logger ectologger.Logger) *Producer {
	compression := kafka.Snappy
	switch cfg.Compression {
	case "gzip":
		compression = kafka.Gzip
	case "lz4":
		compression = kafka.Lz4
	case "zstd":
		compression = kafka.Zstd
	case "none":
		compression = 0
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchSize:              cfg.BatchSize,
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequiredAcks(cfg.RequiredAcks),
		Compression:            compression,
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		writer: writer,
		logger: logger,
		topic:  cfg.Topic,
	}
}

// Close closes the producer
func (p *Producer) Close() error {
	return p.writer.Close()
}

// CollaborationEvent announces a completed collaboration discovery scan.
// Downstream, the email workflow turns confirmed entries into outbound
// collaboration offers.
type CollaborationEvent struct {
	EventType    string    `json:"event_type"` // collaboration.discovered
	PropertyID   string    `json:"property_id"`
	OwnerAgentID string    `json:"owner_agent_id"`
	MinMatch     int       `json:"min_match"`
	AgentIDs     []string  `json:"agent_ids"`
	ClientCount  int       `json:"client_count"`
	Timestamp    time.Time `json:"timestamp"`
}

// PublishCollaborationEvent publishes a collaboration event to Kafka
func (p *Producer) PublishCollaborationEvent(ctx context.Context, event *CollaborationEvent) error {
	ctx, span := tracing.StartSpan(ctx, "kafka.Producer.PublishCollaborationEvent")
	defer span.End()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.PropertyID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "owner_agent_id", Value: []byte(event.OwnerAgentID)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.WithContext(ctx).WithError(err).Error("Failed to publish collaboration event")
		return err
	}

	p.logger.WithContext(ctx).WithFields(map[string]any{
		"event_type":  event.EventType,
		"property_id": event.PropertyID,
		"agent_count": len(event.AgentIDs),
	}).Debug("Published collaboration event")

	return nil
}
