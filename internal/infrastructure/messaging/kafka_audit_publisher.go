package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/config"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/logger"
)

type kafkaAuditPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   logger.Logger
}

// NewSaramaConfig returns the producer configuration used for audit events.
func NewSaramaConfig(settings config.KafkaSettings) *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_8_0_0
	cfg.ClientID = settings.ClientID
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true
	cfg.Producer.Compression = sarama.CompressionSnappy
	return cfg
}

// NewKafkaAuditPublisher connects a synchronous producer to the configured brokers.
func NewKafkaAuditPublisher(settings config.KafkaSettings, logger logger.Logger) (audit.EventPublisher, error) {
	producer, err := sarama.NewSyncProducer(settings.Brokers, NewSaramaConfig(settings))
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return NewKafkaAuditPublisherWithProducer(producer, settings.Topic, logger), nil
}

// NewKafkaAuditPublisherWithProducer wraps an existing producer.
func NewKafkaAuditPublisherWithProducer(producer sarama.SyncProducer, topic string, logger logger.Logger) audit.EventPublisher {
	return &kafkaAuditPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// Publish sends entry keyed by its object so every version of one object
// lands on the same partition in order.
func (p *kafkaAuditPublisher) Publish(ctx context.Context, entry *audit.LogEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(NewAuditEvent(entry))
	if err != nil {
		return fmt.Errorf("failed to encode audit event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(entry.ObjectClass + ":" + entry.ObjectID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("action"), Value: []byte(entry.Action)},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to publish audit event %s: %w", entry.ID, err)
	}

	p.logger.Debug("Published audit event ", entry.ID, " to partition ", partition, " at offset ", offset)
	return nil
}

func (p *kafkaAuditPublisher) Close() error {
	return p.producer.Close()
}
