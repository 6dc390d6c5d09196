//go:build unit
// +build unit

package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/config"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry() *audit.LogEntry {
	return &audit.LogEntry{
		ID:          "5f0c7a5e-34a4-4bfb-8c7a-8a9e8c1a2b3c",
		Action:      audit.ActionUpdate,
		LoggedAt:    time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC),
		ObjectID:    "3c1a0b9e-0c8f-4e0a-9f0a-6f2b8d4c7e11",
		ObjectClass: "Prospect",
		Version:     2,
		Data:        map[string]interface{}{"status": "qualified"},
		Username:    "admin@eprofos.fr",
	}
}

func TestKafkaAuditPublisher_Publish(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewSaramaConfig(config.KafkaSettings{ClientID: "test"}))
	entry := testEntry()

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "eprofos.audit" {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "Prospect:"+entry.ObjectID {
			return errors.New("unexpected key " + string(key))
		}
		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var event AuditEvent
		if err := json.Unmarshal(value, &event); err != nil {
			return err
		}
		if event.Version != 2 || event.Changes["status"] != "qualified" {
			return errors.New("unexpected payload")
		}
		return nil
	})

	publisher := NewKafkaAuditPublisherWithProducer(producer, "eprofos.audit", testutil.SetupTestLogger(t))
	require.NoError(t, publisher.Publish(context.Background(), entry))
	require.NoError(t, publisher.Close())
}

func TestKafkaAuditPublisher_PublishFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewSaramaConfig(config.KafkaSettings{}))
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := NewKafkaAuditPublisherWithProducer(producer, "eprofos.audit", testutil.SetupTestLogger(t))
	err := publisher.Publish(context.Background(), testEntry())

	require.Error(t, err)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, publisher.Close())
}

func TestKafkaAuditPublisher_CancelledContext(t *testing.T) {
	producer := mocks.NewSyncProducer(t, NewSaramaConfig(config.KafkaSettings{}))
	publisher := NewKafkaAuditPublisherWithProducer(producer, "eprofos.audit", testutil.SetupTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, publisher.Publish(ctx, testEntry()), context.Canceled)
	require.NoError(t, publisher.Close())
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher()
	assert.NoError(t, publisher.Publish(context.Background(), testEntry()))
	assert.NoError(t, publisher.Close())
}
