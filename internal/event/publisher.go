package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tuanvumaihuynh/inventory-service/internal/storage/mq"
	"github.com/tuanvumaihuynh/inventory-service/pkg/mqheader"
)

// Publisher publishes inventory change events.
type Publisher interface {
	PublishInventoryChanged(ctx context.Context, ev InventoryChangedEvent) error
}

var (
	_ Publisher = (*KafkaPublisher)(nil)
	_ Publisher = NopPublisher{}
)

// KafkaPublisher publishes events to a single topic keyed by inventory id, so
// every change of one record lands on the same partition in order.
type KafkaPublisher struct {
	producer mq.Producer
	topic    string
}

func NewKafkaPublisher(producer mq.Producer, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *KafkaPublisher) PublishInventoryChanged(ctx context.Context, ev InventoryChangedEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal inventory changed event: %w", err)
	}

	if err := p.producer.Produce(ctx, mq.ProduceMsg{
		Topic:   p.topic,
		Key:     ev.InventoryID,
		Headers: mqheader.Build(ctx),
		Payload: payload,
	}); err != nil {
		return fmt.Errorf("produce inventory changed event: %w", err)
	}

	return nil
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishInventoryChanged(context.Context, InventoryChangedEvent) error {
	return nil
}
