package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tuanvumaihuynh/inventory-service/internal/storage/mq"
)

// Service is the event service consuming the inventory change feed.
type Service struct {
	logger     *slog.Logger
	mqConsumer mq.Consumer
	topic      string
}

// New creates a new event service.
func New(
	logger *slog.Logger,
	mqConsumer mq.Consumer,
	topic string,
) *Service {
	return &Service{
		logger:     logger.With(slog.String("service", "event")),
		mqConsumer: mqConsumer,
		topic:      topic,
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	if err := s.mqConsumer.RegisterHandler(s.topic, s.handleInventoryChanged); err != nil {
		return nil, fmt.Errorf("register inventory changed event handler: %w", err)
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	cleanup := func() {
		mqCleanup()
	}

	return cleanup, nil
}

func (s *Service) handleInventoryChanged(ctx context.Context, _ string, payload []byte) error {
	var ev InventoryChangedEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return fmt.Errorf("unmarshal inventory changed event: %w", err)
	}

	if err := s.handleInventoryChangedEvent(ctx, ev); err != nil {
		return fmt.Errorf("handle inventory changed event: %w", err)
	}

	return nil
}
