package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/tuanvumaihuynh/inventory-service/internal/model"
)

// ChangeType describes which mutation produced an InventoryChangedEvent.
type ChangeType string

const (
	ChangeTypeCreated ChangeType = "created"
	ChangeTypeUpdated ChangeType = "updated"
	ChangeTypeDeleted ChangeType = "deleted"
)

// InventoryChangedEvent is published after a mutation has been stored.
// Inventory is nil for deletions.
type InventoryChangedEvent struct {
	Type        ChangeType       `json:"type"`
	InventoryID string           `json:"inventoryId"`
	Inventory   *model.Inventory `json:"inventory,omitempty"`
	OccurredAt  time.Time        `json:"occurredAt"`
}

func (s *Service) handleInventoryChangedEvent(ctx context.Context, ev InventoryChangedEvent) error {
	s.logger.InfoContext(ctx, "handling inventory changed event",
		slog.String("type", string(ev.Type)),
		slog.String("inventory_id", ev.InventoryID),
		slog.Time("occurred_at", ev.OccurredAt),
	)
	return nil
}
