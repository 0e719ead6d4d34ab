package repository

import (
	"context"

	"github.com/tuanvumaihuynh/inventory-service/internal/model"
)

// InventoryRepository is the minimal contract the inventory API needs from a store.
//
// IDs are opaque to callers. An id the store could never have issued is reported
// as not found rather than as an error.
type InventoryRepository interface {
	// Insert stores inv, ignoring inv.ID, and returns the id assigned by the store.
	Insert(ctx context.Context, inv model.Inventory) (string, error)
	// Replace overwrites every mutable field of the record with the given id.
	Replace(ctx context.Context, id string, inv model.Inventory) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]model.Inventory, error)
	Get(ctx context.Context, id string) (model.Inventory, bool, error)
}
