package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tuanvumaihuynh/inventory-service/internal/model"
	"github.com/tuanvumaihuynh/inventory-service/internal/storage/db"
)

type postgresInventoryRepository struct {
	db db.DB
}

// NewPostgresInventoryRepository returns an InventoryRepository backed by the inventory table.
func NewPostgresInventoryRepository(db db.DB) InventoryRepository {
	return &postgresInventoryRepository{db: db}
}

func (r postgresInventoryRepository) Insert(ctx context.Context, inv model.Inventory) (string, error) {
	var id string
	if err := r.db.QueryRow(ctx, `
		INSERT INTO inventory (name, description, quantity, price)
		VALUES (@name, @description, @quantity, @price)
		RETURNING id::text
	`, pgx.NamedArgs{
		"name":        inv.Name,
		"description": inv.Description,
		"quantity":    inv.Quantity,
		"price":       inv.Price,
	}).Scan(&id); err != nil {
		return "", fmt.Errorf("insert inventory: %w", err)
	}

	return id, nil
}

func (r postgresInventoryRepository) Replace(ctx context.Context, id string, inv model.Inventory) (bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE inventory
		SET
			name        = @name,
			description = @description,
			quantity    = @quantity,
			price       = @price,
			updated_at  = NOW()
		WHERE id = @id
	`, pgx.NamedArgs{
		"id":          uid.String(),
		"name":        inv.Name,
		"description": inv.Description,
		"quantity":    inv.Quantity,
		"price":       inv.Price,
	})
	if err != nil {
		return false, fmt.Errorf("update inventory: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r postgresInventoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return false, nil
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, uid.String())
	if err != nil {
		return false, fmt.Errorf("delete inventory: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r postgresInventoryRepository) List(ctx context.Context) ([]model.Inventory, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id::text, name, description, quantity, price
		FROM inventory
	`)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}

	items, err := pgx.CollectRows(rows, scanPostgresInventory)
	if err != nil {
		return nil, fmt.Errorf("collect inventory rows: %w", err)
	}

	return items, nil
}

func (r postgresInventoryRepository) Get(ctx context.Context, id string) (model.Inventory, bool, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return model.Inventory{}, false, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id::text, name, description, quantity, price
		FROM inventory
		WHERE id = $1
	`, uid.String())
	if err != nil {
		return model.Inventory{}, false, fmt.Errorf("get inventory: %w", err)
	}

	inv, err := pgx.CollectExactlyOneRow(rows, scanPostgresInventory)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Inventory{}, false, nil
		}
		return model.Inventory{}, false, fmt.Errorf("collect inventory row: %w", err)
	}

	return inv, true, nil
}

func scanPostgresInventory(row pgx.CollectableRow) (model.Inventory, error) {
	var inv model.Inventory
	err := row.Scan(&inv.ID, &inv.Name, &inv.Description, &inv.Quantity, &inv.Price)
	return inv, err
}
