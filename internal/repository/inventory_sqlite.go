package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tuanvumaihuynh/inventory-service/internal/model"
)

type sqliteInventoryRepository struct {
	db *sql.DB
}

// NewSQLiteInventoryRepository returns an InventoryRepository backed by a SQLite database.
// The adapter assigns UUIDv7 ids on insert.
func NewSQLiteInventoryRepository(db *sql.DB) InventoryRepository {
	return &sqliteInventoryRepository{db: db}
}

func (r sqliteInventoryRepository) Insert(ctx context.Context, inv model.Inventory) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid v7: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO inventory (id, name, description, quantity, price)
		VALUES (?, ?, ?, ?, ?)`,
		id.String(), inv.Name, inv.Description, inv.Quantity, inv.Price,
	); err != nil {
		return "", fmt.Errorf("insert inventory: %w", err)
	}

	return id.String(), nil
}

func (r sqliteInventoryRepository) Replace(ctx context.Context, id string, inv model.Inventory) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE inventory
		SET name = ?, description = ?, quantity = ?, price = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		inv.Name, inv.Description, inv.Quantity, inv.Price, id,
	)
	if err != nil {
		return false, fmt.Errorf("update inventory: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r sqliteInventoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM inventory WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete inventory: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r sqliteInventoryRepository) List(ctx context.Context) ([]model.Inventory, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, quantity, price
		FROM inventory`)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	items := []model.Inventory{}
	for rows.Next() {
		var inv model.Inventory
		if err := rows.Scan(&inv.ID, &inv.Name, &inv.Description, &inv.Quantity, &inv.Price); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		items = append(items, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory: %w", err)
	}

	return items, nil
}

func (r sqliteInventoryRepository) Get(ctx context.Context, id string) (model.Inventory, bool, error) {
	var inv model.Inventory
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, quantity, price
		FROM inventory WHERE id = ?`, id,
	).Scan(&inv.ID, &inv.Name, &inv.Description, &inv.Quantity, &inv.Price)

	if errors.Is(err, sql.ErrNoRows) {
		return model.Inventory{}, false, nil
	}
	if err != nil {
		return model.Inventory{}, false, fmt.Errorf("get inventory: %w", err)
	}

	return inv, true, nil
}
