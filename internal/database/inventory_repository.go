package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/careops/staff-dashboard-backend/internal/models"
	"github.com/google/uuid"
)

// InventoryRepository handles inventory database operations
type InventoryRepository struct {
	db DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db DB) *InventoryRepository {
	return &InventoryRepository{
		db: db,
	}
}

// Save upserts an inventory item keyed by item name: saving an existing
// name updates quantities and expiry instead of creating a duplicate.
func (r *InventoryRepository) Save(name string, quantity, minQuantity int, expiry *string) (*models.InventoryItem, error) {
	item := &models.InventoryItem{
		ID:          uuid.New(),
		ItemName:    name,
		Quantity:    quantity,
		MinQuantity: minQuantity,
		Expiry:      expiry,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	query := `
		INSERT INTO inventory (id, item_name, quantity, min_quantity, expiry, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (item_name) DO UPDATE
		SET quantity = EXCLUDED.quantity,
		    min_quantity = EXCLUDED.min_quantity,
		    expiry = EXCLUDED.expiry,
		    updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		query,
		item.ID,
		item.ItemName,
		item.Quantity,
		item.MinQuantity,
		item.Expiry,
		item.CreatedAt,
		item.UpdatedAt,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save inventory item: %w", err)
	}

	return item, nil
}

// GetByName retrieves an inventory item by its unique name. Returns nil
// without error when no record exists.
func (r *InventoryRepository) GetByName(name string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	query := `SELECT * FROM inventory WHERE item_name = $1`
	err := r.db.Get(&item, query, name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return &item, nil
}

// List retrieves all inventory items
func (r *InventoryRepository) List() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	query := `SELECT * FROM inventory ORDER BY item_name`
	err := r.db.Select(&items, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

// Delete removes an inventory item
func (r *InventoryRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
