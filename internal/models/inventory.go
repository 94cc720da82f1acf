package models

import (
	"time"

	"github.com/google/uuid"
)

// InventoryStatus classifies an inventory item against stock levels and
// expiry. Expiry dominates low stock; only one status is ever reported.
type InventoryStatus string

const (
	InventoryOK       InventoryStatus = "OK"
	InventoryLowStock InventoryStatus = "Low Stock"
	InventoryExpired  InventoryStatus = "Expired"
)

// InventoryItem represents a supply item. Item identity is keyed by name:
// saving an existing name updates the record instead of duplicating it.
type InventoryItem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ItemName    string    `json:"item_name" db:"item_name"`
	Quantity    int       `json:"quantity" db:"quantity"`
	MinQuantity int       `json:"min_quantity" db:"min_quantity"`
	Expiry      *string   `json:"expiry,omitempty" db:"expiry"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// InventoryItemInput represents input for saving an inventory item
type InventoryItemInput struct {
	ItemName    string  `json:"item_name" binding:"required"`
	Quantity    *int    `json:"quantity" binding:"required"`
	MinQuantity *int    `json:"min_quantity" binding:"required"`
	Expiry      *string `json:"expiry"`
}

// InventoryItemWithStatus pairs an item with its evaluated status
type InventoryItemWithStatus struct {
	InventoryItem
	Status InventoryStatus `json:"status"`
}
