package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/careops/staff-dashboard-backend/internal/database"
	"github.com/careops/staff-dashboard-backend/internal/models"
	"github.com/careops/staff-dashboard-backend/internal/services"
	"github.com/careops/staff-dashboard-backend/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InventoryHandler serves the supply inventory. Items are keyed by name:
// saving an existing name updates it instead of duplicating.
type InventoryHandler struct {
	inventoryRepo *database.InventoryRepository
	evaluator     *services.StatusEvaluator
	dates         *validator.DateValidator
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryRepo *database.InventoryRepository, evaluator *services.StatusEvaluator) *InventoryHandler {
	return &InventoryHandler{
		inventoryRepo: inventoryRepo,
		evaluator:     evaluator,
		dates:         validator.NewDateValidator(),
	}
}

// ListInventory retrieves all items with evaluated statuses
// GET /api/v1/inventory
func (h *InventoryHandler) ListInventory(c *gin.Context) {
	items, err := h.inventoryRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
		return
	}

	today := time.Now()
	result := make([]models.InventoryItemWithStatus, 0, len(items))
	for _, item := range items {
		result = append(result, models.InventoryItemWithStatus{
			InventoryItem: item,
			Status:        h.evaluator.InventoryStatus(item.Quantity, item.MinQuantity, item.Expiry, today),
		})
	}

	c.JSON(http.StatusOK, result)
}

// SaveInventoryItem creates or updates an item by name
// POST /api/v1/inventory
func (h *InventoryHandler) SaveInventoryItem(c *gin.Context) {
	var input models.InventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if *input.Quantity < 0 || *input.MinQuantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantities must not be negative"})
		return
	}
	if err := h.dates.ValidateOptional(input.Expiry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expiry: " + err.Error()})
		return
	}

	item, err := h.inventoryRepo.Save(input.ItemName, *input.Quantity, *input.MinQuantity, input.Expiry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save inventory item"})
		return
	}

	c.JSON(http.StatusOK, models.InventoryItemWithStatus{
		InventoryItem: *item,
		Status:        h.evaluator.InventoryStatus(item.Quantity, item.MinQuantity, item.Expiry, time.Now()),
	})
}

// DeleteInventoryItem removes an item
// DELETE /api/v1/inventory/:id
func (h *InventoryHandler) DeleteInventoryItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inventory item ID"})
		return
	}

	if err := h.inventoryRepo.Delete(id); err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inventory item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted successfully"})
}
