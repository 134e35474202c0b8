package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealkeep/backend/internal/store"
	"github.com/mealkeep/backend/internal/types"
)

// ShoppingHandler derives shopping lists from selected planned meals.
type ShoppingHandler struct {
	store *store.Store
}

// NewShoppingHandler creates a new shopping-list handler over the shared store.
func NewShoppingHandler(s *store.Store) *ShoppingHandler {
	return &ShoppingHandler{store: s}
}

// RegisterRoutes registers the shopping-list route.
func (h *ShoppingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/shopping-list", h.GenerateList)
}

// GenerateList aggregates the ingredients of the selected meals. The result
// is computed fresh on every call and never persisted; purchase and pantry
// state belong to the caller's session.
func (h *ShoppingHandler) GenerateList(c *gin.Context) {
	var req types.ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": h.store.GenerateShoppingList(req.MealIDs),
	})
}
