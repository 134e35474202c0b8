package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mealkeep/backend/internal/store"
	"github.com/mealkeep/backend/internal/types"
)

const dateLayout = "2006-01-02"

// MealHandler serves the meal-plan calendar.
type MealHandler struct {
	store *store.Store
}

// NewMealHandler creates a new meal-plan handler over the shared store.
func NewMealHandler(s *store.Store) *MealHandler {
	return &MealHandler{store: s}
}

// RegisterRoutes registers the meal-plan routes.
func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.GET("", h.ListMeals)
		meals.GET("/upcoming", h.UpcomingMeals)
		meals.POST("", h.PlanMeal)
		meals.DELETE("/:id", h.RemoveMeal)
	}
}

// ListMeals returns the planned meals for an exact calendar date, or the
// whole collection when no date is given.
func (h *MealHandler) ListMeals(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusOK, gin.H{
			"meals": h.store.PlannedMeals(),
		})
		return
	}

	if _, err := time.Parse(dateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"meals": h.store.MealsForDate(date),
	})
}

// UpcomingMeals returns up to five meals dated today or later, soonest first.
func (h *MealHandler) UpcomingMeals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"meals": h.store.UpcomingMeals(),
	})
}

// PlanMeal assigns a recipe to a date and slot. The recipe id is not checked
// against the collection; the store tolerates dangling references.
func (h *MealHandler) PlanMeal(c *gin.Context) {
	var req types.PlanMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
		return
	}
	if !types.ValidMealType(req.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal_type must be breakfast, lunch, dinner or snack"})
		return
	}

	meal := h.store.PlanMeal(req.RecipeID, req.Date, types.MealType(req.MealType))
	c.JSON(http.StatusCreated, gin.H{
		"meal": meal,
	})
}

// RemoveMeal deletes a planned meal by id; unknown ids succeed quietly.
func (h *MealHandler) RemoveMeal(c *gin.Context) {
	h.store.RemovePlannedMeal(c.Param("id"))
	c.Status(http.StatusNoContent)
}
