package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mealkeep/backend/internal/store"
	"github.com/mealkeep/backend/internal/types"
)

// recentWindow is how far back the "recent" source filter reaches.
const recentWindow = 7 * 24 * time.Hour

// RecipeHandler serves the recipe collection.
type RecipeHandler struct {
	store *store.Store
}

// NewRecipeHandler creates a new recipe handler over the shared store.
func NewRecipeHandler(s *store.Store) *RecipeHandler {
	return &RecipeHandler{store: s}
}

// RegisterRoutes registers the recipe routes.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/categories", h.ListCategories)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", h.CreateRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
		recipes.POST("/:id/favorite", h.ToggleFavorite)
	}
}

// ListRecipes returns the collection, filtered by the query params the app's
// list screen uses: q, category, source (all/recent/<sourceType>), tag
// (a tag name or "Favorites") and favorites=true.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes := h.store.Recipes()

	if search := strings.ToLower(c.Query("q")); search != "" {
		recipes = filterRecipes(recipes, func(r types.Recipe) bool {
			return strings.Contains(strings.ToLower(r.Title), search) ||
				strings.Contains(strings.ToLower(r.Description), search)
		})
	}

	if category := c.Query("category"); category != "" && category != "All" {
		recipes = filterRecipes(recipes, func(r types.Recipe) bool {
			return r.Category == category
		})
	}

	switch source := c.Query("source"); source {
	case "", "all":
	case "recent":
		cutoff := time.Now().Add(-recentWindow)
		recipes = filterRecipes(recipes, func(r types.Recipe) bool {
			imported, err := time.Parse(time.RFC3339, r.ImportedAt)
			return err == nil && imported.After(cutoff)
		})
	default:
		recipes = filterRecipes(recipes, func(r types.Recipe) bool {
			return r.SourceType == types.RecipeSource(source)
		})
	}

	if tag := c.Query("tag"); tag != "" {
		if tag == "Favorites" {
			recipes = filterRecipes(recipes, func(r types.Recipe) bool { return r.IsFavorite })
		} else {
			recipes = filterRecipes(recipes, func(r types.Recipe) bool {
				for _, t := range r.Tags {
					if t == tag {
						return true
					}
				}
				return false
			})
		}
	}

	if c.Query("favorites") == "true" {
		recipes = filterRecipes(recipes, func(r types.Recipe) bool { return r.IsFavorite })
	}

	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
	})
}

// ListCategories returns the category filter list the app presents.
func (h *RecipeHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": store.Categories,
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id := c.Param("id")
	recipe, ok := h.store.RecipeByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// CreateRecipe validates the draft and adds it to the store. The store itself
// performs no validation, so the required-fields contract lives here.
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var draft types.RecipeDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(draft.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title must not be empty"})
		return
	}
	if len(draft.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one ingredient is required"})
		return
	}
	if len(draft.Steps) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one step is required"})
		return
	}

	recipe := h.store.AddRecipe(draft)
	c.JSON(http.StatusCreated, gin.H{
		"recipe": recipe,
	})
}

// UpdateRecipe merges a partial field set into the recipe. Unknown ids are a
// no-op, not an error, so a re-sent update cannot fail.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id := c.Param("id")
	var update types.RecipeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.store.UpdateRecipe(id, update)
	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe updated successfully",
		"id":      id,
	})
}

// DeleteRecipe removes the recipe and its planned meals. Deleting an unknown
// or already-deleted id succeeds, so a double-tapped delete stays harmless.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id := c.Param("id")
	h.store.DeleteRecipe(id)
	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe deleted successfully",
		"id":      id,
	})
}

func (h *RecipeHandler) ToggleFavorite(c *gin.Context) {
	id := c.Param("id")
	recipe, ok := h.store.ToggleFavorite(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe": recipe,
	})
}

func filterRecipes(recipes []types.Recipe, keep func(types.Recipe) bool) []types.Recipe {
	out := recipes[:0]
	for _, r := range recipes {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
