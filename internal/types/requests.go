package types

// RecipeDraft is the payload for creating a recipe. The store assigns the id
// and creation timestamp; ingredient and step ids are filled in when absent.
type RecipeDraft struct {
	Title       string       `json:"title" binding:"required"`
	Description string       `json:"description"`
	ImageURL    string       `json:"imageUrl"`
	PrepTime    int          `json:"prepTime"`
	CookTime    int          `json:"cookTime"`
	Servings    int          `json:"servings"`
	Difficulty  Difficulty   `json:"difficulty"`
	Category    string       `json:"category"`
	Ingredients []Ingredient `json:"ingredients" binding:"required"`
	Steps       []Step       `json:"steps" binding:"required"`
	IsFavorite  bool         `json:"isFavorite"`
	Source      string       `json:"source"`
	SourceType  RecipeSource `json:"sourceType"`
	ImportedAt  string       `json:"importedAt"`
	Tags        []string     `json:"tags"`
}

// RecipeUpdate carries a partial field set for updating a recipe in place.
// Nil pointers leave the existing value untouched.
type RecipeUpdate struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	ImageURL    *string       `json:"imageUrl"`
	PrepTime    *int          `json:"prepTime"`
	CookTime    *int          `json:"cookTime"`
	Servings    *int          `json:"servings"`
	Difficulty  *Difficulty   `json:"difficulty"`
	Category    *string       `json:"category"`
	Ingredients *[]Ingredient `json:"ingredients"`
	Steps       *[]Step       `json:"steps"`
	IsFavorite  *bool         `json:"isFavorite"`
	Source      *string       `json:"source"`
	SourceType  *RecipeSource `json:"sourceType"`
	ImportedAt  *string       `json:"importedAt"`
	Tags        *[]string     `json:"tags"`
}

// PlanMealRequest is the payload for assigning a recipe to a calendar slot.
type PlanMealRequest struct {
	RecipeID string `json:"recipe_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	MealType string `json:"meal_type" binding:"required"`
}

// ShoppingListRequest selects the planned meals a shopping list is derived from.
type ShoppingListRequest struct {
	MealIDs []string `json:"meal_ids" binding:"required"`
}
