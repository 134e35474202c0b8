package types

// Difficulty is the effort rating shown on a recipe card.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// RecipeSource identifies where a recipe was captured from.
type RecipeSource string

const (
	SourceYouTube   RecipeSource = "youtube"
	SourceTikTok    RecipeSource = "tiktok"
	SourceInstagram RecipeSource = "instagram"
	SourcePhoto     RecipeSource = "photo"
	SourceManual    RecipeSource = "manual"
	SourceLink      RecipeSource = "link"
)

// MealType is the calendar slot a planned meal occupies.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// ValidMealType reports whether s is one of the four meal slots.
func ValidMealType(s string) bool {
	switch MealType(s) {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Ingredient is a single line of a recipe's ingredient list. Amount and unit
// are free text exactly as the user entered them.
type Ingredient struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Unit     string `json:"unit"`
	InPantry bool   `json:"inPantry,omitempty"`
}

// Step is one instruction in a recipe, ordered from 1.
type Step struct {
	ID          string `json:"id"`
	Order       int    `json:"order"`
	Instruction string `json:"instruction"`
	Duration    int    `json:"duration,omitempty"`
}

// Recipe is a saved dish with its ingredients and steps.
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	ImageURL    string       `json:"imageUrl"`
	PrepTime    int          `json:"prepTime"`
	CookTime    int          `json:"cookTime"`
	Servings    int          `json:"servings"`
	Difficulty  Difficulty   `json:"difficulty"`
	Category    string       `json:"category"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []Step       `json:"steps"`
	IsFavorite  bool         `json:"isFavorite"`
	CreatedAt   string       `json:"createdAt"`
	Source      string       `json:"source,omitempty"`
	SourceType  RecipeSource `json:"sourceType"`
	ImportedAt  string       `json:"importedAt"`
	Tags        []string     `json:"tags"`
}

// PlannedMeal assigns a recipe to a calendar date and meal slot. RecipeID is
// a weak reference; nothing prevents two meals sharing the same slot.
type PlannedMeal struct {
	ID       string   `json:"id"`
	RecipeID string   `json:"recipeId"`
	Date     string   `json:"date"` // YYYY-MM-DD, compared by exact string match
	MealType MealType `json:"mealType"`
}

// ShoppingItem is a derived aggregation of one ingredient name across the
// selected planned meals. It lives in session state and is never persisted.
// Amount and unit come from the first ingredient instance seen for the
// lowercased name; quantities are not summed or unit-converted.
type ShoppingItem struct {
	ID           string   `json:"id"`
	IngredientID string   `json:"ingredientId"`
	Name         string   `json:"name"`
	Amount       string   `json:"amount"`
	Unit         string   `json:"unit"`
	RecipeIDs    []string `json:"recipeIds"`
	IsPurchased  bool     `json:"isPurchased"`
	InPantry     bool     `json:"inPantry"`
}
