package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealkeep/backend/internal/types"
)

func TestGenerateShoppingListSingleMeal(t *testing.T) {
	s, _ := newTestStore(t)
	pasta := s.AddRecipe(pastaDraft())
	meal := s.PlanMeal(pasta.ID, "2024-06-01", types.MealDinner)

	items := s.GenerateShoppingList([]string{meal.ID})
	require.Len(t, items, 1)
	assert.Equal(t, "Garlic", items[0].Name)
	assert.Equal(t, "2", items[0].Amount)
	assert.Equal(t, "cloves", items[0].Unit)
	assert.Equal(t, []string{pasta.ID}, items[0].RecipeIDs)
	assert.False(t, items[0].IsPurchased)
	assert.False(t, items[0].InPantry)
}

func TestGenerateShoppingListGroupsCaseInsensitively(t *testing.T) {
	s, _ := newTestStore(t)
	pasta := s.AddRecipe(pastaDraft()) // "Garlic", 2 cloves
	curry := s.AddRecipe(types.RecipeDraft{
		Title: "Curry",
		Ingredients: []types.Ingredient{
			{Name: "garlic", Amount: "4", Unit: "pcs"},
			{Name: "Coconut milk", Amount: "400", Unit: "ml"},
		},
		Steps: []types.Step{{Instruction: "Simmer."}},
	})

	m1 := s.PlanMeal(pasta.ID, "2024-06-01", types.MealDinner)
	m2 := s.PlanMeal(curry.ID, "2024-06-02", types.MealDinner)

	items := s.GenerateShoppingList([]string{m1.ID, m2.ID})
	require.Len(t, items, 2)

	// First-seen instance wins the display fields; both recipes contribute ids.
	garlic := items[0]
	assert.Equal(t, "Garlic", garlic.Name)
	assert.Equal(t, "2", garlic.Amount)
	assert.Equal(t, "cloves", garlic.Unit)
	assert.Equal(t, []string{pasta.ID, curry.ID}, garlic.RecipeIDs)

	assert.Equal(t, "Coconut milk", items[1].Name)
}

func TestGenerateShoppingListKeepsFirstSeenAmountAndUnit(t *testing.T) {
	s, _ := newTestStore(t)
	a := s.AddRecipe(types.RecipeDraft{
		Title:       "A",
		Ingredients: []types.Ingredient{{Name: "Milk", Amount: "1", Unit: "cup"}},
		Steps:       []types.Step{{Instruction: "Pour."}},
	})
	b := s.AddRecipe(types.RecipeDraft{
		Title:       "B",
		Ingredients: []types.Ingredient{{Name: "milk", Amount: "240", Unit: "ml"}},
		Steps:       []types.Step{{Instruction: "Pour."}},
	})

	m1 := s.PlanMeal(a.ID, "2024-06-01", types.MealBreakfast)
	m2 := s.PlanMeal(b.ID, "2024-06-01", types.MealDinner)

	// Amounts are never summed or converted; the first instance stands for all.
	items := s.GenerateShoppingList([]string{m1.ID, m2.ID})
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].Amount)
	assert.Equal(t, "cup", items[0].Unit)
}

func TestGenerateShoppingListSeedsPantryFlagFromIngredient(t *testing.T) {
	s, _ := newTestStore(t)
	r := s.AddRecipe(types.RecipeDraft{
		Title: "Toast",
		Ingredients: []types.Ingredient{
			{Name: "Salt", Amount: "1", Unit: "pinch", InPantry: true},
			{Name: "Bread", Amount: "2", Unit: "slices"},
		},
		Steps: []types.Step{{Instruction: "Toast."}},
	})
	meal := s.PlanMeal(r.ID, "2024-06-01", types.MealBreakfast)

	items := s.GenerateShoppingList([]string{meal.ID})
	require.Len(t, items, 2)
	assert.True(t, items[0].InPantry)
	assert.False(t, items[1].InPantry)
}

func TestGenerateShoppingListSkipsDanglingRecipeReferences(t *testing.T) {
	s, _ := newTestStore(t)
	meal := s.PlanMeal("deleted-recipe", "2024-06-01", types.MealDinner)

	items := s.GenerateShoppingList([]string{meal.ID})
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGenerateShoppingListIgnoresUnknownMealIDs(t *testing.T) {
	s, _ := newTestStore(t)
	pasta := s.AddRecipe(pastaDraft())
	meal := s.PlanMeal(pasta.ID, "2024-06-01", types.MealDinner)

	items := s.GenerateShoppingList([]string{meal.ID, "not-a-meal"})
	assert.Len(t, items, 1)
}

func TestGenerateShoppingListEmptySelection(t *testing.T) {
	s, _ := newTestStore(t)
	items := s.GenerateShoppingList(nil)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
