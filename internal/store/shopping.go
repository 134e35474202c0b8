package store

import (
	"strings"

	"github.com/mealkeep/backend/internal/types"
)

// GenerateShoppingList derives shopping items for the given planned-meal ids.
// Meals whose recipe no longer exists are skipped. Ingredients group by
// lowercased name: the first instance seen supplies the amount, unit and
// pantry flag, and every contributing occurrence appends its recipe id.
// Amounts are deliberately never summed or unit-converted; "1 cup" and
// "240 ml" of the same name collapse into the first-seen entry. The result is
// session state for the caller and is never persisted.
func (s *Store) GenerateShoppingList(mealIDs []string) []types.ShoppingItem {
	wanted := make(map[string]bool, len(mealIDs))
	for _, id := range mealIDs {
		wanted[id] = true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := []types.ShoppingItem{}
	index := map[string]int{} // lowercased name -> position in items

	for _, meal := range s.meals {
		if !wanted[meal.ID] {
			continue
		}
		recipe, ok := s.recipeLocked(meal.RecipeID)
		if !ok {
			continue
		}
		for _, ing := range recipe.Ingredients {
			key := strings.ToLower(ing.Name)
			if pos, seen := index[key]; seen {
				items[pos].RecipeIDs = append(items[pos].RecipeIDs, recipe.ID)
				continue
			}
			index[key] = len(items)
			items = append(items, types.ShoppingItem{
				ID:           ing.ID,
				IngredientID: ing.ID,
				Name:         ing.Name,
				Amount:       ing.Amount,
				Unit:         ing.Unit,
				RecipeIDs:    []string{recipe.ID},
				IsPurchased:  false,
				InPantry:     ing.InPantry,
			})
		}
	}

	return items
}

func (s *Store) recipeLocked(id string) (types.Recipe, bool) {
	for _, r := range s.recipes {
		if r.ID == id {
			return r, true
		}
	}
	return types.Recipe{}, false
}
