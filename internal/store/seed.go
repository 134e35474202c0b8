package store

import (
	"time"

	"github.com/mealkeep/backend/internal/types"
)

// SampleRecipes returns the built-in starter set written on first run, so a
// fresh install has something to cook, plan and shop with.
func SampleRecipes(now time.Time) []types.Recipe {
	created := now.UTC().Format(time.RFC3339)
	daysAgo := func(days int) string {
		return now.AddDate(0, 0, -days).UTC().Format(time.RFC3339)
	}

	return []types.Recipe{
		{
			ID:          "1",
			Title:       "Creamy Tuscan Pasta",
			Description: "A rich and creamy pasta with sun-dried tomatoes, spinach, and parmesan.",
			ImageURL:    "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=800",
			PrepTime:    10,
			CookTime:    25,
			Servings:    4,
			Difficulty:  types.DifficultyEasy,
			Category:    "Pasta",
			IsFavorite:  true,
			CreatedAt:   created,
			SourceType:  types.SourceTikTok,
			ImportedAt:  daysAgo(2),
			Tags:        []string{"Easy", "Vegetarian"},
			Ingredients: []types.Ingredient{
				{ID: "1-1", Name: "Penne pasta", Amount: "400", Unit: "g"},
				{ID: "1-2", Name: "Heavy cream", Amount: "250", Unit: "ml"},
				{ID: "1-3", Name: "Sun-dried tomatoes", Amount: "100", Unit: "g"},
				{ID: "1-4", Name: "Fresh spinach", Amount: "150", Unit: "g"},
				{ID: "1-5", Name: "Parmesan cheese", Amount: "80", Unit: "g"},
				{ID: "1-6", Name: "Garlic cloves", Amount: "3", Unit: "pcs"},
				{ID: "1-7", Name: "Olive oil", Amount: "2", Unit: "tbsp"},
			},
			Steps: []types.Step{
				{ID: "1-s1", Order: 1, Instruction: "Bring a large pot of salted water to boil. Cook pasta according to package directions.", Duration: 12},
				{ID: "1-s2", Order: 2, Instruction: "While pasta cooks, mince garlic and slice sun-dried tomatoes into strips.", Duration: 3},
				{ID: "1-s3", Order: 3, Instruction: "Heat olive oil in a large pan over medium heat. Sauté garlic until fragrant, about 1 minute.", Duration: 2},
				{ID: "1-s4", Order: 4, Instruction: "Add sun-dried tomatoes and cook for 2 minutes. Pour in heavy cream and bring to a gentle simmer.", Duration: 4},
				{ID: "1-s5", Order: 5, Instruction: "Add spinach and stir until wilted. Season with salt and pepper.", Duration: 2},
				{ID: "1-s6", Order: 6, Instruction: "Drain pasta and add to the sauce. Toss well, then add parmesan and mix until creamy.", Duration: 2},
			},
		},
		{
			ID:          "2",
			Title:       "Thai Green Curry",
			Description: "Aromatic coconut curry with tender chicken and fresh vegetables.",
			ImageURL:    "https://images.unsplash.com/photo-1455619452474-d2be8b1e70cd?w=800",
			PrepTime:    15,
			CookTime:    30,
			Servings:    4,
			Difficulty:  types.DifficultyMedium,
			Category:    "Asian",
			IsFavorite:  false,
			CreatedAt:   created,
			SourceType:  types.SourceYouTube,
			ImportedAt:  daysAgo(7),
			Tags:        []string{"Medium", "High Protein", "Dairy-free"},
			Ingredients: []types.Ingredient{
				{ID: "2-1", Name: "Chicken breast", Amount: "500", Unit: "g"},
				{ID: "2-2", Name: "Coconut milk", Amount: "400", Unit: "ml"},
				{ID: "2-3", Name: "Green curry paste", Amount: "3", Unit: "tbsp"},
				{ID: "2-4", Name: "Bell peppers", Amount: "2", Unit: "pcs"},
				{ID: "2-5", Name: "Bamboo shoots", Amount: "200", Unit: "g"},
				{ID: "2-6", Name: "Thai basil", Amount: "1", Unit: "bunch"},
				{ID: "2-7", Name: "Fish sauce", Amount: "2", Unit: "tbsp"},
				{ID: "2-8", Name: "Jasmine rice", Amount: "300", Unit: "g"},
			},
			Steps: []types.Step{
				{ID: "2-s1", Order: 1, Instruction: "Cook jasmine rice according to package directions.", Duration: 20},
				{ID: "2-s2", Order: 2, Instruction: "Cut chicken into bite-sized pieces. Slice bell peppers.", Duration: 5},
				{ID: "2-s3", Order: 3, Instruction: "Heat a wok over high heat. Add a splash of coconut milk and the curry paste. Fry until fragrant.", Duration: 2},
				{ID: "2-s4", Order: 4, Instruction: "Add chicken pieces and stir-fry until sealed on all sides.", Duration: 5},
				{ID: "2-s5", Order: 5, Instruction: "Pour in remaining coconut milk. Add bell peppers and bamboo shoots. Simmer for 15 minutes.", Duration: 15},
				{ID: "2-s6", Order: 6, Instruction: "Season with fish sauce. Garnish with Thai basil and serve over rice.", Duration: 3},
			},
		},
		{
			ID:          "3",
			Title:       "Classic Avocado Toast",
			Description: "Simple yet satisfying breakfast with creamy avocado and poached eggs.",
			ImageURL:    "https://images.unsplash.com/photo-1541519227354-08fa5d50c44d?w=800",
			PrepTime:    5,
			CookTime:    10,
			Servings:    2,
			Difficulty:  types.DifficultyEasy,
			Category:    "Breakfast",
			IsFavorite:  true,
			CreatedAt:   created,
			SourceType:  types.SourceInstagram,
			ImportedAt:  daysAgo(1),
			Tags:        []string{"Easy", "Quick", "Vegetarian", "High Protein"},
			Ingredients: []types.Ingredient{
				{ID: "3-1", Name: "Sourdough bread", Amount: "2", Unit: "slices"},
				{ID: "3-2", Name: "Ripe avocados", Amount: "2", Unit: "pcs"},
				{ID: "3-3", Name: "Eggs", Amount: "2", Unit: "pcs"},
				{ID: "3-4", Name: "Cherry tomatoes", Amount: "100", Unit: "g"},
				{ID: "3-5", Name: "Red pepper flakes", Amount: "1", Unit: "tsp"},
				{ID: "3-6", Name: "Lemon juice", Amount: "1", Unit: "tbsp"},
			},
			Steps: []types.Step{
				{ID: "3-s1", Order: 1, Instruction: "Toast the sourdough slices until golden and crispy.", Duration: 3},
				{ID: "3-s2", Order: 2, Instruction: "Halve and pit the avocados. Scoop flesh into a bowl and mash with lemon juice, salt, and pepper.", Duration: 2},
				{ID: "3-s3", Order: 3, Instruction: "Bring a pot of water to a gentle simmer. Create a whirlpool and carefully drop in eggs. Poach for 3 minutes.", Duration: 4},
				{ID: "3-s4", Order: 4, Instruction: "Spread mashed avocado generously on toast. Top with poached egg and halved cherry tomatoes.", Duration: 1},
				{ID: "3-s5", Order: 5, Instruction: "Sprinkle with red pepper flakes and serve immediately."},
			},
		},
	}
}

// Categories lists the recipe filter categories the app presents.
var Categories = []string{
	"All",
	"Breakfast",
	"Lunch",
	"Dinner",
	"Pasta",
	"Asian",
	"Salads",
	"Desserts",
	"Snacks",
}
