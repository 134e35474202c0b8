// Command seed_recipes overwrites the stored recipe collection with the
// built-in sample set. Useful for resetting a development database.
package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/mealkeep/backend/config"
	"github.com/mealkeep/backend/internal/database"
	"github.com/mealkeep/backend/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	kv, err := database.NewKV(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	recipes := store.SampleRecipes(time.Now())
	data, err := json.Marshal(recipes)
	if err != nil {
		log.Fatalf("Failed to marshal sample recipes: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := kv.Set(ctx, "recipes", string(data)); err != nil {
		log.Fatalf("Failed to write sample recipes: %v", err)
	}

	log.Printf("Successfully seeded %d recipes", len(recipes))
}
