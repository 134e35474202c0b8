// Package store owns the recipe and meal-plan collections. It is the single
// source of truth: the in-memory state is authoritative and every mutation
// re-serializes the whole affected collection to the key-value layer.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mealkeep/backend/internal/kvstore"
	"github.com/mealkeep/backend/internal/types"
)

// Persisted keys.
const (
	recipesKey    = "recipes"
	mealsKey      = "planned_meals"
	onboardingKey = "onboarding_complete"
)

const dateLayout = "2006-01-02"

const writeTimeout = 10 * time.Second

// upcomingLimit caps the upcoming-meals view.
const upcomingLimit = 5

type writeReq struct {
	key   string
	value string
	done  chan struct{} // flush marker, no write performed
}

// Store holds the recipe and planned-meal collections in memory and keeps
// the key-value layer in sync. Mutations apply to memory synchronously and
// enqueue the persistence write to a single background writer, so writes for
// rapid successive mutations cannot reorder against each other. A failed
// write is retried once and then surfaced through LastWriteErr; the
// in-memory state is never rolled back.
type Store struct {
	kv          kvstore.KV
	seedOnEmpty bool
	now         func() time.Time

	mu        sync.RWMutex
	recipes   []types.Recipe
	meals     []types.PlannedMeal
	onboarded bool
	ready     bool
	lastID    int64

	writeCh chan writeReq
	wg      sync.WaitGroup

	errMu        sync.Mutex
	lastWriteErr error
}

// New creates a Store over the given key-value layer and starts its
// background writer. When seedOnEmpty is set, an absent recipes key is
// bootstrapped with the built-in sample recipes on Load.
func New(kv kvstore.KV, seedOnEmpty bool) *Store {
	s := &Store{
		kv:          kv,
		seedOnEmpty: seedOnEmpty,
		now:         time.Now,
		writeCh:     make(chan writeReq, 64),
	}
	s.wg.Add(1)
	go s.writer()
	return s
}

// Load reads the three persisted keys and marks the store ready. An absent
// recipes key seeds the sample set and persists it immediately; an absent
// meals key starts empty. A read or parse failure is returned and the store
// stays not ready, so a corrupt copy is surfaced instead of silently wiped.
func (s *Store) Load(ctx context.Context) error {
	recipes, err := s.loadRecipes(ctx)
	if err != nil {
		return err
	}

	meals, err := s.loadMeals(ctx)
	if err != nil {
		return err
	}

	raw, err := s.kv.Get(ctx, onboardingKey)
	if err != nil && err != kvstore.ErrKeyNotFound {
		return fmt.Errorf("failed to load onboarding flag: %w", err)
	}
	onboarded := raw == "true"

	s.mu.Lock()
	s.recipes = recipes
	s.meals = meals
	s.onboarded = onboarded
	s.ready = true
	s.mu.Unlock()
	return nil
}

func (s *Store) loadRecipes(ctx context.Context) ([]types.Recipe, error) {
	raw, err := s.kv.Get(ctx, recipesKey)
	if err == kvstore.ErrKeyNotFound {
		if !s.seedOnEmpty {
			return []types.Recipe{}, nil
		}
		seed := SampleRecipes(s.now())
		data, err := json.Marshal(seed)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal seed recipes: %w", err)
		}
		if err := s.kv.Set(ctx, recipesKey, string(data)); err != nil {
			return nil, fmt.Errorf("failed to persist seed recipes: %w", err)
		}
		log.Printf("Seeded %d sample recipes", len(seed))
		return seed, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}
	var recipes []types.Recipe
	if err := json.Unmarshal([]byte(raw), &recipes); err != nil {
		return nil, fmt.Errorf("failed to parse stored recipes: %w", err)
	}
	return recipes, nil
}

func (s *Store) loadMeals(ctx context.Context) ([]types.PlannedMeal, error) {
	raw, err := s.kv.Get(ctx, mealsKey)
	if err == kvstore.ErrKeyNotFound {
		return []types.PlannedMeal{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load planned meals: %w", err)
	}
	var meals []types.PlannedMeal
	if err := json.Unmarshal([]byte(raw), &meals); err != nil {
		return nil, fmt.Errorf("failed to parse stored planned meals: %w", err)
	}
	return meals, nil
}

// Ready reports whether the initial load has completed.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// AddRecipe assigns a fresh id and creation timestamp, appends the recipe and
// persists the collection. The store performs no field validation; callers
// are expected to have checked title, ingredients and steps.
func (s *Store) AddRecipe(draft types.RecipeDraft) types.Recipe {
	s.mu.Lock()
	now := s.now()
	recipe := types.Recipe{
		ID:          s.nextIDLocked(),
		Title:       draft.Title,
		Description: draft.Description,
		ImageURL:    draft.ImageURL,
		PrepTime:    draft.PrepTime,
		CookTime:    draft.CookTime,
		Servings:    draft.Servings,
		Difficulty:  draft.Difficulty,
		Category:    draft.Category,
		Ingredients: fillIngredientIDs(draft.Ingredients),
		Steps:       fillStepIDs(draft.Steps),
		IsFavorite:  draft.IsFavorite,
		CreatedAt:   now.UTC().Format(time.RFC3339),
		Source:      draft.Source,
		SourceType:  draft.SourceType,
		ImportedAt:  draft.ImportedAt,
		Tags:        draft.Tags,
	}
	if recipe.SourceType == "" {
		recipe.SourceType = types.SourceManual
	}
	if recipe.ImportedAt == "" {
		recipe.ImportedAt = recipe.CreatedAt
	}
	if recipe.Tags == nil {
		recipe.Tags = []string{}
	}
	s.recipes = append(s.recipes, recipe)
	s.persistRecipesLocked()
	s.mu.Unlock()
	return recipe
}

// UpdateRecipe merges the non-nil fields of update into the matching recipe
// and persists. Unknown ids are a silent no-op.
func (s *Store) UpdateRecipe(id string, update types.RecipeUpdate) {
	s.mu.Lock()
	idx := s.recipeIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	applyUpdate(&s.recipes[idx], update)
	s.persistRecipesLocked()
	s.mu.Unlock()
}

// DeleteRecipe removes the recipe and cascades to every planned meal that
// references it, persisting both collections. The two writes are independent;
// a crash between them can strand a dangling planned meal, which readers
// skip. Unknown ids are a silent no-op.
func (s *Store) DeleteRecipe(id string) {
	s.mu.Lock()
	idx := s.recipeIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.recipes = append(s.recipes[:idx], s.recipes[idx+1:]...)

	kept := s.meals[:0]
	for _, m := range s.meals {
		if m.RecipeID != id {
			kept = append(kept, m)
		}
	}
	s.meals = kept

	s.persistRecipesLocked()
	s.persistMealsLocked()
	s.mu.Unlock()
}

// ToggleFavorite flips the favorite flag and persists. The second return is
// false when the id is unknown, in which case nothing happens.
func (s *Store) ToggleFavorite(id string) (types.Recipe, bool) {
	s.mu.Lock()
	idx := s.recipeIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return types.Recipe{}, false
	}
	s.recipes[idx].IsFavorite = !s.recipes[idx].IsFavorite
	recipe := s.recipes[idx]
	s.persistRecipesLocked()
	s.mu.Unlock()
	return recipe, true
}

// PlanMeal appends a new planned meal and persists. The recipe id is not
// verified; a dangling reference is possible and is skipped by readers.
func (s *Store) PlanMeal(recipeID, date string, mealType types.MealType) types.PlannedMeal {
	s.mu.Lock()
	meal := types.PlannedMeal{
		ID:       s.nextIDLocked(),
		RecipeID: recipeID,
		Date:     date,
		MealType: mealType,
	}
	s.meals = append(s.meals, meal)
	s.persistMealsLocked()
	s.mu.Unlock()
	return meal
}

// RemovePlannedMeal removes the meal by id and persists. Unknown ids are a
// silent no-op.
func (s *Store) RemovePlannedMeal(id string) {
	s.mu.Lock()
	kept := s.meals[:0]
	removed := false
	for _, m := range s.meals {
		if m.ID == id {
			removed = true
			continue
		}
		kept = append(kept, m)
	}
	s.meals = kept
	if !removed {
		s.mu.Unlock()
		return
	}
	s.persistMealsLocked()
	s.mu.Unlock()
}

// RecipeByID returns the recipe with the given id, if any.
func (s *Store) RecipeByID(id string) (types.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.recipes {
		if r.ID == id {
			return r, true
		}
	}
	return types.Recipe{}, false
}

// Recipes returns a snapshot of the recipe collection in insertion order.
func (s *Store) Recipes() []types.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// PlannedMeals returns a snapshot of the planned-meal collection.
func (s *Store) PlannedMeals() []types.PlannedMeal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.PlannedMeal, len(s.meals))
	copy(out, s.meals)
	return out
}

// MealsForDate returns the planned meals whose date equals the given date
// string exactly. Callers must use the same YYYY-MM-DD format used when
// planning; no timezone normalization happens here.
func (s *Store) MealsForDate(date string) []types.PlannedMeal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []types.PlannedMeal{}
	for _, m := range s.meals {
		if m.Date == date {
			out = append(out, m)
		}
	}
	return out
}

// UpcomingMeals returns the planned meals dated today or later, sorted
// ascending by date, capped to the first five.
func (s *Store) UpcomingMeals() []types.PlannedMeal {
	today := s.now().Format(dateLayout)

	s.mu.RLock()
	out := []types.PlannedMeal{}
	for _, m := range s.meals {
		if m.Date >= today {
			out = append(out, m)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	if len(out) > upcomingLimit {
		out = out[:upcomingLimit]
	}
	return out
}

// CompleteOnboarding marks the first-run flow as done, in memory and in
// storage. Calling it again is harmless.
func (s *Store) CompleteOnboarding() {
	s.mu.Lock()
	s.onboarded = true
	s.enqueue(onboardingKey, "true")
	s.mu.Unlock()
}

// HasCompletedOnboarding reports the persisted first-run flag.
func (s *Store) HasCompletedOnboarding() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.onboarded
}

// LastWriteErr returns the most recent persistence failure, if any. Memory
// has already advanced when a write fails, so this is a reconciliation
// signal, not a rollback.
func (s *Store) LastWriteErr() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.lastWriteErr
}

// Flush blocks until every write enqueued before the call has settled.
func (s *Store) Flush(ctx context.Context) error {
	done := make(chan struct{})
	select {
	case s.writeCh <- writeReq{done: done}:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close drains pending writes and stops the background writer.
func (s *Store) Close() {
	close(s.writeCh)
	s.wg.Wait()
}

func (s *Store) enqueue(key, value string) {
	s.writeCh <- writeReq{key: key, value: value}
}

func (s *Store) writer() {
	defer s.wg.Done()
	for req := range s.writeCh {
		if req.done != nil {
			close(req.done)
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := s.kv.Set(ctx, req.key, req.value)
		if err != nil {
			// Retry once before surfacing; memory is already ahead of storage.
			err = s.kv.Set(ctx, req.key, req.value)
		}
		cancel()
		if err != nil {
			log.Printf("Failed to persist %s: %v", req.key, err)
			s.errMu.Lock()
			s.lastWriteErr = err
			s.errMu.Unlock()
		}
	}
}

// nextIDLocked returns a millisecond-epoch id, nudged forward when two
// mutations land in the same millisecond.
func (s *Store) nextIDLocked() string {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func (s *Store) recipeIndexLocked(id string) int {
	for i, r := range s.recipes {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// persistRecipesLocked snapshots and enqueues the recipe collection. It must
// run with the store lock held so writes reach the writer in mutation order.
func (s *Store) persistRecipesLocked() {
	data, err := json.Marshal(s.recipes)
	if err != nil {
		// Plain data records; this cannot fail in practice.
		log.Printf("Failed to marshal recipes: %v", err)
		return
	}
	s.enqueue(recipesKey, string(data))
}

func (s *Store) persistMealsLocked() {
	data, err := json.Marshal(s.meals)
	if err != nil {
		log.Printf("Failed to marshal planned meals: %v", err)
		return
	}
	s.enqueue(mealsKey, string(data))
}

func fillIngredientIDs(ingredients []types.Ingredient) []types.Ingredient {
	out := make([]types.Ingredient, len(ingredients))
	copy(out, ingredients)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
	}
	return out
}

func fillStepIDs(steps []types.Step) []types.Step {
	out := make([]types.Step, len(steps))
	copy(out, steps)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
		if out[i].Order == 0 {
			out[i].Order = i + 1
		}
	}
	return out
}

func applyUpdate(r *types.Recipe, u types.RecipeUpdate) {
	if u.Title != nil {
		r.Title = *u.Title
	}
	if u.Description != nil {
		r.Description = *u.Description
	}
	if u.ImageURL != nil {
		r.ImageURL = *u.ImageURL
	}
	if u.PrepTime != nil {
		r.PrepTime = *u.PrepTime
	}
	if u.CookTime != nil {
		r.CookTime = *u.CookTime
	}
	if u.Servings != nil {
		r.Servings = *u.Servings
	}
	if u.Difficulty != nil {
		r.Difficulty = *u.Difficulty
	}
	if u.Category != nil {
		r.Category = *u.Category
	}
	if u.Ingredients != nil {
		r.Ingredients = fillIngredientIDs(*u.Ingredients)
	}
	if u.Steps != nil {
		r.Steps = fillStepIDs(*u.Steps)
	}
	if u.IsFavorite != nil {
		r.IsFavorite = *u.IsFavorite
	}
	if u.Source != nil {
		r.Source = *u.Source
	}
	if u.SourceType != nil {
		r.SourceType = *u.SourceType
	}
	if u.ImportedAt != nil {
		r.ImportedAt = *u.ImportedAt
	}
	if u.Tags != nil {
		r.Tags = *u.Tags
	}
}
