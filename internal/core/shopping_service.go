package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"mealplanner-backend-go/internal/db"
	"mealplanner-backend-go/internal/llm"
	"mealplanner-backend-go/internal/models"
)

// shoppingService implements the ShoppingService interface.
type shoppingService struct {
	listRepo    db.ShoppingListRepository
	planner     PlannerService
	categorizer llm.Categorizer
	logger      *zap.Logger
}

// NewShoppingService creates a new ShoppingService instance.
func NewShoppingService(lr db.ShoppingListRepository, ps PlannerService, cat llm.Categorizer, logger *zap.Logger) ShoppingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &shoppingService{
		listRepo:    lr,
		planner:     ps,
		categorizer: cat,
		logger:      logger,
	}
}

// IngredientSetHash computes an order-independent content hash of an
// ingredient set: entries are normalized, deduplicated, and sorted before
// hashing, so any permutation of the same set yields the same hash.
func IngredientSetHash(ingredients []string) string {
	seen := make(map[string]bool, len(ingredients))
	for _, ing := range ingredients {
		ing = strings.ToLower(strings.TrimSpace(ing))
		if ing != "" {
			seen[ing] = true
		}
	}
	distinct := make([]string, 0, len(seen))
	for ing := range seen {
		distinct = append(distinct, ing)
	}
	sort.Strings(distinct)

	sum := sha256.Sum256([]byte(strings.Join(distinct, "\n")))
	return hex.EncodeToString(sum[:])
}

// GetList returns the week's shopping list view, creating the list document
// on first view. The categorization cache is reused while the ingredient-set
// hash is unchanged; a changed set triggers exactly one new external call.
func (s *shoppingService) GetList(ctx context.Context, userID, weekRange string) (*ShoppingListView, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}

	list, err := s.loadOrCreate(ctx, userID, weekRange)
	if err != nil {
		return nil, err
	}

	counts, err := s.planner.IngredientCounts(ctx, userID, weekRange)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ingredients for week '%s': %w", weekRange, err)
	}

	names := make([]string, 0, len(counts))
	for ingredient := range counts {
		names = append(names, ingredient)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(counts))
	for _, ingredient := range names {
		lines = append(lines, fmt.Sprintf("%s (x%d)", ingredient, counts[ingredient]))
	}

	if len(names) > 0 {
		if err := s.refreshCategorization(ctx, userID, list, names); err != nil {
			// Categorization must never block the shopping list view.
			s.logger.Warn("ingredient categorization unavailable, using fallback bucket",
				zap.String("userID", userID), zap.Error(err))
			list.Categorized = []models.CategoryGroup{{
				Category: string(models.CategoryOther),
				Items:    names,
			}}
		}
	}

	return &ShoppingListView{List: list, Ingredients: lines}, nil
}

// refreshCategorization serves the cached grouping when the stored hash
// matches the current ingredient set, and otherwise makes one external call
// and persists grouping and hash in the same document write.
func (s *shoppingService) refreshCategorization(ctx context.Context, userID string, list *models.ShoppingList, ingredients []string) error {
	hash := IngredientSetHash(ingredients)
	if list.IngredientsHash == hash && len(list.Categorized) > 0 {
		return nil // cache hit, no external call
	}

	items, err := s.categorizer.Categorize(ctx, ingredients)
	if err != nil {
		return err
	}

	// Group in first-seen category order of the response.
	var groups []models.CategoryGroup
	index := make(map[string]int)
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(groups)
			index[item.Category] = i
			groups = append(groups, models.CategoryGroup{Category: item.Category, Emoji: item.Emoji})
		}
		groups[i].Items = append(groups[i].Items, item.Ingredient)
	}

	list.Categorized = groups
	list.IngredientsHash = hash
	list.UpdatedAt = time.Now().UTC()
	if err := s.listRepo.Set(ctx, list.ID, list); err != nil {
		return fmt.Errorf("failed to persist categorization for '%s': %w", list.ID, err)
	}
	return nil
}

// ToggleChecked flips an item's membership in the checked set. Checked
// entries are independent of the recipe ingredient list; stale entries are
// tolerated.
func (s *shoppingService) ToggleChecked(ctx context.Context, userID, weekRange, item string) (*models.ShoppingList, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}
	item = strings.TrimSpace(item)
	if item == "" {
		return nil, errors.New("item is required")
	}

	list, err := s.loadOrCreate(ctx, userID, weekRange)
	if err != nil {
		return nil, err
	}

	if list.IsChecked(item) {
		kept := list.CheckedItems[:0]
		for _, it := range list.CheckedItems {
			if it != item {
				kept = append(kept, it)
			}
		}
		list.CheckedItems = kept
	} else {
		list.CheckedItems = append(list.CheckedItems, item)
	}

	return s.persist(ctx, userID, list)
}

// AddMiscItem appends a free-text item to the list.
func (s *shoppingService) AddMiscItem(ctx context.Context, userID, weekRange, item string) (*models.ShoppingList, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}
	item = strings.TrimSpace(item)
	if item == "" {
		return nil, errors.New("item is required")
	}

	list, err := s.loadOrCreate(ctx, userID, weekRange)
	if err != nil {
		return nil, err
	}

	for _, it := range list.MiscItems {
		if it == item {
			return list, nil // already present
		}
	}
	list.MiscItems = append(list.MiscItems, item)

	return s.persist(ctx, userID, list)
}

// RemoveMiscItem removes a free-text item from the list.
func (s *shoppingService) RemoveMiscItem(ctx context.Context, userID, weekRange, item string) (*models.ShoppingList, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}

	list, err := s.loadOrCreate(ctx, userID, weekRange)
	if err != nil {
		return nil, err
	}

	kept := list.MiscItems[:0]
	for _, it := range list.MiscItems {
		if it != item {
			kept = append(kept, it)
		}
	}
	list.MiscItems = kept

	return s.persist(ctx, userID, list)
}

// loadOrCreate fetches the week's list, lazily creating the document on the
// first shopping-list interaction for that week. The composite key is
// validated against the acting user before any write.
func (s *shoppingService) loadOrCreate(ctx context.Context, userID, weekRange string) (*models.ShoppingList, error) {
	key := models.WeekKey(userID, weekRange)
	if !models.WeekKeyOwnedBy(key, userID) {
		return nil, db.ErrKeyOwnerMismatch
	}

	list, err := s.listRepo.GetByKey(ctx, key)
	if err == nil {
		return list, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to get shopping list '%s': %w", key, err)
	}

	list = &models.ShoppingList{
		ID:        key,
		UserID:    userID,
		WeekRange: weekRange,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.listRepo.Set(ctx, key, list); err != nil {
		return nil, fmt.Errorf("failed to create shopping list '%s': %w", key, err)
	}
	return list, nil
}

// persist writes the list and verifies the stored owner by reading it back.
func (s *shoppingService) persist(ctx context.Context, userID string, list *models.ShoppingList) (*models.ShoppingList, error) {
	list.UpdatedAt = time.Now().UTC()
	if err := s.listRepo.Set(ctx, list.ID, list); err != nil {
		return nil, fmt.Errorf("failed to save shopping list '%s': %w", list.ID, err)
	}

	stored, err := s.listRepo.GetByKey(ctx, list.ID)
	if err != nil {
		return nil, fmt.Errorf("post-write verification read failed for '%s': %w", list.ID, err)
	}
	if stored.UserID != userID {
		return nil, fmt.Errorf("%w: shopping list '%s' stored owner '%s'", db.ErrVerifyMismatch, list.ID, stored.UserID)
	}
	return stored, nil
}
