package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"mealplanner-backend-go/internal/db"
	"mealplanner-backend-go/internal/models"
	"mealplanner-backend-go/internal/tagging"
)

// recipeService implements the RecipeService interface.
type recipeService struct {
	recipeRepo   db.RecipeRepository
	auditService AuditService
	logger       *zap.Logger
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(rr db.RecipeRepository, as AuditService, logger *zap.Logger) RecipeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &recipeService{
		recipeRepo:   rr,
		auditService: as,
		logger:       logger,
	}
}

// CreateRecipe validates preconditions, stamps the owner, derives tags, and
// persists the recipe. The stored tag set is the normalized union of the
// user's tags and the classifier's output.
func (s *recipeService) CreateRecipe(ctx context.Context, userID string, req models.CreateRecipeRequest) (*models.Recipe, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}
	ingredients := trimNonEmpty(req.Ingredients)
	if strings.TrimSpace(req.Name) == "" || len(ingredients) == 0 {
		return nil, ErrEmptyRecipe
	}

	recipe := &models.Recipe{
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Cuisine:     models.CuisineOrDefault(req.Cuisine),
		Ingredients: ingredients,
		Notes:       req.Notes,
		Public:      req.Public,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	recipe.Tags = tagging.Normalize(append(tagging.Classify(recipe), req.Tags...))

	recipeID, err := s.recipeRepo.Create(ctx, recipe)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe in repository: %w", err)
	}
	recipe.ID = recipeID

	s.audit(ctx, userID, "RECIPE_CREATE", recipe.ID, map[string]interface{}{
		"name":    recipe.Name,
		"cuisine": recipe.Cuisine,
	})
	return recipe, nil
}

// GetRecipeByID retrieves a recipe if the user owns it, it is shared with
// them, or it is public.
func (s *recipeService) GetRecipeByID(ctx context.Context, userID, recipeID string) (*models.Recipe, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: recipe '%s'", ErrRecipeNotFound, recipeID)
		}
		return nil, fmt.Errorf("failed to get recipe '%s' from repository: %w", recipeID, err)
	}

	if recipe.UserID != userID && !recipe.IsSharedWith(userID) && !recipe.Public {
		return nil, fmt.Errorf("%w: recipe '%s'", ErrForbiddenAccess, recipeID)
	}
	return recipe, nil
}

// VisibleRecipes returns owned recipes plus recipes shared with the user,
// deduplicated by document ID. If the shared-recipes query fails, shared
// results are omitted and owned recipes are still returned; aggregations
// degrade rather than fail.
func (s *recipeService) VisibleRecipes(ctx context.Context, userID string) ([]*models.Recipe, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}

	owned, err := s.recipeRepo.GetByOwnerID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned recipes for user '%s': %w", userID, err)
	}

	seen := make(map[string]bool, len(owned))
	visible := make([]*models.Recipe, 0, len(owned))
	for _, r := range owned {
		if !seen[r.ID] {
			seen[r.ID] = true
			visible = append(visible, r)
		}
	}

	shared, err := s.recipeRepo.GetSharedWith(ctx, userID)
	if err != nil {
		s.logger.Warn("shared recipes unavailable, returning owned only",
			zap.String("userID", userID), zap.Error(err))
		return visible, nil
	}
	for _, r := range shared {
		if r.UserID == userID {
			continue // own recipe that also lists the owner in sharedWith
		}
		if !seen[r.ID] {
			seen[r.ID] = true
			visible = append(visible, r)
		}
	}
	return visible, nil
}

// UpdateRecipe applies a partial content update. Only the owner may mutate
// content; the owner identity itself is immutable. Tag-affecting changes
// re-run the classifier.
func (s *recipeService) UpdateRecipe(ctx context.Context, userID, recipeID string, req models.UpdateRecipeRequest) (*models.Recipe, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: recipe '%s'", ErrRecipeNotFound, recipeID)
		}
		return nil, fmt.Errorf("failed to get recipe '%s' for update: %w", recipeID, err)
	}
	if recipe.UserID != userID {
		return nil, fmt.Errorf("%w: user '%s' is not owner of recipe '%s'", ErrForbiddenAccess, userID, recipeID)
	}

	contentChanged := false
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyRecipe
		}
		recipe.Name = strings.TrimSpace(*req.Name)
		contentChanged = true
	}
	if req.Cuisine != nil {
		recipe.Cuisine = models.CuisineOrDefault(*req.Cuisine)
		contentChanged = true
	}
	if req.Ingredients != nil {
		ingredients := trimNonEmpty(*req.Ingredients)
		if len(ingredients) == 0 {
			return nil, ErrEmptyRecipe
		}
		recipe.Ingredients = ingredients
		contentChanged = true
	}
	if req.Notes != nil {
		recipe.Notes = *req.Notes
	}
	if req.Public != nil {
		recipe.Public = *req.Public
	}

	userTags := recipe.Tags
	if req.Tags != nil {
		userTags = *req.Tags
	}
	if contentChanged || req.Tags != nil {
		recipe.Tags = tagging.Normalize(append(tagging.Classify(recipe), userTags...))
	}
	recipe.UpdatedAt = time.Now().UTC()

	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to update recipe '%s': %w", recipeID, err)
	}

	s.audit(ctx, userID, "RECIPE_UPDATE", recipe.ID, nil)
	return recipe, nil
}

// ShareRecipe grants read access to the listed users. Sharing never transfers
// ownership; only the owner may change the share list.
func (s *recipeService) ShareRecipe(ctx context.Context, ownerID, recipeID string, req models.ShareRecipeRequest) (*models.Recipe, error) {
	if ownerID == "" {
		return nil, ErrNoIdentity
	}
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: recipe '%s'", ErrRecipeNotFound, recipeID)
		}
		return nil, fmt.Errorf("failed to get recipe '%s' for sharing: %w", recipeID, err)
	}
	if recipe.UserID != ownerID {
		return nil, fmt.Errorf("%w: user '%s' is not owner of recipe '%s'", ErrForbiddenAccess, ownerID, recipeID)
	}

	for _, target := range req.UserIDs {
		target = strings.TrimSpace(target)
		if target == "" {
			continue
		}
		if target == ownerID {
			return nil, ErrCannotShareWithSelf
		}
		if !recipe.IsSharedWith(target) {
			recipe.SharedWith = append(recipe.SharedWith, target)
		}
	}
	recipe.UpdatedAt = time.Now().UTC()

	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to update share list for recipe '%s': %w", recipeID, err)
	}

	s.audit(ctx, ownerID, "RECIPE_SHARE", recipe.ID, map[string]interface{}{
		"sharedWith": recipe.SharedWith,
	})
	return recipe, nil
}

// RemoveShare revokes a previously granted share.
func (s *recipeService) RemoveShare(ctx context.Context, ownerID, recipeID, targetUserID string) (*models.Recipe, error) {
	if ownerID == "" {
		return nil, ErrNoIdentity
	}
	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: recipe '%s'", ErrRecipeNotFound, recipeID)
		}
		return nil, fmt.Errorf("failed to get recipe '%s' for unsharing: %w", recipeID, err)
	}
	if recipe.UserID != ownerID {
		return nil, fmt.Errorf("%w: user '%s' is not owner of recipe '%s'", ErrForbiddenAccess, ownerID, recipeID)
	}

	kept := recipe.SharedWith[:0]
	for _, id := range recipe.SharedWith {
		if id != targetUserID {
			kept = append(kept, id)
		}
	}
	recipe.SharedWith = kept
	recipe.UpdatedAt = time.Now().UTC()

	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to update share list for recipe '%s': %w", recipeID, err)
	}

	s.audit(ctx, ownerID, "RECIPE_UNSHARE", recipe.ID, map[string]interface{}{
		"removed": targetUserID,
	})
	return recipe, nil
}

// audit records the action without ever failing the primary operation.
func (s *recipeService) audit(ctx context.Context, userID, action, targetID string, details map[string]interface{}) {
	if s.auditService == nil {
		return
	}
	entry := models.AuditLog{
		UserID:     userID,
		Action:     action,
		TargetType: "RECIPE",
		TargetID:   targetID,
		Timestamp:  time.Now().UTC(),
		Details:    details,
	}
	if err := s.auditService.CreateAuditLog(ctx, entry); err != nil {
		s.logger.Warn("failed to create audit log", zap.String("action", action), zap.Error(err))
	}
}

func trimNonEmpty(items []string) []string {
	var out []string
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}
