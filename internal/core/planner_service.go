package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"mealplanner-backend-go/internal/db"
	"mealplanner-backend-go/internal/models"
)

// plannerService implements the PlannerService interface.
type plannerService struct {
	planRepo      db.MealPlanRepository
	recipeService RecipeService
	auditService  AuditService
	logger        *zap.Logger
}

// NewPlannerService creates a new PlannerService instance.
func NewPlannerService(pr db.MealPlanRepository, rs RecipeService, as AuditService, logger *zap.Logger) PlannerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &plannerService{
		planRepo:      pr,
		recipeService: rs,
		auditService:  as,
		logger:        logger,
	}
}

// GetPlan returns the week's plan, or an empty plan when none exists yet;
// a week with no assignments is not an error.
func (s *plannerService) GetPlan(ctx context.Context, userID, weekRange string) (*models.WeeklyMealPlan, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}
	key := models.WeekKey(userID, weekRange)

	plan, err := s.planRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return &models.WeeklyMealPlan{ID: key, UserID: userID, WeekRange: weekRange}, nil
		}
		return nil, fmt.Errorf("failed to get meal plan '%s': %w", key, err)
	}
	return plan, nil
}

// SetDay assigns one weekday's comma-separated recipe IDs, creating the plan
// document on the first assignment for a week. The write is verified by
// reading the document back and checking the stored owner.
func (s *plannerService) SetDay(ctx context.Context, userID, weekRange, day, recipeIDs string) (*models.WeeklyMealPlan, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}
	if !models.IsWeekday(day) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWeekday, day)
	}
	key := models.WeekKey(userID, weekRange)
	if !models.WeekKeyOwnedBy(key, userID) {
		return nil, db.ErrKeyOwnerMismatch
	}

	plan := &models.WeeklyMealPlan{
		ID:        key,
		UserID:    userID,
		WeekRange: weekRange,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.planRepo.SetDay(ctx, key, plan, day, strings.TrimSpace(recipeIDs)); err != nil {
		return nil, fmt.Errorf("failed to set day '%s' on meal plan '%s': %w", day, key, err)
	}

	stored, err := s.verifyPlanOwner(ctx, key, userID)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, userID, "PLAN_UPDATE", key, map[string]interface{}{
		"day":       day,
		"recipeIds": recipeIDs,
	})
	return stored, nil
}

// SavePlan writes a full plan document under the caller-supplied composite
// key. A key that does not embed the acting user's ID is rejected before any
// network call.
func (s *plannerService) SavePlan(ctx context.Context, userID string, plan *models.WeeklyMealPlan) error {
	if userID == "" {
		return ErrNoIdentity
	}
	if plan == nil || plan.ID == "" {
		return errors.New("plan and plan ID are required")
	}
	if !models.WeekKeyOwnedBy(plan.ID, userID) {
		return db.ErrKeyOwnerMismatch
	}

	plan.UserID = userID
	plan.UpdatedAt = time.Now().UTC()
	if err := s.planRepo.Set(ctx, plan.ID, plan); err != nil {
		return fmt.Errorf("failed to save meal plan '%s': %w", plan.ID, err)
	}

	if _, err := s.verifyPlanOwner(ctx, plan.ID, userID); err != nil {
		return err
	}

	s.audit(ctx, userID, "PLAN_SAVE", plan.ID, nil)
	return nil
}

// IngredientCounts fetches the plan, resolves each assigned recipe through the
// caller's visible set, and counts normalized ingredient occurrences. Only the
// seven canonical weekday keys are consulted; a recipe ID that cannot be
// resolved is skipped silently.
func (s *plannerService) IngredientCounts(ctx context.Context, userID, weekRange string) (map[string]int, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}
	key := models.WeekKey(userID, weekRange)

	plan, err := s.planRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return map[string]int{}, nil
		}
		return nil, fmt.Errorf("failed to get meal plan '%s': %w", key, err)
	}

	visible, err := s.recipeService.VisibleRecipes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve visible recipes for user '%s': %w", userID, err)
	}
	byID := make(map[string]*models.Recipe, len(visible))
	for _, r := range visible {
		byID[r.ID] = r
	}

	counts := make(map[string]int)
	for _, day := range models.Weekdays {
		for _, recipeID := range plan.DayRecipeIDs(day) {
			recipe, ok := byID[recipeID]
			if !ok {
				// Deleted or inaccessible; leave it out of the list.
				continue
			}
			for _, ingredient := range recipe.Ingredients {
				normalized := strings.ToLower(strings.TrimSpace(ingredient))
				if normalized != "" {
					counts[normalized]++
				}
			}
		}
	}
	return counts, nil
}

// AggregateIngredients renders the week's ingredient counts as
// "ingredient (xN)" lines, sorted lexicographically ascending.
func (s *plannerService) AggregateIngredients(ctx context.Context, userID, weekRange string) ([]string, error) {
	counts, err := s.IngredientCounts(ctx, userID, weekRange)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(counts))
	for ingredient, count := range counts {
		lines = append(lines, fmt.Sprintf("%s (x%d)", ingredient, count))
	}
	sort.Strings(lines)
	return lines, nil
}

// verifyPlanOwner reads the plan back after a write and confirms the stored
// owner matches the acting user. A mismatch is treated as a failed write.
func (s *plannerService) verifyPlanOwner(ctx context.Context, key, userID string) (*models.WeeklyMealPlan, error) {
	stored, err := s.planRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("post-write verification read failed for '%s': %w", key, err)
	}
	if stored.UserID != userID {
		return nil, fmt.Errorf("%w: plan '%s' stored owner '%s'", db.ErrVerifyMismatch, key, stored.UserID)
	}
	return stored, nil
}

func (s *plannerService) audit(ctx context.Context, userID, action, targetID string, details map[string]interface{}) {
	if s.auditService == nil {
		return
	}
	entry := models.AuditLog{
		UserID:     userID,
		Action:     action,
		TargetType: "MEAL_PLAN",
		TargetID:   targetID,
		Timestamp:  time.Now().UTC(),
		Details:    details,
	}
	if err := s.auditService.CreateAuditLog(ctx, entry); err != nil {
		s.logger.Warn("failed to create audit log", zap.String("action", action), zap.Error(err))
	}
}
