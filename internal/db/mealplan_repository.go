package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mealplanner-backend-go/internal/models"
)

const mealPlansCollection = "mealPlans"

// firestoreMealPlanRepository implements MealPlanRepository using Firestore.
type firestoreMealPlanRepository struct {
	client *firestore.Client
}

// NewFirestoreMealPlanRepository creates a new instance of firestoreMealPlanRepository.
func NewFirestoreMealPlanRepository(client *firestore.Client) MealPlanRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for MealPlanRepository.")
	}
	return &firestoreMealPlanRepository{client: client}
}

// GetByKey retrieves a meal plan document by its composite key.
func (r *firestoreMealPlanRepository) GetByKey(ctx context.Context, key string) (*models.WeeklyMealPlan, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty for GetByKey operation")
	}
	docSnap, err := r.client.Collection(mealPlansCollection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("meal plan '%s' not found: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get meal plan '%s': %w", key, err)
	}

	var plan models.WeeklyMealPlan
	if err := docSnap.DataTo(&plan); err != nil {
		return nil, fmt.Errorf("failed to decode meal plan data for key '%s': %w", key, err)
	}
	plan.ID = docSnap.Ref.ID
	return &plan, nil
}

// Set writes the full plan document under its composite key.
func (r *firestoreMealPlanRepository) Set(ctx context.Context, key string, plan *models.WeeklyMealPlan) error {
	if key == "" {
		return errors.New("key cannot be empty for Set operation")
	}
	plan.ID = key
	if _, err := r.client.Collection(mealPlansCollection).Doc(key).Set(ctx, plan); err != nil {
		return fmt.Errorf("failed to set meal plan '%s': %w", key, err)
	}
	return nil
}

// SetDay updates one weekday field on the plan document. The document is
// created with the plan's metadata if it does not exist yet, so the first
// meal assignment for a week creates the plan.
func (r *firestoreMealPlanRepository) SetDay(ctx context.Context, key string, plan *models.WeeklyMealPlan, day, recipeIDs string) error {
	if key == "" {
		return errors.New("key cannot be empty for SetDay operation")
	}
	if !models.IsWeekday(day) {
		return fmt.Errorf("%q is not a weekday", day)
	}

	docRef := r.client.Collection(mealPlansCollection).Doc(key)
	_, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) != codes.NotFound {
			return fmt.Errorf("failed to check meal plan '%s': %w", key, err)
		}
		if setErr := plan.SetDay(day, recipeIDs); setErr != nil {
			return setErr
		}
		return r.Set(ctx, key, plan)
	}

	_, err = docRef.Update(ctx, []firestore.Update{
		{Path: day, Value: recipeIDs},
		{Path: "updatedAt", Value: time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("failed to update day '%s' on meal plan '%s': %w", day, key, err)
	}
	return nil
}
