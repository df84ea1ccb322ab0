package db

import (
	"context"

	"mealplanner-backend-go/internal/models"
)

// UserRepository defines the interface for user profile storage operations.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	// UsernameTaken reports whether any profile other than excludeUserID
	// already claims the username. Best-effort: not transactional.
	UsernameTaken(ctx context.Context, username, excludeUserID string) (bool, error)
}

// RecipeRepository defines the interface for recipe storage operations.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) (string, error) // Returns new recipe ID
	GetByID(ctx context.Context, recipeID string) (*models.Recipe, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]*models.Recipe, error)
	// GetSharedWith returns recipes whose share list contains userID,
	// via an indexed array-membership query.
	GetSharedWith(ctx context.Context, userID string) ([]*models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	// ListAll iterates the full collection; only the batch re-tagging tool uses it.
	ListAll(ctx context.Context) ([]*models.Recipe, error)
}

// MealPlanRepository defines the interface for weekly meal plan storage.
// Documents are keyed by the composite key "{userId}_{weekRange}".
type MealPlanRepository interface {
	GetByKey(ctx context.Context, key string) (*models.WeeklyMealPlan, error)
	// Set writes the full plan document under its composite key.
	Set(ctx context.Context, key string, plan *models.WeeklyMealPlan) error
	// SetDay updates a single weekday field on the plan document, creating
	// the document if it does not exist yet.
	SetDay(ctx context.Context, key string, plan *models.WeeklyMealPlan, day, recipeIDs string) error
}

// ShoppingListRepository defines the interface for shopping list storage.
// Documents are keyed by the composite key "{userId}_{weekRange}".
type ShoppingListRepository interface {
	GetByKey(ctx context.Context, key string) (*models.ShoppingList, error)
	Set(ctx context.Context, key string, list *models.ShoppingList) error
}

// NoteRepository defines the interface for note storage.
// Documents are keyed by the composite key "{userId}_{date}".
type NoteRepository interface {
	GetByKey(ctx context.Context, key string) (*models.Note, error)
	Set(ctx context.Context, key string, note *models.Note) error
}

// AuditRepository defines the interface for audit log storage operations.
type AuditRepository interface {
	Create(ctx context.Context, logEntry models.AuditLog) error
}
