package core

import (
	"context"
	"errors"

	"mealplanner-backend-go/internal/models"
)

// Errors shared across services. Precondition failures are raised before any
// I/O; they are rejected operations, not retried.
var (
	ErrNoIdentity          = errors.New("no authenticated identity")
	ErrForbiddenAccess     = errors.New("user does not have permission for this action")
	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrEmptyRecipe         = errors.New("recipe name and at least one ingredient are required")
	ErrCannotShareWithSelf = errors.New("cannot share a recipe with oneself")
	ErrInvalidWeekday      = errors.New("day must be one of the seven weekday names")
	ErrUsernameTaken       = errors.New("username is already taken")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidDate         = errors.New("date must be formatted as YYYY-MM-DD")
)

// UserService defines the interface for user profile operations.
type UserService interface {
	// GetOrCreate retrieves a profile by Auth UID, creating it from token
	// claims on first sight. The boolean reports whether it was created.
	GetOrCreate(ctx context.Context, userID, email, firstName, lastName string) (*models.User, bool, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error)
}

// RecipeService defines the interface for recipe operations, including the
// sharing resolver.
type RecipeService interface {
	CreateRecipe(ctx context.Context, userID string, req models.CreateRecipeRequest) (*models.Recipe, error)
	GetRecipeByID(ctx context.Context, userID, recipeID string) (*models.Recipe, error)
	// VisibleRecipes returns the union of recipes owned by userID and
	// recipes shared with userID, deduplicated by document ID.
	VisibleRecipes(ctx context.Context, userID string) ([]*models.Recipe, error)
	UpdateRecipe(ctx context.Context, userID, recipeID string, req models.UpdateRecipeRequest) (*models.Recipe, error)
	ShareRecipe(ctx context.Context, ownerID, recipeID string, req models.ShareRecipeRequest) (*models.Recipe, error)
	RemoveShare(ctx context.Context, ownerID, recipeID, targetUserID string) (*models.Recipe, error)
}

// PlannerService defines the interface for weekly meal plans and ingredient
// aggregation.
type PlannerService interface {
	GetPlan(ctx context.Context, userID, weekRange string) (*models.WeeklyMealPlan, error)
	SetDay(ctx context.Context, userID, weekRange, day, recipeIDs string) (*models.WeeklyMealPlan, error)
	// SavePlan writes a full plan document. The plan's ID is the composite
	// key and must embed userID; mismatches are rejected before any I/O.
	SavePlan(ctx context.Context, userID string, plan *models.WeeklyMealPlan) error
	// IngredientCounts resolves the week's recipes and counts normalized
	// ingredient occurrences. An absent plan yields an empty map.
	IngredientCounts(ctx context.Context, userID, weekRange string) (map[string]int, error)
	// AggregateIngredients renders the counts as "ingredient (xN)" lines,
	// sorted lexicographically ascending.
	AggregateIngredients(ctx context.Context, userID, weekRange string) ([]string, error)
}

// ShoppingListView is what the shopping list endpoint renders: the persisted
// list plus the week's aggregated ingredient lines.
type ShoppingListView struct {
	List        *models.ShoppingList `json:"list"`
	Ingredients []string             `json:"ingredients"`
}

// ShoppingService defines the interface for shopping lists and the
// categorization cache.
type ShoppingService interface {
	// GetList lazily creates the week's list, refreshes the categorization
	// cache when the ingredient set changed, and returns the merged view.
	GetList(ctx context.Context, userID, weekRange string) (*ShoppingListView, error)
	ToggleChecked(ctx context.Context, userID, weekRange, item string) (*models.ShoppingList, error)
	AddMiscItem(ctx context.Context, userID, weekRange, item string) (*models.ShoppingList, error)
	RemoveMiscItem(ctx context.Context, userID, weekRange, item string) (*models.ShoppingList, error)
}

// NoteService defines the interface for per-day notes.
type NoteService interface {
	GetNote(ctx context.Context, userID, date string) (*models.Note, error)
	SaveNote(ctx context.Context, userID, date, content string) (*models.Note, error)
}

// AuditService defines the interface for audit logging operations.
type AuditService interface {
	CreateAuditLog(ctx context.Context, logEntry models.AuditLog) error
}
