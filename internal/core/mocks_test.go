package core

import (
	"context"
	"fmt"

	"mealplanner-backend-go/internal/db"
	"mealplanner-backend-go/internal/models"
)

// Hand-rolled repository fakes backed by maps. Call counters let tests assert
// how often the service touched the store.

type fakeRecipeRepo struct {
	recipes map[string]*models.Recipe
	nextID  int

	ownedErr  error
	sharedErr error

	createCalls int
	updateCalls int
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{recipes: make(map[string]*models.Recipe)}
}

func (f *fakeRecipeRepo) Create(ctx context.Context, recipe *models.Recipe) (string, error) {
	f.createCalls++
	f.nextID++
	id := fmt.Sprintf("recipe-%d", f.nextID)
	cp := *recipe
	cp.ID = id
	f.recipes[id] = &cp
	return id, nil
}

func (f *fakeRecipeRepo) GetByID(ctx context.Context, recipeID string) (*models.Recipe, error) {
	r, ok := f.recipes[recipeID]
	if !ok {
		return nil, fmt.Errorf("recipe '%s': %w", recipeID, db.ErrNotFound)
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRecipeRepo) GetByOwnerID(ctx context.Context, ownerID string) ([]*models.Recipe, error) {
	if f.ownedErr != nil {
		return nil, f.ownedErr
	}
	var out []*models.Recipe
	for _, r := range f.recipes {
		if r.UserID == ownerID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepo) GetSharedWith(ctx context.Context, userID string) ([]*models.Recipe, error) {
	if f.sharedErr != nil {
		return nil, f.sharedErr
	}
	var out []*models.Recipe
	for _, r := range f.recipes {
		if r.IsSharedWith(userID) {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepo) Update(ctx context.Context, recipe *models.Recipe) error {
	f.updateCalls++
	if _, ok := f.recipes[recipe.ID]; !ok {
		return db.ErrNotFound
	}
	cp := *recipe
	f.recipes[recipe.ID] = &cp
	return nil
}

func (f *fakeRecipeRepo) ListAll(ctx context.Context) ([]*models.Recipe, error) {
	var out []*models.Recipe
	for _, r := range f.recipes {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeRecipeRepo) add(r *models.Recipe) *models.Recipe {
	f.recipes[r.ID] = r
	return r
}

type fakePlanRepo struct {
	plans map[string]*models.WeeklyMealPlan

	getCalls    int
	setCalls    int
	setDayCalls int
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[string]*models.WeeklyMealPlan)}
}

func (f *fakePlanRepo) GetByKey(ctx context.Context, key string) (*models.WeeklyMealPlan, error) {
	f.getCalls++
	p, ok := f.plans[key]
	if !ok {
		return nil, fmt.Errorf("plan '%s': %w", key, db.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (f *fakePlanRepo) Set(ctx context.Context, key string, plan *models.WeeklyMealPlan) error {
	f.setCalls++
	cp := *plan
	cp.ID = key
	f.plans[key] = &cp
	return nil
}

func (f *fakePlanRepo) SetDay(ctx context.Context, key string, plan *models.WeeklyMealPlan, day, recipeIDs string) error {
	f.setDayCalls++
	stored, ok := f.plans[key]
	if !ok {
		cp := *plan
		stored = &cp
		stored.ID = key
		f.plans[key] = stored
	}
	return stored.SetDay(day, recipeIDs)
}

type fakeShoppingRepo struct {
	lists map[string]*models.ShoppingList

	setCalls int
}

func newFakeShoppingRepo() *fakeShoppingRepo {
	return &fakeShoppingRepo{lists: make(map[string]*models.ShoppingList)}
}

func (f *fakeShoppingRepo) GetByKey(ctx context.Context, key string) (*models.ShoppingList, error) {
	l, ok := f.lists[key]
	if !ok {
		return nil, fmt.Errorf("shopping list '%s': %w", key, db.ErrNotFound)
	}
	cp := *l
	return &cp, nil
}

func (f *fakeShoppingRepo) Set(ctx context.Context, key string, list *models.ShoppingList) error {
	f.setCalls++
	cp := *list
	cp.ID = key
	f.lists[key] = &cp
	return nil
}

type fakeNoteRepo struct {
	notes map[string]*models.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[string]*models.Note)}
}

func (f *fakeNoteRepo) GetByKey(ctx context.Context, key string) (*models.Note, error) {
	n, ok := f.notes[key]
	if !ok {
		return nil, fmt.Errorf("note '%s': %w", key, db.ErrNotFound)
	}
	cp := *n
	return &cp, nil
}

func (f *fakeNoteRepo) Set(ctx context.Context, key string, note *models.Note) error {
	cp := *note
	cp.ID = key
	f.notes[key] = &cp
	return nil
}

type fakeUserRepo struct {
	users     map[string]*models.User
	taken     map[string]string // username -> userID
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User), taken: make(map[string]string)}
}

func (f *fakeUserRepo) GetByID(ctx context.Context, userID string) (*models.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, fmt.Errorf("user '%s': %w", userID, db.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *user
	f.users[user.ID] = &cp
	if user.Username != "" {
		f.taken[user.Username] = user.ID
	}
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return db.ErrNotFound
	}
	cp := *user
	f.users[user.ID] = &cp
	if user.Username != "" {
		f.taken[user.Username] = user.ID
	}
	return nil
}

func (f *fakeUserRepo) UsernameTaken(ctx context.Context, username, excludeUserID string) (bool, error) {
	owner, ok := f.taken[username]
	return ok && owner != excludeUserID, nil
}

type fakeAuditRepo struct {
	entries []models.AuditLog
	err     error
}

func (f *fakeAuditRepo) Create(ctx context.Context, logEntry models.AuditLog) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, logEntry)
	return nil
}

// countingCategorizer records every categorization call so cache tests can
// assert on invocation counts.
type countingCategorizer struct {
	calls  int
	result []models.CategorizedItem
	err    error
}

func (c *countingCategorizer) Categorize(ctx context.Context, ingredients []string) ([]models.CategorizedItem, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	if c.result != nil {
		return c.result, nil
	}
	items := make([]models.CategorizedItem, len(ingredients))
	for i, ing := range ingredients {
		items[i] = models.CategorizedItem{Ingredient: ing, Category: string(models.CategoryPantry), Emoji: "🧺"}
	}
	return items, nil
}
