package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealplanner-backend-go/internal/db"
	"mealplanner-backend-go/internal/models"
)

const testWeek = "June 02, 2025 - June 08, 2025"

func newPlannerForTest(t *testing.T) (PlannerService, *fakePlanRepo, *fakeRecipeRepo) {
	t.Helper()
	recipeRepo := newFakeRecipeRepo()
	planRepo := newFakePlanRepo()
	recipeService := NewRecipeService(recipeRepo, nil, nil)
	planner := NewPlannerService(planRepo, recipeService, nil, nil)
	return planner, planRepo, recipeRepo
}

func TestPlannerService_GetPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("absent plan yields empty plan not error", func(t *testing.T) {
		planner, _, _ := newPlannerForTest(t)

		plan, err := planner.GetPlan(ctx, "alice", testWeek)
		require.NoError(t, err)
		assert.Equal(t, models.WeekKey("alice", testWeek), plan.ID)
		assert.Equal(t, "alice", plan.UserID)
		assert.Empty(t, plan.Monday)
	})

	t.Run("missing identity rejected", func(t *testing.T) {
		planner, _, _ := newPlannerForTest(t)

		_, err := planner.GetPlan(ctx, "", testWeek)
		assert.ErrorIs(t, err, ErrNoIdentity)
	})
}

func TestPlannerService_SetDay(t *testing.T) {
	ctx := context.Background()

	t.Run("creates plan on first assignment", func(t *testing.T) {
		planner, planRepo, _ := newPlannerForTest(t)

		plan, err := planner.SetDay(ctx, "alice", testWeek, "Monday", "r1, r2")
		require.NoError(t, err)
		assert.Equal(t, []string{"r1", "r2"}, plan.DayRecipeIDs("Monday"))
		assert.Equal(t, 1, planRepo.setDayCalls)
	})

	t.Run("invalid weekday rejected before any write", func(t *testing.T) {
		planner, planRepo, _ := newPlannerForTest(t)

		_, err := planner.SetDay(ctx, "alice", testWeek, "Funday", "r1")
		assert.ErrorIs(t, err, ErrInvalidWeekday)
		assert.Zero(t, planRepo.setDayCalls)
		assert.Zero(t, planRepo.getCalls)
	})
}

func TestPlannerService_SavePlan(t *testing.T) {
	ctx := context.Background()

	t.Run("foreign key rejected with zero repo calls", func(t *testing.T) {
		planner, planRepo, _ := newPlannerForTest(t)

		plan := &models.WeeklyMealPlan{ID: models.WeekKey("otherUser", testWeek), WeekRange: testWeek}
		err := planner.SavePlan(ctx, "thisUser", plan)
		assert.ErrorIs(t, err, db.ErrKeyOwnerMismatch)
		assert.Zero(t, planRepo.setCalls)
		assert.Zero(t, planRepo.getCalls)
	})

	t.Run("owned key persists and verifies", func(t *testing.T) {
		planner, planRepo, _ := newPlannerForTest(t)

		plan := &models.WeeklyMealPlan{ID: models.WeekKey("alice", testWeek), WeekRange: testWeek, Tuesday: "r9"}
		err := planner.SavePlan(ctx, "alice", plan)
		require.NoError(t, err)
		assert.Equal(t, 1, planRepo.setCalls)

		stored, err := planRepo.GetByKey(ctx, plan.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", stored.UserID)
		assert.Equal(t, "r9", stored.Tuesday)
	})
}

func TestPlannerService_AggregateIngredients(t *testing.T) {
	ctx := context.Background()

	t.Run("counts repeats across days", func(t *testing.T) {
		planner, planRepo, recipeRepo := newPlannerForTest(t)

		recipeRepo.add(&models.Recipe{ID: "r1", UserID: "alice", Name: "Omelette", Ingredients: []string{"Egg", "butter"}})
		recipeRepo.add(&models.Recipe{ID: "r2", UserID: "alice", Name: "Fried Rice", Ingredients: []string{"egg ", "rice"}})

		key := models.WeekKey("alice", testWeek)
		require.NoError(t, planRepo.Set(ctx, key, &models.WeeklyMealPlan{
			UserID:    "alice",
			WeekRange: testWeek,
			Monday:    "r1",
			Wednesday: "r2",
		}))

		lines, err := planner.AggregateIngredients(ctx, "alice", testWeek)
		require.NoError(t, err)
		assert.Equal(t, []string{"butter (x1)", "egg (x2)", "rice (x1)"}, lines)
	})

	t.Run("unresolvable recipe IDs skipped", func(t *testing.T) {
		planner, planRepo, recipeRepo := newPlannerForTest(t)

		recipeRepo.add(&models.Recipe{ID: "r1", UserID: "alice", Name: "Toast", Ingredients: []string{"bread"}})

		key := models.WeekKey("alice", testWeek)
		require.NoError(t, planRepo.Set(ctx, key, &models.WeeklyMealPlan{
			UserID:    "alice",
			WeekRange: testWeek,
			Monday:    "r1, deleted-recipe",
		}))

		lines, err := planner.AggregateIngredients(ctx, "alice", testWeek)
		require.NoError(t, err)
		assert.Equal(t, []string{"bread (x1)"}, lines)
	})

	t.Run("absent plan yields empty list", func(t *testing.T) {
		planner, _, _ := newPlannerForTest(t)

		lines, err := planner.AggregateIngredients(ctx, "alice", testWeek)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("shared recipes resolve in aggregation", func(t *testing.T) {
		planner, planRepo, recipeRepo := newPlannerForTest(t)

		recipeRepo.add(&models.Recipe{ID: "r1", UserID: "bob", Name: "Curry", Ingredients: []string{"lentils"}, SharedWith: []string{"alice"}})

		key := models.WeekKey("alice", testWeek)
		require.NoError(t, planRepo.Set(ctx, key, &models.WeeklyMealPlan{
			UserID:    "alice",
			WeekRange: testWeek,
			Friday:    "r1",
		}))

		lines, err := planner.AggregateIngredients(ctx, "alice", testWeek)
		require.NoError(t, err)
		assert.Equal(t, []string{"lentils (x1)"}, lines)
	})
}
