package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekKeyOwnedBy(t *testing.T) {
	key := WeekKey("alice", "June 02, 2025 - June 08, 2025")

	assert.True(t, WeekKeyOwnedBy(key, "alice"))
	assert.False(t, WeekKeyOwnedBy(key, "bob"))
	assert.False(t, WeekKeyOwnedBy(key, ""))
	assert.False(t, WeekKeyOwnedBy("bob_week", "alice"))
}

func TestWeekRangeLabel(t *testing.T) {
	t.Run("midweek date maps to its Monday-start week", func(t *testing.T) {
		// Wednesday, June 4, 2025
		d := time.Date(2025, time.June, 4, 13, 0, 0, 0, time.UTC)
		assert.Equal(t, "June 02, 2025 - June 08, 2025", WeekRangeLabel(d))
	})

	t.Run("Sunday belongs to the preceding Monday's week", func(t *testing.T) {
		d := time.Date(2025, time.June, 8, 9, 0, 0, 0, time.UTC)
		assert.Equal(t, "June 02, 2025 - June 08, 2025", WeekRangeLabel(d))
	})

	t.Run("Monday starts its own week", func(t *testing.T) {
		d := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "June 09, 2025 - June 15, 2025", WeekRangeLabel(d))
	})

	t.Run("week spanning a month boundary", func(t *testing.T) {
		d := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, "June 30, 2025 - July 06, 2025", WeekRangeLabel(d))
	})
}

func TestWeeklyMealPlanDays(t *testing.T) {
	t.Run("DayRecipeIDs trims and drops empties", func(t *testing.T) {
		p := &WeeklyMealPlan{Monday: " r1 , r2,, r3 "}
		assert.Equal(t, []string{"r1", "r2", "r3"}, p.DayRecipeIDs("Monday"))
	})

	t.Run("empty day yields nil", func(t *testing.T) {
		p := &WeeklyMealPlan{}
		assert.Nil(t, p.DayRecipeIDs("Tuesday"))
	})

	t.Run("non-canonical day ignored", func(t *testing.T) {
		p := &WeeklyMealPlan{Monday: "r1"}
		assert.Nil(t, p.DayRecipeIDs("Funday"))
		assert.Error(t, p.SetDay("Funday", "r1"))
	})

	t.Run("SetDay round trip for every weekday", func(t *testing.T) {
		p := &WeeklyMealPlan{}
		for _, day := range Weekdays {
			assert.NoError(t, p.SetDay(day, "r-"+day))
			assert.Equal(t, "r-"+day, p.Day(day))
		}
	})
}

func TestIsWeekday(t *testing.T) {
	for _, day := range Weekdays {
		assert.True(t, IsWeekday(day))
	}
	assert.False(t, IsWeekday("monday")) // canonical keys are capitalized
	assert.False(t, IsWeekday(""))
}
