package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"mealplanner-backend-go/internal/core"
	"mealplanner-backend-go/internal/db"
	"mealplanner-backend-go/internal/llm"
)

func TestMapErrorToStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"no identity", core.ErrNoIdentity, http.StatusUnauthorized},
		{"recipe not found", fmt.Errorf("%w: recipe 'x'", core.ErrRecipeNotFound), http.StatusNotFound},
		{"user not found", core.ErrUserNotFound, http.StatusNotFound},
		{"forbidden", core.ErrForbiddenAccess, http.StatusForbidden},
		{"empty recipe", core.ErrEmptyRecipe, http.StatusBadRequest},
		{"invalid weekday", core.ErrInvalidWeekday, http.StatusBadRequest},
		{"invalid date", core.ErrInvalidDate, http.StatusBadRequest},
		{"self share", core.ErrCannotShareWithSelf, http.StatusBadRequest},
		{"username taken", core.ErrUsernameTaken, http.StatusConflict},
		{"key owner mismatch", db.ErrKeyOwnerMismatch, http.StatusForbidden},
		{"extraction invalid", fmt.Errorf("%w: missing name", llm.ErrExtractionInvalid), http.StatusUnprocessableEntity},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			mapErrorToStatus(c, tc.err)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("present", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("userID", "alice")

		got, ok := currentUserID(c)
		assert.True(t, ok)
		assert.Equal(t, "alice", got)
	})

	t.Run("absent responds 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		_, ok := currentUserID(c)
		assert.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestSplitDisplayName(t *testing.T) {
	first, last := splitDisplayName("Alice Smith")
	assert.Equal(t, "Alice", first)
	assert.Equal(t, "Smith", last)

	first, last = splitDisplayName("Alice")
	assert.Equal(t, "Alice", first)
	assert.Empty(t, last)

	first, last = splitDisplayName("Alice van der Berg")
	assert.Equal(t, "Alice", first)
	assert.Equal(t, "van der Berg", last)

	first, last = splitDisplayName("  ")
	assert.Empty(t, first)
	assert.Empty(t, last)
}
