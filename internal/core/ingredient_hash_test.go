package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIngredientSetHash(t *testing.T) {
	t.Run("order independent", func(t *testing.T) {
		a := IngredientSetHash([]string{"rice", "beans", "onion"})
		b := IngredientSetHash([]string{"onion", "rice", "beans"})
		assert.Equal(t, a, b)
	})

	t.Run("case and whitespace normalized", func(t *testing.T) {
		a := IngredientSetHash([]string{"Rice", " beans "})
		b := IngredientSetHash([]string{"rice", "beans"})
		assert.Equal(t, a, b)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		a := IngredientSetHash([]string{"rice", "rice", "beans"})
		b := IngredientSetHash([]string{"rice", "beans"})
		assert.Equal(t, a, b)
	})

	t.Run("different sets differ", func(t *testing.T) {
		a := IngredientSetHash([]string{"rice", "beans"})
		b := IngredientSetHash([]string{"rice", "lentils"})
		assert.NotEqual(t, a, b)
	})

	t.Run("stable hex digest", func(t *testing.T) {
		h := IngredientSetHash([]string{"rice"})
		assert.Len(t, h, 64)
		assert.Equal(t, h, IngredientSetHash([]string{"rice"}))
	})
}
