package tagging

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mealplanner-backend-go/internal/models"
)

func TestClassify(t *testing.T) {
	t.Run("content tags from ingredients", func(t *testing.T) {
		r := &models.Recipe{
			Name:        "Weeknight Stir Fry",
			Ingredients: []string{"2 chicken breasts", "1 head broccoli", "200g rice", "soy sauce", "1 tbsp sriracha", "1 tbsp honey"},
		}
		tags := Classify(r)
		assert.Contains(t, tags, "protein")
		assert.Contains(t, tags, "vegetables")
		assert.Contains(t, tags, "carbs")
		assert.Contains(t, tags, "spicy")
		assert.Contains(t, tags, "sweet")
		assert.NotContains(t, tags, "dairy")
	})

	t.Run("complexity tags at three ingredients", func(t *testing.T) {
		r := &models.Recipe{
			Name:        "Scrambled Eggs",
			Ingredients: []string{"3 eggs", "butter", "salt"},
		}
		tags := Classify(r)
		assert.Contains(t, tags, "quick")
		assert.Contains(t, tags, "simple")
	})

	t.Run("complexity tags at five ingredients", func(t *testing.T) {
		r := &models.Recipe{
			Name:        "Omelette",
			Ingredients: []string{"a", "b", "c", "d", "e"},
		}
		tags := Classify(r)
		assert.Contains(t, tags, "simple")
		assert.NotContains(t, tags, "quick")
	})

	t.Run("no complexity tags at six ingredients", func(t *testing.T) {
		r := &models.Recipe{
			Name:        "Stew",
			Ingredients: []string{"a", "b", "c", "d", "e", "f"},
		}
		tags := Classify(r)
		assert.NotContains(t, tags, "simple")
		assert.NotContains(t, tags, "quick")
	})

	t.Run("name and method tags", func(t *testing.T) {
		r := &models.Recipe{
			Name:        "Breakfast Salad",
			Ingredients: []string{"grilled halloumi", "lettuce", "olive oil", "lemon", "croutons", "pepper flakes"},
		}
		tags := Classify(r)
		assert.Contains(t, tags, "breakfast")
		assert.Contains(t, tags, "salad")
		assert.Contains(t, tags, "grilled")
	})

	t.Run("cuisine tag for mapped subset only", func(t *testing.T) {
		withTag := Classify(&models.Recipe{Name: "Carbonara", Cuisine: models.CuisineItalian, Ingredients: []string{"pasta"}})
		assert.Contains(t, withTag, "italian")

		withoutTag := Classify(&models.Recipe{Name: "Gumbo", Cuisine: models.CuisineAmerican, Ingredients: []string{"okra"}})
		assert.NotContains(t, withoutTag, "american")
	})

	t.Run("deterministic and sorted", func(t *testing.T) {
		r := &models.Recipe{
			Name:        "Chili con Carne",
			Cuisine:     models.CuisineMexican,
			Ingredients: []string{"beef mince", "kidney beans", "chili powder", "onion", "tomato paste", "rice"},
		}
		first := Classify(r)
		second := Classify(r)
		assert.Equal(t, first, second)
		assert.IsIncreasing(t, first)
	})

	t.Run("nil recipe", func(t *testing.T) {
		assert.Nil(t, Classify(nil))
	})
}

func TestNormalize(t *testing.T) {
	t.Run("case and whitespace collapse", func(t *testing.T) {
		got := Normalize([]string{"Spicy", " spicy ", "SPICY", "weeknight"})
		assert.Equal(t, []string{"spicy", "weeknight"}, got)
	})

	t.Run("empty tokens dropped", func(t *testing.T) {
		got := Normalize([]string{"", "  ", "one"})
		assert.Equal(t, []string{"one"}, got)
	})

	t.Run("nil for empty input", func(t *testing.T) {
		assert.Nil(t, Normalize(nil))
		assert.Nil(t, Normalize([]string{"", " "}))
	})

	t.Run("idempotent over classifier output", func(t *testing.T) {
		r := &models.Recipe{
			Name:        "Baked Salmon",
			Ingredients: []string{"salmon fillet", "butter", "lemon"},
		}
		tags := Classify(r)
		assert.Equal(t, tags, Normalize(tags))
	})
}
