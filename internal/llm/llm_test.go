package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealplanner-backend-go/internal/models"
)

// scriptedGenerator returns a fixed response, recording the prompt it saw.
type scriptedGenerator struct {
	response string
	err      error
	prompt   string
}

func (g *scriptedGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	g.prompt = prompt
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func TestExtractRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("valid response accepted", func(t *testing.T) {
		gen := &scriptedGenerator{response: `{"name":"Pad Thai","cuisine":"Thai","ingredients":["rice noodles","tamarind"],"notes":"soak noodles first"}`}

		got, err := ExtractRecipe(ctx, gen, "some pasted recipe text")
		require.NoError(t, err)
		assert.Equal(t, "Pad Thai", got.Name)
		assert.Equal(t, "Thai", got.Cuisine)
		assert.Equal(t, []string{"rice noodles", "tamarind"}, got.Ingredients)
	})

	t.Run("code fences stripped", func(t *testing.T) {
		gen := &scriptedGenerator{response: "```json\n{\"name\":\"Toast\",\"ingredients\":[\"bread\"]}\n```"}

		got, err := ExtractRecipe(ctx, gen, "text")
		require.NoError(t, err)
		assert.Equal(t, "Toast", got.Name)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		gen := &scriptedGenerator{response: `{"name":"  ","ingredients":["bread"]}`}

		_, err := ExtractRecipe(ctx, gen, "text")
		assert.ErrorIs(t, err, ErrExtractionInvalid)
	})

	t.Run("missing ingredients rejected", func(t *testing.T) {
		gen := &scriptedGenerator{response: `{"name":"Toast","ingredients":["", "  "]}`}

		_, err := ExtractRecipe(ctx, gen, "text")
		assert.ErrorIs(t, err, ErrExtractionInvalid)
	})

	t.Run("non-JSON response rejected as recoverable", func(t *testing.T) {
		gen := &scriptedGenerator{response: "Sorry, I could not find a recipe there."}

		_, err := ExtractRecipe(ctx, gen, "text")
		assert.ErrorIs(t, err, ErrExtractionInvalid)
	})

	t.Run("unknown cuisine defaults to Other", func(t *testing.T) {
		gen := &scriptedGenerator{response: `{"name":"Fusion Bowl","cuisine":"Intergalactic","ingredients":["rice"]}`}

		got, err := ExtractRecipe(ctx, gen, "text")
		require.NoError(t, err)
		assert.Equal(t, string(models.CuisineOther), got.Cuisine)
	})

	t.Run("transport error is not an extraction error", func(t *testing.T) {
		gen := &scriptedGenerator{err: errors.New("deadline exceeded")}

		_, err := ExtractRecipe(ctx, gen, "text")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrExtractionInvalid)
	})

	t.Run("source text reaches the prompt", func(t *testing.T) {
		gen := &scriptedGenerator{response: `{"name":"Toast","ingredients":["bread"]}`}

		_, err := ExtractRecipe(ctx, gen, "grandma's famous toast method")
		require.NoError(t, err)
		assert.Contains(t, gen.prompt, "grandma's famous toast method")
	})
}

func TestCategorize(t *testing.T) {
	ctx := context.Background()

	t.Run("assignments parsed in order", func(t *testing.T) {
		gen := &scriptedGenerator{response: `[{"ingredient":"milk","category":"Dairy","emoji":"🥛"},{"ingredient":"apple","category":"Produce","emoji":"🍎"}]`}
		cat := NewCategorizer(gen)

		items, err := cat.Categorize(ctx, []string{"milk", "apple"})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Dairy", items[0].Category)
		assert.Equal(t, "Produce", items[1].Category)
	})

	t.Run("invalid category coerced to Other", func(t *testing.T) {
		gen := &scriptedGenerator{response: `[{"ingredient":"milk","category":"Refrigerated Goods"}]`}
		cat := NewCategorizer(gen)

		items, err := cat.Categorize(ctx, []string{"milk"})
		require.NoError(t, err)
		assert.Equal(t, string(models.CategoryOther), items[0].Category)
	})

	t.Run("empty input makes no call", func(t *testing.T) {
		gen := &scriptedGenerator{response: `[]`}
		cat := NewCategorizer(gen)

		items, err := cat.Categorize(ctx, nil)
		require.NoError(t, err)
		assert.Nil(t, items)
		assert.Empty(t, gen.prompt)
	})

	t.Run("unparseable response surfaces error for fallback", func(t *testing.T) {
		gen := &scriptedGenerator{response: "not json"}
		cat := NewCategorizer(gen)

		_, err := cat.Categorize(ctx, []string{"milk"})
		assert.Error(t, err)
	})
}

func TestChat(t *testing.T) {
	ctx := context.Background()

	t.Run("history rendered into prompt", func(t *testing.T) {
		gen := &scriptedGenerator{response: "  Try swapping in tofu.  "}

		reply, err := Chat(ctx, gen, []models.ChatMessage{
			{Role: "user", Content: "What can I use instead of chicken?"},
			{Role: "assistant", Content: "In which recipe?"},
			{Role: "user", Content: "The stir fry."},
		})
		require.NoError(t, err)
		assert.Equal(t, "Try swapping in tofu.", reply)
		assert.Contains(t, gen.prompt, "User: What can I use instead of chicken?")
		assert.Contains(t, gen.prompt, "Assistant: In which recipe?")
	})

	t.Run("empty history rejected", func(t *testing.T) {
		gen := &scriptedGenerator{response: "hi"}

		_, err := Chat(ctx, gen, nil)
		assert.Error(t, err)
	})
}
