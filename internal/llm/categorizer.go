package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"mealplanner-backend-go/internal/models"
)

// Categorizer assigns supermarket categories to an ingredient list.
// The shopping service depends on this interface so the cache-hit property
// (no call on unchanged input) is testable.
type Categorizer interface {
	Categorize(ctx context.Context, ingredients []string) ([]models.CategorizedItem, error)
}

// llmCategorizer implements Categorizer over a TextGenerator.
type llmCategorizer struct {
	gen TextGenerator
}

// NewCategorizer creates a Categorizer backed by the generative model.
func NewCategorizer(gen TextGenerator) Categorizer {
	return &llmCategorizer{gen: gen}
}

// Categorize sends the ingredient list and the fixed category vocabulary to
// the model and parses per-ingredient assignments. A category outside the
// vocabulary is coerced to Other rather than rejected; a transport or parse
// failure is returned for the caller to apply its fallback.
func (c *llmCategorizer) Categorize(ctx context.Context, ingredients []string) ([]models.CategorizedItem, error) {
	if len(ingredients) == 0 {
		return nil, nil
	}

	raw, err := c.gen.GenerateContent(ctx, buildCategorizationPrompt(ingredients))
	if err != nil {
		return nil, fmt.Errorf("failed to get LLM response: %w", err)
	}

	var items []models.CategorizedItem
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categorization response: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("categorization response contained no items")
	}

	for i := range items {
		if !models.IsCategory(items[i].Category) {
			items[i].Category = string(models.CategoryOther)
		}
	}
	return items, nil
}

func buildCategorizationPrompt(ingredients []string) string {
	categories := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		categories[i] = string(c)
	}

	var b strings.Builder
	b.WriteString("Assign each grocery ingredient below to exactly one supermarket category.\n")
	b.WriteString("Valid categories: ")
	b.WriteString(strings.Join(categories, ", "))
	b.WriteString("\nReturn ONLY a JSON array, one element per ingredient, in the same order:\n")
	b.WriteString(`[{"ingredient": "...", "category": "...", "emoji": "..."}]`)
	b.WriteString("\nDo not wrap the response in markdown code blocks.\n\nIngredients:\n")
	for _, ing := range ingredients {
		b.WriteString("- ")
		b.WriteString(ing)
		b.WriteString("\n")
	}
	return b.String()
}
