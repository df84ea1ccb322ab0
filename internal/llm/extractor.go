package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"mealplanner-backend-go/internal/models"
)

// ErrExtractionInvalid marks a recoverable extraction failure: the model's
// output did not satisfy the recipe schema. The caller should ask the user to
// retry or correct the input; nothing is persisted.
var ErrExtractionInvalid = errors.New("extracted recipe failed validation")

// ExtractedRecipe is the structured result of a recipe extraction call,
// validated against the recipe schema before being accepted.
type ExtractedRecipe struct {
	Name        string   `json:"name"`
	Cuisine     string   `json:"cuisine"`
	Ingredients []string `json:"ingredients"`
	Notes       string   `json:"notes,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// ExtractRecipe asks the model to pull a structured recipe out of arbitrary
// source text. The response must parse as JSON with a non-empty name and
// ingredient list; the cuisine is constrained to the enumerated set and
// defaulted to Other when the model returns anything else.
func ExtractRecipe(ctx context.Context, gen TextGenerator, source string) (*ExtractedRecipe, error) {
	prompt := buildExtractionPrompt(source)

	raw, err := gen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to get LLM response: %w", err)
	}

	var extracted ExtractedRecipe
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &extracted); err != nil {
		return nil, fmt.Errorf("%w: response is not valid JSON: %v", ErrExtractionInvalid, err)
	}

	if strings.TrimSpace(extracted.Name) == "" {
		return nil, fmt.Errorf("%w: missing recipe name", ErrExtractionInvalid)
	}
	ingredients := make([]string, 0, len(extracted.Ingredients))
	for _, ing := range extracted.Ingredients {
		if ing = strings.TrimSpace(ing); ing != "" {
			ingredients = append(ingredients, ing)
		}
	}
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("%w: missing ingredients", ErrExtractionInvalid)
	}
	extracted.Ingredients = ingredients
	extracted.Cuisine = string(models.CuisineOrDefault(extracted.Cuisine))

	return &extracted, nil
}

func buildExtractionPrompt(source string) string {
	cuisines := make([]string, len(models.Cuisines))
	for i, c := range models.Cuisines {
		cuisines[i] = string(c)
	}

	return fmt.Sprintf(`You are a helpful assistant that extracts structured recipe information.
The source below may be pasted recipe text, the readable text of a web page, or a reference to a video.
Extract the recipe and return ONLY a JSON object with this structure:
{
  "name": "Recipe Name",
  "cuisine": "one of: %s",
  "ingredients": ["quantity + name", ...],
  "notes": "optional free text",
  "tags": ["optional", "tags"]
}
The ingredients list must not be empty. Do not wrap the response in markdown code blocks.

Source:
%s`, strings.Join(cuisines, ", "), source)
}

// stripCodeFences removes a surrounding markdown code fence if the model
// ignored the no-fences instruction.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
