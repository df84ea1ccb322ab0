// Package tagging derives descriptive tags from recipe content with
// deterministic keyword rules. The same function backs the interactive save
// path and the batch re-tagging tool, so results are idempotent and
// consistent between the two.
package tagging

import (
	"sort"
	"strings"

	"mealplanner-backend-go/internal/models"
)

var (
	proteinTerms = []string{
		"chicken", "beef", "pork", "lamb", "turkey", "fish", "salmon", "tuna",
		"shrimp", "prawn", "egg", "tofu", "lentil", "chickpea", "bean",
	}
	vegetableTerms = []string{
		"broccoli", "spinach", "carrot", "pepper", "onion", "tomato", "zucchini",
		"kale", "cabbage", "cauliflower", "mushroom", "lettuce", "cucumber", "pea",
	}
	starchTerms = []string{
		"rice", "pasta", "noodle", "potato", "bread", "quinoa", "couscous",
		"tortilla", "flour", "oat",
	}
	dairyTerms = []string{
		"milk", "cheese", "butter", "cream", "yogurt", "yoghurt", "mozzarella",
		"parmesan", "feta",
	}
	spicyTerms = []string{
		"chili", "chilli", "jalapeno", "jalapeño", "sriracha", "cayenne",
		"hot sauce", "harissa", "curry paste",
	}
	sweetTerms = []string{
		"sugar", "honey", "maple syrup", "chocolate", "caramel", "molasses",
	}

	// methodTags maps a cooking-method keyword found in the combined
	// ingredient text to its tag.
	methodTags = map[string]string{
		"grilled":     "grilled",
		"baked":       "baked",
		"fried":       "fried",
		"slow-cooked": "slow-cooked",
	}

	// nameTags maps a keyword found in the recipe name to a meal-type tag.
	nameTags = map[string]string{
		"breakfast": "breakfast",
		"dessert":   "dessert",
		"salad":     "salad",
		"soup":      "soup",
	}

	// cuisineTags maps a fixed subset of cuisines to a direct tag.
	cuisineTags = map[models.Cuisine]string{
		models.CuisineItalian:  "italian",
		models.CuisineMexican:  "mexican",
		models.CuisineChinese:  "chinese",
		models.CuisineIndian:   "indian",
		models.CuisineJapanese: "japanese",
		models.CuisineThai:     "thai",
	}
)

// Classify maps a recipe's name, cuisine, and ingredient text to a set of
// lower-case tags. Pure function: no I/O, never fails, and two calls with the
// same recipe always yield an equal set. The returned slice is sorted so
// persisted tag sets are stable.
func Classify(r *models.Recipe) []string {
	if r == nil {
		return nil
	}

	combined := strings.ToLower(strings.Join(r.Ingredients, " "))
	name := strings.ToLower(r.Name)

	seen := make(map[string]bool)
	add := func(tag string) { seen[tag] = true }

	if containsAny(combined, proteinTerms) {
		add("protein")
	}
	if containsAny(combined, vegetableTerms) {
		add("vegetables")
	}
	if containsAny(combined, starchTerms) {
		add("carbs")
	}
	if containsAny(combined, dairyTerms) {
		add("dairy")
	}
	if containsAny(combined, spicyTerms) {
		add("spicy")
	}
	if containsAny(combined, sweetTerms) {
		add("sweet")
	}

	for keyword, tag := range methodTags {
		if strings.Contains(combined, keyword) {
			add(tag)
		}
	}
	for keyword, tag := range nameTags {
		if strings.Contains(name, keyword) {
			add(tag)
		}
	}
	if tag, ok := cuisineTags[r.Cuisine]; ok {
		add(tag)
	}

	// Complexity tags derive purely from ingredient count; both can apply.
	if len(r.Ingredients) <= 5 {
		add("simple")
	}
	if len(r.Ingredients) <= 3 {
		add("quick")
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Normalize lower-cases, trims, and deduplicates a user-provided tag list.
// The result is sorted; "A" and "a" collapse to one tag.
func Normalize(tags []string) []string {
	seen := make(map[string]bool)
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			seen[t] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
