package models

import "time"

// Category is the closed supermarket-category vocabulary used when grouping
// shopping list ingredients.
type Category string

const (
	CategoryProduce   Category = "Produce"
	CategoryDairy     Category = "Dairy"
	CategoryMeat      Category = "Meat"
	CategorySeafood   Category = "Seafood"
	CategoryBakery    Category = "Bakery"
	CategoryPantry    Category = "Pantry"
	CategoryFrozen    Category = "Frozen"
	CategoryBeverages Category = "Beverages"
	CategorySnacks    Category = "Snacks"
	CategoryOther     Category = "Other"
)

// Categories lists every valid category value.
var Categories = []Category{
	CategoryProduce, CategoryDairy, CategoryMeat, CategorySeafood,
	CategoryBakery, CategoryPantry, CategoryFrozen, CategoryBeverages,
	CategorySnacks, CategoryOther,
}

// IsCategory reports whether s is a member of the category vocabulary.
func IsCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// CategorizedItem is a single ingredient with its assigned category and
// display glyph, as returned by the categorization call.
type CategorizedItem struct {
	Ingredient string `json:"ingredient" firestore:"ingredient"`
	Category   string `json:"category" firestore:"category"`
	Emoji      string `json:"emoji,omitempty" firestore:"emoji,omitempty"`
}

// CategoryGroup holds the ingredients assigned to one category. Group order is
// the first-seen order of categories in the categorization response.
type CategoryGroup struct {
	Category string   `json:"category" firestore:"category"`
	Emoji    string   `json:"emoji,omitempty" firestore:"emoji,omitempty"`
	Items    []string `json:"items" firestore:"items"`
}

// ShoppingList represents a shopping list document in the shoppingLists
// collection, keyed by the composite key "{userId}_{weekRange}". The cached
// categorization and the hash of the ingredient set it was computed from are
// stored on the same document so they can never be observed torn.
type ShoppingList struct {
	ID              string          `json:"id" firestore:"-"`
	UserID          string          `json:"userId" firestore:"userId"`
	WeekRange       string          `json:"weekRange" firestore:"weekRange"`
	CheckedItems    []string        `json:"checkedItems,omitempty" firestore:"checkedItems,omitempty"`
	MiscItems       []string        `json:"miscItems,omitempty" firestore:"miscItems,omitempty"`
	Categorized     []CategoryGroup `json:"categorized,omitempty" firestore:"categorized,omitempty"`
	IngredientsHash string          `json:"ingredientsHash,omitempty" firestore:"ingredientsHash,omitempty"`
	CreatedAt       time.Time       `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt       time.Time       `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// IsChecked reports whether an item is currently in the checked set. Checked
// membership is independent of the underlying ingredient list; stale entries
// are tolerated.
func (l *ShoppingList) IsChecked(item string) bool {
	for _, it := range l.CheckedItems {
		if it == item {
			return true
		}
	}
	return false
}
