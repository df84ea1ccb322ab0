package models

import "time"

// Cuisine is the closed set of cuisines a recipe can be labelled with.
type Cuisine string

const (
	CuisineItalian       Cuisine = "Italian"
	CuisineMexican       Cuisine = "Mexican"
	CuisineChinese       Cuisine = "Chinese"
	CuisineIndian        Cuisine = "Indian"
	CuisineJapanese      Cuisine = "Japanese"
	CuisineThai          Cuisine = "Thai"
	CuisineFrench        Cuisine = "French"
	CuisineGreek         Cuisine = "Greek"
	CuisineMediterranean Cuisine = "Mediterranean"
	CuisineAmerican      Cuisine = "American"
	CuisineOther         Cuisine = "Other"
)

// Cuisines lists every valid cuisine value.
var Cuisines = []Cuisine{
	CuisineItalian, CuisineMexican, CuisineChinese, CuisineIndian,
	CuisineJapanese, CuisineThai, CuisineFrench, CuisineGreek,
	CuisineMediterranean, CuisineAmerican, CuisineOther,
}

// ParseCuisine returns the matching Cuisine value and whether the input was valid.
func ParseCuisine(s string) (Cuisine, bool) {
	for _, c := range Cuisines {
		if string(c) == s {
			return c, true
		}
	}
	return CuisineOther, false
}

// CuisineOrDefault maps arbitrary input onto the enum, falling back to Other.
func CuisineOrDefault(s string) Cuisine {
	c, _ := ParseCuisine(s)
	return c
}

// Recipe represents a recipe document in the recipes collection.
// UserID is the owning identity and is immutable after creation.
type Recipe struct {
	ID          string    `json:"id" firestore:"-"` // Document ID, auto-generated
	UserID      string    `json:"userId" firestore:"userId"`
	Name        string    `json:"name" firestore:"name"`
	Cuisine     Cuisine   `json:"cuisine" firestore:"cuisine"`
	Ingredients []string  `json:"ingredients" firestore:"ingredients"`
	Notes       string    `json:"notes,omitempty" firestore:"notes,omitempty"`
	Tags        []string  `json:"tags,omitempty" firestore:"tags,omitempty"`
	SharedWith  []string  `json:"sharedWith,omitempty" firestore:"sharedWith,omitempty"` // User IDs granted read access
	Public      bool      `json:"public,omitempty" firestore:"public,omitempty"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// IsSharedWith reports whether the given user appears in the recipe's share list.
func (r *Recipe) IsSharedWith(userID string) bool {
	for _, id := range r.SharedWith {
		if id == userID {
			return true
		}
	}
	return false
}
