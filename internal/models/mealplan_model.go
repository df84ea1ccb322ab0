package models

import (
	"fmt"
	"strings"
	"time"
)

// Weekdays are the seven canonical day keys a meal plan may use, in week order.
// Any other key found on a plan document is ignored by aggregation.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// IsWeekday reports whether name is one of the canonical weekday keys.
func IsWeekday(name string) bool {
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}

// WeeklyMealPlan represents a meal plan document in the mealPlans collection.
// The document ID is the composite key "{userId}_{weekRange}". Each weekday
// holds a comma-separated list of recipe document IDs.
type WeeklyMealPlan struct {
	ID        string    `json:"id" firestore:"-"`
	UserID    string    `json:"userId" firestore:"userId"`
	WeekRange string    `json:"weekRange" firestore:"weekRange"`
	Monday    string    `json:"Monday,omitempty" firestore:"Monday,omitempty"`
	Tuesday   string    `json:"Tuesday,omitempty" firestore:"Tuesday,omitempty"`
	Wednesday string    `json:"Wednesday,omitempty" firestore:"Wednesday,omitempty"`
	Thursday  string    `json:"Thursday,omitempty" firestore:"Thursday,omitempty"`
	Friday    string    `json:"Friday,omitempty" firestore:"Friday,omitempty"`
	Saturday  string    `json:"Saturday,omitempty" firestore:"Saturday,omitempty"`
	Sunday    string    `json:"Sunday,omitempty" firestore:"Sunday,omitempty"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// Day returns the raw comma-separated recipe ID list for a canonical weekday.
// Non-canonical names yield an empty string.
func (p *WeeklyMealPlan) Day(name string) string {
	switch name {
	case "Monday":
		return p.Monday
	case "Tuesday":
		return p.Tuesday
	case "Wednesday":
		return p.Wednesday
	case "Thursday":
		return p.Thursday
	case "Friday":
		return p.Friday
	case "Saturday":
		return p.Saturday
	case "Sunday":
		return p.Sunday
	}
	return ""
}

// SetDay assigns the comma-separated recipe ID list for a canonical weekday.
func (p *WeeklyMealPlan) SetDay(name, recipeIDs string) error {
	switch name {
	case "Monday":
		p.Monday = recipeIDs
	case "Tuesday":
		p.Tuesday = recipeIDs
	case "Wednesday":
		p.Wednesday = recipeIDs
	case "Thursday":
		p.Thursday = recipeIDs
	case "Friday":
		p.Friday = recipeIDs
	case "Saturday":
		p.Saturday = recipeIDs
	case "Sunday":
		p.Sunday = recipeIDs
	default:
		return fmt.Errorf("%q is not a weekday", name)
	}
	return nil
}

// DayRecipeIDs splits a weekday's value into individual recipe IDs,
// trimming whitespace and dropping empty tokens.
func (p *WeeklyMealPlan) DayRecipeIDs(name string) []string {
	var ids []string
	for _, tok := range strings.Split(p.Day(name), ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			ids = append(ids, tok)
		}
	}
	return ids
}

// WeekKey builds the composite document key for per-week records.
func WeekKey(userID, weekRange string) string {
	return userID + "_" + weekRange
}

// WeekKeyOwnedBy reports whether the composite key embeds the given owner.
// Used to reject cross-user key collisions before any write reaches the store.
func WeekKeyOwnedBy(key, userID string) bool {
	return userID != "" && strings.HasPrefix(key, userID+"_")
}

// WeekRangeLabel formats the Monday-Sunday span containing t, matching the
// labels the store has always used, e.g. "June 02, 2025 - June 08, 2025".
func WeekRangeLabel(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7 // days since Monday
	start := t.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)
	return start.Format("January 02, 2006") + " - " + end.Format("January 02, 2006")
}
