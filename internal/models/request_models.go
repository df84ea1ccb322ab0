package models

// CreateRecipeRequest represents the request body for creating a recipe.
type CreateRecipeRequest struct {
	Name        string   `json:"name" binding:"required"`
	Cuisine     string   `json:"cuisine"`
	Ingredients []string `json:"ingredients" binding:"required"`
	Notes       string   `json:"notes,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Public      bool     `json:"public,omitempty"`
}

// UpdateRecipeRequest represents the request body for updating a recipe.
// Pointers distinguish "clear this field" from "field not provided".
type UpdateRecipeRequest struct {
	Name        *string   `json:"name,omitempty"`
	Cuisine     *string   `json:"cuisine,omitempty"`
	Ingredients *[]string `json:"ingredients,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Public      *bool     `json:"public,omitempty"`
}

// ShareRecipeRequest represents the request body for sharing a recipe.
type ShareRecipeRequest struct {
	UserIDs []string `json:"userIds" binding:"required"`
}

// SetDayRequest represents the request body for assigning a weekday's meals.
type SetDayRequest struct {
	RecipeIDs string `json:"recipeIds"` // comma-separated recipe document IDs
}

// ToggleCheckedRequest represents the request body for toggling a checked item.
type ToggleCheckedRequest struct {
	Item string `json:"item" binding:"required"`
}

// MiscItemRequest represents the request body for adding or removing a
// miscellaneous free-text item on a shopping list.
type MiscItemRequest struct {
	Item string `json:"item" binding:"required"`
}

// SaveNoteRequest represents the request body for saving a day's note.
type SaveNoteRequest struct {
	Content string `json:"content"`
}

// UpdateProfileRequest represents the request body for updating a profile.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Username  *string `json:"username,omitempty"`
}

// ChatMessage is a single turn in an assistant conversation.
type ChatMessage struct {
	Role    string `json:"role" binding:"required"` // "user" or "assistant"
	Content string `json:"content" binding:"required"`
}

// ChatRequest represents the request body for the assistant chat endpoint.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required"`
}

// ExtractRecipeRequest represents the request body for assistant-driven
// recipe extraction. Source may be pasted free text or a URL.
type ExtractRecipeRequest struct {
	Source string `json:"source" binding:"required"`
}
