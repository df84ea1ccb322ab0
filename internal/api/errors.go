package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mealplanner-backend-go/internal/core"
	"mealplanner-backend-go/internal/db"
	"mealplanner-backend-go/internal/llm"
)

// mapErrorToStatus maps service-layer errors to HTTP status codes and a
// standardized ErrorResponse body.
func mapErrorToStatus(c *gin.Context, err error) {
	var statusCode int
	var errResponse ErrorResponse

	switch {
	case errors.Is(err, core.ErrNoIdentity):
		statusCode = http.StatusUnauthorized
		errResponse = ErrorResponse{Error: core.ErrNoIdentity.Error()}
	case errors.Is(err, core.ErrRecipeNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrRecipeNotFound.Error()}
	case errors.Is(err, core.ErrUserNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrUserNotFound.Error()}
	case errors.Is(err, core.ErrForbiddenAccess):
		statusCode = http.StatusForbidden
		errResponse = ErrorResponse{Error: core.ErrForbiddenAccess.Error()}
	case errors.Is(err, core.ErrEmptyRecipe),
		errors.Is(err, core.ErrInvalidWeekday),
		errors.Is(err, core.ErrInvalidDate),
		errors.Is(err, core.ErrCannotShareWithSelf):
		statusCode = http.StatusBadRequest
		errResponse = ErrorResponse{Error: err.Error()}
	case errors.Is(err, core.ErrUsernameTaken):
		statusCode = http.StatusConflict
		errResponse = ErrorResponse{Error: core.ErrUsernameTaken.Error()}
	case errors.Is(err, db.ErrKeyOwnerMismatch):
		statusCode = http.StatusForbidden
		errResponse = ErrorResponse{Error: db.ErrKeyOwnerMismatch.Error()}
	case errors.Is(err, llm.ErrExtractionInvalid):
		// Recoverable: the caller should retry or correct the source text.
		statusCode = http.StatusUnprocessableEntity
		errResponse = ErrorResponse{Error: "Could not extract a valid recipe", Details: err.Error()}
	default:
		log.Printf("Internal Server Error: %v", err)
		statusCode = http.StatusInternalServerError
		errResponse = ErrorResponse{Error: "An unexpected internal server error occurred."}
	}
	c.JSON(statusCode, errResponse)
}

// currentUserID extracts the authenticated user's ID from the Gin context.
// The auth middleware sets it; its absence means the route was wired without
// authentication and the request must not proceed.
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return "", false
	}
	return userID.(string), true
}
