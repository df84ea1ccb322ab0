package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mealplanner-backend-go/internal/core"
)

// AuthHandler handles the post-sign-in profile bootstrap.
type AuthHandler struct {
	userService core.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us core.UserService) *AuthHandler {
	return &AuthHandler{userService: us}
}

// InitializeUserProfile handles POST /auth/initialize. The client calls it
// once after sign-in; the profile document is created from token claims on
// first sight and returned unchanged on subsequent calls.
func (h *AuthHandler) InitializeUserProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	email, _ := c.Get("userEmail")
	displayName, _ := c.Get("userDisplayName")
	firstName, lastName := splitDisplayName(asString(displayName))

	user, created, err := h.userService.GetOrCreate(c.Request.Context(), userID, asString(email), firstName, lastName)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}
	if created {
		c.JSON(http.StatusCreated, user)
		return
	}
	c.JSON(http.StatusOK, user)
}

// splitDisplayName splits a provider display name into first and last name on
// the first space. A single token becomes the first name only.
func splitDisplayName(displayName string) (string, string) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return "", ""
	}
	parts := strings.SplitN(displayName, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
