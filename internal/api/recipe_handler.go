package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mealplanner-backend-go/internal/core"
	"mealplanner-backend-go/internal/models"
)

// RecipeHandler handles API endpoints related to recipes.
type RecipeHandler struct {
	recipeService core.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(rs core.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: rs}
}

// CreateRecipe handles POST /recipes
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), userID, req)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// ListRecipes handles GET /recipes — owned plus shared, deduplicated.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipes, err := h.recipeService.VisibleRecipes(c.Request.Context(), userID)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// GetRecipe handles GET /recipes/:recipeId
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recipeID := c.Param("recipeId")
	if recipeID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Recipe ID is required"})
		return
	}

	recipe, err := h.recipeService.GetRecipeByID(c.Request.Context(), userID, recipeID)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// UpdateRecipe handles PUT /recipes/:recipeId
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recipeID := c.Param("recipeId")
	if recipeID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Recipe ID is required"})
		return
	}

	var req models.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), userID, recipeID, req)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// ShareRecipe handles POST /recipes/:recipeId/share
func (h *RecipeHandler) ShareRecipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recipeID := c.Param("recipeId")

	var req models.ShareRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	recipe, err := h.recipeService.ShareRecipe(c.Request.Context(), userID, recipeID, req)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// RemoveShare handles DELETE /recipes/:recipeId/share/:targetUserId
func (h *RecipeHandler) RemoveShare(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	recipeID := c.Param("recipeId")
	targetUserID := c.Param("targetUserId")

	recipe, err := h.recipeService.RemoveShare(c.Request.Context(), userID, recipeID, targetUserID)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}
