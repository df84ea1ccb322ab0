package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mealplanner-backend-go/internal/core"
	"mealplanner-backend-go/internal/models"
)

// ShoppingHandler handles API endpoints related to shopping lists.
type ShoppingHandler struct {
	shoppingService core.ShoppingService
}

// NewShoppingHandler creates a new ShoppingHandler.
func NewShoppingHandler(ss core.ShoppingService) *ShoppingHandler {
	return &ShoppingHandler{shoppingService: ss}
}

// GetList handles GET /shopping/:week — lazily creates the list and returns
// the categorized view. Categorization failures degrade to a single default
// bucket; the list itself always renders.
func (h *ShoppingHandler) GetList(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	week := c.Param("week")
	if week == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Week range is required"})
		return
	}

	view, err := h.shoppingService.GetList(c.Request.Context(), userID, week)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ToggleChecked handles PUT /shopping/:week/checked
func (h *ShoppingHandler) ToggleChecked(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	week := c.Param("week")

	var req models.ToggleCheckedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	list, err := h.shoppingService.ToggleChecked(c.Request.Context(), userID, week, req.Item)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// AddMiscItem handles POST /shopping/:week/misc
func (h *ShoppingHandler) AddMiscItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	week := c.Param("week")

	var req models.MiscItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	list, err := h.shoppingService.AddMiscItem(c.Request.Context(), userID, week, req.Item)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// RemoveMiscItem handles DELETE /shopping/:week/misc
func (h *ShoppingHandler) RemoveMiscItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	week := c.Param("week")

	var req models.MiscItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	list, err := h.shoppingService.RemoveMiscItem(c.Request.Context(), userID, week, req.Item)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
