package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mealplanner-backend-go/internal/core"
	"mealplanner-backend-go/internal/models"
)

// PlanHandler handles API endpoints related to weekly meal plans.
type PlanHandler struct {
	plannerService core.PlannerService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(ps core.PlannerService) *PlanHandler {
	return &PlanHandler{plannerService: ps}
}

// GetPlan handles GET /mealplans/:week
func (h *PlanHandler) GetPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	week := c.Param("week")
	if week == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Week range is required"})
		return
	}

	plan, err := h.plannerService.GetPlan(c.Request.Context(), userID, week)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// SetDay handles PUT /mealplans/:week/days/:day
func (h *PlanHandler) SetDay(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	week := c.Param("week")
	day := c.Param("day")

	var req models.SetDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	plan, err := h.plannerService.SetDay(c.Request.Context(), userID, week, day, req.RecipeIDs)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// AggregateIngredients handles GET /mealplans/:week/ingredients
func (h *PlanHandler) AggregateIngredients(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	week := c.Param("week")

	ingredients, err := h.plannerService.AggregateIngredients(c.Request.Context(), userID, week)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, AggregationResponse{WeekRange: week, Ingredients: ingredients})
}
