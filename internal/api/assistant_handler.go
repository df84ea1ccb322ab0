package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mealplanner-backend-go/internal/clipper"
	"mealplanner-backend-go/internal/llm"
	"mealplanner-backend-go/internal/models"
)

// AssistantHandler handles the LLM-backed chat and recipe extraction
// endpoints.
type AssistantHandler struct {
	generator llm.TextGenerator
	clipper   *clipper.Clipper
	logger    *zap.Logger
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(gen llm.TextGenerator, cl *clipper.Clipper, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{generator: gen, clipper: cl, logger: logger}
}

// Chat handles POST /assistant/chat
func (h *AssistantHandler) Chat(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "At least one message is required"})
		return
	}

	reply, err := llm.Chat(c.Request.Context(), h.generator, req.Messages)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, ChatResponse{Reply: reply})
}

// Extract handles POST /assistant/extract. A URL source is clipped to its
// readable text before extraction; anything else is treated as pasted text.
func (h *AssistantHandler) Extract(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req models.ExtractRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	source := strings.TrimSpace(req.Source)
	if source == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Source text or URL is required"})
		return
	}

	if clipper.IsURL(source) {
		text, err := h.clipper.FetchText(c.Request.Context(), source)
		if err != nil {
			h.logger.Warn("Failed to clip page for extraction", zap.String("url", source), zap.Error(err))
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Could not read the linked page", Details: err.Error()})
			return
		}
		source = text
	}

	extracted, err := llm.ExtractRecipe(c.Request.Context(), h.generator, source)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, extracted)
}
