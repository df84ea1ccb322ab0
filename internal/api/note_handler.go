package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mealplanner-backend-go/internal/core"
	"mealplanner-backend-go/internal/models"
)

// NoteHandler handles API endpoints related to per-day notes.
type NoteHandler struct {
	noteService core.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(ns core.NoteService) *NoteHandler {
	return &NoteHandler{noteService: ns}
}

// GetNote handles GET /notes/:date — an absent note returns an empty one.
func (h *NoteHandler) GetNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date := c.Param("date")

	note, err := h.noteService.GetNote(c.Request.Context(), userID, date)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// SaveNote handles PUT /notes/:date
func (h *NoteHandler) SaveNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date := c.Param("date")

	var req models.SaveNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	note, err := h.noteService.SaveNote(c.Request.Context(), userID, date, req.Content)
	if err != nil {
		mapErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}
