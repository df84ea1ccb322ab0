package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mealplanner-backend-go/internal/db"
	"mealplanner-backend-go/internal/models"
)

// noteService implements the NoteService interface.
type noteService struct {
	noteRepo db.NoteRepository
}

// NewNoteService creates a new NoteService instance.
func NewNoteService(nr db.NoteRepository) NoteService {
	return &noteService{noteRepo: nr}
}

// GetNote returns the user's note for a date, or an empty note when none
// exists yet.
func (s *noteService) GetNote(ctx context.Context, userID, date string) (*models.Note, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}
	key := models.NoteKey(userID, date)

	note, err := s.noteRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return &models.Note{ID: key, UserID: userID, Date: date}, nil
		}
		return nil, fmt.Errorf("failed to get note '%s': %w", key, err)
	}
	return note, nil
}

// SaveNote upserts the user's note for a date. The composite key guarantees
// one note per (owner, date); a second save updates rather than duplicates.
func (s *noteService) SaveNote(ctx context.Context, userID, date, content string) (*models.Note, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}
	key := models.NoteKey(userID, date)

	note := &models.Note{
		ID:        key,
		UserID:    userID,
		Date:      date,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.noteRepo.Set(ctx, key, note); err != nil {
		return nil, fmt.Errorf("failed to save note '%s': %w", key, err)
	}
	return note, nil
}

func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}
