package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mealplanner-backend-go/internal/models"
)

const notesCollection = "notes"

// firestoreNoteRepository implements NoteRepository using Firestore.
type firestoreNoteRepository struct {
	client *firestore.Client
}

// NewFirestoreNoteRepository creates a new instance of firestoreNoteRepository.
func NewFirestoreNoteRepository(client *firestore.Client) NoteRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for NoteRepository.")
	}
	return &firestoreNoteRepository{client: client}
}

// GetByKey retrieves a note document by its composite key.
func (r *firestoreNoteRepository) GetByKey(ctx context.Context, key string) (*models.Note, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty for GetByKey operation")
	}
	docSnap, err := r.client.Collection(notesCollection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("note '%s' not found: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get note '%s': %w", key, err)
	}

	var note models.Note
	if err := docSnap.DataTo(&note); err != nil {
		return nil, fmt.Errorf("failed to decode note data for key '%s': %w", key, err)
	}
	note.ID = docSnap.Ref.ID
	return &note, nil
}

// Set writes the note document under its composite key. Keying by
// "{userId}_{date}" makes a second save for the same date an update, never a
// duplicate.
func (r *firestoreNoteRepository) Set(ctx context.Context, key string, note *models.Note) error {
	if key == "" {
		return errors.New("key cannot be empty for Set operation")
	}
	note.ID = key
	if _, err := r.client.Collection(notesCollection).Doc(key).Set(ctx, note); err != nil {
		return fmt.Errorf("failed to set note '%s': %w", key, err)
	}
	return nil
}
