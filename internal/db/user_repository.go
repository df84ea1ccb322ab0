package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mealplanner-backend-go/internal/models"
)

const usersCollection = "users"

// firestoreUserRepository implements UserRepository using Firestore.
// The Firebase Auth UID is the document ID.
type firestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a new instance of firestoreUserRepository.
func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for UserRepository.")
	}
	return &firestoreUserRepository{client: client}
}

// GetByID retrieves a user profile by their Firebase Auth UID.
func (r *firestoreUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("user with ID '%s' not found: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user with ID '%s': %w", userID, err)
	}

	var user models.User
	if err := docSnap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user data for ID '%s': %w", userID, err)
	}
	user.ID = docSnap.Ref.ID
	return &user, nil
}

// Create adds a new user profile document keyed by the Auth UID.
func (r *firestoreUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		return errors.New("user ID cannot be empty for Create operation")
	}
	if _, err := r.client.Collection(usersCollection).Doc(user.ID).Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user with ID '%s': %w", user.ID, err)
	}
	return nil
}

// Update overwrites an existing user profile document.
func (r *firestoreUserRepository) Update(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		return errors.New("user ID cannot be empty for Update operation")
	}
	if _, err := r.client.Collection(usersCollection).Doc(user.ID).Set(ctx, user); err != nil {
		return fmt.Errorf("failed to update user with ID '%s': %w", user.ID, err)
	}
	return nil
}

// UsernameTaken reports whether another profile already claims the username.
// Best-effort only: a concurrent claim between this check and the following
// write is not prevented.
func (r *firestoreUserRepository) UsernameTaken(ctx context.Context, username, excludeUserID string) (bool, error) {
	if username == "" {
		return false, nil
	}
	iter := r.client.Collection(usersCollection).Where("username", "==", username).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return false, fmt.Errorf("failed to query username '%s': %w", username, err)
		}
		if doc.Ref.ID != excludeUserID {
			return true, nil
		}
	}
	return false, nil
}
