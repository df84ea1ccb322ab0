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

const shoppingListsCollection = "shoppingLists"

// firestoreShoppingListRepository implements ShoppingListRepository using Firestore.
type firestoreShoppingListRepository struct {
	client *firestore.Client
}

// NewFirestoreShoppingListRepository creates a new instance of firestoreShoppingListRepository.
func NewFirestoreShoppingListRepository(client *firestore.Client) ShoppingListRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ShoppingListRepository.")
	}
	return &firestoreShoppingListRepository{client: client}
}

// GetByKey retrieves a shopping list document by its composite key.
func (r *firestoreShoppingListRepository) GetByKey(ctx context.Context, key string) (*models.ShoppingList, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty for GetByKey operation")
	}
	docSnap, err := r.client.Collection(shoppingListsCollection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("shopping list '%s' not found: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shopping list '%s': %w", key, err)
	}

	var list models.ShoppingList
	if err := docSnap.DataTo(&list); err != nil {
		return nil, fmt.Errorf("failed to decode shopping list data for key '%s': %w", key, err)
	}
	list.ID = docSnap.Ref.ID
	return &list, nil
}

// Set writes the full shopping list document under its composite key. The
// categorization cache and its hash travel in the same write, so a reader can
// never observe one without the other.
func (r *firestoreShoppingListRepository) Set(ctx context.Context, key string, list *models.ShoppingList) error {
	if key == "" {
		return errors.New("key cannot be empty for Set operation")
	}
	list.ID = key
	if _, err := r.client.Collection(shoppingListsCollection).Doc(key).Set(ctx, list); err != nil {
		return fmt.Errorf("failed to set shopping list '%s': %w", key, err)
	}
	return nil
}
