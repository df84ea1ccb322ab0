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

const recipesCollection = "recipes"

// firestoreRecipeRepository implements RecipeRepository using Firestore.
type firestoreRecipeRepository struct {
	client *firestore.Client
}

// NewFirestoreRecipeRepository creates a new instance of firestoreRecipeRepository.
func NewFirestoreRecipeRepository(client *firestore.Client) RecipeRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for RecipeRepository.")
	}
	return &firestoreRecipeRepository{client: client}
}

// Create adds a new recipe document with the caller-assigned or generated ID.
// CreatedAt and UpdatedAt are handled by serverTimestamp tags on the model.
func (r *firestoreRecipeRepository) Create(ctx context.Context, recipe *models.Recipe) (string, error) {
	docRef := r.client.Collection(recipesCollection).NewDoc()
	if recipe.ID != "" {
		docRef = r.client.Collection(recipesCollection).Doc(recipe.ID)
	}
	recipe.ID = docRef.ID

	if _, err := docRef.Create(ctx, recipe); err != nil {
		return "", fmt.Errorf("failed to create recipe: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a recipe document by its ID.
func (r *firestoreRecipeRepository) GetByID(ctx context.Context, recipeID string) (*models.Recipe, error) {
	if recipeID == "" {
		return nil, errors.New("recipeID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(recipesCollection).Doc(recipeID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("recipe with ID '%s' not found: %w", recipeID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get recipe with ID '%s': %w", recipeID, err)
	}

	var recipe models.Recipe
	if err := docSnap.DataTo(&recipe); err != nil {
		return nil, fmt.Errorf("failed to decode recipe data for ID '%s': %w", recipeID, err)
	}
	recipe.ID = docSnap.Ref.ID
	return &recipe, nil
}

// GetByOwnerID retrieves all recipes owned by a specific user.
func (r *firestoreRecipeRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]*models.Recipe, error) {
	if ownerID == "" {
		return nil, errors.New("ownerID cannot be empty for GetByOwnerID operation")
	}
	query := r.client.Collection(recipesCollection).Where("userId", "==", ownerID)
	return r.collect(ctx, query.Documents(ctx))
}

// GetSharedWith retrieves recipes whose sharedWith array contains userID.
// Firestore indexes array membership, so this is an indexed lookup rather
// than a collection scan.
func (r *firestoreRecipeRepository) GetSharedWith(ctx context.Context, userID string) ([]*models.Recipe, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetSharedWith operation")
	}
	query := r.client.Collection(recipesCollection).Where("sharedWith", "array-contains", userID)
	return r.collect(ctx, query.Documents(ctx))
}

// Update overwrites an existing recipe document.
func (r *firestoreRecipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	if recipe.ID == "" {
		return errors.New("recipe ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(recipesCollection).Doc(recipe.ID).Set(ctx, recipe)
	if err != nil {
		return fmt.Errorf("failed to update recipe with ID '%s': %w", recipe.ID, err)
	}
	return nil
}

// ListAll iterates the entire recipes collection. Only the batch re-tagging
// tool should use this; request paths go through the owner/shared queries.
func (r *firestoreRecipeRepository) ListAll(ctx context.Context) ([]*models.Recipe, error) {
	return r.collect(ctx, r.client.Collection(recipesCollection).Documents(ctx))
}

func (r *firestoreRecipeRepository) collect(ctx context.Context, iter *firestore.DocumentIterator) ([]*models.Recipe, error) {
	defer iter.Stop()

	var recipes []*models.Recipe
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate recipes: %w", err)
		}

		var recipe models.Recipe
		if err := doc.DataTo(&recipe); err != nil {
			// Skip documents that no longer match the expected shape.
			log.Printf("Error decoding recipe data (ID: %s): %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		recipe.ID = doc.Ref.ID
		recipes = append(recipes, &recipe)
	}
	return recipes, nil
}
