package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mealplanner-backend-go/internal/db"
	"mealplanner-backend-go/internal/models"
)

// userService implements the UserService interface.
type userService struct {
	userRepo db.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo db.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetOrCreate retrieves a profile by Auth UID, creating it from token claims
// on first sight. Returns the profile and whether it was created.
func (s *userService) GetOrCreate(ctx context.Context, userID, email, firstName, lastName string) (*models.User, bool, error) {
	if userID == "" {
		return nil, false, ErrNoIdentity
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to get user '%s' from repository: %w", userID, err)
	}

	newUser := &models.User{
		ID:        userID, // Auth UID is the document ID
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if createErr := s.userRepo.Create(ctx, newUser); createErr != nil {
		return nil, false, fmt.Errorf("failed to create user '%s' after not found: %w", userID, createErr)
	}
	return newUser, true, nil
}

// GetByID retrieves a profile by Auth UID.
func (s *userService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get user '%s' from repository: %w", userID, err)
	}
	return user, nil
}

// UpdateProfile applies a partial profile update. A username change runs the
// best-effort uniqueness check first; uniqueness is not transactional.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username != "" && username != user.Username {
			taken, err := s.userRepo.UsernameTaken(ctx, username, userID)
			if err != nil {
				return nil, fmt.Errorf("failed to check username '%s': %w", username, err)
			}
			if taken {
				return nil, fmt.Errorf("%w: %q", ErrUsernameTaken, username)
			}
		}
		user.Username = username
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user '%s': %w", userID, err)
	}
	return user, nil
}
