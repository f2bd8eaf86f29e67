package services

import (
	"context"

	"stockroom/internal/models"
	"stockroom/internal/repositories"

	"github.com/pkg/errors"
)

// UserService handles business logic related to user accounts.
type UserService struct {
	repo repositories.UserRepository
	opts options
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository, opts ...Option) *UserService {
	return &UserService{
		repo: repo,
		opts: buildOptions(opts),
	}
}

// ListUsers returns one page of users and the number of users matching the filter.
func (s *UserService) ListUsers(ctx context.Context, page models.PageRequest) ([]models.User, int64, error) {
	return s.repo.List(ctx, page)
}

// GetUser retrieves a single user by ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser replaces the user's names.
func (s *UserService) UpdateUser(ctx context.Context, id, firstName, lastName string) (*models.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	user.SetName(firstName, lastName)
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser deletes a user by ID; a missing user is not an error.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
