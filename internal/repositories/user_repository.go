package repositories

import (
	"context"

	"stockroom/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	List(ctx context.Context, page models.PageRequest) ([]models.User, int64, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}
