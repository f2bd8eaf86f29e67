package repositories

import (
	"context"

	"stockroom/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// List returns one page of users filtered on full name, plus the number of
// users matching the filter.
func (r *GORMUserRepository) List(ctx context.Context, page models.PageRequest) ([]models.User, int64, error) {
	var total int64
	filtered := r.db.WithContext(ctx).Model(&models.User{}).Scopes(searchScope("full_name", page.Search))
	if err := filtered.Count(&total).Error; err != nil {
		return nil, 0, translate(err, "failed to count users")
	}

	users := []models.User{}
	err := r.db.WithContext(ctx).
		Scopes(searchScope("full_name", page.Search)).
		Order("created_at ASC").
		Offset(page.Offset()).
		Limit(page.PerPage).
		Find(&users).Error
	if err != nil {
		return nil, 0, translate(err, "failed to list users")
	}
	return users, total, nil
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err, "user with ID %s", id)
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email from the database.
func (r *GORMUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err, "user with email %s", email)
	}
	return &user, nil
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translate(err, "failed to create user")
	}
	return nil
}

// Update overwrites every column of an existing user.
func (r *GORMUserRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return translate(err, "failed to update user %s", user.ID)
	}
	return nil
}

// Delete removes a user by ID. Deleting a missing user is not an error.
func (r *GORMUserRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error; err != nil {
		return translate(err, "failed to delete user %s", id)
	}
	return nil
}
