package services_test

import (
	"context"
	"testing"

	"stockroom/internal/models"
	"stockroom/internal/repositories"
	"stockroom/internal/services"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetUser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("GetByID", ctx, "missing").Return(nil, errors.Wrap(repositories.ErrNotFound, "user")).Once()
	_, err := service.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
	assert.Equal(t, "User not found", err.Error())
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	user := &models.User{ID: "user-1", FirstName: "Old", LastName: "Name", FullName: "Old Name"}
	mockRepo.On("GetByID", ctx, "user-1").Return(user, nil).Once()
	mockRepo.On("Update", ctx, user).Return(nil).Once()

	updated, err := service.UpdateUser(ctx, "user-1", "Ada", "Lovelace")
	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.FirstName)
	assert.Equal(t, "Lovelace", updated.LastName)
	assert.Equal(t, "Ada Lovelace", updated.FullName)
	mockRepo.AssertExpectations(t)
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("Delete", ctx, "whoever").Return(nil).Once()
	assert.NoError(t, service.DeleteUser(ctx, "whoever"))
	mockRepo.AssertExpectations(t)
}
