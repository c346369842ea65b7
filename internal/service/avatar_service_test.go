package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"avatarhub/internal/errors"
	"avatarhub/internal/model"
)

// MockAvatarRepository is a mock implementation of AvatarRepository.
type MockAvatarRepository struct {
	mock.Mock
}

func (m *MockAvatarRepository) List(ctx context.Context) []model.AvatarRecord {
	args := m.Called(ctx)
	return args.Get(0).([]model.AvatarRecord)
}

func (m *MockAvatarRepository) Count(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

func (m *MockAvatarRepository) FindByID(ctx context.Context, id int) (model.AvatarRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.AvatarRecord), args.Error(1)
}

func (m *MockAvatarRepository) Create(ctx context.Context, input model.NewRecordInput) model.AvatarRecord {
	args := m.Called(ctx, input)
	return args.Get(0).(model.AvatarRecord)
}

func (m *MockAvatarRepository) Update(ctx context.Context, record model.AvatarRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func TestAvatarService_CreateAvatar(t *testing.T) {
	repo := new(MockAvatarRepository)
	input := model.NewRecordInput{FirstName: "Test", LastName: "User", Category: model.CategoryCasual}
	repo.On("Create", mock.Anything, input).Return(model.AvatarRecord{ID: 4, FirstName: "Test", LastName: "User"})

	svc := NewAvatarService(repo)
	created := svc.CreateAvatar(context.Background(), input)

	assert.Equal(t, 4, created.ID)
	repo.AssertExpectations(t)
}

func TestAvatarService_UpdateAvatar(t *testing.T) {
	tests := []struct {
		name          string
		repoErr       error
		expectedError error
	}{
		{
			name:          "successful update",
			repoErr:       nil,
			expectedError: nil,
		},
		{
			name:          "missing avatar",
			repoErr:       fmt.Errorf("update avatar 9: %w", errors.ErrAvatarNotFound),
			expectedError: errors.ErrAvatarNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockAvatarRepository)
			record := model.AvatarRecord{ID: 9, FirstName: "Edited"}
			repo.On("Update", mock.Anything, record).Return(tt.repoErr)

			err := NewAvatarService(repo).UpdateAvatar(context.Background(), record)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAvatarService_GetAvatar(t *testing.T) {
	repo := new(MockAvatarRepository)
	repo.On("FindByID", mock.Anything, 2).Return(model.AvatarRecord{ID: 2, FirstName: "Daniel"}, nil)

	got, err := NewAvatarService(repo).GetAvatar(context.Background(), 2)

	assert.NoError(t, err)
	assert.Equal(t, "Daniel", got.FirstName)
	repo.AssertExpectations(t)
}
