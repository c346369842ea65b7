package service

import (
	"context"
	"fmt"

	"avatarhub/internal/logger"
	"avatarhub/internal/model"
	"avatarhub/internal/repository"
)

// AvatarService applies completed form payloads to the record store.
type AvatarService interface {
	ListAvatars(ctx context.Context) []model.AvatarRecord
	GetAvatar(ctx context.Context, id int) (model.AvatarRecord, error)
	CreateAvatar(ctx context.Context, input model.NewRecordInput) model.AvatarRecord
	UpdateAvatar(ctx context.Context, record model.AvatarRecord) error
}

type avatarService struct {
	repo repository.AvatarRepository
}

// NewAvatarService creates a new avatar service.
func NewAvatarService(repo repository.AvatarRepository) AvatarService {
	return &avatarService{repo: repo}
}

func (s *avatarService) ListAvatars(ctx context.Context) []model.AvatarRecord {
	return s.repo.List(ctx)
}

func (s *avatarService) GetAvatar(ctx context.Context, id int) (model.AvatarRecord, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateAvatar stores a new record and returns it with its assigned id.
func (s *avatarService) CreateAvatar(ctx context.Context, input model.NewRecordInput) model.AvatarRecord {
	record := s.repo.Create(ctx, input)
	logger.Info().
		Int("avatar_id", record.ID).
		Str("category", record.Category).
		Msg("avatar created")
	return record
}

// UpdateAvatar replaces an existing record. Unknown ids surface as ErrAvatarNotFound.
func (s *avatarService) UpdateAvatar(ctx context.Context, record model.AvatarRecord) error {
	if err := s.repo.Update(ctx, record); err != nil {
		logger.Warn().Err(err).Int("avatar_id", record.ID).Msg("avatar update rejected")
		return fmt.Errorf("update avatar: %w", err)
	}
	logger.Info().Int("avatar_id", record.ID).Msg("avatar updated")
	return nil
}
