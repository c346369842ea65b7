package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"avatarhub/internal/errors"
	"avatarhub/internal/model"
)

// AvatarRepository defines the record store operations.
type AvatarRepository interface {
	List(ctx context.Context) []model.AvatarRecord
	Count(ctx context.Context) int
	FindByID(ctx context.Context, id int) (model.AvatarRecord, error)
	Create(ctx context.Context, input model.NewRecordInput) model.AvatarRecord
	Update(ctx context.Context, record model.AvatarRecord) error
}

// Clock returns the current time. Creation dates are taken from it.
type Clock func() time.Time

type avatarRepository struct {
	mu      sync.Mutex
	records []model.AvatarRecord
	nextID  int
	now     Clock
}

// NewAvatarRepository builds an in-memory store holding a copy of seed in the given order.
func NewAvatarRepository(seed []model.AvatarRecord, now Clock) AvatarRepository {
	if now == nil {
		now = time.Now
	}
	records := make([]model.AvatarRecord, len(seed))
	copy(records, seed)

	maxID := 0
	for _, r := range records {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	return &avatarRepository{
		records: records,
		nextID:  maxID + 1,
		now:     now,
	}
}

// List returns all records in insertion order.
func (r *avatarRepository) List(ctx context.Context) []model.AvatarRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.AvatarRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Count returns the number of stored records.
func (r *avatarRepository) Count(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// FindByID returns the record with the given id.
func (r *avatarRepository) FindByID(ctx context.Context, id int) (model.AvatarRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		return r.records[i], nil
	}
	return model.AvatarRecord{}, fmt.Errorf("find avatar %d: %w", id, errors.ErrAvatarNotFound)
}

// Create assigns the next id and today's date, then appends the record.
func (r *avatarRepository) Create(ctx context.Context, input model.NewRecordInput) model.AvatarRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := model.AvatarRecord{
		ID:          r.nextID,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		AvatarImage: input.AvatarImage,
		CreatedAt:   r.now().Format(model.CreatedAtLayout),
		Category:    input.Category,
		Description: input.Description,
	}
	r.nextID++
	r.records = append(r.records, record)
	return record
}

// Update replaces the record with the same id in place. The stored id and
// creation date always win over the caller's values.
func (r *avatarRepository) Update(ctx context.Context, record model.AvatarRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(record.ID)
	if i < 0 {
		return fmt.Errorf("update avatar %d: %w", record.ID, errors.ErrAvatarNotFound)
	}
	record.CreatedAt = r.records[i].CreatedAt
	r.records[i] = record
	return nil
}

func (r *avatarRepository) indexOf(id int) int {
	for i := range r.records {
		if r.records[i].ID == id {
			return i
		}
	}
	return -1
}
