package repository

import (
	"context"

	"glimpse/internal/models"

	"gorm.io/gorm"
)

// StoryRepository defines the interface for story data operations. Stories
// are immutable and, unlike posts, carry no defined ordering: ListByOwners
// returns rows in storage order and callers must not rely on any particular
// sequence.
type StoryRepository interface {
	Create(ctx context.Context, story *models.Story) error
	ListByOwners(ctx context.Context, ownerIDs []uint) ([]*models.Story, error)
}

type storyRepository struct {
	db *gorm.DB
}

// NewStoryRepository creates a new story repository
func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(ctx context.Context, story *models.Story) error {
	if err := r.db.WithContext(ctx).Create(story).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *storyRepository) ListByOwners(ctx context.Context, ownerIDs []uint) ([]*models.Story, error) {
	if len(ownerIDs) == 0 {
		return nil, nil
	}
	var stories []*models.Story
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id IN ?", ownerIDs).
		Find(&stories).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return stories, nil
}
