package service

import (
	"context"

	"glimpse/internal/models"
	"glimpse/internal/observability"
	"glimpse/internal/repository"
)

// StoryService provides story creation business logic.
type StoryService struct {
	storyRepo repository.StoryRepository
}

// CreateStoryInput carries the fields for a new story. Attachment refs follow
// the same empty-string convention as posts.
type CreateStoryInput struct {
	UserID   uint
	ImageRef string
	VideoRef string
}

// NewStoryService returns a new StoryService.
func NewStoryService(storyRepo repository.StoryRepository) *StoryService {
	return &StoryService{storyRepo: storyRepo}
}

// CreateStory persists a new story.
func (s *StoryService) CreateStory(ctx context.Context, in CreateStoryInput) (*models.Story, error) {
	story := &models.Story{
		Image:  in.ImageRef,
		Video:  in.VideoRef,
		UserID: in.UserID,
	}
	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, err
	}
	observability.ContentCreated.WithLabelValues("story").Inc()
	return story, nil
}
