package service

import (
	"context"
	"time"

	"glimpse/internal/models"
	"glimpse/internal/observability"
	"glimpse/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// Feed is the home feed visible to a viewer: posts newest-first and stories
// in storage order, both restricted to the viewer and their followees.
type Feed struct {
	Posts   []*models.Post  `json:"posts"`
	Stories []*models.Story `json:"stories"`
}

// FeedService assembles home feeds from the social graph and content stores.
type FeedService struct {
	followRepo repository.FollowRepository
	postRepo   repository.PostRepository
	storyRepo  repository.StoryRepository
}

// NewFeedService returns a new FeedService.
func NewFeedService(followRepo repository.FollowRepository, postRepo repository.PostRepository, storyRepo repository.StoryRepository) *FeedService {
	return &FeedService{
		followRepo: followRepo,
		postRepo:   postRepo,
		storyRepo:  storyRepo,
	}
}

// BuildFeed produces the feed for viewerID. The visible owner set is the
// viewer's followees plus the viewer themself; callers must have resolved an
// authenticated viewer before calling.
func (s *FeedService) BuildFeed(ctx context.Context, viewerID uint) (*Feed, error) {
	span, ctx := observability.NewSpan(ctx, "feed.build")
	defer span.End()
	span.AddAttributes(attribute.Int64("viewer_id", int64(viewerID)))
	start := time.Now()

	followeeIDs, err := s.followRepo.GetFolloweeIDs(ctx, viewerID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	ownerIDs := append(followeeIDs, viewerID)

	posts, err := s.postRepo.ListByOwners(ctx, ownerIDs, viewerID)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	stories, err := s.storyRepo.ListByOwners(ctx, ownerIDs)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	observability.ObserveFeedBuild(start)
	return &Feed{Posts: posts, Stories: stories}, nil
}
