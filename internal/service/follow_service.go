package service

import (
	"context"

	"glimpse/internal/cache"
	"glimpse/internal/observability"
	"glimpse/internal/repository"
)

// FollowService provides follow graph business logic. Both operations are
// idempotent and neither guards against self-follows.
type FollowService struct {
	followRepo repository.FollowRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository) *FollowService {
	return &FollowService{followRepo: followRepo}
}

// Follow adds a follow edge from followerID to followeeID. Repeating the
// call changes nothing and is not an error.
func (s *FollowService) Follow(ctx context.Context, followerID, followeeID uint) error {
	if err := s.followRepo.Follow(ctx, followerID, followeeID); err != nil {
		return err
	}
	observability.FollowOperations.WithLabelValues("follow").Inc()
	s.invalidateStats(ctx, followerID, followeeID)
	return nil
}

// Unfollow removes the follow edge if present; an absent edge is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	if err := s.followRepo.Unfollow(ctx, followerID, followeeID); err != nil {
		return err
	}
	observability.FollowOperations.WithLabelValues("unfollow").Inc()
	s.invalidateStats(ctx, followerID, followeeID)
	return nil
}

// IsFollowing reports whether a follow edge exists for the exact pair.
// A zero followerID denotes an anonymous caller and always yields false.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, followerID, followeeID)
}

// invalidateStats drops cached follower/following counts on both ends of the edge.
func (s *FollowService) invalidateStats(ctx context.Context, followerID, followeeID uint) {
	cache.Invalidate(ctx,
		cache.ProfileStatsKey(followerID),
		cache.ProfileStatsKey(followeeID),
	)
}
