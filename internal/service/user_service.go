// Package service contains the business logic layered over the repositories.
package service

import (
	"context"

	"glimpse/internal/cache"
	"glimpse/internal/models"
	"glimpse/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UserService provides registration, login, and profile business logic.
type UserService struct {
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
	}
}

// Register creates a new account. A taken username is rejected with a
// CONFLICT error and no row is created.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" {
		return nil, models.NewValidationError("Username is required")
	}
	if password == "" {
		return nil, models.NewValidationError("Password is required")
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Username already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: username,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login validates credentials and returns the account. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

// Profile is the read model for a user's profile page.
type Profile struct {
	User           *models.User   `json:"user"`
	Posts          []*models.Post `json:"posts"`
	IsFollowing    bool           `json:"is_following"`
	FollowersCount int64          `json:"followers_count"`
	FollowingCount int64          `json:"following_count"`
}

// profileStats is the cached portion of a profile: the two edge counts.
type profileStats struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

// GetProfile assembles the profile view of targetID as seen by viewerID.
// viewerID zero means anonymous; IsFollowing is then always false.
func (s *UserService) GetProfile(ctx context.Context, targetID, viewerID uint) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListByOwner(ctx, targetID, viewerID)
	if err != nil {
		return nil, err
	}

	isFollowing, err := s.followRepo.IsFollowing(ctx, viewerID, targetID)
	if err != nil {
		return nil, err
	}

	var stats profileStats
	err = cache.Aside(ctx, cache.ProfileStatsKey(targetID), &stats, cache.ProfileStatsTTL, func() error {
		followers, err := s.followRepo.FollowerCount(ctx, targetID)
		if err != nil {
			return err
		}
		following, err := s.followRepo.FollowingCount(ctx, targetID)
		if err != nil {
			return err
		}
		stats = profileStats{Followers: followers, Following: following}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:           user,
		Posts:          posts,
		IsFollowing:    isFollowing,
		FollowersCount: stats.Followers,
		FollowingCount: stats.Following,
	}, nil
}
