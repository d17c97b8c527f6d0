package service

import (
	"context"

	"glimpse/internal/models"
)

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	listFn          func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

type postRepoStub struct {
	createFn       func(context.Context, *models.Post) error
	getByIDFn      func(context.Context, uint, uint) (*models.Post, error)
	listByOwnerFn  func(context.Context, uint, uint) ([]*models.Post, error)
	listByOwnersFn func(context.Context, []uint, uint) ([]*models.Post, error)
	likeFn         func(context.Context, uint, uint) error
	likeCountFn    func(context.Context, uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) ListByOwner(ctx context.Context, ownerID, currentUserID uint) ([]*models.Post, error) {
	return s.listByOwnerFn(ctx, ownerID, currentUserID)
}
func (s *postRepoStub) ListByOwners(ctx context.Context, ownerIDs []uint, currentUserID uint) ([]*models.Post, error) {
	return s.listByOwnersFn(ctx, ownerIDs, currentUserID)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) LikeCount(ctx context.Context, postID uint) (int64, error) {
	return s.likeCountFn(ctx, postID)
}

type storyRepoStub struct {
	createFn       func(context.Context, *models.Story) error
	listByOwnersFn func(context.Context, []uint) ([]*models.Story, error)
}

func (s *storyRepoStub) Create(ctx context.Context, story *models.Story) error {
	return s.createFn(ctx, story)
}
func (s *storyRepoStub) ListByOwners(ctx context.Context, ownerIDs []uint) ([]*models.Story, error) {
	return s.listByOwnersFn(ctx, ownerIDs)
}

type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	listByPostFn  func(context.Context, uint) ([]*models.Comment, error)
	countByPostFn func(context.Context, uint) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPostFn(ctx, postID)
}

type followRepoStub struct {
	getFolloweeIDsFn func(context.Context, uint) ([]uint, error)
	isFollowingFn    func(context.Context, uint, uint) (bool, error)
	followerCountFn  func(context.Context, uint) (int64, error)
	followingCountFn func(context.Context, uint) (int64, error)
	followFn         func(context.Context, uint, uint) error
	unfollowFn       func(context.Context, uint, uint) error
}

func (s *followRepoStub) GetFolloweeIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.getFolloweeIDsFn(ctx, userID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) FollowerCount(ctx context.Context, userID uint) (int64, error) {
	return s.followerCountFn(ctx, userID)
}
func (s *followRepoStub) FollowingCount(ctx context.Context, userID uint) (int64, error) {
	return s.followingCountFn(ctx, userID)
}
func (s *followRepoStub) Follow(ctx context.Context, followerID, followeeID uint) error {
	return s.followFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	return s.unfollowFn(ctx, followerID, followeeID)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		listFn:          func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:       func(context.Context, *models.Post) error { return nil },
		getByIDFn:      func(context.Context, uint, uint) (*models.Post, error) { return &models.Post{}, nil },
		listByOwnerFn:  func(context.Context, uint, uint) ([]*models.Post, error) { return nil, nil },
		listByOwnersFn: func(context.Context, []uint, uint) ([]*models.Post, error) { return nil, nil },
		likeFn:         func(context.Context, uint, uint) error { return nil },
		likeCountFn:    func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

func noopStoryRepo() *storyRepoStub {
	return &storyRepoStub{
		createFn:       func(context.Context, *models.Story) error { return nil },
		listByOwnersFn: func(context.Context, []uint) ([]*models.Story, error) { return nil, nil },
	}
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:      func(context.Context, *models.Comment) error { return nil },
		listByPostFn:  func(context.Context, uint) ([]*models.Comment, error) { return nil, nil },
		countByPostFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		getFolloweeIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
		isFollowingFn:    func(context.Context, uint, uint) (bool, error) { return false, nil },
		followerCountFn:  func(context.Context, uint) (int64, error) { return 0, nil },
		followingCountFn: func(context.Context, uint) (int64, error) { return 0, nil },
		followFn:         func(context.Context, uint, uint) error { return nil },
		unfollowFn:       func(context.Context, uint, uint) error { return nil },
	}
}
