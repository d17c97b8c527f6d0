package service

import (
	"context"

	"glimpse/internal/models"
	"glimpse/internal/observability"
	"glimpse/internal/repository"
)

// PostService provides post creation and like business logic.
type PostService struct {
	postRepo repository.PostRepository
}

// CreatePostInput carries the fields for a new post. Content may be empty;
// ImageRef and VideoRef default to the empty string when no attachment was
// uploaded and are stored exactly as given.
type CreatePostInput struct {
	UserID   uint
	Content  string
	ImageRef string
	VideoRef string
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost persists a new post and returns it with computed fields filled.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	post := &models.Post{
		Content: in.Content,
		Image:   in.ImageRef,
		Video:   in.VideoRef,
		UserID:  in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	observability.ContentCreated.WithLabelValues("post").Inc()
	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

// AddLike records userID's like on postID. At most one like per (user, post)
// pair exists; repeated likes are silent no-ops. The post is not checked for
// existence.
func (s *PostService) AddLike(ctx context.Context, userID, postID uint) error {
	if err := s.postRepo.Like(ctx, userID, postID); err != nil {
		return err
	}
	observability.ContentCreated.WithLabelValues("like").Inc()
	return nil
}
