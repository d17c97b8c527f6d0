package service

import (
	"context"
	"testing"

	"glimpse/internal/models"
)

func TestPostServiceCreatePost(t *testing.T) {
	var created *models.Post
	repo := noopPostRepo()
	repo.createFn = func(_ context.Context, post *models.Post) error {
		post.ID = 42
		created = post
		return nil
	}
	repo.getByIDFn = func(_ context.Context, id, currentUserID uint) (*models.Post, error) {
		if id != 42 {
			t.Fatalf("expected reload of post 42, got %d", id)
		}
		if currentUserID != 7 {
			t.Fatalf("expected reload as author 7, got %d", currentUserID)
		}
		return &models.Post{ID: id, Content: created.Content}, nil
	}

	svc := NewPostService(repo)
	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID:   7,
		Content:  "hello",
		ImageRef: "pic.jpg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.ID != 42 {
		t.Fatalf("expected post 42, got %d", post.ID)
	}
	if created.Image != "pic.jpg" || created.Video != "" {
		t.Fatalf("unexpected attachment refs: %q %q", created.Image, created.Video)
	}
}

func TestPostServiceCreatePostAllowsEmptyContent(t *testing.T) {
	repo := noopPostRepo()
	repo.createFn = func(_ context.Context, post *models.Post) error {
		if post.Content != "" {
			t.Fatalf("expected empty content, got %q", post.Content)
		}
		return nil
	}

	svc := NewPostService(repo)
	if _, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 7}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPostServiceAddLike(t *testing.T) {
	var gotUser, gotPost uint
	repo := noopPostRepo()
	repo.likeFn = func(_ context.Context, userID, postID uint) error {
		gotUser, gotPost = userID, postID
		return nil
	}

	svc := NewPostService(repo)
	if err := svc.AddLike(context.Background(), 7, 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUser != 7 || gotPost != 42 {
		t.Fatalf("expected like (7, 42), got (%d, %d)", gotUser, gotPost)
	}
}
