package service

import (
	"context"
	"testing"

	"glimpse/internal/models"
)

func TestCommentServiceCreateComment(t *testing.T) {
	var created *models.Comment
	repo := noopCommentRepo()
	repo.createFn = func(_ context.Context, comment *models.Comment) error {
		comment.ID = 9
		created = comment
		return nil
	}

	svc := NewCommentService(repo)
	comment, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID:  7,
		PostID:  42,
		Content: "nice",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comment != created || comment.ID != 9 {
		t.Fatalf("unexpected comment: %#v", comment)
	}
	if created.UserID != 7 || created.PostID != 42 {
		t.Fatalf("unexpected ownership: user=%d post=%d", created.UserID, created.PostID)
	}
}

func TestCommentServiceCreateCommentAllowsEmptyContent(t *testing.T) {
	repo := noopCommentRepo()
	repo.createFn = func(_ context.Context, comment *models.Comment) error {
		if comment.Content != "" {
			t.Fatalf("expected empty content, got %q", comment.Content)
		}
		return nil
	}

	svc := NewCommentService(repo)
	if _, err := svc.CreateComment(context.Background(), CreateCommentInput{UserID: 7, PostID: 42}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCommentServiceListComments(t *testing.T) {
	repo := noopCommentRepo()
	repo.listByPostFn = func(_ context.Context, postID uint) ([]*models.Comment, error) {
		if postID != 42 {
			t.Fatalf("expected post 42, got %d", postID)
		}
		return []*models.Comment{{ID: 1}, {ID: 2}}, nil
	}

	svc := NewCommentService(repo)
	comments, err := svc.ListComments(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
}
