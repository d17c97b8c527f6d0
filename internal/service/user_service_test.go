package service

import (
	"context"
	"errors"
	"testing"

	"glimpse/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func TestUserServiceRegisterEmptyUsername(t *testing.T) {
	svc := NewUserService(noopUserRepo(), noopPostRepo(), noopFollowRepo())
	_, err := svc.Register(context.Background(), "", "secret")
	if err == nil {
		t.Fatal("expected validation error")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestUserServiceRegisterEmptyPassword(t *testing.T) {
	svc := NewUserService(noopUserRepo(), noopPostRepo(), noopFollowRepo())
	_, err := svc.Register(context.Background(), "alice", "")
	if err == nil {
		t.Fatal("expected validation error")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation app error, got %#v", err)
	}
}

func TestUserServiceRegisterDuplicateUsername(t *testing.T) {
	repo := noopUserRepo()
	repo.getByUsernameFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: 1, Username: "alice"}, nil
	}

	svc := NewUserService(repo, noopPostRepo(), noopFollowRepo())
	_, err := svc.Register(context.Background(), "alice", "secret")
	if err == nil {
		t.Fatal("expected conflict error")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "CONFLICT" {
		t.Fatalf("expected conflict app error, got %#v", err)
	}
}

func TestUserServiceRegisterHashesPassword(t *testing.T) {
	var created *models.User
	repo := noopUserRepo()
	repo.createFn = func(_ context.Context, user *models.User) error {
		created = user
		return nil
	}

	svc := NewUserService(repo, noopPostRepo(), noopFollowRepo())
	user, err := svc.Register(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || user != created {
		t.Fatal("expected user passed to repo to be returned")
	}
	if created.Password == "secret" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret")); err != nil {
		t.Fatalf("stored password does not verify: %v", err)
	}
}

func TestUserServiceLoginUnknownUser(t *testing.T) {
	svc := NewUserService(noopUserRepo(), noopPostRepo(), noopFollowRepo())
	_, err := svc.Login(context.Background(), "ghost", "secret")
	if err == nil {
		t.Fatal("expected unauthorized error")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "UNAUTHORIZED" {
		t.Fatalf("expected unauthorized app error, got %#v", err)
	}
}

func TestUserServiceLoginWrongPassword(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	repo := noopUserRepo()
	repo.getByUsernameFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: 1, Username: "alice", Password: string(hashed)}, nil
	}

	svc := NewUserService(repo, noopPostRepo(), noopFollowRepo())
	_, err := svc.Login(context.Background(), "alice", "wrong")
	if err == nil {
		t.Fatal("expected unauthorized error")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "UNAUTHORIZED" {
		t.Fatalf("expected unauthorized app error, got %#v", err)
	}
}

func TestUserServiceLoginSuccess(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	repo := noopUserRepo()
	repo.getByUsernameFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: 7, Username: "alice", Password: string(hashed)}, nil
	}

	svc := NewUserService(repo, noopPostRepo(), noopFollowRepo())
	user, err := svc.Login(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 7 {
		t.Fatalf("expected user 7, got %d", user.ID)
	}
}

func TestUserServiceGetProfile(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "alice"}, nil
	}

	postRepo := noopPostRepo()
	postRepo.listByOwnerFn = func(_ context.Context, ownerID, viewerID uint) ([]*models.Post, error) {
		if ownerID != 1 {
			t.Fatalf("expected posts for owner 1, got %d", ownerID)
		}
		return []*models.Post{{ID: 10, UserID: ownerID}}, nil
	}

	followRepo := noopFollowRepo()
	followRepo.isFollowingFn = func(_ context.Context, followerID, followeeID uint) (bool, error) {
		return followerID == 2 && followeeID == 1, nil
	}
	followRepo.followerCountFn = func(context.Context, uint) (int64, error) { return 3, nil }
	followRepo.followingCountFn = func(context.Context, uint) (int64, error) { return 5, nil }

	svc := NewUserService(userRepo, postRepo, followRepo)

	profile, err := svc.GetProfile(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !profile.IsFollowing {
		t.Fatal("expected viewer 2 to follow user 1")
	}
	if profile.FollowersCount != 3 || profile.FollowingCount != 5 {
		t.Fatalf("unexpected counts: %d/%d", profile.FollowersCount, profile.FollowingCount)
	}
	if len(profile.Posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(profile.Posts))
	}

	// Anonymous viewers never appear to follow anyone
	profile, err = svc.GetProfile(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.IsFollowing {
		t.Fatal("expected anonymous viewer to not follow")
	}
}

func TestUserServiceGetProfileUnknownUser(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}

	svc := NewUserService(userRepo, noopPostRepo(), noopFollowRepo())
	_, err := svc.GetProfile(context.Background(), 42, 0)
	if err == nil {
		t.Fatal("expected not-found error")
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
}
