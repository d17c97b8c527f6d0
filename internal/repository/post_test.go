package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"glimpse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_Integration(t *testing.T) {
	repo := NewPostRepository(testDB)
	ctx := context.Background()

	ts := time.Now().UnixNano()
	author := &models.User{Username: fmt.Sprintf("pa_%d", ts), Password: "x"}
	reader := &models.User{Username: fmt.Sprintf("pr_%d", ts), Password: "x"}
	testDB.Create(author)
	testDB.Create(reader)

	base := time.Now().Add(-time.Hour)
	older := &models.Post{Content: "older", UserID: author.ID, CreatedAt: base}
	newer := &models.Post{Content: "newer", UserID: author.ID, CreatedAt: base.Add(time.Minute)}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	t.Run("ListByOwner orders newest first", func(t *testing.T) {
		posts, err := repo.ListByOwner(ctx, author.ID, reader.ID)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "newer", posts[0].Content)
		assert.Equal(t, "older", posts[1].Content)
	})

	t.Run("Equal timestamps keep insertion order", func(t *testing.T) {
		shared := base.Add(2 * time.Minute)
		first := &models.Post{Content: "tie-first", UserID: reader.ID, CreatedAt: shared}
		second := &models.Post{Content: "tie-second", UserID: reader.ID, CreatedAt: shared}
		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.Create(ctx, second))

		posts, err := repo.ListByOwner(ctx, reader.ID, reader.ID)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "tie-first", posts[0].Content)
		assert.Equal(t, "tie-second", posts[1].Content)
	})

	t.Run("ListByOwners with empty set returns nothing", func(t *testing.T) {
		posts, err := repo.ListByOwners(ctx, nil, reader.ID)
		assert.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("GetByID preloads author", func(t *testing.T) {
		post, err := repo.GetByID(ctx, newer.ID, reader.ID)
		require.NoError(t, err)
		assert.Equal(t, author.Username, post.User.Username)
	})

	t.Run("GetByID missing post", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999999, reader.ID)
		require.Error(t, err)
		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})

	t.Run("Like is idempotent", func(t *testing.T) {
		require.NoError(t, repo.Like(ctx, reader.ID, newer.ID))
		require.NoError(t, repo.Like(ctx, reader.ID, newer.ID))

		count, err := repo.LikeCount(ctx, newer.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Computed fields reflect viewer", func(t *testing.T) {
		post, err := repo.GetByID(ctx, newer.ID, reader.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, post.LikesCount)
		assert.True(t, post.Liked)

		// The author has not liked their own post
		post, err = repo.GetByID(ctx, newer.ID, author.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, post.LikesCount)
		assert.False(t, post.Liked)

		// Anonymous viewers always see liked=false
		post, err = repo.GetByID(ctx, newer.ID, 0)
		require.NoError(t, err)
		assert.False(t, post.Liked)
	})
}
