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

func TestCommentRepository_Integration(t *testing.T) {
	repo := NewCommentRepository(testDB)
	ctx := context.Background()

	ts := time.Now().UnixNano()
	author := &models.User{Username: fmt.Sprintf("ca_%d", ts), Password: "x"}
	testDB.Create(author)
	post := &models.Post{Content: "post", UserID: author.ID}
	testDB.Create(post)

	t.Run("Create and ListByPost keeps insertion order", func(t *testing.T) {
		for _, content := range []string{"first", "second", "third"} {
			err := repo.Create(ctx, &models.Comment{
				Content: content,
				UserID:  author.ID,
				PostID:  post.ID,
			})
			require.NoError(t, err)
		}

		comments, err := repo.ListByPost(ctx, post.ID)
		require.NoError(t, err)
		require.Len(t, comments, 3)
		assert.Equal(t, "first", comments[0].Content)
		assert.Equal(t, "second", comments[1].Content)
		assert.Equal(t, "third", comments[2].Content)
	})

	t.Run("Duplicate comments all insert", func(t *testing.T) {
		err := repo.Create(ctx, &models.Comment{Content: "first", UserID: author.ID, PostID: post.ID})
		require.NoError(t, err)

		count, err := repo.CountByPost(ctx, post.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(4), count)
	})

	t.Run("ListByPost on post without comments", func(t *testing.T) {
		other := &models.Post{Content: "quiet", UserID: author.ID}
		testDB.Create(other)

		comments, err := repo.ListByPost(ctx, other.ID)
		assert.NoError(t, err)
		assert.Empty(t, comments)
	})
}
