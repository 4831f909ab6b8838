package service

import (
	"context"
	"testing"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentFixture(t *testing.T) (*CommentService, *PostService, *UserService) {
	t.Helper()
	db := newTestDB(t)
	postRepo := repository.NewPostRepository(db)
	return NewCommentService(repository.NewCommentRepository(db), postRepo),
		NewPostService(postRepo),
		NewUserService(repository.NewUserRepository(db))
}

func TestCommentService_Create(t *testing.T) {
	comments, posts, users := newCommentFixture(t)
	ctx := context.Background()

	author := registerTestUser(t, users, "author@example.com")
	reader := registerTestUser(t, users, "reader@example.com")
	post, err := posts.Create(ctx, postInput("Discussed Post", author.ID))
	require.NoError(t, err)

	comment, err := comments.Create(ctx, "Lovely writing.", reader.ID, post.ID)
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)

	listed, err := comments.ListForPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Lovely writing.", listed[0].Text)
	assert.Equal(t, "reader@example.com", listed[0].Author.Email)
}

func TestCommentService_Create_MissingPost(t *testing.T) {
	comments, _, users := newCommentFixture(t)
	ctx := context.Background()

	reader := registerTestUser(t, users, "reader@example.com")

	_, err := comments.Create(ctx, "Comment on nothing.", reader.ID, 999)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestCommentService_ListForPost_Empty(t *testing.T) {
	comments, posts, users := newCommentFixture(t)
	ctx := context.Background()

	author := registerTestUser(t, users, "author@example.com")
	post, err := posts.Create(ctx, postInput("Quiet Post", author.ID))
	require.NoError(t, err)

	listed, err := comments.ListForPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
