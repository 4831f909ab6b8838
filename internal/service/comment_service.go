package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
)

// CommentService implements comment creation and listing. Comments are
// immutable; there is no update or single-delete flow.
type CommentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// Create attaches a comment to an existing post. A missing post surfaces
// as NOT_FOUND before the write; dangling references racing the check are
// caught by the foreign-key constraints.
func (s *CommentService) Create(ctx context.Context, text string, authorID, postID uint) (*models.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:     text,
		AuthorID: authorID,
		PostID:   postID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	observability.CommentsCreated.Inc()
	return comment, nil
}

// ListForPost returns the comments on a post, oldest first.
func (s *CommentService) ListForPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}
