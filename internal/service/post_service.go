package service

import (
	"context"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
)

// PostService implements post CRUD orchestration. Authorization is the
// caller's responsibility: handlers run the policy guards before invoking
// the admin-gated operations.
type PostService struct {
	posts repository.PostRepository
}

// PostInput carries the validated post form fields.
type PostInput struct {
	Title    string
	Subtitle string
	Body     string
	ImageURL string
	AuthorID uint
}

func NewPostService(posts repository.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// Create stores a new post with the publication date stamped from the
// creation time.
func (s *PostService) Create(ctx context.Context, in PostInput) (*models.Post, error) {
	post := &models.Post{
		Title:    in.Title,
		Subtitle: in.Subtitle,
		Date:     time.Now().Format(models.PublicationDateFormat),
		Body:     in.Body,
		ImageURL: in.ImageURL,
		AuthorID: in.AuthorID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	observability.PostWrites.WithLabelValues("created").Inc()
	return s.posts.GetByID(ctx, post.ID)
}

// Update edits title, subtitle, body, image, and author. The publication
// date is never recalculated on edit.
func (s *PostService) Update(ctx context.Context, id uint, in PostInput) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Subtitle = in.Subtitle
	post.Body = in.Body
	post.ImageURL = in.ImageURL
	post.AuthorID = in.AuthorID

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}

	observability.PostWrites.WithLabelValues("updated").Inc()
	return s.posts.GetByID(ctx, id)
}

// Delete removes the post and, atomically, every comment on it.
func (s *PostService) Delete(ctx context.Context, id uint) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	observability.PostWrites.WithLabelValues("deleted").Inc()
	return nil
}

func (s *PostService) Get(ctx context.Context, id uint) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	return s.posts.List(ctx)
}
