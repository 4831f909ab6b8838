package server

import (
	"inkwell/internal/models"
	"inkwell/internal/policy"
	"inkwell/internal/service"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Index handles GET /: all posts, newest first.
func (s *Server) Index(c *fiber.Ctx) error {
	actor := s.currentActor(c)

	posts, err := s.posts.List(c.UserContext())
	if err != nil {
		return s.renderAppError(c, actor, err)
	}

	data := s.page(c, actor)
	data.Title = "Inkwell"
	data.Posts = posts
	return s.views.Render(c, fiber.StatusOK, "index", data)
}

// ShowPost handles GET /post/:id: the post, its comments, and the comment
// form.
func (s *Server) ShowPost(c *fiber.Ctx) error {
	actor := s.currentActor(c)

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return s.renderAppError(c, actor, models.NewNotFoundError("post", c.Params("id")))
	}

	post, err := s.posts.Get(c.UserContext(), uint(id))
	if err != nil {
		return s.renderAppError(c, actor, err)
	}

	comments, err := s.comments.ListForPost(c.UserContext(), post.ID)
	if err != nil {
		return s.renderAppError(c, actor, err)
	}

	data := s.page(c, actor)
	data.Title = post.Title
	data.Post = post
	data.Comments = comments
	return s.views.Render(c, fiber.StatusOK, "post", data)
}

// NewPostPage handles GET /new-post. Any authenticated user may write.
func (s *Server) NewPostPage(c *fiber.Ctx) error {
	actor := s.currentActor(c)
	if err := policy.RequireAuthenticated(actor); err != nil {
		return s.renderAppError(c, actor, err)
	}

	data := s.page(c, actor)
	data.Title = "New Post"
	return s.views.Render(c, fiber.StatusOK, "make-post", data)
}

// CreatePost handles POST /new-post.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	actor := s.currentActor(c)
	if err := policy.RequireAuthenticated(actor); err != nil {
		return s.renderAppError(c, actor, err)
	}

	form := postFormFromRequest(c)
	if err := validation.Check(form); err != nil {
		return s.postFormFailed(c, actor, form, 0, err.Error())
	}

	_, err := s.posts.Create(c.UserContext(), service.PostInput{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Body:     form.Body,
		ImageURL: form.ImageURL,
		AuthorID: actor.ID,
	})
	if err != nil {
		if models.IsCode(err, models.CodeDuplicateTitle) {
			return s.postFormFailed(c, actor, form, 0, "A post with this title already exists.")
		}
		return s.renderAppError(c, actor, err)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// EditPostPage handles GET /edit-post/:id. Administrator only.
func (s *Server) EditPostPage(c *fiber.Ctx) error {
	actor := s.currentActor(c)
	if err := policy.RequireAdministrator(actor, s.config.AdminUserID); err != nil {
		return s.renderAppError(c, actor, err)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return s.renderAppError(c, actor, models.NewNotFoundError("post", c.Params("id")))
	}

	post, err := s.posts.Get(c.UserContext(), uint(id))
	if err != nil {
		return s.renderAppError(c, actor, err)
	}

	data := s.page(c, actor)
	data.Title = "Edit Post"
	data.Post = post
	data.IsEdit = true
	data.Form = map[string]string{
		"title":     post.Title,
		"subtitle":  post.Subtitle,
		"image_url": post.ImageURL,
		"body":      post.Body,
	}
	return s.views.Render(c, fiber.StatusOK, "make-post", data)
}

// UpdatePost handles POST /edit-post/:id. Administrator only; the
// publication date is left untouched.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	actor := s.currentActor(c)
	if err := policy.RequireAdministrator(actor, s.config.AdminUserID); err != nil {
		return s.renderAppError(c, actor, err)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return s.renderAppError(c, actor, models.NewNotFoundError("post", c.Params("id")))
	}

	form := postFormFromRequest(c)
	if err := validation.Check(form); err != nil {
		return s.postFormFailed(c, actor, form, uint(id), err.Error())
	}

	existing, err := s.posts.Get(c.UserContext(), uint(id))
	if err != nil {
		return s.renderAppError(c, actor, err)
	}

	_, err = s.posts.Update(c.UserContext(), uint(id), service.PostInput{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Body:     form.Body,
		ImageURL: form.ImageURL,
		AuthorID: existing.AuthorID,
	})
	if err != nil {
		if models.IsCode(err, models.CodeDuplicateTitle) {
			return s.postFormFailed(c, actor, form, uint(id), "A post with this title already exists.")
		}
		return s.renderAppError(c, actor, err)
	}

	return c.Redirect("/post/"+c.Params("id"), fiber.StatusSeeOther)
}

// DeletePost handles POST /delete/:id. Authentication and the
// administrator id are both required before any deletion logic runs.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	actor := s.currentActor(c)
	if err := policy.RequireAdministrator(actor, s.config.AdminUserID); err != nil {
		return s.renderAppError(c, actor, err)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return s.renderAppError(c, actor, models.NewNotFoundError("post", c.Params("id")))
	}

	if err := s.posts.Delete(c.UserContext(), uint(id)); err != nil {
		return s.renderAppError(c, actor, err)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

func postFormFromRequest(c *fiber.Ctx) validation.PostForm {
	return validation.PostForm{
		Title:    c.FormValue("title"),
		Subtitle: c.FormValue("subtitle"),
		ImageURL: c.FormValue("image_url"),
		Body:     c.FormValue("body"),
	}
}

func (s *Server) postFormFailed(c *fiber.Ctx, actor *models.User, form validation.PostForm, editID uint, message string) error {
	data := s.page(c, actor)
	data.Flash = message
	data.Form = map[string]string{
		"title":     form.Title,
		"subtitle":  form.Subtitle,
		"image_url": form.ImageURL,
		"body":      form.Body,
	}
	if editID > 0 {
		data.Title = "Edit Post"
		data.IsEdit = true
		data.Post = &models.Post{ID: editID}
	} else {
		data.Title = "New Post"
	}
	return s.views.Render(c, fiber.StatusBadRequest, "make-post", data)
}
