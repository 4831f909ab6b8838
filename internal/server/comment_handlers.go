package server

import (
	"strconv"

	"inkwell/internal/models"
	"inkwell/internal/policy"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /post/:id/comments. Commenting requires a
// logged-in actor; anonymous submitters are sent to the login page.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	actor := s.currentActor(c)
	if err := policy.RequireAuthenticated(actor); err != nil {
		return s.renderAppError(c, actor, err)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return s.renderAppError(c, actor, models.NewNotFoundError("post", c.Params("id")))
	}

	form := validation.CommentForm{Text: c.FormValue("text")}
	if err := validation.Check(form); err != nil {
		setFlash(c, err.Error())
		return c.Redirect("/post/"+strconv.Itoa(id), fiber.StatusSeeOther)
	}

	if _, err := s.comments.Create(c.UserContext(), form.Text, actor.ID, uint(id)); err != nil {
		return s.renderAppError(c, actor, err)
	}

	return c.Redirect("/post/"+strconv.Itoa(id), fiber.StatusSeeOther)
}
