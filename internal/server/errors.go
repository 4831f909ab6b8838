package server

import (
	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/policy"

	"github.com/gofiber/fiber/v2"
)

// page builds the base PageData for the current request.
func (s *Server) page(c *fiber.Ctx, actor *models.User) *PageData {
	return &PageData{
		Actor:   actor,
		IsAdmin: policy.IsAdministrator(actor, s.config.AdminUserID),
		Flash:   popFlash(c),
	}
}

// renderAppError maps an application error to a user-visible response.
// NotFound and Forbidden get distinct pages; unauthenticated and
// duplicate-email callers are redirected to /login with a flash; all other
// recoverable errors re-render behind a flash at the referring page. No
// error propagates past here.
func (s *Server) renderAppError(c *fiber.Ctx, actor *models.User, err error) error {
	switch models.ErrorCode(err) {
	case models.CodeNotFound:
		data := s.page(c, actor)
		data.Title = "Not Found"
		data.Message = "The page you are looking for does not exist."
		return s.views.Render(c, fiber.StatusNotFound, "error", data)

	case models.CodeForbidden:
		data := s.page(c, actor)
		data.Title = "Forbidden"
		data.Message = "You do not have permission to do that."
		return s.views.Render(c, fiber.StatusForbidden, "error", data)

	case models.CodeUnauthenticated:
		setFlash(c, "Please log in first.")
		return c.Redirect("/login", fiber.StatusSeeOther)

	case models.CodeDuplicateEmail:
		setFlash(c, "An account with this email already exists. Please log in.")
		return c.Redirect("/login", fiber.StatusSeeOther)

	default:
		observability.Logger.Error("request error", "error", err)
		data := s.page(c, actor)
		data.Title = "Something went wrong"
		data.Message = "An unexpected error occurred. Please try again."
		return s.views.Render(c, fiber.StatusInternalServerError, "error", data)
	}
}
