package server

import (
	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/service"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// RegisterPage handles GET /register.
func (s *Server) RegisterPage(c *fiber.Ctx) error {
	actor := s.currentActor(c)
	if actor != nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	data := s.page(c, actor)
	data.Title = "Register"
	return s.views.Render(c, fiber.StatusOK, "register", data)
}

// Register handles POST /register: create the account and immediately
// establish an authenticated session for it.
func (s *Server) Register(c *fiber.Ctx) error {
	actor := s.currentActor(c)

	form := validation.RegisterForm{
		Email:    c.FormValue("email"),
		Name:     c.FormValue("name"),
		Password: c.FormValue("password"),
	}
	if err := validation.Check(form); err != nil {
		// Same-request re-render: the message goes straight into the page,
		// not through the flash cookie, which only surfaces on the next
		// request.
		data := s.page(c, actor)
		data.Title = "Register"
		data.Flash = err.Error()
		data.Form = map[string]string{"email": form.Email, "name": form.Name}
		return s.views.Render(c, fiber.StatusBadRequest, "register", data)
	}

	user, err := s.users.Register(c.UserContext(), service.RegisterInput{
		Email:    form.Email,
		Name:     form.Name,
		Password: form.Password,
	})
	if err != nil {
		return s.renderAppError(c, actor, err)
	}

	token, err := s.sessions.Issue(c.UserContext(), user.ID)
	if err != nil {
		return s.renderAppError(c, actor, models.NewInternalError(err))
	}
	s.setSessionCookie(c, token)

	return c.Redirect("/", fiber.StatusSeeOther)
}

// LoginPage handles GET /login.
func (s *Server) LoginPage(c *fiber.Ctx) error {
	actor := s.currentActor(c)
	if actor != nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	data := s.page(c, actor)
	data.Title = "Log In"
	return s.views.Render(c, fiber.StatusOK, "login", data)
}

// Login handles POST /login.
func (s *Server) Login(c *fiber.Ctx) error {
	actor := s.currentActor(c)

	form := validation.LoginForm{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}
	if err := validation.Check(form); err != nil {
		return s.loginFailed(c, actor, form.Email, err.Error())
	}

	user, err := s.users.Login(c.UserContext(), form.Email, form.Password)
	if err != nil {
		if models.IsCode(err, models.CodeInvalidCredentials) {
			return s.loginFailed(c, actor, form.Email, "Please check your login details and try again.")
		}
		return s.renderAppError(c, actor, err)
	}

	token, err := s.sessions.Issue(c.UserContext(), user.ID)
	if err != nil {
		return s.renderAppError(c, actor, models.NewInternalError(err))
	}
	s.setSessionCookie(c, token)

	observability.Logger.Info("user logged in", "user_id", user.ID)
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *Server) loginFailed(c *fiber.Ctx, actor *models.User, email, message string) error {
	data := s.page(c, actor)
	data.Title = "Log In"
	data.Flash = message
	data.Form = map[string]string{"email": email}
	return s.views.Render(c, fiber.StatusUnauthorized, "login", data)
}

// Logout handles GET /logout: revoke the session and clear the cookie.
func (s *Server) Logout(c *fiber.Ctx) error {
	token := c.Cookies(sessionCookieName)
	if token != "" {
		if err := s.sessions.Revoke(c.UserContext(), token); err != nil {
			observability.Logger.Error("session revoke failed", "error", err)
		}
	}
	s.clearSessionCookie(c)
	return c.Redirect("/", fiber.StatusSeeOther)
}
