package server

import "github.com/gofiber/fiber/v2"

// About handles GET /about.
func (s *Server) About(c *fiber.Ctx) error {
	data := s.page(c, s.currentActor(c))
	data.Title = "About"
	return s.views.Render(c, fiber.StatusOK, "about", data)
}
