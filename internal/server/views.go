package server

import (
	"bytes"
	"embed"
	"html/template"

	"inkwell/internal/avatar"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is the data passed to every template.
type PageData struct {
	Title    string
	Actor    *models.User
	IsAdmin  bool
	Flash    string
	Message  string
	Post     *models.Post
	Posts    []*models.Post
	Comments []*models.Comment
	Form     map[string]string
	IsEdit   bool
}

// Views renders embedded HTML templates.
type Views struct {
	t *template.Template
}

// NewViews parses all embedded templates once at startup.
func NewViews() (*Views, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"gravatar": avatar.URL,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Views{t: t}, nil
}

// Render executes the named template into a buffer and writes it as the
// response, so a template error never produces a half-written page.
func (v *Views) Render(c *fiber.Ctx, status int, name string, data *PageData) error {
	if data == nil {
		data = &PageData{}
	}

	var buf bytes.Buffer
	if err := v.t.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}
