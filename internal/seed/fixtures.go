package seed

import (
	"fmt"
	"os"
	"time"

	"inkwell/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Fixture is the YAML document format accepted by LoadFixtures.
type Fixture struct {
	Users []struct {
		Email    string `yaml:"email"`
		Name     string `yaml:"name"`
		Password string `yaml:"password"`
	} `yaml:"users"`
	Posts []struct {
		Title       string `yaml:"title"`
		Subtitle    string `yaml:"subtitle"`
		Body        string `yaml:"body"`
		ImageURL    string `yaml:"image_url"`
		AuthorEmail string `yaml:"author_email"`
		Comments    []struct {
			Text        string `yaml:"text"`
			AuthorEmail string `yaml:"author_email"`
		} `yaml:"comments"`
	} `yaml:"posts"`
}

// LoadFixtures seeds the database from a YAML fixture file. Users are
// keyed by email and posts by title, so loading the same file twice is a
// no-op.
func LoadFixtures(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture file: %w", err)
	}

	var fixture Fixture
	if err := yaml.Unmarshal(raw, &fixture); err != nil {
		return fmt.Errorf("parse fixture file: %w", err)
	}

	usersByEmail := make(map[string]*models.User)
	for _, u := range fixture.Users {
		user, err := EnsureUser(db, u.Email, u.Name, u.Password)
		if err != nil {
			return err
		}
		usersByEmail[user.Email] = user
	}

	for _, p := range fixture.Posts {
		author, ok := usersByEmail[p.AuthorEmail]
		if !ok {
			return fmt.Errorf("post %q references unknown author %q", p.Title, p.AuthorEmail)
		}

		post, err := EnsurePost(db, &models.Post{
			Title:    p.Title,
			Subtitle: p.Subtitle,
			Date:     time.Now().Format(models.PublicationDateFormat),
			Body:     p.Body,
			ImageURL: p.ImageURL,
			AuthorID: author.ID,
		})
		if err != nil {
			return err
		}

		for _, cm := range p.Comments {
			commenter, ok := usersByEmail[cm.AuthorEmail]
			if !ok {
				return fmt.Errorf("comment on %q references unknown author %q", p.Title, cm.AuthorEmail)
			}
			var count int64
			if err := db.Model(&models.Comment{}).
				Where("post_id = ? AND author_id = ? AND text = ?", post.ID, commenter.ID, cm.Text).
				Count(&count).Error; err != nil {
				return fmt.Errorf("check existing comment on %q: %w", p.Title, err)
			}
			if count > 0 {
				continue
			}
			comment := &models.Comment{Text: cm.Text, AuthorID: commenter.ID, PostID: post.ID}
			if err := db.Omit("Author").Create(comment).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
