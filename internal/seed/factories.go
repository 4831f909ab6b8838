package seed

import (
	"fmt"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Generate fills the database with count fake posts, a handful of fake
// commenters, and a few comments per post.
func Generate(db *gorm.DB, count int) error {
	var commenters []*models.User
	for i := 0; i < 5; i++ {
		user, err := EnsureUser(db,
			gofakeit.Email(),
			gofakeit.Name(),
			gofakeit.Password(true, true, true, true, false, 16),
		)
		if err != nil {
			return err
		}
		commenters = append(commenters, user)
	}

	author, err := EnsureUser(db, "author@inkwell.local", "The Editor", gofakeit.Password(true, true, true, true, false, 16))
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		post, err := EnsurePost(db, &models.Post{
			Title:    fmt.Sprintf("%s #%d", gofakeit.BookTitle(), gofakeit.Number(1, 9999)),
			Subtitle: gofakeit.Sentence(6),
			Date:     time.Now().Format(models.PublicationDateFormat),
			Body:     gofakeit.Paragraph(3, 5, 12, "\n\n"),
			ImageURL: gofakeit.ImageURL(800, 400),
			AuthorID: author.ID,
		})
		if err != nil {
			return err
		}

		for j := 0; j < gofakeit.Number(0, 3); j++ {
			commenter := commenters[gofakeit.Number(0, len(commenters)-1)]
			comment := &models.Comment{
				Text:     gofakeit.Sentence(12),
				AuthorID: commenter.ID,
				PostID:   post.ID,
			}
			if err := db.Omit("Author").Create(comment).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
