package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"inkwell/internal/config"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/service"
	"inkwell/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var sqliteSeq atomic.Int64

type testApp struct {
	app *fiber.App
	srv *Server
	db  *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dsn := fmt.Sprintf("file:server_test_%d?mode=memory&cache=shared&_foreign_keys=on", sqliteSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}))

	cfg := &config.Config{
		Port:          "0",
		SessionSecret: "test-session-secret",
		SessionTTL:    time.Hour,
		AdminUserID:   1,
		Env:           "test",
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	views, err := NewViews()
	require.NoError(t, err)

	srv := &Server{
		config:   cfg,
		db:       db,
		sessions: session.NewManager(cfg.SessionSecret, cfg.SessionTTL, session.NewMemoryStore(), userRepo),
		users:    service.NewUserService(userRepo),
		posts:    service.NewPostService(postRepo),
		comments: service.NewCommentService(commentRepo, postRepo),
		views:    views,
	}

	app := fiber.New()
	srv.SetupRoutes(app)

	return &testApp{app: app, srv: srv, db: db}
}

// seedAdmin registers the administrator first so it takes id 1.
func (ta *testApp) seedAdmin(t *testing.T) *models.User {
	t.Helper()
	admin, err := ta.srv.users.Register(context.Background(), service.RegisterInput{
		Email:    "admin@example.com",
		Name:     "Administrator",
		Password: "admin-password",
	})
	require.NoError(t, err)
	require.Equal(t, uint(1), admin.ID)
	return admin
}

func (ta *testApp) seedUser(t *testing.T, email string) *models.User {
	t.Helper()
	user, err := ta.srv.users.Register(context.Background(), service.RegisterInput{
		Email:    email,
		Name:     "Reader",
		Password: "reader-password",
	})
	require.NoError(t, err)
	return user
}

func (ta *testApp) seedPost(t *testing.T, title string, authorID uint) *models.Post {
	t.Helper()
	post, err := ta.srv.posts.Create(context.Background(), service.PostInput{
		Title:    title,
		Subtitle: "A subtitle",
		Body:     "Body text.",
		ImageURL: "https://images.example.com/cover.jpg",
		AuthorID: authorID,
	})
	require.NoError(t, err)
	return post
}

// sessionFor issues a real session token for the user.
func (ta *testApp) sessionFor(t *testing.T, userID uint) string {
	t.Helper()
	token, err := ta.srv.sessions.Issue(context.Background(), userID)
	require.NoError(t, err)
	return token
}

func formRequest(method, target string, form url.Values, sessionToken string) *http.Request {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionToken})
	}
	return req
}

func getRequest(target, sessionToken string) *http.Request {
	return formRequest(http.MethodGet, target, nil, sessionToken)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func cookieValue(resp *http.Response, name string) string {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}
