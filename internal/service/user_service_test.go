package service

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register(t *testing.T) {
	svc, _ := newUserService(t)

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:    "reader@example.com",
		Name:     "Reader",
		Password: "a-long-password",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "reader@example.com", user.Email)

	// The stored credential is a hash, never the plaintext.
	assert.NotEqual(t, "a-long-password", user.Password)
	assert.NotEmpty(t, user.Password)
}

func TestUserService_Register_NormalizesEmail(t *testing.T) {
	svc, _ := newUserService(t)

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:    "  Reader@Example.COM ",
		Name:     "Reader",
		Password: "a-long-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", user.Email)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, db := newUserService(t)
	ctx := context.Background()

	registerTestUser(t, svc, "reader@example.com")

	_, err := svc.Register(ctx, RegisterInput{
		Email:    "reader@example.com",
		Name:     "Someone Else",
		Password: "another-password",
	})
	assert.True(t, models.IsCode(err, models.CodeDuplicateEmail))

	// A case-variant of the same address is still a duplicate.
	_, err = svc.Register(ctx, RegisterInput{
		Email:    "READER@example.com",
		Name:     "Shouting Reader",
		Password: "another-password",
	})
	assert.True(t, models.IsCode(err, models.CodeDuplicateEmail))

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUserService_RegisterThenLogin(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	registered := registerTestUser(t, svc, "reader@example.com")

	user, err := svc.Login(ctx, "reader@example.com", "a-long-password")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestUserService_Login_UniformFailure(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	registerTestUser(t, svc, "reader@example.com")

	// Unknown email and wrong password are indistinguishable.
	_, unknownErr := svc.Login(ctx, "nobody@example.com", "a-long-password")
	_, wrongErr := svc.Login(ctx, "reader@example.com", "wrong-password")

	assert.True(t, models.IsCode(unknownErr, models.CodeInvalidCredentials))
	assert.True(t, models.IsCode(wrongErr, models.CodeInvalidCredentials))
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestUserService_Login_CaseInsensitiveEmail(t *testing.T) {
	svc, _ := newUserService(t)

	registerTestUser(t, svc, "reader@example.com")

	user, err := svc.Login(context.Background(), "Reader@Example.com", "a-long-password")
	require.NoError(t, err)
	assert.NotNil(t, user)
}
