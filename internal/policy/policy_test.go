package policy

import (
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
)

const adminID = uint(1)

func TestIsAdministrator(t *testing.T) {
	assert.True(t, IsAdministrator(&models.User{ID: 1}, adminID))
	assert.False(t, IsAdministrator(&models.User{ID: 2}, adminID))
	assert.False(t, IsAdministrator(nil, adminID))
}

func TestIsAdministrator_ConfigurableID(t *testing.T) {
	// The privileged id follows configuration, not a hardcoded constant.
	assert.True(t, IsAdministrator(&models.User{ID: 42}, 42))
	assert.False(t, IsAdministrator(&models.User{ID: 1}, 42))
}

func TestRequireAuthenticated(t *testing.T) {
	assert.NoError(t, RequireAuthenticated(&models.User{ID: 7}))

	err := RequireAuthenticated(nil)
	assert.True(t, models.IsCode(err, models.CodeUnauthenticated))
}

func TestRequireAdministrator(t *testing.T) {
	assert.NoError(t, RequireAdministrator(&models.User{ID: 1}, adminID))
}

func TestRequireAdministrator_AnonymousIsUnauthenticatedNotForbidden(t *testing.T) {
	err := RequireAdministrator(nil, adminID)
	assert.True(t, models.IsCode(err, models.CodeUnauthenticated))
}

func TestRequireAdministrator_OtherUserIsForbidden(t *testing.T) {
	err := RequireAdministrator(&models.User{ID: 2}, adminID)
	assert.True(t, models.IsCode(err, models.CodeForbidden))
}
