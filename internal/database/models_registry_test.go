package database

import (
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistentModels(t *testing.T) {
	registered := PersistentModels()
	require.Len(t, registered, 3)

	// Referenced tables come before the tables referencing them.
	assert.IsType(t, &models.User{}, registered[0])
	assert.IsType(t, &models.Post{}, registered[1])
	assert.IsType(t, &models.Comment{}, registered[2])
}
