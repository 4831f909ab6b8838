package avatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	// md5("alice@example.com") = c160f8cc69a4f0bf2b0362752353d060
	assert.Equal(t,
		"https://www.gravatar.com/avatar/c160f8cc69a4f0bf2b0362752353d060?s=100&d=retro&r=g",
		URL("alice@example.com"))
}

func TestURL_NormalizesEmail(t *testing.T) {
	assert.Equal(t, URL("alice@example.com"), URL("  Alice@Example.COM  "))
}
