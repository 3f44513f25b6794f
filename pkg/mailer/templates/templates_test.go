package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	subject, html, err := Render(Welcome, map[string]any{
		"Username": "user1",
		"Email":    "user@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Welcome aboard", subject)
	assert.Contains(t, html, "Welcome, user1!")
	assert.Contains(t, html, "user@example.com")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, err := Render("nope", nil)
	assert.Error(t, err)
}

func TestRenderEscapesData(t *testing.T) {
	_, html, err := Render(Welcome, map[string]any{
		"Username": "<script>alert(1)</script>",
		"Email":    "user@example.com",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
