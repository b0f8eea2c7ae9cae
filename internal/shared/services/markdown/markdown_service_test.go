package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	service := NewService()

	html, err := service.ToHTMLSanitized("# Title\n\nsome **bold** text")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<strong>bold</strong>")
}

func TestToHTMLSanitizedStripsScripts(t *testing.T) {
	service := NewService()

	html, err := service.ToHTMLSanitized("hello <script>alert('x')</script> world")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "alert")
}

func TestSanitizeRemovesEventHandlers(t *testing.T) {
	service := NewService()

	out := service.Sanitize(`<a href="https://example.com" onclick="steal()">link</a>`)
	assert.NotContains(t, out, "onclick")
	assert.Contains(t, out, "example.com")
}
