package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Welcome(t *testing.T) {
	html, err := Render(TemplateWelcome, PreviewData[TemplateWelcome])

	require.NoError(t, err)
	assert.Contains(t, html, "Welcome, jane!")
}

func TestRender_EscapesInput(t *testing.T) {
	html, err := Render(TemplateWelcome, map[string]string{"Username": "<script>"})

	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render(Template("missing"), nil)

	assert.Error(t, err)
}

func TestTemplate_Subject(t *testing.T) {
	assert.Equal(t, "Welcome to Listings!", TemplateWelcome.Subject())
	assert.Equal(t, "Listings", Template("missing").Subject())
}
