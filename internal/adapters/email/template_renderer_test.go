package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_SubmissionNotification(t *testing.T) {
	r := NewTemplateRenderer()
	subject, htmlBody, textBody, err := r.Render("submission_notification", struct {
		Where      string
		FieldCount int
		ReviewURL  string
	}{
		Where:      "Tech Summit / registration",
		FieldCount: 4,
		ReviewURL:  "http://localhost:8080/admin/submissions/sub-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "New submission received", subject)
	assert.Contains(t, htmlBody, "<strong>Tech Summit / registration</strong>")
	assert.Contains(t, htmlBody, `href="http://localhost:8080/admin/submissions/sub-1"`)
	assert.Contains(t, textBody, "4 fields")
	assert.Contains(t, textBody, "Review it at http://localhost:8080/admin/submissions/sub-1")
}

func TestTemplateRenderer_EscapesAdminEnteredTitles(t *testing.T) {
	r := NewTemplateRenderer()
	_, htmlBody, _, err := r.Render("submission_notification", struct {
		Where      string
		FieldCount int
		ReviewURL  string
	}{
		Where:     `<script>alert("x")</script>`,
		ReviewURL: "http://localhost:8080/admin/submissions/sub-1",
	})
	require.NoError(t, err)
	assert.NotContains(t, htmlBody, "<script>")
	assert.Contains(t, htmlBody, "&lt;script&gt;")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()
	_, _, _, err := r.Render("nonexistent", nil)
	assert.Error(t, err)
}
