package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/google/uuid"
)

// Payload carries the data a notification is rendered from: the triggering
// reply, the comment it answers and the content item they belong to.
type Payload struct {
	ReplyExcerpt  string
	ParentExcerpt string
	ContentItemID uuid.UUID
}

// Rendered is a delivery-ready document.
type Rendered struct {
	Subject string
	Body    string
}

// Renderer turns a payload into a deliverable document. Pure: same payload,
// same output.
type Renderer interface {
	Render(p Payload) (Rendered, error)
}

const replySubject = "New reply to your comment"

var replyBody = template.Must(template.New("reply").Parse(`<html>
<body>
<p>Someone replied to your comment:</p>
<blockquote>{{.ParentExcerpt}}</blockquote>
<p>Their reply:</p>
<blockquote>{{.ReplyExcerpt}}</blockquote>
{{if .ThreadURL}}<p><a href="{{.ThreadURL}}">View the conversation</a></p>{{end}}
</body>
</html>`))

// TemplateRenderer is the default HTML renderer for reply notifications.
type TemplateRenderer struct {
	baseURL string
}

// NewTemplateRenderer creates a renderer that links threads under baseURL.
// An empty baseURL renders notifications without a link.
func NewTemplateRenderer(baseURL string) *TemplateRenderer {
	return &TemplateRenderer{baseURL: baseURL}
}

// Render produces the subject and HTML body for a reply notification.
func (r *TemplateRenderer) Render(p Payload) (Rendered, error) {
	data := struct {
		Payload
		ThreadURL string
	}{Payload: p}

	if r.baseURL != "" {
		data.ThreadURL = fmt.Sprintf("%s/blog/%s", r.baseURL, p.ContentItemID)
	}

	var buf bytes.Buffer
	if err := replyBody.Execute(&buf, data); err != nil {
		return Rendered{}, fmt.Errorf("render reply notification: %w", err)
	}

	return Rendered{Subject: replySubject, Body: buf.String()}, nil
}
