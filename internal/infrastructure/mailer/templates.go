package mailer

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed templates/*
var templateFS embed.FS

// RenderedEmail holds both HTML and text versions of a rendered email
type RenderedEmail struct {
	HTML string
	Text string
}

// TemplateSet holds the invitation templates
type TemplateSet struct {
	HTML *htmltemplate.Template
	Text *texttemplate.Template
}

// LoadTemplates parses the embedded invitation templates
func LoadTemplates() (*TemplateSet, error) {
	html, err := htmltemplate.ParseFS(templateFS, "templates/meeting_invitation.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse invitation HTML template: %w", err)
	}

	text, err := texttemplate.ParseFS(templateFS, "templates/meeting_invitation.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse invitation text template: %w", err)
	}

	return &TemplateSet{HTML: html, Text: text}, nil
}

// RenderInvitation renders an invitation email with both HTML and text versions
func (ts *TemplateSet) RenderInvitation(inv Invitation) (*RenderedEmail, error) {
	var html bytes.Buffer
	if err := ts.HTML.Execute(&html, inv); err != nil {
		return nil, fmt.Errorf("failed to render invitation HTML: %w", err)
	}

	var text bytes.Buffer
	if err := ts.Text.Execute(&text, inv); err != nil {
		return nil, fmt.Errorf("failed to render invitation text: %w", err)
	}

	return &RenderedEmail{HTML: html.String(), Text: text.String()}, nil
}
