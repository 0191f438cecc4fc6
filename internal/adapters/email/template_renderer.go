package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"lineupboard/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// lineupRenderer implements domain.LineupEmailRenderer using embedded
// template files.
type lineupRenderer struct{}

// NewLineupRenderer returns a LineupEmailRenderer that loads templates from
// the embedded templates folder.
func NewLineupRenderer() domain.LineupEmailRenderer {
	return &lineupRenderer{}
}

// Render produces the subject, html, and text bodies of the lineup summary.
func (r *lineupRenderer) Render(data *domain.LineupEmailData) (subject, htmlBody, textBody string, err error) {
	subject, err = renderFile("lineup_subject.txt", data, false)
	if err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	htmlBody, err = renderFile("lineup.html", data, true)
	if err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	textBody, err = renderFile("lineup.txt", data, false)
	if err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	return strings.TrimSpace(subject), htmlBody, textBody, nil
}

func renderFile(name string, data *domain.LineupEmailData, html bool) (string, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", err
	}
	tmplStr := string(raw)
	var buf bytes.Buffer
	if html {
		t, err := template.New(name).Parse(tmplStr)
		if err != nil {
			return "", err
		}
		if err := t.Execute(&buf, data); err != nil {
			return "", err
		}
	} else {
		t, err := texttemplate.New(name).Parse(tmplStr)
		if err != nil {
			return "", err
		}
		if err := t.Execute(&buf, data); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
