// Package mjml wraps composed HTML fragments in a responsive MJML document
// and renders it to email-client compatible HTML.
package mjml

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/preslavrachev/gomjml/mjml"
)

const layoutSource = `<mjml>
  <mj-head>
    <mj-title>{{.Title}}</mj-title>
    <mj-preview>{{.Title}}</mj-preview>
  </mj-head>
  <mj-body background-color="{{.Background}}">
    <mj-section>
      <mj-column>
        <mj-text font-size="15px" line-height="1.5">{{.Fragment}}</mj-text>
      </mj-column>
    </mj-section>
  </mj-body>
</mjml>`

// LayoutOptions configures the layout renderer.
type LayoutOptions struct {
	EnableDebug bool   // Add debug attributes to HTML
	Background  string // Body background color
}

// LayoutOption configures the layout renderer.
type LayoutOption func(*LayoutOptions)

// WithDebug adds debug attributes to generated HTML.
func WithDebug(enabled bool) LayoutOption {
	return func(opts *LayoutOptions) {
		opts.EnableDebug = enabled
	}
}

// WithBackground sets the body background color.
func WithBackground(color string) LayoutOption {
	return func(opts *LayoutOptions) {
		opts.Background = color
	}
}

// Layout renders fragments inside the notification MJML document.
type Layout struct {
	tmpl    *template.Template
	options *LayoutOptions
}

// NewLayout creates a layout renderer with the specified options.
func NewLayout(opts ...LayoutOption) *Layout {
	options := &LayoutOptions{
		Background: "#ffffff",
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Layout{
		tmpl:    template.Must(template.New("layout").Parse(layoutSource)),
		options: options,
	}
}

// Wrap renders fragment as the body of a full HTML email document. title is
// escaped; fragment must already be safe HTML.
func (l *Layout) Wrap(title, fragment string) (string, error) {
	start := time.Now()

	var buf bytes.Buffer
	err := l.tmpl.Execute(&buf, struct {
		Title      string
		Background string
		Fragment   template.HTML
	}{
		Title:      title,
		Background: l.options.Background,
		Fragment:   template.HTML(fragment),
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute layout: %w", err)
	}

	var mjmlOpts []mjml.RenderOption
	if l.options.EnableDebug {
		mjmlOpts = append(mjmlOpts, mjml.WithDebugTags(true))
	}

	html, err := mjml.Render(buf.String(), mjmlOpts...)
	if err != nil {
		return "", fmt.Errorf("gomjml render failed: %w", err)
	}

	renderDuration.ObserveFloat(time.Since(start).Seconds())
	return html, nil
}
