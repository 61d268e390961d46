package notify

import (
	"github.com/google/uuid"
	"github.com/joeblew999/plat-welcome/pkg/mail"
)

// HTMLMode scopes an HTML content-type provider to one notification. Each
// scope registers under its own name so concurrent notifications never
// remove each other's provider. A nil registry makes it a no-op.
type HTMLMode struct {
	registry *mail.ContentTypeRegistry
	name     string
}

// NewHTMLMode creates a scope on registry.
func NewHTMLMode(registry *mail.ContentTypeRegistry) *HTMLMode {
	return &HTMLMode{
		registry: registry,
		name:     "notify-html-" + uuid.NewString(),
	}
}

// Name returns the provider name used in the registry.
func (m *HTMLMode) Name() string {
	return m.name
}

// Enable registers the provider returning text/html.
func (m *HTMLMode) Enable() {
	if m.registry == nil {
		return
	}
	m.registry.Register(m.name, htmlContentType)
}

// Disable unregisters the provider. Calling it again is a no-op.
func (m *HTMLMode) Disable() {
	if m.registry == nil {
		return
	}
	m.registry.Unregister(m.name)
}

// Active reports whether the provider is registered.
func (m *HTMLMode) Active() bool {
	return m.registry != nil && m.registry.Registered(m.name)
}

func htmlContentType() string {
	return mail.ContentTypeHTML
}
