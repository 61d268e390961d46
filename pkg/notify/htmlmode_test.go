package notify

import (
	"testing"

	"github.com/joeblew999/plat-welcome/pkg/mail"
	"github.com/stretchr/testify/assert"
)

func TestHTMLModeEnableDisable(t *testing.T) {
	r := mail.NewContentTypeRegistry()
	m := NewHTMLMode(r)

	m.Enable()
	assert.True(t, m.Active())
	assert.Equal(t, mail.ContentTypeHTML, r.Resolve(mail.ContentTypePlain))

	m.Disable()
	assert.False(t, m.Active())
	assert.Equal(t, mail.ContentTypePlain, r.Resolve(mail.ContentTypePlain))

	// a second disable leaves the registry exactly as the first did
	m.Disable()
	assert.False(t, m.Active())
	assert.Equal(t, 0, r.Len())
}

func TestHTMLModeScopesAreIndependent(t *testing.T) {
	r := mail.NewContentTypeRegistry()
	a, b := NewHTMLMode(r), NewHTMLMode(r)
	assert.NotEqual(t, a.Name(), b.Name())

	a.Enable()
	b.Enable()
	a.Disable()

	assert.True(t, b.Active())
	assert.Equal(t, mail.ContentTypeHTML, r.Resolve(mail.ContentTypePlain))

	b.Disable()
	assert.Equal(t, 0, r.Len())
}

func TestHTMLModeNilRegistry(t *testing.T) {
	m := NewHTMLMode(nil)
	m.Enable()
	assert.False(t, m.Active())
	m.Disable()
}
