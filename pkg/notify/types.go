// Package notify sends the welcome email for newly registered users and the
// matching notice to the site administrator.
//
// A Notifier loads the new account from a UserStore, obtains credential
// material from exactly one CredentialIssuer (a login link or the caller's
// plaintext password), composes both messages with a Composer and hands them
// to a Sender. Messages carry their own content type; the optional HTMLMode
// scope exists for senders that still consult a ContentTypeRegistry.
package notify

import (
	"strings"

	"github.com/joeblew999/plat-welcome/pkg/mail"
)

// DefaultAccentColor is used for headings and links when Site has none.
const DefaultAccentColor = "#002856"

// EmailMessage is a composed message ready for dispatch.
type EmailMessage = mail.Message

// UserAccount is the host's record of the new user. It is read-only here.
type UserAccount struct {
	ID    int64  `json:"id"`
	Login string `json:"login" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// Labels are optional profile labels shown in the welcome message.
// Empty fields are omitted.
type Labels struct {
	School string `json:"school,omitempty"`
	Team   string `json:"team,omitempty"`
}

// Site holds the host site metadata used to build messages.
type Site struct {
	HomeURL     string
	AssetURL    string
	LoginURL    string
	AdminEmail  string
	AccentColor string
}

// LogoURL returns the logo location under the asset base URL.
func (s Site) LogoURL() string {
	return strings.TrimRight(s.AssetURL, "/") + "/images/logo_200.png"
}

func (s Site) accent() string {
	if s.AccentColor == "" {
		return DefaultAccentColor
	}
	return s.AccentColor
}

// NotificationContext holds the values derived for one notification. It is
// never stored.
type NotificationContext struct {
	Site    Site
	Labels  Labels
	Subject string
}

// CredentialKind selects how the new user gets in.
type CredentialKind int

const (
	// CredentialPassword shows the plaintext password chosen at signup.
	CredentialPassword CredentialKind = iota
	// CredentialLink shows a one-time login link backed by an activation key.
	CredentialLink
)

func (k CredentialKind) String() string {
	switch k {
	case CredentialPassword:
		return VariantPassword
	case CredentialLink:
		return VariantLink
	default:
		return "unknown"
	}
}

// Credential is the material rendered in the welcome message.
type Credential struct {
	Kind  CredentialKind
	Value string
}
