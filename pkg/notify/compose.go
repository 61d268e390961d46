package notify

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joeblew999/plat-welcome/pkg/mail"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Wrapper turns an HTML fragment into a complete document.
type Wrapper interface {
	Wrap(title, fragment string) (string, error)
}

// Composer builds the welcome and admin messages.
type Composer struct {
	site   Site
	tr     Translator
	layout Wrapper
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithTranslator sets the translator for literal text.
func WithTranslator(tr Translator) ComposerOption {
	return func(c *Composer) {
		if tr != nil {
			c.tr = tr
		}
	}
}

// WithLayout wraps welcome bodies in a full document.
func WithLayout(w Wrapper) ComposerOption {
	return func(c *Composer) {
		c.layout = w
	}
}

// NewComposer creates a composer for site.
func NewComposer(site Site, opts ...ComposerOption) *Composer {
	c := &Composer{
		site: site,
		tr:   Passthrough{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Site returns the site metadata the composer renders with.
func (c *Composer) Site() Site {
	return c.site
}

// WelcomeSubject returns the translated welcome subject.
func (c *Composer) WelcomeSubject() string {
	return c.tr.T(MsgWelcomeSubject)
}

// NewContext derives the per-notification values.
func (c *Composer) NewContext(labels Labels) NotificationContext {
	return NotificationContext{
		Site: c.site,
		Labels: Labels{
			School: strings.TrimSpace(labels.School),
			Team:   strings.TrimSpace(labels.Team),
		},
		Subject: c.WelcomeSubject(),
	}
}

// SanitizeUser trims the account fields and validates them.
func SanitizeUser(user UserAccount) (UserAccount, error) {
	user.Login = strings.TrimSpace(user.Login)
	user.Email = strings.TrimSpace(user.Email)
	if err := validate.Struct(user); err != nil {
		return user, fmt.Errorf("%w: %v", ErrInvalidUser, err)
	}
	return user, nil
}

// ComposeWelcomeMessage builds the HTML welcome message for user.
func (c *Composer) ComposeWelcomeMessage(user UserAccount, cred Credential, labels Labels) (EmailMessage, error) {
	user, err := SanitizeUser(user)
	if err != nil {
		return EmailMessage{}, err
	}
	if cred.Value == "" {
		return EmailMessage{}, ErrEmptyCredential
	}

	nc := c.NewContext(labels)

	var b strings.Builder
	for _, n := range c.welcomeNodes(user, cred, nc) {
		if err := n.Render(&b); err != nil {
			return EmailMessage{}, fmt.Errorf("render welcome body: %w", err)
		}
	}
	body := b.String()

	if c.layout != nil {
		body, err = c.layout.Wrap(nc.Subject, body)
		if err != nil {
			return EmailMessage{}, fmt.Errorf("wrap welcome body: %w", err)
		}
	}

	return EmailMessage{
		To:          user.Email,
		Subject:     nc.Subject,
		Body:        body,
		ContentType: mail.ContentTypeHTML,
	}, nil
}

// welcomeNodes returns the body elements in display order. Text and
// attribute values are escaped by gomponents.
func (c *Composer) welcomeNodes(user UserAccount, cred Credential, nc NotificationContext) []g.Node {
	home := nc.Site.HomeURL
	accent := g.Attr("style", "color: "+nc.Site.accent())

	credLabel := c.tr.T(MsgPassword)
	if cred.Kind == CredentialLink {
		credLabel = c.tr.T(MsgLoginLink)
	}

	nodes := []g.Node{
		h.P(center(h.A(h.Href(home),
			h.Img(g.Attr("height", "200"), g.Attr("width", "200"), h.Src(nc.Site.LogoURL()), h.Alt(nc.Subject)),
		))),
		h.H2(center(h.A(accent, h.Href(home), g.Text(nc.Subject)))),
		h.P(g.Text(c.tr.T(MsgThanks))),
		labelLine(c.tr.T(MsgUserName), user.Login),
		labelLine(credLabel, cred.Value),
	}

	if nc.Labels.School != "" {
		nodes = append(nodes, labelLine(c.tr.T(MsgSchool), nc.Labels.School))
	}
	if nc.Labels.Team != "" {
		nodes = append(nodes, labelLine(c.tr.T(MsgTeam), nc.Labels.Team))
	}

	nodes = append(nodes, h.P(
		g.Text(c.tr.T(MsgGetStarted)+" "),
		h.I(h.A(accent, h.Href(home), g.Text(home))),
	))
	return nodes
}

// ComposeAdminMessage builds the plain-text notice for the administrator.
func (c *Composer) ComposeAdminMessage(userEmail string) EmailMessage {
	return EmailMessage{
		To:          strings.TrimSpace(c.site.AdminEmail),
		Subject:     c.tr.T(MsgAdminSubject),
		Body:        fmt.Sprintf(c.tr.T(MsgAdminBody), strings.TrimSpace(userEmail)),
		ContentType: mail.ContentTypePlain,
	}
}

func center(children ...g.Node) g.Node {
	return g.El("center", children...)
}

func labelLine(label, value string) g.Node {
	return h.P(g.Text(label+" "), h.B(g.Text(value)))
}
