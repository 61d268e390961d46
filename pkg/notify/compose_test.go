package notify

import (
	"errors"
	"strings"
	"testing"

	"github.com/joeblew999/plat-welcome/pkg/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSite() Site {
	return Site{
		HomeURL:    "https://site",
		AssetURL:   "https://site/theme/",
		LoginURL:   "https://site/wp-login.php",
		AdminEmail: "admin@site.org",
	}
}

var jane = UserAccount{ID: 7, Login: "jane", Email: "jane@x.com"}

func TestComposeWelcomePasswordVariant(t *testing.T) {
	c := NewComposer(testSite())

	msg, err := c.ComposeWelcomeMessage(jane, Credential{Kind: CredentialPassword, Value: "Tr0ub4dor"}, Labels{})
	require.NoError(t, err)

	assert.Equal(t, "jane@x.com", msg.To)
	assert.Equal(t, MsgWelcomeSubject, msg.Subject)
	assert.Equal(t, mail.ContentTypeHTML, msg.ContentType)

	assert.Equal(t, 1, strings.Count(msg.Body, "jane"))
	assert.Equal(t, 1, strings.Count(msg.Body, "Tr0ub4dor"))
	assert.Contains(t, msg.Body, "<b>Tr0ub4dor</b>")
	assert.Contains(t, msg.Body, MsgPassword)
	assert.NotContains(t, msg.Body, MsgLoginLink)
	assert.NotContains(t, msg.Body, MsgSchool)
	assert.NotContains(t, msg.Body, MsgTeam)
}

func TestComposeWelcomeLinkVariant(t *testing.T) {
	c := NewComposer(testSite())
	link := "https://site/wp-login.php?action=rp&key=abc&login=jane"

	msg, err := c.ComposeWelcomeMessage(jane, Credential{Kind: CredentialLink, Value: link}, Labels{})
	require.NoError(t, err)

	escaped := strings.ReplaceAll(link, "&", "&amp;")
	assert.Equal(t, 1, strings.Count(msg.Body, escaped))
	assert.Contains(t, msg.Body, "<b>"+escaped+"</b>")
	assert.Contains(t, msg.Body, MsgLoginLink)
	assert.NotContains(t, msg.Body, MsgPassword)
}

func TestComposeWelcomeOrder(t *testing.T) {
	c := NewComposer(testSite())

	msg, err := c.ComposeWelcomeMessage(jane,
		Credential{Kind: CredentialPassword, Value: "Tr0ub4dor"},
		Labels{School: "Lincoln High", Team: "Falcons"})
	require.NoError(t, err)

	order := []string{
		`<img height="200" width="200" src="https://site/theme/images/logo_200.png"`,
		"<h2><center>",
		MsgThanks,
		MsgUserName,
		MsgPassword,
		MsgSchool,
		MsgTeam,
		MsgGetStarted,
	}
	last := -1
	for _, part := range order {
		idx := strings.Index(msg.Body, part)
		require.GreaterOrEqualf(t, idx, 0, "missing %q", part)
		assert.Greaterf(t, idx, last, "%q out of order", part)
		last = idx
	}

	assert.Contains(t, msg.Body, `<a style="color: #002856" href="https://site">https://site</a>`)
}

func TestComposeWelcomeLabels(t *testing.T) {
	c := NewComposer(testSite())
	cred := Credential{Kind: CredentialPassword, Value: "pw"}

	t.Run("school only", func(t *testing.T) {
		msg, err := c.ComposeWelcomeMessage(jane, cred, Labels{School: "Lincoln High"})
		require.NoError(t, err)

		assert.Equal(t, 1, strings.Count(msg.Body, MsgSchool))
		assert.Contains(t, msg.Body, "<p>"+MsgSchool+" <b>Lincoln High</b></p>")
		assert.NotContains(t, msg.Body, MsgTeam)
	})

	t.Run("team only", func(t *testing.T) {
		msg, err := c.ComposeWelcomeMessage(jane, cred, Labels{Team: "Falcons"})
		require.NoError(t, err)

		assert.Equal(t, 1, strings.Count(msg.Body, MsgTeam))
		assert.NotContains(t, msg.Body, MsgSchool)
	})

	t.Run("blank labels are absent", func(t *testing.T) {
		msg, err := c.ComposeWelcomeMessage(jane, cred, Labels{School: "  ", Team: ""})
		require.NoError(t, err)

		assert.NotContains(t, msg.Body, MsgSchool)
		assert.NotContains(t, msg.Body, MsgTeam)
		assert.NotContains(t, msg.Body, "<p></p>")
		assert.NotContains(t, msg.Body, "<b></b>")
	})
}

func TestComposeWelcomeEscapesUserFields(t *testing.T) {
	c := NewComposer(testSite())
	user := UserAccount{ID: 1, Login: "<script>alert(1)</script>", Email: "x@example.com"}

	msg, err := c.ComposeWelcomeMessage(user,
		Credential{Kind: CredentialPassword, Value: `p"w<d>`},
		Labels{School: "<i>Lincoln</i>", Team: "A&B"})
	require.NoError(t, err)

	assert.NotContains(t, msg.Body, "<script>")
	assert.Contains(t, msg.Body, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, msg.Body, `p"w<d>`)
	assert.NotContains(t, msg.Body, "<i>Lincoln</i>")
	assert.Contains(t, msg.Body, "A&amp;B")
}

// The logo alt text once referenced an undefined variable; it must carry the
// escaped welcome subject.
func TestComposeWelcomeLogoAltIsEscapedSubject(t *testing.T) {
	c := NewComposer(testSite())

	msg, err := c.ComposeWelcomeMessage(jane, Credential{Kind: CredentialPassword, Value: "pw"}, Labels{})
	require.NoError(t, err)
	assert.Contains(t, msg.Body, `alt="`+MsgWelcomeSubject+`"`)
	assert.NotContains(t, msg.Body, "$subject")
	assert.Empty(t, mail.ValidateHTML(msg.Body))

	c = NewComposer(testSite(), WithTranslator(Catalog{MsgWelcomeSubject: `Welcome & "hello"`}))
	msg, err = c.ComposeWelcomeMessage(jane, Credential{Kind: CredentialPassword, Value: "pw"}, Labels{})
	require.NoError(t, err)
	assert.Equal(t, `Welcome & "hello"`, msg.Subject)
	assert.NotContains(t, msg.Body, `alt="Welcome & "hello""`)
	assert.Contains(t, msg.Body, `alt="Welcome &amp; &#34;hello&#34;"`)
}

func TestComposeWelcomeRejectsInvalidInput(t *testing.T) {
	c := NewComposer(testSite())
	cred := Credential{Kind: CredentialPassword, Value: "pw"}

	_, err := c.ComposeWelcomeMessage(UserAccount{Email: "jane@x.com"}, cred, Labels{})
	assert.ErrorIs(t, err, ErrInvalidUser)

	_, err = c.ComposeWelcomeMessage(UserAccount{Login: "jane", Email: "not-an-email"}, cred, Labels{})
	assert.ErrorIs(t, err, ErrInvalidUser)

	_, err = c.ComposeWelcomeMessage(jane, Credential{Kind: CredentialPassword}, Labels{})
	assert.ErrorIs(t, err, ErrEmptyCredential)
}

func TestComposeWelcomeTrimsUserFields(t *testing.T) {
	c := NewComposer(testSite())

	msg, err := c.ComposeWelcomeMessage(UserAccount{Login: " jane ", Email: " jane@x.com "},
		Credential{Kind: CredentialPassword, Value: "pw"}, Labels{})
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", msg.To)
	assert.Contains(t, msg.Body, "<b>jane</b>")
}

type stubWrapper struct {
	err error
}

func (w stubWrapper) Wrap(title, fragment string) (string, error) {
	if w.err != nil {
		return "", w.err
	}
	return "<doc title=\"" + title + "\">" + fragment + "</doc>", nil
}

func TestComposeWelcomeLayout(t *testing.T) {
	c := NewComposer(testSite(), WithLayout(stubWrapper{}))

	msg, err := c.ComposeWelcomeMessage(jane, Credential{Kind: CredentialPassword, Value: "pw"}, Labels{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(msg.Body, `<doc title="`+MsgWelcomeSubject+`"><p><center>`))

	c = NewComposer(testSite(), WithLayout(stubWrapper{err: errors.New("boom")}))
	_, err = c.ComposeWelcomeMessage(jane, Credential{Kind: CredentialPassword, Value: "pw"}, Labels{})
	assert.ErrorContains(t, err, "boom")
}

func TestComposeAdminMessage(t *testing.T) {
	c := NewComposer(testSite())

	msg := c.ComposeAdminMessage("jane@x.com")
	assert.Equal(t, "admin@site.org", msg.To)
	assert.Equal(t, "New User Created", msg.Subject)
	assert.Equal(t, "A new user has been created: jane@x.com", msg.Body)
	assert.Equal(t, mail.ContentTypePlain, msg.ContentType)
}

func TestCatalogFallsBackToMsgid(t *testing.T) {
	cat := Catalog{MsgThanks: "Danke!", MsgTeam: ""}

	assert.Equal(t, "Danke!", cat.T(MsgThanks))
	assert.Equal(t, MsgTeam, cat.T(MsgTeam))
	assert.Equal(t, MsgSchool, cat.T(MsgSchool))
	assert.Equal(t, MsgSchool, Passthrough{}.T(MsgSchool))
}
