package notify

// Message ids for every literal string in the notifications. The id is also
// the default English text.
const (
	MsgWelcomeSubject = "Welcome to The Healthy Futures Challenge!"
	MsgThanks         = "Thanks for signing up!"
	MsgUserName       = "Your user name:"
	MsgLoginLink      = "Your login link:"
	MsgPassword       = "Your password:"
	MsgSchool         = "Your school:"
	MsgTeam           = "Your team:"
	MsgGetStarted     = "Get started by logging in here:"
	MsgAdminSubject   = "New User Created"
	MsgAdminBody      = "A new user has been created: %s"
)

// Translator looks up the display text for a message id.
type Translator interface {
	T(msgid string) string
}

// Passthrough returns every message id unchanged.
type Passthrough struct{}

// T implements Translator.
func (Passthrough) T(msgid string) string { return msgid }

// Catalog maps message ids to translations. Missing ids fall back to the id.
type Catalog map[string]string

// T implements Translator.
func (c Catalog) T(msgid string) string {
	if s, ok := c[msgid]; ok && s != "" {
		return s
	}
	return msgid
}
