// Package mail provides email dispatch, content-type resolution and
// compatibility checks for outgoing notification mail.
package mail

import "context"

// Content types understood by the senders.
const (
	ContentTypeHTML  = "text/html"
	ContentTypePlain = "text/plain"
)

// Message is a single outgoing email. An empty ContentType defers to the
// sender's ContentTypeRegistry.
type Message struct {
	To          string `json:"to"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	ContentType string `json:"content_type,omitempty"`
}

// Sender delivers a message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
