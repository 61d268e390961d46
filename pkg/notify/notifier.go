package notify

import (
	"context"
	"errors"
	"time"

	"github.com/joeblew999/plat-welcome/pkg/mail"
	"github.com/zeromicro/go-zero/core/logx"
)

// Message kinds used in logs, metrics and events.
const (
	KindWelcome = "welcome"
	KindAdmin   = "admin"
)

const previewKey = "PREVIEWKEY"

// UserStore reads the host's user records.
type UserStore interface {
	FindUser(ctx context.Context, id int64) (UserAccount, error)
	UserLabels(ctx context.Context, id int64) (Labels, error)
}

// EventRecorder keeps an audit trail of dispatch outcomes.
type EventRecorder interface {
	RecordEvent(userID int64, kind, recipient, status, details string)
}

// Notifier sends the welcome and admin messages for a new account.
type Notifier struct {
	users    UserStore
	sender   mail.Sender
	composer *Composer
	issuer   CredentialIssuer
	registry *mail.ContentTypeRegistry
	events   EventRecorder
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithContentTypeRegistry makes each notification run inside an HTMLMode
// scope on registry.
func WithContentTypeRegistry(r *mail.ContentTypeRegistry) Option {
	return func(n *Notifier) {
		n.registry = r
	}
}

// WithEventRecorder records every dispatch outcome.
func WithEventRecorder(r EventRecorder) Option {
	return func(n *Notifier) {
		n.events = r
	}
}

// NewNotifier creates a notifier.
func NewNotifier(users UserStore, sender mail.Sender, composer *Composer, issuer CredentialIssuer, opts ...Option) *Notifier {
	n := &Notifier{
		users:    users,
		sender:   sender,
		composer: composer,
		issuer:   issuer,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Variant returns the configured credential variant name.
func (n *Notifier) Variant() string {
	return n.issuer.Kind().String()
}

// NotifyNewUser sends the welcome message to the new user and then the admin
// notice. A failed send stops the notification and returns a DispatchError;
// nothing is retried. The HTML scope is cleared on every return path.
func (n *Notifier) NotifyNewUser(ctx context.Context, userID int64, plaintextPassword string) (err error) {
	if n.users == nil || n.sender == nil || n.composer == nil || n.issuer == nil {
		return ErrMissingCollaborator
	}

	variant := n.Variant()
	ctx = logx.ContextWithFields(ctx,
		logx.Field("user_id", userID),
		logx.Field("variant", variant),
	)

	mode := NewHTMLMode(n.registry)
	mode.Enable()
	defer mode.Disable()

	defer func() {
		result := "sent"
		if err != nil {
			result = "failed"
		}
		notificationsTotal.Inc(variant, result)
	}()

	user, err := n.users.FindUser(ctx, userID)
	if err != nil {
		return err
	}

	cred, err := n.issuer.Issue(ctx, user, plaintextPassword)
	if err != nil {
		return err
	}

	welcome, err := n.composer.ComposeWelcomeMessage(user, cred, n.labels(ctx, userID))
	if err != nil {
		return err
	}

	if err := n.dispatch(ctx, userID, KindWelcome, welcome); err != nil {
		return err
	}

	admin := n.composer.ComposeAdminMessage(user.Email)
	if admin.To == "" {
		logx.WithContext(ctx).Infow("No admin address configured, skipping admin notice")
		return nil
	}
	return n.dispatch(ctx, userID, KindAdmin, admin)
}

// Preview composes the welcome message without sending it or storing a key.
// The link variant renders a placeholder key; the password variant masks a
// missing password.
func (n *Notifier) Preview(ctx context.Context, userID int64, plaintextPassword string) (EmailMessage, error) {
	if n.users == nil || n.composer == nil || n.issuer == nil {
		return EmailMessage{}, ErrMissingCollaborator
	}

	user, err := n.users.FindUser(ctx, userID)
	if err != nil {
		return EmailMessage{}, err
	}

	cred := Credential{Kind: n.issuer.Kind(), Value: plaintextPassword}
	switch cred.Kind {
	case CredentialLink:
		cred.Value = BuildLoginLink(n.composer.Site().LoginURL, previewKey, user.Login)
	default:
		if cred.Value == "" {
			cred.Value = "********"
		}
	}

	return n.composer.ComposeWelcomeMessage(user, cred, n.labels(ctx, userID))
}

// labels returns the user's optional labels; lookup failures only drop them.
func (n *Notifier) labels(ctx context.Context, userID int64) Labels {
	labels, err := n.users.UserLabels(ctx, userID)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		logx.WithContext(ctx).Errorw("Failed to load user labels", logx.Field("error", err.Error()))
	}
	return labels
}

func (n *Notifier) dispatch(ctx context.Context, userID int64, kind string, msg EmailMessage) error {
	start := time.Now()

	if err := n.sender.Send(ctx, msg); err != nil {
		emailsFailed.Inc(kind)
		n.record(userID, kind, msg.To, "failed", err.Error())
		logx.WithContext(ctx).Errorw("Email dispatch failed",
			logx.Field("kind", kind),
			logx.Field("to", msg.To),
			logx.Field("error", err.Error()))
		return &DispatchError{Kind: kind, To: msg.To, Err: err}
	}

	emailsSent.Inc(kind)
	dispatchDuration.ObserveFloat(time.Since(start).Seconds(), kind)
	n.record(userID, kind, msg.To, "sent", "")
	logx.WithContext(ctx).Infow("Email dispatched",
		logx.Field("kind", kind),
		logx.Field("to", msg.To))
	return nil
}

func (n *Notifier) record(userID int64, kind, recipient, status, details string) {
	if n.events != nil {
		n.events.RecordEvent(userID, kind, recipient, status, details)
	}
}
