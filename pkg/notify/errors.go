package notify

import (
	"errors"
	"fmt"
)

var (
	// ErrMailDispatch is wrapped by every DispatchError.
	ErrMailDispatch = errors.New("mail dispatch failed")
	// ErrUserNotFound is returned when the host has no such user.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidUser is returned when the account lacks a login or a valid email.
	ErrInvalidUser = errors.New("invalid user account")
	// ErrMissingPassword is returned by the password variant when no password was supplied.
	ErrMissingPassword = errors.New("plaintext password required")
	// ErrEmptyCredential is returned when composing without credential material.
	ErrEmptyCredential = errors.New("empty credential")
	// ErrUnknownVariant is returned for an unsupported credential variant name.
	ErrUnknownVariant = errors.New("unknown credential variant")
	// ErrMissingCollaborator is returned when the notifier lacks a store or sender.
	ErrMissingCollaborator = errors.New("missing collaborator")
)

// DispatchError reports a failed send. It is terminal for the notification.
type DispatchError struct {
	Kind string // welcome or admin
	To   string
	Err  error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s email to %s: %v", e.Kind, e.To, e.Err)
}

// Unwrap exposes both ErrMailDispatch and the sender's error.
func (e *DispatchError) Unwrap() []error {
	return []error{ErrMailDispatch, e.Err}
}
