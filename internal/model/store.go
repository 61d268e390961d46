package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/joeblew999/plat-welcome/pkg/notify"
)

var (
	_ notify.UserStore = (*Store)(nil)
	_ notify.KeyStore  = (*Store)(nil)
)

// Store exposes the users table to the notifier.
type Store struct {
	users UsersModel
}

// NewStore creates a store over users.
func NewStore(users UsersModel) *Store {
	return &Store{users: users}
}

// FindUser implements notify.UserStore.
func (s *Store) FindUser(ctx context.Context, id int64) (notify.UserAccount, error) {
	u, err := s.users.FindOne(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return notify.UserAccount{}, fmt.Errorf("%w: id %d", notify.ErrUserNotFound, id)
		}
		return notify.UserAccount{}, fmt.Errorf("find user %d: %w", id, err)
	}

	return notify.UserAccount{
		ID:    u.Id,
		Login: u.UserLogin,
		Email: u.UserEmail,
	}, nil
}

// UserLabels implements notify.UserStore.
func (s *Store) UserLabels(ctx context.Context, id int64) (notify.Labels, error) {
	meta, err := s.users.Meta(ctx, id)
	if err != nil {
		return notify.Labels{}, fmt.Errorf("load meta for user %d: %w", id, err)
	}

	return notify.Labels{
		School: meta[MetaSchool],
		Team:   meta[MetaTeam],
	}, nil
}

// SetActivationKey implements notify.KeyStore.
func (s *Store) SetActivationKey(ctx context.Context, login, hashedKey string) error {
	if err := s.users.UpdateActivationKey(ctx, login, hashedKey); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: login %q", notify.ErrUserNotFound, login)
		}
		return fmt.Errorf("update activation key: %w", err)
	}
	return nil
}

// CreateUser adds a host user with optional labels and returns its id.
func (s *Store) CreateUser(ctx context.Context, user notify.UserAccount, labels notify.Labels) (int64, error) {
	user, err := notify.SanitizeUser(user)
	if err != nil {
		return 0, err
	}

	id, err := s.users.InsertWithMeta(ctx, &Users{
		UserLogin: user.Login,
		UserEmail: user.Email,
	}, map[string]string{
		MetaSchool: labels.School,
		MetaTeam:   labels.Team,
	})
	if err != nil {
		return 0, fmt.Errorf("create user %q: %w", user.Login, err)
	}
	return id, nil
}
