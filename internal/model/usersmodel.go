package model

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// Profile label keys stored in user_meta.
const (
	MetaSchool = "school"
	MetaTeam   = "team"
)

var _ UsersModel = (*customUsersModel)(nil)

type (
	// UsersModel is an interface to be customized, add more methods here,
	// and implement the added methods in customUsersModel.
	UsersModel interface {
		usersModel
		withSession(session sqlx.Session) UsersModel
		InsertWithMeta(ctx context.Context, data *Users, meta map[string]string) (int64, error)
		UpdateActivationKey(ctx context.Context, login, key string) error
		SetMeta(ctx context.Context, userID int64, key, value string) error
		Meta(ctx context.Context, userID int64) (map[string]string, error)
	}

	customUsersModel struct {
		*defaultUsersModel
	}
)

// NewUsersModel returns a model for the database table.
func NewUsersModel(conn sqlx.SqlConn) UsersModel {
	return &customUsersModel{
		defaultUsersModel: newUsersModel(conn),
	}
}

func (m *customUsersModel) withSession(session sqlx.Session) UsersModel {
	return NewUsersModel(sqlx.NewSqlConnFromSession(session))
}

// InsertWithMeta creates a user and its non-empty meta values in one
// transaction and returns the new id.
func (m *customUsersModel) InsertWithMeta(ctx context.Context, data *Users, meta map[string]string) (int64, error) {
	var id int64
	err := m.conn.TransactCtx(ctx, func(ctx context.Context, session sqlx.Session) error {
		tx := m.withSession(session)

		res, err := tx.Insert(ctx, data)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		if err != nil {
			return err
		}

		for k, v := range meta {
			if v == "" {
				continue
			}
			if err := tx.SetMeta(ctx, id, k, v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateActivationKey stores key against the user with the given login.
func (m *customUsersModel) UpdateActivationKey(ctx context.Context, login, key string) error {
	query := fmt.Sprintf("update %s set `user_activation_key` = ? where `user_login` = ?", m.table)
	res, err := m.conn.ExecCtx(ctx, query, key, login)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetMeta inserts or replaces a meta value.
func (m *customUsersModel) SetMeta(ctx context.Context, userID int64, key, value string) error {
	query := "insert into `user_meta` (`user_id`, `meta_key`, `meta_value`) values (?, ?, ?) " +
		"on conflict(`user_id`, `meta_key`) do update set `meta_value` = excluded.`meta_value`"
	_, err := m.conn.ExecCtx(ctx, query, userID, key, value)
	return err
}

// Meta returns all meta values of a user.
func (m *customUsersModel) Meta(ctx context.Context, userID int64) (map[string]string, error) {
	type metaRow struct {
		Key   string `db:"meta_key"`
		Value string `db:"meta_value"`
	}

	var rows []metaRow
	query := "select `meta_key`, `meta_value` from `user_meta` where `user_id` = ?"
	if err := m.conn.QueryRowsCtx(ctx, &rows, query, userID); err != nil {
		return nil, err
	}

	meta := make(map[string]string, len(rows))
	for _, r := range rows {
		meta[r.Key] = r.Value
	}
	return meta, nil
}
