package user

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/joeblew999/plat-welcome/internal/config"
	"github.com/joeblew999/plat-welcome/internal/errorx"
	"github.com/joeblew999/plat-welcome/internal/model"
	"github.com/joeblew999/plat-welcome/internal/svc"
	"github.com/joeblew999/plat-welcome/internal/types"
	"github.com/joeblew999/plat-welcome/pkg/db"
	"github.com/joeblew999/plat-welcome/pkg/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) *svc.ServiceContext {
	t.Helper()

	var c config.Config
	c.Database.Path = filepath.Join(t.TempDir(), "users.db")
	c.Notifier.Variant = "password"

	database, err := db.Open(c.Database.Path)
	require.NoError(t, err)

	svcCtx, err := svc.NewServiceContextWithSender(c, database, mail.NewLogSender(nil))
	require.NoError(t, err)
	t.Cleanup(func() { svcCtx.Close() })
	return svcCtx
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	svcCtx := newTestContext(t)

	resp, err := NewCreateUserLogic(ctx, svcCtx).CreateUser(&types.CreateUserRequest{
		Login:  " jane ",
		Email:  "jane@x.com",
		School: "Lincoln High",
		Team:   "Red",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane", resp.Login)

	meta, err := svcCtx.UsersModel.Meta(ctx, resp.Id)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{model.MetaSchool: "Lincoln High", model.MetaTeam: "Red"}, meta)
}

func TestCreateUserErrors(t *testing.T) {
	ctx := context.Background()
	svcCtx := newTestContext(t)

	_, err := NewCreateUserLogic(ctx, svcCtx).CreateUser(&types.CreateUserRequest{Login: "jane", Email: "jane@x.com"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		req    types.CreateUserRequest
		status int
	}{
		{name: "duplicate login", req: types.CreateUserRequest{Login: "jane", Email: "j2@x.com"}, status: http.StatusConflict},
		{name: "bad email", req: types.CreateUserRequest{Login: "bob", Email: "bob"}, status: http.StatusBadRequest},
		{name: "blank login", req: types.CreateUserRequest{Login: "  ", Email: "bob@x.com"}, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCreateUserLogic(ctx, svcCtx).CreateUser(&tt.req)
			var ce *errorx.CodeError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.status, ce.Code)
		})
	}
}
