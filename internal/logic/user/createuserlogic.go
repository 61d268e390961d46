// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package user

import (
	"context"
	"strings"

	"github.com/joeblew999/plat-welcome/internal/errorx"
	"github.com/joeblew999/plat-welcome/internal/svc"
	"github.com/joeblew999/plat-welcome/internal/types"
	"github.com/joeblew999/plat-welcome/pkg/notify"

	"github.com/zeromicro/go-zero/core/logx"
)

type CreateUserLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateUserLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateUserLogic {
	return &CreateUserLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreateUserLogic) CreateUser(req *types.CreateUserRequest) (resp *types.CreateUserResponse, err error) {
	account := notify.UserAccount{Login: req.Login, Email: req.Email}
	labels := notify.Labels{School: req.School, Team: req.Team}

	id, err := l.svcCtx.Store.CreateUser(l.ctx, account, labels)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, errorx.ErrConflict("login already taken: " + strings.TrimSpace(req.Login))
		}
		return nil, errorx.FromNotify(err)
	}

	l.Infow("User created", logx.Field("id", id), logx.Field("login", strings.TrimSpace(req.Login)))

	return &types.CreateUserResponse{
		Id:    id,
		Login: strings.TrimSpace(req.Login),
		Email: strings.TrimSpace(req.Email),
	}, nil
}
