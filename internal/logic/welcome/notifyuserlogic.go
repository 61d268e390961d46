// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package welcome

import (
	"context"

	"github.com/joeblew999/plat-welcome/internal/errorx"
	"github.com/joeblew999/plat-welcome/internal/svc"
	"github.com/joeblew999/plat-welcome/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type NotifyUserLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewNotifyUserLogic(ctx context.Context, svcCtx *svc.ServiceContext) *NotifyUserLogic {
	return &NotifyUserLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *NotifyUserLogic) NotifyUser(req *types.NotifyUserRequest) (resp *types.NotifyUserResponse, err error) {
	if req.Id <= 0 {
		return nil, errorx.ErrBadRequest("user id must be positive")
	}

	if err := l.svcCtx.Notifier.NotifyNewUser(l.ctx, req.Id, req.Password); err != nil {
		return nil, errorx.FromNotify(err)
	}

	return &types.NotifyUserResponse{
		Id:      req.Id,
		Variant: l.svcCtx.Notifier.Variant(),
		Status:  "sent",
	}, nil
}
