// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package welcome

import (
	"context"

	"github.com/joeblew999/plat-welcome/internal/errorx"
	"github.com/joeblew999/plat-welcome/internal/svc"
	"github.com/joeblew999/plat-welcome/internal/types"
	"github.com/joeblew999/plat-welcome/pkg/mail"

	"github.com/zeromicro/go-zero/core/logx"
)

type PreviewUserLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPreviewUserLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PreviewUserLogic {
	return &PreviewUserLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *PreviewUserLogic) PreviewUser(req *types.PreviewUserRequest) (resp *types.PreviewUserResponse, err error) {
	msg, err := l.svcCtx.Notifier.Preview(l.ctx, req.Id, req.Password)
	if err != nil {
		return nil, errorx.FromNotify(err)
	}

	issues := mail.ValidateHTML(msg.Body)
	if len(issues) > 0 {
		l.Infow("Preview has compatibility issues", logx.Field("issues", issues))
	}

	return &types.PreviewUserResponse{
		To:          msg.To,
		Subject:     msg.Subject,
		ContentType: msg.ContentType,
		Body:        msg.Body,
		Issues:      issues,
	}, nil
}
