// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package welcome

import (
	"net/http"

	"github.com/joeblew999/plat-welcome/internal/logic/welcome"
	"github.com/joeblew999/plat-welcome/internal/svc"
	"github.com/joeblew999/plat-welcome/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func NotifyUserHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.NotifyUserRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := welcome.NewNotifyUserLogic(r.Context(), svcCtx)
		resp, err := l.NotifyUser(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
