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

func PreviewUserHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.PreviewUserRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := welcome.NewPreviewUserLogic(r.Context(), svcCtx)
		resp, err := l.PreviewUser(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
