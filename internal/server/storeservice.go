package server

import (
	"github.com/joeblew999/plat-welcome/internal/svc"
	"github.com/zeromicro/go-zero/core/logx"
)

// storeService adapts the service context's storage to the service.Service
// interface so the group closes it after the REST server stops.
type storeService struct {
	svcCtx *svc.ServiceContext
}

func newStoreService(svcCtx *svc.ServiceContext) *storeService {
	return &storeService{svcCtx: svcCtx}
}

func (s *storeService) Start() {}

func (s *storeService) Stop() {
	logx.Info("Flushing notification events and closing database")
	if err := s.svcCtx.Close(); err != nil {
		logx.Errorw("Failed to close database", logx.Field("error", err.Error()))
	}
}
