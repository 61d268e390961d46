package server

import (
	"fmt"
	"net/http"

	"github.com/joeblew999/plat-welcome/internal/config"
	"github.com/joeblew999/plat-welcome/internal/errorx"
	"github.com/joeblew999/plat-welcome/internal/handler"
	"github.com/joeblew999/plat-welcome/internal/svc"
	gomjml "github.com/preslavrachev/gomjml/mjml"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/proc"
	"github.com/zeromicro/go-zero/core/prometheus"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/rest"
)

// Server wraps the REST API and the notifier's storage.
type Server struct {
	config config.Config
	group  *service.ServiceGroup
}

// New creates a new server instance.
func New(c config.Config) (*Server, error) {
	// Register global error handler for proper HTTP status codes
	errorx.RegisterErrorHandler()

	// Enable go-zero prometheus metrics (required for metric.CounterVec/HistogramVec to record)
	prometheus.Enable()

	svcCtx, err := svc.NewServiceContext(c)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}

	apiServer, err := rest.NewServer(c.RestConf)
	if err != nil {
		svcCtx.Close()
		return nil, fmt.Errorf("failed to create API server: %w", err)
	}

	handler.RegisterHandlers(apiServer, svcCtx)

	// Expose Prometheus metrics endpoint
	apiServer.AddRoute(rest.Route{
		Method:  http.MethodGet,
		Path:    "/metrics",
		Handler: promhttp.Handler().ServeHTTP,
	})

	if c.Notifier.Layout == "mjml" {
		proc.AddShutdownListener(func() {
			gomjml.StopASTCacheCleanup()
		})
	}

	// Storage is flushed and closed when the group stops
	group := service.NewServiceGroup()
	group.Add(newStoreService(svcCtx))
	group.Add(apiServer)

	logx.Infow("plat-welcome server configured",
		logx.Field("api", fmt.Sprintf("http://%s:%d/api/v1", c.Host, c.Port)),
		logx.Field("variant", svcCtx.Notifier.Variant()),
		logx.Field("database", c.Database.Path),
	)

	return &Server{config: c, group: group}, nil
}

// Start starts all services. Blocks until shutdown signal.
func (s *Server) Start() {
	s.group.Start()
}

// Stop stops all services.
func (s *Server) Stop() {
	s.group.Stop()
}
