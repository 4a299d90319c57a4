package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/airport-ops/config"
	_ "github.com/Domenick1991/airport-ops/docs"
	"github.com/Domenick1991/airport-ops/internal/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type Servers struct {
	grpcServer  *grpc.Server
	httpServer  *http.Server
	health      *health.Server
	gatewayConn *grpc.ClientConn
}

// Run starts the gRPC health server and the HTTP server (JSON API, pages,
// swagger UI and the /healthz gateway) and blocks until ctx is canceled or a
// server fails.
func Run(ctx context.Context, cfg *config.Config, app *App) error {
	s, err := newServers(cfg, app)
	if err != nil {
		return err
	}
	defer s.gatewayConn.Close()

	errCh := make(chan error, 2)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	go func() { errCh <- s.grpcServer.Serve(lis) }()
	log.Printf("gRPC listening on %s", cfg.GRPC.Address)

	go func() {
		if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Printf("HTTP listening on %s", cfg.HTTP.Address)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServers(cfg *config.Config, app *App) (*Servers, error) {
	grpcSrv := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)

	conn, gateway, err := NewHealthGateway(cfg.GRPC.Address)
	if err != nil {
		return nil, err
	}

	router := NewRouter(app, gateway)
	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Servers{
		grpcServer:  grpcSrv,
		httpServer:  httpSrv,
		health:      healthSrv,
		gatewayConn: conn,
	}, nil
}

// NewHealthGateway bridges the gRPC health service at addr to GET /healthz.
func NewHealthGateway(addr string) (*grpc.ClientConn, http.Handler, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("dial gRPC %s: %w", addr, err)
	}
	mux := runtime.NewServeMux(runtime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)))
	return conn, mux, nil
}

// NewRouter mounts the JSON API under /api, the swagger UI, the health
// gateway and the pages on one gin engine.
func NewRouter(app *App, healthz http.Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), telemetry.Middleware(otel.GetTracerProvider()))

	router.GET("/healthz", gin.WrapH(healthz))
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))))

	app.API.Register(router.Group("/api"), app.Sessions)
	app.Pages.Register(router)
	return router
}
