package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-pantheon/internal/clients/external"
	"github.com/KirkDiggler/rpg-pantheon/internal/engine/rpgtoolkit"
	v1alpha1 "github.com/KirkDiggler/rpg-pantheon/internal/handlers/favor/v1alpha1"
	"github.com/KirkDiggler/rpg-pantheon/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-pantheon/internal/redis"
	favorstate "github.com/KirkDiggler/rpg-pantheon/internal/repositories/favor_state"
)

var (
	grpcPort    int
	redisURL    string
	dnd5eURL    string
	cacheTTL    time.Duration
	sessionTTL  time.Duration
	offlineMode bool
)

const shutdownTimeout = 30 * time.Second

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the pantheon gRPC server with favor state stored in Redis.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&redisURL, "redis-url", envOr("REDIS_URL", "redis://localhost:6379"), "Redis URL")
	serverCmd.Flags().StringVar(&dnd5eURL, "dnd5e-url", "", "D&D 5e API base URL (defaults to the public API)")
	serverCmd.Flags().DurationVar(&cacheTTL, "cache-ttl", 24*time.Hour, "How long spell lookups are cached")
	serverCmd.Flags().DurationVar(&sessionTTL, "session-ttl", 7*24*time.Hour, "How long an idle session is kept")
	serverCmd.Flags().BoolVar(&offlineMode, "offline", false, "Use the built-in spell list instead of the D&D 5e API")
}

func runServer(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	redisClient, err := redisclient.NewClientFromURL(redisURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = redisClient.Close() // nolint:errcheck // shutting down
	}()
	if err := redisclient.Check(ctx, redisClient, 5*time.Second); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", redisURL, err)
	}

	repo, err := favorstate.NewRedisRepository(&favorstate.Config{
		Client: redisClient,
		Clock:  clock.New(),
		TTL:    sessionTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create favor state repository: %w", err)
	}

	var catalog external.SpellCatalog = external.NewStaticCatalog(external.DefaultEvocations())
	if !offlineMode {
		catalog, err = external.New(&external.Config{
			BaseURL:  dnd5eURL,
			CacheTTL: cacheTTL,
		})
		if err != nil {
			return fmt.Errorf("failed to create spell catalog: %w", err)
		}
	}

	bus := events.NewBus()
	rpgtoolkit.SubscribeAudit(bus, logger)

	favorHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		Repository: repo,
		Catalog:    catalog,
		EventBus:   bus,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create favor handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	logFunc := interceptorLogger(logger)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logFunc),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic(logger))),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logFunc),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic(logger))),
		),
	)

	v1alpha1.RegisterFavorServiceServer(srv, favorHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("gRPC server starting", "port", grpcPort)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down gRPC server")
		healthServer.Shutdown()
		stopGracefully(srv, shutdownTimeout, logger)
		return nil
	})

	return g.Wait()
}

// stopGracefully drains in-flight calls, forcing a stop after timeout
func stopGracefully(srv *grpc.Server, timeout time.Duration, logger *slog.Logger) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		logger.Info("server stopped gracefully")
	case <-time.After(timeout):
		logger.Warn("graceful shutdown timeout exceeded, forcing stop", "timeout", timeout)
		srv.Stop()
	}
}

// interceptorLogger bridges the grpc logging middleware onto slog
func interceptorLogger(logger *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(level), msg, fields...)
	})
}
