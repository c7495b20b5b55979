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

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/internal/api/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/handlers/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/evolution"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/navigation"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/region"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/idgen"
	"github.com/KirkDiggler/pokedex-api/internal/platform/otel"
	"github.com/KirkDiggler/pokedex-api/internal/redis"
	"github.com/KirkDiggler/pokedex-api/internal/regions"
	navrepo "github.com/KirkDiggler/pokedex-api/internal/repositories/navigation"
)

const serviceName = "pokedex-api"

var (
	grpcPort    int
	redisURL    string
	regionsFile string
	logLevel    string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the Pokedex gRPC server. Settings come from POKEDEX_* environment
variables; flags take precedence.`,
	RunE: runServer,
}

func init() {
	bindServerFlags(serverCmd)
}

func bindServerFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis address for navigation sessions (in-memory when empty)")
	cmd.Flags().StringVar(&regionsFile, "regions-file", "", "YAML file replacing the built-in region table")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, otel.Config{
		Endpoint:    cfg.OTelEndpoint,
		ServiceName: serviceName,
		SampleRatio: cfg.OTelSampleRatio,
	})
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("Failed to flush traces", "error", err)
		}
	}()

	handler, closeDeps, err := buildHandler(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDeps()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to listen on port %d", cfg.Port)
	}

	srv, healthServer := newGRPCServer(logger, handler)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Port)
		if err := srv.Serve(lis); err != nil {
			errChan <- errors.Wrap(err, "failed to serve")
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-time.After(cfg.ShutdownGrace):
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}
		return nil
	case err := <-errChan:
		return err
	}
}

// buildHandler wires the catalog, PokeAPI client, orchestrators and session store
func buildHandler(ctx context.Context, cfg *serverConfig) (*v1alpha1.Handler, func(), error) {
	catalog := regions.Default()
	if cfg.RegionsFile != "" {
		loaded, err := regions.LoadFile(cfg.RegionsFile)
		if err != nil {
			return nil, nil, err
		}
		catalog = loaded
		slog.Info("Loaded region table", "path", cfg.RegionsFile, "regions", len(catalog.List()))
	}

	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     cfg.PokeAPIBaseURL,
		HTTPTimeout: cfg.HTTPTimeout,
		UserAgent:   serviceName,
	})
	if err != nil {
		return nil, nil, err
	}

	regionService, err := region.NewOrchestrator(&region.Config{
		Client:         client,
		Catalog:        catalog,
		MaxConcurrency: cfg.MaxConcurrency,
	})
	if err != nil {
		return nil, nil, err
	}

	evolutionService, err := evolution.NewOrchestrator(&evolution.Config{
		Client:        client,
		MaxChainDepth: cfg.MaxChainDepth,
	})
	if err != nil {
		return nil, nil, err
	}

	repo, closeRepo, err := newSessionRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	navigationService, err := navigation.NewOrchestrator(&navigation.Config{
		Repository:  repo,
		Regions:     regionService,
		Evolution:   evolutionService,
		IDGenerator: idgen.NewUUID("nav"),
		MaxDepth:    cfg.MaxNavDepth,
	})
	if err != nil {
		closeRepo()
		return nil, nil, err
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		RegionService:     regionService,
		EvolutionService:  evolutionService,
		NavigationService: navigationService,
	})
	if err != nil {
		closeRepo()
		return nil, nil, err
	}

	return handler, closeRepo, nil
}

func newSessionRepository(ctx context.Context, cfg *serverConfig) (navrepo.Repository, func(), error) {
	if cfg.RedisURL == "" {
		repo, err := navrepo.NewInMemory(&navrepo.InMemoryConfig{Clock: clock.New(), TTL: cfg.SessionTTL})
		if err != nil {
			return nil, nil, err
		}
		slog.Info("Using in-memory navigation sessions", "ttl", cfg.SessionTTL)
		return repo, func() {}, nil
	}

	client, err := redis.NewClient(cfg.RedisURL, &redis.Options{DialTimeout: 5 * time.Second})
	if err != nil {
		return nil, nil, err
	}
	closeClient := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore on shutdown
	}

	if err := client.Ping(ctx).Err(); err != nil {
		closeClient()
		return nil, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach redis")
	}

	repo, err := navrepo.NewRedis(&navrepo.RedisConfig{Client: client, Clock: clock.New(), TTL: cfg.SessionTTL})
	if err != nil {
		closeClient()
		return nil, nil, err
	}
	slog.Info("Using redis navigation sessions", "ttl", cfg.SessionTTL)
	return repo, closeClient, nil
}

// newGRPCServer registers the pokedex and health services behind the
// logging and recovery interceptors
func newGRPCServer(logger *slog.Logger, handler pokedexv1alpha1.PokedexServiceServer) (*grpc.Server, *health.Server) {
	logOpts := []grpc_logging.Option{
		grpc_logging.WithLogOnEvents(grpc_logging.FinishCall),
	}
	recoveryOpts := []grpc_recovery.Option{
		grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
			logger.ErrorContext(ctx, "Recovered from panic", "panic", p)
			return status.Errorf(codes.Internal, "internal error")
		}),
	}

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger), logOpts...),
			grpc_recovery.UnaryServerInterceptor(recoveryOpts...),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger), logOpts...),
			grpc_recovery.StreamServerInterceptor(recoveryOpts...),
		),
	)

	pokedexv1alpha1.RegisterPokedexServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(pokedexv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return srv, healthServer
}

// interceptorLogger adapts slog to the middleware logger; levels share values
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
