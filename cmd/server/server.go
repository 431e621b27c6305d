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

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/telemetry"
	"github.com/KirkDiggler/rpg-sheet/internal/redis"
	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
)

const (
	serviceName       = "rpg-sheet"
	redisPingTimeout  = 5 * time.Second
	traceFlushTimeout = 5 * time.Second
)

var (
	grpcPort int
	storage  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the RPG Sheet gRPC server. Settings come from SHEET_* environment variables and an optional .env file.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides SHEET_PORT)")
	serverCmd.Flags().StringVar(&storage, "storage", "", "storage backend, redis or sqlite (overrides SHEET_STORAGE)")
}

func loadConfig() (*config.Config, error) {
	// a missing .env file is fine
	_ = godotenv.Load()

	if grpcPort != 0 {
		if err := os.Setenv("SHEET_PORT", fmt.Sprint(grpcPort)); err != nil {
			return nil, err
		}
	}
	if storage != "" {
		if err := os.Setenv("SHEET_STORAGE", storage); err != nil {
			return nil, err
		}
	}
	return config.Load()
}

func newRepository(ctx context.Context, cfg *config.Config) (sheetrepo.Repository, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		repo, err := sheetrepo.NewSQLite(&sheetrepo.SQLiteConfig{
			Path:  cfg.Storage.SQLitePath,
			Clock: clock.New(),
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil
	default:
		client, err := redis.NewClient(cfg.Storage.RedisAddr, &redis.Options{DB: cfg.Storage.RedisDB})
		if err != nil {
			return nil, nil, err
		}
		if err := redis.Ping(ctx, client, redisPingTimeout); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		repo, err := sheetrepo.NewRedis(&sheetrepo.RedisConfig{
			Client: client,
			Clock:  clock.New(),
		})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return repo, func() { _ = client.Close() }, nil
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Rules.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	shutdownTracing, err := telemetry.Setup(ctx, &telemetry.Config{
		ServiceName: serviceName,
		Endpoint:    cfg.Telemetry.Endpoint,
		Enabled:     cfg.Telemetry.Enabled,
	})
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), traceFlushTimeout)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("Failed to flush traces", "error", err)
		}
	}()

	repo, closeRepo, err := newRepository(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}
	defer closeRepo()

	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		EventBus:   events.NewBus(),
		DiceRoller: dice.DefaultRoller,
	})
	if err != nil {
		return fmt.Errorf("failed to create toolkit adapter: %w", err)
	}
	if cfg.Rules.Debug {
		subscription := adapter.SubscribeFieldChanges(0, logFieldChange)
		defer func() {
			if err := adapter.Unsubscribe(subscription); err != nil {
				slog.Warn("Failed to remove field change listener", "error", err)
			}
		}()
	}

	sheetService, err := sheet.NewOrchestrator(&sheet.Config{
		Repository:  repo,
		Adapter:     adapter,
		IDGenerator: idgen.NewUUID("sheet"),
		Clock:       clock.New(),
		Settings:    cfg.Rules.Settings(),
		UndoLimit:   cfg.Server.UndoLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to create sheet orchestrator: %w", err)
	}

	sheetHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		SheetService: sheetService,
	})
	if err != nil {
		return fmt.Errorf("failed to create sheet handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterSheetServiceServer(srv, sheetHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Server.Port, "storage", cfg.Storage.Backend)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
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

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}

func logFieldChange(ctx context.Context, change rpgtoolkit.FieldChange) error {
	slog.DebugContext(ctx, "Sheet field changed",
		"sheet_id", change.SheetID,
		"field", string(change.Field),
		"value", change.Value,
	)
	return nil
}
