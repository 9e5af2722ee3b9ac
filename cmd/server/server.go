package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/munchkin-api/internal/config"
	"github.com/KirkDiggler/munchkin-api/internal/cues"
	"github.com/KirkDiggler/munchkin-api/internal/handlers/intent"
	"github.com/KirkDiggler/munchkin-api/internal/handlers/munchkin/v1alpha1"
	"github.com/KirkDiggler/munchkin-api/internal/handlers/ws"
	"github.com/KirkDiggler/munchkin-api/internal/orchestrators/game"
	"github.com/KirkDiggler/munchkin-api/internal/pkg/clock"
	"github.com/KirkDiggler/munchkin-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/munchkin-api/internal/redis"
	"github.com/KirkDiggler/munchkin-api/internal/replication"
	"github.com/KirkDiggler/munchkin-api/internal/session"
)

var (
	httpAddr  string
	grpcPort  int
	logLevel  string
	logFormat string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the room server",
	Long:  `Start the HTTP/WebSocket and gRPC listeners. Settings come from MUNCHKIN_* variables; flags override them.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&httpAddr, "http-addr", "", "HTTP listen address (overrides MUNCHKIN_HTTP_ADDR)")
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides MUNCHKIN_GRPC_PORT)")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	serverCmd.Flags().StringVar(&logFormat, "log-format", "", "text or json")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if httpAddr != "" {
		cfg.HTTPAddr = httpAddr
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	return cfg, cfg.Validate()
}

func setupLogger(cfg *config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.LogFormat == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	store, closeStore, err := newReplicationClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	registry, err := session.NewRegistry(&session.RegistryConfig{
		Client:    store,
		RoomIDs:   idgen.NewRoomIDs(),
		PublicURL: cfg.ParsedPublicURL(),
	})
	if err != nil {
		return fmt.Errorf("failed to create room registry: %w", err)
	}
	defer registry.Close()

	bus := events.NewBus()
	sink, err := cues.NewBusSink(&cues.BusSinkConfig{Bus: bus})
	if err != nil {
		return fmt.Errorf("failed to create cue sink: %w", err)
	}

	gameService, err := game.NewOrchestrator(&game.Config{
		Cues:      sink,
		Clock:     clock.New(),
		PlayerIDs: idgen.NewPlayerIDs(),
		LogIDs:    idgen.NewLogIDs(),
		Roller:    dice.DefaultRoller,
	})
	if err != nil {
		return fmt.Errorf("failed to create game orchestrator: %w", err)
	}

	router, err := intent.NewRouter(&intent.Config{Game: gameService})
	if err != nil {
		return fmt.Errorf("failed to create intent router: %w", err)
	}

	wsHandler, err := ws.NewHandler(&ws.Config{
		Rooms:     registry,
		Router:    router,
		Bus:       bus,
		RoomIDs:   idgen.NewRoomIDs(),
		ConnIDs:   idgen.NewUUID("conn"),
		PublicURL: cfg.ParsedPublicURL(),
	})
	if err != nil {
		return fmt.Errorf("failed to create websocket handler: %w", err)
	}

	roomHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		Rooms:  registry,
		Router: router,
		Bus:    bus,
	})
	if err != nil {
		return fmt.Errorf("failed to create room handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterRoomServiceServer(srv, roomHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.RoomServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           wsHandler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve grpc: %w", err)
		}
	}()
	go func() {
		slog.Info("HTTP server starting",
			"addr", cfg.HTTPAddr,
			"backend", cfg.Backend())
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve http: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down servers...")
	case err := <-errChan:
		slog.Error("Server failed", "error", err)
		shutdown(srv, httpSrv, healthServer, cfg.ShutdownTimeout)
		return err
	}

	shutdown(srv, httpSrv, healthServer, cfg.ShutdownTimeout)
	return nil
}

func shutdown(srv *grpc.Server, httpSrv *http.Server, healthServer *health.Server, timeout time.Duration) {
	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
	defer shutdownCancel()

	// Sockets are hijacked, so Shutdown only drains plain requests; watch
	// streams end when the gRPC server stops.
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP shutdown incomplete", "error", err)
	}

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
}

func newReplicationClient(ctx context.Context, cfg *config.Config) (replication.Client, func(), error) {
	if cfg.Backend() == config.BackendMemory {
		slog.Info("Using in-memory replication; rooms are not shared between nodes")
		return replication.NewMemoryClient(), func() {}, nil
	}

	connectCtx, connectCancel := context.WithTimeout(ctx, 10*time.Second)
	defer connectCancel()

	rdb, err := redisclient.Connect(connectCtx, cfg.Redis.Addr, &redisclient.Options{
		PoolSize: cfg.Redis.PoolSize,
		UseTLS:   cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	store, err := replication.NewRedisClient(&replication.RedisConfig{
		Client:    rdb,
		KeyPrefix: cfg.Redis.KeyPrefix,
	})
	if err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("failed to create redis replication: %w", err)
	}

	return store, func() {
		if err := rdb.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}, nil
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Default().Log(ctx, slog.Level(level), msg, fields...)
}
