package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/light-bringer/procat-variants/internal/pkg/config"
	"github.com/light-bringer/procat-variants/internal/pkg/logger"
	"github.com/light-bringer/procat-variants/internal/services"
	httptransport "github.com/light-bringer/procat-variants/internal/transport/http"
)

const serviceName = "sku-variants"

func main() {
	log := logger.New(logger.Options{ServiceName: serviceName})

	if err := godotenv.Load(); err != nil {
		log.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	log = logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.LogLevel),
		Format:      cfg.LogFormat,
	})

	if err := run(cfg, log); err != nil {
		log.Error(context.Background(), "server stopped with error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startCtx := log.WithFields(ctx, map[string]any{
		"spanner_db": cfg.SpannerDB,
		"grpc_port":  cfg.GRPCPort,
		"http_port":  cfg.HTTPPort,
	})
	log.Info(startCtx, "starting sku variant service")

	// 1. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer serviceOpts.Close()

	// 2. gRPC server carries health and reflection for probes and grpcurl
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return err
	}

	// 3. HTTP server with the catalog API
	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: httptransport.NewRouter(serviceOpts.HTTPHandler, log, serviceOpts.Registry),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info(startCtx, "grpc server listening")
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
		return grpcServer.Serve(lis)
	})

	g.Go(func() error {
		log.Info(startCtx, "http server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// 4. Graceful shutdown once a signal arrives or either server fails
	g.Go(func() error {
		<-gctx.Done()
		log.Info(context.Background(), "shutting down gracefully")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		var errs error
		errs = multierr.Append(errs, httpServer.Shutdown(shutdownCtx))

		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-shutdownCtx.Done():
			grpcServer.Stop()
			errs = multierr.Append(errs, shutdownCtx.Err())
		}
		return errs
	})

	return g.Wait()
}
