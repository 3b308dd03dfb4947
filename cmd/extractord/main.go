package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	extractionpb "github.com/talentform/docextract/gen/proto/extraction/v1"
	"github.com/talentform/docextract/internal/common"
	"github.com/talentform/docextract/internal/export"
	"github.com/talentform/docextract/internal/llm/openai"
	"github.com/talentform/docextract/internal/ocr"
	"github.com/talentform/docextract/internal/pipeline"
	"github.com/talentform/docextract/internal/repository"
	"github.com/talentform/docextract/internal/server"
	"github.com/talentform/docextract/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := server.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer server.CloseDB(entc, pool, logger)

	if err := server.PingDB(ctx, pool, logger, 3*time.Second); err != nil {
		logger.Error("database health failed", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewMinioGateway(storage.MinioConfig{
		Endpoint:  cfg.Store.Endpoint,
		AccessKey: cfg.Store.AccessKey,
		SecretKey: cfg.Store.SecretKey,
		Bucket:    cfg.Store.Bucket,
		UseSSL:    cfg.Store.UseSSL,
	}, logger)
	if err != nil {
		logger.Error("object store init failed", "error", err)
		os.Exit(1)
	}

	ocrClient := ocr.NewHTTPClient(ocr.Config{
		BaseURL: cfg.OCR.BaseURL,
		APIKey:  cfg.OCR.APIKey,
		Timeout: cfg.OCR.Timeout,
	}, logger)

	extractor := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	records := repository.NewExtractionRecordRepository(entc, logger)
	orchestrator := pipeline.NewOrchestrator(store, ocrClient, extractor, records, pipeline.Config{
		PollInterval: cfg.OCR.PollInterval,
		PollTimeout:  cfg.OCR.PollTimeout,
	}, logger)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(server.UnaryContextInterceptor(logger)),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	extractionpb.RegisterExtractionServiceServer(grpcServer,
		server.NewExtractionService(orchestrator, records, store, logger))
	extractionpb.RegisterExportServiceServer(grpcServer,
		server.NewExportServer(export.NewService(records, logger), logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
