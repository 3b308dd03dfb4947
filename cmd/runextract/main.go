package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/talentform/docextract/constants"
	"github.com/talentform/docextract/gen/ent"
	"github.com/talentform/docextract/internal/common"
	"github.com/talentform/docextract/internal/llm/openai"
	"github.com/talentform/docextract/internal/ocr"
	"github.com/talentform/docextract/internal/pipeline"
	repo "github.com/talentform/docextract/internal/repository"
	"github.com/talentform/docextract/internal/storage"
)

// runextract drives one extraction from the command line, bypassing the gRPC
// surface. Useful for poking at a document while iterating on the pipeline.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	docTypeArg := flag.String("type", "cv", "document type: cv or jd")
	force := flag.Bool("force", false, "bypass the cache and re-run OCR")
	flag.Parse()

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "runextract [-type cv|jd] [-force] <source-key>")
		os.Exit(2)
	}
	sourceKey := flag.Arg(0)
	docType, ok := constants.ParseDocumentType(*docTypeArg)
	if !ok {
		logger.Error("invalid document type", "arg", *docTypeArg)
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func(entc *ent.Client) {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}(entc)
	defer pool.Close()

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
	records := repo.NewExtractionRecordRepository(entc, logger)

	orchestrator := pipeline.NewOrchestrator(store, ocrClient, extractor, records, pipeline.Config{
		PollInterval: cfg.OCR.PollInterval,
		PollTimeout:  cfg.OCR.PollTimeout,
	}, logger)

	start := time.Now()
	result, err := orchestrator.Extract(ctx, sourceKey, docType, *force)
	dur := time.Since(start)

	if err != nil {
		logger.Error("extraction failed",
			"source_key", sourceKey, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	logger.Info("extraction OK",
		"source_key", sourceKey,
		"method", string(result.Method),
		"confidence", result.Confidence,
		"bytes", len(result.Text),
		"structured", result.StructuredJSON != nil,
		"duration_ms", dur.Milliseconds(),
	)
	fmt.Println(result.Text)
}
