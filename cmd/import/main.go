package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/config"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/logger"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/service"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/types"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/validator"
)

// Reads one exported stock sheet, runs it through the normalizer and reports
// the import statistics. The resulting batch is handed to the record store by
// the surrounding application; this entrypoint is the operator's dry run for
// a feed file.

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	l, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	validator.NewValidator()

	feedPath := flag.String("feed", cfg.Stock.FeedPath, "path to the exported stock sheet (CSV)")
	flag.Parse()

	if *feedPath == "" {
		l.Fatalw("no feed path given; set -feed or stock.feedpath")
	}

	content, err := os.ReadFile(*feedPath)
	if err != nil {
		l.Fatalw("failed to read feed file", "path", *feedPath, "error", err)
	}

	sheet, err := service.NewCSVProcessor(l).ReadSheet(content)
	if err != nil {
		l.Fatalw("failed to parse feed file", "path", *feedPath, "error", err)
	}

	params := service.ServiceParams{
		Logger: l,
		Config: cfg,
	}

	ctx := context.WithValue(context.Background(), types.CtxRequestID, types.GenerateUUID())

	result, err := service.NewStockImportService(params).ImportSheet(ctx, sheet)
	if err != nil {
		l.Fatalw("import aborted", "error", err)
	}

	for _, msg := range result.DisplayErrors() {
		l.Warnw("row skipped", "detail", msg)
	}
}
