// Command extract runs a single PDF from disk through the statement pipeline
// and prints the resulting JSON, for local testing without the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Mirzasalman11/bank-statement-to-json/internal/config"
	"github.com/Mirzasalman11/bank-statement-to-json/internal/llm"
	"github.com/Mirzasalman11/bank-statement-to-json/internal/logger"
	"github.com/Mirzasalman11/bank-statement-to-json/internal/pdftext"
	"github.com/Mirzasalman11/bank-statement-to-json/internal/pipeline"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	pdfPath := flag.String("file", "", "path to the bank statement PDF")
	flag.Parse()

	if *pdfPath == "" {
		return fmt.Errorf("usage: extract -file statement.pdf")
	}

	_ = godotenv.Load()
	log := logger.New(os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pdfData, err := os.ReadFile(*pdfPath)
	if err != nil {
		return fmt.Errorf("read PDF at %q: %w", *pdfPath, err)
	}

	ctx := context.Background()

	extractor, err := llm.NewGeminiClient(ctx, llm.GeminiConfig{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
	})
	if err != nil {
		return fmt.Errorf("create extraction client: %w", err)
	}

	processor := pipeline.NewProcessor(pdftext.NewExtractor(log), extractor, pipeline.Config{
		MaxChunkChars:    cfg.Chunking.MaxChunkChars,
		ChunkOverlap:     cfg.Chunking.ChunkOverlap,
		AccountHeadChars: cfg.Chunking.AccountHeadChars,
		ChunkConcurrency: cfg.Chunking.ChunkConcurrency,
	}, log)

	result, err := processor.Process(ctx, pdfData)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
