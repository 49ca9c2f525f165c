// emr-process runs the processing pipeline once for a single document and
// prints the resulting record id, status, and cost estimate.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/bryankwang/EMR-Processing/internal/billing"
	"github.com/bryankwang/EMR-Processing/internal/common"
	"github.com/bryankwang/EMR-Processing/internal/extract"
	"github.com/bryankwang/EMR-Processing/internal/llm"
	"github.com/bryankwang/EMR-Processing/internal/llm/openai"
	"github.com/bryankwang/EMR-Processing/internal/pipeline"
	repo "github.com/bryankwang/EMR-Processing/internal/repository"
)

func main() {
	var (
		patientFlag  = flag.String("patient", "", "patient UUID (required)")
		providerFlag = flag.String("provider", "", "provider UUID (optional)")
		fileFlag     = flag.String("file", "", "path to a .pdf or .json document (required)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if *patientFlag == "" || *fileFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: emr-process -patient <uuid> -file <path> [-provider <uuid>]")
		os.Exit(2)
	}
	patientID, err := uuid.Parse(*patientFlag)
	if err != nil {
		logger.Error("invalid patient id", "error", err)
		os.Exit(2)
	}
	var providerID *uuid.UUID
	if *providerFlag != "" {
		id, err := uuid.Parse(*providerFlag)
		if err != nil {
			logger.Error("invalid provider id", "error", err)
			os.Exit(2)
		}
		providerID = &id
	}
	content, err := os.ReadFile(*fileFlag)
	if err != nil {
		logger.Error("read document", "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	completer := openai.NewClient(openai.Config{
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	processor := pipeline.NewProcessor(
		logger,
		extract.NewExtractor(logger),
		llm.NewClient(completer, logger),
		repo.NewPatientRepository(entc, logger),
		repo.NewRecordRepository(entc, logger),
		cfg.Staging.Dir,
		pipeline.WithAuditErrors(cfg.Staging.AuditErrors),
	)

	rec, err := processor.Process(ctx, pipeline.Request{
		PatientID:  patientID,
		ProviderID: providerID,
		Filename:   filepath.Base(*fileFlag),
		Content:    content,
	})
	if err != nil {
		logger.Error("processing failed", "kind", common.KindOf(err), "error", err)
		os.Exit(1)
	}

	fmt.Printf("record_id=%s status=%s cost_estimate=%s\n",
		rec.ID, rec.Status, billing.Total(rec))
}
