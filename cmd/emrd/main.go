package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	emrpb "github.com/bryankwang/EMR-Processing/gen/proto/emr/v1"
	"github.com/bryankwang/EMR-Processing/internal/common"
	"github.com/bryankwang/EMR-Processing/internal/export"
	"github.com/bryankwang/EMR-Processing/internal/extract"
	"github.com/bryankwang/EMR-Processing/internal/llm"
	"github.com/bryankwang/EMR-Processing/internal/llm/openai"
	"github.com/bryankwang/EMR-Processing/internal/pipeline"
	repo "github.com/bryankwang/EMR-Processing/internal/repository"
	svc "github.com/bryankwang/EMR-Processing/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	patientRepo := repo.NewPatientRepository(entc, logger)
	recordRepo := repo.NewRecordRepository(entc, logger)

	completer := openai.NewClient(openai.Config{
		BaseURL:     cfg.LLM.BaseURL,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	structurer := llm.NewClient(completer, logger)
	extractor := extract.NewExtractor(logger)

	processor := pipeline.NewProcessor(
		logger,
		extractor,
		structurer,
		patientRepo,
		recordRepo,
		cfg.Staging.Dir,
		pipeline.WithAuditErrors(cfg.Staging.AuditErrors),
	)
	exporter := export.NewService(recordRepo, logger)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	emrpb.RegisterEMRServiceServer(grpcServer, svc.NewEMRService(processor, recordRepo, exporter, logger))
	emrpb.RegisterPatientsServiceServer(grpcServer, svc.NewPatientsService(patientRepo, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("emrd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
