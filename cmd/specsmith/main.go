// Specsmith server: HTTP API, Socratic agents, quality-gated orchestration,
// code generation workers and retention sweeps.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/specsmith/specsmith/pkg/agents"
	"github.com/specsmith/specsmith/pkg/api"
	"github.com/specsmith/specsmith/pkg/cleanup"
	"github.com/specsmith/specsmith/pkg/config"
	"github.com/specsmith/specsmith/pkg/database"
	conflictengine "github.com/specsmith/specsmith/pkg/engine/conflict"
	qualityengine "github.com/specsmith/specsmith/pkg/engine/quality"
	"github.com/specsmith/specsmith/pkg/export"
	"github.com/specsmith/specsmith/pkg/llm"
	"github.com/specsmith/specsmith/pkg/masking"
	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/nlu"
	"github.com/specsmith/specsmith/pkg/orchestrator"
	"github.com/specsmith/specsmith/pkg/queue"
	"github.com/specsmith/specsmith/pkg/services"
	"github.com/specsmith/specsmith/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting specsmith",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := run(ctx, *configDir, httpPort, podID); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}

func run(ctx context.Context, configDir, httpPort, podID string) error {
	cfg, err := config.Initialize(ctx, configDir)
	if err != nil {
		return err
	}

	// Two logical stores; each applies its own embedded migrations on open.
	identityCfg, err := database.LoadConfigFromEnv(database.StoreIdentity)
	if err != nil {
		return err
	}
	identityDB, err := database.NewClient(ctx, database.StoreIdentity, identityCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := identityDB.Close(); err != nil {
			slog.Error("Error closing identity store", "error", err)
		}
	}()

	workCfg, err := database.LoadConfigFromEnv(database.StoreWork)
	if err != nil {
		return err
	}
	workDB, err := database.NewClient(ctx, database.StoreWork, workCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := workDB.Close(); err != nil {
			slog.Error("Error closing work store", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL stores")

	// LLM gateway. grpc dials lazily; the first completion call connects.
	provider, err := cfg.DefaultLLMProvider()
	if err != nil {
		return err
	}
	llmAddr := getEnv("LLM_SERVICE_ADDR", "localhost:50051")
	llmClient, err := llm.NewGRPCClient(llmAddr, provider)
	if err != nil {
		return err
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM gateway initialized", "addr", llmAddr, "model", provider.Model)

	masker, err := masking.NewMasker(cfg.Masking)
	if err != nil {
		return err
	}

	engine, err := qualityengine.NewEngine(cfg.Quality, cfg.Bias, cfg.Optimizer)
	if err != nil {
		return err
	}
	detector := conflictengine.NewDetector(conflictengine.NewLLMChecker(llmClient, provider.Model), slog.Default())
	nluService := nlu.NewService(llmClient, provider.Model, cfg.NLU, slog.Default())

	// Services. Identity entities live in one store, everything else in the
	// other; cross-store references stay opaque IDs.
	users := services.NewUserService(identityDB.Client)
	projects := services.NewProjectService(workDB.Client)
	sessions := services.NewSessionService(workDB.Client, projects)
	specs := services.NewSpecificationService(workDB.Client, detector, slog.Default())
	conflicts := services.NewConflictService(workDB.Client, projects, cfg.Quality, slog.Default())
	questions := services.NewQuestionService(workDB.Client)
	generated := services.NewGeneratedService(workDB.Client, projects)
	activity := services.NewActivityService(workDB.Client, projects, slog.Default())
	metrics := services.NewQualityMetricService(workDB.Client)
	slog.Info("Services initialized", "config", cfg.Stats())

	chatAgent := agents.NewDirectChatAgent(llmClient, provider.Model, nluService, sessions, masker)
	registry := agents.NewRegistry(
		agents.NewSocraticAgent(llmClient, provider.Model, sessions, specs, questions),
		agents.NewContextAgent(llmClient, provider.Model, sessions, specs, masker),
		agents.NewConflictAgent(conflicts, specs),
		agents.NewQualityAgent(engine, projects, specs, conflicts, metrics),
		chatAgent,
		agents.NewProjectManagerAgent(projects, activity),
		agents.NewCodeGeneratorAgent(engine, projects, specs, conflicts, generated, activity),
	)
	orch := orchestrator.New(registry, engine, projects, specs, conflicts, metrics, cfg.Quality, slog.Default())
	// Chat-parsed operations re-enter the orchestrator through this hook.
	chatAgent.SetRouter(func(ctx context.Context, identity models.Identity, agentID, action string, payload agents.Payload) (any, error) {
		return orch.Route(ctx, identity, agentID, action, payload)
	})

	// Background workers: generation queue and retention sweeps.
	builder := queue.NewSpecBuilder(llmClient, provider.Model, specs)
	pool := queue.NewPool(cfg.Queue, generated, builder, podID, slog.Default())
	pool.Start(ctx)
	defer pool.Stop()

	sweeper := cleanup.NewService(workDB.Client, cfg.Retention, slog.Default())
	sweeper.Start(ctx)
	defer sweeper.Stop()

	server := api.NewServer(api.Deps{
		IdentityDB:   identityDB,
		WorkDB:       workDB,
		Users:        users,
		Projects:     projects,
		Sessions:     sessions,
		Specs:        specs,
		Conflicts:    conflicts,
		Generated:    generated,
		Activity:     activity,
		Metrics:      metrics,
		Orchestrator: orch,
		Exporter:     export.NewExporter(projects, specs, conflicts),
		Logger:       slog.Default(),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx, ":"+httpPort)
	})

	slog.Info("Specsmith started", "pod_id", podID, "workers", cfg.Queue.WorkerCount)
	return g.Wait()
}
