package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/Govind-17/chat-with-syllbus/internal/ai"
	"github.com/Govind-17/chat-with-syllbus/internal/catalog"
	"github.com/Govind-17/chat-with-syllbus/internal/config"
	"github.com/Govind-17/chat-with-syllbus/internal/db"
	"github.com/Govind-17/chat-with-syllbus/internal/embedcache"
	"github.com/Govind-17/chat-with-syllbus/internal/filestore"
	"github.com/Govind-17/chat-with-syllbus/internal/handler"
	"github.com/Govind-17/chat-with-syllbus/internal/index"
	"github.com/Govind-17/chat-with-syllbus/internal/job"
	"github.com/Govind-17/chat-with-syllbus/internal/middleware"
	"github.com/Govind-17/chat-with-syllbus/internal/rag"
	"github.com/Govind-17/chat-with-syllbus/internal/schedule"
	"github.com/Govind-17/chat-with-syllbus/internal/service"
	"github.com/Govind-17/chat-with-syllbus/internal/session"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "syllabus",
		Short: "chat-with-syllabus backend server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the syllabus server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))
			return runServer(cfg)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

// buildAIStack assembles the generator and embedder, chaining fallback
// backends behind the primary when any are configured.
func buildAIStack(cfg config.AIConfig) (ai.IGenerator, ai.IEmbedder, error) {
	provider, err := ai.NewProvider(cfg.Provider, cfg.Data)
	if err != nil {
		return nil, nil, err
	}
	generators := []ai.GeneratorEntry{{Name: cfg.Provider, Generator: ai.NewGenerator(provider, cfg.Model)}}
	embedders := []ai.EmbedderEntry{{Name: cfg.Provider, Embedder: ai.NewEmbedder(provider, cfg.EmbedModel)}}
	for _, fb := range cfg.Fallbacks {
		fallback, err := ai.NewProvider(fb.Provider, fb.Data)
		if err != nil {
			return nil, nil, fmt.Errorf("fallback provider %s: %w", fb.Provider, err)
		}
		if fb.Model != "" {
			generators = append(generators, ai.GeneratorEntry{Name: fb.Provider, Generator: ai.NewGenerator(fallback, fb.Model)})
		}
		if fb.EmbedModel != "" {
			embedders = append(embedders, ai.EmbedderEntry{Name: fb.Provider, Embedder: ai.NewEmbedder(fallback, fb.EmbedModel)})
		}
	}
	return ai.NewGroupGenerator(generators), ai.NewGroupEmbedder(embedders), nil
}

func runServer(cfg *config.Config) error {
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.String("index", cfg.Index.Type),
		zap.String("ai_provider", cfg.AI.Provider),
		zap.String("file_store", cfg.FileStore.Type),
	)

	generator, embedder, err := buildAIStack(cfg.AI)
	if err != nil {
		return fmt.Errorf("init ai provider: %w", err)
	}
	embedder = embedcache.WrapLruCacheToEmbedder(embedder, cfg.AI.EmbedCache, time.Hour)

	var indexArgs interface{} = index.MemoryArgs{Embedder: embedder}
	if cfg.Index.Type == "postgres" {
		conn, err := db.Open(cfg.Database)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		if err := db.ApplyMigrations(conn); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		indexArgs = index.PGArgs{DB: conn, Embedder: embedder}
	}
	idx, err := index.New(cfg.Index.Type, indexArgs)
	if err != nil {
		return fmt.Errorf("init index: %w", err)
	}

	store, err := filestore.New(cfg.FileStore.Type, cfg.FileStore.Data)
	if err != nil {
		return fmt.Errorf("init file store: %w", err)
	}

	limiter := ai.NewRateLimiter(cfg.AI.MaxPerMinute)
	client := ai.NewClient(generator, limiter)
	fuser := rag.NewFuser(idx, cfg.Retrieval.PerVariantK)
	orchestrator := rag.NewOrchestrator(fuser, client, cfg.Retrieval.MaxContextChars)

	sessions := session.NewStore(time.Duration(cfg.Session.TTLSeconds) * time.Second)
	chatService := service.NewChatService(orchestrator, sessions)
	documentService := service.NewDocumentService(store, idx, cfg.UploadMB<<20)
	catalogService := catalog.NewService()

	deps := handler.RouterDeps{
		Chat:        handler.NewChatHandler(chatService),
		Documents:   handler.NewDocumentHandler(documentService),
		Analysis:    handler.NewAnalysisHandler(catalogService),
		AskCooldown: time.Second,
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.CORS(cfg.CORSOrigins),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}

	scheduler := schedule.NewScheduler()
	if err := scheduler.AddJob(job.NewSessionPruneJob(sessions), cfg.Session.PruneSpec); err != nil {
		return fmt.Errorf("schedule session prune: %w", err)
	}
	if err := scheduler.AddJob(job.NewIndexStatsJob(idx), "0 * * * *"); err != nil {
		return fmt.Errorf("schedule index stats: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler.Start(ctx)
	defer scheduler.Stop()

	logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))
	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}
