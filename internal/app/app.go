package app

import (
	"context"
	"errors"
	"exam_backend/internal/config"
	"exam_backend/internal/controller"
	"exam_backend/internal/middleware"
	"exam_backend/internal/repository"
	"exam_backend/internal/service"
	"exam_backend/internal/util"
	"exam_backend/pkg/configwatcher"
	"exam_backend/pkg/database"
	"exam_backend/pkg/logger"
	"exam_backend/pkg/monitoring"
	"exam_backend/pkg/security"
	"exam_backend/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App owns every long-lived dependency. Handlers receive them through
// constructors; nothing is held in package globals.
type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	quiz         *repository.QuizRepository
	question     *repository.QuestionRepository
	answer       *repository.AnswerRepository
	attempt      *repository.AttemptRepository
	comment      *repository.CommentRepository
	documentLink *repository.DocumentLinkRepository
}

type services struct {
	storage  *service.StorageService
	answer   *service.AnswerService
	comment  *service.CommentService
	exam     *service.ExamService
	result   *service.ResultService
	document *service.DocumentService
}

type controllers struct {
	health   *controller.HealthController
	answer   *controller.AnswerController
	comment  *controller.CommentController
	exam     *controller.ExamController
	result   *controller.ResultController
	document *controller.DocumentController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	repos := &repositories{
		quiz:     repository.NewQuizRepository(db),
		question: repository.NewQuestionRepository(db),
		answer:   repository.NewAnswerRepository(db),
		attempt:  repository.NewAttemptRepository(db),
		comment:  repository.NewCommentRepository(db),
	}
	if rdb != nil {
		repos.documentLink = repository.NewDocumentLinkRepository(rdb, a.Config.Redis.LinkTTL)
	}
	return repos
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(&cfg.Storage)
	s.answer = service.NewAnswerService(repos.answer, repos.question, repos.attempt)
	s.comment = service.NewCommentService(repos.comment)
	s.result = service.NewResultService(repos.answer, repos.question)
	s.exam = service.NewExamService(
		repos.quiz,
		repos.question,
		service.NewGenExamClient(cfg.GenExam),
		service.NewWorkflowNotifier(cfg.Workflow),
	)
	s.document = service.NewDocumentService(repos.quiz, repos.question, s.storage, repos.documentLink)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		health:   controller.NewHealthController(db),
		answer:   controller.NewAnswerController(s.answer),
		comment:  controller.NewCommentController(s.comment),
		exam:     controller.NewExamController(s.exam),
		result:   controller.NewResultController(s.result),
		document: controller.NewDocumentController(s.document),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewApp connects to the store (and Redis when enabled) and builds the router.
// Startup failures are fatal.
func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}
	if cfg.ForceMigrate && !cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Log.Info("Database migration completed")
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			// The link cache is an optimisation; the object store still answers.
			logger.Log.Warn("Redis unavailable, document link cache disabled", zap.Error(err))
			rdb = nil
		}
	}

	var tp *sdktrace.TracerProvider
	if cfg.Tracing.Enabled {
		tp, err = tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	a := New(cfg, db, rdb)
	a.tracer = tp
	return a
}

// New assembles the router around already-open connections. rdb may be nil.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	a := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := a.initRepositories(db, rdb)
	svcs := a.initServices(repos, cfg)
	ctrls := a.initControllers(svcs, db)

	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	a.Router = router

	a.setupMiddlewares(router, cfg)
	a.registerRoutes(router, ctrls, cfg)

	a.RegisterConfigCallback(logger.SetLevel)
	return a
}

// Run serves HTTP until SIGINT or SIGTERM, then drains in-flight requests.
func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.watchConfig(ctx)

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
	a.Close(shutdownCtx)

	logger.Log.Info("Server exiting")
}

func (a *App) watchConfig(ctx context.Context) {
	file := filepath.Join(config.DefaultDir, "config.yaml")
	if _, err := os.Stat(file); err != nil {
		return
	}
	err := configwatcher.WatchConfig(ctx, file, func(cfg *config.Config) {
		for _, cb := range a.configCallbacks {
			cb(cfg)
		}
	})
	if err != nil {
		logger.Log.Warn("Config watcher stopped", zap.Error(err))
	}
}

// Close releases connections and flushes traces.
func (a *App) Close(ctx context.Context) {
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}
	_ = logger.Log.Sync()
}

func isLocalStorage(cfg *config.Config) bool {
	return cfg.Storage.Type == "" || cfg.Storage.Type == util.StorageLocal
}
