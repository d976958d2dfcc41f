package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	commonmw "github.com/OrangesCloud/wealist-advanced-go-pkg/middleware"
	"task-track-tower/internal/handler"
	"task-track-tower/internal/lock"
	"task-track-tower/internal/metrics"
	"task-track-tower/internal/middleware"
	"task-track-tower/internal/repository"
	"task-track-tower/internal/service"
)

const defaultLockWait = 5 * time.Second

// Config holds router configuration
type Config struct {
	DB          *gorm.DB
	Logger      *zap.Logger
	Redis       *redis.Client
	Locker      lock.Locker
	JWTSecret   string
	BasePath    string
	CORSOrigins []string
	Metrics     *metrics.Metrics
	// Gatherer backs /metrics; defaults to the global registry
	Gatherer prometheus.Gatherer
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Locker == nil {
		cfg.Locker = lock.NewMemoryLocker(defaultLockWait)
	}
	if cfg.Gatherer == nil {
		cfg.Gatherer = prometheus.DefaultGatherer
	}

	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(commonmw.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORSOrigins...))
	r.Use(middleware.Metrics(cfg.Metrics))

	metricsHandler := gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.Redis)

	// Probes and scrape endpoint (unauthenticated)
	r.GET("/metrics", metricsHandler)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)

	// Initialize repositories
	boardRepo := repository.NewBoardRepository(cfg.DB)
	columnRepo := repository.NewColumnRepository(cfg.DB)
	taskRepo := repository.NewTaskRepository(cfg.DB)

	// Initialize services
	boardService := service.NewBoardService(boardRepo, cfg.Locker, cfg.Metrics, cfg.Logger)
	columnService := service.NewColumnService(boardRepo, columnRepo, cfg.Locker, cfg.Metrics, cfg.Logger)
	taskService := service.NewTaskService(columnRepo, taskRepo, cfg.Locker, cfg.Metrics, cfg.Logger)

	// Initialize handlers
	boardHandler := handler.NewBoardHandler(boardService, columnService)
	columnHandler := handler.NewColumnHandler(columnService)
	taskHandler := handler.NewTaskHandler(taskService)

	// API routes group
	api := r.Group(cfg.BasePath)
	if cfg.BasePath != "" && cfg.BasePath != "/" {
		api.GET("/metrics", metricsHandler)
		api.GET("/health", healthHandler.Health)
	}

	protected := api.Group("")
	if cfg.JWTSecret != "" {
		protected.Use(middleware.Auth(cfg.JWTSecret))
	}

	boards := protected.Group("/boards")
	{
		boards.GET("", boardHandler.ListBoards)
		boards.POST("", boardHandler.CreateBoard)
		boards.GET("/:boardId", boardHandler.GetBoard)
		boards.PUT("/:boardId", boardHandler.UpdateBoard)
		boards.DELETE("/:boardId", boardHandler.DeleteBoard)
		boards.GET("/:boardId/columns", boardHandler.ListColumns)
	}

	columns := protected.Group("/columns")
	{
		columns.POST("", columnHandler.CreateColumn)
		columns.PUT("/:columnId", columnHandler.UpdateColumn)
		columns.DELETE("/:columnId", columnHandler.DeleteColumn)
		columns.POST("/:columnId/move", columnHandler.MoveColumn)

		columns.POST("/:columnId/tasks", taskHandler.CreateTask)
		columns.PUT("/:columnId/tasks/:taskId", taskHandler.UpdateTask)
		columns.DELETE("/:columnId/tasks/:taskId", taskHandler.DeleteTask)
	}

	tasks := protected.Group("/tasks")
	{
		tasks.POST("/:taskId/move", taskHandler.MoveTask)
	}

	return r
}
