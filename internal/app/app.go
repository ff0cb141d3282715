package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"course_companion_backend/internal/config"
	"course_companion_backend/internal/controller"
	"course_companion_backend/internal/repository"
	"course_companion_backend/internal/service"
	"course_companion_backend/pkg/database"
	"course_companion_backend/pkg/logger"
	"course_companion_backend/pkg/monitoring"
	"course_companion_backend/pkg/security"
	"course_companion_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	course       *repository.CourseRepository
	chapter      *repository.ChapterRepository
	quiz         *repository.QuizRepository
	quizAttempt  *repository.QuizAttemptRepository
	progress     *repository.ProgressRepository
	subscription *repository.SubscriptionRepository
	hybridUsage  *repository.HybridUsageRepository
}

type services struct {
	content  *service.ContentService
	quiz     *service.QuizService
	progress *service.ProgressService
	access   *service.AccessService
	search   *service.SearchService
	hybrid   *service.HybridService
}

type controllers struct {
	health   *controller.HealthController
	course   *controller.CourseController
	chapter  *controller.ChapterController
	quiz     *controller.QuizController
	progress *controller.ProgressController
	search   *controller.SearchController
	hybrid   *controller.HybridController
	access   *controller.AccessController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 热更新回调入口，由配置监听器触发
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		course:       repository.NewCourseRepository(db),
		chapter:      repository.NewChapterRepository(db),
		quiz:         repository.NewQuizRepository(db),
		quizAttempt:  repository.NewQuizAttemptRepository(db),
		progress:     repository.NewProgressRepository(db),
		subscription: repository.NewSubscriptionRepository(db),
		hybridUsage:  repository.NewHybridUsageRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	provider := service.NewIntelligenceProvider(cfg.AI)

	return &services{
		content:  service.NewContentService(repos.course, repos.chapter, repos.quiz, rdb),
		quiz:     service.NewQuizService(repos.quiz, repos.quizAttempt, repos.progress, db),
		progress: service.NewProgressService(repos.course, repos.chapter, repos.progress, db),
		access:   service.NewAccessService(repos.subscription),
		search:   service.NewSearchService(db),
		hybrid:   service.NewHybridService(repos.course, repos.chapter, repos.hybridUsage, provider),
	}
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		health:   controller.NewHealthController(),
		course:   controller.NewCourseController(s.content),
		chapter:  controller.NewChapterController(s.content),
		quiz:     controller.NewQuizController(s.content, s.quiz),
		progress: controller.NewProgressController(s.progress),
		search:   controller.NewSearchController(s.search),
		hybrid:   controller.NewHybridController(s.hybrid),
		access:   controller.NewAccessController(s.access),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis 只做内容缓存，连不上时降级为直查数据库
		logger.Log.Warn("Redis unavailable, content cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	controllers := app.initControllers(services)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("course-companion", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
