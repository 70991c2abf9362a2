package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/safe_route_system/internal/config"
	v1 "github.com/shenikar/safe_route_system/internal/handler/http/v1"
	"github.com/shenikar/safe_route_system/internal/repository"
	"github.com/shenikar/safe_route_system/internal/repository/sqlite"
	"github.com/shenikar/safe_route_system/internal/routing"
	"github.com/shenikar/safe_route_system/internal/seed"
	"github.com/shenikar/safe_route_system/internal/service"
	"github.com/shenikar/safe_route_system/internal/webhook"
	"github.com/shenikar/safe_route_system/pkg/logger"
	"github.com/shenikar/safe_route_system/pkg/postgres"
	redisclient "github.com/shenikar/safe_route_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/safe_route_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// storage - репозитории выбранного драйвера и функция их закрытия
type storage struct {
	incidents service.IncidentRepository
	tollGates service.TollGateRepository
	close     func()
}

// openStorage подключает PostgreSQL (с миграциями) или файл SQLite
func openStorage(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*storage, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.WithField("path", cfg.SQLitePath).Info("Successfully opened SQLite storage")
		return &storage{
			incidents: sqlite.NewIncidentRepository(db),
			tollGates: sqlite.NewTollGateRepository(db),
			close:     func() { _ = db.Close() },
		}, nil
	default:
		log.Info("Running database migrations...")
		if err := postgres.Migrate(cfg); err != nil {
			return nil, err
		}
		log.Info("Database migrations applied successfully")

		dbpool, err := postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Info("Successfully connected to PostgreSQL")
		return &storage{
			incidents: repository.NewIncidentRepository(dbpool),
			tollGates: repository.NewTollGateRepository(dbpool),
			close:     dbpool.Close,
		}, nil
	}
}

// @title SafestPath API
// @version 1.0
// @description Women's safety route system: anonymous incident reports and safety-scored routes.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Подключение к хранилищу
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", cfg.StorageDriver, err)
	}
	defer store.close()

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Демонстрационные данные
	if cfg.SeedSampleData {
		data, err := seed.Sample()
		if err != nil {
			log.Fatalf("Failed to load sample data: %v", err)
		}
		if _, err := seed.Apply(ctx, data, store.incidents, store.tollGates, log); err != nil {
			log.Fatalf("Failed to seed sample data: %v", err)
		}
	}

	// Издатель и воркер оповещений
	alertPublisher := webhook.NewRedisAlertPublisher(redisClient)
	alertWorker := webhook.NewWorker(redisClient, log, cfg)
	alertWorker.Start(ctx)

	// Инициализация репозиториев кеша и статистики
	incidentCache := repository.NewRedisIncidentCache(redisClient, cfg.CacheTTL)
	statsRepo := repository.NewRedisStatsRepository(redisClient)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(store.incidents, incidentCache, alertPublisher, log, cfg)
	tollGateService := service.NewTollGateService(store.tollGates, log, cfg)
	routeService := service.NewRouteService(incidentService, tollGateService, routing.NewAssembler(routing.DefaultDetour()), statsRepo, log)
	statsService := service.NewStatsService(store.incidents, store.tollGates, statsRepo, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Services{
		Incidents: incidentService,
		TollGates: tollGateService,
		Routes:    routeService,
		Stats:     statsService,
	}, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), v1.RequestLogger(log), v1.CORSMiddleware(cfg))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем воркер оповещений
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
