package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkBedAvailabilityHandler "github.com/m04kA/SPA-BedService/internal/api/handlers/check_bed_availability"
	createAllocationHandler "github.com/m04kA/SPA-BedService/internal/api/handlers/create_allocation"
	createBedHandler "github.com/m04kA/SPA-BedService/internal/api/handlers/create_bed"
	deleteBedHandler "github.com/m04kA/SPA-BedService/internal/api/handlers/delete_bed"
	getAvailableBedsHandler "github.com/m04kA/SPA-BedService/internal/api/handlers/get_available_beds"
	getBedHandler "github.com/m04kA/SPA-BedService/internal/api/handlers/get_bed"
	getBedDayScheduleHandler "github.com/m04kA/SPA-BedService/internal/api/handlers/get_bed_day_schedule"
	getBedsHandler "github.com/m04kA/SPA-BedService/internal/api/handlers/get_beds"
	getBedsStatusHandler "github.com/m04kA/SPA-BedService/internal/api/handlers/get_beds_status"
	getBedsWithAvailabilityHandler "github.com/m04kA/SPA-BedService/internal/api/handlers/get_beds_with_availability"
	runReconciliationHandler "github.com/m04kA/SPA-BedService/internal/api/handlers/run_reconciliation"
	updateBedHandler "github.com/m04kA/SPA-BedService/internal/api/handlers/update_bed"
	"github.com/m04kA/SPA-BedService/internal/api/middleware"
	"github.com/m04kA/SPA-BedService/internal/app"
	"github.com/m04kA/SPA-BedService/internal/config"
	allocationRepo "github.com/m04kA/SPA-BedService/internal/infra/storage/allocation"
	bedRepo "github.com/m04kA/SPA-BedService/internal/infra/storage/bed"
	catalogRepo "github.com/m04kA/SPA-BedService/internal/infra/storage/catalog"
	availabilityService "github.com/m04kA/SPA-BedService/internal/service/availability"
	bedsService "github.com/m04kA/SPA-BedService/internal/service/beds"
	statusService "github.com/m04kA/SPA-BedService/internal/service/status"
	createAllocationUC "github.com/m04kA/SPA-BedService/internal/usecase/create_allocation"
	getDayScheduleUC "github.com/m04kA/SPA-BedService/internal/usecase/get_day_schedule"
	reconcileStatusesUC "github.com/m04kA/SPA-BedService/internal/usecase/reconcile_statuses"
	"github.com/m04kA/SPA-BedService/pkg/dbmetrics"
	"github.com/m04kA/SPA-BedService/pkg/logger"
	"github.com/m04kA/SPA-BedService/pkg/metrics"
	"github.com/m04kA/SPA-BedService/pkg/simpletxmanager"
	"github.com/m04kA/SPA-BedService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SPA-BedService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции (если включены)
	if cfg.Database.AutoMigrate {
		migrator, err := app.NewMigrator(db, log)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := migrator.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bedRepository        *bedRepo.Repository
		allocationRepository *allocationRepo.Repository
		catalogRepository    *catalogRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bedRepository = bedRepo.NewRepository(wrappedDB)
		allocationRepository = allocationRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bedRepository = bedRepo.NewRepository(db)
		allocationRepository = allocationRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(bedRepository, allocationRepository, log)
	statusSvc := statusService.NewService(bedRepository, allocationRepository, log)
	bedsSvc := bedsService.NewService(bedRepository, log)

	// Инициализируем use cases
	createAllocationUseCase := createAllocationUC.NewUseCase(
		bedRepository,
		allocationRepository,
		catalogRepository,
		txMgr,
		log,
	)
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(bedRepository, allocationRepository, log)
	reconcileUseCase := reconcileStatusesUC.NewUseCase(allocationRepository, statusSvc, txMgr, log)

	// Инициализируем handlers
	checkBedAvailability := checkBedAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailableBeds := getAvailableBedsHandler.NewHandler(availabilitySvc, log)
	getBedsWithAvailability := getBedsWithAvailabilityHandler.NewHandler(availabilitySvc, log)
	getBedDaySchedule := getBedDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	getBedsStatus := getBedsStatusHandler.NewHandler(statusSvc, log)
	createAllocation := createAllocationHandler.NewHandler(createAllocationUseCase, log)
	getBeds := getBedsHandler.NewHandler(bedsSvc, log)
	getBed := getBedHandler.NewHandler(bedsSvc, log)
	createBed := createBedHandler.NewHandler(bedsSvc, log)
	updateBed := updateBedHandler.NewHandler(bedsSvc, log)
	deleteBed := deleteBedHandler.NewHandler(bedsSvc, log)
	runReconciliation := runReconciliationHandler.NewHandler(reconcileUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix с ограничением частоты запросов
	rateLimiter := middleware.NewRateLimiter(cfg.API.RateLimitRPS, cfg.API.RateLimitBurst)
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(rateLimiter.Wrap)

	// --- Доступность ---
	// Проверка доступности кровати в окне времени
	api.HandleFunc("/beds/{bedId}/availability", checkBedAvailability.Handle).Methods(http.MethodGet)

	// Список доступных кроватей в окне времени
	api.HandleFunc("/beds/available", getAvailableBeds.Handle).Methods(http.MethodGet)

	// Сетка кроватей с доступностью на дату
	api.HandleFunc("/beds/schedule", getBedsWithAvailability.Handle).Methods(http.MethodGet)

	// Расписание кровати на день
	api.HandleFunc("/beds/{bedId}/schedule", getBedDaySchedule.Handle).Methods(http.MethodGet)

	// --- Статусная доска ---
	// Кэшируем ответ: доску опрашивает каждый открытый экран
	statusCache := middleware.NewResponseCache(time.Duration(cfg.API.StatusCacheTTLSeconds) * time.Second)
	api.Handle("/beds/status", statusCache.Wrap(http.HandlerFunc(getBedsStatus.Handle))).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/allocations", createAllocation.Handle).Methods(http.MethodPost)

	// --- Управление кроватями ---
	// GET /beds/{bedId} регистрируется после литеральных путей /beds/...,
	// иначе шаблон перехватит /beds/available и /beds/status
	api.HandleFunc("/beds", getBeds.Handle).Methods(http.MethodGet)
	api.HandleFunc("/beds", createBed.Handle).Methods(http.MethodPost)
	api.HandleFunc("/beds/{bedId}", getBed.Handle).Methods(http.MethodGet)
	api.HandleFunc("/beds/{bedId}", updateBed.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/beds/{bedId}", deleteBed.Handle).Methods(http.MethodDelete)

	// --- Сверка статусов ---
	// Ручной запуск, тот же проход, что и у планировщика
	api.HandleFunc("/reconciliation/run", runReconciliation.Handle).Methods(http.MethodPost)

	// Запускаем планировщик сверки (если включен)
	schedulerCtx, schedulerCancel := context.WithCancel(context.Background())
	defer schedulerCancel()

	var scheduler *app.Scheduler
	if cfg.Scheduler.Enabled {
		scheduler = app.NewScheduler(
			reconcileUseCase,
			time.Duration(cfg.Scheduler.IntervalSeconds)*time.Second,
			log,
		)
		scheduler.Start(schedulerCtx)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем планировщик
	if scheduler != nil {
		scheduler.Stop()
	}

	// Останавливаем чистку rate limiter'а
	rateLimiter.Stop()

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
