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

	cancelWizardHandler "github.com/facilitae/FAC-AmenityService/internal/api/handlers/cancel_wizard"
	confirmReservationHandler "github.com/facilitae/FAC-AmenityService/internal/api/handlers/confirm_reservation"
	createAmenityHandler "github.com/facilitae/FAC-AmenityService/internal/api/handlers/create_amenity"
	deleteAmenityHandler "github.com/facilitae/FAC-AmenityService/internal/api/handlers/delete_amenity"
	getAmenityHandler "github.com/facilitae/FAC-AmenityService/internal/api/handlers/get_amenity"
	getAvailableSlotsHandler "github.com/facilitae/FAC-AmenityService/internal/api/handlers/get_available_slots"
	getWizardSessionHandler "github.com/facilitae/FAC-AmenityService/internal/api/handlers/get_wizard_session"
	listAmenitiesHandler "github.com/facilitae/FAC-AmenityService/internal/api/handlers/list_amenities"
	selectAmenityHandler "github.com/facilitae/FAC-AmenityService/internal/api/handlers/select_amenity"
	selectDateTimeHandler "github.com/facilitae/FAC-AmenityService/internal/api/handlers/select_datetime"
	setDetailsHandler "github.com/facilitae/FAC-AmenityService/internal/api/handlers/set_details"
	startWizardHandler "github.com/facilitae/FAC-AmenityService/internal/api/handlers/start_wizard"
	updateAmenityHandler "github.com/facilitae/FAC-AmenityService/internal/api/handlers/update_amenity"
	wizardBackHandler "github.com/facilitae/FAC-AmenityService/internal/api/handlers/wizard_back"
	"github.com/facilitae/FAC-AmenityService/internal/api/middleware"
	"github.com/facilitae/FAC-AmenityService/internal/config"
	amenityRepo "github.com/facilitae/FAC-AmenityService/internal/infra/storage/amenity"
	reservationClient "github.com/facilitae/FAC-AmenityService/internal/integrations/reservationservice"
	amenitiesService "github.com/facilitae/FAC-AmenityService/internal/service/amenities"
	wizardService "github.com/facilitae/FAC-AmenityService/internal/service/wizard"
	getAvailableSlotsUC "github.com/facilitae/FAC-AmenityService/internal/usecase/get_available_slots"
	"github.com/facilitae/FAC-AmenityService/pkg/dbmetrics"
	"github.com/facilitae/FAC-AmenityService/pkg/logger"
	"github.com/facilitae/FAC-AmenityService/pkg/metrics"
	"github.com/facilitae/FAC-AmenityService/pkg/simpletxmanager"
	"github.com/facilitae/FAC-AmenityService/pkg/txmanager"
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

	log.Info("Starting FAC-AmenityService...")
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

	// Инициализируем клиента внешнего сервиса бронирований
	reservations := reservationClient.NewClient(
		cfg.ReservationService.URL,
		time.Duration(cfg.ReservationService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ReservationService=%s timeout=%ds)",
		cfg.ReservationService.URL, cfg.ReservationService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var amenityRepository *amenityRepo.Repository

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		amenityRepository = amenityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		amenityRepository = amenityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(amenityRepository, log)

	// Инициализируем сервисы
	amenitySvc := amenitiesService.NewService(amenityRepository, txMgr, log)
	wizardSvc := wizardService.NewService(
		getAvailableSlotsUseCase,
		amenityRepository,
		reservations,
		log,
	)

	// Запускаем janitor просроченных сессий мастера
	stopJanitorCh := make(chan struct{})
	go wizardSvc.RunJanitor(
		time.Duration(cfg.Wizard.SessionTTLMinutes)*time.Minute,
		time.Duration(cfg.Wizard.CleanupIntervalMinutes)*time.Minute,
		stopJanitorCh,
	)
	log.Info("Wizard session janitor started (ttl=%dm, interval=%dm)",
		cfg.Wizard.SessionTTLMinutes, cfg.Wizard.CleanupIntervalMinutes)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listAmenities := listAmenitiesHandler.NewHandler(amenitySvc, log)
	getAmenity := getAmenityHandler.NewHandler(amenitySvc, log)
	createAmenity := createAmenityHandler.NewHandler(amenitySvc, log)
	updateAmenity := updateAmenityHandler.NewHandler(amenitySvc, log)
	deleteAmenity := deleteAmenityHandler.NewHandler(amenitySvc, log)
	startWizard := startWizardHandler.NewHandler(wizardSvc, log)
	getWizardSession := getWizardSessionHandler.NewHandler(wizardSvc, log)
	selectAmenity := selectAmenityHandler.NewHandler(wizardSvc, log)
	selectDateTime := selectDateTimeHandler.NewHandler(wizardSvc, log)
	setDetails := setDetailsHandler.NewHandler(wizardSvc, log)
	wizardBack := wizardBackHandler.NewHandler(wizardSvc, log)
	confirmReservation := confirmReservationHandler.NewHandler(wizardSvc, log)
	cancelWizard := cancelWizardHandler.NewHandler(wizardSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог объектов
	api.HandleFunc("/amenities", listAmenities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/amenities/{amenityId}", getAmenity.Handle).Methods(http.MethodGet)

	// Доступные слоты для бронирования
	api.HandleFunc("/amenities/{amenityId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление каталогом (для администраторов комплекса) ---
	protected.HandleFunc("/amenities", createAmenity.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/amenities/{amenityId}", updateAmenity.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/amenities/{amenityId}", deleteAmenity.Handle).Methods(http.MethodDelete)

	// --- Мастер бронирования ---
	protected.HandleFunc("/wizard", startWizard.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{sessionId}", getWizardSession.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/wizard/{sessionId}/amenity", selectAmenity.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{sessionId}/datetime", selectDateTime.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{sessionId}/details", setDetails.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{sessionId}/back", wizardBack.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{sessionId}/confirm", confirmReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{sessionId}", cancelWizard.Handle).Methods(http.MethodDelete)

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

	// Останавливаем janitor и сбор метрик connection pool
	close(stopJanitorCh)
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
