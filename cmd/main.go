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

	createBlackoutHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_blackout"
	createClientAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_client_appointment"
	createPublicAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_public_appointment"
	createStaffAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_staff_appointment"
	deleteBlackoutHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/delete_blackout"
	getAppointmentByProtocolHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_appointment_by_protocol"
	getAvailabilityHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_availability"
	getStaffScheduleHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_staff_schedule"
	listBlackoutsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_blackouts"
	listClientAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_client_appointments"
	listStaffAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_staff_appointments"
	updateStaffScheduleHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_staff_schedule"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	blackoutRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/blackout"
	protocolRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/protocol"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	servicecatalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/servicecatalog"
	staffprefsRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/staffprefs"
	userRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/user"
	agendaService "github.com/m04kA/SMC-SalonService/internal/service/agenda"
	appointmentsService "github.com/m04kA/SMC-SalonService/internal/service/appointments"
	durationsService "github.com/m04kA/SMC-SalonService/internal/service/durations"
	createAppointmentUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
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

	log.Info("Starting SMC-SalonService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository    *appointmentRepo.Repository
		protocolRepository       *protocolRepo.Repository
		scheduleRepository       *scheduleRepo.Repository
		blackoutRepository       *blackoutRepo.Repository
		staffprefsRepository     *staffprefsRepo.Repository
		userRepository           *userRepo.Repository
		servicecatalogRepository *servicecatalogRepo.Repository
	)

	var txMgr createAppointmentUC.TransactionManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		protocolRepository = protocolRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		blackoutRepository = blackoutRepo.NewRepository(wrappedDB)
		staffprefsRepository = staffprefsRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		servicecatalogRepository = servicecatalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		protocolRepository = protocolRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		blackoutRepository = blackoutRepo.NewRepository(db)
		staffprefsRepository = staffprefsRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		servicecatalogRepository = servicecatalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	durationResolver := durationsService.NewResolver(staffprefsRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, userRepository, log)
	agendaSvc := agendaService.NewService(scheduleRepository, blackoutRepository, userRepository, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		servicecatalogRepository,
		userRepository,
		scheduleRepository,
		blackoutRepository,
		appointmentRepository,
		durationResolver,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		servicecatalogRepository,
		userRepository,
		appointmentRepository,
		protocolRepository,
		durationResolver,
		txMgr,
		cfg.Booking.ProtocolPrefix,
		cfg.Booking.ProtocolMaxAttempts,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createPublicAppointment := createPublicAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	createClientAppointment := createClientAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	createStaffAppointment := createStaffAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointmentByProtocol := getAppointmentByProtocolHandler.NewHandler(appointmentsSvc, log)
	listClientAppointments := listClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	listStaffAppointments := listStaffAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getStaffSchedule := getStaffScheduleHandler.NewHandler(agendaSvc, log)
	updateStaffSchedule := updateStaffScheduleHandler.NewHandler(agendaSvc, log)
	createBlackout := createBlackoutHandler.NewHandler(agendaSvc, log)
	listBlackouts := listBlackoutsHandler.NewHandler(agendaSvc, log)
	deleteBlackout := deleteBlackoutHandler.NewHandler(agendaSvc, log)

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

	// Доступные слоты для записи
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Анонимная запись (посетитель без аккаунта)
	api.HandleFunc("/public/appointments", createPublicAppointment.Handle).Methods(http.MethodPost)

	// Просмотр записи по коду протокола
	api.HandleFunc("/appointments/protocol/{protocol}", getAppointmentByProtocol.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Self-service запись клиента
	protected.HandleFunc("/appointments", createClientAppointment.Handle).Methods(http.MethodPost)

	// Запись, создаваемая сотрудником (существующий клиент или walk-in)
	protected.HandleFunc("/staff/appointments", createStaffAppointment.Handle).Methods(http.MethodPost)

	// История записей клиента
	protected.HandleFunc("/me/appointments", listClientAppointments.Handle).Methods(http.MethodGet)

	// Календарь записей сотрудника
	protected.HandleFunc("/staff/me/appointments", listStaffAppointments.Handle).Methods(http.MethodGet)

	// --- Расписание сотрудника ---
	protected.HandleFunc("/staff/me/schedule", getStaffSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/staff/me/schedule", updateStaffSchedule.Handle).Methods(http.MethodPut)

	// --- Блокировки сотрудника ---
	protected.HandleFunc("/staff/me/blackouts", createBlackout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/staff/me/blackouts", listBlackouts.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/staff/me/blackouts/{blackoutId}", deleteBlackout.Handle).Methods(http.MethodDelete)

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
