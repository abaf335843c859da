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

	createAppointmentHandler "github.com/m04kA/ATL-SchedulingService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/ATL-SchedulingService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/m04kA/ATL-SchedulingService/internal/api/handlers/get_appointment"
	getAvailableTimesHandler "github.com/m04kA/ATL-SchedulingService/internal/api/handlers/get_available_times"
	getDashboardAppointmentsHandler "github.com/m04kA/ATL-SchedulingService/internal/api/handlers/get_dashboard_appointments"
	getScheduleOptionsHandler "github.com/m04kA/ATL-SchedulingService/internal/api/handlers/get_schedule_options"
	getScheduleWindowHandler "github.com/m04kA/ATL-SchedulingService/internal/api/handlers/get_schedule_window"
	updateAppointmentHandler "github.com/m04kA/ATL-SchedulingService/internal/api/handlers/update_appointment"
	"github.com/m04kA/ATL-SchedulingService/internal/api/middleware"
	"github.com/m04kA/ATL-SchedulingService/internal/catalog"
	"github.com/m04kA/ATL-SchedulingService/internal/config"
	appointmentRepo "github.com/m04kA/ATL-SchedulingService/internal/infra/storage/appointment"
	profileServiceClient "github.com/m04kA/ATL-SchedulingService/internal/integrations/profileservice"
	appointmentsService "github.com/m04kA/ATL-SchedulingService/internal/service/appointments"
	schedulerService "github.com/m04kA/ATL-SchedulingService/internal/service/scheduler"
	createAppointmentUC "github.com/m04kA/ATL-SchedulingService/internal/usecase/create_appointment"
	getAvailableTimesUC "github.com/m04kA/ATL-SchedulingService/internal/usecase/get_available_times"
	"github.com/m04kA/ATL-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/ATL-SchedulingService/pkg/logger"
	"github.com/m04kA/ATL-SchedulingService/pkg/metrics"
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

	log.Info("Starting ATL-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем клиента сервиса профилей
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	log.Info("ProfileService client initialized (url=%s, timeout=%ds)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout)

	// Инициализируем репозиторий (с метриками или без)
	var appointmentRepository *appointmentRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		cfg.Dashboard.PageSize,
		log,
	)
	schedulerSvc := schedulerService.NewService(log)

	// Инициализируем use cases
	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(
		catalog.Slots(),
		appointmentRepository,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		profileClient,
		log,
	)

	// Реестр сессий календаря: устаревшие выборки слотов отбрасываются
	availabilitySessions := schedulerService.NewSessionRegistry(getAvailableTimesUseCase, log)

	// Инициализируем handlers
	getAvailableTimes := getAvailableTimesHandler.NewHandler(availabilitySessions, log)
	getScheduleWindow := getScheduleWindowHandler.NewHandler(schedulerSvc, log)
	getScheduleOptions := getScheduleOptionsHandler.NewHandler(schedulerSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getDashboardAppointments := getDashboardAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Каждый запрос получает идентификатор
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Доступные слоты на дату
	api.HandleFunc("/schedule/available-times", getAvailableTimes.Handle).Methods(http.MethodGet)

	// Границы окна записи для календаря
	api.HandleFunc("/schedule/window", getScheduleWindow.Handle).Methods(http.MethodGet)

	// Справочники формы записи
	api.HandleFunc("/schedule/options", getScheduleOptions.Handle).Methods(http.MethodGet)

	// Создание записи (авторизация через токен сессии внутри use case)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Staff-Key header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.StaffAuth(cfg.Auth.StaffKey))

	// Дашборд записей
	protected.HandleFunc("/dashboard/appointments", getDashboardAppointments.Handle).Methods(http.MethodGet)

	// Карточка записи
	protected.HandleFunc("/appointments/{uid}", getAppointment.Handle).Methods(http.MethodGet)

	// Редактирование записи и смена статуса
	protected.HandleFunc("/appointments/{uid}", updateAppointment.Handle).Methods(http.MethodPatch)

	// Удаление записи
	protected.HandleFunc("/appointments/{uid}", deleteAppointment.Handle).Methods(http.MethodDelete)

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

	log.Info("Server stopped")
}
