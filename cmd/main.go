package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-SlotBooking/internal/api/handlers/cancel_booking"
	checkCancellableHandler "github.com/m04kA/SMC-SlotBooking/internal/api/handlers/check_cancellable"
	createBookingHandler "github.com/m04kA/SMC-SlotBooking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SlotBooking/internal/api/handlers/get_available_slots"
	getConfigHandler "github.com/m04kA/SMC-SlotBooking/internal/api/handlers/get_config"
	listAppointmentsHandler "github.com/m04kA/SMC-SlotBooking/internal/api/handlers/list_appointments"
	listMyAppointmentsHandler "github.com/m04kA/SMC-SlotBooking/internal/api/handlers/list_my_appointments"
	updateConfigHandler "github.com/m04kA/SMC-SlotBooking/internal/api/handlers/update_config"
	"github.com/m04kA/SMC-SlotBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SlotBooking/internal/config"
	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	appointmentsService "github.com/m04kA/SMC-SlotBooking/internal/service/appointments"
	scheduleService "github.com/m04kA/SMC-SlotBooking/internal/service/schedule"
	cancelBookingUC "github.com/m04kA/SMC-SlotBooking/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SMC-SlotBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SlotBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SlotBooking/pkg/clock"
	"github.com/m04kA/SMC-SlotBooking/pkg/logger"
	"github.com/m04kA/SMC-SlotBooking/pkg/metrics"
)

func main() {
	configPath := os.Getenv("SLOTBOOKING_CONFIG")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-SlotBooking...")
	log.Info("Configuration loaded from %s (storage=%s)", configPath, cfg.Storage.Driver)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	loc, err := cfg.Booking.LoadLocation()
	if err != nil {
		log.Fatal("Failed to load location: %v", err)
	}
	clk := clock.New(loc)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStart()

	// Подключаем хранилище
	store, err := openStorage(startCtx, cfg, metricsCollector, log)
	if err != nil {
		log.Fatal("Failed to open storage: %v", err)
	}
	defer store.shutdown()

	if err := seedAccounts(startCtx, store.accounts, cfg.Accounts, log); err != nil {
		log.Fatal("Failed to seed accounts: %v", err)
	}

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(store.schedule, cfg.Booking.Fallback(), log)
	appointmentsSvc := appointmentsService.NewService(store.appointments, clk, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		scheduleSvc,
		store.appointments,
		clk,
		metricsCollector,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		store.appointments,
		scheduleSvc,
		clk,
		metricsCollector,
		cfg.Booking.Strict(),
		log,
	)

	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		store.appointments,
		store.tx,
		clk,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getConfig := getConfigHandler.NewHandler(scheduleSvc, log)
	updateConfig := updateConfigHandler.NewHandler(scheduleSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	listMyAppointments := listMyAppointmentsHandler.NewHandler(appointmentsSvc, log)
	checkCancellable := checkCancellableHandler.NewHandler(appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(store.accounts, log))

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Свободные слоты в пределах горизонта
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Текущая конфигурация расписания
	api.HandleFunc("/config", getConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-Email header)
	// ============================================================

	anyone := middleware.RequireRoles(log, domain.RoleClient, domain.RoleProvider)
	providerOnly := middleware.RequireRoles(log, domain.RoleProvider)
	clientOnly := middleware.RequireRoles(log, domain.RoleClient)

	// --- Расписание ---
	api.Handle("/config", providerOnly(http.HandlerFunc(updateConfig.Handle))).Methods(http.MethodPut)

	// --- Записи ---
	api.Handle("/appointments", anyone(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)
	api.Handle("/appointments", providerOnly(http.HandlerFunc(listAppointments.Handle))).Methods(http.MethodGet)
	api.Handle("/appointments/mine", clientOnly(http.HandlerFunc(listMyAppointments.Handle))).Methods(http.MethodGet)
	api.Handle("/appointments/{id:[0-9]+}/cancellable", anyone(http.HandlerFunc(checkCancellable.Handle))).Methods(http.MethodGet)
	api.Handle("/appointments/{id:[0-9]+}", anyone(http.HandlerFunc(cancelBooking.Handle))).Methods(http.MethodDelete)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
