package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/lexly/LM-BookingService/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/lexly/LM-BookingService/internal/api/handlers/complete_booking"
	confirmBookingHandler "github.com/lexly/LM-BookingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/lexly/LM-BookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/lexly/LM-BookingService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/lexly/LM-BookingService/internal/api/handlers/get_calendar"
	getPolicyHandler "github.com/lexly/LM-BookingService/internal/api/handlers/get_policy"
	getUserBookingsHandler "github.com/lexly/LM-BookingService/internal/api/handlers/get_user_bookings"
	nextUpcomingHandler "github.com/lexly/LM-BookingService/internal/api/handlers/next_upcoming"
	rescheduleBookingHandler "github.com/lexly/LM-BookingService/internal/api/handlers/reschedule_booking"
	updatePolicyHandler "github.com/lexly/LM-BookingService/internal/api/handlers/update_policy"
	"github.com/lexly/LM-BookingService/internal/api/middleware"
	"github.com/lexly/LM-BookingService/internal/config"
	bookingRepo "github.com/lexly/LM-BookingService/internal/infra/storage/booking"
	policyRepo "github.com/lexly/LM-BookingService/internal/infra/storage/policy"
	"github.com/lexly/LM-BookingService/internal/infra/storage/snapshot"
	lawyerServiceClient "github.com/lexly/LM-BookingService/internal/integrations/lawyerservice"
	bookingsService "github.com/lexly/LM-BookingService/internal/service/bookings"
	policyService "github.com/lexly/LM-BookingService/internal/service/policy"
	createBookingUC "github.com/lexly/LM-BookingService/internal/usecase/create_booking"
	getCalendarUC "github.com/lexly/LM-BookingService/internal/usecase/get_calendar"
	rescheduleBookingUC "github.com/lexly/LM-BookingService/internal/usecase/reschedule_booking"
	"github.com/lexly/LM-BookingService/pkg/logger"
	"github.com/lexly/LM-BookingService/pkg/metrics"
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

	log.Info("Starting LM-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository()
	policyRepository := policyRepo.NewRepository(cfg.DefaultPolicy())

	// Восстанавливаем бронирования из снапшота
	var snapshotStore *snapshot.Store
	if cfg.Storage.SnapshotFile != "" {
		snapshotStore = snapshot.NewStore(cfg.Storage.SnapshotFile)

		bookings, err := snapshotStore.Load()
		if err != nil {
			log.Fatal("Failed to load bookings snapshot: %v", err)
		}
		if err := bookingRepository.Restore(context.Background(), bookings); err != nil {
			log.Fatal("Failed to restore bookings from snapshot: %v", err)
		}
		log.Info("Restored %d bookings from snapshot %s", len(bookings), cfg.Storage.SnapshotFile)
	} else {
		log.Warn("Snapshot file not configured, bookings will not survive restart")
	}

	// Инициализируем интеграционного клиента каталога юристов
	lawyerClient := lawyerServiceClient.NewClient(
		cfg.LawyerService.URL,
		time.Duration(cfg.LawyerService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (LawyerService=%s timeout=%ds)",
		cfg.LawyerService.URL, cfg.LawyerService.Timeout)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	policySvc := policyService.NewService(policyRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		lawyerClient,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		policyRepository,
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(
		bookingSvc,
		getCalendarUC.RealTimeProvider{},
		log,
	)

	timeProvider := getCalendarUC.RealTimeProvider{}

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, metricsCollector, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, metricsCollector, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, timeProvider, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, metricsCollector, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	nextUpcoming := nextUpcomingHandler.NewHandler(bookingSvc, timeProvider, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getPolicy := getPolicyHandler.NewHandler(policySvc, log)
	updatePolicy := updatePolicyHandler.NewHandler(policySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Политика переносов юриста
	api.HandleFunc("/lawyers/{lawyerId}/policy", getPolicy.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)

	// --- Списки и календарь клиента ---
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/bookings/next", nextUpcoming.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// --- Управление политикой (для юристов) ---
	protected.HandleFunc("/lawyers/{lawyerId}/policy", updatePolicy.Handle).Methods(http.MethodPut)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Сохраняем снапшот бронирований перед выходом
	if snapshotStore != nil {
		bookings, err := bookingRepository.Snapshot(shutdownCtx)
		if err != nil {
			log.Error("Failed to read bookings for snapshot: %v", err)
		} else if err := snapshotStore.Save(bookings); err != nil {
			log.Error("Failed to save bookings snapshot: %v", err)
		} else {
			log.Info("Saved %d bookings to snapshot %s", len(bookings), cfg.Storage.SnapshotFile)
		}
	}

	log.Info("Server stopped gracefully")
}
