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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-OvenBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-OvenBooking/internal/api/handlers/create_booking"
	deleteOvenHandler "github.com/m04kA/SMC-OvenBooking/internal/api/handlers/delete_oven"
	getBookingHandler "github.com/m04kA/SMC-OvenBooking/internal/api/handlers/get_booking"
	getOvenScheduleHandler "github.com/m04kA/SMC-OvenBooking/internal/api/handlers/get_oven_schedule"
	getPolicyHandler "github.com/m04kA/SMC-OvenBooking/internal/api/handlers/get_policy"
	getUserBookingsHandler "github.com/m04kA/SMC-OvenBooking/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/m04kA/SMC-OvenBooking/internal/api/handlers/list_bookings"
	listOvensHandler "github.com/m04kA/SMC-OvenBooking/internal/api/handlers/list_ovens"
	listUsersHandler "github.com/m04kA/SMC-OvenBooking/internal/api/handlers/list_users"
	saveOvenHandler "github.com/m04kA/SMC-OvenBooking/internal/api/handlers/save_oven"
	updateBookingHandler "github.com/m04kA/SMC-OvenBooking/internal/api/handlers/update_booking"
	updateUserRoleHandler "github.com/m04kA/SMC-OvenBooking/internal/api/handlers/update_user_role"
	"github.com/m04kA/SMC-OvenBooking/internal/api/middleware"
	"github.com/m04kA/SMC-OvenBooking/internal/config"
	bookingRepo "github.com/m04kA/SMC-OvenBooking/internal/infra/storage/booking"
	ovenRepo "github.com/m04kA/SMC-OvenBooking/internal/infra/storage/oven"
	userRepo "github.com/m04kA/SMC-OvenBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-OvenBooking/internal/policy"
	"github.com/m04kA/SMC-OvenBooking/internal/scheduler"
	bookingsService "github.com/m04kA/SMC-OvenBooking/internal/service/bookings"
	ovensService "github.com/m04kA/SMC-OvenBooking/internal/service/ovens"
	usersService "github.com/m04kA/SMC-OvenBooking/internal/service/users"
	createBookingUC "github.com/m04kA/SMC-OvenBooking/internal/usecase/create_booking"
	getOvenScheduleUC "github.com/m04kA/SMC-OvenBooking/internal/usecase/get_oven_schedule"
	updateBookingUC "github.com/m04kA/SMC-OvenBooking/internal/usecase/update_booking"
	"github.com/m04kA/SMC-OvenBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-OvenBooking/pkg/logger"
	"github.com/m04kA/SMC-OvenBooking/pkg/metrics"
	"github.com/m04kA/SMC-OvenBooking/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(config.DefaultPath)
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

	log.Info("Starting SMC-OvenBooking...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Метрики собираются всегда, endpoint и HTTP middleware включаются конфигом
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopMetricsCh := make(chan struct{})

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

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Репозитории и менеджер транзакций
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	ovenRepository := ovenRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Правила бронирования
	basePolicy, err := cfg.Booking.ToPolicy()
	if err != nil {
		log.Fatal("Invalid booking policy: %v", err)
	}

	policies := policy.NewStaticSource(basePolicy)
	if cfg.Booking.PolicyFile != "" {
		policies, err = policy.NewFileSource(basePolicy, cfg.Booking.PolicyFile, cfg.Booking.ReloadDebounce(), log.With("policy"))
		if err != nil {
			log.Fatal("Failed to load policy file: %v", err)
		}
		go func() {
			if err := policies.Watch(ctx); err != nil {
				log.Error("Policy watcher stopped: %v", err)
			}
		}()
	}

	// Сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		userRepository,
		ovenRepository,
		policies,
		metricsCollector,
		log,
	)
	ovenSvc := ovensService.NewService(ovenRepository, bookingRepository, userRepository, log)
	userSvc := usersService.NewService(userRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		ovenRepository,
		policies,
		txMgr,
		metricsCollector,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		userRepository,
		policies,
		txMgr,
		metricsCollector,
		log,
	)
	getOvenScheduleUseCase := getOvenScheduleUC.NewUseCase(bookingRepository, ovenRepository, policies, log)

	// Фоновое завершение прошедших бронирований
	var completionScheduler *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		completionScheduler = scheduler.New(bookingSvc, cfg.Scheduler.Schedule, log.With("scheduler"))
		if err := completionScheduler.Start(ctx); err != nil {
			log.Fatal("Failed to start scheduler: %v", err)
		}
		completionScheduler.RunOnce(ctx)
	}

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	listOvens := listOvensHandler.NewHandler(ovenSvc, log)
	saveOven := saveOvenHandler.NewHandler(ovenSvc, log)
	deleteOven := deleteOvenHandler.NewHandler(ovenSvc, log)
	getOvenSchedule := getOvenScheduleHandler.NewHandler(getOvenScheduleUseCase, log)
	listUsers := listUsersHandler.NewHandler(userSvc, log)
	updateUserRole := updateUserRoleHandler.NewHandler(userSvc, log)
	getPolicy := getPolicyHandler.NewHandler(policies)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := wrappedDB.PingContext(req.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/policy", getPolicy.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(userSvc, log))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Печи ---
	protected.HandleFunc("/ovens", listOvens.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/ovens", saveOven.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/ovens/{ovenId}", saveOven.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/ovens/{ovenId}", deleteOven.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/ovens/{ovenId}/schedule", getOvenSchedule.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	protected.HandleFunc("/admin/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/role", updateUserRole.Handle).Methods(http.MethodPatch)

	handler := gorillaHandlers.RecoveryHandler(gorillaHandlers.PrintRecoveryStack(true))(r)
	handler = gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.HeaderUserID, middleware.HeaderUserName, middleware.HeaderUserEmail}),
	)(handler)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	<-ctx.Done()
	log.Info("Shutting down server...")

	if completionScheduler != nil {
		completionScheduler.Stop()
	}
	close(stopMetricsCh)

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
