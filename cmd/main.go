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
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	adminLoginHandler "github.com/m04kA/SMC-StayBooking/internal/api/handlers/admin_login"
	cancelReservationHandler "github.com/m04kA/SMC-StayBooking/internal/api/handlers/cancel_reservation"
	createCheckoutHandler "github.com/m04kA/SMC-StayBooking/internal/api/handlers/create_checkout"
	deleteReservationHandler "github.com/m04kA/SMC-StayBooking/internal/api/handlers/delete_reservation"
	getAdminContentHandler "github.com/m04kA/SMC-StayBooking/internal/api/handlers/get_admin_content"
	getAvailabilityHandler "github.com/m04kA/SMC-StayBooking/internal/api/handlers/get_availability"
	getCheckoutSessionHandler "github.com/m04kA/SMC-StayBooking/internal/api/handlers/get_checkout_session"
	getSiteContentHandler "github.com/m04kA/SMC-StayBooking/internal/api/handlers/get_site_content"
	listReservationsHandler "github.com/m04kA/SMC-StayBooking/internal/api/handlers/list_reservations"
	lookupReservationsHandler "github.com/m04kA/SMC-StayBooking/internal/api/handlers/lookup_reservations"
	quoteStayHandler "github.com/m04kA/SMC-StayBooking/internal/api/handlers/quote_stay"
	stripeWebhookHandler "github.com/m04kA/SMC-StayBooking/internal/api/handlers/stripe_webhook"
	updateBlockedDatesHandler "github.com/m04kA/SMC-StayBooking/internal/api/handlers/update_blocked_dates"
	updateCustomRatesHandler "github.com/m04kA/SMC-StayBooking/internal/api/handlers/update_custom_rates"
	updateReservationStatusHandler "github.com/m04kA/SMC-StayBooking/internal/api/handlers/update_reservation_status"
	updateSiteContentHandler "github.com/m04kA/SMC-StayBooking/internal/api/handlers/update_site_content"
	verifyReservationHandler "github.com/m04kA/SMC-StayBooking/internal/api/handlers/verify_reservation"
	"github.com/m04kA/SMC-StayBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StayBooking/internal/config"
	"github.com/m04kA/SMC-StayBooking/internal/infra/idempotency"
	contentRepo "github.com/m04kA/SMC-StayBooking/internal/infra/storage/content"
	"github.com/m04kA/SMC-StayBooking/internal/integrations/stripepay"
	authService "github.com/m04kA/SMC-StayBooking/internal/service/auth"
	contentService "github.com/m04kA/SMC-StayBooking/internal/service/content"
	reservationsService "github.com/m04kA/SMC-StayBooking/internal/service/reservations"
	completeCheckoutUC "github.com/m04kA/SMC-StayBooking/internal/usecase/complete_checkout"
	createCheckoutUC "github.com/m04kA/SMC-StayBooking/internal/usecase/create_checkout"
	getAvailabilityUC "github.com/m04kA/SMC-StayBooking/internal/usecase/get_availability"
	quoteStayUC "github.com/m04kA/SMC-StayBooking/internal/usecase/quote_stay"
	"github.com/m04kA/SMC-StayBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StayBooking/pkg/logger"
	"github.com/m04kA/SMC-StayBooking/pkg/metrics"
	"github.com/m04kA/SMC-StayBooking/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
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

	log.Info("Starting SMC-StayBooking...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone: %v", err)
	}

	// Метрики. nil-коллектор ничего не пишет
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	pingCancel()
	if err != nil {
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

	contentRepository := contentRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Redis для ключей идемпотентности оформления. Без него оформление работает без защиты от повторов
	var idempotencyStore middleware.IdempotencyStore
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		redisCtx, redisCancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := rdb.Ping(redisCtx).Err()
		redisCancel()
		if err != nil {
			log.Warn("Redis at %s is unavailable, idempotency keys disabled: %v", cfg.Redis.Addr, err)
		} else {
			idempotencyStore = idempotency.NewStore(rdb, cfg.Redis.IdempotencyWindow(stripepay.CheckoutSessionTTL))
			log.Info("Idempotency store connected (redis=%s)", cfg.Redis.Addr)
		}
	}

	// Платежный провайдер
	payments := stripepay.NewClient(stripepay.Config{
		SecretKey:     cfg.Stripe.SecretKey,
		WebhookSecret: cfg.Stripe.WebhookSecret,
		Currency:      cfg.Stripe.Currency,
		PropertyName:  cfg.Booking.PropertyName,
		SuccessURL:    cfg.Booking.AbsoluteURL(cfg.Stripe.SuccessURL),
		CancelURL:     cfg.Booking.AbsoluteURL(cfg.Stripe.CancelURL),
	}, log)

	// Сервисы
	authSvc := authService.NewService(authService.Config{
		Secret:       cfg.Auth.SessionSecret,
		PasswordHash: cfg.Auth.AdminPasswordHash,
		TokenTTL:     time.Duration(cfg.Auth.TokenTTL) * time.Second,
		Issuer:       cfg.Auth.Issuer,
	}, log)
	contentSvc := contentService.NewService(contentRepository, txMgr, log)
	reservationsSvc := reservationsService.NewService(
		contentRepository,
		txMgr,
		payments,
		metricsCollector,
		location,
		cfg.Booking.LookupPastDays,
		log,
	)

	// Use cases
	quoteStayUseCase := quoteStayUC.NewUseCase(contentRepository, metricsCollector, location, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(contentRepository, cfg.Booking.AvailabilityMax, location, log)
	createCheckoutUseCase := createCheckoutUC.NewUseCase(
		contentRepository,
		payments,
		txMgr,
		metricsCollector,
		location,
		log,
	)
	completeCheckoutUseCase := completeCheckoutUC.NewUseCase(
		contentRepository,
		payments,
		txMgr,
		metricsCollector,
		location,
		log,
	)

	// Handlers
	getSiteContent := getSiteContentHandler.NewHandler(contentSvc, log)
	getAdminContent := getAdminContentHandler.NewHandler(contentSvc, log)
	updateSiteContent := updateSiteContentHandler.NewHandler(contentSvc, log)
	updateBlockedDates := updateBlockedDatesHandler.NewHandler(contentSvc, log)
	updateCustomRates := updateCustomRatesHandler.NewHandler(contentSvc, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	quoteStay := quoteStayHandler.NewHandler(quoteStayUseCase, log)
	createCheckout := createCheckoutHandler.NewHandler(createCheckoutUseCase, log)
	getCheckoutSession := getCheckoutSessionHandler.NewHandler(payments, log)
	stripeWebhook := stripeWebhookHandler.NewHandler(completeCheckoutUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	lookupReservations := lookupReservationsHandler.NewHandler(reservationsSvc, log)
	verifyReservation := verifyReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)

	// Ограничение частоты для публичных операций, которые пишут или перебирают бронирования
	limit := func(h http.HandlerFunc) http.Handler { return h }
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		limit = func(h http.HandlerFunc) http.Handler { return limiter.Limit(h) }
		log.Info("Rate limit enabled: %.2f req/s, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}
	idempotent := middleware.Idempotency(idempotencyStore, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/site-content", getSiteContent.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/quote", quoteStay.Handle).Methods(http.MethodPost)
	checkout := idempotent(http.HandlerFunc(createCheckout.Handle))
	api.Handle("/checkout", limit(checkout.ServeHTTP)).Methods(http.MethodPost)
	api.Handle("/checkout/session", limit(getCheckoutSession.Handle)).Methods(http.MethodGet)

	// Вебхук провайдера: подпись проверяется в use case
	api.HandleFunc("/stripe/webhook", stripeWebhook.Handle).Methods(http.MethodPost)

	// --- Гость: поиск и отмена по email ---
	api.Handle("/reservations/lookup", limit(lookupReservations.Handle)).Methods(http.MethodGet)
	api.Handle("/reservations/{reservationId}/verify", limit(verifyReservation.Handle)).Methods(http.MethodPost)
	api.Handle("/reservations/{reservationId}/cancel", limit(cancelReservation.Handle)).Methods(http.MethodPost)

	// Вход администратора регистрируется до защищенного подроутера
	api.Handle("/admin/login", limit(adminLogin.Handle)).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Authorization: Bearer <token>)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc, log))

	admin.HandleFunc("/site-content", getAdminContent.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/site-content", updateSiteContent.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/blocked-dates", updateBlockedDates.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/custom-rates", updateCustomRates.Handle).Methods(http.MethodPut)

	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", middleware.IdempotencyHeader},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           corsHandler,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeout) * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
