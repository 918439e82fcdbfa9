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
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	createBookingHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/create_booking"
	createRoomHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/create_room"
	deleteBookingHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/delete_booking"
	deleteRoomHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/delete_room"
	deleteUserHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/delete_user"
	forgotResetHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/forgot_reset"
	forgotSendOTPHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/forgot_send_otp"
	getDashboardHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/get_dashboard"
	getProfileHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/get_profile"
	getSchedulerHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/get_scheduler"
	healthzHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/healthz"
	listRoomsHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/list_rooms"
	listUsersHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/list_users"
	loginHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/logout"
	profileChangePasswordHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/profile_change_password"
	profileSendOTPHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/profile_send_otp"
	profileUpdateHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/profile_update"
	registerConfirmHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/register_confirm"
	registerSendOTPHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/register_send_otp"
	updateRoomHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/update_room"
	updateUserHandler "github.com/m04kA/EduManager-BookingService/internal/api/handlers/update_user"
	"github.com/m04kA/EduManager-BookingService/internal/api/middleware"
	"github.com/m04kA/EduManager-BookingService/internal/config"
	"github.com/m04kA/EduManager-BookingService/internal/domain"
	otpStore "github.com/m04kA/EduManager-BookingService/internal/infra/cache/otp"
	sessionStore "github.com/m04kA/EduManager-BookingService/internal/infra/cache/session"
	bookingRepo "github.com/m04kA/EduManager-BookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/EduManager-BookingService/internal/infra/storage/room"
	userRepo "github.com/m04kA/EduManager-BookingService/internal/infra/storage/user"
	"github.com/m04kA/EduManager-BookingService/internal/integrations/mailer"
	authService "github.com/m04kA/EduManager-BookingService/internal/service/auth"
	bookingsService "github.com/m04kA/EduManager-BookingService/internal/service/bookings"
	profileService "github.com/m04kA/EduManager-BookingService/internal/service/profile"
	roomsService "github.com/m04kA/EduManager-BookingService/internal/service/rooms"
	usersService "github.com/m04kA/EduManager-BookingService/internal/service/users"
	createBookingUC "github.com/m04kA/EduManager-BookingService/internal/usecase/create_booking"
	seedDefaultsUC "github.com/m04kA/EduManager-BookingService/internal/usecase/seed_defaults"
	"github.com/m04kA/EduManager-BookingService/pkg/dbmetrics"
	"github.com/m04kA/EduManager-BookingService/pkg/logger"
	"github.com/m04kA/EduManager-BookingService/pkg/metrics"
	"github.com/m04kA/EduManager-BookingService/pkg/password"
	"github.com/m04kA/EduManager-BookingService/pkg/txmanager"
)

const healthCheckTimeout = 2 * time.Second

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

	log.Info("Starting EduManager-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены). nil коллектор метрики не собирает
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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	// Подключаемся к Redis (сессии и одноразовые коды)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
	}
	pingCancel()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем репозитории и хранилища
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	roomRepository := roomRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	sessions := sessionStore.NewStore(redisClient, time.Duration(cfg.Session.TTLMinutes)*time.Minute)
	otps := otpStore.NewStore(redisClient, time.Duration(cfg.OTP.TTLMinutes)*time.Minute, domain.OTPLength)
	hasher := password.NewHasher(cfg.Security.BcryptCost)

	// Инициализируем интеграционных клиентов
	mailClient := mailer.NewClient(
		mailer.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		},
		time.Duration(cfg.SMTP.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	log.Info("Mail client initialized (host=%s, port=%d)", cfg.SMTP.Host, cfg.SMTP.Port)

	// Инициализируем сервисы
	authSvc := authService.NewService(userRepository, otps, sessions, mailClient, hasher, log)
	profileSvc := profileService.NewService(userRepository, bookingRepository, otps, mailClient, hasher, log)
	usersSvc := usersService.NewService(userRepository, hasher, log)
	roomsSvc := roomsService.NewService(roomRepository, bookingRepository, txMgr, log)
	bookingSvc := bookingsService.NewService(bookingRepository, roomRepository, txMgr, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		roomRepository,
		bookingRepository,
		txMgr,
		metricsCollector,
		log,
	)
	seedUseCase := seedDefaultsUC.NewUseCase(userRepository, roomRepository, hasher, txMgr, log)

	// Начальные данные: администратор и комнаты
	if _, err := seedUseCase.Execute(context.Background(), seedRequest(cfg.Seed)); err != nil {
		log.Fatal("Failed to seed default data: %v", err)
	}

	// Инициализируем handlers
	cookie := handlers.SessionCookie{
		Name:   cfg.Session.CookieName,
		TTL:    sessions.TTL(),
		Secure: cfg.Session.Secure,
	}

	registerSendOTP := registerSendOTPHandler.NewHandler(authSvc, log)
	registerConfirm := registerConfirmHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, cookie, log)
	logout := logoutHandler.NewHandler(authSvc, cookie, log)
	forgotSendOTP := forgotSendOTPHandler.NewHandler(authSvc, log)
	forgotReset := forgotResetHandler.NewHandler(authSvc, log)

	getProfile := getProfileHandler.NewHandler(profileSvc, log)
	profileSendOTP := profileSendOTPHandler.NewHandler(profileSvc, log)
	profileUpdate := profileUpdateHandler.NewHandler(profileSvc, log)
	profileChangePassword := profileChangePasswordHandler.NewHandler(profileSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getScheduler := getSchedulerHandler.NewHandler(bookingSvc, log)
	getDashboard := getDashboardHandler.NewHandler(bookingSvc, log)

	listRooms := listRoomsHandler.NewHandler(roomsSvc, log)
	createRoom := createRoomHandler.NewHandler(roomsSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomsSvc, log)
	deleteRoom := deleteRoomHandler.NewHandler(roomsSvc, log)

	listUsers := listUsersHandler.NewHandler(usersSvc, log)
	updateUser := updateUserHandler.NewHandler(usersSvc, log)
	deleteUser := deleteUserHandler.NewHandler(usersSvc, log)

	healthz := healthzHandler.NewHandler(map[string]healthzHandler.Check{
		"postgres": wrappedDB.PingContext,
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	}, healthCheckTimeout, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.MetricsMiddleware(metricsCollector))

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	r.HandleFunc("/healthz", healthz.Handle).Methods(http.MethodGet)

	// Ограничение частоты для маршрутов, отправляющих письма
	limited := func(h http.HandlerFunc) http.HandlerFunc { return h }
	if cfg.RateLimit.Enabled {
		limiter, err := middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerMinute,
			cfg.RateLimit.Burst,
			cfg.RateLimit.TrustedProxies,
			log,
		)
		if err != nil {
			log.Fatal("Failed to initialize rate limiter: %v", err)
		}
		limited = func(h http.HandlerFunc) http.HandlerFunc { return limiter.Middleware(h).ServeHTTP }
		log.Info("Rate limiting enabled for OTP routes (%.1f req/min, burst=%d, trusted proxies=%v)",
			cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.TrustedProxies)
	}

	// Сессия определяется для всех маршрутов, дальше проверяются права
	auth := middleware.NewAuth(cfg.Session.CookieName, sessions, userRepository, log)
	r.Use(auth.Middleware)

	session := func(h http.HandlerFunc) http.Handler { return middleware.Chain(h, middleware.RequireSession) }
	staff := func(h http.HandlerFunc) http.Handler { return middleware.Chain(h, middleware.RequireStaff) }
	admin := func(h http.HandlerFunc) http.Handler { return middleware.Chain(h, middleware.RequireAdmin) }

	// Выход доступен и по прямой ссылке
	r.HandleFunc("/logout", logout.Handle).Methods(http.MethodPost, http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/register/send-otp", limited(registerSendOTP.Handle)).Methods(http.MethodPost)
	api.HandleFunc("/register/confirm", registerConfirm.Handle).Methods(http.MethodPost)
	api.HandleFunc("/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/logout", logout.Handle).Methods(http.MethodPost, http.MethodGet)
	api.HandleFunc("/forgot/send-otp", limited(forgotSendOTP.Handle)).Methods(http.MethodPost)
	api.HandleFunc("/forgot/reset", forgotReset.Handle).Methods(http.MethodPost)

	// ============================================================
	// SESSION ROUTES
	// ============================================================

	api.Handle("/profile", session(getProfile.Handle)).Methods(http.MethodGet)
	api.Handle("/profile/send-otp", session(limited(profileSendOTP.Handle))).Methods(http.MethodPost)
	api.Handle("/profile/update", session(profileUpdate.Handle)).Methods(http.MethodPost)
	api.Handle("/profile/change-password", session(profileChangePassword.Handle)).Methods(http.MethodPost)

	api.Handle("/bookings", session(getScheduler.Handle)).Methods(http.MethodGet)
	api.Handle("/dashboard", session(getDashboard.Handle)).Methods(http.MethodGet)
	api.Handle("/rooms", session(listRooms.Handle)).Methods(http.MethodGet)

	// ============================================================
	// STAFF ROUTES (admin, teacher)
	// ============================================================

	api.Handle("/bookings/create", staff(createBooking.Handle)).Methods(http.MethodPost)
	api.Handle("/bookings/delete", staff(deleteBooking.Handle)).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	api.Handle("/rooms/create", admin(createRoom.Handle)).Methods(http.MethodPost)
	api.Handle("/rooms/update", admin(updateRoom.Handle)).Methods(http.MethodPost)
	api.Handle("/rooms/delete", admin(deleteRoom.Handle)).Methods(http.MethodPost)

	api.Handle("/users", admin(listUsers.Handle)).Methods(http.MethodGet)
	api.Handle("/users/update", admin(updateUser.Handle)).Methods(http.MethodPost)
	api.Handle("/users/delete", admin(deleteUser.Handle)).Methods(http.MethodPost)

	// CORS для фронтенда (cookie сессии передаются с credentials)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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

func seedRequest(cfg config.SeedConfig) seedDefaultsUC.Request {
	rooms := make([]seedDefaultsUC.Room, 0, len(cfg.Rooms))
	for _, r := range cfg.Rooms {
		rooms = append(rooms, seedDefaultsUC.Room{
			Name:      r.Name,
			Capacity:  r.Capacity,
			Equipment: r.Equipment,
		})
	}
	return seedDefaultsUC.Request{
		Admin: seedDefaultsUC.Admin{
			Username: cfg.AdminUsername,
			Password: cfg.AdminPassword,
			FullName: cfg.AdminFullName,
			Email:    cfg.AdminEmail,
			Phone:    cfg.AdminPhone,
		},
		Rooms: rooms,
	}
}
