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

	"github.com/callassist/CallAssist-BookingService/internal/api/handlers"
	cancelAppointmentHandler "github.com/callassist/CallAssist-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/callassist/CallAssist-BookingService/internal/api/handlers/create_appointment"
	getAnalyticsHandler "github.com/callassist/CallAssist-BookingService/internal/api/handlers/get_analytics"
	getAppointmentHandler "github.com/callassist/CallAssist-BookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/callassist/CallAssist-BookingService/internal/api/handlers/get_available_slots"
	getCallHandler "github.com/callassist/CallAssist-BookingService/internal/api/handlers/get_call"
	getCustomerAppointmentsHandler "github.com/callassist/CallAssist-BookingService/internal/api/handlers/get_customer_appointments"
	initiateCallHandler "github.com/callassist/CallAssist-BookingService/internal/api/handlers/initiate_call"
	rescheduleAppointmentHandler "github.com/callassist/CallAssist-BookingService/internal/api/handlers/reschedule_appointment"
	retellWebhookHandler "github.com/callassist/CallAssist-BookingService/internal/api/handlers/retell_webhook"
	twilioWebhookHandler "github.com/callassist/CallAssist-BookingService/internal/api/handlers/twilio_webhook"
	vapiWebhookHandler "github.com/callassist/CallAssist-BookingService/internal/api/handlers/vapi_webhook"
	"github.com/callassist/CallAssist-BookingService/internal/api/middleware"
	"github.com/callassist/CallAssist-BookingService/internal/assistant"
	"github.com/callassist/CallAssist-BookingService/internal/automation"
	"github.com/callassist/CallAssist-BookingService/internal/availability"
	"github.com/callassist/CallAssist-BookingService/internal/config"
	appointmentRepo "github.com/callassist/CallAssist-BookingService/internal/infra/storage/appointment"
	callRepo "github.com/callassist/CallAssist-BookingService/internal/infra/storage/call"
	customerRepo "github.com/callassist/CallAssist-BookingService/internal/infra/storage/customer"
	"github.com/callassist/CallAssist-BookingService/internal/scheduling"
	appointmentsService "github.com/callassist/CallAssist-BookingService/internal/service/appointments"
	callsService "github.com/callassist/CallAssist-BookingService/internal/service/calls"
	createAppointmentUC "github.com/callassist/CallAssist-BookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/callassist/CallAssist-BookingService/internal/usecase/get_available_slots"
	"github.com/callassist/CallAssist-BookingService/internal/voiceai"
	"github.com/callassist/CallAssist-BookingService/pkg/dbmetrics"
	"github.com/callassist/CallAssist-BookingService/pkg/logger"
	"github.com/callassist/CallAssist-BookingService/pkg/metrics"
	"github.com/callassist/CallAssist-BookingService/pkg/simpletxmanager"
	"github.com/callassist/CallAssist-BookingService/pkg/txmanager"
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

	log.Info("Starting CallAssist-BookingService...")
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

	// Инициализируем бэкенд бронирования.
	// Неизвестный провайдер роняет сервис на старте, до первого запроса.
	backend, err := scheduling.New(scheduling.Config{
		Provider: cfg.Scheduling.Provider,
		GoogleCalendar: scheduling.GoogleCalendarConfig{
			Token:      cfg.Scheduling.GoogleCalendar.Token,
			CalendarID: cfg.Scheduling.GoogleCalendar.CalendarID,
			Timeout:    time.Duration(cfg.Scheduling.GoogleCalendar.Timeout) * time.Second,
		},
		Calcom: scheduling.CalcomConfig{
			APIKey:      cfg.Scheduling.Calcom.APIKey,
			BaseURL:     cfg.Scheduling.Calcom.BaseURL,
			EventTypeID: cfg.Scheduling.Calcom.EventTypeID,
			Timeout:     time.Duration(cfg.Scheduling.Calcom.Timeout) * time.Second,
		},
		CRM: scheduling.CRMConfig{
			APIKey:  cfg.Scheduling.CRM.APIKey,
			BaseURL: cfg.Scheduling.CRM.BaseURL,
			Timeout: time.Duration(cfg.Scheduling.CRM.Timeout) * time.Second,
		},
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize scheduling backend: %v", err)
	}
	log.Info("Scheduling backend initialized (provider=%s)", cfg.Scheduling.Provider)

	// Инициализируем голосового провайдера
	dialer, err := voiceai.New(voiceai.Config{
		Provider: cfg.VoiceAI.Provider,
		Vapi: voiceai.VapiConfig{
			APIKey:        cfg.VoiceAI.Vapi.APIKey,
			AssistantID:   cfg.VoiceAI.Vapi.AssistantID,
			PhoneNumberID: cfg.VoiceAI.Vapi.PhoneNumberID,
			Timeout:       time.Duration(cfg.VoiceAI.Vapi.Timeout) * time.Second,
		},
		Retell: voiceai.RetellConfig{
			APIKey:     cfg.VoiceAI.Retell.APIKey,
			AgentID:    cfg.VoiceAI.Retell.AgentID,
			FromNumber: cfg.VoiceAI.Retell.FromNumber,
			Timeout:    time.Duration(cfg.VoiceAI.Retell.Timeout) * time.Second,
		},
		Twilio: voiceai.TwilioConfig{
			AccountSID: cfg.VoiceAI.Twilio.AccountSID,
			AuthToken:  cfg.VoiceAI.Twilio.AuthToken,
			FromNumber: cfg.VoiceAI.Twilio.FromNumber,
			TwimlURL:   cfg.VoiceAI.Twilio.TwimlURL,
			Timeout:    time.Duration(cfg.VoiceAI.Twilio.Timeout) * time.Second,
		},
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize voice provider: %v", err)
	}
	log.Info("Voice provider initialized (provider=%s)", cfg.VoiceAI.Provider)

	// Инициализируем платформу автоматизации
	notifier, err := automation.New(automation.Config{
		Provider:   cfg.Automation.Provider,
		WebhookURL: cfg.Automation.WebhookURL,
		Timeout:    time.Duration(cfg.Automation.Timeout) * time.Second,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize automation: %v", err)
	}
	if cfg.Automation.Provider != "" {
		log.Info("Automation initialized (provider=%s)", cfg.Automation.Provider)
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		appointments *appointmentRepo.Repository
		customers    *customerRepo.Repository
		callJournal  *callRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointments = appointmentRepo.NewRepository(wrappedDB)
		customers = customerRepo.NewRepository(wrappedDB)
		callJournal = callRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointments = appointmentRepo.NewRepository(db)
		customers = customerRepo.NewRepository(db)
		callJournal = callRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Рабочее окно слотов
	window := availability.Window{
		WorkStartHour: cfg.Business.WorkStartHour,
		WorkEndHour:   cfg.Business.WorkEndHour,
		StepMinutes:   cfg.Business.StepMinutes,
	}
	if err := window.Validate(); err != nil {
		log.Fatal("Invalid business hours configuration: %v", err)
	}

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		backend,
		appointments,
		window,
		cfg.Business.DurationMinutes,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		backend,
		cfg.Scheduling.Provider,
		appointments,
		customers,
		notifier,
		txMgr,
		cfg.Business.DurationMinutes,
		log,
	)

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointments,
		customers,
		backend,
		notifier,
		log,
	)
	callSvc := callsService.NewService(
		callJournal,
		appointments,
		dialer,
		cfg.VoiceAI.Provider,
		notifier,
		log,
	)

	// Диспетчер функций голосового ассистента
	dispatcher := assistant.NewDispatcher(
		getAvailableSlotsUseCase,
		createAppointmentUseCase,
		defaultServiceCatalog(cfg.Business.DurationMinutes),
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, callSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(appointmentSvc, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentSvc, log)
	initiateCall := initiateCallHandler.NewHandler(callSvc, log)
	getCall := getCallHandler.NewHandler(callSvc, log)
	getAnalytics := getAnalyticsHandler.NewHandler(callSvc, log)
	vapiWebhook := vapiWebhookHandler.NewHandler(callSvc, dispatcher, cfg.Webhooks.VapiSecret, log)
	retellWebhook := retellWebhookHandler.NewHandler(callSvc, cfg.Webhooks.RetellSecret, log)
	twilioWebhook := twilioWebhookHandler.NewHandler(callSvc, cfg.VoiceAI.Twilio.AuthToken, cfg.Webhooks.PublicURL, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check для балансировщика
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		if err := db.Ping(); err != nil {
			handlers.RespondError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// ============================================================
	// WEBHOOKS (подписи провайдеров вместо API токена)
	// ============================================================

	r.HandleFunc("/webhooks/vapi", vapiWebhook.Handle).Methods(http.MethodPost)
	r.HandleFunc("/webhooks/retell", retellWebhook.Handle).Methods(http.MethodPost)
	r.HandleFunc("/webhooks/twilio/voice", twilioWebhook.HandleVoice).Methods(http.MethodPost)
	r.HandleFunc("/webhooks/twilio/status", twilioWebhook.HandleStatus).Methods(http.MethodPost)

	// ============================================================
	// API ROUTES (Bearer токен)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(cfg.Auth.APIToken))

	// --- Доступность ---
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Записи ---
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/customers/{customerId}/appointments", getCustomerAppointments.Handle).Methods(http.MethodGet)

	// --- Звонки ---
	api.HandleFunc("/calls", initiateCall.Handle).Methods(http.MethodPost)
	api.HandleFunc("/calls/{callId}", getCall.Handle).Methods(http.MethodGet)

	// --- Аналитика ---
	api.HandleFunc("/analytics", getAnalytics.Handle).Methods(http.MethodGet)

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

// defaultServiceCatalog каталог услуг, который ассистент озвучивает
// по запросу get_services
func defaultServiceCatalog(defaultDuration int) []assistant.ServiceInfo {
	return []assistant.ServiceInfo{
		{Name: "Consultation", DurationMinutes: 30, Price: 50, Category: "general"},
		{Name: "Standard Appointment", DurationMinutes: defaultDuration, Price: 100, Category: "general"},
		{Name: "Extended Session", DurationMinutes: 90, Price: 150, Category: "general"},
	}
}
