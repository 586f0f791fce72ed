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

	cancelReservationHandler "github.com/faithworks/FWS-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/faithworks/FWS-ReservationService/internal/api/handlers/create_reservation"
	getBookedSlotsHandler "github.com/faithworks/FWS-ReservationService/internal/api/handlers/get_booked_slots"
	getEquipmentItemHandler "github.com/faithworks/FWS-ReservationService/internal/api/handlers/get_equipment_item"
	getFacilityHandler "github.com/faithworks/FWS-ReservationService/internal/api/handlers/get_facility"
	getReservationHandler "github.com/faithworks/FWS-ReservationService/internal/api/handlers/get_reservation"
	listApprovalsHandler "github.com/faithworks/FWS-ReservationService/internal/api/handlers/list_approvals"
	listEquipmentHandler "github.com/faithworks/FWS-ReservationService/internal/api/handlers/list_equipment"
	listFacilitiesHandler "github.com/faithworks/FWS-ReservationService/internal/api/handlers/list_facilities"
	listFacilityReservationsHandler "github.com/faithworks/FWS-ReservationService/internal/api/handlers/list_facility_reservations"
	releaseAllocationsHandler "github.com/faithworks/FWS-ReservationService/internal/api/handlers/release_allocations"
	requestEquipmentHandler "github.com/faithworks/FWS-ReservationService/internal/api/handlers/request_equipment"
	resolveApprovalHandler "github.com/faithworks/FWS-ReservationService/internal/api/handlers/resolve_approval"
	"github.com/faithworks/FWS-ReservationService/internal/api/middleware"
	"github.com/faithworks/FWS-ReservationService/internal/config"
	allocationRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/allocation"
	approvalRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/approval"
	equipmentRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/equipment"
	facilityRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/facility"
	reservationRepo "github.com/faithworks/FWS-ReservationService/internal/infra/storage/reservation"
	identityServiceClient "github.com/faithworks/FWS-ReservationService/internal/integrations/identityservice"
	"github.com/faithworks/FWS-ReservationService/internal/queue"
	approvalsService "github.com/faithworks/FWS-ReservationService/internal/service/approvals"
	catalogService "github.com/faithworks/FWS-ReservationService/internal/service/catalog"
	reservationsService "github.com/faithworks/FWS-ReservationService/internal/service/reservations"
	createReservationUC "github.com/faithworks/FWS-ReservationService/internal/usecase/create_reservation"
	getBookedSlotsUC "github.com/faithworks/FWS-ReservationService/internal/usecase/get_booked_slots"
	releaseAllocationsUC "github.com/faithworks/FWS-ReservationService/internal/usecase/release_allocations"
	requestEquipmentUC "github.com/faithworks/FWS-ReservationService/internal/usecase/request_equipment"
	resolveApprovalUC "github.com/faithworks/FWS-ReservationService/internal/usecase/resolve_approval"
	"github.com/faithworks/FWS-ReservationService/pkg/dbmetrics"
	"github.com/faithworks/FWS-ReservationService/pkg/logger"
	"github.com/faithworks/FWS-ReservationService/pkg/metrics"
	"github.com/faithworks/FWS-ReservationService/pkg/simpletxmanager"
	"github.com/faithworks/FWS-ReservationService/pkg/txmanager"
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

	log.Info("Starting FWS-ReservationService...")
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

	// Инициализируем клиент IdentityService
	identityClient := identityServiceClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	log.Info("IdentityService client initialized (url=%s, timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout)

	// Инициализируем publisher событий
	var publisher interface {
		PublishReservationConfirmed(ctx context.Context, event queue.ReservationConfirmedEvent) error
		PublishRequestApproved(ctx context.Context, event queue.RequestApprovedEvent) error
		PublishRequestRejected(ctx context.Context, event queue.RequestRejectedEvent) error
	}

	if cfg.RabbitMQ.Enabled {
		publisher = queue.NewPublisher(cfg.RabbitMQ.URL, log)
		log.Info("RabbitMQ publisher initialized (url=%s)", cfg.RabbitMQ.URL)
	} else {
		publisher = queue.NewNopPublisher(log)
		log.Info("RabbitMQ disabled, events will be logged only")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		facilityRepository    *facilityRepo.Repository
		equipmentRepository   *equipmentRepo.Repository
		reservationRepository *reservationRepo.Repository
		allocationRepository  *allocationRepo.Repository
		approvalRepository    *approvalRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		facilityRepository = facilityRepo.NewRepository(wrappedDB)
		equipmentRepository = equipmentRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		allocationRepository = allocationRepo.NewRepository(wrappedDB)
		approvalRepository = approvalRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		facilityRepository = facilityRepo.NewRepository(db)
		equipmentRepository = equipmentRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		allocationRepository = allocationRepo.NewRepository(db)
		approvalRepository = approvalRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(facilityRepository, equipmentRepository, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, facilityRepository, log)
	approvalsSvc := approvalsService.NewService(approvalRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		facilityRepository,
		approvalRepository,
		publisher,
		txMgr,
		log,
	)
	getBookedSlotsUseCase := getBookedSlotsUC.NewUseCase(
		reservationRepository,
		facilityRepository,
		log,
	)
	requestEquipmentUseCase := requestEquipmentUC.NewUseCase(
		equipmentRepository,
		allocationRepository,
		approvalRepository,
		txMgr,
		log,
	)
	releaseAllocationsUseCase := releaseAllocationsUC.NewUseCase(
		equipmentRepository,
		allocationRepository,
		txMgr,
		log,
	)
	resolveApprovalUseCase := resolveApprovalUC.NewUseCase(
		approvalRepository,
		reservationRepository,
		allocationRepository,
		equipmentRepository,
		facilityRepository,
		identityClient,
		publisher,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getBookedSlots := getBookedSlotsHandler.NewHandler(getBookedSlotsUseCase, log)
	requestEquipment := requestEquipmentHandler.NewHandler(requestEquipmentUseCase, log)
	releaseAllocations := releaseAllocationsHandler.NewHandler(releaseAllocationsUseCase, log)
	resolveApproval := resolveApprovalHandler.NewHandler(resolveApprovalUseCase, log)
	getFacility := getFacilityHandler.NewHandler(catalogSvc, log)
	listFacilities := listFacilitiesHandler.NewHandler(catalogSvc, log)
	getEquipmentItem := getEquipmentItemHandler.NewHandler(catalogSvc, log)
	listEquipment := listEquipmentHandler.NewHandler(catalogSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listFacilityReservations := listFacilityReservationsHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	listApprovals := listApprovalsHandler.NewHandler(approvalsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Каталог помещений и инвентаря
	api.HandleFunc("/facilities", listFacilities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{id}", getFacility.Handle).Methods(http.MethodGet)
	api.HandleFunc("/equipment", listEquipment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{id}", getEquipmentItem.Handle).Methods(http.MethodGet)

	// Занятость помещения на дату
	api.HandleFunc("/facilities/{id}/availability", getBookedSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования помещений ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{id}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/facilities/{id}/reservations", listFacilityReservations.Handle).Methods(http.MethodGet)

	// --- Инвентарь ---
	protected.HandleFunc("/equipment/requests", requestEquipment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/equipment/requests/{id}/release", releaseAllocations.Handle).Methods(http.MethodPatch)

	// --- Очередь согласования ---
	protected.HandleFunc("/approvals", listApprovals.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/approvals/{id}/approve", resolveApproval.HandleApprove).Methods(http.MethodPost)
	protected.HandleFunc("/approvals/{id}/reject", resolveApproval.HandleReject).Methods(http.MethodPost)

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
