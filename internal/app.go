package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apper-canvas/estate-view-connect/internal/adapters/fixture"
	logger_adapter "github.com/apper-canvas/estate-view-connect/internal/adapters/logger"
	memory_adapter "github.com/apper-canvas/estate-view-connect/internal/adapters/memory"
	postgres_adapter "github.com/apper-canvas/estate-view-connect/internal/adapters/postgres"
	rabbitmq_adapter "github.com/apper-canvas/estate-view-connect/internal/adapters/rabbitmq"
	"github.com/apper-canvas/estate-view-connect/internal/adapters/rest"
	"github.com/apper-canvas/estate-view-connect/internal/configs"
	"github.com/apper-canvas/estate-view-connect/internal/constants"
	"github.com/apper-canvas/estate-view-connect/internal/core/port"
	"github.com/apper-canvas/estate-view-connect/internal/core/usecase"
	fluentlogger "github.com/apper-canvas/estate-view-connect/pkg/fluent_logger"
	"github.com/apper-canvas/estate-view-connect/pkg/postgres"
	"github.com/apper-canvas/estate-view-connect/pkg/rabbitmq/rabbitmq_common"
	"github.com/apper-canvas/estate-view-connect/pkg/rabbitmq/rabbitmq_producer"
)

const shutdownTimeout = 10 * time.Second

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	connManager    *rabbitmq_common.ConnectionManager
	eventsProducer *rabbitmq_producer.Publisher
}

// NewApp - composition root: здесь все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	app := &App{config: appConfig}

	// --- 1. ЛОГГЕРЫ ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	if appConfig.FluentBit.Enabled {
		app.fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(app.fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			app.closeResources()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		app.closeResources()
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})
	app.logger = baseLogger.WithFields(port.Fields{"component": "app"})
	app.logger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 2. ИСХОДЯЩИЕ АДАПТЕРЫ ---
	source, err := fixture.NewPropertySource(fixture.Options{
		Latency: time.Duration(appConfig.Fixture.LatencyMS) * time.Millisecond,
	})
	if err != nil {
		app.logger.Error("Failed to load property fixture", err, nil)
		app.closeResources()
		return nil, fmt.Errorf("failed to load property fixture: %w", err)
	}
	app.logger.Info("Property source initialized.", port.Fields{"latency_ms": appConfig.Fixture.LatencyMS})

	savedRepo, err := app.newSavedRepository()
	if err != nil {
		app.closeResources()
		return nil, err
	}

	var savedEvents port.SavedEventsPort = port.NoopSavedEvents{}
	if appConfig.RabbitMQ.Enabled {
		savedEvents, err = app.newSavedEvents(baseLogger)
		if err != nil {
			app.closeResources()
			return nil, err
		}
	} else {
		app.logger.Info("RabbitMQ disabled, saved events will not be published.", nil)
	}

	// --- 3. USE CASES ---
	findPropertiesUseCase := usecase.NewFindPropertiesUseCase(source)
	getPropertyByIDUseCase := usecase.NewGetPropertyByIDUseCase(source)
	getFilterOptionsUseCase := usecase.NewGetFilterOptionsUseCase(source)

	getSavedUseCase := usecase.NewGetSavedPropertiesUseCase(savedRepo, source)
	savePropertyUseCase := usecase.NewSavePropertyUseCase(source, savedRepo, savedEvents)
	removeSavedUseCase := usecase.NewRemoveSavedPropertyUseCase(savedRepo, savedEvents)
	clearSavedUseCase := usecase.NewClearSavedPropertiesUseCase(savedRepo, savedEvents)
	toggleSavedUseCase := usecase.NewToggleSavedPropertyUseCase(savedRepo, savePropertyUseCase, removeSavedUseCase)
	updateNotesUseCase := usecase.NewUpdateSavedNotesUseCase(savedRepo)

	app.logger.Info("All use cases initialized.", nil)

	// --- 4. ВХОДЯЩИЕ АДАПТЕРЫ ---
	propertyHandler := rest.NewPropertyHandler(findPropertiesUseCase, getPropertyByIDUseCase, getFilterOptionsUseCase)
	savedHandler := rest.NewSavedHandler(getSavedUseCase, savePropertyUseCase, removeSavedUseCase,
		clearSavedUseCase, toggleSavedUseCase, updateNotesUseCase)

	app.apiServer = rest.NewServer(appConfig.Rest.PORT, appConfig.Rest.CorsAllowedOrigins,
		propertyHandler, savedHandler, baseLogger)
	app.logger.Info("REST API server configured.", nil)

	return app, nil
}

func (a *App) newSavedRepository() (port.SavedPropertyRepositoryPort, error) {
	switch a.config.SavedStore {
	case configs.SavedStorePostgres:
		dbPool, err := postgres.NewClient(context.Background(), postgres.Config{
			DatabaseURL:    a.config.Database.URL,
			ConnectTimeout: 10 * time.Second,
		})
		if err != nil {
			a.logger.Error("Failed to connect to PostgreSQL", err, nil)
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		a.dbPool = dbPool
		a.logger.Info("Successfully connected to PostgreSQL pool!", nil)

		repo, err := postgres_adapter.NewPostgresSavedPropertyRepository(dbPool)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres saved repository: %w", err)
		}
		if err := repo.EnsureSchema(context.Background()); err != nil {
			a.logger.Error("Failed to prepare saved_properties table", err, nil)
			return nil, err
		}
		return repo, nil

	default:
		seed, err := fixture.LoadSavedSeed()
		if err != nil {
			a.logger.Error("Failed to load saved property seed", err, nil)
			return nil, fmt.Errorf("failed to load saved property seed: %w", err)
		}
		a.logger.Info("In-memory saved store initialized.", port.Fields{"seeded": len(seed)})
		return memory_adapter.NewSavedPropertyRepository(seed), nil
	}
}

func (a *App) newSavedEvents(baseLogger port.LoggerPort) (port.SavedEventsPort, error) {
	connManagerBridge := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"}))
	connManager, err := rabbitmq_common.NewConnectionManager(rabbitmq_common.Config{URL: a.config.RabbitMQ.URL}, connManagerBridge)
	if err != nil {
		a.logger.Error("Failed to create connection manager", err, nil)
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	a.connManager = connManager
	a.logger.Info("RabbitMQ Connection Manager initialized.", nil)

	producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		ExchangeName:             constants.EstateViewExchange,
		ExchangeType:             constants.EstateViewExchangeType,
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger:                   rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})),
	}, connManager)
	if err != nil {
		a.logger.Error("Failed to create event producer", err, nil)
		return nil, fmt.Errorf("failed to create event producer: %w", err)
	}
	a.eventsProducer = producer
	a.logger.Info("RabbitMQ Event Producer initialized.", nil)

	return rabbitmq_adapter.NewSavedEventsAdapter(producer)
}

// Run запускает сервер и блокируется до сигнала ОС или ошибки сервера.
func (a *App) Run() error {
	defer a.shutdown()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
		return nil
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
		return err
	}
}

func (a *App) shutdown() {
	a.logger.Info("Shutdown sequence initiated...", nil)

	if a.apiServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.apiServer.Stop(ctx); err != nil {
			a.logger.Error("Error during API server shutdown", err, nil)
		}
	}

	a.closeResources()
}

// closeResources закрывает всё, что успело открыться. Порядок: брокер, БД, fluent.
func (a *App) closeResources() {
	if a.eventsProducer != nil {
		if err := a.eventsProducer.Close(); err != nil {
			a.logError("Error closing event producer", err)
		}
	}
	if a.connManager != nil {
		if err := a.connManager.Close(); err != nil {
			a.logError("Error closing RabbitMQ connection manager", err)
		}
	}
	if a.dbPool != nil {
		a.dbPool.Close()
		a.logInfo("PostgreSQL pool closed.")
	}

	a.logInfo("Application shut down gracefully.")

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent может быть уже недоступен
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
}

func (a *App) logInfo(msg string) {
	if a.logger != nil {
		a.logger.Info(msg, nil)
	}
}

func (a *App) logError(msg string, err error) {
	if a.logger != nil {
		a.logger.Error(msg, err, nil)
		return
	}
	log.Printf("ERROR: %s: %v", msg, err)
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
