package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gobusters/ectoenv"
	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectologger"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/Ramsey-B/clover/config"
	"github.com/Ramsey-B/clover/internal/repositories/agent"
	"github.com/Ramsey-B/clover/internal/repositories/call"
	"github.com/Ramsey-B/clover/internal/repositories/client"
	"github.com/Ramsey-B/clover/internal/repositories/property"
	"github.com/Ramsey-B/clover/pkg/database"
	"github.com/Ramsey-B/clover/pkg/events"
	"github.com/Ramsey-B/clover/pkg/kafka"
	"github.com/Ramsey-B/clover/pkg/matching"
	"github.com/Ramsey-B/clover/pkg/middleware"
	"github.com/Ramsey-B/clover/pkg/routes/collaboration"
	"github.com/Ramsey-B/clover/pkg/routes/health"
	"github.com/Ramsey-B/clover/pkg/routes/match"
	"github.com/Ramsey-B/clover/pkg/routes/records"
	"github.com/Ramsey-B/clover/pkg/startup"
	"github.com/Ramsey-B/clover/pkg/tracing"
	"github.com/Ramsey-B/clover/pkg/tracing/exporters"
)

var version = "dev"

func main() {
	_ = godotenv.Load()

	var cfg config.Config
	if err := ectoenv.BindEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, flush := newLogger(cfg)
	defer flush()

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(&exporters.ConsoleExporter{}))
	otel.SetTracerProvider(tp)
	tracing.SetTracer(otel.Tracer(cfg.AppName))
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(shutdownCtx)
	}()

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Error("Service exited with error")
		os.Exit(1)
	}
}

func run(cfg config.Config, logger ectologger.Logger) error {
	container, err := ectoinject.NewDIDefaultContainer()
	if err != nil {
		return fmt.Errorf("failed to create DI container: %w", err)
	}

	var db database.DB
	var producer *kafka.Producer

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{validator: validator.New()}
	e.HTTPErrorHandler = middleware.Error(logger)
	e.Use(
		otelecho.Middleware(cfg.AppName),
		middleware.Context(),
		middleware.Logger(logger),
		echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins: cfg.AllowOrigins,
			AllowMethods: cfg.AllowMethods,
		}),
	)

	checker := health.NewChecker(nil, version)
	checker.RegisterRoutes(e)

	api := e.Group("/api/v1")
	match.Register(api.Group("/matches"))
	collaboration.Register(api.Group("/collaboration"))
	records.Register(api.Group("/records"))

	manager := startup.New(logger, cfg.StartupMaxAttempts)

	manager.AddDependency(&dependency{
		name: "database",
		start: func(ctx context.Context) error {
			db, err = database.Connect(database.ConnectionConfig{
				Driver:          cfg.DatabaseDriver,
				Host:            cfg.DatabaseHost,
				Port:            cfg.DatabasePort,
				UserName:        cfg.DatabaseUserName,
				Password:        cfg.DatabasePassword,
				Name:            cfg.DatabaseName,
				SSLMode:         cfg.DatabaseSSLMode,
				MaxOpenConns:    cfg.DatabaseMaxOpenConns,
				MaxIdleConns:    cfg.DatabaseMaxIdleConns,
				ConnMaxLifetime: cfg.DatabaseConnMaxLifetime,
			}, logger)
			return err
		},
		stop: func(ctx context.Context) error {
			if db == nil {
				return nil
			}
			return db.Close()
		},
	})

	manager.AddDependency(&dependency{
		name:      "migrations",
		dependsOn: []string{"database"},
		start: func(ctx context.Context) error {
			migrations := database.NewMigrationService(logger, &database.MigrationConfig{
				MigrationFolderPath: cfg.DatabaseMigrationFolderPath,
				Version:             uint(cfg.DatabaseMigrationVersion),
				Force:               cfg.DatabaseMigrationForce,
			})
			return migrations.MigrateDB(cfg.DatabaseName, db)
		},
		stop: func(ctx context.Context) error { return nil },
	})

	manager.AddDependency(&dependency{
		name:      "kafka",
		dependsOn: []string{},
		start: func(ctx context.Context) error {
			if !cfg.KafkaProducerEnabled {
				logger.Info("Kafka producer disabled, collaboration events will not be published")
				return nil
			}
			producer = kafka.NewProducer(kafka.ProducerConfig{
				Brokers:      cfg.KafkaBrokers,
				Topic:        cfg.KafkaCollaborationTopic,
				BatchSize:    cfg.KafkaBatchSize,
				BatchTimeout: time.Duration(cfg.KafkaBatchTimeout) * time.Millisecond,
				RequiredAcks: cfg.KafkaRequiredAcks,
				Compression:  cfg.KafkaCompression,
			}, logger)
			return nil
		},
		stop: func(ctx context.Context) error {
			if producer == nil {
				return nil
			}
			return producer.Close()
		},
	})

	manager.AddDependency(&dependency{
		name:      "services",
		dependsOn: []string{"database", "kafka"},
		start: func(ctx context.Context) error {
			matchCfg := matching.Config{
				MinCollaborationScore: cfg.MinCollaborationScore,
				PartialTierGap:        cfg.PartialTierGap,
				MaxMatches:            cfg.MaxMatches,
			}

			properties := property.NewRepository(db, logger)
			clients := client.NewRepository(db, logger)
			calls := call.NewRepository(db, logger)
			agents := agent.NewRepository(db, logger)

			if err := ectoinject.RegisterInstance[ectologger.Logger](container, logger); err != nil {
				return err
			}
			if err := ectoinject.RegisterInstance[database.DB](container, db); err != nil {
				return err
			}
			if err := ectoinject.RegisterInstance[*property.Repository](container, properties); err != nil {
				return err
			}
			if err := ectoinject.RegisterInstance[*client.Repository](container, clients); err != nil {
				return err
			}
			if err := ectoinject.RegisterInstance[*call.Repository](container, calls); err != nil {
				return err
			}
			if err := ectoinject.RegisterInstance[*agent.Repository](container, agents); err != nil {
				return err
			}

			service := matching.NewService(logger, properties, clients, calls, matchCfg)
			if err := ectoinject.RegisterInstance[*matching.Service](container, service); err != nil {
				return err
			}

			matchmaker := matching.NewMatchmaker(logger, clients, agents, matchCfg)
			if err := ectoinject.RegisterInstance[*matching.Matchmaker](container, matchmaker); err != nil {
				return err
			}

			emitter := events.NewEmitter(producer, logger)
			return ectoinject.RegisterInstance[*events.Emitter](container, emitter)
		},
		stop: func(ctx context.Context) error { return nil },
	})

	manager.AddDependency(&dependency{
		name:      "http",
		dependsOn: []string{"services", "migrations"},
		start: func(ctx context.Context) error {
			server := &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.Port),
				ReadTimeout:       time.Duration(cfg.HttpServerReadTimeoutSeconds) * time.Second,
				WriteTimeout:      time.Duration(cfg.HttpServerWriteTimeoutSeconds) * time.Second,
				IdleTimeout:       time.Duration(cfg.HttpServerIdleTimeoutSeconds) * time.Second,
				ReadHeaderTimeout: time.Duration(cfg.ReadHeaderTimeoutSeconds) * time.Second,
				MaxHeaderBytes:    cfg.MaxHeaderBytes,
			}

			go func() {
				logger.WithField("port", cfg.Port).Infof("Starting HTTP server on port %d", cfg.Port)
				if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
					logger.WithError(err).Error("HTTP server stopped unexpectedly")
				}
			}()

			checker.SetReady(true)
			return nil
		},
		stop: func(ctx context.Context) error {
			checker.SetReady(false)
			return e.Shutdown(ctx)
		},
	})

	ctx := context.Background()
	if err := manager.Start(ctx); err != nil {
		return err
	}
	checker.SetDB(db)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.WithField("signal", sig.String()).Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return manager.Stop(shutdownCtx)
}

// newLogger builds the structured logger. Log records flow through zap so
// output stays one JSON object per line.
func newLogger(cfg config.Config) (ectologger.Logger, func()) {
	zapCfg := zap.NewProductionConfig()
	if cfg.PrettyLogs {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zlog, err := zapCfg.Build()
	if err != nil {
		zlog = zap.NewNop()
	}

	logger := ectologger.NewEctoLogger(func(msg ectologger.EctoLogMessage) {
		b, err := json.Marshal(msg)
		if err != nil {
			return
		}
		zlog.Info(string(b))
	})
	return logger, func() { _ = zlog.Sync() }
}

type requestValidator struct {
	validator *validator.Validate
}

func (v *requestValidator) Validate(i any) error {
	return v.validator.Struct(i)
}

type dependency struct {
	name      string
	dependsOn []string
	start     func(ctx context.Context) error
	stop      func(ctx context.Context) error
}

func (d *dependency) GetName() string { return d.name }

func (d *dependency) DependsOn() []string { return d.dependsOn }

func (d *dependency) Start(ctx context.Context) error { return d.start(ctx) }

func (d *dependency) Stop(ctx context.Context) error { return d.stop(ctx) }
