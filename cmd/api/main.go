package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fleetdesk/cmd/internal/config"
	"fleetdesk/cmd/internal/domain/db"
	"fleetdesk/cmd/internal/domain/db/repository"
	"fleetdesk/cmd/internal/http/handler"
	appmiddleware "fleetdesk/cmd/internal/http/middleware"
	"fleetdesk/cmd/internal/infrastructure/messaging"
	"fleetdesk/cmd/internal/metrics"
	"fleetdesk/cmd/internal/routes"
	"fleetdesk/cmd/internal/service"
	"fleetdesk/cmd/internal/service/jobs"
	"fleetdesk/cmd/internal/tracing"
	"fleetdesk/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("unable to load configuration, %v", err)
	}

	validate := validator.New()
	validators.RegisterAll(validate)

	// Init database, sqlite unless DATABASE_URL is a postgres URL
	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		panic(err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		panic(err)
	}
	defer sqlDB.Close()

	m := metrics.New(prometheus.DefaultRegisterer)

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing, "fleetdesk")
	if err != nil {
		log.Fatalf("unable to set up tracing, %v", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warnf("unable to flush traces, %v", err)
		}
	}()

	publisher, listener, closeMessaging := setupMessaging(ctx, cfg.Kafka, m)
	defer closeMessaging()

	// Getting repos
	clientRepo := repository.NewClientRepository(conn)
	coopRepo := repository.NewCooperativeRepository(conn)
	equipRepo := repository.NewEquipmentRepository(conn)
	modelRepo := repository.NewModelRepository(conn)
	productRepo := repository.NewProductRepository(conn)

	// Getting services
	clientService := service.NewClientService(clientRepo, coopRepo, validate)
	coopService := service.NewCooperativeService(coopRepo, clientRepo, validate)
	equipService := service.NewEquipmentService(equipRepo, modelRepo, validate)
	modelService := service.NewModelService(modelRepo, equipRepo, validate)
	productService := service.NewProductService(productRepo, publisher, validate)

	reporter := jobs.NewInventoryReporter(map[string]jobs.RecordCounter{
		"client":      clientRepo,
		"cooperative": coopRepo,
		"equipment":   equipRepo,
		"model":       modelRepo,
		"product":     productRepo,
	}, m, cfg.InventoryInterval)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Infof("%s %s %d %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))
	e.Use(appmiddleware.NewTracingMiddleware(otel.Tracer("fleetdesk"), otel.GetTextMapPropagator()))
	e.Use(appmiddleware.NewMetricsMiddleware(m))

	routes.Register(e, routes.Handlers{
		Clients:      handler.NewClientRoute(clientService),
		Cooperatives: handler.NewCooperativeRoute(coopService),
		Equipment:    handler.NewEquipmentRoute(equipService),
		Models:       handler.NewModelRoute(modelService),
		Products:     handler.NewProductRoute(productService),
	})

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		reporter.Start(gctx)
		return nil
	})

	if listener != nil {
		g.Go(func() error {
			listener.Start(gctx)
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		log.Errorf("server stopped, %v", err)
	}
}

// setupMessaging connects to Kafka when brokers are configured. Without them
// product events are dropped and nothing is consumed.
func setupMessaging(ctx context.Context, cfg config.Kafka, m *metrics.Metrics) (service.EventPublisher, *messaging.Listener, func()) {
	if !cfg.Enabled() {
		log.Warn("KAFKA_BROKERS is not set, messaging is disabled")
		return messaging.NopPublisher{}, nil, func() {}
	}

	topics := messaging.Topics{
		Product:      cfg.ProductTopic,
		Notification: cfg.NotificationTopic,
	}

	client, err := messaging.NewClient(cfg.Brokers, cfg.Group, topics)
	if err != nil {
		log.Fatalf("unable to connect to kafka, %v", err)
	}

	if err = messaging.EnsureTopics(ctx, client, topics); err != nil {
		log.Warnf("unable to ensure kafka topics, %v", err)
	}
	return messaging.NewProducer(client, topics, m), messaging.NewListener(client, topics), client.Close
}

func healthCheckRoute(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
