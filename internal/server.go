package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/config"
	"github.com/2beens/fitlog/internal/db"
	"github.com/2beens/fitlog/internal/idempotency"
	"github.com/2beens/fitlog/internal/middleware"
	"github.com/2beens/fitlog/internal/misc"
	"github.com/2beens/fitlog/internal/reflections"
	"github.com/2beens/fitlog/internal/telemetry/metrics"
	"github.com/2beens/fitlog/internal/telemetry/tracing"
	"github.com/2beens/fitlog/internal/workouts"
	"github.com/2beens/fitlog/internal/workouts/dashboard"
	"github.com/2beens/fitlog/internal/workouts/events"
	"github.com/2beens/fitlog/internal/workouts/handlers"
	workoutsmcp "github.com/2beens/fitlog/internal/workouts/mcp"
	"github.com/2beens/fitlog/internal/workouts/service"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const revokedTokensCleanupInterval = 8 * time.Hour

type eventPublisher interface {
	Publish(ctx context.Context, event events.WorkoutLogged) error
	Close() error
}

type revocationStore interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config        *config.Config
	authConfig    auth.Config
	mcpSecretHash string

	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter
	revoker     revocationStore
	publisher   eventPublisher

	workoutsHandler    *handlers.Handler
	reflectionsHandler *reflections.Handler
	miscHandler        *misc.Handler
	mcpServer          *mcp.Server

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	Secrets     *config.Secrets
	VersionInfo string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		TracingEnabled: params.Secrets.HoneycombEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if cfg.PostgresAutoMigrate {
		if err := db.Migrate(ctx, dbPool); err != nil {
			return nil, err
		}
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.Secrets.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	revoker := auth.NewRevoker(rdb)
	go func() {
		ticker := time.NewTicker(revokedTokensCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				revoker.ScanAndClean(ctx)
			}
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.Secrets.HoneycombEnabled, params.Secrets.OtelServiceName, rdb)
	if err != nil {
		return nil, err
	}

	var publisher eventPublisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaWorkoutsTopic)
		log.Debugf("publishing workout events to %v, topic [%s]", cfg.KafkaBrokers, cfg.KafkaWorkoutsTopic)
	} else {
		log.Warnln("no kafka brokers set, workout events will not be published")
	}

	workoutsRepo := workouts.NewRepo(dbPool)
	aggregator, err := dashboard.NewAggregator(workoutsRepo, dashboard.Config{
		Location:   cfg.Location(),
		StreakMode: cfg.StreakMode,
		Lookback:   cfg.StreakLookback,
	})
	if err != nil {
		return nil, fmt.Errorf("new aggregator: %w", err)
	}
	aggregator.WithSnapshotDuration(metricsManager.HistogramSnapshotDuration)

	submissions := service.NewService(workoutsRepo, publisher, metricsManager, service.Options{
		RejectPartial: cfg.RejectPartialSubmissions,
	})
	replays := idempotency.NewCache(
		cfg.IdempotencyCacheSizeMB,
		time.Duration(cfg.IdempotencyKeyExpirySeconds)*time.Second,
	)

	return &Server{
		config: cfg,
		authConfig: auth.Config{
			Secret: params.Secrets.JWTSecret,
			Issuer: cfg.JWTIssuer,
		},
		mcpSecretHash: params.Secrets.MCPSecretHash,
		versionInfo:   params.VersionInfo,

		dbPool:      dbPool,
		redisClient: rdb,
		rateLimiter: redis_rate.NewLimiter(rdb),
		revoker:     revoker,
		publisher:   publisher,

		workoutsHandler: handlers.NewHandler(
			submissions,
			workoutsRepo,
			aggregator,
			replays,
			metricsManager,
		),
		reflectionsHandler: reflections.NewHandler(reflections.NewRepo(dbPool)),
		miscHandler: misc.NewHandler(params.VersionInfo, map[string]misc.HealthCheck{
			"postgres": dbPool.Ping,
			"redis": func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			},
		}),
		mcpServer: workoutsmcp.NewServer(dbPool, workoutsRepo, aggregator),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	s.miscHandler.SetupRoutes(r)

	submitRateLimit := middleware.RateLimit(
		s.rateLimiter,
		"submit-workouts",
		s.config.SubmissionsRateLimitPerMin,
		s.metricsManager,
	)
	r.Handle("/workouts", submitRateLimit(http.HandlerFunc(s.workoutsHandler.HandleAdd))).Methods("POST", "OPTIONS").Name("new-workouts")
	r.HandleFunc("/workouts", s.workoutsHandler.HandleListByDate).Methods("GET", "OPTIONS").Name("workouts-by-date")
	r.HandleFunc("/workouts/list/page/{page}/size/{size}", s.workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/dashboard", s.workoutsHandler.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")
	r.HandleFunc("/dashboard/streaks", s.workoutsHandler.HandleStreaks).Methods("GET", "OPTIONS").Name("dashboard-streaks")
	r.HandleFunc("/profile", s.workoutsHandler.HandleProfile).Methods("GET", "OPTIONS").Name("profile")

	r.HandleFunc("/reflections", s.reflectionsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-reflection")
	r.HandleFunc("/reflections", s.reflectionsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-reflections")

	authHandler := auth.NewHandler(s.revoker)
	r.HandleFunc("/a/logout", authHandler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")

	if s.mcpServer != nil {
		mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return s.mcpServer
		}, nil)
		r.PathPrefix("/mcp").Handler(middleware.MCPSecretCheck(s.mcpSecretHash)(mcpHandler)).Name("mcp")
	}

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.authConfig, s.revoker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.LimitAndDrainRequest(middleware.MaxRequestBodyBytes))

	return r, nil
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before closing what they depend on
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			log.Errorf("failed to close events publisher: %s", err)
		}
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}
