package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/calisthenix/internal/auth"
	"github.com/2beens/calisthenix/internal/cache"
	"github.com/2beens/calisthenix/internal/coach"
	"github.com/2beens/calisthenix/internal/config"
	"github.com/2beens/calisthenix/internal/db"
	"github.com/2beens/calisthenix/internal/journal"
	"github.com/2beens/calisthenix/internal/library"
	"github.com/2beens/calisthenix/internal/middleware"
	"github.com/2beens/calisthenix/internal/records"
	"github.com/2beens/calisthenix/internal/stats"
	"github.com/2beens/calisthenix/internal/telemetry/metrics"
	"github.com/2beens/calisthenix/internal/telemetry/tracing"
	"github.com/2beens/calisthenix/internal/templates"
	"github.com/2beens/calisthenix/internal/users"
	"github.com/2beens/calisthenix/internal/workouts"
	"github.com/2beens/calisthenix/pkg"
)

const sessionsCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	authenticator auth.Authenticator
	sessions      *auth.SessionStore
	devIdentity   *auth.Identity
	libraryCache  cache.Cache
	coachModel    coach.Model

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	RedisPassword           string
	GeminiAPIKey            string
	HoneycombTracingEnabled bool
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
		DBPassword:     cfg.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("calisthenix", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	sessions := auth.NewSessionStore(cfg.SessionTTL, rdb)
	go func() {
		ticker := time.NewTicker(sessionsCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cleaned := sessions.ScanAndClean(ctx)
				metricsManager.CounterSessionsCleaned.Add(float64(cleaned))
			}
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "calisthenix-backend")
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:      cfg,
		dbPool:      dbPool,
		redisClient: rdb,
		sessions:    sessions,

		libraryCache: cache.NewJSONCache("library", cfg.LibraryCacheSize),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	identity := staticIdentity(cfg)
	switch cfg.AuthMode {
	case config.AuthModeStatic:
		log.Warnf("static auth mode, every request runs as user [%s]", identity.UserID)
		s.authenticator = auth.NewStaticAuthenticator(identity)
	default:
		s.authenticator = auth.NewSessionAuthenticator(sessions)
	}
	if cfg.DevLoginEnabled {
		s.devIdentity = &identity
	}

	if cfg.AuthMode == config.AuthModeStatic || cfg.DevLoginEnabled {
		if err := s.ensureUser(ctx, identity); err != nil {
			log.Errorf("failed to upsert user [%s]: %s", identity.UserID, err)
		}
	}

	if params.GeminiAPIKey != "" {
		model, err := coach.NewGeminiModel(ctx, coach.GeminiParams{
			APIKey:    params.GeminiAPIKey,
			ModelName: cfg.CoachModel,
		})
		if err != nil {
			return nil, fmt.Errorf("new gemini model: %w", err)
		}
		s.coachModel = model
	} else {
		log.Warnln("GEMINI_API_KEY not set, coach endpoints will answer 503")
	}

	return s, nil
}

// staticIdentity builds the configured local identity used by the static
// authenticator and the dev login.
func staticIdentity(cfg *config.Config) auth.Identity {
	firstName, lastName, _ := strings.Cut(strings.TrimSpace(cfg.StaticUserName), " ")
	return auth.Identity{
		UserID:    cfg.StaticUserID,
		Email:     cfg.StaticUserEmail,
		FirstName: firstName,
		LastName:  strings.TrimSpace(lastName),
	}
}

func (s *Server) ensureUser(ctx context.Context, identity auth.Identity) error {
	if identity.UserID == "" {
		return nil
	}
	_, err := users.NewRepo(s.dbPool).Upsert(ctx, users.UpsertParams{
		ID:              identity.UserID,
		Email:           identity.Email,
		FirstName:       identity.FirstName,
		LastName:        identity.LastName,
		ProfileImageURL: identity.ProfileImageURL,
	})
	return err
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("calisthenix-router"))

	r.HandleFunc("/", handleRoot).Methods("GET", "OPTIONS").Name("root")

	usersRepo := users.NewRepo(s.dbPool)
	libraryService := library.NewService(library.NewRepo(s.dbPool), s.libraryCache)
	statsService := stats.NewService(usersRepo, stats.NewRepo(s.dbPool), s.config.Location())
	workoutsService := workouts.NewService(workouts.NewRepo(s.dbPool), statsService, s.metricsManager)
	templatesService := templates.NewService(templates.NewRepo(s.dbPool), libraryService, workoutsService)
	recordsRepo := records.NewRepo(s.dbPool)

	auth.NewHandler(s.sessions, s.devIdentity, s.config.Environment == "production").SetupRoutes(r)
	users.NewHandler(usersRepo).SetupRoutes(r)
	library.NewHandler(libraryService).SetupRoutes(r)
	workouts.NewHandler(workoutsService).SetupRoutes(r)
	stats.NewHandler(statsService).SetupRoutes(r)
	templates.NewHandler(templatesService).SetupRoutes(r)
	journal.NewHandler(journal.NewRepo(s.dbPool), s.config.Location()).SetupRoutes(r)
	records.NewHandler(recordsRepo).SetupRoutes(r)

	coachService := coach.NewService(coach.NewServiceParams{
		Model:          s.coachModel,
		Profiles:       usersRepo,
		Workouts:       workoutsService,
		Templates:      templatesService,
		Records:        recordsRepo,
		Library:        libraryService,
		Location:       s.config.Location(),
		MetricsManager: s.metricsManager,
	})
	coachRouter := r.PathPrefix("/api/coach").Subrouter()
	coachRouter.Use(middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		"coach",
		s.config.CoachRateLimitAllowedPerMin,
		s.metricsManager,
	))
	coach.NewHandler(coachService).SetupRoutes(coachRouter)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteErrorResponse(w, "not found", http.StatusNotFound)
	}).Methods("GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.authenticator)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONResponseOK(w, map[string]string{"status": "ok", "service": "calisthenix"})
}

func (s *Server) Serve(_ context.Context, host string, port int) {
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
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeOpenConns.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeOpenConns.Add(-1)
	default:
		// do nothing
	}
}
