package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	httpAdapter "github.com/corebank/ledgerengine/internal/adapter/http"
	"github.com/corebank/ledgerengine/internal/adapter/http/handler"
	"github.com/corebank/ledgerengine/internal/adapter/http/middleware"
	"github.com/corebank/ledgerengine/internal/adapter/repository/configfile"
	memoryRepo "github.com/corebank/ledgerengine/internal/adapter/repository/memory"
	postgresRepo "github.com/corebank/ledgerengine/internal/adapter/repository/postgres"
	redisRepo "github.com/corebank/ledgerengine/internal/adapter/repository/redis"
	"github.com/corebank/ledgerengine/internal/infrastructure/config"
	"github.com/corebank/ledgerengine/internal/infrastructure/eventpublisher"
	"github.com/corebank/ledgerengine/internal/infrastructure/logger"
	"github.com/corebank/ledgerengine/internal/infrastructure/metrics"
	"github.com/corebank/ledgerengine/internal/infrastructure/postgres"
	"github.com/corebank/ledgerengine/internal/infrastructure/redis"
	"github.com/corebank/ledgerengine/internal/infrastructure/worker"
	"github.com/corebank/ledgerengine/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	a, err := newApp(ctx, cfg, log, reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize")
	}
	defer a.close()

	if err := a.run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("server stopped")
}

// storage is the repository set behind the use cases.
type storage struct {
	txManager   usecase.TransactionManager
	postings    usecase.PostingRepository
	branchDays  usecase.BranchDayRepository
	closes      usecase.DayCloseRepository
	trials      usecase.TrialBalanceRepository
	trackers    usecase.TrackerRepository
	outbox      usecase.OutboxRepository
	ledger      usecase.LedgerRepository
	audit       usecase.AuditRepository
	retrier     usecase.Retrier
	configTable usecase.ConfigSource // nil when the backend has no config tables
}

type app struct {
	handler  http.Handler
	engine   *usecase.Engine
	holder   *usecase.SnapshotHolder
	outbox   *eventpublisher.EventPublisher
	trackers *worker.TrackerWorker
	limiter  *middleware.RateLimiter
	notifier usecase.ConfigNotifier
	logger   zerolog.Logger
	closers  []func()
}

func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger, reg *prometheus.Registry) (*app, error) {
	a := &app{logger: log}
	ready := false
	defer func() {
		if !ready {
			a.close()
		}
	}()

	m := metrics.New(reg)
	clock := usecase.SystemClock{}
	idGen := postgresRepo.NewULIDGenerator()
	checks := map[string]handler.Checker{}

	var store storage
	switch cfg.Storage {
	case config.StoragePostgres:
		pool, err := openPostgres(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		checks["postgres"] = pool.Ping
		store = postgresStorage(pool, cfg, log)
	default:
		store = memoryStorage()
		log.Warn().Msg("using in-memory storage; postings are lost on restart")
	}

	var (
		redisClient *goredis.Client
		cache       usecase.Cache
		err         error
	)
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL, cfg.RedisTimeout)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		a.closers = append(a.closers, func() { redisClient.Close() })
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
		cache = redisRepo.NewCache(redisClient)
		a.notifier = redisRepo.NewConfigNotifier(redisClient, cfg.ConfigChannel, idGen.Generate(), log)
		log.Info().Msg("connected to redis")
	}

	var source usecase.ConfigSource
	switch cfg.ConfigSource {
	case config.ConfigSourceYAML:
		source = configfile.NewSource(cfg.ConfigFile)
	default:
		source = store.configTable
	}
	if source == nil {
		return nil, fmt.Errorf("config source %q is not available with storage %q", cfg.ConfigSource, cfg.Storage)
	}
	if cache != nil {
		source = usecase.NewCachingConfigSource(source, cache, usecase.ConfigCacheTTL, log)
	}

	a.holder = usecase.NewSnapshotHolder(source, cfg.Policy(), clock, m, log)
	if snap, err := a.holder.Refresh(ctx); err != nil {
		// Postings answer 503 until an operator refreshes a valid set.
		log.Error().Err(err).Msg("initial configuration load failed")
	} else {
		log.Info().Int64("version", snap.Version()).Msg("configuration loaded")
	}

	postingUC := usecase.NewPostingUseCase(store.txManager, store.postings, store.branchDays, store.outbox, store.audit, a.holder, store.retrier, idGen, clock, m, log)
	trackerUC := usecase.NewTrackerUseCase(store.trackers, postingUC, store.txManager, store.outbox, store.audit, idGen, clock, m, log, usecase.TrackerConfig{
		MaxRetries:      cfg.TrackerMaxRetries,
		InitialInterval: cfg.TrackerInitialBackoff,
		MaxInterval:     cfg.TrackerMaxBackoff,
	})
	closeUC := usecase.NewDayCloseUseCase(store.txManager, store.branchDays, store.closes, store.postings, store.trials, store.outbox, store.audit, a.holder, idGen, clock, m, log, cfg.DayCloseDrainTimeout)
	a.engine = usecase.NewEngine(postingUC, trackerUC, closeUC)
	configUC := usecase.NewConfigUseCase(a.holder, source, a.notifier, store.audit, clock, log)
	ledgerUC := usecase.NewLedgerUseCase(store.ledger)

	publisher, err := newPublisher(cfg, log)
	if err != nil {
		return nil, err
	}
	if closer, ok := publisher.(interface{ Close() error }); ok {
		a.closers = append(a.closers, func() { closer.Close() })
	}
	a.outbox = eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: store.outbox,
		Publisher:  publisher,
		Logger:     log,
		Metrics:    m,
		BatchSize:  cfg.OutboxBatchSize,
		Interval:   cfg.OutboxPollInterval,
		Retention:  cfg.OutboxRetention,
	})
	a.trackers = worker.NewTrackerWorker(trackerUC, cfg.TrackerPollInterval, 0, log)
	a.limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, m)

	routerCfg := httpAdapter.RouterConfig{
		PostingHandler:     handler.NewPostingHandler(a.engine, clock),
		DayCloseHandler:    handler.NewDayCloseHandler(a.engine, clock),
		TrackerHandler:     handler.NewTrackerHandler(trackerUC),
		ConfigHandler:      handler.NewConfigHandler(configUC),
		LedgerHandler:      handler.NewLedgerHandler(ledgerUC),
		AuditHandler:       handler.NewAuditHandler(store.audit),
		HealthHandler:      handler.NewHealthHandler(checks),
		RateLimiter:        a.limiter,
		Metrics:            m,
		Gatherer:           reg,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:             log,
	}
	if redisClient != nil {
		routerCfg.IdempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
	}
	a.handler = httpAdapter.NewRouter(routerCfg)

	ready = true
	return a, nil
}

func openPostgres(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*pgxpool.Pool, error) {
	if cfg.RunMigrations {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
			return nil, err
		}
	}

	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	log.Info().Msg("connected to postgres")
	return pool, nil
}

func postgresStorage(pool *pgxpool.Pool, cfg *config.Config, log zerolog.Logger) storage {
	txManager := postgresRepo.NewTxManager(pool, cfg.DatabaseTxTimeout)
	retry := postgresRepo.DefaultRetrierConfig()
	retry.MaxRetries = cfg.PostingMaxRetries
	return storage{
		txManager:   txManager,
		postings:    postgresRepo.NewPostingRepository(pool),
		branchDays:  postgresRepo.NewBranchDayRepository(pool),
		closes:      postgresRepo.NewDayCloseRepository(pool),
		trials:      postgresRepo.NewTrialBalanceRepository(txManager),
		trackers:    postgresRepo.NewTrackerRepository(pool),
		outbox:      postgresRepo.NewOutboxRepository(pool),
		ledger:      postgresRepo.NewLedgerRepository(pool),
		audit:       postgresRepo.NewAuditRepository(pool),
		retrier:     postgresRepo.NewRetrierWithConfig(retry, log),
		configTable: postgresRepo.NewConfigSource(pool),
	}
}

func memoryStorage() storage {
	s := memoryRepo.NewStore()
	return storage{
		txManager:  memoryRepo.NewTxManager(s),
		postings:   memoryRepo.NewPostingRepository(s),
		branchDays: memoryRepo.NewBranchDayRepository(s),
		closes:     memoryRepo.NewDayCloseRepository(s),
		trials:     memoryRepo.NewTrialBalanceRepository(s),
		trackers:   memoryRepo.NewTrackerRepository(s),
		outbox:     memoryRepo.NewOutboxRepository(s),
		ledger:     memoryRepo.NewLedgerRepository(s),
		audit:      memoryRepo.NewAuditRepository(s),
		retrier:    usecase.NoRetry{},
	}
}

func newPublisher(cfg *config.Config, log zerolog.Logger) (eventpublisher.Publisher, error) {
	switch cfg.OutboxPublisher {
	case config.PublisherKafka:
		if len(cfg.KafkaBrokers) == 0 || cfg.KafkaTopic == "" {
			return nil, errors.New("kafka publisher requires KAFKA_BROKERS and KAFKA_TOPIC")
		}
		return eventpublisher.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, log.With().Str("component", "kafka").Logger()), nil
	default:
		return eventpublisher.NewLogPublisher(log), nil
	}
}

// run serves HTTP and runs the background workers until ctx is cancelled.
func (a *app) run(ctx context.Context, cfg *config.Config) error {
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      a.handler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info().Msg("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	g.Go(func() error { return ignoreCanceled(a.outbox.Start(gctx)) })
	g.Go(func() error { return ignoreCanceled(a.trackers.Start(gctx)) })
	g.Go(func() error { return ignoreCanceled(a.limiter.RunCleanup(gctx, time.Minute, 10*time.Minute)) })
	if a.notifier != nil {
		g.Go(func() error { return ignoreCanceled(a.holder.Watch(gctx, a.notifier)) })
	}

	return g.Wait()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
