package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"signet/internal/assets"
	"signet/internal/audit"
	"signet/internal/certificate/handler"
	"signet/internal/certificate/sequence"
	"signet/internal/certificate/service"
	"signet/internal/certificate/store"
	"signet/internal/facematch"
	"signet/internal/jwtauth"
	"signet/internal/ledger"
	"signet/internal/ledger/ethereum"
	"signet/internal/platform/config"
	"signet/internal/platform/httpserver"
	"signet/internal/platform/logger"
	"signet/internal/platform/metrics"
	"signet/internal/platform/postgres"
	"signet/internal/platform/redis"
	httptransport "signet/internal/transport/http"
)

// main wires dependencies and owns the process lifecycle. Business logic
// lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		certStore store.Store
		allocator sequence.Allocator
		auditor   audit.Store
		relay     *audit.Relay
	)

	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		certStore = store.NewPostgres(db)
		allocator = sequence.NewPostgres(db)

		auditStore := audit.NewPostgresStore(db)
		auditor = auditStore
		if len(cfg.Kafka.Brokers) > 0 {
			producer, err := audit.NewKafkaProducer(ctx, cfg.Kafka)
			if err != nil {
				return err
			}
			defer producer.Close()
			relay = audit.NewRelay(auditStore, producer, log, cfg.Kafka.PollInterval)
		} else {
			log.Warn("kafka brokers not configured, audit events stay in the outbox")
		}
	} else {
		log.Warn("DATABASE_URL not set, using in-memory storage")
		mem := store.NewMemory()
		certStore = mem
		last, _ := mem.MaxNumber(ctx)
		allocator = sequence.NewMemory(last)
		auditor = audit.NewMemoryStore()
	}

	var ledgerClient ledger.Client
	if cfg.Ledger.RPCURL != "" {
		eth, err := ethereum.New(cfg.Ledger)
		if err != nil {
			return err
		}
		ledgerClient = eth
	} else {
		log.Warn("LEDGER_RPC_URL not set, using in-memory ledger")
		ledgerClient = ledger.NewMemory()
	}

	var assetStore assets.Store = assets.NewFilesystem(cfg.AssetDir, cfg.AssetBaseURL)
	rdb, err := redis.New(cfg.Redis)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
		assetStore = assets.NewCachedStore(assetStore, rdb, config.AssetCacheTTL)
	}

	var comparer facematch.Comparer
	if cfg.FaceMatchURL != "" {
		comparer = facematch.NewHTTPClient(cfg.FaceMatchURL)
	}

	svc := service.New(
		certStore,
		allocator,
		ledgerClient,
		assetStore,
		auditor,
		log,
		metrics.New(),
	)

	jwtService := jwtauth.NewService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Certificates:   handler.New(svc, comparer, log),
		JWTValidator:   jwtauth.NewMiddlewareAdapter(jwtService),
		Logger:         log,
		AssetDir:       cfg.AssetDir,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting signet", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if relay != nil {
		g.Go(func() error {
			if err := relay.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	return g.Wait()
}
