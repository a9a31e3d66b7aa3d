package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"loan-audit/internal/async"
	"loan-audit/internal/audit"
	"loan-audit/internal/common"
	"loan-audit/internal/entity"
	"loan-audit/internal/extract"
	"loan-audit/internal/ingest"
	"loan-audit/internal/policy"
	"loan-audit/internal/repository"
)

// auditwatch watches directories for statement text dumps, audits each new
// file, and persists the resulting report. A cache keyed by document
// fingerprint skips statements that haven't changed.
func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	pol, err := policy.Load(cfg.Audit.PolicyPath)
	if err != nil {
		log.Fatalf("loading policy: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, err := repository.OpenSQLite(ctx, cfg.Store.SQLitePath, nil)
	if err != nil {
		log.Fatalf("opening report store: %v", err)
	}
	defer func() { _ = store.Close() }()

	var cache repository.CacheRepository
	if cfg.Cache.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.TTL)
		log.Infow("redis cache enabled", "addr", cfg.Cache.RedisAddr)
	} else {
		cache = repository.NewMemoryCache()
	}

	pipeline := extract.NewPipeline(nil)
	engine := audit.NewEngine(nil, audit.DefaultRules(pol)...)

	process := func(ctx context.Context, path string) error {
		pages, err := ingest.ReadPages(path)
		if err != nil {
			return err
		}
		key := repository.Fingerprint(pages)
		if _, seen := cache.Get(key); seen {
			log.Infow("statement unchanged, skipping", "path", path)
			return nil
		}

		rec, err := pipeline.Extract(pages)
		if err != nil {
			return err
		}
		var findings []entity.AuditFinding
		if cfg.Audit.Parallel {
			findings = engine.RunParallel(rec)
		} else {
			findings = engine.Run(rec)
		}

		id, err := store.SaveReport(ctx, rec, findings)
		if err != nil {
			return err
		}

		marker, _ := json.Marshal(map[string]string{"report_id": id.String()})
		if err := cache.Set(key, string(marker)); err != nil {
			log.Warnw("cache set failed", "error", err)
		}
		log.Infow("statement audited", "path", path, "report_id", id, "findings", len(findings))
		return nil
	}

	queue := async.NewQueue(process, nil, async.WithWorkers(cfg.Ingest.Workers))
	defer queue.Shutdown()

	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       cfg.Ingest.Roots,
		InitialScan: true,
		Debounce:    cfg.Ingest.Debounce,
	}, nil)
	if err != nil {
		log.Fatalf("starting watcher: %v", err)
	}

	log.Infow("watching for statements", "roots", cfg.Ingest.Roots)
	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down")
			return
		case path, ok := <-events:
			if !ok {
				return
			}
			if err := queue.Enqueue(async.Job{Path: path}); err != nil {
				log.Warnw("enqueue failed", "path", path, "error", err)
			}
		case werr, ok := <-errs:
			if !ok {
				return
			}
			log.Warnw("watcher error", "error", werr)
		}
	}
}
