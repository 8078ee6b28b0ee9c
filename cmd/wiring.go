package cmd

import (
	"context"
	"fmt"
	"time"

	"status-notifier/core/config"
	"status-notifier/core/database"
	"status-notifier/core/lock"
	"status-notifier/core/logger"
	"status-notifier/core/mailer"
	"status-notifier/core/models"
	"status-notifier/core/notify"
	"status-notifier/core/reconcile"
	"status-notifier/core/remote"
	"status-notifier/core/storage"
	"status-notifier/feature/instances"
	"status-notifier/feature/subscribers"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// services holds the loaded configuration and the components built from it.
type services struct {
	cfg         *config.Config
	logger      *zap.Logger
	db          *gorm.DB
	instances   *instances.Store
	subscribers *subscribers.Store
}

// bootstrap loads configuration, builds the logger and opens the database.
// validate is set by commands that run cycles.
func bootstrap(validate bool) (*services, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if validate {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := models.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	return &services{
		cfg:         cfg,
		logger:      logg,
		db:          db,
		instances:   instances.NewStore(db),
		subscribers: subscribers.NewStore(db),
	}, nil
}

// buildEngine wires the reconcile engine. The returned cleanup releases
// connections opened for it.
func buildEngine(ctx context.Context, rt *services) (*reconcile.Engine, func(), error) {
	cleanup := func() {}

	fetcher, err := remote.NewFetcher(rt.cfg.Remote)
	if err != nil {
		return nil, cleanup, err
	}

	sender, err := mailer.NewSender(rt.cfg.Mail)
	if err != nil {
		return nil, cleanup, err
	}

	deps := reconcile.Deps{
		Fetcher:     fetcher,
		Instances:   rt.instances,
		Subscribers: rt.subscribers,
		Composer:    notify.NewComposer(rt.cfg.Notify),
		Sender:      sender,
	}

	if addr := rt.cfg.Lock.RedisAddr; addr != "" {
		client, err := lock.NewRedisClient(addr)
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = func() { _ = client.Close() }
		deps.Locker = lock.NewRedis(client, rt.cfg.Lock.Key, time.Duration(rt.cfg.Lock.TTLSeconds)*time.Second)
		rt.logger.Info("Using distributed cycle lock", zap.String("key", rt.cfg.Lock.Key))
	}

	if rt.cfg.Storage.Enabled {
		client, err := storage.NewClient(rt.cfg.Storage)
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		archive := storage.NewArchive(client, rt.cfg.Storage.Bucket, rt.cfg.Storage.Prefix)
		if err := archive.EnsureBucket(ctx, rt.cfg.Storage.Region); err != nil {
			// Archiving stays best effort; uploads will keep failing and be logged.
			rt.logger.Warn("Snapshot bucket unavailable", zap.Error(err))
		}
		deps.Archiver = archive
	}

	return reconcile.NewEngine(deps, rt.cfg.Reconcile, rt.logger), cleanup, nil
}
