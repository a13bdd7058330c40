package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"trading-journal/internal/config"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Result summarises a successful bootstrap.
type Result struct {
	DSN         string
	Tables      []Table
	Trades      int
	Reflections int
}

// Initializer provisions the journal database: log directory, schema and
// sample rows.
type Initializer struct {
	cfg *config.Config
	log *zap.Logger
	now func() time.Time
}

// NewInitializer creates a new Initializer.
func NewInitializer(cfg *config.Config, log *zap.Logger) *Initializer {
	return &Initializer{
		cfg: cfg,
		log: log.Named("initdb"),
		now: time.Now,
	}
}

// Run performs one bootstrap. Schema creation and seeding share a single
// transaction, so on error nothing is left behind in the database. The log
// directory is created first and survives a failed run.
func (i *Initializer) Run(ctx context.Context) (Result, error) {
	res := Result{DSN: i.cfg.Database.DSN}
	l := i.log.With(zap.String("dsn", res.DSN))

	if err := os.MkdirAll(i.cfg.Logs.Dir, 0o755); err != nil {
		return res, fmt.Errorf("create log directory %s: %w", i.cfg.Logs.Dir, err)
	}
	l.Debug("Log directory ready", zap.String("dir", i.cfg.Logs.Dir))

	db, err := Open(res.DSN, i.log)
	if err != nil {
		return res, err
	}
	defer func() {
		if err := Close(db); err != nil {
			l.Warn("Failed to close database", zap.Error(err))
		}
	}()

	trades := SampleTrades(i.now())
	reflections := SampleReflections()

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := EnsureSchema(tx); err != nil {
			return err
		}
		return Seed(tx, trades, reflections)
	})
	if err != nil {
		l.Error("Database initialization rolled back", zap.Error(err))
		return res, err
	}

	res.Tables = Tables
	res.Trades = len(trades)
	res.Reflections = len(reflections)
	l.Info("Database initialized",
		zap.Int("trades", res.Trades),
		zap.Int("reflections", res.Reflections))
	return res, nil
}
