package database

import (
	"fmt"
	"time"

	"trading-journal/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Table describes one journal table and the DDL that creates it.
type Table struct {
	Name        string
	Description string
	ddl         string
}

// Tables lists the journal tables in creation order. trading_reflection
// references trading_history, so it comes second.
var Tables = []Table{
	{
		Name:        models.Trade{}.TableName(),
		Description: "trade history",
		ddl: `
CREATE TABLE IF NOT EXISTS trading_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
	decision TEXT NOT NULL,
	percentage REAL,
	reason TEXT,
	btc_balance REAL DEFAULT 0,
	krw_balance REAL DEFAULT 0,
	btc_avg_buy_price REAL DEFAULT 0,
	btc_krw_price REAL DEFAULT 0,
	trade_amount REAL DEFAULT 0,
	trade_type TEXT DEFAULT 'analysis'
)`,
	},
	{
		Name:        models.Reflection{}.TableName(),
		Description: "reflection journal",
		ddl: `
CREATE TABLE IF NOT EXISTS trading_reflection (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	trading_id INTEGER,
	reflection_date DATETIME DEFAULT CURRENT_TIMESTAMP,
	reflection_text TEXT,
	mood_score INTEGER,
	learning_points TEXT,
	next_actions TEXT,
	FOREIGN KEY (trading_id) REFERENCES trading_history (id)
)`,
	},
}

// Open opens the SQLite database at dsn, creating the file if needed.
// The pool is limited to a single connection.
func Open(dsn string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(zap.NewStdLog(log), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Close releases the underlying connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// EnsureSchema creates the journal tables that do not exist yet.
// It is safe to call any number of times.
func EnsureSchema(tx *gorm.DB) error {
	for _, t := range Tables {
		if err := tx.Exec(t.ddl).Error; err != nil {
			return fmt.Errorf("create table %s: %w", t.Name, err)
		}
	}
	return nil
}

// Seed inserts trades and then reflections. Reflection i is linked to the id
// assigned to trades[i], so both slices are updated in place with their new
// ids. Repeated calls append new rows.
func Seed(tx *gorm.DB, trades []models.Trade, reflections []models.Reflection) error {
	if len(reflections) > len(trades) {
		return fmt.Errorf("seed: %d reflections but only %d trades", len(reflections), len(trades))
	}

	for i := range trades {
		if !trades[i].Decision.Valid() {
			return fmt.Errorf("seed: trade %d has unknown decision %q", i, trades[i].Decision)
		}
	}

	for i := range trades {
		if err := tx.Create(&trades[i]).Error; err != nil {
			return fmt.Errorf("insert trade %s: %w", trades[i].Decision, err)
		}
	}

	for i := range reflections {
		reflections[i].TradingID = trades[i].ID
		if err := tx.Create(&reflections[i]).Error; err != nil {
			return fmt.Errorf("insert reflection for trade %d: %w", trades[i].ID, err)
		}
	}
	return nil
}

// CountRows returns the number of rows in the table backing model.
func CountRows(db *gorm.DB, model any) (int64, error) {
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// HasTable reports whether a table with the given name exists.
func HasTable(db *gorm.DB, name string) bool {
	return db.Migrator().HasTable(name)
}
