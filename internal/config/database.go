package config

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const sqlitePrefix = "sqlite://"

func NewDatabase(cfg *Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.LogLevel == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Timestamps are stored in UTC so daily limits and cursors compare
		// consistently across drivers.
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("database connection established", zap.String("driver", db.Dialector.Name()))
	return db, nil
}

// dialector picks the GORM driver from the URL. sqlite://path and file: URLs
// open SQLite; everything else is handed to postgres.
func dialector(url string) gorm.Dialector {
	switch {
	case strings.HasPrefix(url, sqlitePrefix):
		return sqlite.Open(strings.TrimPrefix(url, sqlitePrefix))
	case strings.HasPrefix(url, "file:"):
		return sqlite.Open(url)
	default:
		return postgres.Open(url)
	}
}
