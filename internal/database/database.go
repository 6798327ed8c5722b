package database

import (
	"fmt"
	"time"

	"naplan-prep/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // registers "oracle"
)

func init() {
	// go-ora accepts :name placeholders bound by position.
	sqlx.BindDriver(config.DriverOracle, sqlx.NAMED)
}

// Connect opens the configured database and pings it.
func Connect(cfg *config.Config) (*sqlx.DB, error) {
	return Open(cfg.DB.Driver, cfg.GetDSN(), cfg.DB.MaxConns)
}

// Open connects with an explicit driver name and DSN.
func Open(driver, dsn string, maxConns int) (*sqlx.DB, error) {
	switch driver {
	case config.DriverPostgres, config.DriverOracle:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
		db.SetMaxIdleConns(maxConns / 2)
	}
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}
