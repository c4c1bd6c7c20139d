package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rogerio-castellano/kitchen-inventory/internal/config"
)

// Connect opens the process-wide connection pool for the configured driver
// and verifies the store is reachable.
func Connect(ctx context.Context, cfg config.Database) (*sql.DB, error) {
	driverName, dsn, err := driverDSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func driverDSN(cfg config.Database) (string, string, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return "pgx", cfg.DSN, nil
	case config.DriverMySQL:
		dsn, err := MySQLDSN(cfg.DSN)
		return "mysql", dsn, err
	default:
		return "", "", fmt.Errorf("driver %q has no sql backend", cfg.Driver)
	}
}

// MySQLDSN forces the options the product repository relies on: DATETIME
// scanned as time.Time in UTC, and matched rather than changed rows reported
// by UPDATE.
func MySQLDSN(dsn string) (string, error) {
	mc, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid mysql dsn: %w", err)
	}
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.ClientFoundRows = true
	return mc.FormatDSN(), nil
}
