package db

import (
	"context"
	"fmt"
	"time"

	"github.com/TuancoderLo/perfume-api/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Client wraps the gorm handle so callers depend on one type instead of the
// driver package.
type Client struct {
	gorm *gorm.DB
}

func New(cfg config.DBConfig) (*Client, error) {
	var dialector gorm.Dialector
	if cfg.IsSQLite() {
		dsn := cfg.DSN
		if dsn == "" {
			dsn = "file::memory:?cache=shared"
		}
		dialector = sqlite.Open(dsn)
	} else {
		dialector = postgres.Open(cfg.DSN)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("resolving sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return &Client{gorm: gdb}, nil
}

// FromGorm builds a Client around an existing gorm handle. Tests use this
// with an in-memory sqlite database.
func FromGorm(gdb *gorm.DB) *Client {
	return &Client{gorm: gdb}
}

// DB returns the underlying gorm handle bound to ctx.
func (c *Client) DB(ctx context.Context) *gorm.DB {
	return c.gorm.WithContext(ctx)
}

// WithTx runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back otherwise.
func (c *Client) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return c.gorm.WithContext(ctx).Transaction(fn)
}

// Ping verifies connectivity within a short deadline.
func (c *Client) Ping(ctx context.Context) error {
	sqlDB, err := c.gorm.DB()
	if err != nil {
		return fmt.Errorf("resolving sql.DB: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	sqlDB, err := c.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
