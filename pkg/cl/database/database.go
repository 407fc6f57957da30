package database

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"github.com/aghadi/aghadi-api/pkg/cl/config"
	"github.com/aghadi/aghadi-api/pkg/cl/logger"
)

// PoolSize is the maximum number of open connections shared by all requests.
// Callers beyond this limit wait for a free connection.
const PoolSize = 10

// Database owns the process-wide connection pool.
type Database struct {
	DB  *sql.DB
	cfg *config.Config
	log logger.Logger
}

// New creates a new Database instance. The pool is opened by Start.
func New(cfg *config.Config, log logger.Logger) *Database {
	return &Database{
		cfg: cfg,
		log: log,
	}
}

// Start opens the pool and kicks off a background connectivity check.
// Reachability of the store does not affect startup.
func (d *Database) Start(ctx context.Context) error {
	driver, dsn, err := d.dsn()
	if err != nil {
		return err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("cannot open database: %w", err)
	}
	db.SetMaxOpenConns(PoolSize)
	db.SetMaxIdleConns(PoolSize)

	d.DB = db
	d.log.Infof("Database pool ready [%s, max %d connections]", driver, PoolSize)

	go d.reportConnection(context.WithoutCancel(ctx))

	return nil
}

// Stop closes the pool.
func (d *Database) Stop(ctx context.Context) error {
	if d.DB != nil {
		d.log.Info("Closing database connection")
		return d.DB.Close()
	}
	return nil
}

// GetDB returns the underlying sql.DB.
func (d *Database) GetDB() *sql.DB {
	return d.DB
}

// CheckConnection acquires one pooled connection and releases it immediately.
func (d *Database) CheckConnection(ctx context.Context) error {
	if d.DB == nil {
		return fmt.Errorf("database not started")
	}
	conn, err := d.DB.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	return conn.PingContext(ctx)
}

func (d *Database) reportConnection(ctx context.Context) {
	if err := d.CheckConnection(ctx); err != nil {
		d.log.Errorf("Database connection error: %v", err)
		return
	}
	d.log.Info("Database connected")
}

func (d *Database) dsn() (driver, dsn string, err error) {
	dbCfg := d.cfg.Database

	switch dbCfg.Driver {
	case "", "mysql":
		return "mysql", MySQLDSN(dbCfg), nil

	case "sqlite3", "sqlite":
		if dir := filepath.Dir(dbCfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return "", "", fmt.Errorf("cannot create database directory: %w", err)
			}
		}
		return "sqlite3", fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000", dbCfg.Path), nil

	default:
		return "", "", fmt.Errorf("unsupported database driver %q", dbCfg.Driver)
	}
}

// MySQLDSN builds a go-sql-driver DSN from the database settings.
// DATETIME columns are scanned as time.Time.
func MySQLDSN(dbCfg config.DatabaseConfig) string {
	mc := mysql.NewConfig()
	mc.User = dbCfg.User
	mc.Passwd = dbCfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(dbCfg.Host, strconv.Itoa(dbCfg.Port))
	mc.DBName = dbCfg.Name
	mc.ParseTime = true
	return mc.FormatDSN()
}
