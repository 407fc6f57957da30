package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/go-sql-driver/mysql"

	"github.com/aghadi/aghadi-api/pkg/cl/config"
	"github.com/aghadi/aghadi-api/pkg/cl/logger"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Database.Driver = "sqlite3"
	cfg.Database.Path = filepath.Join(t.TempDir(), "db", "test.db")
	return cfg
}

func TestStartSQLite(t *testing.T) {
	ctx := context.Background()
	d := New(sqliteConfig(t), logger.NewNoopLogger())

	if err := d.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer d.Stop(ctx)

	if d.GetDB() == nil {
		t.Fatal("GetDB() returned nil after Start")
	}
	if got := d.GetDB().Stats().MaxOpenConnections; got != PoolSize {
		t.Errorf("MaxOpenConnections = %d, want %d", got, PoolSize)
	}
	if err := d.CheckConnection(ctx); err != nil {
		t.Errorf("CheckConnection() error = %v", err)
	}
}

func TestCheckConnectionAfterStop(t *testing.T) {
	ctx := context.Background()
	d := New(sqliteConfig(t), logger.NewNoopLogger())
	if err := d.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := d.Stop(ctx); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	if err := d.CheckConnection(ctx); err == nil {
		t.Error("CheckConnection() on closed pool should fail")
	}
}

func TestCheckConnectionNotStarted(t *testing.T) {
	d := New(config.Default(), logger.NewNoopLogger())
	if err := d.CheckConnection(context.Background()); err == nil {
		t.Error("CheckConnection() before Start should fail")
	}
	if err := d.Stop(context.Background()); err != nil {
		t.Errorf("Stop() before Start error = %v", err)
	}
}

func TestStartUnsupportedDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Database.Driver = "oracle"

	d := New(cfg, logger.NewNoopLogger())
	if err := d.Start(context.Background()); err == nil {
		t.Error("Start() with unsupported driver should fail")
	}
}

func TestStartMySQLDoesNotRequireServer(t *testing.T) {
	// sql.Open is lazy; an unreachable server only shows up in the connectivity check.
	cfg := config.Default()
	cfg.Database.Host = "127.0.0.1"
	cfg.Database.Port = 1

	d := New(cfg, logger.NewNoopLogger())
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer d.Stop(context.Background())

	if err := d.CheckConnection(context.Background()); err == nil {
		t.Error("CheckConnection() against closed port should fail")
	}
}

func TestMySQLDSN(t *testing.T) {
	dbCfg := config.DatabaseConfig{
		Host:     "db.local",
		Port:     3307,
		User:     "site",
		Password: "p@ss",
		Name:     "aghadi_site",
	}

	parsed, err := mysql.ParseDSN(MySQLDSN(dbCfg))
	if err != nil {
		t.Fatalf("ParseDSN() error = %v", err)
	}

	if parsed.User != "site" {
		t.Errorf("User = %q, want %q", parsed.User, "site")
	}
	if parsed.Passwd != "p@ss" {
		t.Errorf("Passwd = %q, want %q", parsed.Passwd, "p@ss")
	}
	if parsed.Addr != "db.local:3307" {
		t.Errorf("Addr = %q, want %q", parsed.Addr, "db.local:3307")
	}
	if parsed.DBName != "aghadi_site" {
		t.Errorf("DBName = %q, want %q", parsed.DBName, "aghadi_site")
	}
	if !parsed.ParseTime {
		t.Error("ParseTime = false, want true")
	}
}
