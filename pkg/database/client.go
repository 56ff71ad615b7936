// Package database provides PostgreSQL clients for the two logical stores
// (identity and work) plus migration utilities.
package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql

	"github.com/specsmith/specsmith/ent"
)

//go:embed migrations
var migrationsFS embed.FS

// Store selects which logical store a client connects to. The two stores
// never share a transaction; cross-store references are opaque IDs.
type Store string

const (
	// StoreIdentity holds users, credentials, refresh tokens, and API keys.
	StoreIdentity Store = "identity"
	// StoreWork holds projects, sessions, specifications, conflicts, quality
	// metrics, activity, and generated artifacts.
	StoreWork Store = "work"
)

// Config holds connection settings for one logical store.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DSN returns the pgx-compatible connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// Client wraps an Ent client bound to one logical store.
type Client struct {
	*ent.Client
	store Store
	db    *stdsql.DB
}

// DB returns the underlying connection for health checks and direct queries.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// Store reports which logical store this client is bound to.
func (c *Client) Store() Store {
	return c.store
}

// NewClientFromEnt wraps an existing Ent client (useful for testing).
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB, store Store) *Client {
	return &Client{
		Client: entClient,
		store:  store,
		db:     db,
	}
}

// NewClient opens a connection to one logical store, configures pooling,
// and applies that store's pending migrations.
func NewClient(ctx context.Context, store Store, cfg Config) (*Client, error) {
	db, err := stdsql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", store, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s store: %w", store, err)
	}

	// Ent rides on the pooled pgx connection.
	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	if err := runMigrations(db, store, cfg); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("failed to run %s migrations: %w", store, err)
	}

	return &Client{
		Client: entClient,
		store:  store,
		db:     db,
	}, nil
}

// runMigrations applies the store's embedded SQL migrations via golang-migrate.
//
// Workflow: schema changes are edited in ent/schema/*.go, the matching SQL is
// generated into pkg/database/migrations/<store>/, reviewed, committed, and
// embedded into the binary. Pending migrations are applied on startup.
func runMigrations(db *stdsql.DB, store Store, cfg Config) error {
	dir := "migrations/" + string(store)

	hasMigrations, err := hasEmbeddedMigrations(dir)
	if err != nil {
		return fmt.Errorf("failed to check embedded migrations: %w", err)
	}
	if !hasMigrations {
		return fmt.Errorf("no embedded migration files for store %q, binary may be built incorrectly", store)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, cfg.Database, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Close only the source driver. m.Close() would also close the database
	// driver, which closes the shared *sql.DB underneath the Ent client.
	if err := sourceDriver.Close(); err != nil {
		return fmt.Errorf("failed to close migration source: %w", err)
	}

	return nil
}

// hasEmbeddedMigrations checks whether dir contains any .sql migration files.
func hasEmbeddedMigrations(dir string) (bool, error) {
	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read embedded migrations: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && len(entry.Name()) > 4 && entry.Name()[len(entry.Name())-4:] == ".sql" {
			return true, nil
		}
	}
	return false, nil
}
