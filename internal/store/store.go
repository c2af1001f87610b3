package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"storefront/internal/config"
)

// Store owns the PostgreSQL connection pool. It is opened once at process
// start and injected into the repositories; nothing else in the application
// holds database state.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// Open establishes the connection pool and verifies connectivity with a ping.
func Open(cfg config.DatabaseConfig, log *slog.Logger) (*Store, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info("connected to database", "host", cfg.Host, "name", cfg.Name)
	return &Store{db: db, log: log}, nil
}

// DB returns the underlying pool for the repositories.
func (s *Store) DB() *sql.DB {
	return s.db
}

// HealthCheck runs a trivial query against the store. The pool re-establishes
// dropped connections here; no other code path reconnects.
func (s *Store) HealthCheck(ctx context.Context) error {
	var one int
	if err := s.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		s.log.Error("database health check failed", "error", err)
		return fmt.Errorf("database unreachable: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
