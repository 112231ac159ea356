package database

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go-intake-backend/pkg/apperror"
	"go-intake-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	URL                   string
	UseEncryptedTransport bool
	// EnvVar names the environment variable the URL was resolved from, so
	// an unset-connection-string error points at the right knob.
	EnvVar string
}

// Postgres owns the process-wide connection pool. The pool is created on
// first use so that a missing connection string surfaces as a per-request
// error instead of a startup crash; a failed attempt is retried on the next
// request rather than cached.
type Postgres struct {
	cfg Config

	mu   sync.Mutex
	pool *pgxpool.Pool
}

func NewPostgres(cfg Config) *Postgres {
	return &Postgres{cfg: cfg}
}

// Pool returns the shared connection pool, constructing it if needed.
// Construction failures come back as an application error, never as a raw
// driver error.
func (p *Postgres) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pool != nil {
		return p.pool, nil
	}

	pool, err := connect(ctx, p.cfg)
	if err != nil {
		logger.Log.Error("Failed to initialize database pool", "error", err)
		return nil, apperror.Unavailable(err)
	}
	p.pool = pool
	return p.pool, nil
}

func (p *Postgres) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
}

func connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	if cfg.URL == "" {
		envVar := cfg.EnvVar
		if envVar == "" {
			envVar = "DATABASE_URL"
		}
		return nil, fmt.Errorf("database connection string is not configured (set %s)", envVar)
	}

	connString := cfg.URL
	if cfg.UseEncryptedTransport && !strings.Contains(connString, "sslmode=") {
		sep := "?"
		if strings.Contains(connString, "?") {
			sep = "&"
		}
		connString += sep + "sslmode=require"
	}

	poolCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("invalid database connection string: %w", err)
	}

	// Fix for Supabase Transaction Mode (PgBouncer)
	// Prevents "prepared statement already exists" errors
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	poolCfg.MaxConns = 25
	poolCfg.MinConns = 5
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	logger.Log.Info("Database connection established successfully")
	return pool, nil
}
