package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

const defaultPostgresDSN = "postgres://localhost/hotelcore?sslmode=disable"

// Postgres stores the document as a single JSONB row in a PostgreSQL server.
type Postgres struct {
	db  *sql.DB
	key string
}

// NewPostgres opens a connection using the provided DSN (falls back to a
// localhost default) and ensures the state table exists.
func NewPostgres(ctx context.Context, dsn, key string) (*Postgres, error) {
	if dsn == "" {
		dsn = defaultPostgresDSN
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state (
		slot TEXT PRIMARY KEY,
		payload JSONB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("ensure state table: %w", err)
	}
	return &Postgres{db: db, key: key}, nil
}

func (p *Postgres) Driver() Driver { return DriverPostgres }

// DB exposes the underlying sql.DB for integration testing hooks.
func (p *Postgres) DB() *sql.DB { return p.db }

func (p *Postgres) Load(ctx context.Context) ([]byte, bool, error) {
	var payload []byte
	err := p.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE slot = $1`, p.key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select state: %w", err)
	}
	return payload, true, nil
}

func (p *Postgres) Save(ctx context.Context, data []byte) error {
	if _, err := p.db.ExecContext(ctx,
		`INSERT INTO state(slot,payload) VALUES($1,$2) ON CONFLICT(slot) DO UPDATE SET payload=excluded.payload`,
		p.key, data); err != nil {
		return fmt.Errorf("upsert state: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (p *Postgres) Close() error { return p.db.Close() }
