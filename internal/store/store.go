// Package store keeps agent records in SQLite and turns changes to them into
// added / changed / removed events for the simulation.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/lao-tseu-is-alive/swarm-scape/pkg/flock"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("agent record not found")

type Store struct {
	db *sql.DB
}

// Open creates or opens the database at path. ":memory:" is accepted for tests.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS agents (
		id TEXT PRIMARY KEY,
		initial_x REAL,
		initial_y REAL,
		initial_z REAL,
		color TEXT,
		updated_at TEXT NOT NULL
	);`)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

// Put inserts or replaces a record. A record without an id gets a new UUID;
// the stored record is returned.
func (s *Store) Put(ctx context.Context, cfg flock.AgentConfig) (flock.AgentConfig, error) {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO agents (id, initial_x, initial_y, initial_z, color, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			initial_x = excluded.initial_x,
			initial_y = excluded.initial_y,
			initial_z = excluded.initial_z,
			color = excluded.color,
			updated_at = excluded.updated_at;`,
		cfg.ID, nullFloat(cfg.InitialX), nullFloat(cfg.InitialY), nullFloat(cfg.InitialZ),
		nullString(cfg.Color), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return cfg, fmt.Errorf("failed to store agent %q: %w", cfg.ID, err)
	}
	return cfg, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAgent(row scanner) (flock.AgentConfig, error) {
	var (
		cfg     flock.AgentConfig
		x, y, z sql.NullFloat64
		color   sql.NullString
	)
	if err := row.Scan(&cfg.ID, &x, &y, &z, &color); err != nil {
		return cfg, err
	}
	if x.Valid {
		cfg.InitialX = &x.Float64
	}
	if y.Valid {
		cfg.InitialY = &y.Float64
	}
	if z.Valid {
		cfg.InitialZ = &z.Float64
	}
	if color.Valid {
		cfg.Color = &color.String
	}
	return cfg, nil
}

func (s *Store) Get(ctx context.Context, id string) (flock.AgentConfig, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, initial_x, initial_y, initial_z, color FROM agents WHERE id = ?;`, id)
	cfg, err := scanAgent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return cfg, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read agent %q: %w", id, err)
	}
	return cfg, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM agents WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete agent %q: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return nil
}

// List returns every record ordered by id.
func (s *Store) List(ctx context.Context) ([]flock.AgentConfig, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, initial_x, initial_y, initial_z, color FROM agents ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	defer rows.Close()

	var out []flock.AgentConfig
	for rows.Next() {
		cfg, err := scanAgent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agent: %w", err)
		}
		out = append(out, cfg)
	}
	return out, rows.Err()
}
