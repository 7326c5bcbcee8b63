package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store persists runtime-learned merchant mappings. The compiled-in seed
// table never touches the database; only user corrections land here.
type Store struct {
	db *sql.DB
}

// Learned is one persisted merchant mapping.
type Learned struct {
	Merchant string
	Category string
}

func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create db dir")
	}
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping store")
	}
	return &Store{db: db}, nil
}

func (s *Store) Migrate(ctx context.Context) error {
	b, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, string(b))
	return errors.Wrap(err, "migrate")
}

// Upsert records a learned mapping; the last write wins.
func (s *Store) Upsert(ctx context.Context, merchant, category string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO learned_merchants (merchant, category) VALUES (?, ?)
		ON CONFLICT(merchant) DO UPDATE SET category=excluded.category`,
		merchant, category)
	return errors.Wrap(err, "upsert merchant")
}

// All returns every learned mapping, used to re-seed the in-memory index at
// startup.
func (s *Store) All(ctx context.Context) ([]Learned, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT merchant, category FROM learned_merchants`)
	if err != nil {
		return nil, errors.Wrap(err, "list merchants")
	}
	defer rows.Close()
	var out []Learned
	for rows.Next() {
		var l Learned
		if err := rows.Scan(&l.Merchant, &l.Category); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
