package sqlite

import (
	"codeberg.org/miketth/hyprtint/pkg/settings"
	"codeberg.org/miketth/hyprtint/pkg/settings/sqlite/migrations"
	"database/sql"
	"errors"
	"fmt"
	"github.com/adrg/xdg"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const defaultName = "hyprtint/settings.db"

const (
	selectSettings = `select data from settings where id = 1`
	upsertSettings = `insert into settings (id, data, updated_at) values (1, ?, current_timestamp)
on conflict (id) do update set data = excluded.data, updated_at = excluded.updated_at`
)

// Store keeps the encoded settings blob in a single-row table.
type Store struct {
	db *sql.DB
}

func DefaultPath() (string, error) {
	path, err := xdg.DataFile(defaultName)
	if err != nil {
		return "", fmt.Errorf("resolve data file: %w", err)
	}
	return path, nil
}

func NewStore(filename string, log *zap.SugaredLogger) (*Store, error) {
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := migrations.Migrate(db, log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Read() ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(selectSettings).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no settings row", settings.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite select: %w", err)
	}
	return data, nil
}

func (s *Store) Write(data []byte) error {
	if _, err := s.db.Exec(upsertSettings, data); err != nil {
		return fmt.Errorf("sqlite upsert: %w", err)
	}
	return nil
}
