// Package store persists board highlights in PostgreSQL or SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/NikolaTosic-sudo/chess-marks/internal/highlight"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var ErrNotFound = errors.New("board not found")

type Store struct {
	db     *sql.DB
	driver string
}

func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("store: unsupported driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: cannot open database: %w", err)
	}

	// One connection keeps a ":memory:" database alive and shared.
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: cannot connect to database: %w", err)
	}

	s := &Store{db: db, driver: driver}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migration failed: %w", err)
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS boards (
			id TEXT PRIMARY KEY,
			passcode_hash TEXT NOT NULL DEFAULT '',
			created_at BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS highlights (
			board_id TEXT NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
			tile TEXT NOT NULL,
			color TEXT NOT NULL,
			PRIMARY KEY (board_id, tile)
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// rebind rewrites ? placeholders into $n for postgres.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

func (s *Store) CreateBoard(ctx context.Context, id uuid.UUID, passcodeHash string) error {
	_, err := s.db.ExecContext(ctx,
		s.rebind(`INSERT INTO boards (id, passcode_hash, created_at) VALUES (?, ?, ?)`),
		id.String(), passcodeHash, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("store: create board %v: %w", id, err)
	}

	return nil
}

func (s *Store) PasscodeHash(ctx context.Context, id uuid.UUID) (string, error) {
	var hash string
	err := s.db.QueryRowContext(ctx,
		s.rebind(`SELECT passcode_hash FROM boards WHERE id = ?`),
		id.String(),
	).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("store: board %v: %w", id, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("store: board %v: %w", id, err)
	}

	return hash, nil
}

// SaveHighlight stores the color of a tile; highlight.None deletes the row.
func (s *Store) SaveHighlight(ctx context.Context, id uuid.UUID, tile string, c highlight.SelectedColor) error {
	var err error
	if c == highlight.None {
		_, err = s.db.ExecContext(ctx,
			s.rebind(`DELETE FROM highlights WHERE board_id = ? AND tile = ?`),
			id.String(), tile,
		)
	} else {
		_, err = s.db.ExecContext(ctx,
			s.rebind(`INSERT INTO highlights (board_id, tile, color) VALUES (?, ?, ?)
				ON CONFLICT (board_id, tile) DO UPDATE SET color = excluded.color`),
			id.String(), tile, string(c),
		)
	}
	if err != nil {
		return fmt.Errorf("store: save %v on board %v: %w", tile, id, err)
	}

	return nil
}

func (s *Store) Highlights(ctx context.Context, id uuid.UUID) (map[string]highlight.SelectedColor, error) {
	rows, err := s.db.QueryContext(ctx,
		s.rebind(`SELECT tile, color FROM highlights WHERE board_id = ?`),
		id.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("store: highlights of board %v: %w", id, err)
	}
	defer rows.Close()

	highlights := map[string]highlight.SelectedColor{}
	for rows.Next() {
		var tile, color string
		if err := rows.Scan(&tile, &color); err != nil {
			return nil, fmt.Errorf("store: scan highlight: %w", err)
		}

		c, err := highlight.ParseColor(color)
		if err != nil {
			return nil, fmt.Errorf("store: tile %v: %w", tile, err)
		}
		highlights[tile] = c
	}

	return highlights, rows.Err()
}

func (s *Store) ClearHighlights(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx,
		s.rebind(`DELETE FROM highlights WHERE board_id = ?`),
		id.String(),
	)
	if err != nil {
		return fmt.Errorf("store: clear board %v: %w", id, err)
	}

	return nil
}
