// Package store archives computed charts in SQLite or PostgreSQL.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"  // PostgreSQL driver.
	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/akhenakh/jyotish"
)

// ErrNotFound is returned when no chart has the requested id.
var ErrNotFound = errors.New("store: chart not found")

// schema is portable between SQLite and PostgreSQL and safe to run on every
// startup.
const schema = `
CREATE TABLE IF NOT EXISTS charts (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL DEFAULT '',
    birth      TEXT NOT NULL,
    mode       TEXT NOT NULL,
    jd_tt      DOUBLE PRECISION NOT NULL,
    nakshatra  TEXT NOT NULL,
    view       TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS charts_created_at ON charts (created_at);
`

// Record is one archived chart.
type Record struct {
	ID        string
	Name      string
	Birth     string // line format of jyotish.ParseBirthData
	Mode      string
	JDTT      float64
	Nakshatra string
	View      jyotish.ChartView
	CreatedAt time.Time
}

// BirthData parses the stored birth line.
func (r *Record) BirthData() (*jyotish.BirthData, error) {
	return jyotish.ParseBirthData(r.Birth)
}

// Store is a chart archive backed by database/sql.
type Store struct {
	db       *sql.DB
	postgres bool
}

// Open connects to the archive. driver is "sqlite" or "postgres"; the
// schema is created when missing.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	switch driver {
	case "sqlite":
		return openSQLite(ctx, dsn)
	case "postgres":
		return openPostgres(ctx, dsn)
	}
	return nil, fmt.Errorf("store: unsupported driver %q", driver)
}

func openSQLite(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	// SQLite has a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func openPostgres(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}
	return &Store{db: db, postgres: true}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// rebind rewrites ? placeholders to $n for PostgreSQL.
func (s *Store) rebind(q string) string {
	if !s.postgres {
		return q
	}
	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Save archives a computed chart with its birth data and returns the new
// record.
func (s *Store) Save(ctx context.Context, birth *jyotish.BirthData, c *jyotish.Chart) (Record, error) {
	view := c.View(false)
	data, err := json.Marshal(view)
	if err != nil {
		return Record{}, fmt.Errorf("store: encode chart: %w", err)
	}

	r := Record{
		ID:        uuid.NewString(),
		Name:      birth.Name,
		Birth:     birth.Line(),
		Mode:      c.Mode().String(),
		JDTT:      c.Instant().JDTT,
		Nakshatra: c.Nakshatra().Name,
		View:      view,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	const q = `
		INSERT INTO charts (id, name, birth, mode, jd_tt, nakshatra, view, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, s.rebind(q),
		r.ID, r.Name, r.Birth, r.Mode, r.JDTT, r.Nakshatra, string(data), r.CreatedAt); err != nil {
		return Record{}, fmt.Errorf("store: insert chart: %w", err)
	}
	return r, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var (
		r    Record
		view string
	)
	if err := row.Scan(&r.ID, &r.Name, &r.Birth, &r.Mode, &r.JDTT, &r.Nakshatra, &view, &r.CreatedAt); err != nil {
		return Record{}, err
	}
	if err := json.Unmarshal([]byte(view), &r.View); err != nil {
		return Record{}, fmt.Errorf("store: decode chart %s: %w", r.ID, err)
	}
	return r, nil
}

// Get returns one archived chart.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Record{}, ErrNotFound
	}
	const q = `
		SELECT id, name, birth, mode, jd_tt, nakshatra, view, created_at
		FROM charts
		WHERE id = ?`
	r, err := scanRecord(s.db.QueryRowContext(ctx, s.rebind(q), id))
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("store: get chart %s: %w", id, err)
	}
	return r, nil
}

// List returns the most recent charts, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	const q = `
		SELECT id, name, birth, mode, jd_tt, nakshatra, view, created_at
		FROM charts
		ORDER BY created_at DESC, id
		LIMIT ?`
	rows, err := s.db.QueryContext(ctx, s.rebind(q), limit)
	if err != nil {
		return nil, fmt.Errorf("store: list charts: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("store: list charts: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list charts: %w", err)
	}
	return out, nil
}

// Delete removes a chart.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.rebind("DELETE FROM charts WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("store: delete chart %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete chart %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
