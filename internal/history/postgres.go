package history

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/strategic-council/screener/config"
	"github.com/strategic-council/screener/models"
)

// PostgresStore persists the history in a single table, one row per entry,
// ordered by insertion id.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens the database and ensures the schema exists.
func NewPostgresStore(cfg config.PostgresConfig) (*PostgresStore, error) {
	dsn := cfg.URL
	if dsn == "" {
		host := cfg.Host
		port := cfg.Port
		ssl := cfg.SSLMode
		if host == "" {
			host = "localhost"
		}
		if port == "" {
			port = "5432"
		}
		if ssl == "" {
			ssl = "disable"
		}
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", cfg.User, cfg.Password, host, port, cfg.DBName, ssl)
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	ps := &PostgresStore{db: db}
	if err := ps.ensureSchema(); err != nil {
		return nil, err
	}
	return ps, nil
}

func (s *PostgresStore) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS report_history (
    id BIGSERIAL PRIMARY KEY,
    cadence TEXT NOT NULL,
    entry_date TEXT NOT NULL,
    summary TEXT NOT NULL
);
`)
	return err
}

// Load reads every entry ordered by insertion. An empty table yields an empty
// snapshot.
func (s *PostgresStore) Load(ctx context.Context) (*Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT cadence, entry_date, summary FROM report_history ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	defer rows.Close()

	snap := NewSnapshot()
	for rows.Next() {
		var cadence, date, summary string
		if err := rows.Scan(&cadence, &date, &summary); err != nil {
			return nil, err
		}
		c := models.Cadence(cadence)
		if !c.Valid() {
			continue
		}
		snap.Entries[c] = append(snap.Entries[c], models.HistoryEntry{Date: date, Summary: summary})
	}
	return snap, rows.Err()
}

// Save replaces the whole table within one transaction, preserving per-cadence
// entry order.
func (s *PostgresStore) Save(ctx context.Context, snap *Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM report_history`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	for _, c := range models.AllCadences() {
		for _, e := range snap.Entries[c] {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO report_history (cadence, entry_date, summary) VALUES ($1, $2, $3)`,
				string(c), e.Date, e.Summary); err != nil {
				return fmt.Errorf("inserting entry: %w", err)
			}
		}
	}
	return tx.Commit()
}

// Close closes the underlying database handle.
func (s *PostgresStore) Close() error { return s.db.Close() }
