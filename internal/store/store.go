package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the bun client over a local SQLite file and hands out
// repositories.
type Store struct {
	sqldb *sql.DB
	db    *bun.DB
}

// Open connects to the SQLite database at dsn, applies recommended pragmas
// and creates any missing tables.
func Open(dsn string) (*Store, error) {
	sqldb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(sqldb); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	if err := createTables(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &Store{sqldb: sqldb, db: db}, nil
}

// DB returns the underlying bun client for raw queries.
func (s *Store) DB() *bun.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Users returns a UserRepo backed by this store.
func (s *Store) Users() UserRepo { return &userRepo{db: s.db} }

// Scores returns a ScoreRepo backed by this store.
func (s *Store) Scores() ScoreRepo { return &scoreRepo{db: s.db} }

// History returns a HistoryRepo backed by this store.
func (s *Store) History() HistoryRepo { return &historyRepo{db: s.db} }

// Certificates returns a CertificateRepo backed by this store.
func (s *Store) Certificates() CertificateRepo { return &certificateRepo{db: s.db} }

// Leaderboard returns a LeaderboardRepo backed by this store.
func (s *Store) Leaderboard() LeaderboardRepo { return &leaderboardRepo{db: s.db} }

// GenerationLogs returns a GenerationLogRepo backed by this store.
func (s *Store) GenerationLogs() GenerationLogRepo { return &generationLogRepo{db: s.db} }

// applyPragmas configures SQLite for single-user local use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// createTables creates the schema if it doesn't exist yet. The unique
// index on (user_id, topic) backs the certificate upsert.
func createTables(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*User)(nil),
		(*ScoreRecord)(nil),
		(*AssessmentHistory)(nil),
		(*Certificate)(nil),
		(*LeaderboardEntry)(nil),
		(*GenerationLog)(nil),
	}
	for _, m := range models {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}

	indexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_certificates_user_topic ON certificates (user_id, topic)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_leaderboard_user_topic ON leaderboard_entries (user_id, topic)`,
		`CREATE INDEX IF NOT EXISTS idx_score_records_user ON score_records (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_history_user ON assessment_history (user_id)`,
	}
	for _, ddl := range indexes {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("%s: %w", ddl, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. SKILLCHECK_DB environment variable
// 2. $XDG_DATA_HOME/skillcheck/skillcheck.db
// 3. ~/.local/share/skillcheck/skillcheck.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("SKILLCHECK_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "skillcheck", "skillcheck.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
