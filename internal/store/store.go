package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/mentorlabs/mentor/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Mentor is single-user; WAL plus relaxed sync is the right trade for a
// local event log.
var sqlitePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA foreign_keys = ON",
	"PRAGMA synchronous = NORMAL",
}

// Store wraps the SQLite database and hands out repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// Open connects to the SQLite database at dsn, applies pragmas, and
// runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	for _, pragma := range sqlitePragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Store{db: db, client: client, seq: seq}, nil
}

// Client exposes the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB exposes the raw database handle for queries ent cannot express.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.client.Close()
}

// SnapshotRepo returns the snapshot repository.
func (s *Store) SnapshotRepo() SnapshotRepo {
	return &snapshotRepo{client: s.client}
}

// EventRepo returns the event repository.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

// Reset wipes all learner data: snapshots, every event table, and the
// sequence counter. The schema stays.
func (s *Store) Reset(ctx context.Context) error {
	deletes := []struct {
		name string
		run  func() error
	}{
		{"snapshots", func() error { _, err := s.client.Snapshot.Delete().Exec(ctx); return err }},
		{"session events", func() error { _, err := s.client.SessionEvent.Delete().Exec(ctx); return err }},
		{"answer events", func() error { _, err := s.client.AnswerEvent.Delete().Exec(ctx); return err }},
		{"chat events", func() error { _, err := s.client.ChatEvent.Delete().Exec(ctx); return err }},
		{"LLM request events", func() error { _, err := s.client.LLMRequestEvent.Delete().Exec(ctx); return err }},
	}
	for _, d := range deletes {
		if err := d.run(); err != nil {
			return fmt.Errorf("delete %s: %w", d.name, err)
		}
	}
	if _, err := s.db.ExecContext(ctx, `UPDATE global_sequence SET next_val = 1 WHERE id = 1`); err != nil {
		return fmt.Errorf("reset sequence: %w", err)
	}
	return nil
}

// DefaultDBPath resolves the database file location: MENTOR_DB if set,
// otherwise $XDG_DATA_HOME/mentor/mentor.db, falling back to
// ~/.local/share/mentor/mentor.db.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MENTOR_DB"); p != "" {
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

	p := filepath.Join(dataHome, "mentor", "mentor.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if needed.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
