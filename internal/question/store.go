// File path: internal/question/store.go
package question

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/dkoushik/prepwell/internal/common"
)

// Store wraps a pooled sqlx.DB connection to the SQLite question corpus.
type Store struct {
	db *sqlx.DB
}

// StoreConfig controls the SQLite connection pool.
type StoreConfig struct {
	Path         string
	MaxOpenConns int
	MaxIdleConns int
	BusyTimeout  time.Duration
}

// DefaultStoreConfig returns the pool settings used when no overrides are
// provided.
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		Path:         filepath.Join("data", "corpus.db"),
		MaxOpenConns: 4,
		MaxIdleConns: 2,
		BusyTimeout:  5 * time.Second,
	}
}

// Open constructs a Store backed by the SQLite database at the provided path.
// The schema is migrated on first use.
func Open(path string) (*Store, error) {
	cfg := DefaultStoreConfig()
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		cfg.Path = trimmed
	}
	return OpenWithConfig(cfg)
}

// OpenWithConfig constructs a Store using the provided configuration.
func OpenWithConfig(cfg StoreConfig) (*Store, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("sqlite path required")
	}
	busy := int(cfg.BusyTimeout / time.Millisecond)
	if busy <= 0 {
		busy = 5000
	}
	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=1", cfg.Path, busy)
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the underlying database resources.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS questions (
    id             TEXT PRIMARY KEY,
    text           TEXT NOT NULL,
    options        TEXT NOT NULL,
    correct_answer TEXT NOT NULL,
    explanation    TEXT NOT NULL DEFAULT '',
    subject        TEXT NOT NULL DEFAULT '',
    topics         TEXT NOT NULL DEFAULT '[]',
    difficulty     TEXT NOT NULL DEFAULT 'medium',
    provenance     TEXT NOT NULL DEFAULT 'db',
    created_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_questions_subject ON questions(subject);
CREATE INDEX IF NOT EXISTS idx_questions_difficulty ON questions(difficulty);
`

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate questions schema: %w", err)
	}
	return nil
}

// Filter narrows FindMany results. Zero values match everything.
type Filter struct {
	Subject    string
	Difficulty Difficulty
	Limit      int
}

// FindByID resolves a single question; ErrNotFound when the id is unknown.
func (s *Store) FindByID(ctx context.Context, id string) (Question, error) {
	var q Question
	err := s.db.GetContext(ctx, &q,
		`SELECT id, text, options, correct_answer, explanation, subject, topics, difficulty, provenance
		 FROM questions WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Question{}, ErrNotFound
	}
	if err != nil {
		return Question{}, fmt.Errorf("find question %s: %w", id, err)
	}
	q.Difficulty = NormalizeDifficulty(string(q.Difficulty))
	return q, nil
}

// FindMany returns questions matching the filter in insertion order.
func (s *Store) FindMany(ctx context.Context, filter Filter) ([]Question, error) {
	query := `SELECT id, text, options, correct_answer, explanation, subject, topics, difficulty, provenance
		 FROM questions`
	var clauses []string
	var args []interface{}
	if trimmed := strings.TrimSpace(filter.Subject); trimmed != "" {
		clauses = append(clauses, "subject = ? COLLATE NOCASE")
		args = append(args, trimmed)
	}
	if filter.Difficulty != "" {
		clauses = append(clauses, "difficulty = ?")
		args = append(args, string(filter.Difficulty))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY rowid"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	var out []Question
	if err := s.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}
	for i := range out {
		out[i].Difficulty = NormalizeDifficulty(string(out[i].Difficulty))
	}
	return out, nil
}

// Insert stores a question, replacing any existing row with the same id.
func (s *Store) Insert(ctx context.Context, q Question) error {
	if err := q.Validate(); err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	if q.Provenance == "" {
		q.Provenance = ProvenanceDB
	}
	q.Difficulty = NormalizeDifficulty(string(q.Difficulty))
	_, err := s.db.NamedExecContext(ctx,
		`INSERT OR REPLACE INTO questions
		 (id, text, options, correct_answer, explanation, subject, topics, difficulty, provenance)
		 VALUES (:id, :text, :options, :correct_answer, :explanation, :subject, :topics, :difficulty, :provenance)`, q)
	if err != nil {
		return fmt.Errorf("insert question %s: %w", q.ID, err)
	}
	return nil
}

// Count reports the number of stored questions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM questions`); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

// Subjects lists the distinct subjects present in the corpus.
func (s *Store) Subjects(ctx context.Context) ([]string, error) {
	var out []string
	err := s.db.SelectContext(ctx, &out,
		`SELECT DISTINCT subject FROM questions WHERE subject != '' ORDER BY subject`)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return out, nil
}

// SeedIfEmpty loads the built-in starter corpus when the store holds no
// questions, so a fresh install can answer requests immediately.
func (s *Store) SeedIfEmpty(ctx context.Context) error {
	logger := common.Logger()
	n, err := s.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Debug("question: corpus already populated", "count", n)
		return nil
	}
	for _, q := range seedQuestions() {
		if err := s.Insert(ctx, q); err != nil {
			return fmt.Errorf("seed corpus: %w", err)
		}
	}
	logger.Info("question: seeded starter corpus", "count", len(seedQuestions()))
	return nil
}
