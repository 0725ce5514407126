package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ppiankov/geoshort/internal/model"
)

// ErrNotFound is returned by Get for an unknown document id
var ErrNotFound = errors.New("document not found")

// DBExecutor accepts either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// InitDB runs the schema migrations on db
func InitDB(db DBExecutor) error {
	for _, s := range strings.Split(migrationsSQL, ";") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Summary is one row of the history listing
type Summary struct {
	ID             int64
	Source         string
	FirstStatement string
	StatementCount int
	TranslatedAt   time.Time
}

// Store keeps translated documents in SQLite
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	// one connection keeps :memory: databases and foreign key pragmas stable
	db.SetMaxOpenConns(1)

	if err := InitDB(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// NewStore wraps an already migrated database
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores doc with its results and returns the new document id
func (s *Store) Save(doc *model.Document) (id int64, err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	id, err = insertDocument(tx, doc)
	if err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

func insertDocument(db DBExecutor, doc *model.Document) (int64, error) {
	translatedAt := doc.TranslatedAt
	if translatedAt.IsZero() {
		translatedAt = time.Now().UTC()
	}

	res, err := db.Exec(
		`INSERT INTO documents (source, input, statement_count, translated_at) VALUES (?, ?, ?, ?)`,
		doc.Source, doc.Input, len(doc.Results), translatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("insert document: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("document id: %w", err)
	}

	for _, r := range doc.Results {
		if _, err := db.Exec(
			`INSERT INTO results (document_id, idx, original, translation, shape) VALUES (?, ?, ?, ?, ?)`,
			id, r.Index, r.Original, r.Translation, r.Shape,
		); err != nil {
			return 0, fmt.Errorf("insert result %d: %w", r.Index, err)
		}
	}

	return id, nil
}

// List returns the most recent documents first. A non-positive limit
// returns everything.
func (s *Store) List(limit int) ([]Summary, error) {
	query := `SELECT d.id, d.source, d.statement_count, d.translated_at,
			         IFNULL((SELECT original FROM results r WHERE r.document_id = d.id ORDER BY r.idx LIMIT 1), '')
			  FROM documents d
			  ORDER BY d.id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var at string
		if err := rows.Scan(&sum.ID, &sum.Source, &sum.StatementCount, &at, &sum.FirstStatement); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		sum.TranslatedAt = parseTime(at)
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return out, nil
}

// Get loads one document with its results in index order
func (s *Store) Get(id int64) (*model.Document, error) {
	doc := &model.Document{ID: id}
	var at string

	err := s.db.QueryRow(
		`SELECT source, input, translated_at FROM documents WHERE id = ?`, id,
	).Scan(&doc.Source, &doc.Input, &at)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	doc.TranslatedAt = parseTime(at)

	rows, err := s.db.Query(
		`SELECT idx, original, translation, shape FROM results WHERE document_id = ? ORDER BY idx`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("get results: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var r model.Result
		if err := rows.Scan(&r.Index, &r.Original, &r.Translation, &r.Shape); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		doc.Results = append(doc.Results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get results: %w", err)
	}

	return doc, nil
}

// Clear deletes every stored document and returns how many were removed
func (s *Store) Clear() (int64, error) {
	if _, err := s.db.Exec(`DELETE FROM results`); err != nil {
		return 0, fmt.Errorf("clear results: %w", err)
	}
	res, err := s.db.Exec(`DELETE FROM documents`)
	if err != nil {
		return 0, fmt.Errorf("clear documents: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear documents: %w", err)
	}
	return n, nil
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
