package history

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ppiankov/geoshort/internal/model"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleDocument() *model.Document {
	return &model.Document{
		Source: "proof.txt",
		Input:  `\\P:A/S:AB\\`,
		Results: []model.Result{
			{Index: 1, Original: "P:A", Translation: "Construct point A.", Shape: "point"},
			{Index: 2, Original: "S:AB", Translation: "Connect segment AB.", Shape: "segment"},
		},
		TranslatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestInitDB_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	for i := 0; i < 2; i++ {
		if err := InitDB(db); err != nil {
			t.Fatalf("migrate pass %d: %v", i+1, err)
		}
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	s := setupTestStore(t)
	doc := sampleDocument()

	id, err := s.Save(doc)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive id, got %d", id)
	}

	got, err := s.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if got.ID != id {
		t.Errorf("expected id %d, got %d", id, got.ID)
	}
	if got.Source != doc.Source || got.Input != doc.Input {
		t.Errorf("expected source/input %q/%q, got %q/%q", doc.Source, doc.Input, got.Source, got.Input)
	}
	if !got.TranslatedAt.Equal(doc.TranslatedAt) {
		t.Errorf("expected time %v, got %v", doc.TranslatedAt, got.TranslatedAt)
	}
	if len(got.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got.Results))
	}
	for i, r := range got.Results {
		if r != doc.Results[i] {
			t.Errorf("result %d: expected %+v, got %+v", i, doc.Results[i], r)
		}
	}
	if got.CopyText() != doc.CopyText() {
		t.Errorf("expected copy text %q, got %q", doc.CopyText(), got.CopyText())
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.Get(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_List(t *testing.T) {
	s := setupTestStore(t)

	first, _ := s.Save(sampleDocument())
	second, _ := s.Save(&model.Document{
		Input:   "C:O;5",
		Results: []model.Result{{Index: 1, Original: "C:O;5", Translation: "Construct a circle with center O and radius 5."}},
	})
	if _, err := s.Save(&model.Document{Input: ""}); err != nil {
		t.Fatalf("save empty document: %v", err)
	}

	all, err := s.List(0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(all))
	}
	if all[1].ID != second || all[2].ID != first {
		t.Errorf("expected newest first, got ids %d, %d, %d", all[0].ID, all[1].ID, all[2].ID)
	}
	if all[2].FirstStatement != "P:A" || all[2].StatementCount != 2 {
		t.Errorf("unexpected summary %+v", all[2])
	}
	if all[0].FirstStatement != "" || all[0].StatementCount != 0 {
		t.Errorf("expected empty summary for empty document, got %+v", all[0])
	}
	if all[0].TranslatedAt.IsZero() {
		t.Error("expected zero TranslatedAt to be stamped on save")
	}

	limited, err := s.List(1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected 1 document with limit, got %d", len(limited))
	}
}

func TestStore_Clear(t *testing.T) {
	s := setupTestStore(t)
	_, _ = s.Save(sampleDocument())
	_, _ = s.Save(sampleDocument())

	n, err := s.Clear()
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 removed, got %d", n)
	}

	all, err := s.List(0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty history, got %d", len(all))
	}
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	id, err := s.Save(sampleDocument())
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	_ = s.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	if _, err := reopened.Get(id); err != nil {
		t.Errorf("expected document to persist, got %v", err)
	}
}
