package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWALOnFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("PRAGMA journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='slots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "slots" {
		t.Errorf("table name = %q, want 'slots'", name)
	}
}

// exerciseKV runs the same contract checks against any KV.
func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("get missing = ok %v, err %v; want absent", ok, err)
	}

	if err := kv.Set(ctx, "slot", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := kv.Get(ctx, "slot")
	if err != nil || !ok {
		t.Fatalf("get after set = ok %v, err %v", ok, err)
	}
	if string(v) != `{"a":1}` {
		t.Errorf("value = %q", v)
	}

	if err := kv.Set(ctx, "slot", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = kv.Get(ctx, "slot")
	if string(v) != `{"a":2}` {
		t.Errorf("value after overwrite = %q", v)
	}

	if err := kv.Remove(ctx, "slot"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "slot"); ok {
		t.Error("slot still present after remove")
	}
	if err := kv.Remove(ctx, "slot"); err != nil {
		t.Errorf("remove absent key: %v", err)
	}
}

func TestSQLiteKV(t *testing.T) {
	exerciseKV(t, openTestStore(t))
}

func TestMemoryKV(t *testing.T) {
	exerciseKV(t, NewMemory())
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	buf := []byte("abc")
	_ = m.Set(ctx, "k", buf)
	buf[0] = 'x'

	v, _, _ := m.Get(ctx, "k")
	if string(v) != "abc" {
		t.Errorf("value = %q, want abc", v)
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Set(ctx, "userProgress", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	v, ok, err := s.Get(ctx, "userProgress")
	if err != nil || !ok || string(v) != `[]` {
		t.Errorf("after reopen = %q, %v, %v", v, ok, err)
	}
}

func TestDefaultDBPathEnv(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "q.db")
	t.Setenv("QUIZPLAYER_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestDefaultDBPathXDG(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("QUIZPLAYER_DB", "")
	t.Setenv("XDG_DATA_HOME", dataHome)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	want := filepath.Join(dataHome, "quizplayer", "quizplayer.db")
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestSetUpsertsOneRowPerKey(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	stamp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return stamp }

	for _, v := range []string{`[1]`, `[2]`, `[3]`} {
		if err := s.Set(ctx, "userProgress", []byte(v)); err != nil {
			t.Fatalf("set %s: %v", v, err)
		}
	}
	if err := s.Set(ctx, "darkMode", nil); err != nil {
		t.Fatalf("set empty value: %v", err)
	}

	var rows int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM slots WHERE key = 'userProgress'").Scan(&rows); err != nil {
		t.Fatalf("count: %v", err)
	}
	if rows != 1 {
		t.Errorf("rows for key = %d, want 1", rows)
	}

	v, ok, err := s.Get(ctx, "darkMode")
	if err != nil || !ok || len(v) != 0 {
		t.Errorf("empty value = %q, %v, %v; want present and empty", v, ok, err)
	}
}
