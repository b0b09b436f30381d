package kvstore

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"finance-planner/internal/config"
)

func openTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(config.StorageConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("OpenSQLite error = %v", err)
	}
	return s
}

func TestSQLite_SetGetDelete(t *testing.T) {
	s := openTestSQLite(t)

	if _, err := s.Get("missing"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrKeyNotFound", err)
	}

	if err := s.Set("finance_todos", "[]"); err != nil {
		t.Fatalf("Set error = %v", err)
	}
	v, err := s.Get("finance_todos")
	if err != nil || v != "[]" {
		t.Errorf("Get = %q, %v, want \"[]\", nil", v, err)
	}

	// upsert 覆蓋
	if err := s.Set("finance_todos", `[{"id":1}]`); err != nil {
		t.Fatalf("Set (overwrite) error = %v", err)
	}
	v, _ = s.Get("finance_todos")
	if v != `[{"id":1}]` {
		t.Errorf("Get after overwrite = %q", v)
	}

	if err := s.Delete("finance_todos"); err != nil {
		t.Fatalf("Delete error = %v", err)
	}
	if _, err := s.Get("finance_todos"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get after delete error = %v, want ErrKeyNotFound", err)
	}
}

func TestSQLite_KeysAndSeqRoundTrip(t *testing.T) {
	s := openTestSQLite(t)

	in := []testRec{{ID: 1, Name: "交通費"}, {ID: 2, Name: "午餐"}}
	if err := WriteSeq(s, "finance_expenses", in); err != nil {
		t.Fatalf("WriteSeq error = %v", err)
	}
	out, err := ReadSeq[testRec](s, "finance_expenses")
	if err != nil {
		t.Fatalf("ReadSeq error = %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}

	s.Set("finance_budget_2025-06", "8000")
	keys, err := s.Keys("finance_budget_")
	if err != nil {
		t.Fatalf("Keys error = %v", err)
	}
	if len(keys) != 1 || keys[0] != "finance_budget_2025-06" {
		t.Errorf("Keys = %v", keys)
	}
}
