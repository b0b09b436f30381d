package kvstore

import (
	"errors"
	"reflect"
	"testing"
)

type testRec struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ==================== Memory store ====================

func TestMemory_SetGetDelete(t *testing.T) {
	m := NewMemory()

	if _, err := m.Get("missing"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrKeyNotFound", err)
	}

	if err := m.Set("a", "1"); err != nil {
		t.Fatalf("Set error = %v", err)
	}
	v, err := m.Get("a")
	if err != nil || v != "1" {
		t.Errorf("Get(a) = %q, %v, want \"1\", nil", v, err)
	}

	// 覆蓋寫入
	m.Set("a", "2")
	v, _ = m.Get("a")
	if v != "2" {
		t.Errorf("Get(a) after overwrite = %q, want \"2\"", v)
	}

	if err := m.Delete("a"); err != nil {
		t.Fatalf("Delete error = %v", err)
	}
	if _, err := m.Get("a"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get(a) after delete error = %v, want ErrKeyNotFound", err)
	}
}

func TestMemory_Keys(t *testing.T) {
	m := NewMemory()
	m.Set("finance_budget_2025-02", "100")
	m.Set("finance_budget_2025-01", "200")
	m.Set("finance_todos", "[]")

	keys, err := m.Keys("finance_budget_")
	if err != nil {
		t.Fatalf("Keys error = %v", err)
	}
	want := []string{"finance_budget_2025-01", "finance_budget_2025-02"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Keys = %v, want %v", keys, want)
	}
}

// ==================== JSON sequences ====================

// TestSeq_RoundTrip 寫入再讀出應得到完全相同的序列
func TestSeq_RoundTrip(t *testing.T) {
	m := NewMemory()
	in := []testRec{{ID: 1, Name: "午餐"}, {ID: 2, Name: "晚餐聚會"}}

	if err := WriteSeq(m, "records", in); err != nil {
		t.Fatalf("WriteSeq error = %v", err)
	}
	out, err := ReadSeq[testRec](m, "records")
	if err != nil {
		t.Fatalf("ReadSeq error = %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

// TestSeq_MissingKey 不存在的 key 讀作空序列，不是錯誤
func TestSeq_MissingKey(t *testing.T) {
	m := NewMemory()
	out, err := ReadSeq[testRec](m, "never_written")
	if err != nil {
		t.Fatalf("ReadSeq error = %v, want nil", err)
	}
	if len(out) != 0 {
		t.Errorf("ReadSeq = %v, want empty", out)
	}
}

// TestSeq_Corrupt 損壞的內容要報錯，而不是靜默變成空
func TestSeq_Corrupt(t *testing.T) {
	m := NewMemory()
	m.Set("records", "{not json]")

	if _, err := ReadSeq[testRec](m, "records"); err == nil {
		t.Error("ReadSeq on corrupt value error = nil, want error")
	}
}

func TestSeq_NilWritesEmptyArray(t *testing.T) {
	m := NewMemory()
	if err := WriteSeq[testRec](m, "records", nil); err != nil {
		t.Fatalf("WriteSeq error = %v", err)
	}
	raw, _ := m.Get("records")
	if raw != "[]" {
		t.Errorf("stored value = %q, want \"[]\"", raw)
	}
}

// ==================== JSON objects ====================

func TestJSON_RoundTrip(t *testing.T) {
	m := NewMemory()
	in := testRec{ID: 7, Name: "設定"}
	if err := WriteJSON(m, "obj", in); err != nil {
		t.Fatalf("WriteJSON error = %v", err)
	}

	var out testRec
	if err := ReadJSON(m, "obj", &out); err != nil {
		t.Fatalf("ReadJSON error = %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestJSON_MissingKeyPassesThrough(t *testing.T) {
	m := NewMemory()
	var out testRec
	if err := ReadJSON(m, "missing", &out); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("ReadJSON(missing) error = %v, want ErrKeyNotFound", err)
	}
}
