package budget

import (
	"testing"

	"finance-planner/internal/kvstore"

	"github.com/shopspring/decimal"
)

func TestBudget_SetGet(t *testing.T) {
	s := New(kvstore.NewMemory())

	// 未設置的月份：ok=false，不是錯誤
	amount, ok, err := s.Get(2025, 6)
	if err != nil {
		t.Fatalf("Get error = %v", err)
	}
	if ok || !amount.Equal(decimal.Zero) {
		t.Errorf("Get(unset) = %s, %v, want 0, false", amount, ok)
	}

	if err := s.Set(2025, 6, decimal.NewFromInt(8000)); err != nil {
		t.Fatalf("Set error = %v", err)
	}
	amount, ok, err = s.Get(2025, 6)
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if !amount.Equal(decimal.NewFromInt(8000)) {
		t.Errorf("amount = %s, want 8000", amount)
	}
}

// TestBudget_Overwrite 同月重複保存直接覆蓋，不保留歷史
func TestBudget_Overwrite(t *testing.T) {
	s := New(kvstore.NewMemory())
	s.Set(2025, 6, decimal.NewFromInt(8000))
	s.Set(2025, 6, decimal.NewFromInt(9500))

	amount, ok, _ := s.Get(2025, 6)
	if !ok || !amount.Equal(decimal.NewFromInt(9500)) {
		t.Errorf("amount = %s, want 9500", amount)
	}
}

// TestBudget_KeyLayout 每月一個 key：finance_budget_YYYY-MM，值為純數字字串
func TestBudget_KeyLayout(t *testing.T) {
	kv := kvstore.NewMemory()
	s := New(kv)
	half, _ := decimal.NewFromString("8000.50")
	s.Set(2025, 6, half)

	raw, err := kv.Get("finance_budget_2025-06")
	if err != nil {
		t.Fatalf("stored key missing: %v", err)
	}
	if raw != "8000.5" {
		t.Errorf("stored value = %q, want \"8000.5\"", raw)
	}
}

func TestBudget_ClearAll(t *testing.T) {
	kv := kvstore.NewMemory()
	kv.Set("finance_todos", "[]") // 不相干的 key 不能被清掉
	s := New(kv)
	s.Set(2025, 5, decimal.NewFromInt(1))
	s.Set(2025, 6, decimal.NewFromInt(2))

	if err := s.ClearAll(); err != nil {
		t.Fatalf("ClearAll error = %v", err)
	}
	if _, ok, _ := s.Get(2025, 5); ok {
		t.Error("budget survived ClearAll")
	}
	if _, err := kv.Get("finance_todos"); err != nil {
		t.Error("unrelated key deleted by ClearAll")
	}
}
