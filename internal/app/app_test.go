package app

import (
	"testing"

	"finance-planner/internal/kvstore"
	"finance-planner/internal/models"
	"finance-planner/internal/record"

	"github.com/shopspring/decimal"
)

func newTestApp() *App {
	return New(kvstore.NewMemory(), "TWD")
}

// TestInitialize 首次初始化：空序列 + 設定記錄
func TestInitialize(t *testing.T) {
	a := newTestApp()

	if err := a.Initialize(); err != nil {
		t.Fatalf("Initialize error = %v", err)
	}

	for _, key := range []string{record.TodoKey, record.LedgerKey} {
		raw, err := a.Store.Get(key)
		if err != nil {
			t.Errorf("key %s missing after initialize: %v", key, err)
		}
		if raw != "[]" {
			t.Errorf("key %s = %q, want \"[]\"", key, raw)
		}
	}

	s, err := a.Settings()
	if err != nil {
		t.Fatalf("Settings error = %v", err)
	}
	if !s.Initialized || s.Version != models.SchemaVersion || s.Currency != "TWD" {
		t.Errorf("settings = %+v", s)
	}
	if s.CreatedAt == "" {
		t.Error("settings missing created_at")
	}
}

// TestInitialize_Idempotent 第二次初始化不能動到已有數據
func TestInitialize_Idempotent(t *testing.T) {
	a := newTestApp()
	a.Initialize()

	todo, err := a.Todos.Add(models.Todo{Title: "保留我"})
	if err != nil {
		t.Fatalf("Add error = %v", err)
	}

	if err := a.Initialize(); err != nil {
		t.Fatalf("second Initialize error = %v", err)
	}

	all, _ := a.Todos.GetAll()
	if len(all) != 1 || all[0].ID != todo.ID {
		t.Errorf("data lost on re-initialize: %+v", all)
	}
}

// TestClearAllData 清空所有序列和預算，設定保持已初始化
func TestClearAllData(t *testing.T) {
	a := newTestApp()
	a.Initialize()

	a.Todos.Add(models.Todo{Title: "x"})
	a.Ledger.Add(models.Entry{Description: "y", Amount: decimal.NewFromInt(10), Type: models.TypeExpense})
	a.Budgets.Set(2025, 6, decimal.NewFromInt(8000))

	if err := a.ClearAllData(); err != nil {
		t.Fatalf("ClearAllData error = %v", err)
	}

	todos, _ := a.Todos.GetAll()
	entries, _ := a.Ledger.GetAll()
	if len(todos) != 0 || len(entries) != 0 {
		t.Errorf("sequences not empty: %d todos, %d entries", len(todos), len(entries))
	}
	if _, ok, _ := a.Budgets.Get(2025, 6); ok {
		t.Error("budget survived ClearAllData")
	}

	s, err := a.Settings()
	if err != nil {
		t.Fatalf("Settings error = %v", err)
	}
	if !s.Initialized {
		t.Error("settings lost initialized flag after reset")
	}
}
