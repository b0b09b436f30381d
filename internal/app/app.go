// Package app wires the store, repositories and aggregations together and
// owns the initialization / full-reset lifecycle. The store is constructed
// explicitly and injected; nothing initializes itself on import.
package app

import (
	"errors"
	"fmt"

	"finance-planner/internal/budget"
	"finance-planner/internal/kvstore"
	"finance-planner/internal/models"
	"finance-planner/internal/record"
	"finance-planner/internal/stats"
	"finance-planner/internal/util"
)

// SettingsKey is the canonical storage key for the settings record.
const SettingsKey = "finance_settings"

// App holds the assembled core: one store, one repository per record kind,
// their aggregations and the budget store.
type App struct {
	Store       kvstore.Store
	Todos       *record.TodoRepository
	Ledger      *record.LedgerRepository
	Budgets     *budget.Store
	LedgerStats *stats.Ledger
	TodoStats   *stats.Todo
	Currency    string
}

// New assembles the application core on top of the given store.
func New(store kvstore.Store, currency string) *App {
	todos := record.NewTodoRepository(store)
	ledger := record.NewLedgerRepository(store)
	return &App{
		Store:       store,
		Todos:       todos,
		Ledger:      ledger,
		Budgets:     budget.New(store),
		LedgerStats: stats.NewLedger(ledger),
		TodoStats:   stats.NewTodo(todos),
		Currency:    currency,
	}
}

// Initialize moves the namespace from uninitialized to initialized exactly
// once: empty sequences are created for every record kind that has no key yet
// and the settings record is stamped. Calling it again is a no-op and never
// touches existing data.
func (a *App) Initialize() error {
	var s models.Settings
	err := kvstore.ReadJSON(a.Store, SettingsKey, &s)
	if err == nil && s.Initialized {
		return nil
	}
	if err != nil && !errors.Is(err, kvstore.ErrKeyNotFound) {
		return fmt.Errorf("read settings: %w", err)
	}

	for _, key := range []string{record.TodoKey, record.LedgerKey} {
		if _, err := a.Store.Get(key); errors.Is(err, kvstore.ErrKeyNotFound) {
			if err := a.Store.Set(key, "[]"); err != nil {
				return fmt.Errorf("init %s: %w", key, err)
			}
		} else if err != nil {
			return fmt.Errorf("probe %s: %w", key, err)
		}
	}

	return a.writeSettings()
}

// ClearAllData resets every sequence and budget to empty. The settings record
// is re-written and stays initialized.
func (a *App) ClearAllData() error {
	if err := a.Todos.ClearAll(); err != nil {
		return err
	}
	if err := a.Ledger.ClearAll(); err != nil {
		return err
	}
	if err := a.Budgets.ClearAll(); err != nil {
		return err
	}
	return a.writeSettings()
}

// Settings returns the stored settings record.
func (a *App) Settings() (*models.Settings, error) {
	var s models.Settings
	if err := kvstore.ReadJSON(a.Store, SettingsKey, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (a *App) writeSettings() error {
	return kvstore.WriteJSON(a.Store, SettingsKey, models.Settings{
		Initialized: true,
		Version:     models.SchemaVersion,
		Currency:    a.Currency,
		CreatedAt:   util.Timestamp(),
	})
}
