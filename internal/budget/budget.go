// Package budget stores one spending budget per month, independently of the
// ledger sequence. Saving a month overwrites its previous value; no history
// is kept.
package budget

import (
	"fmt"

	"finance-planner/internal/kvstore"

	"github.com/shopspring/decimal"
)

// KeyPrefix is the canonical prefix for per-month budget keys.
const KeyPrefix = "finance_budget_"

func monthKey(year, month int) string {
	return fmt.Sprintf("%s%04d-%02d", KeyPrefix, year, month)
}

// Store reads and writes per-month budget values.
type Store struct {
	kv kvstore.Store
}

func New(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// Set saves the budget for the given month, replacing any previous value.
// The value is persisted as a plain stringified number.
func (s *Store) Set(year, month int, amount decimal.Decimal) error {
	return s.kv.Set(monthKey(year, month), amount.String())
}

// Get returns the budget for the given month. ok is false when no budget has
// been set for that month.
func (s *Store) Get(year, month int) (amount decimal.Decimal, ok bool, err error) {
	raw, err := s.kv.Get(monthKey(year, month))
	if err != nil {
		if err == kvstore.ErrKeyNotFound {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}
	amount, err = decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("decode budget %04d-%02d: %w", year, month, err)
	}
	return amount, true, nil
}

// ClearAll deletes every stored budget.
func (s *Store) ClearAll() error {
	keys, err := s.kv.Keys(KeyPrefix)
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := s.kv.Delete(k); err != nil {
			return err
		}
	}
	return nil
}
