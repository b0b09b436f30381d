// Package stats derives statistics from the record sequences. Nothing is
// cached: every call re-reads the sequence and recomputes, which is linear in
// record count and fine at the expected scale.
package stats

import (
	"finance-planner/internal/models"
	"finance-planner/internal/record"
	"finance-planner/internal/util"

	"github.com/shopspring/decimal"
)

// LedgerSummary 一段時間內的收支匯總
type LedgerSummary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
	IncomeCount  int             `json:"income_count"`
	ExpenseCount int             `json:"expense_count"`
	TotalCount   int             `json:"total_count"`
}

// CategorySummary 單一類別的累計
type CategorySummary struct {
	Count int              `json:"count"`
	Total decimal.Decimal  `json:"total"`
	Type  models.EntryType `json:"type"`
}

// Ledger computes ledger aggregations on demand.
type Ledger struct {
	repo *record.LedgerRepository
}

func NewLedger(repo *record.LedgerRepository) *Ledger {
	return &Ledger{repo: repo}
}

// Range sums entries between start and end (YYYY-MM-DD, both inclusive).
// An empty bound imposes no constraint on that side.
func (s *Ledger) Range(start, end string) (*LedgerSummary, error) {
	entries, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	sum := &LedgerSummary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Balance:      decimal.Zero,
	}
	for i := range entries {
		e := &entries[i]
		// ISO date strings compare correctly as plain strings
		if start != "" && e.Date < start {
			continue
		}
		if end != "" && e.Date > end {
			continue
		}
		if e.Type == models.TypeIncome {
			sum.TotalIncome = sum.TotalIncome.Add(e.Amount)
			sum.IncomeCount++
		} else {
			sum.TotalExpense = sum.TotalExpense.Add(e.Amount)
			sum.ExpenseCount++
		}
		sum.TotalCount++
	}
	sum.Balance = sum.TotalIncome.Sub(sum.TotalExpense)
	return sum, nil
}

// Monthly sums entries over one calendar month, delegating to Range with the
// first and last day of the month (leap years handled by the calendar math).
func (s *Ledger) Monthly(year, month int) (*LedgerSummary, error) {
	start, end := util.MonthRange(year, month)
	return s.Range(start, end)
}

// ByCategory groups entries by category, optionally pre-filtered by type
// (empty entryType means all entries).
func (s *Ledger) ByCategory(entryType models.EntryType) (map[string]*CategorySummary, error) {
	entries, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	out := make(map[string]*CategorySummary)
	for i := range entries {
		e := &entries[i]
		if entryType != "" && e.Type != entryType {
			continue
		}
		cs, ok := out[e.Category]
		if !ok {
			cs = &CategorySummary{Total: decimal.Zero, Type: e.Type}
			out[e.Category] = cs
		}
		cs.Count++
		cs.Total = cs.Total.Add(e.Amount)
	}
	return out, nil
}
