package models

import "github.com/shopspring/decimal"

// EntryType income / expense
type EntryType string

const (
	TypeIncome  EntryType = "income"
	TypeExpense EntryType = "expense"
)

// Valid reports whether t is a known entry type.
func (t EntryType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Entry 表示一筆收入或支出記錄
type Entry struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        EntryType       `json:"type"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Category    string          `json:"category"`
	CreatedAt   string          `json:"created_at"` // RFC3339
}

// RecordID returns the unique identifier of the entry.
func (e *Entry) RecordID() int64 { return e.ID }

// Stamp assigns the generated identity fields.
func (e *Entry) Stamp(id int64, createdAt string) {
	e.ID = id
	e.CreatedAt = createdAt
}

// EntryPatch is a partial update; nil fields are left untouched.
type EntryPatch struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Type        *EntryType       `json:"type"`
	Date        *string          `json:"date"`
	Category    *string          `json:"category"`
}

// Apply shallow-merges the patch into e.
func (p EntryPatch) Apply(e *Entry) {
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
}
