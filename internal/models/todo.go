package models

// Priority 待辦事項優先級
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the three known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Todo 表示一條待辦事項，關聯到某個日曆日期
type Todo struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Completed   bool     `json:"completed"`
	Date        string   `json:"date"`           // YYYY-MM-DD
	Time        string   `json:"time,omitempty"` // HH:mm, no timezone
	Priority    Priority `json:"priority"`
	Category    string   `json:"category"`
	CreatedAt   string   `json:"created_at"` // RFC3339
}

// RecordID returns the unique identifier of the todo.
func (t *Todo) RecordID() int64 { return t.ID }

// Stamp assigns the generated identity fields.
func (t *Todo) Stamp(id int64, createdAt string) {
	t.ID = id
	t.CreatedAt = createdAt
}

// TodoPatch is a partial update; nil fields are left untouched.
type TodoPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Completed   *bool     `json:"completed"`
	Date        *string   `json:"date"`
	Time        *string   `json:"time"`
	Priority    *Priority `json:"priority"`
	Category    *string   `json:"category"`
}

// Apply shallow-merges the patch into t.
func (p TodoPatch) Apply(t *Todo) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Time != nil {
		t.Time = *p.Time
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
}
