package stats

import (
	"finance-planner/internal/models"
	"finance-planner/internal/record"
	"finance-planner/internal/util"
)

// TodoSummary 待辦事項統計：完成狀態 + 各優先級數量
type TodoSummary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	High      int `json:"high"`
	Medium    int `json:"medium"`
	Low       int `json:"low"`
}

// Todo computes todo aggregations on demand.
type Todo struct {
	repo *record.TodoRepository
}

func NewTodo(repo *record.TodoRepository) *Todo {
	return &Todo{repo: repo}
}

// Summary counts todos by completion flag and priority level, optionally
// scoped to one date (empty date means all todos).
func (s *Todo) Summary(date string) (*TodoSummary, error) {
	if date != "" {
		if d, err := util.NormalizeDate(date); err == nil {
			date = d
		}
	}

	todos, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	sum := &TodoSummary{}
	for i := range todos {
		t := &todos[i]
		if date != "" && t.Date != date {
			continue
		}
		sum.Total++
		if t.Completed {
			sum.Completed++
		} else {
			sum.Pending++
		}
		switch t.Priority {
		case models.PriorityHigh:
			sum.High++
		case models.PriorityMedium:
			sum.Medium++
		case models.PriorityLow:
			sum.Low++
		}
	}
	return sum, nil
}
