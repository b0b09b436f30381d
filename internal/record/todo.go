package record

import (
	"strings"

	"finance-planner/internal/kvstore"
	"finance-planner/internal/models"
	"finance-planner/internal/util"
)

// TodoKey is the canonical storage key for the todo sequence.
const TodoKey = "finance_todos"

// TodoRepository 待辦事項存取層
type TodoRepository struct {
	repo *Repository[models.Todo, *models.Todo]
}

func NewTodoRepository(store kvstore.Store) *TodoRepository {
	return &TodoRepository{repo: NewRepository[models.Todo, *models.Todo](store, TodoKey)}
}

func (r *TodoRepository) GetAll() ([]models.Todo, error) {
	return r.repo.GetAll()
}

// GetByDate returns todos on the given calendar day. The date is normalized
// to YYYY-MM-DD before comparison, so "2025-7-1" matches "2025-07-01".
func (r *TodoRepository) GetByDate(date string) ([]models.Todo, error) {
	if d, err := util.NormalizeDate(date); err == nil {
		date = d
	}
	day := date
	return r.repo.Filter(func(t *models.Todo) bool { return t.Date == day })
}

func (r *TodoRepository) GetByCategory(category string) ([]models.Todo, error) {
	return r.repo.Filter(func(t *models.Todo) bool { return t.Category == category })
}

func (r *TodoRepository) GetByPriority(priority models.Priority) ([]models.Todo, error) {
	return r.repo.Filter(func(t *models.Todo) bool { return t.Priority == priority })
}

// Search matches keyword case-insensitively against title, description or
// category (logical OR).
func (r *TodoRepository) Search(keyword string) ([]models.Todo, error) {
	kw := strings.ToLower(keyword)
	return r.repo.Filter(func(t *models.Todo) bool {
		return strings.Contains(strings.ToLower(t.Title), kw) ||
			strings.Contains(strings.ToLower(t.Description), kw) ||
			strings.Contains(strings.ToLower(t.Category), kw)
	})
}

// Add stores a new todo. Id and creation timestamp are assigned here and win
// over anything the caller filled in; empty priority/category/date fall back
// to their defaults.
func (r *TodoRepository) Add(data models.Todo) (*models.Todo, error) {
	if data.Priority == "" {
		data.Priority = models.PriorityMedium
	}
	if data.Category == "" {
		data.Category = models.DefaultCategory
	}
	if data.Date == "" {
		data.Date = util.CurrentDate()
	}
	return r.repo.Add(&data)
}

// Update shallow-merges the patch into the stored todo.
func (r *TodoRepository) Update(id int64, patch models.TodoPatch) (*models.Todo, error) {
	return r.repo.Update(id, func(t *models.Todo) { patch.Apply(t) })
}

// ToggleCompletion flips the completion flag.
func (r *TodoRepository) ToggleCompletion(id int64) (*models.Todo, error) {
	return r.repo.Update(id, func(t *models.Todo) { t.Completed = !t.Completed })
}

func (r *TodoRepository) Delete(id int64) error {
	return r.repo.Delete(id)
}

func (r *TodoRepository) ClearAll() error {
	return r.repo.ClearAll()
}
