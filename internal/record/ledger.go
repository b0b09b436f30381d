package record

import (
	"strings"

	"finance-planner/internal/kvstore"
	"finance-planner/internal/models"
	"finance-planner/internal/util"
)

// LedgerKey is the canonical storage key for the ledger sequence.
const LedgerKey = "finance_expenses"

// LedgerRepository 收支記錄存取層
type LedgerRepository struct {
	repo *Repository[models.Entry, *models.Entry]
}

func NewLedgerRepository(store kvstore.Store) *LedgerRepository {
	return &LedgerRepository{repo: NewRepository[models.Entry, *models.Entry](store, LedgerKey)}
}

func (r *LedgerRepository) GetAll() ([]models.Entry, error) {
	return r.repo.GetAll()
}

// GetByDate returns entries on the given calendar day, with the same
// normalization as the todo repository.
func (r *LedgerRepository) GetByDate(date string) ([]models.Entry, error) {
	if d, err := util.NormalizeDate(date); err == nil {
		date = d
	}
	day := date
	return r.repo.Filter(func(e *models.Entry) bool { return e.Date == day })
}

func (r *LedgerRepository) GetByCategory(category string) ([]models.Entry, error) {
	return r.repo.Filter(func(e *models.Entry) bool { return e.Category == category })
}

func (r *LedgerRepository) GetByType(entryType models.EntryType) ([]models.Entry, error) {
	return r.repo.Filter(func(e *models.Entry) bool { return e.Type == entryType })
}

// Search matches keyword case-insensitively against description or category
// (logical OR).
func (r *LedgerRepository) Search(keyword string) ([]models.Entry, error) {
	kw := strings.ToLower(keyword)
	return r.repo.Filter(func(e *models.Entry) bool {
		return strings.Contains(strings.ToLower(e.Description), kw) ||
			strings.Contains(strings.ToLower(e.Category), kw)
	})
}

// Add stores a new entry. Id and creation timestamp are assigned here and win
// over anything the caller filled in. No amount/type validation happens at
// this layer; that is the presentation layer's job.
func (r *LedgerRepository) Add(data models.Entry) (*models.Entry, error) {
	if data.Category == "" {
		data.Category = models.DefaultCategory
	}
	if data.Date == "" {
		data.Date = util.CurrentDate()
	}
	return r.repo.Add(&data)
}

// Update shallow-merges the patch into the stored entry.
func (r *LedgerRepository) Update(id int64, patch models.EntryPatch) (*models.Entry, error) {
	return r.repo.Update(id, func(e *models.Entry) { patch.Apply(e) })
}

func (r *LedgerRepository) Delete(id int64) error {
	return r.repo.Delete(id)
}

func (r *LedgerRepository) ClearAll() error {
	return r.repo.ClearAll()
}
