package handler

import (
	"net/http"
	"strings"

	"finance-planner/internal/app"
	"finance-planner/internal/models"
	"finance-planner/internal/stats"
	"finance-planner/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// LedgerHandler 負責收支記錄相關接口
type LedgerHandler struct {
	App *app.App
}

func NewLedgerHandler(a *app.App) *LedgerHandler {
	return &LedgerHandler{App: a}
}

type createEntryReq struct {
	Description string           `json:"description" binding:"max=255"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Type        models.EntryType `json:"type" binding:"required,oneof=income expense"`
	Date        string           `json:"date"`
	Category    string           `json:"category" binding:"max=32"`
}

// summaryResp attaches display strings to the raw summary numbers.
func (h *LedgerHandler) summaryResp(s *stats.LedgerSummary) util.Response {
	return util.Response{
		"total_income":          s.TotalIncome,
		"total_expense":         s.TotalExpense,
		"balance":               s.Balance,
		"income_count":          s.IncomeCount,
		"expense_count":         s.ExpenseCount,
		"total_count":           s.TotalCount,
		"total_income_display":  util.FormatAmount(s.TotalIncome, h.App.Currency),
		"total_expense_display": util.FormatAmount(s.TotalExpense, h.App.Currency),
		"balance_display":       util.FormatAmount(s.Balance, h.App.Currency),
	}
}

// ---------- 記一筆 ----------

func (h *LedgerHandler) CreateEntry(c *gin.Context) {
	var req createEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "參數錯誤")
		return
	}

	if err := util.ValidateAmount(*req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "請輸入有效金額")
		return
	}
	if req.Date != "" {
		if err := util.ValidateDate(req.Date); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "日期格式錯誤，應為 YYYY-MM-DD")
			return
		}
	}

	entry, err := h.App.Ledger.Add(models.Entry{
		Description: strings.TrimSpace(req.Description),
		Amount:      *req.Amount,
		Type:        req.Type,
		Date:        req.Date,
		Category:    strings.TrimSpace(req.Category),
	})
	if err != nil {
		storageError(c, err)
		return
	}

	util.Success(c, util.Response{
		"entry": entry,
	})
}

// ListEntries 查詢收支列表，支持日期、類型、類別、關鍵字篩選
func (h *LedgerHandler) ListEntries(c *gin.Context) {
	var (
		entries []models.Entry
		err     error
	)

	switch {
	case c.Query("keyword") != "":
		entries, err = h.App.Ledger.Search(c.Query("keyword"))
	case c.Query("date") != "":
		entries, err = h.App.Ledger.GetByDate(c.Query("date"))
	case c.Query("type") != "":
		t := models.EntryType(c.Query("type"))
		if !t.Valid() {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "類型應為 income 或 expense")
			return
		}
		entries, err = h.App.Ledger.GetByType(t)
	case c.Query("category") != "":
		entries, err = h.App.Ledger.GetByCategory(c.Query("category"))
	default:
		entries, err = h.App.Ledger.GetAll()
	}
	if err != nil {
		storageError(c, err)
		return
	}

	util.Success(c, util.Response{
		"items": entries,
		"total": len(entries),
	})
}

// UpdateEntry 修改一筆已有的記錄
func (h *LedgerHandler) UpdateEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.EntryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "參數錯誤")
		return
	}
	if patch.Amount != nil {
		if err := util.ValidateAmount(*patch.Amount); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "請輸入有效金額")
			return
		}
	}
	if patch.Type != nil && !patch.Type.Valid() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "類型應為 income 或 expense")
		return
	}
	if patch.Date != nil {
		if err := util.ValidateDate(*patch.Date); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "日期格式錯誤，應為 YYYY-MM-DD")
			return
		}
	}

	entry, err := h.App.Ledger.Update(id, patch)
	if err != nil {
		storageError(c, err)
		return
	}

	util.Success(c, util.Response{
		"entry": entry,
	})
}

// DeleteEntry 刪除一筆記錄
func (h *LedgerHandler) DeleteEntry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.App.Ledger.Delete(id); err != nil {
		storageError(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": "刪除成功",
	})
}

// RangeStats 任意日期範圍的收支匯總，兩端閉區間，缺省不限
func (h *LedgerHandler) RangeStats(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if start != "" {
		if err := util.ValidateDate(start); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "開始日期格式錯誤，應為 YYYY-MM-DD")
			return
		}
	}
	if end != "" {
		if err := util.ValidateDate(end); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "結束日期格式錯誤，應為 YYYY-MM-DD")
			return
		}
	}

	summary, err := h.App.LedgerStats.Range(start, end)
	if err != nil {
		storageError(c, err)
		return
	}

	util.Success(c, util.Response{
		"stats": h.summaryResp(summary),
	})
}

// MonthlyStats 返回指定月份的收支匯總，帶上該月預算（如有）
func (h *LedgerHandler) MonthlyStats(c *gin.Context) {
	monthStr := c.Query("month")
	if monthStr == "" {
		monthStr = util.CurrentMonth()
	}

	year, month, err := util.ParseMonth(monthStr)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "月份格式錯誤，應為 YYYY-MM")
		return
	}

	summary, err := h.App.LedgerStats.Monthly(year, month)
	if err != nil {
		storageError(c, err)
		return
	}

	resp := util.Response{
		"month": monthStr,
		"stats": h.summaryResp(summary),
	}

	if budgetAmount, ok, err := h.App.Budgets.Get(year, month); err == nil && ok {
		resp["budget"] = budgetAmount
		resp["budget_remaining"] = budgetAmount.Sub(summary.TotalExpense)
	}

	util.Success(c, resp)
}

// CategoryStats 按類別分組統計，可選 ?type=income|expense 預過濾
func (h *LedgerHandler) CategoryStats(c *gin.Context) {
	entryType := models.EntryType(c.Query("type"))
	if entryType != "" && !entryType.Valid() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "類型應為 income 或 expense")
		return
	}

	byCategory, err := h.App.LedgerStats.ByCategory(entryType)
	if err != nil {
		storageError(c, err)
		return
	}

	util.Success(c, util.Response{
		"by_category": byCategory,
	})
}
