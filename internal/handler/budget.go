package handler

import (
	"net/http"

	"finance-planner/internal/app"
	"finance-planner/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BudgetHandler 負責每月預算接口
type BudgetHandler struct {
	App *app.App
}

func NewBudgetHandler(a *app.App) *BudgetHandler {
	return &BudgetHandler{App: a}
}

type setBudgetReq struct {
	Month  string           `json:"month" binding:"required"`
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

// GetBudget 查詢某月預算，?month=YYYY-MM，缺省為當月
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	monthStr := c.Query("month")
	if monthStr == "" {
		monthStr = util.CurrentMonth()
	}

	year, month, err := util.ParseMonth(monthStr)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "月份格式錯誤，應為 YYYY-MM")
		return
	}

	amount, ok, err := h.App.Budgets.Get(year, month)
	if err != nil {
		storageError(c, err)
		return
	}

	util.Success(c, util.Response{
		"month":  monthStr,
		"set":    ok,
		"amount": amount,
	})
}

// SetBudget 保存某月預算，同月重複保存直接覆蓋
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	var req setBudgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "參數錯誤")
		return
	}

	year, month, err := util.ParseMonth(req.Month)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "月份格式錯誤，應為 YYYY-MM")
		return
	}
	if err := util.ValidateAmount(*req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "請輸入有效金額")
		return
	}

	if err := h.App.Budgets.Set(year, month, *req.Amount); err != nil {
		storageError(c, err)
		return
	}

	util.Success(c, util.Response{
		"month":  req.Month,
		"amount": req.Amount,
	})
}
