package handler

import (
	"finance-planner/internal/app"
	"finance-planner/internal/models"
	"finance-planner/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminHandler 負責設定查詢與數據重置
type AdminHandler struct {
	App *app.App
}

func NewAdminHandler(a *app.App) *AdminHandler {
	return &AdminHandler{App: a}
}

// GetSettings 返回初始化標記、版本與幣別
func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.App.Settings()
	if err != nil {
		storageError(c, err)
		return
	}

	util.Success(c, util.Response{
		"settings": settings,
	})
}

// GetCategories 返回預設類別表，供前端下拉選單使用
func (h *AdminHandler) GetCategories(c *gin.Context) {
	util.Success(c, util.Response{
		"expense": models.ExpenseCategories,
		"income":  models.IncomeCategories,
		"todo":    models.TodoCategories,
	})
}

// ResetData 清空所有待辦、收支與預算，設定保持已初始化
func (h *AdminHandler) ResetData(c *gin.Context) {
	if err := h.App.ClearAllData(); err != nil {
		storageError(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": "數據已重置",
	})
}
