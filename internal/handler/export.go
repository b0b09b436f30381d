package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"finance-planner/internal/app"
	"finance-planner/internal/models"
	"finance-planner/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 導出收支記錄
type ExportHandler struct {
	App *app.App
}

func NewExportHandler(a *app.App) *ExportHandler {
	return &ExportHandler{App: a}
}

var exportHeader = []string{"類型", "類別", "金額", "描述", "日期"}

func entryTypeText(t models.EntryType) string {
	if t == models.TypeIncome {
		return "收入"
	}
	return "支出"
}

// ExportCSV 導出收支記錄為 CSV
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	entries, err := h.App.Ledger.GetAll()
	if err != nil {
		storageError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"entries_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM（讓 Excel 正確識別中文）
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeader)
	for i := range entries {
		e := &entries[i]
		writer.Write([]string{
			entryTypeText(e.Type),
			e.Category,
			e.Amount.String(),
			e.Description,
			e.Date,
		})
	}
}

// ExportXLSX 導出收支記錄為 Excel
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	entries, err := h.App.Ledger.GetAll()
	if err != nil {
		storageError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}

	for row := range entries {
		e := &entries[row]
		values := []interface{}{
			entryTypeText(e.Type),
			e.Category,
			e.Amount.InexactFloat64(),
			e.Description,
			e.Date,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"entries_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "導出失敗")
	}
}
