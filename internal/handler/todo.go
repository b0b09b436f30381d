package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"finance-planner/internal/app"
	"finance-planner/internal/models"
	"finance-planner/internal/record"
	"finance-planner/internal/util"

	"github.com/gin-gonic/gin"
)

// TodoHandler 負責待辦事項相關接口
type TodoHandler struct {
	App *app.App
}

func NewTodoHandler(a *app.App) *TodoHandler {
	return &TodoHandler{App: a}
}

type createTodoReq struct {
	Title       string          `json:"title" binding:"required,max=100"`
	Description string          `json:"description" binding:"max=255"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Priority    models.Priority `json:"priority"`
	Category    string          `json:"category" binding:"max=32"`
}

// parseID reads the :id path parameter.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID 不合法")
		return 0, false
	}
	return id, true
}

// storageError maps repository errors onto the response envelope.
func storageError(c *gin.Context, err error) {
	if errors.Is(err, record.ErrNotFound) {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "記錄不存在")
		return
	}
	util.Error(c, http.StatusInternalServerError, util.CodeStorageErr, "儲存操作失敗，請重試")
}

// ---------- 新增待辦 ----------

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req createTodoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "參數錯誤")
		return
	}

	if req.Date != "" {
		if err := util.ValidateDate(req.Date); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "日期格式錯誤，應為 YYYY-MM-DD")
			return
		}
	}
	if req.Priority != "" {
		if err := util.ValidatePriority(req.Priority); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "優先級不合法")
			return
		}
	}

	todo, err := h.App.Todos.Add(models.Todo{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Priority:    req.Priority,
		Category:    strings.TrimSpace(req.Category),
	})
	if err != nil {
		storageError(c, err)
		return
	}

	util.Success(c, util.Response{
		"todo": todo,
	})
}

// ListTodos 查詢待辦列表，支持日期、類別、優先級、關鍵字篩選
func (h *TodoHandler) ListTodos(c *gin.Context) {
	var (
		todos []models.Todo
		err   error
	)

	switch {
	case c.Query("keyword") != "":
		todos, err = h.App.Todos.Search(c.Query("keyword"))
	case c.Query("date") != "":
		todos, err = h.App.Todos.GetByDate(c.Query("date"))
	case c.Query("priority") != "":
		todos, err = h.App.Todos.GetByPriority(models.Priority(c.Query("priority")))
	case c.Query("category") != "":
		todos, err = h.App.Todos.GetByCategory(c.Query("category"))
	default:
		todos, err = h.App.Todos.GetAll()
	}
	if err != nil {
		storageError(c, err)
		return
	}

	util.Success(c, util.Response{
		"items": todos,
		"total": len(todos),
	})
}

// UpdateTodo 修改一條已有的待辦
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch models.TodoPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "參數錯誤")
		return
	}
	if patch.Date != nil {
		if err := util.ValidateDate(*patch.Date); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "日期格式錯誤，應為 YYYY-MM-DD")
			return
		}
	}
	if patch.Priority != nil {
		if err := util.ValidatePriority(*patch.Priority); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "優先級不合法")
			return
		}
	}

	todo, err := h.App.Todos.Update(id, patch)
	if err != nil {
		storageError(c, err)
		return
	}

	util.Success(c, util.Response{
		"todo": todo,
	})
}

// ToggleTodo 切換完成狀態
func (h *TodoHandler) ToggleTodo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	todo, err := h.App.Todos.ToggleCompletion(id)
	if err != nil {
		storageError(c, err)
		return
	}

	util.Success(c, util.Response{
		"todo": todo,
	})
}

// DeleteTodo 刪除一條待辦
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.App.Todos.Delete(id); err != nil {
		storageError(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": "刪除成功",
	})
}

// TodoStats 待辦統計，可選 ?date=YYYY-MM-DD 只看某一天
func (h *TodoHandler) TodoStats(c *gin.Context) {
	date := c.Query("date")
	if date != "" {
		if err := util.ValidateDate(date); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "日期格式錯誤，應為 YYYY-MM-DD")
			return
		}
	}

	summary, err := h.App.TodoStats.Summary(date)
	if err != nil {
		storageError(c, err)
		return
	}

	util.Success(c, util.Response{
		"stats": summary,
	})
}
