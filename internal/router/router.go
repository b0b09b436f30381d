package router

import (
	"finance-planner/internal/app"
	"finance-planner/internal/config"
	"finance-planner/internal/handler"
	"finance-planner/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SetupRouter configures the Gin engine and mounts the API.
func SetupRouter(cfg *config.Config, a *app.App, logger zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	// ====== API ======
	api := r.Group("/api")

	todoHandler := handler.NewTodoHandler(a)
	api.POST("/todos", todoHandler.CreateTodo)
	api.GET("/todos", todoHandler.ListTodos)
	api.PUT("/todos/:id", todoHandler.UpdateTodo)
	api.POST("/todos/:id/toggle", todoHandler.ToggleTodo)
	api.DELETE("/todos/:id", todoHandler.DeleteTodo)
	api.GET("/todos/stats", todoHandler.TodoStats)

	ledgerHandler := handler.NewLedgerHandler(a)
	api.POST("/entries", ledgerHandler.CreateEntry)
	api.GET("/entries", ledgerHandler.ListEntries)
	api.PUT("/entries/:id", ledgerHandler.UpdateEntry)
	api.DELETE("/entries/:id", ledgerHandler.DeleteEntry)
	api.GET("/stats/range", ledgerHandler.RangeStats)
	api.GET("/stats/monthly", ledgerHandler.MonthlyStats)
	api.GET("/stats/categories", ledgerHandler.CategoryStats)

	budgetHandler := handler.NewBudgetHandler(a)
	api.GET("/budget", budgetHandler.GetBudget)
	api.PUT("/budget", budgetHandler.SetBudget)

	adminHandler := handler.NewAdminHandler(a)
	api.GET("/settings", adminHandler.GetSettings)
	api.GET("/categories", adminHandler.GetCategories)
	api.POST("/reset", adminHandler.ResetData)

	exportHandler := handler.NewExportHandler(a)
	api.GET("/export/csv", exportHandler.ExportCSV)
	api.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
