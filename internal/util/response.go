package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 通用返回結構裡的 data 使用 map
type Response map[string]interface{}

// 業務錯誤碼
const (
	CodeOK           = 0
	CodeInvalidParam = 40001
	CodeNotFound     = 40401
	CodeServerErr    = 50001
	CodeStorageErr   = 50002
)

// Success 統一成功返回
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, gin.H{
		"code": CodeOK,
		"data": data,
	})
}

// Error 統一錯誤返回
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}
