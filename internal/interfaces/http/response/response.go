package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domain "github.com/todohub/backend/internal/domain/todo"
)

// ErrorDetail 错误响应体
// REST 层的错误统一使用 detail 字段描述，校验错误额外带出字段名
type ErrorDetail struct {
	Detail string `json:"detail"`
	Field  string `json:"field,omitempty"`
}

// Detail 以指定状态码返回 detail 错误
func Detail(c *gin.Context, httpCode int, detail string) {
	c.JSON(httpCode, ErrorDetail{Detail: detail})
}

// Validation 返回 422 校验错误，带字段级说明
func Validation(c *gin.Context, ve *domain.ValidationError) {
	c.JSON(http.StatusUnprocessableEntity, ErrorDetail{
		Detail: ve.Message,
		Field:  ve.Field,
	})
}

// Internal 返回 500 错误，不向调用方暴露内部细节
func Internal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorDetail{Detail: "Internal server error"})
}
