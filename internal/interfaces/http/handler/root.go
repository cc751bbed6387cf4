package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIVersion 对外暴露的 API 版本号
const APIVersion = "1.0.0"

// Root API 信息
// @Summary API 信息与端点列表
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Todo REST API",
		"version": APIVersion,
		"endpoints": gin.H{
			"POST /todos":        "Create a new todo",
			"GET /todos":         "Get all todos",
			"GET /todos/{id}":    "Get a specific todo",
			"PUT /todos/{id}":    "Update a todo",
			"DELETE /todos/{id}": "Delete a todo",
		},
	})
}
