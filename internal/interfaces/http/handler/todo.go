package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apptodo "github.com/todohub/backend/internal/application/todo"
	domain "github.com/todohub/backend/internal/domain/todo"
	"github.com/todohub/backend/internal/infrastructure/log"
	"github.com/todohub/backend/internal/interfaces/http/response"
)

// 列表查询的默认分页参数
const (
	defaultSkip  = 0
	defaultLimit = 100
)

// TodoHandler 待办事项处理器
type TodoHandler struct {
	svc    *apptodo.Service
	logger *slog.Logger
}

// NewTodoHandler 创建待办事项处理器
func NewTodoHandler(svc *apptodo.Service) *TodoHandler {
	return &TodoHandler{
		svc:    svc,
		logger: log.NewModuleLogger("http", "todo"),
	}
}

// Create 创建待办
// @Summary 创建待办
// @Tags 待办
// @Accept json
// @Produce json
// @Param body body todo.CreateTodo true "待办内容"
// @Success 201 {object} todo.Todo
// @Failure 422 {object} response.ErrorDetail
// @Router /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var input domain.CreateTodo
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	item, err := h.svc.Create(input)
	if err != nil {
		h.writeError(c, 0, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// List 获取待办列表
// @Summary 获取待办列表
// @Tags 待办
// @Produce json
// @Param completed query bool false "按完成状态过滤"
// @Param skip query int false "跳过条数" default(0)
// @Param limit query int false "最大返回条数" default(100)
// @Success 200 {array} todo.Todo
// @Failure 422 {object} response.ErrorDetail
// @Router /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	filter := domain.ListFilter{Skip: defaultSkip, Limit: defaultLimit}

	if raw := c.Query("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			response.Detail(c, http.StatusUnprocessableEntity, "completed must be a boolean")
			return
		}
		filter.Completed = &completed
	}

	if raw := c.Query("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			response.Detail(c, http.StatusUnprocessableEntity, "skip must be a non-negative integer")
			return
		}
		filter.Skip = skip
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			response.Detail(c, http.StatusUnprocessableEntity, "limit must be a non-negative integer")
			return
		}
		filter.Limit = limit
	}

	items, err := h.svc.List(filter)
	if err != nil {
		h.writeError(c, 0, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// Get 获取单个待办
// @Summary 获取单个待办
// @Tags 待办
// @Produce json
// @Param id path int true "待办ID"
// @Success 200 {object} todo.Todo
// @Failure 404 {object} response.ErrorDetail
// @Router /todos/{id} [get]
func (h *TodoHandler) Get(c *gin.Context) {
	id, ok := h.todoID(c)
	if !ok {
		return
	}

	item, err := h.svc.Get(id)
	if err != nil {
		h.writeError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Update 部分更新待办
// @Summary 更新待办
// @Tags 待办
// @Accept json
// @Produce json
// @Param id path int true "待办ID"
// @Param body body todo.UpdateTodo true "更新内容"
// @Success 200 {object} todo.Todo
// @Failure 404 {object} response.ErrorDetail
// @Failure 422 {object} response.ErrorDetail
// @Router /todos/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := h.todoID(c)
	if !ok {
		return
	}

	var fields domain.UpdateTodo
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	item, err := h.svc.Update(id, fields)
	if err != nil {
		h.writeError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Delete 删除待办
// @Summary 删除待办
// @Tags 待办
// @Param id path int true "待办ID"
// @Success 204
// @Failure 404 {object} response.ErrorDetail
// @Router /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := h.todoID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(id); err != nil {
		h.writeError(c, id, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// todoID 解析路径中的待办 ID，非法时直接写出 422
func (h *TodoHandler) todoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Detail(c, http.StatusUnprocessableEntity, "todo id must be an integer")
		return 0, false
	}
	return id, true
}

// writeError 把服务层错误翻译成 HTTP 状态码
// id 为 0 表示当前操作没有目标 ID（创建、列表）
func (h *TodoHandler) writeError(c *gin.Context, id int64, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		response.Validation(c, ve)
	case errors.Is(err, domain.ErrNotFound):
		response.Detail(c, http.StatusNotFound, fmt.Sprintf("Todo with id %d not found", id))
	default:
		h.logger.Error("todo operation failed", "id", id, "error", err)
		response.Internal(c)
	}
}
