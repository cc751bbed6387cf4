package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
	domain "github.com/todohub/backend/internal/domain/todo"
	"github.com/todohub/backend/internal/infrastructure/config"
)

// apiClient REST API 的 HTTP 客户端
// MCP 工具层不直接访问服务层，所有操作都走 REST 接口
type apiClient struct {
	client *resty.Client
}

// newAPIClient 创建 REST 客户端，超时由配置给定
func newAPIClient(cfg *config.APIConfig) *apiClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &apiClient{client: client}
}

// detailBody REST 层的错误响应体
type detailBody struct {
	Detail string `json:"detail"`
}

// Create 创建待办
func (c *apiClient) Create(ctx context.Context, payload map[string]any) (*domain.Todo, *ToolError) {
	var item domain.Todo
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&item).
		Post("/todos")
	if err != nil {
		return nil, classifyTransportError(err)
	}
	if resp.StatusCode() != http.StatusCreated {
		return nil, c.classifyStatus(resp, 0)
	}
	return &item, nil
}

// List 列出待办
func (c *apiClient) List(ctx context.Context, completed *bool, skip, limit int) ([]*domain.Todo, *ToolError) {
	req := c.client.R().
		SetContext(ctx).
		SetQueryParam("skip", strconv.Itoa(skip)).
		SetQueryParam("limit", strconv.Itoa(limit))
	if completed != nil {
		req.SetQueryParam("completed", strconv.FormatBool(*completed))
	}

	var items []*domain.Todo
	resp, err := req.SetResult(&items).Get("/todos")
	if err != nil {
		return nil, classifyTransportError(err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, c.classifyStatus(resp, 0)
	}
	return items, nil
}

// Get 按 ID 获取待办
func (c *apiClient) Get(ctx context.Context, id int64) (*domain.Todo, *ToolError) {
	var item domain.Todo
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&item).
		Get(fmt.Sprintf("/todos/%d", id))
	if err != nil {
		return nil, classifyTransportError(err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, c.classifyStatus(resp, id)
	}
	return &item, nil
}

// Update 部分更新待办
func (c *apiClient) Update(ctx context.Context, id int64, payload map[string]any) (*domain.Todo, *ToolError) {
	var item domain.Todo
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&item).
		Put(fmt.Sprintf("/todos/%d", id))
	if err != nil {
		return nil, classifyTransportError(err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, c.classifyStatus(resp, id)
	}
	return &item, nil
}

// Delete 删除待办
func (c *apiClient) Delete(ctx context.Context, id int64) *ToolError {
	resp, err := c.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/todos/%d", id))
	if err != nil {
		return classifyTransportError(err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		return c.classifyStatus(resp, id)
	}
	return nil
}

// classifyStatus 把非预期的 HTTP 状态码映射为错误分类
// 404 → not_found，400/422 → validation_error，其余 → api_error
func (c *apiClient) classifyStatus(resp *resty.Response, id int64) *ToolError {
	switch resp.StatusCode() {
	case http.StatusNotFound:
		return newToolError(TypeNotFound, fmt.Sprintf("Todo with ID %d not found", id))
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		detail := "Validation error"
		var body detailBody
		if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Detail != "" {
			detail = body.Detail
		}
		return newToolError(TypeValidationError, "Validation error: "+detail)
	default:
		return newToolError(TypeAPIError,
			fmt.Sprintf("Request failed. Status: %d, body: %s", resp.StatusCode(), resp.String()))
	}
}
