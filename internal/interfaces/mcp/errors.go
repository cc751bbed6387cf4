package mcp

import (
	"errors"
	"net"
	"strings"
)

// 失败信封的 type 取值
// 前三种对应核心错误分类，其余为 MCP 边界特有的传输层分类
const (
	TypeValidationError = "validation_error"
	TypeNotFound        = "not_found"
	TypeAPIError        = "api_error"
	TypeTimeoutError    = "timeout_error"
	TypeConnectionError = "connection_error"
	TypeInternalError   = "internal_error"
	TypeExecutionError  = "execution_error"
	TypeInvalidTool     = "invalid_tool"
)

// ToolError 已分类的工具调用失败
// 每条失败路径都必须映射到且仅映射到一个 type
type ToolError struct {
	Type    string
	Message string
}

func (e *ToolError) Error() string {
	return e.Message
}

// newToolError 创建已分类错误
func newToolError(errType, message string) *ToolError {
	return &ToolError{Type: errType, Message: message}
}

// classifyTransportError 对 HTTP 请求本身的失败进行分类
// 超时优先于连接失败判断，两者都不匹配时归为 internal_error
func classifyTransportError(err error) *ToolError {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newToolError(TypeTimeoutError,
			"Request timed out. Please check if the API server is running.")
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) || strings.Contains(err.Error(), "connection refused") {
		return newToolError(TypeConnectionError,
			"Could not connect to API server. Please ensure it's running.")
	}

	return newToolError(TypeInternalError, "Unexpected error: "+err.Error())
}
