package mcp

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/todohub/backend/internal/infrastructure/config"
	"github.com/todohub/backend/internal/infrastructure/log"
)

// MCPServer MCP 服务器
// 以 REST API 客户端的身份对外暴露待办工具，不直接访问服务层
type MCPServer struct {
	server *mcp.Server
	client *apiClient
	logger *slog.Logger
}

// NewServer 创建 MCP 服务器并注册全部工具
func NewServer(cfg *config.APIConfig) *MCPServer {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "todohub-mcp",
			Version: "1.0.0",
		},
		nil, // 使用默认能力
	)

	s := &MCPServer{
		server: server,
		client: newAPIClient(cfg),
		logger: log.NewModuleLogger("mcp", "server"),
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_todo",
		Description: "Create a new todo item. Parameters: title (string, required, 1-200 chars); description (string, optional, max 1000 chars); completed (bool, optional); favorite (bool, optional). Returns: success status, message, and the created todo.",
	}, s.createTodoTool)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_todos",
		Description: "List todos with optional filtering. Parameters: completed (bool, optional) - filter by completion status; skip (int, optional, default 0); limit (int, optional, default 100). Returns: summary, count, and the todos list.",
	}, s.listTodosTool)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_todo",
		Description: "Get a specific todo by ID. Parameters: todo_id (int, required). Returns: the todo if found.",
	}, s.getTodoTool)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_todo",
		Description: "Update a todo item (partial update supported). Parameters: todo_id (int, required); title, description, completed, favorite (all optional, at least one required). Returns: success status, updated fields, and the updated todo.",
	}, s.updateTodoTool)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_todo",
		Description: "Delete a todo item. Parameters: todo_id (int, required). Returns: success status and message.",
	}, s.deleteTodoTool)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "mark_todo_complete",
		Description: "Mark a todo as completed (convenience method). Parameters: todo_id (int, required).",
	}, s.markTodoCompleteTool)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "mark_todo_incomplete",
		Description: "Mark a todo as incomplete (convenience method). Parameters: todo_id (int, required).",
	}, s.markTodoIncompleteTool)

	return s
}

// Run 以 stdio 传输运行服务器，阻塞直到连接关闭或 ctx 取消
func (s *MCPServer) Run(ctx context.Context) error {
	s.logger.Info("MCP server starting", "transport", "stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
