package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	domain "github.com/todohub/backend/internal/domain/todo"
)

// CreateTodoInput create_todo 工具输入
type CreateTodoInput struct {
	Title       string  `json:"title" jsonschema:"Title of the todo (required, 1-200 chars)"`
	Description *string `json:"description,omitempty" jsonschema:"Description of the todo (optional, max 1000 chars)"`
	Completed   bool    `json:"completed,omitempty" jsonschema:"Whether the todo is completed"`
	Favorite    bool    `json:"favorite,omitempty" jsonschema:"Whether the todo is favorited"`
}

// ListTodosInput list_todos 工具输入
type ListTodosInput struct {
	Completed *bool `json:"completed,omitempty" jsonschema:"Filter by completion status"`
	Skip      *int  `json:"skip,omitempty" jsonschema:"Number of items to skip for pagination"`
	Limit     *int  `json:"limit,omitempty" jsonschema:"Maximum number of items to return"`
}

// TodoIDInput 只需要 todo_id 的工具输入
type TodoIDInput struct {
	TodoID int64 `json:"todo_id" jsonschema:"The ID of the todo"`
}

// UpdateTodoInput update_todo 工具输入
type UpdateTodoInput struct {
	TodoID      int64   `json:"todo_id" jsonschema:"The ID of the todo to update"`
	Title       *string `json:"title,omitempty" jsonschema:"New title (1-200 chars)"`
	Description *string `json:"description,omitempty" jsonschema:"New description (max 1000 chars)"`
	Completed   *bool   `json:"completed,omitempty" jsonschema:"New completion status"`
	Favorite    *bool   `json:"favorite,omitempty" jsonschema:"New favorite status"`
}

// ToolResult 工具调用的统一信封
// 成功时 success 为 true 并携带操作相关字段；
// 失败时 error 与 type 成对出现，type 为 errors.go 中定义的分类之一
type ToolResult struct {
	Success       bool           `json:"success,omitempty"`
	Message       string         `json:"message,omitempty"`
	Summary       string         `json:"summary,omitempty"`
	Count         int            `json:"count,omitempty"`
	UpdatedFields []string       `json:"updated_fields,omitempty"`
	Todo          *domain.Todo   `json:"todo,omitempty"`
	Todos         []*domain.Todo `json:"todos,omitempty"`
	Error         string         `json:"error,omitempty"`
	Type          string         `json:"type,omitempty"`
}

// failure 构造失败信封
func failure(err *ToolError) ToolResult {
	return ToolResult{Error: err.Message, Type: err.Type}
}

// dispatch 按工具名分发调用
// 所有注册了的工具都经过这里，未知名称产生 invalid_tool，
// 处理过程中的 panic 被捕获为 execution_error
func (s *MCPServer) dispatch(ctx context.Context, name string, args any) (result ToolResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("tool panicked", "tool", name, "panic", r)
			result = failure(newToolError(TypeExecutionError,
				fmt.Sprintf("Tool execution error: %v", r)))
		}
	}()

	switch name {
	case "create_todo":
		return s.createTodo(ctx, args.(CreateTodoInput))
	case "list_todos":
		return s.listTodos(ctx, args.(ListTodosInput))
	case "get_todo":
		return s.getTodo(ctx, args.(TodoIDInput))
	case "update_todo":
		return s.updateTodo(ctx, args.(UpdateTodoInput))
	case "delete_todo":
		return s.deleteTodo(ctx, args.(TodoIDInput))
	case "mark_todo_complete":
		return s.markTodo(ctx, args.(TodoIDInput), true)
	case "mark_todo_incomplete":
		return s.markTodo(ctx, args.(TodoIDInput), false)
	default:
		return failure(newToolError(TypeInvalidTool, "Unknown tool: "+name))
	}
}

// createTodo 创建待办
// 先用与 REST 相同的领域校验做客户端侧校验，再发起 HTTP 调用
func (s *MCPServer) createTodo(ctx context.Context, input CreateTodoInput) ToolResult {
	create := domain.CreateTodo{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		Favorite:    input.Favorite,
	}
	if err := create.Validate(); err != nil {
		return failure(newToolError(TypeValidationError, err.Error()))
	}

	payload := map[string]any{
		"title":     create.Title,
		"completed": create.Completed,
		"favorite":  create.Favorite,
	}
	if create.Description != nil && *create.Description != "" {
		payload["description"] = *create.Description
	}

	item, terr := s.client.Create(ctx, payload)
	if terr != nil {
		return failure(terr)
	}

	return ToolResult{
		Success: true,
		Message: fmt.Sprintf("Todo created successfully with ID %d", item.ID),
		Todo:    item,
	}
}

// listTodos 列出待办
func (s *MCPServer) listTodos(ctx context.Context, input ListTodosInput) ToolResult {
	skip := 0
	if input.Skip != nil {
		skip = *input.Skip
	}
	limit := 100
	if input.Limit != nil {
		limit = *input.Limit
	}

	items, terr := s.client.List(ctx, input.Completed, skip, limit)
	if terr != nil {
		return failure(terr)
	}

	if len(items) == 0 {
		return ToolResult{Success: true, Message: "No todos found", Todos: items}
	}

	summary := fmt.Sprintf("Found %d todo(s)", len(items))
	if input.Completed != nil {
		if *input.Completed {
			summary += " (completed)"
		} else {
			summary += " (pending)"
		}
	}

	return ToolResult{
		Success: true,
		Summary: summary,
		Count:   len(items),
		Todos:   items,
	}
}

// getTodo 按 ID 获取待办
func (s *MCPServer) getTodo(ctx context.Context, input TodoIDInput) ToolResult {
	if input.TodoID <= 0 {
		return failure(newToolError(TypeValidationError, "todo_id is required"))
	}

	item, terr := s.client.Get(ctx, input.TodoID)
	if terr != nil {
		return failure(terr)
	}

	return ToolResult{Success: true, Todo: item}
}

// updateTodo 部分更新待办
func (s *MCPServer) updateTodo(ctx context.Context, input UpdateTodoInput) ToolResult {
	if input.TodoID <= 0 {
		return failure(newToolError(TypeValidationError, "todo_id is required"))
	}

	fields := domain.UpdateTodo{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		Favorite:    input.Favorite,
	}
	if fields.Empty() {
		return failure(newToolError(TypeValidationError,
			"No fields to update. Please provide at least one field."))
	}
	if err := fields.Validate(); err != nil {
		return failure(newToolError(TypeValidationError, err.Error()))
	}

	payload := make(map[string]any, 4)
	updatedFields := make([]string, 0, 4)
	if fields.Title != nil {
		payload["title"] = *fields.Title
		updatedFields = append(updatedFields, "title")
	}
	if fields.Description != nil {
		payload["description"] = *fields.Description
		updatedFields = append(updatedFields, "description")
	}
	if fields.Completed != nil {
		payload["completed"] = *fields.Completed
		updatedFields = append(updatedFields, "completed")
	}
	if fields.Favorite != nil {
		payload["favorite"] = *fields.Favorite
		updatedFields = append(updatedFields, "favorite")
	}

	item, terr := s.client.Update(ctx, input.TodoID, payload)
	if terr != nil {
		return failure(terr)
	}

	return ToolResult{
		Success:       true,
		Message:       fmt.Sprintf("Todo %d updated successfully", input.TodoID),
		UpdatedFields: updatedFields,
		Todo:          item,
	}
}

// deleteTodo 删除待办
func (s *MCPServer) deleteTodo(ctx context.Context, input TodoIDInput) ToolResult {
	if input.TodoID <= 0 {
		return failure(newToolError(TypeValidationError, "todo_id is required"))
	}

	if terr := s.client.Delete(ctx, input.TodoID); terr != nil {
		return failure(terr)
	}

	return ToolResult{
		Success: true,
		Message: fmt.Sprintf("Todo %d deleted successfully", input.TodoID),
	}
}

// markTodo mark_todo_complete / mark_todo_incomplete
// 只是 update_todo 固定 completed 字段的便捷包装
func (s *MCPServer) markTodo(ctx context.Context, input TodoIDInput, completed bool) ToolResult {
	return s.updateTodo(ctx, UpdateTodoInput{
		TodoID:    input.TodoID,
		Completed: &completed,
	})
}

// --- 注册给 SDK 的类型化处理函数 ---

func (s *MCPServer) createTodoTool(ctx context.Context, req *mcp.CallToolRequest, input CreateTodoInput) (*mcp.CallToolResult, ToolResult, error) {
	return nil, s.dispatch(ctx, "create_todo", input), nil
}

func (s *MCPServer) listTodosTool(ctx context.Context, req *mcp.CallToolRequest, input ListTodosInput) (*mcp.CallToolResult, ToolResult, error) {
	return nil, s.dispatch(ctx, "list_todos", input), nil
}

func (s *MCPServer) getTodoTool(ctx context.Context, req *mcp.CallToolRequest, input TodoIDInput) (*mcp.CallToolResult, ToolResult, error) {
	return nil, s.dispatch(ctx, "get_todo", input), nil
}

func (s *MCPServer) updateTodoTool(ctx context.Context, req *mcp.CallToolRequest, input UpdateTodoInput) (*mcp.CallToolResult, ToolResult, error) {
	return nil, s.dispatch(ctx, "update_todo", input), nil
}

func (s *MCPServer) deleteTodoTool(ctx context.Context, req *mcp.CallToolRequest, input TodoIDInput) (*mcp.CallToolResult, ToolResult, error) {
	return nil, s.dispatch(ctx, "delete_todo", input), nil
}

func (s *MCPServer) markTodoCompleteTool(ctx context.Context, req *mcp.CallToolRequest, input TodoIDInput) (*mcp.CallToolResult, ToolResult, error) {
	return nil, s.dispatch(ctx, "mark_todo_complete", input), nil
}

func (s *MCPServer) markTodoIncompleteTool(ctx context.Context, req *mcp.CallToolRequest, input TodoIDInput) (*mcp.CallToolResult, ToolResult, error) {
	return nil, s.dispatch(ctx, "mark_todo_incomplete", input), nil
}
