package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apptodo "github.com/todohub/backend/internal/application/todo"
	"github.com/todohub/backend/internal/infrastructure/config"
	"github.com/todohub/backend/internal/infrastructure/storage"
	"github.com/todohub/backend/internal/interfaces/http/handler"
)

// setupAPIServer 启动使用临时数据库的真实 REST 服务
func setupAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpDir, err := os.MkdirTemp("", "mcp_test_*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	db, err := storage.OpenDB(filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := storage.NewTodoRepository(db)
	require.NoError(t, err)

	h := handler.NewTodoHandler(apptodo.NewService(repo))

	router := gin.New()
	router.POST("/todos", h.Create)
	router.GET("/todos", h.List)
	router.GET("/todos/:id", h.Get)
	router.PUT("/todos/:id", h.Update)
	router.DELETE("/todos/:id", h.Delete)

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts
}

// newTestMCPServer 创建指向测试 REST 服务的 MCP 服务器
func newTestMCPServer(baseURL string, timeout time.Duration) *MCPServer {
	return NewServer(&config.APIConfig{BaseURL: baseURL, Timeout: timeout})
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }

func TestDispatch_CreateTodo(t *testing.T) {
	ts := setupAPIServer(t)
	s := newTestMCPServer(ts.URL, 5*time.Second)
	ctx := context.Background()

	t.Run("创建成功", func(t *testing.T) {
		result := s.dispatch(ctx, "create_todo", CreateTodoInput{
			Title:       "  Buy milk  ",
			Description: strPtr("2 liters"),
		})

		assert.True(t, result.Success)
		assert.Empty(t, result.Type)
		require.NotNil(t, result.Todo)
		assert.Equal(t, "Buy milk", result.Todo.Title, "标题应在发送前去除空白")
		assert.Contains(t, result.Message, "created successfully")
	})

	t.Run("空白标题在客户端侧即被拒绝", func(t *testing.T) {
		result := s.dispatch(ctx, "create_todo", CreateTodoInput{Title: "   "})

		assert.Equal(t, TypeValidationError, result.Type)
		assert.NotEmpty(t, result.Error)
		assert.Nil(t, result.Todo)
	})
}

func TestDispatch_ListTodos(t *testing.T) {
	ts := setupAPIServer(t)
	s := newTestMCPServer(ts.URL, 5*time.Second)
	ctx := context.Background()

	t.Run("空列表返回提示信息", func(t *testing.T) {
		result := s.dispatch(ctx, "list_todos", ListTodosInput{})
		assert.True(t, result.Success)
		assert.Equal(t, "No todos found", result.Message)
	})

	for _, c := range []struct {
		title     string
		completed bool
	}{
		{"one", true}, {"two", false}, {"three", true},
	} {
		result := s.dispatch(ctx, "create_todo", CreateTodoInput{Title: c.title, Completed: c.completed})
		require.True(t, result.Success)
	}

	t.Run("按完成状态过滤", func(t *testing.T) {
		result := s.dispatch(ctx, "list_todos", ListTodosInput{Completed: boolPtr(true)})

		assert.True(t, result.Success)
		assert.Equal(t, 2, result.Count)
		assert.Contains(t, result.Summary, "completed")
		require.Len(t, result.Todos, 2)
	})

	t.Run("分页", func(t *testing.T) {
		result := s.dispatch(ctx, "list_todos", ListTodosInput{Skip: intPtr(1), Limit: intPtr(1)})

		assert.True(t, result.Success)
		require.Len(t, result.Todos, 1)
		assert.Equal(t, "two", result.Todos[0].Title)
	})
}

func TestDispatch_GetTodo(t *testing.T) {
	ts := setupAPIServer(t)
	s := newTestMCPServer(ts.URL, 5*time.Second)
	ctx := context.Background()

	created := s.dispatch(ctx, "create_todo", CreateTodoInput{Title: "fetch me"})
	require.True(t, created.Success)

	t.Run("获取成功", func(t *testing.T) {
		result := s.dispatch(ctx, "get_todo", TodoIDInput{TodoID: created.Todo.ID})
		assert.True(t, result.Success)
		require.NotNil(t, result.Todo)
		assert.Equal(t, "fetch me", result.Todo.Title)
	})

	t.Run("不存在的ID映射为not_found", func(t *testing.T) {
		result := s.dispatch(ctx, "get_todo", TodoIDInput{TodoID: 99999})
		assert.Equal(t, TypeNotFound, result.Type)
		assert.NotEmpty(t, result.Error)
	})

	t.Run("缺少todo_id为validation_error", func(t *testing.T) {
		result := s.dispatch(ctx, "get_todo", TodoIDInput{})
		assert.Equal(t, TypeValidationError, result.Type)
	})
}

func TestDispatch_UpdateTodo(t *testing.T) {
	ts := setupAPIServer(t)
	s := newTestMCPServer(ts.URL, 5*time.Second)
	ctx := context.Background()

	created := s.dispatch(ctx, "create_todo", CreateTodoInput{
		Title:       "original",
		Description: strPtr("desc"),
	})
	require.True(t, created.Success)

	t.Run("部分更新只上报提供的字段", func(t *testing.T) {
		result := s.dispatch(ctx, "update_todo", UpdateTodoInput{
			TodoID:    created.Todo.ID,
			Completed: boolPtr(true),
		})

		assert.True(t, result.Success)
		assert.Equal(t, []string{"completed"}, result.UpdatedFields)
		require.NotNil(t, result.Todo)
		assert.True(t, result.Todo.Completed)
		assert.Equal(t, "original", result.Todo.Title)
	})

	t.Run("空更新集合被拒绝", func(t *testing.T) {
		result := s.dispatch(ctx, "update_todo", UpdateTodoInput{TodoID: created.Todo.ID})
		assert.Equal(t, TypeValidationError, result.Type)
	})

	t.Run("超长标题被拒绝", func(t *testing.T) {
		long := make([]byte, 201)
		for i := range long {
			long[i] = 'a'
		}
		title := string(long)
		result := s.dispatch(ctx, "update_todo", UpdateTodoInput{
			TodoID: created.Todo.ID,
			Title:  &title,
		})
		assert.Equal(t, TypeValidationError, result.Type)
	})

	t.Run("不存在的ID映射为not_found", func(t *testing.T) {
		result := s.dispatch(ctx, "update_todo", UpdateTodoInput{
			TodoID:    99999,
			Completed: boolPtr(true),
		})
		assert.Equal(t, TypeNotFound, result.Type)
	})
}

func TestDispatch_DeleteTodo(t *testing.T) {
	ts := setupAPIServer(t)
	s := newTestMCPServer(ts.URL, 5*time.Second)
	ctx := context.Background()

	created := s.dispatch(ctx, "create_todo", CreateTodoInput{Title: "delete me"})
	require.True(t, created.Success)

	result := s.dispatch(ctx, "delete_todo", TodoIDInput{TodoID: created.Todo.ID})
	assert.True(t, result.Success)
	assert.Contains(t, result.Message, "deleted successfully")

	// 再次删除映射为 not_found
	result = s.dispatch(ctx, "delete_todo", TodoIDInput{TodoID: created.Todo.ID})
	assert.Equal(t, TypeNotFound, result.Type)
}

func TestDispatch_MarkTools(t *testing.T) {
	ts := setupAPIServer(t)
	s := newTestMCPServer(ts.URL, 5*time.Second)
	ctx := context.Background()

	created := s.dispatch(ctx, "create_todo", CreateTodoInput{Title: "toggle me"})
	require.True(t, created.Success)

	result := s.dispatch(ctx, "mark_todo_complete", TodoIDInput{TodoID: created.Todo.ID})
	require.True(t, result.Success)
	assert.True(t, result.Todo.Completed)

	result = s.dispatch(ctx, "mark_todo_incomplete", TodoIDInput{TodoID: created.Todo.ID})
	require.True(t, result.Success)
	assert.False(t, result.Todo.Completed)
}

func TestDispatch_InvalidTool(t *testing.T) {
	ts := setupAPIServer(t)
	s := newTestMCPServer(ts.URL, 5*time.Second)

	result := s.dispatch(context.Background(), "nonexistent_tool", nil)
	assert.Equal(t, TypeInvalidTool, result.Type)
	assert.Contains(t, result.Error, "nonexistent_tool")
}

func TestDispatch_ConnectionError(t *testing.T) {
	ts := setupAPIServer(t)
	url := ts.URL
	ts.Close() // 提前关闭，触发连接失败

	s := newTestMCPServer(url, 2*time.Second)

	result := s.dispatch(context.Background(), "get_todo", TodoIDInput{TodoID: 1})
	assert.Equal(t, TypeConnectionError, result.Type)
}

func TestDispatch_TimeoutError(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer slow.Close()

	s := newTestMCPServer(slow.URL, 50*time.Millisecond)

	result := s.dispatch(context.Background(), "get_todo", TodoIDInput{TodoID: 1})
	assert.Equal(t, TypeTimeoutError, result.Type)
}
