package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/todohub/backend/internal/domain/todo"
)

// todoRepository 待办事项 SQLite 仓储实现
type todoRepository struct {
	db *sql.DB
}

// NewTodoRepository 创建待办事项仓储实例
func NewTodoRepository(db *sql.DB) (todo.Repository, error) {
	if err := initTodoTable(db); err != nil {
		return nil, fmt.Errorf("failed to init todos table: %w", err)
	}
	return &todoRepository{db: db}, nil
}

// initTodoTable 初始化待办事项表
// AUTOINCREMENT 保证 ID 单调递增且不复用已删除的 ID
func initTodoTable(db *sql.DB) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS todos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		completed INTEGER NOT NULL DEFAULT 0,
		favorite INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);`

	if _, err := db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to create todos table: %w", err)
	}

	createIndexSQL := `
	CREATE INDEX IF NOT EXISTS idx_todos_completed ON todos(completed);`

	if _, err := db.Exec(createIndexSQL); err != nil {
		return fmt.Errorf("failed to create todos indexes: %w", err)
	}

	return nil
}

// Insert 插入待办，分配 ID 并填充时间戳
func (r *todoRepository) Insert(item *todo.Todo) (*todo.Todo, error) {
	now := time.Now()

	var description sql.NullString
	if item.Description != nil {
		description = sql.NullString{String: *item.Description, Valid: true}
	}

	query := `
		INSERT INTO todos (title, description, completed, favorite, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.Exec(query,
		item.Title,
		description,
		boolToInt(item.Completed),
		boolToInt(item.Favorite),
		now.UnixMilli(),
		now.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted todo id: %w", err)
	}

	return r.FindByID(id)
}

// FindByID 根据 ID 查找待办，未找到时返回 (nil, nil)
func (r *todoRepository) FindByID(id int64) (*todo.Todo, error) {
	query := `
		SELECT id, title, description, completed, favorite, created_at, updated_at
		FROM todos
		WHERE id = ?`

	item, err := scanTodo(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query todo: %w", err)
	}

	return item, nil
}

// FindAll 按插入顺序返回匹配过滤条件的待办列表
func (r *todoRepository) FindAll(filter todo.ListFilter) ([]*todo.Todo, error) {
	// limit 为 0 时直接返回空列表
	items := make([]*todo.Todo, 0)
	if filter.Limit == 0 {
		return items, nil
	}

	query := `
		SELECT id, title, description, completed, favorite, created_at, updated_at
		FROM todos`
	args := make([]any, 0, 3)

	if filter.Completed != nil {
		query += ` WHERE completed = ?`
		args = append(args, boolToInt(*filter.Completed))
	}

	query += ` ORDER BY id ASC LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Skip)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate todos: %w", err)
	}

	return items, nil
}

// Update 部分更新待办
// 所有提供的字段和 updated_at 在一条 UPDATE 语句中写入，
// 依赖 SQLite 的单写者锁保证同一 ID 并发更新不会交错。
// updated_at 取当前时间与旧值 +1 的较大者，
// 同一毫秒内的连续更新也能保证严格递增
func (r *todoRepository) Update(id int64, fields todo.UpdateTodo) (*todo.Todo, error) {
	setClauses := make([]string, 0, 5)
	args := make([]any, 0, 6)

	if fields.Title != nil {
		setClauses = append(setClauses, "title = ?")
		args = append(args, *fields.Title)
	}
	if fields.Description != nil {
		setClauses = append(setClauses, "description = ?")
		args = append(args, *fields.Description)
	}
	if fields.Completed != nil {
		setClauses = append(setClauses, "completed = ?")
		args = append(args, boolToInt(*fields.Completed))
	}
	if fields.Favorite != nil {
		setClauses = append(setClauses, "favorite = ?")
		args = append(args, boolToInt(*fields.Favorite))
	}

	setClauses = append(setClauses, "updated_at = MAX(?, updated_at + 1)")
	args = append(args, time.Now().UnixMilli())
	args = append(args, id)

	query := fmt.Sprintf("UPDATE todos SET %s WHERE id = ?", strings.Join(setClauses, ", "))

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return nil, todo.ErrNotFound
	}

	return r.FindByID(id)
}

// Delete 删除待办，不存在时返回 ErrNotFound
func (r *todoRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return todo.ErrNotFound
	}

	return nil
}

// rowScanner 兼容 *sql.Row 和 *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTodo 从查询结果扫描一条待办记录
func scanTodo(row rowScanner) (*todo.Todo, error) {
	var item todo.Todo
	var description sql.NullString
	var completed, favorite int
	var createdAt, updatedAt int64

	if err := row.Scan(
		&item.ID,
		&item.Title,
		&description,
		&completed,
		&favorite,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	if description.Valid {
		item.Description = &description.String
	}
	item.Completed = completed == 1
	item.Favorite = favorite == 1
	item.CreatedAt = time.UnixMilli(createdAt)
	item.UpdatedAt = time.UnixMilli(updatedAt)

	return &item, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// 编译时检查接口实现
var _ todo.Repository = (*todoRepository)(nil)
