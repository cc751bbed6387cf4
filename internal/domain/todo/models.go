package todo

import "time"

// Todo 待办事项实体
// JSON 字段与 REST 接口的返回结构一一对应
type Todo struct {
	ID          int64     `json:"id"`          // 由存储层分配，创建后不可变
	Title       string    `json:"title"`       // 标题，去除首尾空白后 1-200 字符
	Description *string   `json:"description"` // 描述（可选），nil 与空字符串区分
	Completed   bool      `json:"completed"`   // 是否完成
	Favorite    bool      `json:"favorite"`    // 是否收藏
	CreatedAt   time.Time `json:"created_at"`  // 创建时间，只设置一次
	UpdatedAt   time.Time `json:"updated_at"`  // 每次成功变更时刷新
}

// CreateTodo 创建待办的输入
type CreateTodo struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	Favorite    bool    `json:"favorite"`
}

// UpdateTodo 部分更新待办的输入
// 所有字段均可选，nil 表示不修改对应字段
type UpdateTodo struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Favorite    *bool   `json:"favorite"`
}

// Empty 判断是否没有提供任何待更新字段
func (u *UpdateTodo) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Completed == nil && u.Favorite == nil
}

// ListFilter 列表查询条件
type ListFilter struct {
	Completed *bool // nil 表示不按完成状态过滤
	Skip      int
	Limit     int
}
