package todo

// Repository 待办事项仓储接口
type Repository interface {
	// Insert 插入待办，由存储层分配 ID 并填充时间戳，返回入库后的记录
	Insert(item *Todo) (*Todo, error)

	// FindByID 根据 ID 查找待办，未找到时返回 (nil, nil)
	FindByID(id int64) (*Todo, error)

	// FindAll 按插入顺序返回匹配过滤条件的待办列表
	FindAll(filter ListFilter) ([]*Todo, error)

	// Update 部分更新，只修改提供了的字段并刷新 updated_at
	// 待办不存在时返回 ErrNotFound
	Update(id int64, fields UpdateTodo) (*Todo, error)

	// Delete 删除待办，不存在时返回 ErrNotFound
	Delete(id int64) error
}
