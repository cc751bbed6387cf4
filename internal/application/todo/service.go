// Package todo 实现 CRUD 服务层
// REST 与 MCP 两个入口共用这一个入口点：先校验再访问存储，
// 不做日志、认证和响应编码，这些属于各自的接口层
package todo

import (
	"errors"

	domain "github.com/todohub/backend/internal/domain/todo"
)

// Service 待办事项 CRUD 服务
type Service struct {
	repo domain.Repository
}

// NewService 创建 CRUD 服务
// 存储实例在启动时显式注入，便于测试时隔离
func NewService(repo domain.Repository) *Service {
	return &Service{repo: repo}
}

// Create 校验后创建待办
func (s *Service) Create(input domain.CreateTodo) (*domain.Todo, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.repo.Insert(&domain.Todo{
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		Favorite:    input.Favorite,
	})
	if err != nil {
		return nil, domain.NewStorageError("insert", err)
	}

	return item, nil
}

// List 按过滤条件返回待办列表
func (s *Service) List(filter domain.ListFilter) ([]*domain.Todo, error) {
	if filter.Skip < 0 {
		return nil, domain.NewValidationError("skip", "skip must be a non-negative integer")
	}
	if filter.Limit < 0 {
		return nil, domain.NewValidationError("limit", "limit must be a non-negative integer")
	}

	items, err := s.repo.FindAll(filter)
	if err != nil {
		return nil, domain.NewStorageError("list", err)
	}
	return items, nil
}

// Get 根据 ID 获取待办，不存在时返回 ErrNotFound
func (s *Service) Get(id int64) (*domain.Todo, error) {
	item, err := s.repo.FindByID(id)
	if err != nil {
		return nil, domain.NewStorageError("get", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// Update 校验后部分更新待办
// 空的更新集合是合法的，只刷新 updated_at
func (s *Service) Update(id int64, fields domain.UpdateTodo) (*domain.Todo, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	item, err := s.repo.Update(id, fields)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.NewStorageError("update", err)
	}
	return item, nil
}

// Delete 删除待办，不存在时返回 ErrNotFound
func (s *Service) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return domain.NewStorageError("delete", err)
	}
	return nil
}
