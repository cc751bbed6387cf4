package todo

import "strings"

// 字段长度约束，与 REST 和 MCP 两侧共用
const (
	TitleMaxLen       = 200
	DescriptionMaxLen = 1000
)

// Validate 校验并规范化创建输入
// 去除 title/description 首尾空白；title 去空白后不能为空且不超过 200 字符，
// description 去空白后不超过 1000 字符
func (c *CreateTodo) Validate() error {
	title := strings.TrimSpace(c.Title)
	if title == "" {
		return NewValidationError("title", "Title cannot be empty or just whitespace")
	}
	if len([]rune(title)) > TitleMaxLen {
		return NewValidationError("title", "Title must be 200 characters or less")
	}
	c.Title = title

	if c.Description != nil {
		desc := strings.TrimSpace(*c.Description)
		if len([]rune(desc)) > DescriptionMaxLen {
			return NewValidationError("description", "Description must be 1000 characters or less")
		}
		c.Description = &desc
	}

	return nil
}

// Validate 校验并规范化部分更新输入
// 规则与创建一致，但只作用于提供了的字段
func (u *UpdateTodo) Validate() error {
	if u.Title != nil {
		title := strings.TrimSpace(*u.Title)
		if title == "" {
			return NewValidationError("title", "Title cannot be empty or just whitespace")
		}
		if len([]rune(title)) > TitleMaxLen {
			return NewValidationError("title", "Title must be 200 characters or less")
		}
		u.Title = &title
	}

	if u.Description != nil {
		desc := strings.TrimSpace(*u.Description)
		if len([]rune(desc)) > DescriptionMaxLen {
			return NewValidationError("description", "Description must be 1000 characters or less")
		}
		u.Description = &desc
	}

	return nil
}
