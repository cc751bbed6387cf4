package todo

import (
	"errors"
	"fmt"
)

// ErrNotFound 待办不存在
var ErrNotFound = errors.New("todo not found")

// ValidationError 字段校验错误
// Field 标识出错的字段，Message 为可直接展示给调用方的说明
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError 创建字段校验错误
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError 判断是否为校验错误
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StorageError 底层存储故障
// 不会自动重试，按不可预期的失败向上传递
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError 包装底层存储错误
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}
