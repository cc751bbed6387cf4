//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"
	apptodo "github.com/todohub/backend/internal/application/todo"
	"github.com/todohub/backend/internal/infrastructure/config"
	"github.com/todohub/backend/internal/infrastructure/storage"
	"github.com/todohub/backend/internal/interfaces/http"
)

// InitializeApp 初始化 REST 服务
func InitializeApp() (*App, error) {
	wire.Build(
		// 按层组合 ProviderSet
		config.ProviderSet,  // 配置
		storage.ProviderSet, // 存储基础设施
		apptodo.ProviderSet, // 应用层
		http.ProviderSet,    // HTTP 接口层
		NewApp,              // 组合所有服务的应用结构
	)
	return nil, nil
}
