package config

import "github.com/google/wire"

// ProviderSet Config ProviderSet
// NewAPIConfig 只被 MCP 入口直接使用，不参与 Wire 组装
var ProviderSet = wire.NewSet(
	NewConfig,
	NewServerConfig,
	NewDatabaseConfig,
)
