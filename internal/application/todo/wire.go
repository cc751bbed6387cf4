package todo

import "github.com/google/wire"

// ProviderSet 应用层 ProviderSet
var ProviderSet = wire.NewSet(
	NewService,
)
