package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/todohub/backend/internal/infrastructure/config"
	applog "github.com/todohub/backend/internal/infrastructure/log"
	"github.com/todohub/backend/internal/interfaces/mcp"
)

func main() {
	// 初始化日志系统（stdio 模式下日志只能走 stderr）
	applog.Init(nil)
	logger := applog.NewModuleLogger("mcp", "main")

	cfg := config.NewConfig()
	server := mcp.NewServer(config.NewAPIConfig(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting MCP server on stdio",
		"api_base_url", cfg.API.BaseURL,
	)
	if err := server.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("MCP server exited with error",
			"error", err,
		)
		os.Exit(1)
	}
}
