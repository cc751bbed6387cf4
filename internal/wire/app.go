package wire

import (
	"database/sql"
	"errors"
	"log/slog"
	nethttp "net/http"

	applog "github.com/todohub/backend/internal/infrastructure/log"
	"github.com/todohub/backend/internal/interfaces/http"
)

// App 应用主结构，组合所有服务
type App struct {
	HTTPServer *http.HTTPServer
	db         *sql.DB
	logger     *slog.Logger
}

// NewApp 创建应用实例
func NewApp(httpServer *http.HTTPServer, db *sql.DB) *App {
	return &App{
		HTTPServer: httpServer,
		db:         db,
		logger:     applog.NewModuleLogger("app", "main"),
	}
}

// Start 启动 HTTP 服务
// ListenAndServe 在独立 goroutine 中阻塞，启动失败只记录日志
func (a *App) Start() error {
	a.logger.Info("Starting todohub backend application")

	go func() {
		if err := a.HTTPServer.Start(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			a.logger.Error("HTTP server stopped", "error", err)
		}
	}()

	return nil
}

// Stop 停止所有服务并释放资源
func (a *App) Stop() error {
	a.logger.Info("Stopping todohub backend application")

	if err := a.HTTPServer.Stop(); err != nil {
		a.logger.Error("Failed to stop HTTP server", "error", err)
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("Failed to close database", "error", err)
			return err
		}
	}

	return nil
}
