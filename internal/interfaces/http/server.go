package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/todohub/backend/internal/infrastructure/config"
	"github.com/todohub/backend/internal/infrastructure/log"
	"github.com/todohub/backend/internal/interfaces/http/handler"
	"github.com/todohub/backend/internal/interfaces/http/middleware"

	_ "github.com/todohub/backend/docs" // Swagger docs
)

// HTTPServer HTTP 服务器
type HTTPServer struct {
	router   *gin.Engine
	httpPort string
	server   *http.Server
	logger   *slog.Logger
}

// NewServer 创建 HTTP 服务器
func NewServer(
	todoHandler *handler.TodoHandler,
	cfg *config.ServerConfig,
) *HTTPServer {
	router := gin.Default()

	logger := log.NewModuleLogger("http", "server")

	// 跨域全放开（开发模式）
	router.Use(middleware.CORS())

	// 注册路由
	router.GET("/", handler.Root)
	router.POST("/todos", todoHandler.Create)
	router.GET("/todos", todoHandler.List)
	router.GET("/todos/:id", todoHandler.Get)
	router.PUT("/todos/:id", todoHandler.Update)
	router.DELETE("/todos/:id", todoHandler.Delete)

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 静态前端
	router.Static("/app", "./web")

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &HTTPServer{
		router:   router,
		httpPort: cfg.HTTPPort,
		logger:   logger,
	}
}

// Start 启动服务器
func (s *HTTPServer) Start() error {
	s.server = &http.Server{
		Addr:    s.httpPort,
		Handler: s.router,
	}

	s.logger.Info("HTTP server starting",
		"port", s.httpPort,
	)

	return s.server.ListenAndServe()
}

// Shutdown 优雅关闭
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// Stop 停止服务器
func (s *HTTPServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}

// Router 暴露路由（测试用）
func (s *HTTPServer) Router() *gin.Engine {
	return s.router
}
