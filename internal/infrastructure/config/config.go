package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	API      APIConfig
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	// HTTPPort 监听端口，同时用于单例锁
	HTTPPort string
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	// Path SQLite 数据库文件路径，留空表示使用默认路径
	Path string
}

// APIConfig MCP 适配器访问 REST API 的配置
type APIConfig struct {
	// BaseURL REST API 地址
	BaseURL string
	// Timeout 单次请求超时
	Timeout time.Duration
}

// NewConfig 创建配置，默认值可被环境变量覆盖
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort: getEnvWithDefault("TODO_HTTP_PORT", ":8000"),
		},
		Database: DatabaseConfig{
			Path: os.Getenv("TODO_DB_PATH"),
		},
		API: APIConfig{
			BaseURL: getEnvWithDefault("TODO_API_BASE_URL", "http://localhost:8000"),
			Timeout: getEnvDuration("TODO_MCP_TIMEOUT", 30*time.Second),
		},
	}
}

// DBPath 返回数据库文件路径
// 未配置时使用 ~/.todohub/todohub.db
func (c *DatabaseConfig) DBPath() (string, error) {
	if c.Path != "" {
		return c.Path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".todohub", "todohub.db"), nil
}

// NewServerConfig 创建服务器配置
func NewServerConfig(cfg *Config) *ServerConfig {
	return &cfg.Server
}

// NewDatabaseConfig 创建数据库配置
func NewDatabaseConfig(cfg *Config) *DatabaseConfig {
	return &cfg.Database
}

// NewAPIConfig 创建 API 配置
func NewAPIConfig(cfg *Config) *APIConfig {
	return &cfg.API
}

// getEnvWithDefault 获取环境变量，带默认值
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration 获取时长类型环境变量，支持 "30s" 或纯秒数
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
