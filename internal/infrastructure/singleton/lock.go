package singleton

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"
)

// HealthCheckTimeout 健康检查超时时间
const HealthCheckTimeout = 2 * time.Second

// CheckAndLock 检查端口是否被占用，若被占用则探测是否已有实例在运行
// 端口可用时返回 listener；已有健康实例时返回 (nil, nil)，调用者应直接退出；
// 端口被占用但实例不健康时返回错误
func CheckAndLock(port string) (net.Listener, error) {
	listener, err := net.Listen("tcp", port)
	if err == nil {
		return listener, nil
	}

	if isAddrInUse(err) {
		if isInstanceRunning(port) {
			return nil, nil
		}
		return nil, fmt.Errorf("port %s is in use but the health check failed", port)
	}

	return nil, fmt.Errorf("failed to listen on %s: %w", port, err)
}

// isAddrInUse 检查错误是否为地址已被占用
func isAddrInUse(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, syscall.EADDRINUSE) {
		return true
	}

	// Windows 下错误码不同，回退到字符串匹配
	errStr := err.Error()
	return errStr == "bind: address already in use" ||
		errStr == "bind: Only one usage of each socket address (protocol/network address/port) is normally permitted"
}

// isInstanceRunning 通过健康检查探测已有实例
func isInstanceRunning(port string) bool {
	client := &http.Client{
		Timeout: HealthCheckTimeout,
	}

	url := fmt.Sprintf("http://localhost%s/health", port)
	resp, err := client.Get(url)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
