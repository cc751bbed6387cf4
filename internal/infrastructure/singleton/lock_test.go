package singleton

import (
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freePort 取一个随机可用端口的地址串（形如 ":12345"）
func freePort(t *testing.T) string {
	t.Helper()
	listener, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	listener.Close()
	return addr[strings.LastIndex(addr, ":"):]
}

func TestCheckAndLock_PortAvailable(t *testing.T) {
	port := freePort(t)

	result, err := CheckAndLock(port)
	require.NoError(t, err)
	require.NotNil(t, result)
	defer result.Close()
}

func TestCheckAndLock_PortInUse_UnhealthyInstance(t *testing.T) {
	// 占用端口但不提供健康检查端点
	listener, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer listener.Close()

	addr := listener.Addr().String()
	port := addr[strings.LastIndex(addr, ":"):]

	result, err := CheckAndLock(port)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestIsAddrInUse(t *testing.T) {
	listener, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer listener.Close()

	addr := listener.Addr().String()
	port := addr[strings.LastIndex(addr, ":"):]

	_, err = net.Listen("tcp", port)
	require.Error(t, err)
	assert.True(t, isAddrInUse(err))

	assert.False(t, isAddrInUse(nil))
}
