package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/InQaaaaGit/batchsum/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// freeAddr возвращает свободный локальный адрес
func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestRunStopsOnContextCancel(t *testing.T) {
	cfg := &config.Config{ServerAddress: freeAddr(t), ShutdownTimeout: time.Second}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewHTTPServer(handler, cfg, zap.NewNop()).Run(ctx)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.ServerAddress)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunReturnsListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	cfg := &config.Config{ServerAddress: l.Addr().String(), ShutdownTimeout: time.Second}
	err = NewHTTPServer(http.NotFoundHandler(), cfg, zap.NewNop()).Run(context.Background())
	assert.Error(t, err)
}

func TestStartHTTPSMissingCertificate(t *testing.T) {
	cfg := &config.Config{
		ServerAddress: freeAddr(t),
		EnableHTTPS:   "true",
		TLSCertFile:   "missing.crt",
		TLSKeyFile:    "missing.key",
	}
	err := NewHTTPServer(http.NotFoundHandler(), cfg, zap.NewNop()).Start()
	assert.Error(t, err)
}
