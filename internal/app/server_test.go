//go:build !integration

package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewServer(t *testing.T) {
	server := NewServer(okHandler(), "8080")

	assert.NotNil(t, server)
	assert.Equal(t, ":8080", server.httpServer.Addr)
	assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 15*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 60*time.Second, server.httpServer.IdleTimeout)
	assert.Equal(t, 10*time.Second, server.shutdownTimeout)
}

func TestServer_SetShutdownTimeout(t *testing.T) {
	server := NewServer(okHandler(), "8080")

	server.SetShutdownTimeout(3 * time.Second)
	assert.Equal(t, 3*time.Second, server.shutdownTimeout)

	server.SetShutdownTimeout(0)
	assert.Equal(t, 3*time.Second, server.shutdownTimeout)
}

func TestServer_Serve(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := NewServer(okHandler(), "0")
	var hookCalls []string
	server.OnShutdown(func(context.Context) error {
		hookCalls = append(hookCalls, "first")
		return nil
	})
	server.OnShutdown(func(context.Context) error {
		hookCalls = append(hookCalls, "second")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Serve(ctx, ln)
	}()

	url := fmt.Sprintf("http://%s/", ln.Addr().String())
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Server did not shutdown in time")
	}
	assert.Equal(t, []string{"first", "second"}, hookCalls)
}

func TestServer_Run_WithError(t *testing.T) {
	server := NewServer(okHandler(), "invalid-port")

	err := server.Run(context.Background())
	assert.Error(t, err)
}

func TestServer_Shutdown_HookError(t *testing.T) {
	server := NewServer(okHandler(), "0")
	hookErr := errors.New("close failed")
	server.OnShutdown(func(context.Context) error { return hookErr })

	err := server.Shutdown()
	assert.ErrorIs(t, err, hookErr)
}
