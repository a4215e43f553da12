package server_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tiagofholanda/portfolio-contact/internal/server"
)

func listen(t *testing.T) net.Listener {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return ln
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	t.Parallel()

	ln := listen(t)
	url := "http://" + ln.Addr().String()

	var hooks atomic.Int32
	srv := server.New(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "pong")
		}),
		server.WithListener(ln),
		server.WithShutdownHook(func(context.Context) error {
			hooks.Add(1)
			return nil
		}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body) == "pong"
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	require.Equal(t, int32(1), hooks.Load())

	_, err := http.Get(url)
	require.Error(t, err)
}

func TestRun_HookErrorsAreReturned(t *testing.T) {
	t.Parallel()

	hookErr := errors.New("close redis")
	srv := server.New(http.NotFoundHandler(),
		server.WithListener(listen(t)),
		server.WithShutdownHook(func(context.Context) error { return hookErr }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, srv.Run(ctx), hookErr)
}

func TestRun_ListenError(t *testing.T) {
	t.Parallel()

	ln := listen(t)
	t.Cleanup(func() { _ = ln.Close() })

	srv := server.New(http.NotFoundHandler(), server.WithAddress(ln.Addr().String()))
	require.Error(t, srv.Run(context.Background()))
}
