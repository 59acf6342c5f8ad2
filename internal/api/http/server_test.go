package http

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, "127.0.0.1:0", newTestRouter(nil), 2*time.Second, log)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		require.FailNow(t, "server did not stop after cancel")
	}
}

func TestServeReportsListenError(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	err := Serve(context.Background(), "127.0.0.1:-1", newTestRouter(nil), time.Second, log)
	assert.Error(t, err)
}
