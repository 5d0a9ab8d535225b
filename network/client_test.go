package network

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/automoto/coffeeon/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushKeepsLatestOnly(t *testing.T) {
	c := NewProgressClient()
	c.push(messages.ProgressUpdate{Progress: 0.1, Seq: 1})
	c.push(messages.ProgressUpdate{Progress: 0.2, Seq: 2})
	c.push(messages.ProgressUpdate{Progress: 0.15, Seq: 2}) // stale
	c.push(messages.ProgressUpdate{Progress: 0.3, Seq: 3})

	assert.True(t, c.Poll())
	assert.Equal(t, 0.3, c.CurrentProgress())
	assert.False(t, c.Poll(), "nothing left once the latest is applied")
}

func TestPollNotifiesSubscribers(t *testing.T) {
	c := NewProgressClient()
	var seen []float64
	unsub := c.OnChange(func(p float64) { seen = append(seen, p) })
	defer unsub()

	c.push(messages.ProgressUpdate{Progress: 0.5})
	c.Poll()
	assert.Equal(t, []float64{0.5}, seen)
}

// relayStub accepts one connection, sends update, then hands every frame
// it reads to frames.
func relayStub(t *testing.T, update messages.ProgressUpdate, frames chan<- []byte) string {
	t.Helper()
	payload, err := router.Serialize(update)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.CloseNow()

		ctx := r.Context()
		if err := conn.Write(ctx, websocket.MessageBinary, payload); err != nil {
			return
		}
		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				return
			}
			frames <- data
		}
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestClientFollowsRelay(t *testing.T) {
	frames := make(chan []byte, 4)
	url := relayStub(t, messages.ProgressUpdate{Progress: 0.42, Seq: 1}, frames)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c := NewProgressClient()
	c.Connect(ctx, url)
	defer c.Disconnect()

	require.Eventually(t, func() bool {
		c.Poll()
		return c.State() == StateConnected && c.CurrentProgress() == 0.42
	}, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, c.Publish(ctx, 1.5))
	want, err := router.Serialize(messages.ProgressUpdate{Progress: 1})
	require.NoError(t, err)
	// published progress is clamped
	for received := false; !received; {
		select {
		case got := <-frames:
			received = bytes.Equal(want, got)
		case <-ctx.Done():
			t.Fatal("relay never received the published progress")
		}
	}

	c.Disconnect()
	assert.Equal(t, StateDisconnected, c.State())
	assert.Error(t, c.Publish(ctx, 0.5))
}

func TestConnectFailureRetries(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c := NewProgressClient()
	c.retry = 10 * time.Millisecond
	c.Connect(ctx, "ws://127.0.0.1:1")
	defer c.Disconnect()

	require.Eventually(t, func() bool { return c.LastError() != nil }, 2*time.Second, 5*time.Millisecond)
	assert.NotEqual(t, StateConnected, c.State())
}

func TestPublishWhileDisconnected(t *testing.T) {
	c := NewProgressClient()
	assert.Error(t, c.Publish(context.Background(), 0.5))
}
