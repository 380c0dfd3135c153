package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// Broadcasts and keep-alive pings write to the same connection from
// different goroutines; the connection allows only one writer at a time, so
// interleaving them must not panic.
func TestRealtimeHub_ConcurrentBroadcastAndPing(t *testing.T) {
	hub := NewRealtimeHub()
	up := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			t.Error(err)
			return
		}
		hub.Register(&WSClient{UserID: 7, Conn: conn})
	}))
	defer srv.Close()

	dialed, _, err := websocket.DefaultDialer.Dial(
		"ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer dialed.Close()

	// drain server frames so writes never block on a full buffer
	go func() {
		for {
			if _, _, err := dialed.ReadMessage(); err != nil {
				return
			}
		}
	}()

	var cl *WSClient
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		for c := range hub.clients[7] {
			cl = c
			return true
		}
		return false
	}, time.Second, 10*time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				hub.Broadcast(7, map[string]any{"n": j})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = cl.Ping()
			}
		}()
	}
	wg.Wait()

	hub.Unregister(cl)
}
