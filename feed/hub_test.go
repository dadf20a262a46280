package feed

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"attendance_backend/models"

	"github.com/gorilla/websocket"
)

func dial(t *testing.T, h *Hub) (*websocket.Conn, func()) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h.Serve(w, r); err != nil {
			t.Errorf("Serve: %v", err)
		}
	}))
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("Dial: %v", err)
	}
	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("ClientCount = %d, want %d", h.ClientCount(), n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHub_PublishReachesClient(t *testing.T) {
	h := NewHub()
	conn, cleanup := dial(t, h)
	defer cleanup()
	waitForClients(t, h, 1)

	h.Publish(models.Event{Event: models.EventAttendanceMarked, Data: map[string]string{"student_id": "s1"}})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got struct {
		Event string            `json:"event"`
		Data  map[string]string `json:"data"`
	}
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got.Event != models.EventAttendanceMarked || got.Data["student_id"] != "s1" {
		t.Fatalf("unexpected message %+v", got)
	}
}

func TestHub_DropsClientOnDisconnect(t *testing.T) {
	h := NewHub()
	conn, cleanup := dial(t, h)
	defer cleanup()
	waitForClients(t, h, 1)

	conn.Close()
	waitForClients(t, h, 0)

	// Publishing with no clients is a no-op.
	h.Publish(models.Event{Event: models.EventUndo})
}

func TestHub_Close(t *testing.T) {
	h := NewHub()
	_, cleanup := dial(t, h)
	defer cleanup()
	waitForClients(t, h, 1)

	h.Close()
	if h.ClientCount() != 0 {
		t.Fatalf("ClientCount after Close = %d", h.ClientCount())
	}
}

func TestHub_PublishDropsClientWithFullBuffer(t *testing.T) {
	h := NewHub()
	// No writer goroutine drains this client, so its buffer stays full.
	slow := &client{send: make(chan models.Event, 1)}
	slow.send <- models.Event{Event: models.EventUndo}
	h.mu.Lock()
	h.clients[slow] = struct{}{}
	h.mu.Unlock()

	done := make(chan struct{})
	go func() {
		h.Publish(models.Event{Event: models.EventAttendanceMarked})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Publish blocked on a client with a full buffer")
	}

	if h.ClientCount() != 0 {
		t.Fatalf("ClientCount = %d, want slow client dropped", h.ClientCount())
	}
	// The buffered event is still there, then the channel is closed.
	if _, ok := <-slow.send; !ok {
		t.Fatalf("expected buffered event before close")
	}
	if _, ok := <-slow.send; ok {
		t.Fatalf("expected send channel to be closed")
	}
}

func TestHub_PublishKeepsOrderPerClient(t *testing.T) {
	h := NewHub()
	conn, cleanup := dial(t, h)
	defer cleanup()
	waitForClients(t, h, 1)

	names := []string{models.EventQueueAdded, models.EventQueueProcessed, models.EventUndo}
	for _, name := range names {
		h.Publish(models.Event{Event: name})
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for _, want := range names {
		var got models.Event
		if err := conn.ReadJSON(&got); err != nil {
			t.Fatalf("ReadJSON: %v", err)
		}
		if got.Event != want {
			t.Fatalf("event = %q, want %q", got.Event, want)
		}
	}
}
