package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mathquiz/backend/internal/domain/stats"
	"github.com/mathquiz/backend/internal/worker"
)

const (
	writeWait   = 10 * time.Second
	recapWindow = 7
)

// RecapSource computes a child's recap over the last n days.
type RecapSource interface {
	RecentRecap(ctx context.Context, child string, days int) (stats.Recap, error)
}

// Message is the envelope pushed to subscribers.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type update struct {
	child string
	recap stats.Recap
	err   error
}

// Hub pushes fresh weekly recaps to websocket subscribers of a child.
// Recaps are computed on a worker pool and written from a single goroutine,
// so each connection only ever has one writer.
type Hub struct {
	source RecapSource
	pool   *worker.Pool[update]
	logger *slog.Logger

	mu   sync.RWMutex
	subs map[string]map[*websocket.Conn]bool

	upgrader websocket.Upgrader
	done     chan struct{}
}

func NewHub(source RecapSource, logger *slog.Logger) *Hub {
	h := &Hub{
		source: source,
		pool:   worker.NewPool[update](2, 64),
		logger: logger,
		subs:   make(map[string]map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		done: make(chan struct{}),
	}
	go h.run()
	return h
}

// Notify schedules a recap refresh for child. It never blocks; when the
// queue is full the refresh is dropped and the next event catches up.
func (h *Hub) Notify(child string) {
	if !h.hasSubscribers(child) {
		return
	}
	ok := h.pool.TrySubmit(child, func() update {
		recap, err := h.source.RecentRecap(context.Background(), child, recapWindow)
		return update{child: child, recap: recap, err: err}
	})
	if !ok {
		h.logger.Warn("live recap dropped", "child", child)
	}
}

// Subscribe upgrades the request and streams recaps for child until the
// client disconnects.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request, child string) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	// The server's read timeout outlives the upgrade; subscribers idle indefinitely.
	conn.SetReadDeadline(time.Time{})

	h.add(child, conn)
	defer h.remove(child, conn)

	h.Notify(child)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Close stops the worker pool and drops every subscriber.
func (h *Hub) Close() {
	h.pool.Close()
	<-h.done

	h.mu.Lock()
	defer h.mu.Unlock()
	for child, conns := range h.subs {
		for conn := range conns {
			conn.Close()
		}
		delete(h.subs, child)
	}
}

func (h *Hub) run() {
	defer close(h.done)
	for res := range h.pool.Results() {
		u := res.Output
		if u.err != nil {
			h.logger.Error("live recap failed", "child", u.child, "error", u.err)
			continue
		}
		h.broadcast(u.child, Message{Type: "recap", Data: u.recap})
	}
}

func (h *Hub) hasSubscribers(child string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[child]) > 0
}

func (h *Hub) add(child string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[child] == nil {
		h.subs[child] = make(map[*websocket.Conn]bool)
	}
	h.subs[child][conn] = true
	h.logger.Info("live subscriber connected", "child", child, "total", len(h.subs[child]))
}

func (h *Hub) remove(child string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.subs[child]
	if !ok || !conns[conn] {
		return
	}
	delete(conns, conn)
	conn.Close()
	if len(conns) == 0 {
		delete(h.subs, child)
	}
	h.logger.Info("live subscriber disconnected", "child", child)
}

func (h *Hub) broadcast(child string, msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("live marshal failed", "error", err)
		return
	}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.subs[child]))
	for conn := range h.subs[child] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Warn("live write failed", "child", child, "error", err)
			h.remove(child, conn)
		}
	}
}
