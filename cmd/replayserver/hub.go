package main

import (
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/chknd1nner/duelcore/duel/replay"
)

// isValidOrigin mirrors the teacher's websocket.go origin check: allow
// same-origin and localhost connections, reject anything else. Grounded
// directly on server/websocket.go's isValidOrigin.
func isValidOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	originURL, err := url.Parse(origin)
	if err != nil {
		log.Printf("Invalid origin URL: %s", origin)
		return false
	}
	if r.Host == originURL.Host {
		return true
	}
	if strings.HasPrefix(originURL.Host, "localhost:") ||
		strings.HasPrefix(originURL.Host, "127.0.0.1:") ||
		originURL.Host == "localhost" || originURL.Host == "127.0.0.1" {
		return true
	}
	log.Printf("Rejected WebSocket connection from origin: %s", origin)
	return false
}

var upgrader = websocket.Upgrader{
	CheckOrigin:       isValidOrigin,
	EnableCompression: true,
}

// FrameMessage is one recorded turn pushed to a connected viewer.
type FrameMessage struct {
	Type string          `json:"type"`
	Data replay.Snapshot `json:"data"`
}

// Viewer is one connected replay-viewer socket. Adapted from the
// teacher's Client: a live per-player connection becomes a read-only
// viewer connection with nothing to send upstream but a close.
type Viewer struct {
	id   int
	conn *websocket.Conn
	send chan FrameMessage
	hub  *Hub
}

// Hub fans recorded snapshots out to every connected viewer at a fixed
// playback rate. Grounded on server/websocket.go's Server type: the same
// register/unregister/broadcast channel triple, with the live gameLoop's
// physics tick replaced by a ticker that walks a pre-recorded snapshot
// list instead of advancing a simulation.
type Hub struct {
	mu         sync.RWMutex
	viewers    map[int]*Viewer
	register   chan *Viewer
	unregister chan *Viewer
	broadcast  chan FrameMessage

	snapshots []replay.Snapshot
	interval  time.Duration
	nextID    int
}

// NewHub constructs a Hub that will play back snapshots at the given
// interval once Run is started.
func NewHub(snapshots []replay.Snapshot, interval time.Duration) *Hub {
	return &Hub{
		viewers:    make(map[int]*Viewer),
		register:   make(chan *Viewer),
		unregister: make(chan *Viewer),
		broadcast:  make(chan FrameMessage, 256),
		snapshots:  snapshots,
		interval:   interval,
	}
}

// Run drives connection bookkeeping and playback until stop is closed.
func (h *Hub) Run(stop <-chan struct{}) {
	go h.playbackLoop(stop)

	for {
		select {
		case v := <-h.register:
			h.mu.Lock()
			h.viewers[v.id] = v
			h.mu.Unlock()
			log.Printf("Viewer %d connected", v.id)

		case v := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.viewers[v.id]; ok {
				delete(h.viewers, v.id)
				close(v.send)
			}
			h.mu.Unlock()
			log.Printf("Viewer %d disconnected", v.id)

		case msg := <-h.broadcast:
			h.mu.RLock()
			for _, v := range h.viewers {
				select {
				case v.send <- msg:
				default:
					log.Printf("Warning: viewer %d send buffer full, skipping frame", v.id)
				}
			}
			h.mu.RUnlock()

		case <-stop:
			return
		}
	}
}

// playbackLoop pushes one recorded snapshot per tick, looping once the
// match replay ends.
func (h *Hub) playbackLoop(stop <-chan struct{}) {
	if len(h.snapshots) == 0 {
		return
	}
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	i := 0
	for {
		select {
		case <-ticker.C:
			h.broadcast <- FrameMessage{Type: "frame", Data: h.snapshots[i]}
			i = (i + 1) % len(h.snapshots)
		case <-stop:
			return
		}
	}
}

// HandleWebSocket upgrades a viewer connection and wires it to the hub.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.mu.Unlock()

	v := &Viewer{id: id, conn: conn, send: make(chan FrameMessage, 32), hub: h}
	h.register <- v

	go v.writePump()
	go v.readPump()
}

// writePump drains the viewer's send channel to its socket.
func (v *Viewer) writePump() {
	defer v.conn.Close()
	for msg := range v.send {
		if err := v.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// readPump exists only to detect the viewer closing the connection;
// replay viewers send nothing upstream.
func (v *Viewer) readPump() {
	defer func() {
		v.hub.unregister <- v
		v.conn.Close()
	}()
	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			return
		}
	}
}
