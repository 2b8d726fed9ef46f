package net

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub lets other devices on the LAN watch the coloring live. Each
// completed stroke or fill pushes the latest artwork snapshot (PNG
// bytes) to every connected viewer over a websocket.
type Hub struct {
	mu       sync.RWMutex
	viewers  map[*websocket.Conn]bool
	last     []byte
	upgrader websocket.Upgrader
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		viewers: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			// Viewers are LAN peers; there is no origin to enforce.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Broadcast stores the snapshot as the latest state and sends it to
// every connected viewer. Viewers whose send fails are dropped.
func (h *Hub) Broadcast(snapshot []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = snapshot
	for conn := range h.viewers {
		if err := h.send(conn, snapshot); err != nil {
			log.Printf("[SHARE] dropping viewer %s: %v", conn.RemoteAddr(), err)
			conn.Close()
			delete(h.viewers, conn)
		}
	}
}

func (h *Hub) send(conn *websocket.Conn, data []byte) error {
	return conn.WriteMessage(websocket.BinaryMessage, data)
}

// ViewerCount returns the number of connected viewers.
func (h *Hub) ViewerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.viewers)
}

// Serve starts the share server. It blocks, so run it in a
// goroutine. Viewers open http://host:port/ in a browser; the page
// connects back on /ws.
func (h *Hub) Serve(port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.handleIndex)
	mux.HandleFunc("/ws", h.handleWS)
	addr := fmt.Sprintf(":%d", port)
	log.Printf("[SHARE] live view listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}

func (h *Hub) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, viewerPage)
}

func (h *Hub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[SHARE] upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	h.viewers[conn] = true
	// A viewer joining mid-session gets the current state right away.
	if h.last != nil {
		if err := h.send(conn, h.last); err != nil {
			conn.Close()
			delete(h.viewers, conn)
			h.mu.Unlock()
			return
		}
	}
	h.mu.Unlock()
	log.Printf("[SHARE] viewer connected: %s", conn.RemoteAddr())

	// Viewers never send anything meaningful; the read loop just
	// detects disconnects.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.viewers, conn)
				h.mu.Unlock()
				conn.Close()
				log.Printf("[SHARE] viewer left: %s", conn.RemoteAddr())
				return
			}
		}
	}()
}

const viewerPage = `<!DOCTYPE html>
<html>
<head><title>PaintPot live view</title></head>
<body style="margin:0;background:#333;display:flex;justify-content:center;align-items:center;height:100vh">
<img id="art" style="max-width:95vw;max-height:95vh;image-rendering:pixelated">
<script>
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.binaryType = "blob";
ws.onmessage = (e) => {
  const url = URL.createObjectURL(e.data);
  const img = document.getElementById("art");
  if (img.src) URL.revokeObjectURL(img.src);
  img.src = url;
};
</script>
</body>
</html>`
