package rtms

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

// wsConn wraps a dialed WebSocket with write serialization. The signaling
// handle is written to by its own read loop (keep-alive replies) and by the
// media driver (stream-state update), so writes take a lock. Keep-alive
// replies go straight to the socket rather than through a queue: the remote
// closes the connection when the echo is late.
type wsConn struct {
	conn *websocket.Conn
	wmu  sync.Mutex
	once sync.Once
}

func newWSConn(c *websocket.Conn) *wsConn { return &wsConn{conn: c} }

func (c *wsConn) SendJSON(v any) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return c.conn.WriteJSON(v)
}

func (c *wsConn) Close() {
	c.once.Do(func() { _ = c.conn.Close() })
}
