package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/input"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

// The server is a local development tool, so cross-origin upgrades from
// the renderer dev server are allowed.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// helloMsg greets a new client with its role and the camera rides on
// offer. The poses behind each name arrive with every frame.
type helloMsg struct {
	Type   string   `json:"type"`
	ID     string   `json:"id"`
	Pilot  bool     `json:"pilot"`
	Night  bool     `json:"night"`
	Riders []string `json:"riders"`
	Views  []string `json:"views"`
}

// inbound is everything a client may send: stick state while piloting,
// or the day/night switch.
type inbound struct {
	Type  string       `json:"type"`
	State *input.State `json:"state,omitempty"`
	Night *bool        `json:"night,omitempty"`
}

func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}

	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, 64),
	}

	s.mu.Lock()
	s.clients[c.id] = c
	pilot := s.pilotID == ""
	if pilot {
		s.pilotID = c.id
	}
	s.mu.Unlock()
	log.Printf("client connected: %s (pilot=%v)", c.id, pilot)

	c.enqueue(s.helloFor(c.id, pilot))

	go s.writePump(c)
	s.readPump(c)
}

func (s *Server) helloFor(id string, pilot bool) []byte {
	hello := helloMsg{
		Type:  "hello",
		ID:    id,
		Pilot: pilot,
		Night: s.world.Night(),
	}
	for _, rider := range s.world.Sched.CameraSources() {
		hello.Riders = append(hello.Riders, rider.Name())
	}
	for _, pov := range s.world.Sched.POVSources() {
		hello.Views = append(hello.Views, pov.Name())
	}
	b, _ := json.Marshal(hello)
	return b
}

func (s *Server) readPump(c *client) {
	defer func() {
		s.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("client %s read: %v", c.id, err)
			}
			return
		}

		var msg inbound
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Printf("client %s sent malformed message: %v", c.id, err)
			continue
		}
		s.dispatch(c, msg)
	}
}

func (s *Server) dispatch(c *client, msg inbound) {
	switch msg.Type {
	case "input":
		if msg.State == nil {
			return
		}
		s.mu.Lock()
		isPilot := s.pilotID == c.id
		s.mu.Unlock()
		if isPilot {
			s.stick.Set(*msg.State)
		}

	case "daynight":
		if msg.Night == nil {
			return
		}
		night := *msg.Night
		select {
		case s.commands <- func() { s.world.SetNight(night) }:
		default:
			log.Printf("command queue full, dropping daynight from %s", c.id)
		}

	default:
		log.Printf("client %s sent unknown message type %q", c.id, msg.Type)
	}
}

func (s *Server) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// unregister removes a client and, when the pilot leaves, unplugs the
// stick so the helicopter parks itself, then hands the pilot role to any
// remaining client.
func (s *Server) unregister(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[c.id]; !ok {
		return
	}
	delete(s.clients, c.id)
	close(c.send)
	log.Printf("client disconnected: %s", c.id)

	if s.pilotID != c.id {
		return
	}
	s.pilotID = ""
	s.stick.Release()
	for id, next := range s.clients {
		s.pilotID = id
		next.enqueue([]byte(`{"type":"pilot"}`))
		log.Printf("stick handed to %s", id)
		break
	}
}

// broadcastFrame runs on the simulation goroutine after every step. Slow
// clients skip frames rather than stall the loop; each frame supersedes
// the last, so dropped ones are never missed.
func (s *Server) broadcastFrame(tick uint64, _ float64) {
	frame := s.world.Frame(tick, s.sounds.Snapshot())
	b, err := json.Marshal(frame)
	if err != nil {
		log.Printf("frame encode: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.clients {
		c.enqueue(b)
	}
}

func (c *client) enqueue(msg []byte) {
	select {
	case c.send <- msg:
	default:
	}
}
