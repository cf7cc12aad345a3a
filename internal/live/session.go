// Package live hosts viewer sessions over WebSocket. Each connection gets
// its own Controller, driven from a single goroutine.
package live

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/trendview/internal/controller"
	"github.com/ziadkadry99/trendview/internal/loader"
	"github.com/ziadkadry99/trendview/internal/viewstate"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client message types.
const (
	TypeSection  = "section"
	TypeLanguage = "language"
	TypeSource   = "source"
)

// Server message types.
const (
	TypeInit  = "init"
	TypePatch = "patch"
	TypeError = "error"
)

// clientMessage is the incoming WebSocket message format.
type clientMessage struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// serverMessage is the outgoing WebSocket message format.
type serverMessage struct {
	Type      string                  `json:"type"`
	SessionID string                  `json:"session_id"`
	Regions   []viewstate.RegionPatch `json:"regions,omitempty"`
	Groups    []viewstate.GroupPatch  `json:"groups,omitempty"`
	Message   string                  `json:"message,omitempty"`
}

var errInvalidMessage = errors.New("invalid message format")

// inbound is one decoded client message, or the reason it could not be
// decoded.
type inbound struct {
	msg clientMessage
	err error
}

// Handler upgrades requests to live sessions reading from one Store.
type Handler struct {
	store   *loader.Store
	opts    controller.Options
	verbose bool

	// afterInit runs between the first render and the init message.
	afterInit func()
}

// NewHandler returns a Handler whose sessions start from opts.
func NewHandler(store *loader.Store, opts controller.Options, verbose bool) *Handler {
	return &Handler{store: store, opts: opts, verbose: verbose}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("live: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	s := &session{
		id:   uuid.New().String(),
		conn: conn,
		ctrl: controller.New(h.store, h.opts),

		afterInit: h.afterInit,
	}
	if h.verbose {
		log.Printf("live: session %s connected from %s", s.id, r.RemoteAddr)
	}
	s.run(h.store)
	if h.verbose {
		log.Printf("live: session %s closed", s.id)
	}
}

// session is one connected viewer. Only run's goroutine touches ctrl and
// writes to conn.
type session struct {
	id   string
	conn *websocket.Conn
	ctrl *controller.Controller

	afterInit func()
}

func (s *session) run(store *loader.Store) {
	in := make(chan inbound)
	done := make(chan struct{})
	defer close(done)
	go s.readLoop(in, done)

	s.ctrl.Init()
	if s.afterInit != nil {
		s.afterInit()
	}
	if !s.send(serverMessage{Type: TypeInit, SessionID: s.id}.with(s.ctrl.Document().Snapshot())) {
		return
	}

	// Ready may already be closed. Sync is a no-op when Init saw the
	// final state.
	ready := store.Ready()

	for {
		select {
		case <-ready:
			ready = nil
			if s.ctrl.Sync() && !s.sendPatch() {
				return
			}
		case m, ok := <-in:
			if !ok {
				return
			}
			if m.err != nil {
				if !s.sendError(m.err.Error()) {
					return
				}
				continue
			}
			s.ctrl.Sync()
			if !s.apply(m.msg) {
				if !s.sendError("unknown message type: " + m.msg.Type) {
					return
				}
				continue
			}
			if !s.sendPatch() {
				return
			}
		}
	}
}

// apply maps a client message onto the controller. It reports false for
// unknown message types.
func (s *session) apply(m clientMessage) bool {
	switch m.Type {
	case TypeSection:
		s.ctrl.SetSection(m.Value)
	case TypeLanguage:
		s.ctrl.SetLanguage(m.Value)
	case TypeSource:
		s.ctrl.SetSourceFilter(m.Value)
	default:
		return false
	}
	return true
}

// readLoop decodes client messages until the connection closes.
func (s *session) readLoop(in chan<- inbound, done <-chan struct{}) {
	defer close(in)
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("live: session %s read: %v", s.id, err)
			}
			return
		}

		var next inbound
		if err := json.Unmarshal(data, &next.msg); err != nil {
			next.err = errInvalidMessage
		}
		select {
		case in <- next:
		case <-done:
			return
		}
	}
}

func (s *session) sendPatch() bool {
	return s.send(serverMessage{Type: TypePatch, SessionID: s.id}.with(s.ctrl.Document().Flush()))
}

func (s *session) sendError(message string) bool {
	return s.send(serverMessage{Type: TypeError, SessionID: s.id, Message: message})
}

func (s *session) send(msg serverMessage) bool {
	if err := s.conn.WriteJSON(msg); err != nil {
		log.Printf("live: session %s write: %v", s.id, err)
		return false
	}
	return true
}

func (m serverMessage) with(p viewstate.Patch) serverMessage {
	m.Regions = p.Regions
	m.Groups = p.Groups
	return m
}
