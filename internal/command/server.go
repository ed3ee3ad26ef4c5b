// Package command exposes automation operations over a JSON request/response protocol.
package command

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Authorizer decides whether an HTTP request may issue commands.
type Authorizer func(r *http.Request) bool

// Server serves the command protocol over a websocket and a one-shot HTTP endpoint.
type Server struct {
	mu         sync.Mutex
	upgrader   websocket.Upgrader
	dispatcher *Dispatcher
	authorized Authorizer
	log        *zap.Logger
	active     bool
}

// NewServer returns a command server backed by a dispatcher.
func NewServer(d *Dispatcher, authorized Authorizer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		dispatcher: d,
		authorized: authorized,
		log:        logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and answers commands one at a time.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.allowed(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if !s.acquire() {
		http.Error(w, "command connection already active", http.StatusConflict)
		return
	}
	defer s.release()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("command upgrade failed", zap.Error(err))
		return
	}
	defer func() { _ = conn.Close() }()
	s.log.Info("command connection opened", zap.String("remote", r.RemoteAddr))

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			s.log.Info("command connection closed", zap.Error(err))
			return
		}
		resp := s.handlePayload(data)
		if err := conn.WriteJSON(resp); err != nil {
			s.log.Warn("command write failed", zap.Error(err))
			return
		}
	}
}

// HandleHTTP answers a single POSTed command.
func (s *Server) HandleHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !s.allowed(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(badRequestResponse(err))
		return
	}
	_ = json.NewEncoder(w).Encode(s.dispatcher.Handle(req))
}

// handlePayload decodes one websocket message and dispatches it.
func (s *Server) handlePayload(data []byte) Response {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return badRequestResponse(err)
	}
	return s.dispatcher.Handle(req)
}

// badRequestResponse wraps a decode failure as a BadRequest response.
func badRequestResponse(err error) Response {
	return Response{OK: false, Error: &ErrorDetail{Kind: KindBadRequest, Message: err.Error()}}
}

// allowed applies the authorizer.
func (s *Server) allowed(r *http.Request) bool {
	return s.authorized == nil || s.authorized(r)
}

// acquire reserves the single command connection slot.
func (s *Server) acquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return false
	}
	s.active = true
	return true
}

// release frees the command connection slot.
func (s *Server) release() {
	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}
