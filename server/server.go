package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lazharichir/blackjack/config"
	"github.com/lazharichir/blackjack/game"
	"github.com/lazharichir/blackjack/server/connection"
	"github.com/lazharichir/blackjack/server/dispatch"
	"github.com/lazharichir/blackjack/server/handlers"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // In production, implement proper origin checks
	},
}

// Session is one table and the clients watching it. Commands funnel
// through a single channel so the table only ever mutates in its session
// goroutine.
type Session struct {
	ID       string
	table    *game.Table
	dispatch *dispatch.Dispatcher
	commands chan game.Command
}

func (s *Session) run() {
	for cmd := range s.commands {
		s.table.HandleCommand(cmd)
		s.dispatch.SendSnapshot(s.table.View())
	}
}

// Server hosts blackjack table sessions over HTTP and websockets
type Server struct {
	rules    config.Rules
	seed     int64
	debug    bool
	logger   *log.Logger
	connMgr  *connection.Manager
	sessions map[string]*Session
	mutex    sync.RWMutex
}

// SessionResponse represents a session in API responses
type SessionResponse struct {
	ID       string     `json:"id"`
	State    game.State `json:"state"`
	Clients  int        `json:"clients"`
	MinBet   float64    `json:"minBet"`
	Bankroll float64    `json:"bankroll"`
}

// Options configures a server
type Options struct {
	Rules  config.Rules
	Seed   int64
	Debug  bool
	Logger *log.Logger
}

// NewServer creates a new blackjack server
func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Server{
		rules:    opts.Rules,
		seed:     opts.Seed,
		debug:    opts.Debug,
		logger:   logger.WithPrefix("server"),
		connMgr:  connection.NewManager(),
		sessions: make(map[string]*Session),
	}
}

// Start begins the server on the specified address, blocking until the
// listener fails
func (s *Server) Start(addr string) error {
	go s.connMgr.Start()

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	router.Get("/health", s.handleHealth)
	router.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Get("/", s.handleListSessions)
	})
	router.Get("/ws", s.handleWebSocket)

	s.logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, router)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// createSession builds a session and starts its goroutine
func (s *Server) createSession() *Session {
	id := uuid.NewString()

	table := game.NewTable(id, s.rules, s.seed)
	dispatcher := dispatch.NewDispatcher(s.connMgr, id, s.logger.WithPrefix("dispatch"), s.debug)
	table.OnEvent(dispatcher.HandleEvent)

	session := &Session{
		ID:       id,
		table:    table,
		dispatch: dispatcher,
		commands: make(chan game.Command, 16),
	}

	s.mutex.Lock()
	s.sessions[id] = session
	s.mutex.Unlock()

	go session.run()

	s.logger.Info("session created", "session", id)
	return session
}

func (s *Server) session(id string) *Session {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.sessions[id]
}

func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	session := s.createSession()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(s.sessionResponse(session))
}

func (s *Server) handleListSessions(w http.ResponseWriter, _ *http.Request) {
	s.mutex.RLock()
	responses := make([]SessionResponse, 0, len(s.sessions))
	for _, session := range s.sessions {
		responses = append(responses, s.sessionResponse(session))
	}
	s.mutex.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responses)
}

func (s *Server) sessionResponse(session *Session) SessionResponse {
	view := session.table.View()
	return SessionResponse{
		ID:       session.ID,
		State:    view.State,
		Clients:  s.connMgr.SessionClientCount(session.ID),
		MinBet:   view.MinBet,
		Bankroll: view.Bankroll,
	}
}

// handleWebSocket upgrades the connection and attaches the client to the
// requested session
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	session := s.session(sessionID)
	if session == nil {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade", "err", err)
		return
	}

	client := &connection.Client{
		ID:        uuid.NewString(),
		Conn:      conn,
		Send:      make(chan []byte, 256),
		SessionID: session.ID,
	}
	s.connMgr.Register <- client
	s.logger.Info("client connected", "client", client.ID, "session", session.ID, "remote", r.RemoteAddr)

	go s.readPump(client, session)
	go s.writePump(client)

	session.dispatch.SendSnapshotTo(client.ID, session.table.View())
}

// readPump reads client messages and feeds parsed commands into the
// session
func (s *Server) readPump(client *connection.Client, session *Session) {
	defer func() {
		s.connMgr.Unregister <- client
		client.Conn.Close()
	}()

	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Error("websocket read", "client", client.ID, "err", err)
			}
			return
		}

		cmd, err := handlers.ParseCommand(message)
		if err != nil {
			s.logger.Warn("bad command", "client", client.ID, "err", err)
			continue
		}
		session.commands <- cmd
	}
}

// writePump sends queued messages to the client connection
func (s *Server) writePump(client *connection.Client) {
	defer client.Conn.Close()

	for {
		message, ok := <-client.Send
		if !ok {
			client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
		if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			s.logger.Error("websocket write", "client", client.ID, "err", err)
			return
		}
	}
}
