// internal/httpserver/server.go
//
// HTTP server wiring for the quiz backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/check, GET /game/score.
//   - Teacher panel endpoints: mounted under /teacher (see routes_teacher.go).
//   - In-memory map of active game sessions keyed by session ID.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled so the browser client
//     can call with cookies if it wants to.
//   - The teacher routes carry no authentication: the panel is a visibility
//     toggle in the client, not an access-control boundary.

package httpserver

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/nadiamel/huroof/apps/go-server/internal/dictionary"
	"github.com/nadiamel/huroof/apps/go-server/internal/session"
	"github.com/nadiamel/huroof/apps/go-server/internal/store"
)

// Server bundles router, shared dictionary, blob store, and live sessions.
type Server struct {
	r    *chi.Mux
	dict *dictionary.Dictionary
	blob store.Blob

	enforceFormat bool // gate the check flow on word format?

	mu    sync.Mutex               // guards games
	games map[string]*session.Game // active sessions keyed by Game.ID
}

// New constructs a Server, installs middleware, and registers routes.
// blob may be nil for memory-only runs.
func New(dict *dictionary.Dictionary, blob store.Blob, enforceFormat bool) *Server {
	s := &Server{
		r:             chi.NewRouter(),
		dict:          dict,
		blob:          blob,
		enforceFormat: enforceFormat,
		games:         make(map[string]*session.Game),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"huroof-go","endpoints":["/health","POST /game/new","POST /game/check","/teacher/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Game endpoints
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/check", s.handleCheck)
	s.r.Get("/game/score", s.handleScore)

	// Teacher panel (add/export/import)
	s.mountTeacher(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	// Debug: dictionary size
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": s.dict.Len()})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameRes is the payload for POST /game/new.
type newGameRes struct {
	GameID string `json:"gameId"`
}

// handleNewGame creates a new session with a fresh score over the shared
// dictionary and registers it in the session map.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g := session.NewGame(s.dict, s.enforceFormat)
	s.mu.Lock()
	s.games[g.ID] = g
	s.mu.Unlock()
	_ = json.NewEncoder(w).Encode(newGameRes{GameID: g.ID})
}

// checkReq is the payload for POST /game/check.
type checkReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}

// handleCheck runs one word check against the caller's session.
// The response body is the session.Result verbatim (outcome/message/score).
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	g, ok := s.lookupGame(req.GameID)
	if !ok {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	res := g.CheckWord(req.Word)
	_ = json.NewEncoder(w).Encode(res)
}

// handleScore reports the running score for ?gameId=.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	g, ok := s.lookupGame(r.URL.Query().Get("gameId"))
	if !ok {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]int{"score": g.Score()})
}

// lookupGame fetches a live session by ID.
func (s *Server) lookupGame(id string) (*session.Game, bool) {
	if id == "" {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	return g, ok
}
