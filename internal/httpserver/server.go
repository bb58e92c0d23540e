// internal/httpserver/server.go
//
// HTTP server wiring for the angle game.
// Responsibilities:
//   - Router + middleware (CORS, timeouts, panic recovery, request IDs, request logs).
//   - Public endpoints: "/" (the game page), "/health", "/static/*".
//   - Game endpoints under /game: new, commit, state, rounds.
//   - Session lifecycle: one session per cookie, bound to the calendar day it
//     was started on; restored from the store by replaying its guesses.
//
// Notes:
//   - The server is the UI host of each session: a uihost.Fields mirrors the
//     page and every response carries its snapshot for the browser to apply.
//   - Requests are serialized by a single mutex, so a session never sees two
//     commits at once.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/irevoire/angle/assets"
	"github.com/irevoire/angle/internal/config"
	"github.com/irevoire/angle/internal/daily"
	"github.com/irevoire/angle/internal/game"
	"github.com/irevoire/angle/internal/store"
	"github.com/irevoire/angle/internal/uihost"
)

// Server bundles router, session store and configuration.
type Server struct {
	r     *chi.Mux
	store store.Store
	cfg   config.Config
	clock daily.Clock
	mu    sync.Mutex // serializes session mutations
}

// New constructs a Server, installs middleware, and registers routes.
// A nil clock means the wall clock.
func New(st store.Store, cfg config.Config, clock daily.Clock) *Server {
	if clock == nil {
		clock = daily.RealClock{}
	}
	s := &Server{r: chi.NewRouter(), store: st, cfg: cfg, clock: clock}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // zerolog access log
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(cors(cfg.ClientOrigin))          // credentials-friendly CORS

	// --- page + diagnostics ---
	s.r.Get("/", s.handlePage)
	s.r.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(assets.Static()))))
	s.r.With(jsonContentType).Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// --- game ---
	s.r.Route("/game", func(r chi.Router) {
		r.Use(jsonContentType)
		r.Post("/new", s.handleNew)
		r.Post("/commit", s.handleCommit)
		r.Get("/state", s.handleState)
		r.Get("/rounds", s.handleRounds)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ sessions -----------------------------------

// play is a live session: the stored record plus the controller and host
// rebuilt from it.
type play struct {
	rec  *store.Record
	host *uihost.Fields
	ctrl *game.Controller
}

// restore regenerates the rounds of rec's day and replays its guesses.
func restore(rec *store.Record) (*play, error) {
	date, err := daily.ParseDateKey(rec.Date)
	if err != nil {
		return nil, err
	}
	host := uihost.NewGamePage()
	ctrl, err := game.NewController(date, host)
	if err != nil {
		return nil, err
	}
	for i, g := range rec.Guesses {
		id := game.GuessField(i)
		if err := host.SetValue(id, strconv.Itoa(g)); err != nil {
			return nil, fmt.Errorf("replay %s of %s: %w", id, rec.ID, err)
		}
		if err := host.Commit(id); err != nil {
			return nil, fmt.Errorf("replay %s of %s: %w", id, rec.ID, err)
		}
	}
	return &play{rec: rec, host: host, ctrl: ctrl}, nil
}

func (s *Server) today() string {
	return daily.DateKey(daily.Today(s.clock, s.cfg.Location))
}

// existing loads the caller's session, or errNoSession.
func (s *Server) existing(r *http.Request) (*play, error) {
	sid, err := s.sessionID(r)
	if err != nil {
		return nil, err
	}
	rec, err := s.store.Get(r.Context(), sid)
	if errors.Is(err, store.ErrNotFound) {
		return nil, errNoSession
	}
	if err != nil {
		return nil, err
	}
	return restore(rec)
}

// current loads the caller's session for today, or starts a new one.
func (s *Server) current(w http.ResponseWriter, r *http.Request) (*play, error) {
	p, err := s.existing(r)
	switch {
	case err == nil && p.rec.Date == s.today():
		return p, nil
	case err == nil, errors.Is(err, errNoSession):
		return s.start(w, r)
	default:
		return nil, err
	}
}

// start creates a fresh session for today, replacing the caller's previous one.
func (s *Server) start(w http.ResponseWriter, r *http.Request) (*play, error) {
	ctx := r.Context()
	rec := store.NewRecord(s.today(), s.clock.Now())
	if err := s.store.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	if err := s.setSessionCookie(w, rec.ID); err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}
	if prev, err := s.sessionID(r); err == nil && prev != rec.ID {
		if err := s.store.Delete(ctx, prev); err != nil {
			log.Warn().Err(err).Str("session", prev).Msg("drop previous session")
		}
	}
	log.Info().Str("session", rec.ID).Str("date", rec.Date).Msg("session started")
	return restore(rec)
}

func (s *Server) save(ctx context.Context, p *play) error {
	p.rec.Guesses = p.ctrl.Guesses()
	p.rec.UpdatedAt = s.clock.Now().UTC()
	return s.store.Save(ctx, p.rec)
}

// ------------------------------ handlers -----------------------------------

// stateRes is the UI snapshot plus game progress, returned by every /game call.
type stateRes struct {
	Error     string            `json:"error,omitempty"`
	Date      string            `json:"date"`
	State     string            `json:"state"`
	Completed int               `json:"completed"`
	Entries   []game.ScoreEntry `json:"entries"`
	Result    *game.GameResult  `json:"result,omitempty"`
	uihost.Snapshot
}

func (p *play) state() stateRes {
	res := stateRes{
		Date:      p.rec.Date,
		State:     p.ctrl.State().String(),
		Completed: p.ctrl.Completed(),
		Entries:   p.ctrl.Entries(),
		Snapshot:  p.host.Snapshot(),
	}
	if gr, ok := p.ctrl.Result(); ok {
		res.Result = &gr
	}
	return res
}

// handlePage renders the game page for the caller's session of today.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	p, err := s.current(w, r)
	s.mu.Unlock()
	if err != nil {
		log.Error().Err(err).Msg("load session")
		http.Error(w, "failed to load game", http.StatusInternalServerError)
		return
	}
	render(w, r, pageView(p, s.cfg.Palette))
}

// handleNew starts a fresh session for today, discarding the previous one.
func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.start(w, r)
	if err != nil {
		log.Error().Err(err).Msg("start session")
		writeError(w, http.StatusInternalServerError, "start_failed")
		return
	}
	writeJSON(w, http.StatusOK, p.state())
}

// commitReq is the payload of POST /game/commit.
type commitReq struct {
	Field string `json:"field"` // guess1..guess3
	Value string `json:"value"` // raw input text
}

// handleCommit types the value into the field and fires its confirm action.
//   - accepted guess         → 200 with the new snapshot, session saved
//   - locked/future round    → 200 with the unchanged snapshot (no-op)
//   - malformed guess        → 400 invalid_guess, round left open
func (s *Server) handleCommit(w http.ResponseWriter, r *http.Request) {
	var req commitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if _, ok := game.GuessRound(req.Field); !ok {
		writeError(w, http.StatusBadRequest, "unknown_field")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.existing(r)
	if errors.Is(err, errNoSession) {
		writeError(w, http.StatusConflict, "no_session")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("load session")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}

	err = p.host.SetValue(req.Field, req.Value)
	if err == nil {
		err = p.host.Commit(req.Field)
	}
	switch {
	case err == nil:
		if err := s.save(r.Context(), p); err != nil {
			log.Error().Err(err).Str("session", p.rec.ID).Msg("save session")
			writeError(w, http.StatusInternalServerError, "save_failed")
			return
		}
	case errors.Is(err, game.ErrOutOfSequence):
		log.Debug().Err(err).Str("session", p.rec.ID).Str("field", req.Field).Msg("commit ignored")
	case errors.Is(err, game.ErrInvalidGuess):
		res := p.state()
		res.Error = "invalid_guess"
		writeJSON(w, http.StatusBadRequest, res)
		return
	default:
		log.Error().Err(err).Str("session", p.rec.ID).Str("field", req.Field).Msg("commit failed")
		writeError(w, http.StatusInternalServerError, "host_error")
		return
	}
	writeJSON(w, http.StatusOK, p.state())
}

// handleState returns the caller's current snapshot.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.existing(r)
	if errors.Is(err, errNoSession) {
		writeError(w, http.StatusConflict, "no_session")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("load session")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}
	writeJSON(w, http.StatusOK, p.state())
}

// handleRounds returns the drawing descriptions of the caller's rounds.
func (s *Server) handleRounds(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.existing(r)
	if errors.Is(err, errNoSession) {
		writeError(w, http.StatusConflict, "no_session")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("load session")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return
	}
	rounds := p.ctrl.Rounds()
	out := make([]game.Drawing, 0, len(rounds))
	for _, rd := range rounds {
		out = append(out, rd.Drawing(s.cfg.Palette))
	}
	writeJSON(w, http.StatusOK, out)
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	writeJSON(w, status, map[string]string{"error": code})
}
