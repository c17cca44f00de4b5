package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/portfolio-walk/engine"
	"github.com/lixenwraith/portfolio-walk/exhibit"
	"github.com/lixenwraith/portfolio-walk/game"
	"github.com/lixenwraith/portfolio-walk/status"
)

// Metric keys published by the server
const (
	MetricSessionsActive   = "network.sessions.active"
	MetricSessionsTotal    = "network.sessions.total"
	MetricSessionsRejected = "network.sessions.rejected"
	MetricMessagesReceived = "network.messages.received"
	MetricMessagesDropped  = "network.messages.dropped"
)

// Server hands every websocket connection its own world
type Server struct {
	cfg      *Config
	registry *exhibit.Registry
	opts     game.Options
	log      zerolog.Logger
	time     engine.TimeProvider
	upgrader websocket.Upgrader

	status   *status.Registry
	active   *atomic.Int64
	total    *atomic.Int64
	rejected *atomic.Int64
	received *atomic.Int64
	dropped  *atomic.Int64

	nextID atomic.Uint64
	ctx    context.Context
	cancel context.CancelFunc

	// mu orders wg.Add against Close's wg.Wait
	mu      sync.Mutex
	closing bool
	wg      sync.WaitGroup
}

// NewServer creates a server; opts is the template for every session's world
func NewServer(cfg *Config, registry *exhibit.Registry, opts game.Options, log zerolog.Logger) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	reg := status.NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:      cfg,
		registry: registry,
		opts:     opts,
		log:      log,
		time:     engine.NewMonotonicTimeProvider(),
		status:   reg,
		active:   reg.Ints.Get(MetricSessionsActive),
		total:    reg.Ints.Get(MetricSessionsTotal),
		rejected: reg.Ints.Get(MetricSessionsRejected),
		received: reg.Ints.Get(MetricMessagesReceived),
		dropped:  reg.Ints.Get(MetricMessagesDropped),
		ctx:      ctx,
		cancel:   cancel,
	}
	s.upgrader = websocket.Upgrader{
		HandshakeTimeout: cfg.HandshakeTimeout,
		ReadBufferSize:   cfg.ReadBufferSize,
		WriteBufferSize:  cfg.WriteBufferSize,
		CheckOrigin:      s.checkOrigin,
	}
	return s
}

// Status returns the server counters
func (s *Server) Status() *status.Registry {
	return s.status
}

// Handler routes the websocket endpoint and the status endpoint
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.cfg.Path, s.serveSession)
	if s.cfg.StatusPath != "" {
		mux.HandleFunc(s.cfg.StatusPath, s.serveStatus)
	}
	return mux
}

// ListenAndServe serves until ctx is done, then ends every session
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.HandshakeTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info().Str("addr", s.cfg.Address).Str("path", s.cfg.Path).Msg("websocket server listening")
	err := srv.ListenAndServe()
	s.Close()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve %s: %w", s.cfg.Address, err)
	}
	return nil
}

// Close ends every session and waits for them; hijacked connections outlive http.Server.Shutdown
func (s *Server) Close() {
	s.mu.Lock()
	s.closing = true
	s.mu.Unlock()
	s.cancel()
	s.wg.Wait()
}

// track registers a session with Close, false once the server is closing
func (s *Server) track() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return false
	}
	s.wg.Add(1)
	return true
}

func (s *Server) checkOrigin(r *http.Request) bool {
	if len(s.cfg.AllowedOrigins) == 0 {
		return true
	}
	return slices.Contains(s.cfg.AllowedOrigins, r.Header.Get("Origin"))
}

func (s *Server) serveStatus(rw http.ResponseWriter, _ *http.Request) {
	rw.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(rw).Encode(s.status.Snapshot())
}

func (s *Server) serveSession(rw http.ResponseWriter, r *http.Request) {
	if !s.track() {
		http.Error(rw, "server closing", http.StatusServiceUnavailable)
		return
	}
	defer s.wg.Done()

	n := s.active.Add(1)
	defer s.active.Add(-1)
	if limit := s.cfg.MaxSessions; limit > 0 && n > int64(limit) {
		s.rejected.Add(1)
		http.Error(rw, "too many sessions", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		// Upgrade already replied
		return
	}
	defer conn.Close()

	id := s.nextID.Add(1)
	s.total.Add(1)
	log := s.log.With().Uint64("session", id).Str("remote", r.RemoteAddr).Logger()

	opts := s.opts
	opts.Logger = log
	// Sessions never share mutable state
	opts.Status = nil
	opts.Rand = nil
	g := game.New(s.registry, opts)
	defer g.Close()

	sess := &session{
		id:        id,
		conn:      conn,
		game:      g,
		cfg:       s.cfg,
		clock:     engine.NewFrameClock(s.time, s.cfg.MaxFrameDelta),
		inbox:     make(chan ClientMessage, s.cfg.InboxSize),
		log:       log,
		onReceive: func() { s.received.Add(1) },
		onDrop:    func() { s.dropped.Add(1) },
	}

	welcome := Welcome{
		Type:      TypeWelcome,
		Session:   id,
		Threshold: opts.ProximityThreshold,
		Bound:     opts.Character.Bound,
		Exhibits:  s.registry.All(),
	}
	if err := sess.write(welcome); err != nil {
		log.Debug().Err(err).Msg("welcome failed")
		return
	}

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	g.Start()
	log.Info().Msg("session opened")

	go sess.readLoop(ctx, cancel)
	if err := sess.run(ctx); err != nil {
		log.Debug().Err(err).Msg("session ended on write")
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
	log.Info().Uint64("frames", g.Frames()).Msg("session closed")
}
