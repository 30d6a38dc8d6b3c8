// Package web serves the dial to browsers. Each websocket connection gets
// its own picker; the page sends pointer events and paints the display
// lists the server pushes back. A small REST API reads and sets a
// session's time.
package web

import (
	"context"
	"embed"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/agiangrant/timepicker"
	"github.com/agiangrant/timepicker/anim"
	"github.com/agiangrant/timepicker/config"
	"github.com/agiangrant/timepicker/internal/logger"
)

//go:embed static
var staticFiles embed.FS

// Standard error messages
const (
	ErrMsgInvalidRequest  = "Invalid request"
	ErrMsgSessionNotFound = "Session not found"
	ErrMsgInternalError   = "Internal server error"
	ErrMsgUnknownFormat   = "format must be 12h or 24h"
)

// Server hosts dial sessions over HTTP.
type Server struct {
	cfg      config.File
	router   *gin.Engine
	upgrader websocket.Upgrader
	metrics  *Metrics

	// Format used when the config leaves it unset.
	default24Hour bool

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewServer builds the router. The config is validated up front so session
// creation cannot fail later.
func NewServer(cfg config.File, default24Hour bool) (*Server, error) {
	if _, err := cfg.PickerOptions(default24Hour); err != nil {
		return nil, err
	}
	s := &Server{
		cfg:           cfg,
		metrics:       NewMetrics(),
		default24Hour: default24Hour,
		sessions:      make(map[string]*Session),
	}
	s.upgrader = websocket.Upgrader{CheckOrigin: s.checkOrigin}
	s.setupRoutes()
	return s, nil
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Metrics returns the server's metrics.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Web dial listening on http://%s", s.cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Infof("Shutting down web dial")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) setupRoutes() {
	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Errorf("Panic recovered: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": ErrMsgInternalError})
	}))
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debugf("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	})

	index, _ := staticFiles.ReadFile("static/index.html")
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	r.GET("/ws", s.handleWebSocket)

	api := r.Group("/api")
	{
		api.GET("/sessions", s.handleListSessions)
		api.GET("/sessions/:id/time", s.handleGetTime)
		api.PUT("/sessions/:id/time", s.handleSetTime)
		api.PUT("/sessions/:id/format", s.handleSetFormat)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	s.router = r
}

// checkOrigin allows configured origins, or same-host requests when none
// are configured.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	allowed := s.cfg.Server.AllowedOrigins
	if len(allowed) == 0 {
		u, err := url.Parse(origin)
		return err == nil && u.Host == r.Host
	}
	for _, o := range allowed {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

// Reload swaps in a new config. New sessions use it in full; live sessions
// only pick up its appearance so nobody's pointer moves.
func (s *Server) Reload(cfg config.File) error {
	if _, err := cfg.PickerOptions(s.default24Hour); err != nil {
		return err
	}
	s.mu.Lock()
	s.cfg.Picker = cfg.Picker
	live := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		live = append(live, sess)
	}
	s.mu.Unlock()

	for _, sess := range live {
		if _, err := sess.update(func(p *timepicker.Picker) error { return cfg.ApplyStyle(p) }); err != nil {
			logger.Debugf("Restyle of session %s failed: %v", sess.ID, err)
		}
	}
	return nil
}

// ============================================================================
// Sessions
// ============================================================================

func (s *Server) newPicker(extra ...timepicker.Option) *timepicker.Picker {
	s.mu.Lock()
	cfg := s.cfg
	s.mu.Unlock()
	opts, _ := cfg.PickerOptions(s.default24Hour) // validated on the way in
	return timepicker.New(append(opts, extra...)...)
}

func (s *Server) register(sess *Session) {
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	s.metrics.sessionOpened()
	logger.Infof("Dial session %s opened", sess.ID)
}

func (s *Server) unregister(sess *Session) {
	s.mu.Lock()
	delete(s.sessions, sess.ID)
	s.mu.Unlock()
	s.metrics.sessionClosed()
	logger.Infof("Dial session %s closed", sess.ID)
}

func (s *Server) session(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// SessionCount returns the number of connected sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Errorf("Failed to upgrade to WebSocket: %v", err)
		return
	}
	defer conn.Close()

	reg := anim.NewRegistry(nil)
	sess := newSession(s.newPicker(timepicker.WithRegistry(reg)), reg, conn, s.metrics)
	s.register(sess)
	defer s.unregister(sess)
	defer sess.close()

	sess.mu.Lock()
	err = sess.pushLocked()
	sess.mu.Unlock()
	if err != nil {
		logger.Debugf("Initial frame for %s failed: %v", sess.ID, err)
		return
	}

	go sess.animate()

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				logger.Debugf("Session %s read failed: %v", sess.ID, err)
			}
			return
		}
		known, err := sess.handle(msg)
		if !known {
			s.metrics.rejectedInput("bad_message")
			logger.Warnf("Session %s sent unknown message type %q", sess.ID, msg.Type)
			continue
		}
		if err != nil {
			logger.Debugf("Session %s write failed: %v", sess.ID, err)
			return
		}
	}
}

// ============================================================================
// REST handlers
// ============================================================================

type setTimeRequest struct {
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	Format string `json:"format"` // "24h" (default) or "12h"
	IsAm   bool   `json:"is_am"`
}

type setFormatRequest struct {
	Is24Hour bool `json:"is_24_hour"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.SessionCount()})
}

func (s *Server) handleListSessions(c *gin.Context) {
	s.mu.Lock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"sessions": ids})
}

func (s *Server) lookup(c *gin.Context) (*Session, bool) {
	sess, ok := s.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrMsgSessionNotFound})
	}
	return sess, ok
}

func (s *Server) handleGetTime(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess.Time())
}

func (s *Server) handleSetTime(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	var req setTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.metrics.rejectedInput("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrMsgInvalidRequest})
		return
	}

	var set func(p *timepicker.Picker) error
	switch req.Format {
	case "", "24h":
		set = func(p *timepicker.Picker) error { return p.SetTime(req.Hour, req.Minute) }
	case "12h":
		set = func(p *timepicker.Picker) error { return p.SetTime12(req.Hour, req.Minute, req.IsAm) }
	default:
		s.metrics.rejectedInput("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrMsgUnknownFormat})
		return
	}

	t, err := sess.update(set)
	s.respondUpdate(c, t, err)
}

func (s *Server) handleSetFormat(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	var req setFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.metrics.rejectedInput("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrMsgInvalidRequest})
		return
	}
	t, err := sess.update(func(p *timepicker.Picker) error {
		p.SetIs24Hour(req.Is24Hour)
		return nil
	})
	s.respondUpdate(c, t, err)
}

// respondUpdate maps range errors to 400. A failed push to the websocket
// is not the API caller's problem: the value was still committed.
func (s *Server) respondUpdate(c *gin.Context, t timepicker.PickedTime, err error) {
	if errors.Is(err, timepicker.ErrOutOfRange) {
		s.metrics.rejectedInput("out_of_range")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		logger.Debugf("Frame push after API update failed: %v", err)
	}
	c.JSON(http.StatusOK, t)
}
