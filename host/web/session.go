package web

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/agiangrant/timepicker"
	"github.com/agiangrant/timepicker/anim"
	"github.com/agiangrant/timepicker/internal/logger"
	"github.com/agiangrant/timepicker/render"
)

// frameInterval paces animation frames pushed to clients.
const frameInterval = 16 * time.Millisecond

// clientMessage is what the browser sends. Coordinates are in the dial's
// centered frame.
type clientMessage struct {
	Type   string  `json:"type"` // down, move, up, cancel, resize
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// Frame is what the server pushes after every change.
type Frame struct {
	Session  string                `json:"session"`
	Time     timepicker.PickedTime `json:"time"`
	Display  string                `json:"display"`
	Mode     string                `json:"mode"`
	Step     string                `json:"step"`
	Enabled  bool                  `json:"enabled"`
	Commands []render.Command      `json:"commands"`
}

// Session is one browser connection and the picker it drives. The picker
// is only touched with mu held.
type Session struct {
	ID string

	mu      sync.Mutex
	picker  *timepicker.Picker
	conn    *websocket.Conn
	metrics *Metrics
	source  string // what caused the current time change

	// wake is signalled when the picker's registry goes from idle to
	// animating.
	wake chan struct{}
	done chan struct{}
}

// newSession wraps a picker built on reg. Frames are only pushed on a
// timer while reg has animations in flight.
func newSession(p *timepicker.Picker, reg *anim.Registry, conn *websocket.Conn, m *Metrics) *Session {
	s := &Session{
		ID:      uuid.NewString(),
		picker:  p,
		conn:    conn,
		metrics: m,
		source:  "touch",
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	p.OnTimeChanged(func(timepicker.PickedTime) {
		m.timeChanged(s.source)
	})
	reg.OnActiveChange(func(active bool) {
		if !active {
			return
		}
		select {
		case s.wake <- struct{}{}:
		default:
		}
	})
	return s
}

// frameLocked snapshots the picker. Callers hold mu.
func (s *Session) frameLocked() Frame {
	t := s.picker.Time()
	return Frame{
		Session:  s.ID,
		Time:     t,
		Display:  t.String(),
		Mode:     s.picker.Mode().String(),
		Step:     s.picker.Step().String(),
		Enabled:  s.picker.Enabled(),
		Commands: s.picker.Draw(),
	}
}

// pushLocked writes the current frame to the client. gorilla/websocket
// allows one concurrent writer; holding mu serializes writes. Callers hold mu.
func (s *Session) pushLocked() error {
	s.picker.TakeDirty()
	if s.conn == nil {
		return nil
	}
	f := s.frameLocked()
	s.metrics.frameSent(len(f.Commands))
	return s.conn.WriteJSON(f)
}

// handle applies one client message and pushes the resulting frame.
// Returns false when the message type is unknown.
func (s *Session) handle(msg clientMessage) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg.Type == "resize" {
		s.picker.Resize(msg.Width, msg.Height)
		return true, s.pushLocked()
	}
	t, ok := timepicker.ParseEventType(msg.Type)
	if !ok {
		return false, nil
	}
	s.source = "touch"
	claimed := s.picker.HandleEvent(timepicker.PointerEvent{Type: t, X: msg.X, Y: msg.Y})
	s.metrics.pointerEvent(msg.Type, claimed)
	if !claimed {
		return true, nil
	}
	return true, s.pushLocked()
}

// update runs fn against the picker and pushes a frame if fn succeeded.
func (s *Session) update(fn func(p *timepicker.Picker) error) (timepicker.PickedTime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = "api"
	if err := fn(s.picker); err != nil {
		return s.picker.Time(), err
	}
	return s.picker.Time(), s.pushLocked()
}

// Time returns the session's current value.
func (s *Session) Time() timepicker.PickedTime {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.picker.Time()
}

// animate sleeps until an animation starts, then pushes frames until the
// registry is idle again. Returns when the session ends.
func (s *Session) animate() {
	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}
		s.runFrames()
	}
}

func (s *Session) runFrames() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			if !s.frame(now) {
				return
			}
		}
	}
}

// frame advances the glide to now and pushes the result. It reports
// whether animations are still running.
func (s *Session) frame(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	active := s.picker.Tick(now)
	if err := s.pushLocked(); err != nil {
		logger.Debugf("Animation frame for %s failed: %v", s.ID, err)
	}
	return active
}

func (s *Session) close() {
	close(s.done)
}
