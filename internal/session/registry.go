package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"avatarhub/internal/dashboard"
	"avatarhub/internal/logger"
	"avatarhub/internal/model"
)

// Defaults applied by NewRegistry to zero Options fields.
const (
	DefaultMaxSessions   = 10000
	DefaultSweepInterval = time.Minute
)

// Session is one visitor's dashboard. Events for a session are applied one at
// a time, each running to completion before the next.
type Session struct {
	ID string

	mu        sync.Mutex
	dashboard *dashboard.Dashboard
	lastSeen  time.Time

	imagesMu sync.Mutex
	images   []model.ImageRef
}

// Do runs fn with exclusive access to the session's dashboard.
func (s *Session) Do(fn func(d *dashboard.Dashboard) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.dashboard)
}

// TrackImage records an image uploaded in this session. Tracked images are
// handed to Options.OnExpire when the session ends. Safe to call inside Do.
func (s *Session) TrackImage(ref model.ImageRef) {
	if ref.IsZero() {
		return
	}
	s.imagesMu.Lock()
	defer s.imagesMu.Unlock()
	s.images = append(s.images, ref)
}

// Images returns the images uploaded in this session.
func (s *Session) Images() []model.ImageRef {
	s.imagesMu.Lock()
	defer s.imagesMu.Unlock()
	out := make([]model.ImageRef, len(s.images))
	copy(out, s.images)
	return out
}

// Factory builds the dashboard a new session starts with.
type Factory func() *dashboard.Dashboard

// Options tune a Registry.
type Options struct {
	// TTL is how long a session may stay idle. Zero keeps sessions forever.
	TTL time.Duration
	// MaxSessions caps live sessions; the least recently seen one is evicted
	// to make room.
	MaxSessions int
	// SweepInterval is the minimum time between full expiry sweeps.
	SweepInterval time.Duration
	// OnExpire runs for every expired or evicted session, outside the
	// registry lock.
	OnExpire func(s *Session)
	// Now overrides the clock.
	Now func() time.Time
}

// Registry holds live sessions in memory. Idle sessions are dropped lazily:
// on lookup of the session itself, or by a full sweep at most once per
// SweepInterval.
type Registry struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	factory   Factory
	opts      Options
	lastSweep time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry(factory Factory, opts Options) *Registry {
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = DefaultSweepInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Registry{
		sessions:  make(map[string]*Session),
		factory:   factory,
		opts:      opts,
		lastSweep: opts.Now(),
	}
}

// Get returns the live session with id.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	now := r.opts.Now()
	ended := r.maybeSweepLocked(now)

	s, ok := r.sessions[id]
	if ok && r.expired(s, now) {
		delete(r.sessions, id)
		ended = append(ended, s)
		s, ok = nil, false
	}
	if ok {
		s.lastSeen = now
	}
	r.mu.Unlock()

	r.release(ended)
	return s, ok
}

// Create starts a new session seeded by the factory. At capacity the least
// recently seen session is evicted first.
func (r *Registry) Create() *Session {
	r.mu.Lock()
	now := r.opts.Now()
	ended := r.maybeSweepLocked(now)
	if len(r.sessions) >= r.opts.MaxSessions {
		ended = append(ended, r.sweepLocked(now)...)
	}
	if len(r.sessions) >= r.opts.MaxSessions {
		if victim := r.oldestLocked(); victim != nil {
			delete(r.sessions, victim.ID)
			ended = append(ended, victim)
			logger.Warn().Str("session_id", victim.ID).Int("max_sessions", r.opts.MaxSessions).Msg("session evicted")
		}
	}

	s := &Session{
		ID:        uuid.NewString(),
		dashboard: r.factory(),
		lastSeen:  now,
	}
	r.sessions[s.ID] = s
	r.mu.Unlock()

	r.release(ended)
	logger.Debug().Str("session_id", s.ID).Msg("session started")
	return s
}

// Len returns the number of live sessions after a full sweep. Used by tests.
func (r *Registry) Len() int {
	r.mu.Lock()
	ended := r.sweepLocked(r.opts.Now())
	n := len(r.sessions)
	r.mu.Unlock()

	r.release(ended)
	return n
}

func (r *Registry) expired(s *Session, now time.Time) bool {
	return r.opts.TTL > 0 && s.lastSeen.Before(now.Add(-r.opts.TTL))
}

func (r *Registry) maybeSweepLocked(now time.Time) []*Session {
	if now.Sub(r.lastSweep) < r.opts.SweepInterval {
		return nil
	}
	return r.sweepLocked(now)
}

func (r *Registry) sweepLocked(now time.Time) []*Session {
	r.lastSweep = now
	if r.opts.TTL <= 0 {
		return nil
	}
	var ended []*Session
	for id, s := range r.sessions {
		if r.expired(s, now) {
			delete(r.sessions, id)
			ended = append(ended, s)
			logger.Debug().Str("session_id", id).Msg("session expired")
		}
	}
	return ended
}

func (r *Registry) oldestLocked() *Session {
	var oldest *Session
	for _, s := range r.sessions {
		if oldest == nil || s.lastSeen.Before(oldest.lastSeen) {
			oldest = s
		}
	}
	return oldest
}

func (r *Registry) release(ended []*Session) {
	if r.opts.OnExpire == nil {
		return
	}
	for _, s := range ended {
		r.opts.OnExpire(s)
	}
}
