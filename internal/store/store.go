// Package store keeps visitor sessions in memory.
//
// A session is the server-side lifetime of one visitor's page: it owns one
// uploader per panel and the notifications waiting to be shown. Nothing is
// written to disk; an idle session is dropped after its TTL.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pragati-app/pragati-web/internal/uploader"
)

type Options struct {
	TTL         time.Duration
	MaxSessions int
	Panels      []string
	Logger      *zap.Logger
	Now         func() time.Time // for tests
}

type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	opts     Options

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// New creates a store and starts its janitor. Call Close to stop it.
func New(opts Options) *Store {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TTL <= 0 {
		opts.TTL = 30 * time.Minute
	}
	s := &Store{
		sessions: make(map[string]*Session),
		opts:     opts,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.janitor()
	return s
}

// Create starts a new session with an empty uploader per panel.
func (s *Store) Create() *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		uploaders: make(map[string]*uploader.Uploader, len(s.opts.Panels)),
		flash:     &Flash{},
		lastSeen:  s.opts.Now(),
	}
	for _, p := range s.opts.Panels {
		sess.uploaders[p] = uploader.New(sess.flash, s.opts.Logger.With(zap.String("panel", p)))
	}

	s.mu.Lock()
	if s.opts.MaxSessions > 0 && len(s.sessions) >= s.opts.MaxSessions {
		s.evictOldestLocked()
	}
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.opts.Logger.Debug("session created", zap.String("session", sess.ID))
	return sess
}

// Get returns a live session and marks it as seen.
func (s *Store) Get(id string) (*Session, bool) {
	now := s.opts.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if now.Sub(sess.lastSeen) > s.opts.TTL {
		delete(s.sessions, id)
		return nil, false
	}
	sess.lastSeen = now
	return sess, true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close stops the janitor. It is safe to call more than once.
func (s *Store) Close() {
	s.once.Do(func() { close(s.stop) })
	<-s.done
}

func (s *Store) janitor() {
	defer close(s.done)
	interval := s.opts.TTL / 2
	if interval < time.Second {
		interval = time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-t.C:
			if n := s.sweep(); n > 0 {
				s.opts.Logger.Debug("expired sessions", zap.Int("count", n))
			}
		}
	}
}

// sweep drops sessions idle for longer than the TTL.
func (s *Store) sweep() int {
	now := s.opts.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.opts.TTL {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func (s *Store) evictOldestLocked() {
	var oldest *Session
	for _, sess := range s.sessions {
		if oldest == nil || sess.lastSeen.Before(oldest.lastSeen) {
			oldest = sess
		}
	}
	if oldest != nil {
		delete(s.sessions, oldest.ID)
		s.opts.Logger.Info("session evicted", zap.String("session", oldest.ID))
	}
}
