package store

import (
	"context"
	"sync"
	"time"

	"github.com/pragati-app/pragati-web/internal/uploader"
)

type Session struct {
	ID string

	mu        sync.Mutex
	uploaders map[string]*uploader.Uploader
	flash     *Flash
	lastSeen  time.Time // guarded by Store.mu
}

// WithPanel runs fn against the panel's uploader. Calls on the same session
// are serialised. ok is false for an unknown panel.
func (s *Session) WithPanel(panel string, fn func(u *uploader.Uploader) error) (ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.uploaders[panel]
	if !ok {
		return false, nil
	}
	return true, fn(u)
}

// Selected reports the panel's current selection.
func (s *Session) Selected(panel string) (uploader.File, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.uploaders[panel]; ok {
		return u.Selected()
	}
	return uploader.File{}, false
}

// TakeNotifications returns and clears the pending notifications.
func (s *Session) TakeNotifications() []uploader.Notification {
	return s.flash.take()
}

// Flash queues notifications until the next page render shows them.
type Flash struct {
	mu      sync.Mutex
	pending []uploader.Notification
}

func (f *Flash) Notify(_ context.Context, n uploader.Notification) error {
	f.mu.Lock()
	f.pending = append(f.pending, n)
	f.mu.Unlock()
	return nil
}

func (f *Flash) take() []uploader.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.pending
	f.pending = nil
	return out
}
