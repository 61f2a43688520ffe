package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/pragati-app/pragati-web/internal/uploader"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestStore(t *testing.T, opts Options) (*Store, *clock) {
	t.Helper()
	c := &clock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	opts.Now = c.Now
	if opts.Panels == nil {
		opts.Panels = []string{"task1", "task2"}
	}
	s := New(opts)
	t.Cleanup(s.Close)
	return s, c
}

func selectFile(t *testing.T, sess *Session, panel, name string) {
	t.Helper()
	ok, err := sess.WithPanel(panel, func(u *uploader.Uploader) error {
		u.Select(uploader.File{Name: name})
		return nil
	})
	require.True(t, ok)
	require.NoError(t, err)
}

func TestCreateAndGet(t *testing.T) {
	s, _ := newTestStore(t, Options{TTL: time.Minute})

	sess := s.Create()
	require.NotEmpty(t, sess.ID)

	got, ok := s.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = s.Get("unknown")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestSessionsAreIsolated(t *testing.T) {
	s, _ := newTestStore(t, Options{TTL: time.Minute})
	a, b := s.Create(), s.Create()
	require.NotEqual(t, a.ID, b.ID)

	selectFile(t, a, "task1", "a.pdf")

	_, ok := b.Selected("task1")
	assert.False(t, ok)
	f, ok := a.Selected("task1")
	require.True(t, ok)
	assert.Equal(t, "a.pdf", f.Name)
}

func TestPanelsAreIsolated(t *testing.T) {
	s, _ := newTestStore(t, Options{TTL: time.Minute})
	sess := s.Create()

	selectFile(t, sess, "task1", "a.pdf")
	_, ok := sess.Selected("task2")
	assert.False(t, ok)

	selectFile(t, sess, "task2", "b.pdf")
	f, _ := sess.Selected("task1")
	assert.Equal(t, "a.pdf", f.Name)
}

func TestWithPanelUnknown(t *testing.T) {
	s, _ := newTestStore(t, Options{TTL: time.Minute})
	sess := s.Create()

	called := false
	ok, err := sess.WithPanel("task9", func(*uploader.Uploader) error { called = true; return nil })
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.False(t, called)

	_, ok = sess.Selected("task9")
	assert.False(t, ok)
}

func TestSubmitQueuesNotification(t *testing.T) {
	s, _ := newTestStore(t, Options{TTL: time.Minute})
	sess := s.Create()

	_, err := sess.WithPanel("task1", func(u *uploader.Uploader) error {
		_, err := u.Submit(context.Background())
		return err
	})
	require.NoError(t, err)

	got := sess.TakeNotifications()
	require.Len(t, got, 1)
	assert.Equal(t, uploader.KindNoSelection, got[0].Kind)
	assert.Empty(t, sess.TakeNotifications())
}

func TestGetExpiresIdleSession(t *testing.T) {
	s, c := newTestStore(t, Options{TTL: time.Minute})
	sess := s.Create()

	c.Advance(30 * time.Second)
	_, ok := s.Get(sess.ID)
	require.True(t, ok)

	c.Advance(50 * time.Second)
	_, ok = s.Get(sess.ID)
	require.True(t, ok, "access refreshes the idle timer")

	c.Advance(61 * time.Second)
	_, ok = s.Get(sess.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestSweep(t *testing.T) {
	s, c := newTestStore(t, Options{TTL: time.Minute})
	old := s.Create()
	c.Advance(45 * time.Second)
	fresh := s.Create()
	c.Advance(30 * time.Second)

	assert.Equal(t, 1, s.sweep())
	_, ok := s.Get(old.ID)
	assert.False(t, ok)
	_, ok = s.Get(fresh.ID)
	assert.True(t, ok)
}

func TestMaxSessionsEvictsOldest(t *testing.T) {
	s, c := newTestStore(t, Options{TTL: time.Hour, MaxSessions: 2})
	first := s.Create()
	c.Advance(time.Second)
	second := s.Create()
	c.Advance(time.Second)
	third := s.Create()

	assert.Equal(t, 2, s.Len())
	_, ok := s.Get(first.ID)
	assert.False(t, ok)
	_, ok = s.Get(second.ID)
	assert.True(t, ok)
	_, ok = s.Get(third.ID)
	assert.True(t, ok)
}

func TestCloseIsIdempotent(t *testing.T) {
	s := New(Options{TTL: time.Minute})
	s.Close()
	s.Close()
}

func TestConcurrentAccess(t *testing.T) {
	s, _ := newTestStore(t, Options{TTL: time.Minute})
	sess := s.Create()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Get(sess.ID)
			_, _ = sess.WithPanel("task1", func(u *uploader.Uploader) error {
				u.Select(uploader.File{Name: "x.pdf"})
				_, err := u.Submit(context.Background())
				return err
			})
			sess.TakeNotifications()
		}()
	}
	wg.Wait()

	f, ok := sess.Selected("task1")
	require.True(t, ok)
	assert.Equal(t, "x.pdf", f.Name)
}
