package notification

import (
	"sync"
	"time"
)

type toastEntry struct {
	Notification
	expiresAt time.Time
}

// ToastSink holds short-lived notifications. Entries expire after the
// configured TTL; expiry and dismissal are both idempotent.
type ToastSink struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries []toastEntry
	now     func() time.Time
}

func NewToastSink(ttl time.Duration) *ToastSink {
	return &ToastSink{
		ttl: ttl,
		now: time.Now,
	}
}

func (s *ToastSink) Publish(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, toastEntry{
		Notification: n,
		expiresAt:    s.now().Add(s.ttl),
	})
}

// Active prunes expired toasts and returns the live ones in emission order.
func (s *ToastSink) Active() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	live := s.entries[:0]
	for _, e := range s.entries {
		if e.expiresAt.After(now) {
			live = append(live, e)
		}
	}
	s.entries = live

	out := make([]Notification, 0, len(live))
	for _, e := range live {
		out = append(out, e.Notification)
	}
	return out
}

func (s *ToastSink) Dismiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}
