package notification

import "sync"

// PanelSink holds notifications until the user dismisses or clears them.
// Newest entries come first.
type PanelSink struct {
	mu      sync.Mutex
	entries []Notification
}

func NewPanelSink() *PanelSink {
	return &PanelSink{}
}

func (s *PanelSink) Publish(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]Notification{n}, s.entries...)
}

func (s *PanelSink) List() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.entries))
	copy(out, s.entries)
	return out
}

// Dismiss removes the entry with the given id; unknown ids are a no-op.
func (s *PanelSink) Dismiss(id string) {
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

func (s *PanelSink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
