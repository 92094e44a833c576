package host

import (
	"context"
	"sync"
)

// BufferSender collects replies in memory, for transports that answer a
// request with everything the command sent
type BufferSender struct {
	mu      sync.Mutex
	replies []string
}

// SendText implements Sender
func (s *BufferSender) SendText(_ context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append(s.replies, text)
	return nil
}

// Replies returns a copy of everything sent so far
func (s *BufferSender) Replies() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.replies...)
}
