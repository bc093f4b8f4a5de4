package notifier

import (
	"fmt"
	"io"
	"sync"
)

// Notifier delivers formatted text.
type Notifier interface {
	Send(text string) error
}

// WriterNotifier writes messages to an io.Writer, serialising concurrent
// senders so messages never interleave.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Send(text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, err := io.WriteString(n.w, text); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	return nil
}
