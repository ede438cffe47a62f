// Package clipboard hands drag-out payloads to the terminal's clipboard.
package clipboard

import (
	"io"
	"sync"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Writer accepts text for the system clipboard.
type Writer interface {
	Copy(text string) error
}

// OSC52 copies through the OSC 52 escape sequence, which most terminal
// emulators (and tmux/screen when configured) forward to the host clipboard.
type OSC52 struct {
	Out  io.Writer
	Tmux bool

	mu sync.Mutex
}

func (c *OSC52) Copy(text string) error {
	seq := osc52.New(text)
	if c.Tmux {
		seq = seq.Tmux()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := seq.WriteTo(c.Out)
	return err
}

// Memory keeps the last copied text; used when no terminal is attached.
type Memory struct {
	mu   sync.Mutex
	last string
}

func (m *Memory) Copy(text string) error {
	m.mu.Lock()
	m.last = text
	m.mu.Unlock()
	return nil
}

// Last returns the most recent copy.
func (m *Memory) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}
