package internal

import (
	"fmt"
	"io"
	"os"
	"time"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧"}

// Spinner animates a short status line on stderr while a request is in
// flight. Not safe for concurrent Start calls.
type Spinner struct {
	w        io.Writer
	pos      int
	stopChan chan struct{}
	doneChan chan struct{}
}

func NewSpinner() *Spinner {
	return &Spinner{w: os.Stderr}
}

func (s *Spinner) next() string {
	frame := frames[s.pos]
	s.pos = (s.pos + 1) % len(frames)
	return frame
}

func (s *Spinner) Start(message string) {
	if s.stopChan != nil {
		return
	}
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})
	go func() {
		defer close(s.doneChan)
		for {
			fmt.Fprintf(s.w, "\r\033[K%s %s", s.next(), message)
			select {
			case <-s.stopChan:
				return
			case <-time.After(120 * time.Millisecond):
			}
		}
	}()
}

func (s *Spinner) Stop() {
	if s.stopChan == nil {
		return
	}
	close(s.stopChan)
	<-s.doneChan
	s.stopChan = nil
	s.doneChan = nil
	fmt.Fprintf(s.w, "\r\033[K")
}
