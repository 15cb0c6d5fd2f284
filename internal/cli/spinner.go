package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// spinner animates a message on one terminal line while a blocking call runs.
type spinner struct {
	w       io.Writer
	message string
	stop    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

// newSpinner creates a spinner writing to stderr.
func newSpinner(message string) *spinner {
	return newSpinnerTo(os.Stderr, message)
}

func newSpinnerTo(w io.Writer, message string) *spinner {
	return &spinner{
		w:       w,
		message: message,
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// start begins the animation. It ends on stop or when ctx is done.
func (s *spinner) start(ctx context.Context) {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-ctx.Done():
				s.clearLine()
				return
			case <-s.stop:
				s.clearLine()
				return
			case <-ticker.C:
				frame := styleIconSpinner.Render(spinnerFrames[i%len(spinnerFrames)])
				fmt.Fprintf(s.w, "\r%s %s", frame, StyleDim.Render(s.message))
			}
		}
	}()
}

// halt stops the animation and waits for the line to be cleared. It is safe
// to call more than once.
func (s *spinner) halt() {
	s.once.Do(func() { close(s.stop) })
	<-s.stopped
}

func (s *spinner) clearLine() {
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}

// spin runs fn while the spinner animates and returns its error.
func spin(ctx context.Context, message string, fn func(context.Context) error) error {
	s := newSpinner(message)
	s.start(ctx)
	err := fn(ctx)
	s.halt()
	return err
}
