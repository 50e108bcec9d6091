package runner

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// progress draws a one-line spinner on w until stopped.
type progress struct {
	w      io.Writer
	frames []string
	fps    time.Duration

	stopOnce sync.Once
	done     chan struct{}
	finished chan struct{}
}

func startProgress(w io.Writer, label string) *progress {
	p := &progress{
		w:        w,
		frames:   spinner.MiniDot.Frames,
		fps:      spinner.MiniDot.FPS,
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}

	go func() {
		defer close(p.finished)
		ticker := time.NewTicker(p.fps)
		defer ticker.Stop()

		for i := 0; ; i++ {
			fmt.Fprintf(p.w, "\r%s %s", p.frames[i%len(p.frames)], label)
			select {
			case <-p.done:
				fmt.Fprint(p.w, "\r\033[K")
				return
			case <-ticker.C:
			}
		}
	}()

	return p
}

// stop erases the spinner line and waits for the drawing goroutine.
func (p *progress) stop() {
	if p == nil {
		return
	}
	p.stopOnce.Do(func() { close(p.done) })
	<-p.finished
}
