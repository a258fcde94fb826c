//go:build !windows

// Package stderr diverts file descriptor 2 while the presentation owns the
// terminal. Audio backends (ALSA through oto) write there directly, which
// would tear the slide layout; captured lines are surfaced in the status line
// instead.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

const backlog = 64

// Capture is an active redirection of the process's stderr.
type Capture struct {
	lines chan string
	orig  int
	r, w  *os.File
	done  chan struct{}
}

// Start redirects stderr into a pipe. Call it before the speaker is opened.
// The program can run on without capture when it fails.
func Start() (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}
	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{
		lines: make(chan string, backlog),
		orig:  orig,
		r:     r,
		w:     w,
		done:  make(chan struct{}),
	}
	go c.pump()
	return c, nil
}

func (c *Capture) pump() {
	defer close(c.done)
	defer close(c.lines)
	scanner := bufio.NewScanner(c.r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case c.lines <- line:
		default:
			// reader is behind; drop
		}
	}
}

// Lines delivers captured output. It is closed by Stop.
func (c *Capture) Lines() <-chan string {
	if c == nil {
		return nil
	}
	return c.lines
}

// WriteOriginal writes msg to the terminal's real stderr.
func (c *Capture) WriteOriginal(msg string) {
	if c == nil {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = syscall.Write(c.orig, []byte(msg))
}

// Stop restores stderr and closes Lines. It is safe on a nil Capture.
func (c *Capture) Stop() {
	if c == nil {
		return
	}
	_ = syscall.Dup2(c.orig, int(os.Stderr.Fd()))
	_ = syscall.Close(c.orig)
	c.w.Close()
	<-c.done
	c.r.Close()
}
