//go:build windows

package stderr

import "os"

// Capture is inert on Windows; its audio backend does not write to stderr.
type Capture struct{}

// Start returns an inert capture.
func Start() (*Capture, error) {
	return &Capture{}, nil
}

// Lines returns nil; nothing is ever captured.
func (c *Capture) Lines() <-chan string { return nil }

// WriteOriginal writes msg to stderr.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop does nothing.
func (c *Capture) Stop() {}
