//go:build !windows

package stderr

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapture_CollectsLines(t *testing.T) {
	c, err := Start()
	require.NoError(t, err)

	_, err = os.Stderr.WriteString("ALSA lib pcm.c: underrun\n\n  \nsecond\n")
	require.NoError(t, err)

	var got []string
	timeout := time.After(2 * time.Second)
	for len(got) < 2 {
		select {
		case line := <-c.Lines():
			got = append(got, line)
		case <-timeout:
			t.Fatalf("timed out, got %v", got)
		}
	}
	c.Stop()

	assert.Equal(t, []string{"ALSA lib pcm.c: underrun", "second"}, got)
	_, open := <-c.Lines()
	assert.False(t, open)
}

func TestCapture_NilIsSafe(t *testing.T) {
	var c *Capture
	assert.Nil(t, c.Lines())
	c.Stop()
}
