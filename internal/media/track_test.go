package media

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/cinedeck/internal/pingpong"
)

// writeSilence encodes seconds of silence as a wav file.
func writeSilence(t *testing.T, seconds int) string {
	t.Helper()
	format := beep.Format{SampleRate: 8000, NumChannels: 2, Precision: 2}
	path := filepath.Join(t.TempDir(), "ambience.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, wav.Encode(f, beep.Silence(format.SampleRate.N(time.Duration(seconds)*time.Second)), format))
	return path
}

func TestIsAudioFile(t *testing.T) {
	assert.True(t, IsAudioFile("a.mp3"))
	assert.True(t, IsAudioFile("B.FLAC"))
	assert.True(t, IsAudioFile("c.wav"))
	assert.False(t, IsAudioFile("d.mp4"))
	assert.False(t, IsAudioFile("e"))
}

func TestOpenTrack_Unsupported(t *testing.T) {
	_, err := OpenTrack("loop.ogg", nil, 1)
	require.Error(t, err)
}

func TestOpenTrack_MissingFile(t *testing.T) {
	_, err := OpenTrack(filepath.Join(t.TempDir(), "none.wav"), nil, 1)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestTrack_ElementBehavior(t *testing.T) {
	path := writeSilence(t, 2)
	tr, err := OpenTrack(path, nil, 0.5)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Close() })

	assert.Equal(t, path, tr.Path())
	assert.InDelta(t, 2.0, tr.Duration(), 1e-3)
	assert.Equal(t, pingpong.HaveEnoughData, tr.ReadyState())
	assert.True(t, tr.Paused())

	tr.SetCurrentTime(1.5)
	assert.InDelta(t, 1.5, tr.CurrentTime(), 1e-3)

	tr.SetCurrentTime(10)
	assert.InDelta(t, 2.0, tr.CurrentTime(), 1e-3)

	tr.SetPlaybackRate(0.6)
	assert.InDelta(t, 0.6, tr.PlaybackRate(), 1e-9)
	tr.SetPlaybackRate(0)
	assert.InDelta(t, 0.6, tr.PlaybackRate(), 1e-9)
}

func TestTrack_PlayWithoutOutput(t *testing.T) {
	tr, err := OpenTrack(writeSilence(t, 1), nil, 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Close() })

	assert.ErrorIs(t, tr.Play(), ErrAudioUnavailable)
	assert.True(t, tr.Paused())
}

func TestTrack_PlayGated(t *testing.T) {
	tr, err := OpenTrack(writeSilence(t, 1), NewGate(true), 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Close() })

	assert.ErrorIs(t, tr.Play(), ErrPlaybackRejected)
}

func TestTrack_CloseIdempotent(t *testing.T) {
	tr, err := OpenTrack(writeSilence(t, 1), nil, 1)
	require.NoError(t, err)

	_ = tr.Close()
	assert.NoError(t, tr.Close())
	assert.Equal(t, pingpong.HaveNothing, tr.ReadyState())
	assert.InDelta(t, 0.0, tr.CurrentTime(), 1e-9)
}

func TestLevelToVolume(t *testing.T) {
	tests := []struct {
		level float64
		want  float64
	}{
		{1.0, 0},
		{1.5, 0},
		{0.5, -1},
		{0.25, -2},
		{0, -10},
		{-1, -10},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, levelToVolume(tt.level), 1e-9, "level %v", tt.level)
	}
}

// A track that plays past its end must stay on the mixer so seeking back
// resumes it.
func TestTrack_SurvivesDrainingPastEnd(t *testing.T) {
	tr, err := OpenTrack(writeSilence(t, 1), nil, 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Close() })

	mixer := &beep.Mixer{}
	mixer.Add(tr.volume)
	tr.ctrl.Paused = false

	buf := make([][2]float64, 4096)
	for range 4 {
		mixer.Stream(buf)
	}
	assert.InDelta(t, 1.0, tr.CurrentTime(), 1e-3)
	assert.Equal(t, 1, mixer.Len())

	tr.SetCurrentTime(0)
	mixer.Stream(buf[:800])

	assert.Greater(t, tr.CurrentTime(), 0.0)
	assert.Less(t, tr.CurrentTime(), 0.5)
}

func TestEndless_PadsWithSilence(t *testing.T) {
	e := endless{s: beep.Silence(2)}
	buf := [][2]float64{{1, 1}, {1, 1}, {1, 1}, {1, 1}}

	n, ok := e.Stream(buf)

	assert.Equal(t, 4, n)
	assert.True(t, ok)
	assert.Equal(t, [2]float64{}, buf[3])
	assert.NoError(t, e.Err())
}

func TestTrack_LogsFailedSeek(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tr, err := OpenTrack(writeSilence(t, 1), nil, 1, WithTrackLogger(logger))
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Close() })

	tr.streamer = failingSeeker{tr.streamer}
	tr.SetCurrentTime(0.5)

	assert.Contains(t, logs.String(), "seek ambience")
	assert.Contains(t, logs.String(), "seek refused")
}

type failingSeeker struct {
	beep.StreamSeekCloser
}

func (failingSeeker) Seek(int) error { return errors.New("seek refused") }
