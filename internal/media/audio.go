package media

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

var (
	audioMu      sync.Mutex
	audioOpen    bool
	audioRate    beep.SampleRate
	speakerInit  = speaker.Init
	speakerClose = speaker.Close
)

// OpenAudio initializes the speaker once at the given sample rate.
// Later calls are no-ops.
func OpenAudio(sampleRate int) error {
	audioMu.Lock()
	defer audioMu.Unlock()

	if audioOpen {
		return nil
	}
	sr := beep.SampleRate(sampleRate)
	if err := speakerInit(sr, sr.N(time.Second/10)); err != nil {
		return err
	}
	audioRate = sr
	audioOpen = true
	return nil
}

// CloseAudio releases the speaker.
func CloseAudio() {
	audioMu.Lock()
	defer audioMu.Unlock()

	if !audioOpen {
		return
	}
	speaker.Clear()
	speakerClose()
	audioOpen = false
}

func audioOutput() (beep.SampleRate, bool) {
	audioMu.Lock()
	defer audioMu.Unlock()
	return audioRate, audioOpen
}
