// Package audio renders the TIA's two tone channels to a WAV file by
// pulling samples at a fixed host rate. This is the capture path; live
// playback belongs to a front end.
package audio

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jmchacon/sim65/tia"
)

const (
	kSAMPLE_RATE = 44100
	kBIT_DEPTH   = 16
)

// Recorder accumulates mono samples from a TIA.
type Recorder struct {
	tia     *tia.Chip
	samples []int
}

// NewRecorder returns a recorder pulling from the given TIA.
func NewRecorder(t *tia.Chip) *Recorder {
	return &Recorder{tia: t}
}

// Capture pulls n samples at the host rate, advancing the channel
// phases accordingly.
func (r *Recorder) Capture(n int) {
	if r == nil || r.tia == nil {
		return
	}
	dt := 1.0 / float64(kSAMPLE_RATE)
	for i := 0; i < n; i++ {
		sample := r.tia.AudioStep(dt)
		r.samples = append(r.samples, int(sample*32767.0))
	}
}

// CaptureSeconds pulls whole seconds worth of samples.
func (r *Recorder) CaptureSeconds(seconds float64) {
	r.Capture(int(seconds * kSAMPLE_RATE))
}

// Len returns the number of captured samples.
func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}
	return len(r.samples)
}

// WriteWAV encodes the captured samples as 16 bit mono PCM.
func (r *Recorder) WriteWAV(path string) error {
	if r == nil {
		return fmt.Errorf("nil recorder")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("can't create %q: %w", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, kSAMPLE_RATE, kBIT_DEPTH, 1, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: kSAMPLE_RATE},
		SourceBitDepth: kBIT_DEPTH,
		Data:           r.samples,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("can't encode %q: %w", path, err)
	}
	return enc.Close()
}
