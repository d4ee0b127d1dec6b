package audio

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

var ErrNotWAV = errors.New("not a WAV/RIFF file")

// Info describes an audio file the way the player lists it.
type Info struct {
	Path        string
	SizeBytes   int64
	DurationSec float64
	SampleRate  int
	Channels    int
	BitDepth    int
}

// Probe reads the WAV header and PCM chunk size of path.
func Probe(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotWAV)
	}

	duration, err := decoder.Duration()
	if err != nil {
		return nil, fmt.Errorf("reading duration of %s: %w", path, err)
	}

	return &Info{
		Path:        path,
		SizeBytes:   stat.Size(),
		DurationSec: duration.Seconds(),
		SampleRate:  int(decoder.SampleRate),
		Channels:    int(decoder.NumChans),
		BitDepth:    int(decoder.BitDepth),
	}, nil
}
