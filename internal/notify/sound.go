package notify

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/pomod/internal/apperr"
)

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format: %s",
	}

	errOpenSound = &apperr.Error{
		Message: "unable to open sound file %s",
	}

	errDecodeSound = &apperr.Error{
		Message: "unable to decode sound file %s",
	}

	errSpeaker = &apperr.Error{
		Message: "unable to initialise speaker",
	}
)

// SoundExtensions lists the audio formats that can be decoded.
var SoundExtensions = []string{".mp3", ".ogg", ".flac", ".wav"}

var (
	speakerOnce sync.Once
	speakerErr  error
)

// Sound is an alert decoded into memory so that it can be replayed without
// touching the file again.
type Sound struct {
	buffer *beep.Buffer
	path   string
}

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

func decoder(ext string) (decodeFunc, bool) {
	switch ext {
	case ".ogg":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
			return vorbis.Decode(f)
		}, true
	case ".mp3":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
			return mp3.Decode(f)
		}, true
	case ".flac":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
			return flac.Decode(f)
		}, true
	case ".wav":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
			return wav.Decode(f)
		}, true
	}

	return nil, false
}

// LoadSound decodes the audio file at path.
func LoadSound(path string) (*Sound, error) {
	decode, ok := decoder(strings.ToLower(filepath.Ext(path)))
	if !ok {
		return nil, errInvalidSoundFormat.Fmt(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errOpenSound.Fmt(path).Wrap(err)
	}

	stream, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, errDecodeSound.Fmt(path).Wrap(err)
	}

	// closing the stream also closes f
	defer stream.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(stream)

	return &Sound{
		buffer: buffer,
		path:   path,
	}, nil
}

// Play starts the sound and returns without waiting for it to finish.
func (s *Sound) Play() error {
	speakerOnce.Do(func() {
		bufferSize := 10

		sampleRate := s.buffer.Format().SampleRate

		speakerErr = speaker.Init(
			sampleRate,
			sampleRate.N(time.Duration(int(time.Second)/bufferSize)),
		)
	})

	if speakerErr != nil {
		return errSpeaker.Wrap(speakerErr)
	}

	speaker.Play(s.buffer.Streamer(0, s.buffer.Len()))

	return nil
}
