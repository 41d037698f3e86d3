// Package audio declares the audio surface a backend must provide and a
// placeholder implementation for backends that have no audio.
package audio

import (
	"github.com/pkg/errors"
)

// ErrUnsupported is returned by every operation of Unsupported.
var ErrUnsupported = errors.New("audio is not supported by this backend")

// Audio creates devices, recorders, sounds and music.
type Audio interface {
	NewAudioDevice(samplingRate int, mono bool) (Device, error)
	NewAudioRecorder(samplingRate int, mono bool) (Recorder, error)
	NewSound(path string) (Sound, error)
	NewMusic(path string) (Music, error)
}

// A Device plays raw PCM samples.
type Device interface {
	WriteSamples(samples []int16) error
	Close() error
}

// A Recorder captures raw PCM samples.
type Recorder interface {
	Read(samples []int16) error
	Close() error
}

// A Sound is a short clip loaded fully into memory.
type Sound interface {
	Play(volume float32) (int64, error)
	Stop(id int64) error
	Close() error
}

// Music is a streamed track.
type Music interface {
	Play() error
	Pause() error
	Stop() error
	Close() error
}

// Unsupported is an Audio that fails every call with ErrUnsupported rather
// than pretending to play anything.
type Unsupported struct{}

// NewAudioDevice always fails.
func (Unsupported) NewAudioDevice(samplingRate int, mono bool) (Device, error) {
	return nil, errors.Wrapf(ErrUnsupported, "audio device (%d Hz, mono=%t)", samplingRate, mono)
}

// NewAudioRecorder always fails.
func (Unsupported) NewAudioRecorder(samplingRate int, mono bool) (Recorder, error) {
	return nil, errors.Wrapf(ErrUnsupported, "audio recorder (%d Hz, mono=%t)", samplingRate, mono)
}

// NewSound always fails.
func (Unsupported) NewSound(path string) (Sound, error) {
	return nil, errors.Wrapf(ErrUnsupported, "sound %q", path)
}

// NewMusic always fails.
func (Unsupported) NewMusic(path string) (Music, error) {
	return nil, errors.Wrapf(ErrUnsupported, "music %q", path)
}
