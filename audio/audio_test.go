package audio_test

import (
	"errors"
	"testing"

	"go.viam.com/test"

	"github.com/edaniels/gocursor/audio"
)

func TestUnsupported(t *testing.T) {
	var a audio.Audio = audio.Unsupported{}

	dev, err := a.NewAudioDevice(44100, true)
	test.That(t, dev, test.ShouldBeNil)
	test.That(t, errors.Is(err, audio.ErrUnsupported), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "44100 Hz")

	rec, err := a.NewAudioRecorder(22050, false)
	test.That(t, rec, test.ShouldBeNil)
	test.That(t, errors.Is(err, audio.ErrUnsupported), test.ShouldBeTrue)

	sound, err := a.NewSound("click.wav")
	test.That(t, sound, test.ShouldBeNil)
	test.That(t, errors.Is(err, audio.ErrUnsupported), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "click.wav")

	music, err := a.NewMusic("theme.ogg")
	test.That(t, music, test.ShouldBeNil)
	test.That(t, errors.Is(err, audio.ErrUnsupported), test.ShouldBeTrue)
}
