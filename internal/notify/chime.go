package notify

import (
	"fmt"
	"os/exec"

	"github.com/sandeepkv93/tingtong/internal/model"
)

// ChimePlayer plays an audible reminder cue at the given volume
// (0.0 to 1.0). Failure means silence, nothing more.
type ChimePlayer interface {
	Play(tone model.Tone, customPath string, volume float64) error
}

type NoopChimePlayer struct{}

func (NoopChimePlayer) Play(model.Tone, string, float64) error { return nil }

// ExecChimePlayer shells out to sox's play: synthesized sine tones for
// the built-in ringtones, file playback for custom sounds.
type ExecChimePlayer struct{}

func (ExecChimePlayer) Play(tone model.Tone, customPath string, volume float64) error {
	if tone == model.ToneCustom && customPath != "" {
		return exec.Command("play", "-q", customPath, "vol", fmt.Sprintf("%.2f", volume)).Run()
	}
	hz, d, ok := tone.Pitch()
	if !ok {
		return nil
	}
	return exec.Command(
		"play", "-q", "-n",
		"synth", fmt.Sprintf("%.1f", d.Seconds()),
		"sine", fmt.Sprintf("%d", hz),
		"vol", fmt.Sprintf("%.2f", volume),
	).Run()
}
