package host

import (
	"github.com/TheBitDrifter/blockscene"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

var _ blockscene.Audio = (*audio.Context)(nil)

// NewAudio returns the process-wide ebiten audio context, creating it on
// first use.
func NewAudio() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(SampleRate)
}
