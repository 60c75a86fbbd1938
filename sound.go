package rectedit

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	clickSampleRate = 48000
	clickFreq       = 880.0 // Hz
	clickDuration   = 0.06  // seconds
	clickAttack     = 0.005 // seconds
	clickRelease    = 0.04  // seconds
	clickGain       = 0.25
)

// clicker plays a short synthesized blip as button feedback. The PCM is
// generated once at startup; each play spawns a throwaway player.
type clicker struct {
	ctx *audio.Context
	pcm []byte
}

func newClicker() *clicker {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(clickSampleRate)
	}
	return &clicker{ctx: ctx, pcm: synthClick()}
}

func (c *clicker) play() {
	c.ctx.NewPlayerFromBytes(c.pcm).Play()
}

// synthClick renders a sine blip with an attack/release envelope as
// 16-bit little-endian stereo PCM.
func synthClick() []byte {
	samples := int(clickDuration * clickSampleRate)
	buf := make([]float64, samples)

	phase := 0.0
	phaseInc := clickFreq / clickSampleRate
	for i := range buf {
		buf[i] = math.Sin(2 * math.Pi * phase)
		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}

	applyEnvelope(buf, clickAttack, clickRelease)

	pcm := make([]byte, samples*4)
	for i, v := range buf {
		s := int16(v * clickGain * math.MaxInt16)
		lo, hi := byte(s), byte(s>>8)
		pcm[4*i] = lo
		pcm[4*i+1] = hi
		pcm[4*i+2] = lo
		pcm[4*i+3] = hi
	}
	return pcm
}

// applyEnvelope applies a linear attack/release envelope in place.
func applyEnvelope(buf []float64, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * clickSampleRate)
	releaseSamples := int(releaseSec * clickSampleRate)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := range buf {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}
