package notify

import (
	"encoding/binary"
	"math"
	"time"
)

// Audio parameters of synthesized tones.
const (
	SampleRate   = 44100
	ChannelCount = 1
	BitDepth     = 16
)

// ToneSpec describes a sine tone whose gain decays exponentially.
type ToneSpec struct {
	Frequency float64
	Duration  time.Duration
	StartGain float64
	EndGain   float64
}

// CompletionTone is played when a phase completes.
var CompletionTone = ToneSpec{
	Frequency: 800,
	Duration:  500 * time.Millisecond,
	StartGain: 0.3,
	EndGain:   0.01,
}

// Synthesize renders spec as signed 16-bit little-endian mono PCM.
func Synthesize(spec ToneSpec) []byte {
	samples := int(spec.Duration.Seconds() * SampleRate)
	if samples <= 0 || spec.StartGain <= 0 {
		return nil
	}
	endGain := spec.EndGain
	if endGain <= 0 {
		endGain = spec.StartGain
	}

	pcm := make([]byte, samples*2)
	ratio := endGain / spec.StartGain
	for i := 0; i < samples; i++ {
		t := float64(i) / SampleRate
		gain := spec.StartGain * math.Pow(ratio, float64(i)/float64(samples))
		value := math.Sin(2*math.Pi*spec.Frequency*t) * gain
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(int16(value*math.MaxInt16)))
	}
	return pcm
}
