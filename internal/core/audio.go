package core

// Cue names an audio event raised by the simulation.
type Cue string

// Cues raised by gameplay.
const (
	CueJump    Cue = "jump"
	CueCollect Cue = "collect"
	CueHit     Cue = "hit"
)

// AudioSink receives cues at the moment the matching effect happens.
// Implementations must not block the simulation.
type AudioSink interface {
	Play(cue Cue)
}

// NopAudio discards every cue.
type NopAudio struct{}

// Play implements AudioSink.
func (NopAudio) Play(Cue) {}

// AudioFunc adapts a function to the AudioSink interface.
type AudioFunc func(cue Cue)

// Play implements AudioSink.
func (f AudioFunc) Play(cue Cue) {
	f(cue)
}
