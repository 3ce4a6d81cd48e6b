package tui

import (
	"io"
	"sync"

	"github.com/vovakirdan/cyclist-collector/internal/core"
)

// BellSink plays cues as the terminal bell.
type BellSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBellSink returns a sink that writes BEL to w. The TUI owns stdout,
// so w is normally stderr.
func NewBellSink(w io.Writer) *BellSink {
	return &BellSink{w: w}
}

// Play implements core.AudioSink. Jump cues are dropped.
func (b *BellSink) Play(cue core.Cue) {
	if cue == core.CueJump {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	//nolint:errcheck // A missing bell is not worth failing a tick
	b.w.Write([]byte{'\a'})
}
