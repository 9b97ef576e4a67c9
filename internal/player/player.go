// Package player models the music player's discrete state: what plays,
// whether it plays, and how the playlist advances. Volume and seek are
// continuous client-side concerns and stay out of the model.
package player

import (
	"math/rand"
	"sync"
)

// State is the playback state.
type State string

const (
	StateIdle    State = "idle"
	StatePlaying State = "playing"
	StatePaused  State = "paused"
)

// Snapshot is an immutable view of a player.
type Snapshot struct {
	State   State `json:"state"`
	Index   int   `json:"index"`
	Length  int   `json:"length"`
	Shuffle bool  `json:"shuffle"`
	Repeat  bool  `json:"repeat"`
}

// Player is a playlist-position state machine. All methods are safe for
// concurrent use. An empty playlist pins the player to idle.
type Player struct {
	mu      sync.Mutex
	state   State
	index   int
	length  int
	shuffle bool
	repeat  bool
	randInt func(n int) int
}

// New creates an idle player over a playlist of the given length.
func New(length int) *Player {
	if length < 0 {
		length = 0
	}
	return &Player{
		state:   StateIdle,
		length:  length,
		randInt: rand.Intn,
	}
}

// Snapshot returns the current state.
func (p *Player) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		State:   p.state,
		Index:   p.index,
		Length:  p.length,
		Shuffle: p.shuffle,
		Repeat:  p.repeat,
	}
}

// Toggle starts playback when idle or paused and pauses when playing.
func (p *Player) Toggle() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.length == 0 {
		return p.snapshotLocked()
	}
	switch p.state {
	case StatePlaying:
		p.state = StatePaused
	default:
		p.state = StatePlaying
	}
	return p.snapshotLocked()
}

// Select jumps to track i and plays it, from any state. An out-of-range
// index is ignored.
func (p *Player) Select(i int) Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= p.length {
		return p.snapshotLocked()
	}
	p.index = i
	p.state = StatePlaying
	return p.snapshotLocked()
}

// TrackEnd advances when the current track finishes. Repeat keeps the
// index; shuffle picks a uniform random index, which may be the same one;
// otherwise the next index, wrapping past the end to zero. Playback
// continues in every case.
func (p *Player) TrackEnd() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.length == 0 || p.state != StatePlaying {
		return p.snapshotLocked()
	}
	switch {
	case p.repeat:
		// keep index
	case p.shuffle:
		p.index = p.randInt(p.length)
	default:
		p.index = (p.index + 1) % p.length
	}
	return p.snapshotLocked()
}

// Next advances manually with wraparound and keeps the current state.
func (p *Player) Next() Snapshot {
	return p.step(1)
}

// Prev steps back manually with wraparound and keeps the current state.
func (p *Player) Prev() Snapshot {
	return p.step(-1)
}

func (p *Player) step(delta int) Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.length == 0 {
		return p.snapshotLocked()
	}
	p.index = (p.index + delta + p.length) % p.length
	return p.snapshotLocked()
}

// SetShuffle sets shuffle mode.
func (p *Player) SetShuffle(on bool) Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shuffle = on
	return p.snapshotLocked()
}

// SetRepeat sets repeat mode.
func (p *Player) SetRepeat(on bool) Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.repeat = on
	return p.snapshotLocked()
}

// SetLength resizes the playlist, clamping the index and going idle when
// the playlist becomes empty.
func (p *Player) SetLength(length int) Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	if length < 0 {
		length = 0
	}
	p.length = length
	if p.length == 0 {
		p.index = 0
		p.state = StateIdle
	} else if p.index >= p.length {
		p.index = p.length - 1
	}
	return p.snapshotLocked()
}

func (p *Player) snapshotLocked() Snapshot {
	return Snapshot{
		State:   p.state,
		Index:   p.index,
		Length:  p.length,
		Shuffle: p.shuffle,
		Repeat:  p.repeat,
	}
}
