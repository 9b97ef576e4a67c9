package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleFromIdleStartsPlaying(t *testing.T) {
	p := New(3)
	s := p.Toggle()
	assert.Equal(t, StatePlaying, s.State)
	assert.Equal(t, 0, s.Index)

	s = p.Toggle()
	assert.Equal(t, StatePaused, s.State)

	s = p.Toggle()
	assert.Equal(t, StatePlaying, s.State)
}

func TestToggleOnEmptyPlaylistStaysIdle(t *testing.T) {
	p := New(0)
	s := p.Toggle()
	assert.Equal(t, StateIdle, s.State)
}

func TestSelectPlaysFromAnyState(t *testing.T) {
	p := New(3)
	s := p.Select(2)
	assert.Equal(t, StatePlaying, s.State)
	assert.Equal(t, 2, s.Index)

	p.Toggle() // paused
	s = p.Select(1)
	assert.Equal(t, StatePlaying, s.State)
	assert.Equal(t, 1, s.Index)
}

func TestSelectOutOfRangeIgnored(t *testing.T) {
	p := New(3)
	s := p.Select(5)
	assert.Equal(t, StateIdle, s.State)
	assert.Equal(t, 0, s.Index)
}

func TestTrackEndAdvancesSequentially(t *testing.T) {
	p := New(3)
	p.Select(0)
	s := p.TrackEnd()
	assert.Equal(t, 1, s.Index)
	assert.Equal(t, StatePlaying, s.State)
}

func TestTrackEndWrapsToZero(t *testing.T) {
	p := New(3)
	p.Select(2)
	s := p.TrackEnd()
	assert.Equal(t, 0, s.Index)
	assert.Equal(t, StatePlaying, s.State)
}

func TestTrackEndWithRepeatKeepsIndex(t *testing.T) {
	p := New(3)
	p.Select(1)
	p.SetRepeat(true)
	s := p.TrackEnd()
	assert.Equal(t, 1, s.Index)
	assert.Equal(t, StatePlaying, s.State)
}

func TestTrackEndWithShuffleStaysInRange(t *testing.T) {
	p := New(5)
	p.Select(0)
	p.SetShuffle(true)
	for i := 0; i < 50; i++ {
		s := p.TrackEnd()
		assert.GreaterOrEqual(t, s.Index, 0)
		assert.Less(t, s.Index, 5)
		assert.Equal(t, StatePlaying, s.State)
	}
}

func TestShuffleMayRepeatCurrentTrack(t *testing.T) {
	p := New(3)
	p.Select(1)
	p.SetShuffle(true)
	p.randInt = func(int) int { return 1 }
	s := p.TrackEnd()
	assert.Equal(t, 1, s.Index)
}

func TestRepeatWinsOverShuffle(t *testing.T) {
	p := New(4)
	p.Select(2)
	p.SetShuffle(true)
	p.SetRepeat(true)
	p.randInt = func(int) int { return 0 }
	s := p.TrackEnd()
	assert.Equal(t, 2, s.Index)
}

func TestNextPrevWrap(t *testing.T) {
	p := New(3)
	p.Select(2)

	s := p.Next()
	assert.Equal(t, 0, s.Index)

	s = p.Prev()
	assert.Equal(t, 2, s.Index)
}

func TestSetLengthClampsIndex(t *testing.T) {
	p := New(5)
	p.Select(4)

	s := p.SetLength(2)
	assert.Equal(t, 1, s.Index)

	s = p.SetLength(0)
	assert.Equal(t, StateIdle, s.State)
	assert.Equal(t, 0, s.Index)
}

func TestSessions(t *testing.T) {
	sessions := NewSessions()
	id, snapshot := sessions.Create(3)
	assert.NotEmpty(t, id)
	assert.Equal(t, StateIdle, snapshot.State)
	assert.Equal(t, 3, snapshot.Length)

	p, err := sessions.Get(id)
	assert.NoError(t, err)
	assert.NotNil(t, p)

	_, err = sessions.Get("missing")
	assert.Error(t, err)

	sessions.Remove(id)
	_, err = sessions.Get(id)
	assert.Error(t, err)
	assert.Equal(t, 0, sessions.Count())
}
