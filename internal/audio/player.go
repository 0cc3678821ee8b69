// Package audio defines the sound interface the simulation talks to. Audio is
// optional: any failure degrades to silence and never reaches the simulation.
// The speaker backend lives in audio/beepaudio so that importing this package
// never pulls in a sound device.
package audio

// Track names a sound the game can play.
type Track string

const (
	TrackBackground Track = "bg"
	TrackJump       Track = "jumping"
)

// Tracks lists every track the game uses, in load order.
var Tracks = []Track{TrackBackground, TrackJump}

// Player is the sound interface the simulation talks to.
type Player interface {
	// PlayLoop starts or resumes a track that repeats until stopped.
	PlayLoop(t Track)
	// Stop pauses a looping track.
	Stop(t Track)
	// PlayOnce plays a track from the beginning, overlapping other sounds.
	PlayOnce(t Track)
}

// Device is a Player that holds host resources.
type Device interface {
	Player
	Close()
}

// Silent is a Device that plays nothing.
type Silent struct{}

func (Silent) PlayLoop(Track) {}
func (Silent) Stop(Track)     {}
func (Silent) PlayOnce(Track) {}
func (Silent) Close()         {}

var _ Device = Silent{}

// Config controls audio output.
type Config struct {
	Enabled bool
	Volume  float64 // 0.0 - 1.0
}

// ClampedVolume returns Volume limited to 1. Zero or less means mute.
func (c Config) ClampedVolume() float64 {
	if c.Volume > 1 {
		return 1
	}
	if c.Volume < 0 {
		return 0
	}
	return c.Volume
}

// DefaultConfig returns audio enabled at half volume.
func DefaultConfig() Config {
	return Config{Enabled: true, Volume: 0.5}
}
