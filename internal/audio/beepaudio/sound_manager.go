// Package beepaudio plays the runner's tracks on the system speaker through
// beep. It is the only package that touches the audio device.
package beepaudio

import (
	"fmt"
	"io/fs"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/kingrun/internal/audio"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var bufferFormat = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// SoundManager mixes the game's tracks onto the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	cfg         audio.Config
	logger      *log.Logger
	mixer       *beep.Mixer
	buffers     map[audio.Track]*beep.Buffer
	loops       map[audio.Track]*beep.Ctrl
	initialized bool
}

// NewSoundManager creates a sound manager. Call Load and Initialize before use.
func NewSoundManager(cfg audio.Config, logger *log.Logger) *SoundManager {
	return &SoundManager{
		cfg:     cfg,
		logger:  logger,
		mixer:   &beep.Mixer{},
		buffers: make(map[audio.Track]*beep.Buffer),
		loops:   make(map[audio.Track]*beep.Ctrl),
	}
}

// Load decodes "<track>.wav" from fsys for every track. A missing or broken
// file is logged and replaced by a synthesized sound.
func (sm *SoundManager) Load(fsys fs.FS) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	for _, t := range audio.Tracks {
		name := string(t) + ".wav"
		buf, err := decodeWAV(fsys, name)
		if err != nil {
			sm.logger.Warn("using synthesized sound", "track", t, "error", err)
			buf = synthesize(t)
		}
		sm.buffers[t] = buf
	}
}

// Loaded reports whether a buffer exists for the track.
func (sm *SoundManager) Loaded(t audio.Track) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	buf, ok := sm.buffers[t]
	return ok && buf.Len() > 0
}

// Initialize opens the speaker. On error the manager stays silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(volume(sm.mixer, sm.cfg.ClampedVolume()))
	sm.initialized = true
	return nil
}

// PlayLoop starts the track on repeat, or resumes it if it was stopped.
func (sm *SoundManager) PlayLoop(t audio.Track) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if ctrl, ok := sm.loops[t]; ok {
		speaker.Lock()
		ctrl.Paused = false
		speaker.Unlock()
		return
	}

	buf, ok := sm.buffers[t]
	if !ok || buf.Len() == 0 {
		return
	}
	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len())), Paused: false}
	sm.loops[t] = ctrl

	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// Stop pauses a looping track at its current position.
func (sm *SoundManager) Stop(t audio.Track) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ctrl, ok := sm.loops[t]
	if !ok || !sm.initialized {
		return
	}
	speaker.Lock()
	ctrl.Paused = true
	speaker.Unlock()
}

// PlayOnce plays the track from the start.
func (sm *SoundManager) PlayOnce(t audio.Track) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	buf, ok := sm.buffers[t]
	if !ok || buf.Len() == 0 {
		return
	}

	speaker.Lock()
	sm.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.loops = make(map[audio.Track]*beep.Ctrl)
	sm.initialized = false
}

var _ audio.Device = (*SoundManager)(nil)

// Open builds the audio device for a game session. Disabled audio, a failing
// speaker, or missing files all degrade; Open never fails.
func Open(cfg audio.Config, assets fs.FS, logger *log.Logger) audio.Device {
	if !cfg.Enabled {
		logger.Debug("audio disabled")
		return audio.Silent{}
	}

	sm := NewSoundManager(cfg, logger)
	sm.Load(assets)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing silently", "error", err)
		return audio.Silent{}
	}
	return sm
}

// decodeWAV reads a WAV file into a buffer at the mixer's sample rate.
func decodeWAV(fsys fs.FS, name string) (*beep.Buffer, error) {
	if fsys == nil {
		return nil, fs.ErrNotExist
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(bufferFormat)
	buf.Append(s)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("decode %s: no samples", name)
	}
	return buf, nil
}

// note is a pitch held for a duration; zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var (
	// A short looping march for the background.
	backgroundTune = []note{
		{392, 200 * time.Millisecond}, {523, 200 * time.Millisecond},
		{659, 200 * time.Millisecond}, {523, 200 * time.Millisecond},
		{440, 200 * time.Millisecond}, {587, 200 * time.Millisecond},
		{698, 200 * time.Millisecond}, {0, 200 * time.Millisecond},
	}
	// A rising blip for the jump cue.
	jumpTune = []note{
		{440, 50 * time.Millisecond}, {660, 50 * time.Millisecond}, {880, 40 * time.Millisecond},
	}
)

// synthesize renders the built-in tune for a track.
func synthesize(t audio.Track) *beep.Buffer {
	tune := backgroundTune
	vol := 0.25
	if t == audio.TrackJump {
		tune = jumpTune
		vol = 0.4
	}

	buf := beep.NewBuffer(bufferFormat)
	for _, n := range tune {
		samples := sampleRate.N(n.dur)
		if n.freq == 0 {
			buf.Append(beep.Take(samples, beep.Silence(-1)))
			continue
		}
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			buf.Append(beep.Take(samples, beep.Silence(-1)))
			continue
		}
		buf.Append(volume(beep.Take(samples, tone), vol))
	}
	return buf
}

// volume scales a streamer linearly; zero or less mutes it.
func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
