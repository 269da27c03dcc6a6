package profiler

import (
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-canvas/common"
	"github.com/Carmen-Shannon/oxy-canvas/engine/scene"
)

// Report is one interval's worth of frame statistics.
type Report struct {
	FPS    float64
	Frames int
	// Drawn, Culled and Hidden are per-frame averages of scene.Stats over the interval.
	Drawn  float64
	Culled float64
	Hidden float64
	HeapMB float64
	GC     uint32
}

// Profiler tracks frame rate, scene draw counts and memory statistics.
// Outputs stats to the module logger at a configurable interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	now            func() time.Time

	drawn, culled, hidden int

	last Report
}

// ProfilerOption configures a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often stats are logged. Non-positive values are ignored.
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) ProfilerOption {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}

// NewProfiler creates a new Profiler.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: functional options
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// Record adds one scene's render stats to the current frame.
//
// Parameters:
//   - s: the stats returned by scene.Scene.Stats after Render
func (p *Profiler) Record(s scene.Stats) {
	p.drawn += s.Drawn
	p.culled += s.Culled
	p.hidden += s.Hidden
}

// Tick should be called once per frame, after the frame's Record calls.
// Logs a Report when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	frames := float64(p.frameCount)
	r := Report{
		FPS:    frames / elapsed.Seconds(),
		Frames: p.frameCount,
		Drawn:  float64(p.drawn) / frames,
		Culled: float64(p.culled) / frames,
		Hidden: float64(p.hidden) / frames,
		HeapMB: float64(p.memStats.Alloc) / 1024 / 1024,
		GC:     p.memStats.NumGC,
	}

	common.Logger().Info("profiler",
		"fps", r.FPS,
		"drawn", r.Drawn,
		"culled", r.Culled,
		"hidden", r.Hidden,
		"heap_mb", r.HeapMB,
		"gc", r.GC,
	)

	p.last = r
	p.frameCount = 0
	p.drawn, p.culled, p.hidden = 0, 0, 0
	p.lastTime = currentTime
	return true
}

// Last returns the most recently logged Report.
//
// Returns:
//   - Report: zero until the first interval elapses
func (p *Profiler) Last() Report {
	return p.last
}
