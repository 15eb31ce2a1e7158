package app

import (
	"context"
	"image/color"
	"strings"
	"sync"
	"testing"
	"time"

	"wirecube/hal"
	"wirecube/loop"
	"wirecube/wire3d"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lineLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *lineLogger) WriteLineString(s string) {
	l.mu.Lock()
	l.lines = append(l.lines, s)
	l.mu.Unlock()
}

func (l *lineLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *lineLogger) joined() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.lines, "\n")
}

// recordingSurface keeps every line and closes after closeAfter presents.
type recordingSurface struct {
	wire3d.Recorder
	fb         hal.Framebuffer
	closeAfter int
	presents   int
	panicOn    bool
}

func (s *recordingSurface) Framebuffer() hal.Framebuffer { return s.fb }
func (s *recordingSurface) PollClose() bool             { return s.presents >= s.closeAfter }
func (s *recordingSurface) Clear(c wire3d.Color)        { s.fb.ClearRGB(c.R, c.G, c.B) }
func (s *recordingSurface) Present() error              { s.presents++; return nil }

func (s *recordingSurface) DrawLine(p0, p1 wire3d.Point2, c wire3d.Color) {
	if s.panicOn {
		panic("draw failed")
	}
	s.Recorder.DrawLine(p0, p1, c)
}

type testHost struct {
	log  *lineLogger
	surf *recordingSurface
}

func (h *testHost) Logger() hal.Logger   { return h.log }
func (h *testHost) Surface() hal.Surface { return h.surf }

func newTestHost(t *testing.T, closeAfter int) *testHost {
	t.Helper()
	fb, err := hal.NewFramebuffer(1024, 960)
	require.NoError(t, err)
	return &testHost{
		log:  &lineLogger{},
		surf: &recordingSurface{fb: fb, closeAfter: closeAfter},
	}
}

func frozenConfig() Config {
	cfg := DefaultConfig()
	t0 := time.Unix(1000, 0)
	cfg.Loop.Now = func() time.Time { return t0 }
	return cfg
}

func litIn(fb hal.Framebuffer, x0, y0, x1, y1 int) int {
	buf := fb.Buffer()
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			off := y*fb.StrideBytes() + x*2
			if buf[off] != 0 || buf[off+1] != 0 {
				n++
			}
		}
	}
	return n
}

func TestNewRejectsMissingHost(t *testing.T) {
	_, err := New(nil, DefaultConfig())
	assert.Error(t, err)
}

func TestRenderFrameAtRest(t *testing.T) {
	h := newTestHost(t, 1)
	a, err := New(h, frozenConfig())
	require.NoError(t, err)

	a.renderFrame(0)

	// Exactly one cube face (two triangles) faces the camera at rest.
	assert.Len(t, h.surf.Lines, 3*2)
	assert.Equal(t, wire3d.FrameStats{Triangles: 12, Culled: 10, Drawn: 2}, a.stats)
	for _, l := range h.surf.Lines {
		assert.Equal(t, wire3d.White, l.Color)
	}
}

func TestRunFrozenClock(t *testing.T) {
	h := newTestHost(t, 3)
	a, err := New(h, frozenConfig())
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, 3, h.surf.presents)
	assert.Len(t, h.surf.Lines, 3*6, "theta stays 0 while the clock is frozen")
	assert.Zero(t, a.World().Ticks(), "no wall-clock time passed, so no ticks")

	log := h.log.joined()
	assert.Contains(t, log, "1024x960, 12 triangles")
	assert.Contains(t, log, "terminated after 0 ticks")
}

func TestRunHeadlessTicksWorld(t *testing.T) {
	log := &lineLogger{}
	cfg := DefaultConfig()
	cfg.Loop.ReportInterval = 20 * time.Millisecond

	var a *App
	err := hal.RunHeadless(context.Background(), hal.HeadlessConfig{
		Width:  64,
		Height: 48,
		Hz:     200,
		Frames: 40,
		Logger: log,
	}, func(h hal.Host) error {
		var err error
		a, err = New(h, cfg)
		if err != nil {
			return err
		}
		return a.Run(context.Background())
	})
	require.NoError(t, err)

	assert.Positive(t, a.World().Ticks())
	assert.Equal(t, "terminated", a.Scheduler().Phase().String())
	assert.Contains(t, log.joined(), "FPS : ")
}

func TestHUDDrawsText(t *testing.T) {
	h := newTestHost(t, 1)
	cfg := frozenConfig()
	cfg.HUD = true
	a, err := New(h, cfg)
	require.NoError(t, err)

	h.surf.Clear(wire3d.Black)
	a.renderFrame(0)
	assert.Positive(t, litIn(h.surf.fb, 0, 0, 300, 40), "HUD text in the top-left corner")

	cfg.HUD = false
	b, err := New(newTestHost(t, 1), cfg)
	require.NoError(t, err)
	b.host.Surface().Clear(wire3d.Black)
	b.renderFrame(0)
	assert.Zero(t, litIn(b.host.Surface().Framebuffer(), 0, 0, 300, 40))
}

func TestRunRecoversRenderPanic(t *testing.T) {
	h := newTestHost(t, 5)
	h.surf.panicOn = true
	a, err := New(h, frozenConfig())
	require.NoError(t, err)

	err = a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "draw failed")
	assert.Contains(t, h.log.joined(), "wirecube panic: draw failed")
	assert.False(t, a.Scheduler().Open())
	assert.Equal(t, loop.Terminated, a.Scheduler().Phase(), "simulation joined before the panic was recovered")
	assert.Equal(t, 1, h.surf.presents, "crash screen is presented once")
}

func TestTakeRunes(t *testing.T) {
	prefix, rest := takeRunes("hello world", 5)
	assert.Equal(t, "hello", prefix)
	assert.Equal(t, " world", rest)

	prefix, rest = takeRunes("héllo", 2)
	assert.Equal(t, "hé", prefix)
	assert.Equal(t, "llo", rest)

	prefix, rest = takeRunes("ab", 5)
	assert.Equal(t, "ab", prefix)
	assert.Empty(t, rest)
}

func TestDisplayerSetPixel(t *testing.T) {
	fb, err := hal.NewFramebuffer(4, 3)
	require.NoError(t, err)
	d := fbDisplayer{fb: fb}

	w, h := d.Size()
	assert.Equal(t, [2]int16{4, 3}, [2]int16{w, h})

	d.SetPixel(2, 1, color.RGBA{R: 0xFF, A: 0xFF})
	d.SetPixel(-1, 0, color.RGBA{R: 0xFF, A: 0xFF})
	d.SetPixel(4, 0, color.RGBA{R: 0xFF, A: 0xFF})
	d.SetPixel(0, 3, color.RGBA{R: 0xFF, A: 0xFF})

	off := 1*fb.StrideBytes() + 2*2
	assert.Equal(t, []byte{0x00, 0xF8}, fb.Buffer()[off:off+2])
	assert.Equal(t, 1, litIn(fb, 0, 0, 4, 3), "off-screen pixels are dropped")

	var empty fbDisplayer
	empty.SetPixel(0, 0, color.RGBA{})
}
