package hal

import (
	"math"
	"testing"

	"wirecube/wire3d"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPresenter struct {
	presents int
	closed   bool
}

func (p *stubPresenter) present() error       { p.presents++; return nil }
func (p *stubPresenter) closeRequested() bool { return p.closed }

func newTestSurface(t *testing.T, w, h int) (*surface, *stubPresenter) {
	t.Helper()
	fb, err := newMemFramebuffer(w, h)
	require.NoError(t, err)
	p := &stubPresenter{}
	return newSurface(fb, p), p
}

func pixelAt(fb *memFramebuffer, x, y int) uint16 {
	off := y*fb.stride + x*2
	return uint16(fb.buf[off]) | uint16(fb.buf[off+1])<<8
}

func litPixels(fb *memFramebuffer) int {
	n := 0
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			if pixelAt(fb, x, y) != 0 {
				n++
			}
		}
	}
	return n
}

func TestNewFramebufferBadSize(t *testing.T) {
	_, err := NewFramebuffer(0, 10)
	assert.ErrorIs(t, err, ErrBadSize)
}

func TestSurfaceClear(t *testing.T) {
	s, _ := newTestSurface(t, 4, 3)
	s.Clear(wire3d.RGB(0xFF, 0, 0))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := pixelAt(s.fb, x, y); got != 0xF800 {
				t.Fatalf("pixel(%d,%d) = %#04x, want 0xf800", x, y, got)
			}
		}
	}
}

func TestSurfaceDrawLine(t *testing.T) {
	s, _ := newTestSurface(t, 16, 16)
	s.DrawLine(wire3d.Point2{X: 2, Y: 5}, wire3d.Point2{X: 9, Y: 5}, wire3d.White)

	assert.Equal(t, 8, litPixels(s.fb))
	for x := 2; x <= 9; x++ {
		assert.Equal(t, uint16(0xFFFF), pixelAt(s.fb, x, 5), "x=%d", x)
	}

	s.Clear(wire3d.Black)
	s.DrawLine(wire3d.Point2{X: 0, Y: 0}, wire3d.Point2{X: 15, Y: 15}, wire3d.White)
	assert.Equal(t, 16, litPixels(s.fb))
	assert.NotZero(t, pixelAt(s.fb, 7, 7))
}

func TestSurfaceDrawLineClips(t *testing.T) {
	s, _ := newTestSurface(t, 10, 10)

	// Entirely off-screen.
	s.DrawLine(wire3d.Point2{X: -50, Y: -5}, wire3d.Point2{X: -1, Y: 40}, wire3d.White)
	assert.Zero(t, litPixels(s.fb))

	// Non-finite endpoints.
	nan := wire3d.Scalar(math.NaN())
	s.DrawLine(wire3d.Point2{X: nan, Y: 1}, wire3d.Point2{X: 3, Y: 3}, wire3d.White)
	assert.Zero(t, litPixels(s.fb))

	// Crossing the whole buffer from far outside draws exactly one row.
	s.Clear(wire3d.Black)
	s.DrawLine(wire3d.Point2{X: -1e6, Y: 4}, wire3d.Point2{X: 1e6, Y: 4}, wire3d.White)
	assert.Equal(t, 10, litPixels(s.fb))

	// The viewport maps NDC 1 to exactly width/height; that edge is clipped in.
	s.Clear(wire3d.Black)
	s.DrawLine(wire3d.Point2{X: 10, Y: 10}, wire3d.Point2{X: 10, Y: 10}, wire3d.White)
	assert.NotZero(t, pixelAt(s.fb, 9, 9))
}

func TestClipLine(t *testing.T) {
	x0, y0, x1, y1, ok := clipLine(-5, 5, 15, 5, 0, 0, 9, 9)
	require.True(t, ok)
	assert.Equal(t, [4]float64{0, 5, 9, 5}, [4]float64{x0, y0, x1, y1})

	_, _, _, _, ok = clipLine(-5, -5, -1, -1, 0, 0, 9, 9)
	assert.False(t, ok)

	_, _, _, _, ok = clipLine(math.Inf(1), 0, 1, 1, 0, 0, 9, 9)
	assert.False(t, ok)
}

func TestSurfacePresentAndPoll(t *testing.T) {
	s, p := newTestSurface(t, 2, 2)
	require.NoError(t, s.Present())
	assert.Equal(t, 1, p.presents)
	assert.False(t, s.PollClose())
	p.closed = true
	assert.True(t, s.PollClose())
}

func TestImage(t *testing.T) {
	fb, err := NewFramebuffer(3, 2)
	require.NoError(t, err)
	fb.ClearRGB(0xFF, 0xFF, 0xFF)

	img := Image(fb)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
	c := img.RGBAAt(2, 1)
	assert.Equal(t, [4]uint8{0xFF, 0xFF, 0xFF, 0xFF}, [4]uint8{c.R, c.G, c.B, c.A})
}
