package hal

import (
	"math"

	"wirecube/wire3d"
)

// presenter is the backend half of a surface: it decides what Present waits
// for and when the user has asked to close.
type presenter interface {
	present() error
	closeRequested() bool
}

type surface struct {
	fb *memFramebuffer
	p  presenter
}

func newSurface(fb *memFramebuffer, p presenter) *surface {
	return &surface{fb: fb, p: p}
}

func (s *surface) Framebuffer() Framebuffer { return s.fb }
func (s *surface) PollClose() bool          { return s.p.closeRequested() }
func (s *surface) Present() error           { return s.p.present() }

func (s *surface) Clear(c wire3d.Color) {
	s.fb.ClearRGB(c.R, c.G, c.B)
}

// DrawLine rasterizes a one-pixel line. The segment is clipped to the
// framebuffer first, so far off-screen or non-finite endpoints cost nothing.
func (s *surface) DrawLine(p0, p1 wire3d.Point2, c wire3d.Color) {
	x0, y0, x1, y1, ok := clipLine(
		float64(p0.X), float64(p0.Y), float64(p1.X), float64(p1.Y),
		0, 0, float64(s.fb.width), float64(s.fb.height),
	)
	if !ok {
		return
	}

	// The clip rectangle includes the far edges (the viewport maps NDC 1 to
	// exactly width and height); those land on the last row and column.
	w, h := s.fb.width-1, s.fb.height-1
	pixel := RGB565(c.R, c.G, c.B)
	s.fb.mu.Lock()
	defer s.fb.mu.Unlock()
	bresenham(round(x0, w), round(y0, h), round(x1, w), round(y1, h), func(x, y int) {
		s.fb.setPixel(x, y, pixel)
	})
}

func round(v float64, max int) int {
	i := int(math.Floor(v + 0.5))
	if i > max {
		return max
	}
	return i
}

func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// clipLine clips a segment to the rectangle [xmin,xmax]×[ymin,ymax]
// (Liang–Barsky). ok is false when nothing of the segment is inside.
func clipLine(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	for _, v := range [4]float64{x0, y0, x1, y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}
	dx := x1 - x0
	dy := y1 - y0
	t0, t1 := 0.0, 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
