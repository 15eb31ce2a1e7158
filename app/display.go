package app

import (
	"image/color"

	"wirecube/hal"

	"tinygo.org/x/drivers"
)

// fbDisplayer lets tinyfont draw straight into an RGB565 framebuffer.
type fbDisplayer struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = fbDisplayer{}

func (d fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

// SetPixel ignores pixels off the framebuffer and non-RGB565 buffers.
func (d fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	w, h := d.Size()
	if x < 0 || y < 0 || x >= w || y >= h || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	off := int(y)*d.fb.StrideBytes() + 2*int(x)
	buf := d.fb.Buffer()
	if off+1 >= len(buf) {
		return
	}
	p := hal.RGB565(c.R, c.G, c.B)
	buf[off], buf[off+1] = byte(p), byte(p>>8)
}

func (d fbDisplayer) Display() error { return nil }
