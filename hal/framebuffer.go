package hal

import (
	"fmt"
	"image"
	"sync"
)

type memFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

// NewFramebuffer allocates an RGB565 framebuffer in memory.
func NewFramebuffer(width, height int) (Framebuffer, error) {
	fb, err := newMemFramebuffer(width, height)
	if err != nil {
		return nil, err
	}
	return fb, nil
}

func newMemFramebuffer(width, height int) (*memFramebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, width, height)
	}
	stride := width * 2
	return &memFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}, nil
}

func (f *memFramebuffer) Width() int          { return f.width }
func (f *memFramebuffer) Height() int         { return f.height }
func (f *memFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *memFramebuffer) StrideBytes() int    { return f.stride }
func (f *memFramebuffer) Buffer() []byte      { return f.buf }
func (f *memFramebuffer) Present() error      { return nil }

func (f *memFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := RGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *memFramebuffer) setPixel(x, y int, pixel uint16) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	off := y*f.stride + x*2
	f.buf[off] = byte(pixel)
	f.buf[off+1] = byte(pixel >> 8)
}

func (f *memFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// Image converts an RGB565 framebuffer into an RGBA image.
func Image(fb Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	if fb.Format() != PixelFormatRGB565 {
		return img
	}
	buf := fb.Buffer()
	for y := 0; y < fb.Height(); y++ {
		row := buf[y*fb.StrideBytes():]
		if len(row) > fb.Width()*2 {
			row = row[:fb.Width()*2]
		}
		expandRGB565(img.Pix[y*img.Stride:], row)
	}
	return img
}
