//go:build cgo

package hal

import (
	"errors"
	"image"

	"wirecube/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Width  int
	Height int
	Title  string

	// Scale multiplies the window size; the framebuffer keeps Width×Height.
	Scale int

	Logger Logger
}

// RunWindow opens a desktop window that displays the framebuffer and runs
// run on a separate goroutine. It blocks until the window has closed and run
// has returned. The close button and Escape raise the close event.
func RunWindow(cfg WindowConfig, run func(h Host) error) error {
	if cfg.Width == 0 && cfg.Height == 0 {
		cfg.Width, cfg.Height = DefaultWidth, DefaultHeight
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.Title == "" {
		cfg.Title = "3D Engine"
	}

	w := newWindowPresenter()
	h, err := newHostHAL(cfg.Logger, cfg.Width, cfg.Height, w)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, w: w, done: make(chan struct{})}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(true)

	var runErr error
	go func() {
		defer close(g.done)
		runErr = run(h)
	}()

	err = ebiten.RunGame(g)
	w.requestClose()
	<-g.done
	return errors.Join(err, runErr)
}

type hostGame struct {
	h       *hostHAL
	w       *windowPresenter
	done    chan struct{}
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
}

func (g *hostGame) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.w.requestClose()
	}
	select {
	case <-g.done:
		return ebiten.Termination
	default:
		return nil
	}
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.surf.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	if g.w.pending() {
		fb.snapshotRGB565(g.scratch)
		expandRGB565(g.img.Pix, g.scratch)
		g.fbImg.WritePixels(g.img.Pix)
		g.w.release()
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.surf.fb.width, g.h.surf.fb.height
}
