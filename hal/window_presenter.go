package hal

import "sync"

// windowPresenter hands finished frames to the window's draw callback.
// present blocks until the next draw has copied the frame, so the render loop
// runs at the display refresh rate.
type windowPresenter struct {
	frames chan struct{}
	copied chan struct{}

	closeOnce sync.Once
	quit      chan struct{}
}

func newWindowPresenter() *windowPresenter {
	return &windowPresenter{
		frames: make(chan struct{}),
		copied: make(chan struct{}, 1),
		quit:   make(chan struct{}),
	}
}

func (w *windowPresenter) present() error {
	// Once closed, nothing draws any more; never hand a frame over.
	if w.closeRequested() {
		return nil
	}
	select {
	case w.frames <- struct{}{}:
	case <-w.quit:
		return nil
	}
	select {
	case <-w.copied:
	case <-w.quit:
	}
	return nil
}

// pending reports whether a frame is waiting to be copied. Called by draw.
func (w *windowPresenter) pending() bool {
	select {
	case <-w.frames:
		return true
	default:
		return false
	}
}

// release wakes the presenter after draw copied the frame. It never blocks
// the draw callback, even when a stale token is still buffered.
func (w *windowPresenter) release() {
	select {
	case w.copied <- struct{}{}:
	default:
	}
}

func (w *windowPresenter) closeRequested() bool {
	select {
	case <-w.quit:
		return true
	default:
		return false
	}
}

func (w *windowPresenter) requestClose() {
	w.closeOnce.Do(func() { close(w.quit) })
}
