package hal

type hostHAL struct {
	logger Logger
	surf   *surface
}

func newHostHAL(logger Logger, width, height int, p presenter) (*hostHAL, error) {
	fb, err := newMemFramebuffer(width, height)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewLogger(nil)
	}
	return &hostHAL{
		logger: logger,
		surf:   newSurface(fb, p),
	}, nil
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Surface() Surface { return h.surf }
