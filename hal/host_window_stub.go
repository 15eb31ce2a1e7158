//go:build !cgo

package hal

import "fmt"

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	Scale  int
	Logger Logger
}

func RunWindow(_ WindowConfig, _ func(h Host) error) error {
	return fmt.Errorf("hal: window mode requires cgo (build with CGO_ENABLED=1): %w", ErrNotImplemented)
}
