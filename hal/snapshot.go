package hal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// WriteBMP encodes the current framebuffer contents as a BMP image.
func WriteBMP(w io.Writer, fb Framebuffer) error {
	return bmp.Encode(w, Image(fb))
}

func writeSnapshot(path string, fb Framebuffer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("hal: snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("hal: snapshot: %w", cerr)
		}
	}()
	if err := WriteBMP(f, fb); err != nil {
		return fmt.Errorf("hal: snapshot %s: %w", path, err)
	}
	return nil
}
