package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// recoverPanic turns a panic on the render goroutine into an error. The panic
// and its stack go to the log and, as far as they fit, onto a crash screen.
func (a *App) recoverPanic(err *error) {
	v := recover()
	if v == nil {
		return
	}
	a.sched.Close()

	stack := debug.Stack()
	a.log.WriteLineString(fmt.Sprintf("wirecube panic: %v", v))
	lines := []string{"wirecube panic:", fmt.Sprintf("%v", v), "stack:"}
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		a.log.WriteLineString(line)
		lines = append(lines, line)
	}

	a.drawCrashScreen(lines)
	*err = fmt.Errorf("app: render panic: %v", v)
}

func (a *App) drawCrashScreen(lines []string) {
	surf := a.host.Surface()
	fb := surf.Framebuffer()
	fb.ClearRGB(255, 255, 255)

	font := &proggy.TinySZ8pt7b
	lineH := int16(font.GetYAdvance())
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 || lineH <= 0 {
		_ = surf.Present()
		return
	}

	d := fbDisplayer{fb: fb}
	fg := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	cols := int16(fb.Width()) / fontWidth
	if cols <= 0 {
		cols = 1
	}

	y := lineH
	maxH := int16(fb.Height())
	for _, line := range lines {
		for len(line) > 0 && y <= maxH {
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, y, chunk, fg)
			y += lineH
			line = strings.TrimLeft(rest, " ")
		}
		if y > maxH {
			break
		}
	}
	_ = surf.Present()
}

// takeRunes splits s after its first n runes.
func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 {
		return "", s
	}
	var count int16
	for i := range s {
		if count == n {
			return s[:i], s[i:]
		}
		count++
	}
	return s, ""
}
