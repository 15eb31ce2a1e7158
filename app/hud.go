package app

import (
	"fmt"
	"image/color"

	"wirecube/hal"
	"wirecube/loop"
	"wirecube/wire3d"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const hudMargin = 6

type hud struct {
	d     fbDisplayer
	font  tinyfont.Fonter
	lineH int16
	fg    color.RGBA
}

func newHUD(fb hal.Framebuffer) *hud {
	font := &proggy.TinySZ8pt7b
	return &hud{
		d:     fbDisplayer{fb: fb},
		font:  font,
		lineH: int16(font.GetYAdvance()),
		fg:    color.RGBA{R: 0x90, G: 0xE0, B: 0x90, A: 0xFF},
	}
}

func (h *hud) draw(r loop.Report, ticks uint64, st wire3d.FrameStats) {
	h.lines(
		r.String(),
		fmt.Sprintf("tick %d", ticks),
		fmt.Sprintf("tris %d drawn %d culled %d", st.Triangles, st.Drawn, st.Culled),
	)
}

func (h *hud) lines(lines ...string) {
	y := int16(hudMargin)
	for _, s := range lines {
		y += h.lineH
		tinyfont.WriteLine(h.d, h.font, hudMargin, y, s, h.fg)
	}
}
