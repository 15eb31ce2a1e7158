package hal

// RGB565 packs 8-bit channels into the framebuffer's 16-bit pixel.
func RGB565(r, g, b uint8) uint16 {
	return uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3
}

// expandRGB565 converts a packed little-endian RGB565 buffer into RGBA8888,
// scaling each channel back to the full 0..255 range.
func expandRGB565(dst, src []byte) {
	n := min(len(src)/2, len(dst)/4)
	for i := 0; i < n; i++ {
		p := uint16(src[2*i]) | uint16(src[2*i+1])<<8
		px := dst[4*i : 4*i+4 : 4*i+4]
		px[0] = uint8(uint32(p>>11) * 255 / 31)
		px[1] = uint8(uint32(p>>5&0x3F) * 255 / 63)
		px[2] = uint8(uint32(p&0x1F) * 255 / 31)
		px[3] = 0xFF
	}
}
