package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// DefaultPalette colours healthy, infected and padding cells, indexed by the
// Cell* constants.
func DefaultPalette() []color.RGBA {
	return []color.RGBA{
		CellHealthy:  {R: 66, G: 135, B: 245, A: 255},
		CellInfected: {R: 220, G: 50, B: 47, A: 255},
		CellPadding:  {R: 16, G: 16, B: 20, A: 255},
	}
}
