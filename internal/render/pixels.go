package render

import (
	"image/color"

	"github.com/LucasUTNFRD/Conways/pkg/life"
)

// fillCellRGBA converts cell states into RGBA pixels in buf, one pixel per
// cell, using the on color for Alive cells and the off color otherwise.
func fillCellRGBA(buf []byte, cells []life.CellState, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == life.Alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
