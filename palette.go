package styles

import "fmt"

// RGB is one palette entry.
type RGB struct {
	R, G, B uint8
}

// Palette is the ordered table of indexed colors beyond the eight
// reserved built-ins. Excel color index n resolves to Palette[n-8].
type Palette []RGB

// DefaultPalette returns the standard Excel indexed colors 8 through
// 63.
// https://github.com/ClosedXML/ClosedXML/wiki/Excel-Indexed-Colors
func DefaultPalette() Palette {
	return Palette{
		{0x00, 0x00, 0x00},
		{0xFF, 0xFF, 0xFF},
		{0xFF, 0x00, 0x00},
		{0x00, 0xFF, 0x00},
		{0x00, 0x00, 0xFF},
		{0xFF, 0xFF, 0x00},
		{0xFF, 0x00, 0xFF},
		{0x00, 0xFF, 0xFF},
		{0x80, 0x00, 0x00},
		{0x00, 0x80, 0x00},
		{0x00, 0x00, 0x80},
		{0x80, 0x80, 0x00},
		{0x80, 0x00, 0x80},
		{0x00, 0x80, 0x80},
		{0xC0, 0xC0, 0xC0},
		{0x80, 0x80, 0x80},
		{0x99, 0x99, 0xFF},
		{0x99, 0x33, 0x66},
		{0xFF, 0xFF, 0xCC},
		{0xCC, 0xFF, 0xFF},
		{0x66, 0x00, 0x66},
		{0xFF, 0x80, 0x80},
		{0x00, 0x66, 0xCC},
		{0xCC, 0xCC, 0xFF},
		{0x00, 0x00, 0x80},
		{0xFF, 0x00, 0xFF},
		{0xFF, 0xFF, 0x00},
		{0x00, 0xFF, 0xFF},
		{0x80, 0x00, 0x80},
		{0x80, 0x00, 0x00},
		{0x00, 0x80, 0x80},
		{0x00, 0x00, 0xFF},
		{0x00, 0xCC, 0xFF},
		{0xCC, 0xFF, 0xFF},
		{0xCC, 0xFF, 0xCC},
		{0xFF, 0xFF, 0x99},
		{0x99, 0xCC, 0xFF},
		{0xFF, 0x99, 0xCC},
		{0xCC, 0x99, 0xFF},
		{0xFF, 0xCC, 0x99},
		{0x33, 0x66, 0xFF},
		{0x33, 0xCC, 0xCC},
		{0x99, 0xCC, 0x00},
		{0xFF, 0xCC, 0x00},
		{0xFF, 0x99, 0x00},
		{0xFF, 0x66, 0x00},
		{0x66, 0x66, 0x99},
		{0x96, 0x96, 0x96},
		{0x00, 0x33, 0x66},
		{0x33, 0x99, 0x66},
		{0x00, 0x33, 0x00},
		{0x33, 0x33, 0x00},
		{0x99, 0x33, 0x00},
		{0x99, 0x33, 0x66},
		{0x33, 0x33, 0x99},
		{0x33, 0x33, 0x33},
	}
}

// paletteColorToHex resolves an Excel color index against the palette
// and formats it as a fully opaque ARGB string, e.g. "FF33CCCC".
// Indices below 8 are reserved built-ins that never reach the palette.
func paletteColorToHex(palette Palette, index int) (string, error) {
	pos := index - 8
	if pos < 0 || pos >= len(palette) {
		return "", &ContractError{
			Reason: fmt.Sprintf("color index %d outside palette of %d entries", index, len(palette)),
		}
	}
	c := palette[pos]
	return fmt.Sprintf("FF%02X%02X%02X", c.R, c.G, c.B), nil
}
