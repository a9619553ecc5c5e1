package styles

import "fmt"

// Registry is the workbook-level format registry feeding Serialize.
// It keeps formats in first-use order (which fixes their cellXfs
// indices), deduplicates fonts, resolves format codes to number
// format ids, and keeps the font and number format totals in step
// with the records, so the counts handed to Serialize are correct by
// construction.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	formats []Format

	fontIndex map[string]int
	fontCount int

	numFmtIDs   map[string]int
	nextNumFmt  int
	numFmtCount int

	xfIndex map[string]int

	palette Palette
}

func NewRegistry() *Registry {
	return &Registry{
		fontIndex:  make(map[string]int),
		numFmtIDs:  make(map[string]int),
		nextNumFmt: firstUserNumFmtID,
		xfIndex:    make(map[string]int),
		palette:    DefaultPalette(),
	}
}

// Add registers a format and returns its cellXfs index. Identical
// formats share an index. The returned record's FontIndex and
// NumFmtIndex are filled in by the registry; any values the caller
// put there are ignored.
func (r *Registry) Add(f Format) int {
	hadFont := f.HasFont
	if f.HasFont {
		r.applyFontDefaults(&f)
		index, seen := r.addFont(f)
		f.FontIndex = index
		// Only the first record carrying a font emits it into the
		// font table; later ones reference it by index. Clearing
		// the flag keeps fontCount equal to the emitted entries.
		if seen {
			f.HasFont = false
		}
	} else {
		f.FontIndex = 0
	}
	if f.NumFmtCode != "" {
		f.NumFmtIndex = r.resolveNumFmt(f.NumFmtCode)
	}

	key := xfKey(f, hadFont)
	if index, ok := r.xfIndex[key]; ok {
		return index
	}
	if f.NumFmtIndex > builtinNumFmtsCount {
		r.numFmtCount++
	}
	index := len(r.formats)
	r.formats = append(r.formats, f)
	r.xfIndex[key] = index
	return index
}

// Excel's defaults are Calibri 11, family 2, minor scheme.
func (r *Registry) applyFontDefaults(f *Format) {
	if f.FontName == "" {
		f.FontName = "Calibri"
	}
	if f.FontSize == 0 {
		f.FontSize = 11
	}
	if f.FontFamily == 0 {
		f.FontFamily = 2
	}
	if f.FontScheme == "" {
		f.FontScheme = "minor"
	}
}

// addFont reports the font's table index and whether the font was
// already registered.
func (r *Registry) addFont(f Format) (int, bool) {
	key := fontKey(f)
	if index, ok := r.fontIndex[key]; ok {
		return index, true
	}
	index := r.fontCount
	r.fontIndex[key] = index
	r.fontCount++
	return index, false
}

// resolveNumFmt maps a format code to its id: built-in codes keep
// their built-in id, everything else gets a user-defined id allocated
// from 164 up in first-seen order.
func (r *Registry) resolveNumFmt(code string) int {
	if id, ok := builtInNumFmtInv[code]; ok {
		return id
	}
	if id, ok := r.numFmtIDs[code]; ok {
		return id
	}
	id := r.nextNumFmt
	r.numFmtIDs[code] = id
	r.nextNumFmt++
	return id
}

// SetPaletteColor overrides one indexed color. Valid indices run from
// 8 to 8+len(palette)-1, matching the lookup convention in Serialize.
func (r *Registry) SetPaletteColor(index int, c RGB) error {
	pos := index - 8
	if pos < 0 || pos >= len(r.palette) {
		return &ContractError{
			Reason: fmt.Sprintf("color index %d outside palette of %d entries", index, len(r.palette)),
		}
	}
	r.palette[pos] = c
	return nil
}

// Formats returns the registered records in cellXfs order.
func (r *Registry) Formats() []Format {
	return r.formats
}

func (r *Registry) FontCount() int {
	return r.fontCount
}

func (r *Registry) NumFmtCount() int {
	return r.numFmtCount
}

func (r *Registry) Palette() Palette {
	return r.palette
}

// Serialize writes the registry's current state through sink.
func (r *Registry) Serialize(sink Sink) error {
	return Serialize(r.formats, r.fontCount, r.numFmtCount, r.palette, sink)
}

func fontKey(f Format) string {
	return fmt.Sprintf("%t%t%t%t%t%t:%d:%v:%s:%d:%s:%v",
		f.Bold, f.Italic, f.Strikeout, f.Outline, f.Shadow, f.Underline,
		f.Script, f.FontSize, f.FontName, f.FontFamily, f.FontScheme,
		colorKey(f.FontColor))
}

// xfKey identifies a complete format once its font and number format
// are resolved: the deduplicated FontIndex stands in for the font
// fields. hadFont is the caller's flag before duplicate fonts were
// cleared, so re-adding an identical format maps to the same index.
func xfKey(f Format, hadFont bool) string {
	return fmt.Sprintf("%d:%t:%d", f.NumFmtIndex, hadFont, f.FontIndex)
}

func colorKey(c *int) string {
	if c == nil {
		return "theme"
	}
	return fmt.Sprintf("%d", *c)
}
