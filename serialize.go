package styles

import (
	"fmt"
	"strconv"
)

const styleSheetNamespace = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"

// Serialize writes the complete styleSheet document for the given
// format table through sink.
//
// formats must be in cellXfs order: the position of a record fixes the
// xf index the rest of the package references. fontCount and
// numFmtCount are the caller's precomputed totals of records with
// HasFont set and records with a user-defined number format; they are
// written into the wrapper count attributes as given, not recounted.
//
// The pass is strictly linear and keeps no state between calls. Any
// sink failure aborts the rest of the document; the caller discards
// whatever was written.
func Serialize(formats []Format, fontCount, numFmtCount int, palette Palette, sink Sink) error {
	e := &emitter{sink: sink}

	e.declaration()
	e.start("styleSheet", Attr{"xmlns", styleSheetNamespace})

	writeNumFmts(e, formats, numFmtCount)
	writeFonts(e, formats, fontCount, palette)
	writeFills(e)
	writeBorders(e)
	writeCellStyleXfs(e)
	writeCellXfs(e, formats)
	writeCellStyles(e)
	writeDxfs(e)
	writeTableStyles(e)

	e.end("styleSheet")
	return e.err
}

// emitter latches the first error so the fixed emission sequence can
// read top to bottom without per-call plumbing. After a failure no
// further sink calls are made.
type emitter struct {
	sink Sink
	err  error
}

func (e *emitter) declaration() {
	if e.err != nil {
		return
	}
	if err := e.sink.WriteDeclaration(); err != nil {
		e.err = &SinkError{Element: "xml declaration", Err: err}
	}
}

func (e *emitter) start(name string, attrs ...Attr) {
	if e.err != nil {
		return
	}
	if err := e.sink.WriteStartTag(name, attrs...); err != nil {
		e.err = &SinkError{Element: name, Err: err}
	}
}

func (e *emitter) empty(name string, attrs ...Attr) {
	if e.err != nil {
		return
	}
	if err := e.sink.WriteEmptyTag(name, attrs...); err != nil {
		e.err = &SinkError{Element: name, Err: err}
	}
}

func (e *emitter) end(name string) {
	if e.err != nil {
		return
	}
	if err := e.sink.WriteEndTag(name); err != nil {
		e.err = &SinkError{Element: name, Err: err}
	}
}

func (e *emitter) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

func countAttr(n int) Attr {
	return Attr{"count", strconv.Itoa(n)}
}

// numFmts carries only the user-defined formats; built-in ids stay
// implicit. The block is dropped entirely when there are none.
func writeNumFmts(e *emitter, formats []Format, numFmtCount int) {
	if numFmtCount == 0 {
		return
	}
	e.start("numFmts", countAttr(numFmtCount))
	for _, f := range formats {
		if f.NumFmtIndex > builtinNumFmtsCount {
			e.empty("numFmt",
				Attr{"numFmtId", strconv.Itoa(f.NumFmtIndex)},
				Attr{"formatCode", f.NumFmtCode})
		}
	}
	e.end("numFmts")
}

func writeFonts(e *emitter, formats []Format, fontCount int, palette Palette) {
	e.start("fonts", countAttr(fontCount))
	for _, f := range formats {
		if !f.HasFont {
			continue
		}
		writeFont(e, f, palette)
	}
	e.end("fonts")
}

// writeFont emits one font element. Sub-element order is mandated by
// the schema: style markers, vertAlign, size, color, name, family,
// scheme.
func writeFont(e *emitter, f Format, palette Palette) {
	e.start("font")
	if f.Bold {
		e.empty("b")
	}
	if f.Italic {
		e.empty("i")
	}
	if f.Strikeout {
		e.empty("strike")
	}
	if f.Outline {
		e.empty("outline")
	}
	if f.Shadow {
		e.empty("shadow")
	}
	if f.Underline {
		e.empty("u")
	}

	switch f.Script {
	case ScriptNone:
	case ScriptSuperscript:
		e.empty("vertAlign", Attr{"val", "superscript"})
	case ScriptSubscript:
		e.empty("vertAlign", Attr{"val", "subscript"})
	default:
		e.fail(&ContractError{Reason: fmt.Sprintf("unknown font script %d", f.Script)})
		return
	}

	e.empty("sz", Attr{"val", strconv.FormatFloat(f.FontSize, 'f', -1, 64)})

	if f.FontColor != nil {
		rgb, err := paletteColorToHex(palette, *f.FontColor)
		if err != nil {
			e.fail(err)
			return
		}
		e.empty("color", Attr{"rgb", rgb})
	} else {
		e.empty("color", Attr{"theme", "1"})
	}

	e.empty("name", Attr{"val", f.FontName})
	e.empty("family", Attr{"val", strconv.Itoa(f.FontFamily)})

	// The scheme element is only meaningful for the default theme
	// font, hence the literal name match. Excel does the same.
	if f.FontName == "Calibri" {
		e.empty("scheme", Attr{"val", f.FontScheme})
	}
	e.end("font")
}

// Excel wants the none and gray125 fills defined up front, always.
func writeFills(e *emitter) {
	e.start("fills", countAttr(2))
	for _, pattern := range []string{"none", "gray125"} {
		e.start("fill")
		e.empty("patternFill", Attr{"patternType", pattern})
		e.end("fill")
	}
	e.end("fills")
}

// To get borders to work correctly in Excel, you have to always start
// with an empty set of border lines.
func writeBorders(e *emitter) {
	e.start("borders", countAttr(1))
	e.start("border")
	e.empty("left")
	e.empty("right")
	e.empty("top")
	e.empty("bottom")
	e.empty("diagonal")
	e.end("border")
	e.end("borders")
}

// The 0th style xf is required by the standard.
func writeCellStyleXfs(e *emitter) {
	e.start("cellStyleXfs", countAttr(1))
	e.empty("xf",
		Attr{"numFmtId", "0"},
		Attr{"fontId", "0"},
		Attr{"fillId", "0"},
		Attr{"borderId", "0"})
	e.end("cellStyleXfs")
}

func writeCellXfs(e *emitter, formats []Format) {
	e.start("cellXfs", countAttr(len(formats)))
	for _, f := range formats {
		attrs := []Attr{
			{"numFmtId", strconv.Itoa(f.NumFmtIndex)},
			{"fontId", strconv.Itoa(f.FontIndex)},
			{"fillId", "0"},
			{"borderId", "0"},
			{"xfId", "0"},
		}
		if f.NumFmtIndex > 0 {
			attrs = append(attrs, Attr{"applyNumberFormat", "1"})
		}
		if f.HasFont && f.FontIndex > 0 {
			attrs = append(attrs, Attr{"applyFont", "1"})
		}
		e.empty("xf", attrs...)
	}
	e.end("cellXfs")
}

func writeCellStyles(e *emitter) {
	e.start("cellStyles", countAttr(1))
	e.empty("cellStyle",
		Attr{"name", "Normal"},
		Attr{"xfId", "0"},
		Attr{"builtinId", "0"})
	e.end("cellStyles")
}

func writeDxfs(e *emitter) {
	e.empty("dxfs", countAttr(0))
}

func writeTableStyles(e *emitter) {
	e.empty("tableStyles",
		countAttr(0),
		Attr{"defaultTableStyle", "TableStyleMedium9"},
		Attr{"defaultPivotStyle", "PivotStyleLight16"})
}
