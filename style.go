// styles is a package designed to help with writing the styles part of
// spreadsheets stored in the XLSX format used in recent versions of
// Microsoft's Excel spreadsheet.
//
// It turns a finalized table of cell-format definitions into the
// styles.xml document of an OOXML package. Assembling the surrounding
// workbook, worksheets and zip archive is the caller's business.
package styles

// FontScript selects the vertical alignment marker of a font, if any.
type FontScript int

const (
	ScriptNone FontScript = iota
	ScriptSuperscript
	ScriptSubscript
)

// Format is one distinct cell format used anywhere in the workbook.
// Cells reference it by its position in the sequence handed to
// Serialize, so the caller must keep that sequence stable.
//
// Formats are plain values; the serializer only reads them.
type Format struct {
	// NumFmtIndex is the number format id. Ids above
	// builtinNumFmtsCount are user-defined and carry their format
	// code in NumFmtCode; the rest are built in.
	NumFmtIndex int
	NumFmtCode  string

	// FontIndex is the position of this format's font in the
	// deduplicated font table. Meaningful only when HasFont is set.
	FontIndex int
	HasFont   bool

	Bold      bool
	Italic    bool
	Strikeout bool
	Outline   bool
	Shadow    bool
	Underline bool

	Script FontScript

	FontSize   float64
	FontName   string
	FontFamily int

	// FontScheme is only ever written for the default theme font,
	// see writeFont.
	FontScheme string

	// FontColor is an Excel indexed color (>= 8). nil selects the
	// theme default color.
	FontColor *int
}
