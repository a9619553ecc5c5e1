package styles

// Excel styles can reference number formats that are built-in, all of
// which have an id less than 164.
const builtinNumFmtsCount = 163

// The first id available for user-defined number formats.
const firstUserNumFmtID = builtinNumFmtsCount + 1

// Excel styles can reference number formats that are built-in, all of
// which have an id less than 164. This is a possibly incomplete list
// comprised of as many of them as I could find.
var builtInNumFmt = map[int]string{
	0:  "general",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	9:  "0%",
	10: "0.00%",
	11: "0.00e+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "mm-dd-yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm am/pm",
	19: "h:mm:ss am/pm",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yy h:mm",
	37: "#,##0 ;(#,##0)",
	38: "#,##0 ;[red](#,##0)",
	39: "#,##0.00;(#,##0.00)",
	40: "#,##0.00;[red](#,##0.00)",
	41: `_(* #,##0_);_(* \(#,##0\);_(* "-"_);_(@_)`,
	42: `_("$"* #,##0_);_("$* \(#,##0\);_("$"* "-"_);_(@_)`,
	43: `_(* #,##0.00_);_(* \(#,##0.00\);_(* "-"??_);_(@_)`,
	44: `_("$"* #,##0.00_);_("$"* \(#,##0.00\);_("$"* "-"??_);_(@_)`,
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mmss.0",
	48: "##0.0e+0",
	49: "@",
}

var builtInNumFmtInv = make(map[string]int, 40)

func init() {
	for k, v := range builtInNumFmt {
		builtInNumFmtInv[v] = k
	}
}

// BuiltInNumFmtID reports the built-in id of a format code, if the
// code is one of the predefined formats.
func BuiltInNumFmtID(formatCode string) (int, bool) {
	id, ok := builtInNumFmtInv[formatCode]
	return id, ok
}

// BuiltInNumFmtCode returns the format code of a built-in id, or ""
// when the id is not a known built-in.
func BuiltInNumFmtCode(id int) string {
	return builtInNumFmt[id]
}
