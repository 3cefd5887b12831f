package graynorm

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// sniffDelimiter returns the most likely delimiter rune for a CSV-like
// expression table, falling back to a comma. GrayNorm input files come out of
// spreadsheet exports in comma, semicolon, or tab flavors.
func sniffDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}
