// Package graynorm reads RT-qPCR expression tables and prepares them for
// reference-gene stability ranking.
//
// Input files are delimited tables (delimiter is sniffed) with optional
// compression, led by directive rows of the form
//
//	# sampleid: Sample
//	# controls: concentration=0, tissue=root
//	# refgenes: geneA, geneB, geneC
//
// followed by a header row and one row of measurements per sample. The
// directives name the sample-ID column, the condition columns with their
// control (baseline) values, and optionally the candidate gene columns.
package graynorm

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/graynorm/graynorm/normalize"
)

// Input is a fully parsed data file: the raw table plus the role
// configuration extracted from the directive rows.
type Input struct {
	Headers []string
	Rows    [][]string

	SampleColumn     string
	ConditionColumns []string
	ControlValues    normalize.ConditionTuple
	GeneColumns      []string
}

// DirectiveError reports a malformed directive row.
type DirectiveError struct {
	Directive string
	Detail    string
}

func (e *DirectiveError) Error() string {
	return fmt.Sprintf("graynorm: directive %q: %s", e.Directive, e.Detail)
}

var (
	directiveRE = regexp.MustCompile(`^\s*#\s*(\w+)\s*:\s*(.+?)\s*$`)
	controlRE   = regexp.MustCompile(`\s*=\s*`)
)

// ReadInput opens, decompresses, and parses an expression table. The sampleid
// and controls directives are required; refgenes is optional since the
// candidate genes may instead be selected on the command line.
func ReadInput(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := maybeDecompress(f)
	if err != nil {
		return nil, err
	}
	// The whole decompressed table is held in memory: the delimiter sniffer
	// needs one pass and the CSV reader another, and decompressing readers
	// cannot seek.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return parseInput(data)
}

func parseInput(data []byte) (*Input, error) {
	// Directive rows would skew the delimiter statistics, so sniff on the
	// table section only.
	delim := sniffDelimiter(strings.NewReader(tableSection(string(data))))

	rdr := csv.NewReader(strings.NewReader(string(data)))
	rdr.Comma = delim
	rdr.FieldsPerRecord = -1 // directive rows are ragged
	rdr.LazyQuotes = true

	in := &Input{}
	for {
		row, err := rdr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		if blankRow(row) {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(row[0]), "#") {
			// The directive value may have been split across cells by the
			// delimiter; reassemble the original line before matching.
			if err := in.applyDirective(strings.Join(row, string(delim))); err != nil {
				return nil, err
			}
			continue
		}

		if in.Headers == nil {
			in.Headers = row
			continue
		}
		if len(row) != len(in.Headers) {
			return nil, fmt.Errorf("graynorm: data row %d has %d values, header has %d", len(in.Rows), len(row), len(in.Headers))
		}
		in.Rows = append(in.Rows, row)
	}

	if in.Headers == nil {
		return nil, fmt.Errorf("graynorm: no header row found")
	}
	if in.SampleColumn == "" {
		return nil, &normalize.ConfigError{Role: "sample ID"}
	}
	if len(in.ConditionColumns) == 0 {
		return nil, &normalize.ConfigError{Role: "control"}
	}

	return in, nil
}

func (in *Input) applyDirective(line string) error {
	match := directiveRE.FindStringSubmatch(line)
	if match == nil {
		// Plain comment row.
		return nil
	}
	key, value := match[1], match[2]

	switch key {
	case "sampleid":
		in.SampleColumn = value
	case "refgenes":
		in.GeneColumns = splitList(value)
	case "controls":
		for _, control := range splitList(value) {
			parts := controlRE.Split(control, 2)
			if len(parts) < 2 || parts[1] == "" {
				return &DirectiveError{
					Directive: "controls",
					Detail:    fmt.Sprintf("no control value for control parameter %q", control),
				}
			}
			in.ConditionColumns = append(in.ConditionColumns, parts[0])
			in.ControlValues = append(in.ControlValues, normalize.ParseConditionValue(parts[1]))
		}
	}

	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func tableSection(data string) string {
	var lines []string
	for _, line := range strings.Split(data, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
