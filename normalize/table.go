package normalize

import (
	"fmt"
	"strconv"
	"strings"
)

// Config identifies each column's role and the control condition. Column
// names must match the table header exactly.
type Config struct {
	// SampleColumn holds the sample identifier and is excluded from numeric
	// computation.
	SampleColumn string

	// ConditionColumns hold the experimental-condition values, ordered.
	ConditionColumns []string

	// ControlValues designate the baseline condition, aligned to
	// ConditionColumns.
	ControlValues ConditionTuple

	// GeneColumns optionally names the candidate genes. When empty, gene
	// columns may instead be chosen by GeneIndices.
	GeneColumns []string

	// GeneIndices optionally selects candidate genes by 0-based header
	// position. Ignored when GeneColumns is set.
	GeneIndices []int
}

type tableRow struct {
	raw    []string
	values []float64 // aligned to headers; only meaningful at data columns
}

// Table is the in-memory dataset: sample rows, resolved column roles, and the
// condition-group index. It is populated through AddRow during load and
// read-only afterward.
type Table struct {
	headers   []string
	headerIdx map[string]int

	sampleIdx int
	condIdx   []int
	isData    []bool // per header column: numeric measurement, coerced at load

	geneNames []string
	geneIdx   []int

	controlValues ConditionTuple
	controlRows   []int

	rows   []tableRow
	groups []conditionGroup // distinct tuples with members, first-seen order
}

// conditionGroup pairs a distinct condition tuple with the rows carrying it.
// Lookup is by structural tuple equality, never by a formatted label, so text
// values containing the label separator cannot merge distinct groups.
type conditionGroup struct {
	tuple   ConditionTuple
	members []int
}

// NewTable validates the configured column roles against headers and returns
// an empty table ready for AddRow.
func NewTable(headers []string, cfg Config) (*Table, error) {
	headerIdx := make(map[string]int, len(headers))
	for i, h := range headers {
		headerIdx[h] = i
	}

	if cfg.SampleColumn == "" {
		return nil, &ConfigError{Role: "sample ID"}
	}
	sampleIdx, ok := headerIdx[cfg.SampleColumn]
	if !ok {
		return nil, &ConfigError{Role: "sample ID", Missing: []string{cfg.SampleColumn}}
	}

	if len(cfg.ConditionColumns) == 0 {
		return nil, &ConfigError{Role: "control"}
	}
	condIdx := make([]int, 0, len(cfg.ConditionColumns))
	var missing []string
	for _, name := range cfg.ConditionColumns {
		idx, ok := headerIdx[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		condIdx = append(condIdx, idx)
	}
	if len(missing) > 0 {
		return nil, &ConfigError{Role: "control", Missing: missing}
	}

	if len(cfg.ControlValues) != len(cfg.ConditionColumns) {
		return nil, fmt.Errorf("normalize: %d control values for %d condition columns", len(cfg.ControlValues), len(cfg.ConditionColumns))
	}

	isData := make([]bool, len(headers))
	for i := range headers {
		isData[i] = true
	}
	isData[sampleIdx] = false
	for _, idx := range condIdx {
		isData[idx] = false
	}

	for _, name := range cfg.GeneColumns {
		if _, ok := headerIdx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &ConfigError{Role: "genes", Missing: missing}
	}

	var geneIdx []int
	if len(cfg.GeneColumns) == 0 && len(cfg.GeneIndices) > 0 {
		for _, idx := range cfg.GeneIndices {
			if idx < 0 || idx >= len(headers) || !isData[idx] {
				return nil, &ConfigError{Role: "genes", Missing: []string{strconv.Itoa(idx + 1)}}
			}
		}
		geneIdx = append(geneIdx, cfg.GeneIndices...)
	}

	return &Table{
		headers:       append([]string(nil), headers...),
		headerIdx:     headerIdx,
		sampleIdx:     sampleIdx,
		condIdx:       condIdx,
		isData:        isData,
		geneNames:     append([]string(nil), cfg.GeneColumns...),
		geneIdx:       geneIdx,
		controlValues: cfg.ControlValues,
	}, nil
}

// AddRow ingests one sample row: coerces every data cell to a float, derives
// the row's condition tuple, and files the row into its condition group (and
// the control group when the tuple matches the control values).
func (t *Table) AddRow(raw []string) error {
	if len(raw) != len(t.headers) {
		return fmt.Errorf("normalize: row %d has %d values, header has %d", len(t.rows), len(raw), len(t.headers))
	}

	r := tableRow{
		raw:    append([]string(nil), raw...),
		values: make([]float64, len(raw)),
	}
	for i, cell := range raw {
		if !t.isData[i] {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return &InvalidValueError{Row: len(t.rows), Column: t.headers[i], Value: cell}
		}
		r.values[i] = v
	}

	tuple := make(ConditionTuple, 0, len(t.condIdx))
	for _, idx := range t.condIdx {
		tuple = append(tuple, ParseConditionValue(raw[idx]))
	}

	rowIdx := len(t.rows)
	if tuple.Equal(t.controlValues) {
		t.controlRows = append(t.controlRows, rowIdx)
	}

	if g := t.findGroup(tuple); g != nil {
		g.members = append(g.members, rowIdx)
	} else {
		t.groups = append(t.groups, conditionGroup{tuple: tuple, members: []int{rowIdx}})
	}
	t.rows = append(t.rows, r)

	return nil
}

func (t *Table) findGroup(tuple ConditionTuple) *conditionGroup {
	for i := range t.groups {
		if t.groups[i].tuple.Equal(tuple) {
			return &t.groups[i]
		}
	}
	return nil
}

// Headers returns the column names in file order.
func (t *Table) Headers() []string {
	return t.headers
}

// NrRows returns the number of sample rows.
func (t *Table) NrRows() int {
	return len(t.rows)
}

// SampleID returns the sample identifier of row i.
func (t *Table) SampleID(i int) string {
	return t.rows[i].raw[t.sampleIdx]
}

// Genes returns the candidate gene column names: the configured names when
// present, the index-selected names otherwise.
func (t *Table) Genes() ([]string, error) {
	if len(t.geneNames) > 0 {
		return t.geneNames, nil
	}
	if len(t.geneIdx) > 0 {
		names := make([]string, len(t.geneIdx))
		for i, idx := range t.geneIdx {
			names[i] = t.headers[idx]
		}
		return names, nil
	}
	return nil, ErrMissingGeneSpec
}

// ConditionColumns returns the header indices of the condition columns, in
// the configured order.
func (t *Table) ConditionColumns() []int {
	return t.condIdx
}

// ControlValues returns the configured control condition tuple.
func (t *Table) ControlValues() ConditionTuple {
	return t.controlValues
}

// ConditionGroups returns the distinct condition tuples in first-seen order.
func (t *Table) ConditionGroups() []ConditionTuple {
	tuples := make([]ConditionTuple, len(t.groups))
	for i, g := range t.groups {
		tuples[i] = g.tuple
	}
	return tuples
}

// NrConditions returns the number of distinct condition groups.
func (t *Table) NrConditions() int {
	return len(t.groups)
}

// GroupMembers returns the row indices whose condition tuple equals tuple.
func (t *Table) GroupMembers(tuple ConditionTuple) ([]int, error) {
	g := t.findGroup(tuple)
	if g == nil {
		return nil, &UnknownConditionError{Label: tuple.Label()}
	}
	return g.members, nil
}

// ControlRows returns the row indices belonging to the control group, in load
// order. The slice is empty when no row matched the control tuple.
func (t *Table) ControlRows() []int {
	return t.controlRows
}

// String renders the table's resolved roles and raw rows, tab-separated.
func (t *Table) String() string {
	var sb strings.Builder

	if genes, err := t.Genes(); err == nil {
		sb.WriteString("# genes: " + strings.Join(genes, ",") + "\n")
	}
	conds := make([]string, len(t.condIdx))
	for i, idx := range t.condIdx {
		conds[i] = strconv.Itoa(idx)
	}
	sb.WriteString("# condition columns: " + strings.Join(conds, ",") + "\n")
	ctrl := make([]string, len(t.controlRows))
	for i, idx := range t.controlRows {
		ctrl[i] = strconv.Itoa(idx)
	}
	sb.WriteString("# control rows: " + strings.Join(ctrl, ", ") + "\n")
	sb.WriteString(strings.Join(t.headers, "\t"))
	for _, r := range t.rows {
		sb.WriteString("\n" + strings.Join(r.raw, "\t"))
	}

	return sb.String()
}
