package sheets

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/schollz/closestmatch"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Table is a rectangular view over a sheet export: one promoted header row
// and the data rows below it. Every row has exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ReshapeOptions controls how a raw grid becomes a Table. Each sheet source
// has a fixed contract, so callers state exactly what they expect instead
// of auto-detecting.
type ReshapeOptions struct {
	// HeaderRow is the index of the grid row whose cells become column
	// labels. Rows above it are discarded.
	HeaderRow int
	// DropEmptyColumns removes columns whose every data cell is blank.
	// Sources read by position must leave this off to keep alignment.
	DropEmptyColumns bool
}

// Reshape promotes the configured grid row to column labels and returns the
// rows below it, padded to the header width. Duplicate labels are
// disambiguated with their positional index so columns stay addressable.
func Reshape(raw [][]string, opts ReshapeOptions) (Table, error) {
	if opts.HeaderRow < 0 || opts.HeaderRow >= len(raw) {
		return Table{}, fmt.Errorf("header row %d out of range (%d rows)", opts.HeaderRow, len(raw))
	}

	header := raw[opts.HeaderRow]
	width := len(header)

	columns := make([]string, width)
	for i, label := range header {
		columns[i] = strings.TrimSpace(label)
	}
	columns = DisambiguateColumns(columns)

	var rows [][]string
	for _, r := range raw[opts.HeaderRow+1:] {
		row := make([]string, width)
		copy(row, r)
		rows = append(rows, row)
	}

	t := Table{Columns: columns, Rows: rows}
	if opts.DropEmptyColumns {
		t = t.dropEmptyColumns()
	}
	return t, nil
}

// DisambiguateColumns makes labels unique. The first occurrence keeps its
// label; repeats get the positional index appended, so ["A","B","A"]
// becomes ["A","B","A_2"].
func DisambiguateColumns(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	out := make([]string, len(labels))
	for i, label := range labels {
		name := label
		if seen[name] {
			name = fmt.Sprintf("%s_%d", label, i)
		}
		seen[label] = true
		out[i] = name
	}
	return out
}

func (t Table) dropEmptyColumns() Table {
	var keep []int
	for c := range t.Columns {
		empty := true
		for _, row := range t.Rows {
			if strings.TrimSpace(row[c]) != "" {
				empty = false
				break
			}
		}
		if !empty {
			keep = append(keep, c)
		}
	}

	out := Table{Columns: make([]string, len(keep))}
	for i, c := range keep {
		out.Columns[i] = t.Columns[c]
	}
	for _, row := range t.Rows {
		nr := make([]string, len(keep))
		for i, c := range keep {
			nr[i] = row[c]
		}
		out.Rows = append(out.Rows, nr)
	}
	return out
}

// Col returns the index of the column with the exact given label, or -1.
func (t Table) Col(label string) int {
	for i, c := range t.Columns {
		if c == label {
			return i
		}
	}
	return -1
}

// Cell returns the cell at row/col, or "" when the column is missing.
func (t Table) Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// SliceColumns returns a positional column range [from, to) with new labels,
// for sources whose contract is column order rather than header text.
func (t Table) SliceColumns(from, to int, labels []string) (Table, error) {
	if to > len(t.Columns) || from < 0 || from >= to {
		return Table{}, fmt.Errorf("column slice [%d:%d] out of range (%d columns)", from, to, len(t.Columns))
	}
	if len(labels) != to-from {
		return Table{}, fmt.Errorf("got %d labels for %d columns", len(labels), to-from)
	}

	out := Table{Columns: labels}
	for _, row := range t.Rows {
		nr := make([]string, to-from)
		copy(nr, row[from:to])
		out.Rows = append(out.Rows, nr)
	}
	return out, nil
}

var nonAlnumRe = regexp.MustCompile(`[^A-Z0-9 ]+`)

// NormalizeKey uppercases a label and strips accents and punctuation, so
// "Descrição" and "DESCRICAO " compare equal.
func NormalizeKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	clean, _, err := transform.String(t, s)
	if err != nil {
		clean = s
	}
	clean = strings.ToUpper(clean)
	clean = nonAlnumRe.ReplaceAllString(clean, " ")
	return strings.Join(strings.Fields(clean), " ")
}

// PickColumn finds the first column whose normalized label contains any of
// the normalized keywords. Returns -1 when nothing matches.
func PickColumn(columns []string, keywords ...string) int {
	for i, col := range columns {
		nc := NormalizeKey(col)
		if nc == "" {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(nc, NormalizeKey(kw)) {
				return i
			}
		}
	}
	return -1
}

// PickColumnFuzzy is a fallback for headers that drifted too far for
// substring matching (typos, truncation). It picks the closest label by
// n-gram similarity, still requiring a minimum resemblance.
func PickColumnFuzzy(columns []string, keyword string) int {
	normalized := make([]string, len(columns))
	for i, col := range columns {
		normalized[i] = NormalizeKey(col)
	}

	cm := closestmatch.New(normalized, []int{3, 4})
	best := cm.Closest(NormalizeKey(keyword))
	if best == "" {
		return -1
	}
	for i, nc := range normalized {
		if nc == best {
			return i
		}
	}
	return -1
}
