package domain

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"text/tabwriter"

	"github.com/go-gota/gota/dataframe"
)

// SummaryTable counts accidents per (month, year). Rows are months with data
// in at least one year, columns are the years that contributed rows.
type SummaryTable struct {
	months []int
	years  []Year
	counts map[int]map[Year]int
}

// Summarize concatenates the reduced tables, skipping nil entries, and
// pivots the (year, month) row counts into a SummaryTable. Rows with an
// unparseable MONTH are not counted. With no usable tables the result is an
// empty table.
func Summarize(tables ...*ReducedTable) (*SummaryTable, error) {
	var (
		combined dataframe.DataFrame
		n        int
	)
	for _, t := range tables {
		if t == nil {
			continue
		}
		if n == 0 {
			combined = t.df
		} else {
			combined = combined.RBind(t.df)
		}
		n++
	}

	counts := make(map[int]map[Year]int)
	if n == 0 {
		return newSummaryTable(counts), nil
	}
	if combined.Err != nil {
		return nil, fmt.Errorf("combine reduced tables: %w", combined.Err)
	}

	months := combined.Col(ColMonth)
	years := combined.Col(ColYear)
	for i := 0; i < combined.Nrow(); i++ {
		m, ok := intAt(months, i)
		if !ok {
			continue
		}
		y, ok := intAt(years, i)
		if !ok {
			continue
		}
		byYear, ok := counts[m]
		if !ok {
			byYear = make(map[Year]int)
			counts[m] = byYear
		}
		byYear[Year(y)]++
	}
	return newSummaryTable(counts), nil
}

func newSummaryTable(counts map[int]map[Year]int) *SummaryTable {
	seen := make(map[Year]struct{})
	for _, byYear := range counts {
		for y := range byYear {
			seen[y] = struct{}{}
		}
	}
	return &SummaryTable{
		months: slices.Sorted(maps.Keys(counts)),
		years:  slices.Sorted(maps.Keys(seen)),
		counts: counts,
	}
}

// Months returns the row keys in ascending order.
func (t *SummaryTable) Months() []int { return slices.Clone(t.months) }

// Years returns the column keys in ascending order.
func (t *SummaryTable) Years() []Year { return slices.Clone(t.years) }

// Len returns the number of month rows.
func (t *SummaryTable) Len() int { return len(t.months) }

// Empty reports whether no year contributed any rows.
func (t *SummaryTable) Empty() bool { return len(t.months) == 0 }

// Count returns the accident count for a cell. ok is false when that
// (month, year) combination had no rows.
func (t *SummaryTable) Count(month int, y Year) (n int, ok bool) {
	n, ok = t.counts[month][y]
	return n, ok
}

// Records materializes the table: a header row (MONTH, years...) followed by
// one row per month. Absent cells are empty strings.
func (t *SummaryTable) Records() [][]string {
	header := make([]string, 0, len(t.years)+1)
	header = append(header, ColMonth)
	for _, y := range t.years {
		header = append(header, strconv.Itoa(int(y)))
	}

	out := make([][]string, 0, len(t.months)+1)
	out = append(out, header)
	for _, m := range t.months {
		row := make([]string, 0, len(t.years)+1)
		row = append(row, strconv.Itoa(m))
		for _, y := range t.years {
			if n, ok := t.Count(m, y); ok {
				row = append(row, strconv.Itoa(n))
			} else {
				row = append(row, "")
			}
		}
		out = append(out, row)
	}
	return out
}

// WriteText prints the table with aligned columns.
func (t *SummaryTable) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, row := range t.Records() {
		for i, cell := range row {
			if i > 0 {
				if _, err := io.WriteString(tw, "\t"); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(tw, cell); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(tw, "\n"); err != nil {
			return err
		}
	}
	return tw.Flush()
}
