package domain

import (
	"fmt"
	"math"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// YearTable is one year's accident file as parsed, all columns kept.
type YearTable struct {
	df dataframe.DataFrame
}

// NewYearTable wraps a parsed DataFrame.
func NewYearTable(df dataframe.DataFrame) (*YearTable, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("year table: %w", df.Err)
	}
	return &YearTable{df: df}, nil
}

// DataFrame returns the underlying frame. Gota frames are copied on every
// operation, so callers cannot mutate the table through it.
func (t *YearTable) DataFrame() dataframe.DataFrame { return t.df }

func (t *YearTable) Len() int { return t.df.Nrow() }

func (t *YearTable) Names() []string { return t.df.Names() }

func (t *YearTable) HasColumn(name string) bool {
	return slices.Contains(t.df.Names(), name)
}

// Rows returns the table as strings, header first.
func (t *YearTable) Rows() [][]string { return t.df.Records() }

// HasState reports whether any row carries the given STATE code.
func (t *YearTable) HasState(code StateCode) (bool, error) {
	col, err := t.column(ColState)
	if err != nil {
		return false, err
	}
	for i := 0; i < col.Len(); i++ {
		if v, ok := intAt(col, i); ok && StateCode(v) == code {
			return true, nil
		}
	}
	return false, nil
}

// FilterState returns the rows whose STATE equals code.
func (t *YearTable) FilterState(code StateCode) (*YearTable, error) {
	if _, err := t.column(ColState); err != nil {
		return nil, err
	}
	filtered := t.df.Filter(dataframe.F{
		Colname:    ColState,
		Comparator: series.CompFunc,
		Comparando: func(el series.Element) bool {
			if el.IsNA() {
				return false
			}
			v, err := el.Int()
			return err == nil && StateCode(v) == code
		},
	})
	return NewYearTable(filtered)
}

// Records converts rows into typed Records. Unparseable MONTH or STATE cells
// become zero; unparseable coordinates become NaN and so count as unknown.
func (t *YearTable) Records() ([]Record, error) {
	month, err := t.column(ColMonth)
	if err != nil {
		return nil, err
	}
	state, err := t.column(ColState)
	if err != nil {
		return nil, err
	}
	lon, err := t.column(ColLongitude)
	if err != nil {
		return nil, err
	}
	lat, err := t.column(ColLatitude)
	if err != nil {
		return nil, err
	}

	var extras []series.Series
	for _, name := range t.df.Names() {
		switch name {
		case ColMonth, ColState, ColLongitude, ColLatitude:
		default:
			extras = append(extras, t.df.Col(name))
		}
	}

	records := make([]Record, t.df.Nrow())
	for i := range records {
		m, _ := intAt(month, i)
		s, _ := intAt(state, i)
		rec := Record{
			Month:     m,
			State:     StateCode(s),
			Longitude: floatAt(lon, i),
			Latitude:  floatAt(lat, i),
		}
		if len(extras) > 0 {
			rec.Extra = make(map[string]string, len(extras))
			for _, col := range extras {
				rec.Extra[col.Name] = col.Elem(i).String()
			}
		}
		records[i] = rec
	}
	return records, nil
}

// Reduce keeps only MONTH and tags every row with y in a "year" column.
func (t *YearTable) Reduce(y Year) (*ReducedTable, error) {
	if _, err := t.column(ColMonth); err != nil {
		return nil, err
	}
	years := make([]int, t.df.Nrow())
	for i := range years {
		years[i] = int(y)
	}
	reduced := t.df.Select([]string{ColMonth}).
		Mutate(series.New(years, series.Int, ColYear))
	if reduced.Err != nil {
		return nil, fmt.Errorf("reduce %d: %w", y, reduced.Err)
	}
	return &ReducedTable{year: y, df: reduced}, nil
}

func (t *YearTable) column(name string) (series.Series, error) {
	if !t.HasColumn(name) {
		return series.Series{}, fmt.Errorf("missing column %s", name)
	}
	return t.df.Col(name), nil
}

// ReducedTable is a YearTable cut down to (MONTH, year).
type ReducedTable struct {
	year Year
	df   dataframe.DataFrame
}

func (r *ReducedTable) Year() Year { return r.year }

func (r *ReducedTable) Len() int { return r.df.Nrow() }

func (r *ReducedTable) DataFrame() dataframe.DataFrame { return r.df }

func intAt(s series.Series, i int) (int, bool) {
	el := s.Elem(i)
	if el.IsNA() {
		return 0, false
	}
	v, err := el.Int()
	if err != nil {
		return 0, false
	}
	return v, true
}

func floatAt(s series.Series, i int) float64 {
	el := s.Elem(i)
	if el.IsNA() {
		return math.NaN()
	}
	return el.Float()
}
