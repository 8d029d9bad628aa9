// Package fixture writes synthetic FARS accident files. The generator backs
// cmd/genfixture and the package tests that need real bzip2 CSV input.
package fixture

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dsnet/compress/bzip2"

	"github.com/BFavetto/fars/internal/domain"
)

// Header mirrors the leading columns of a real FARS accident file.
var Header = []string{"STATE", "ST_CASE", "COUNTY", "DAY", "MONTH", "YEAR", "HOUR", "LATITUDE", "LONGITUD", "FATALS"}

// Row is one synthetic accident.
type Row struct {
	State     int
	Case      int
	County    int
	Day       int
	Month     int
	Hour      int
	Latitude  float64
	Longitude float64
	Fatals    int
}

// Sentinel coordinates as written by FARS for an unknown position.
const (
	UnknownLongitude = 999.9999
	UnknownLatitude  = 99.9999
)

// stateCentroid gives rough coordinates so generated points land in the right place.
var stateCentroid = map[int]domain.Point{
	1:  {Lon: -86.8, Lat: 32.8},
	6:  {Lon: -119.4, Lat: 37.2},
	12: {Lon: -81.7, Lat: 28.1},
	36: {Lon: -75.5, Lat: 42.9},
	48: {Lon: -99.3, Lat: 31.1},
}

// States lists the codes Generate draws from.
func States() []int {
	return []int{1, 6, 12, 36, 48}
}

// Generate returns n deterministic rows for the seed. About one row in
// thirty carries a sentinel coordinate.
func Generate(n int, seed uint64) []Row {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	states := States()
	rows := make([]Row, n)
	for i := range rows {
		state := states[r.IntN(len(states))]
		c := stateCentroid[state]
		row := Row{
			State:     state,
			Case:      state*10000 + i + 1,
			County:    1 + r.IntN(250),
			Day:       1 + r.IntN(28),
			Month:     1 + r.IntN(12),
			Hour:      r.IntN(24),
			Latitude:  c.Lat + (r.Float64()-0.5)*3,
			Longitude: c.Lon + (r.Float64()-0.5)*4,
			Fatals:    1 + r.IntN(3),
		}
		switch r.IntN(30) {
		case 0:
			row.Longitude = UnknownLongitude
		case 1:
			row.Latitude = UnknownLatitude
		}
		rows[i] = row
	}
	return rows
}

// Encode renders rows as bzip2-compressed CSV.
func Encode(year domain.Year, rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := bzip2.NewWriter(&buf, nil)
	if err != nil {
		return nil, fmt.Errorf("bzip2 writer: %w", err)
	}

	w := csv.NewWriter(zw)
	if err := w.Write(Header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.record(year)); err != nil {
			return nil, fmt.Errorf("write row %d: %w", row.Case, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close bzip2 writer: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteYear writes rows to dir/accident_<year>.csv.bz2 and returns the path.
func WriteYear(dir string, year domain.Year, rows []Row) (string, error) {
	data, err := Encode(year, rows)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, domain.Filename(year))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

func (r Row) record(year domain.Year) []string {
	return []string{
		strconv.Itoa(r.State),
		strconv.Itoa(r.Case),
		strconv.Itoa(r.County),
		strconv.Itoa(r.Day),
		strconv.Itoa(r.Month),
		strconv.Itoa(int(year)),
		strconv.Itoa(r.Hour),
		strconv.FormatFloat(r.Latitude, 'f', 4, 64),
		strconv.FormatFloat(r.Longitude, 'f', 4, 64),
		strconv.Itoa(r.Fatals),
	}
}
