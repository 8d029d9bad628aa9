package domain

import (
	"math"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColumnTypes = map[string]series.Type{
	ColMonth:     series.Int,
	ColState:     series.Int,
	ColLongitude: series.Float,
	ColLatitude:  series.Float,
}

func newTestTable(t *testing.T, rows [][]string) *YearTable {
	t.Helper()
	tbl, err := NewYearTable(dataframe.LoadRecords(rows, dataframe.WithTypes(testColumnTypes)))
	require.NoError(t, err)
	return tbl
}

func sampleRows() [][]string {
	return [][]string{
		{"STATE", "ST_CASE", "MONTH", "LATITUDE", "LONGITUD", "FATALS"},
		{"1", "10001", "1", "32.5", "-86.6", "1"},
		{"1", "10002", "2", "99.9999", "-86.1", "2"},
		{"48", "480001", "2", "30.2", "-97.7", "1"},
		{"48", "480002", "3", "31.0", "999.9999", "1"},
		{"6", "60001", "12", "34.0", "-118.2", "3"},
	}
}

func TestYearTable_Basics(t *testing.T) {
	tbl := newTestTable(t, sampleRows())

	assert.Equal(t, 5, tbl.Len())
	assert.Equal(t, []string{"STATE", "ST_CASE", "MONTH", "LATITUDE", "LONGITUD", "FATALS"}, tbl.Names())
	assert.True(t, tbl.HasColumn("FATALS"))
	assert.False(t, tbl.HasColumn("DAY"))
}

func TestYearTable_HasState(t *testing.T) {
	tbl := newTestTable(t, sampleRows())

	ok, err := tbl.HasState(48)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = tbl.HasState(2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestYearTable_FilterState(t *testing.T) {
	tbl := newTestTable(t, sampleRows())

	texas, err := tbl.FilterState(48)
	require.NoError(t, err)
	assert.Equal(t, 2, texas.Len())

	recs, err := texas.Records()
	require.NoError(t, err)
	for _, r := range recs {
		assert.Equal(t, StateCode(48), r.State)
	}

	none, err := tbl.FilterState(56)
	require.NoError(t, err)
	assert.Equal(t, 0, none.Len())
}

func TestYearTable_Records(t *testing.T) {
	tbl := newTestTable(t, sampleRows())

	recs, err := tbl.Records()
	require.NoError(t, err)
	require.Len(t, recs, 5)

	first := recs[0]
	assert.Equal(t, 1, first.Month)
	assert.Equal(t, StateCode(1), first.State)
	assert.Equal(t, -86.6, first.Longitude)
	assert.Equal(t, 32.5, first.Latitude)
	assert.Equal(t, map[string]string{"ST_CASE": "10001", "FATALS": "1"}, first.Extra)

	assert.True(t, recs[0].HasKnownPosition())
	assert.False(t, recs[1].HasKnownPosition(), "latitude sentinel")
	assert.False(t, recs[3].HasKnownPosition(), "longitude sentinel")
}

func TestYearTable_RecordsMissingColumn(t *testing.T) {
	tbl := newTestTable(t, [][]string{
		{"STATE", "MONTH"},
		{"1", "1"},
	})

	_, err := tbl.Records()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ColLongitude)
}

func TestYearTable_Reduce(t *testing.T) {
	tbl := newTestTable(t, sampleRows())

	reduced, err := tbl.Reduce(2014)
	require.NoError(t, err)

	assert.Equal(t, Year(2014), reduced.Year())
	assert.Equal(t, 5, reduced.Len())
	assert.Equal(t, []string{ColMonth, ColYear}, reduced.DataFrame().Names())

	want := [][]string{
		{ColMonth, ColYear},
		{"1", "2014"},
		{"2", "2014"},
		{"2", "2014"},
		{"3", "2014"},
		{"12", "2014"},
	}
	if diff := cmp.Diff(want, reduced.DataFrame().Records()); diff != "" {
		t.Errorf("reduced records mismatch (-want +got):\n%s", diff)
	}
}

func TestYearTable_ReduceWithoutMonth(t *testing.T) {
	tbl := newTestTable(t, [][]string{
		{"STATE", "LATITUDE"},
		{"1", "30.1"},
	})

	_, err := tbl.Reduce(2013)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ColMonth)
}

func TestRecord_HasKnownPosition(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64
		expected bool
	}{
		{"ordinary", -97.7, 30.2, true},
		{"boundary values are known", 900, 90, true},
		{"unknown longitude", 999.9999, 30.2, false},
		{"below longitude threshold", 888.8888, 30.2, true},
		{"below latitude threshold", -97.7, 88.8888, true},
		{"just over longitude threshold", 900.0001, 30.2, false},
		{"unknown latitude", -97.7, 99.9999, false},
		{"both unknown", 999.0, 99.0, false},
		{"NaN", math.NaN(), 30.2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{Longitude: tt.lon, Latitude: tt.lat}
			assert.Equal(t, tt.expected, r.HasKnownPosition())
		})
	}
}
