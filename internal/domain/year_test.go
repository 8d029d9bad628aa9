package domain

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	assert.Equal(t, "accident_2013.csv.bz2", Filename(2013))
	assert.Equal(t, "accident_1975.csv.bz2", Filename(1975))
}

func TestMakeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"int", 2013, "accident_2013.csv.bz2"},
		{"string", "2013", "accident_2013.csv.bz2"},
		{"string with spaces", " 2014 ", "accident_2014.csv.bz2"},
		{"integral float", 2015.0, "accident_2015.csv.bz2"},
		{"integral float string", "2015.0", "accident_2015.csv.bz2"},
		{"int64", int64(2016), "accident_2016.csv.bz2"},
		{"Year", Year(2017), "accident_2017.csv.bz2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MakeFilename(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMakeFilename_StringAndIntAgree(t *testing.T) {
	for _, y := range []int{1975, 2013, 2014, 2015, 2099} {
		fromInt, err := MakeFilename(y)
		require.NoError(t, err)
		fromString, err := MakeFilename(strconv.Itoa(y))
		require.NoError(t, err)
		assert.Equal(t, fromInt, fromString)
	}
}

func TestParseYear_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"word", "twenty"},
		{"empty", ""},
		{"fractional float", 2013.5},
		{"fractional string", "2013.5"},
		{"nil", nil},
		{"bool", true},
		{"slice", []int{2013}},
		{"max uint64", uint64(math.MaxUint64)},
		{"wide int64", int64(1 << 40)},
		{"wide uint", uint(1 << 40)},
		{"wide uint32", uint32(math.MaxUint32)},
		{"wide int", math.MinInt32 - 1},
		{"wide string", "1099511627776"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYear(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidYear)

			var coerce *CoercionError
			require.True(t, errors.As(err, &coerce))
			assert.Equal(t, "year", coerce.Field)
		})
	}
}

func TestParseStateCode(t *testing.T) {
	code, err := ParseStateCode("48")
	require.NoError(t, err)
	assert.Equal(t, StateCode(48), code)

	code, err = ParseStateCode(6)
	require.NoError(t, err)
	assert.Equal(t, StateCode(6), code)

	_, err = ParseStateCode("TX")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestErrorMessages(t *testing.T) {
	nf := &FileNotFoundError{Path: "data/accident_9999.csv.bz2"}
	assert.Contains(t, nf.Error(), "data/accident_9999.csv.bz2")
	assert.ErrorIs(t, nf, ErrFileNotFound)

	is := &InvalidStateError{State: 97}
	assert.Equal(t, "invalid STATE number: 97", is.Error())
	assert.ErrorIs(t, is, ErrInvalidState)
	assert.NotErrorIs(t, is, ErrFileNotFound)
}

func TestParseYear_WideIntegerKinds(t *testing.T) {
	for _, in := range []any{int64(2013), uint64(2013), uint(2013), uint32(2013), uint8(200)} {
		_, err := ParseYear(in)
		assert.NoError(t, err, "%T", in)
	}

	_, err := MakeFilename(uint64(math.MaxUint64))
	assert.ErrorIs(t, err, ErrInvalidYear)
}
