package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Year identifies one FARS dataset partition.
type Year int

// StateCode is the numeric STATE value used by FARS.
type StateCode int

var errUnsupportedType = errors.New("unsupported type")

// ParseYear coerces an integer, integral float, or numeric string to a Year.
func ParseYear(v any) (Year, error) {
	n, err := coerceInt(v)
	if err != nil {
		return 0, &CoercionError{Field: "year", Input: v, Kind: ErrInvalidYear, Cause: err}
	}
	return Year(n), nil
}

// ParseStateCode coerces a state code the same way ParseYear coerces years.
func ParseStateCode(v any) (StateCode, error) {
	n, err := coerceInt(v)
	if err != nil {
		return 0, &CoercionError{Field: "state code", Input: v, Kind: ErrInvalidState, Cause: err}
	}
	return StateCode(n), nil
}

// Filename returns the data file name for a year, e.g. "accident_2013.csv.bz2".
// It performs no existence check.
func Filename(y Year) string {
	return fmt.Sprintf("accident_%d.csv.bz2", int(y))
}

// MakeFilename coerces v to a Year and returns its file name.
func MakeFilename(v any) (string, error) {
	y, err := ParseYear(v)
	if err != nil {
		return "", err
	}
	return Filename(y), nil
}

func coerceInt(v any) (int, error) {
	switch x := v.(type) {
	case Year:
		return int(x), nil
	case StateCode:
		return int(x), nil
	case int:
		return boundInt(int64(x))
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		return boundInt(x)
	case uint:
		return boundUint(uint64(x))
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		return boundUint(uint64(x))
	case uint64:
		return boundUint(x)
	case float32:
		return floatToInt(float64(x))
	case float64:
		return floatToInt(x)
	case string:
		return parseIntString(x)
	default:
		return 0, fmt.Errorf("%w %T", errUnsupportedType, v)
	}
}

func parseIntString(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return boundInt(n)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return floatToInt(f)
}

func floatToInt(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer: %v", f)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("out of range: %v", f)
	}
	return int(f), nil
}

// Years and state codes fit in int32; anything wider is a coercion error.
func boundInt(n int64) (int, error) {
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, fmt.Errorf("out of range: %d", n)
	}
	return int(n), nil
}

func boundUint(n uint64) (int, error) {
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("out of range: %d", n)
	}
	return int(n), nil
}
