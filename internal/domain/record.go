package domain

// Column names used by the pipeline. Everything else passes through.
const (
	ColMonth     = "MONTH"
	ColState     = "STATE"
	ColLongitude = "LONGITUD"
	ColLatitude  = "LATITUDE"

	// ColYear is added to reduced tables; it never appears in source files.
	ColYear = "year"
)

// Sentinel thresholds for unknown coordinates.
const (
	MaxKnownLongitude = 900.0
	MaxKnownLatitude  = 90.0
)

// Record is one accident row with the fields the pipeline interprets.
type Record struct {
	Month     int
	State     StateCode
	Longitude float64
	Latitude  float64

	// Extra holds every other column as parsed.
	Extra map[string]string
}

// HasKnownPosition reports whether neither coordinate is a FARS sentinel.
// NaN coordinates are treated as unknown.
func (r Record) HasKnownPosition() bool {
	return r.Longitude <= MaxKnownLongitude && r.Latitude <= MaxKnownLatitude
}
