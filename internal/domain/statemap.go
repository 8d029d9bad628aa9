package domain

// Point is a plotted accident position.
type Point struct {
	Lon float64
	Lat float64
}

// Range is a closed coordinate interval.
type Range struct {
	Min float64
	Max float64
}

// StateMap is everything needed to draw one state's accidents for one year.
// Lon and Lat span exactly the points; they are zero when Points is empty.
type StateMap struct {
	State  StateCode
	Year   Year
	Lon    Range
	Lat    Range
	Points []Point
}

// SanitizeCoordinates keeps the records whose position is known and returns
// them as points, along with how many records were dropped.
func SanitizeCoordinates(records []Record) (points []Point, dropped int) {
	points = make([]Point, 0, len(records))
	for _, r := range records {
		if !r.HasKnownPosition() {
			dropped++
			continue
		}
		points = append(points, Point{Lon: r.Longitude, Lat: r.Latitude})
	}
	return points, dropped
}

// NewStateMap computes the coordinate ranges of already sanitized points.
func NewStateMap(state StateCode, year Year, points []Point) StateMap {
	m := StateMap{State: state, Year: year, Points: points}
	if len(points) == 0 {
		return m
	}
	m.Lon = Range{Min: points[0].Lon, Max: points[0].Lon}
	m.Lat = Range{Min: points[0].Lat, Max: points[0].Lat}
	for _, p := range points[1:] {
		m.Lon = m.Lon.extend(p.Lon)
		m.Lat = m.Lat.extend(p.Lat)
	}
	return m
}

func (r Range) extend(v float64) Range {
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
	return r
}
