// Package domain models NHTSA Fatality Analysis Reporting System (FARS)
// accident data.
//
// # Data Source
//
// FARS publishes one accident file per calendar year. Files are distributed
// here as bzip2-compressed CSV named "accident_<year>.csv.bz2", one row per
// fatal crash. Only four columns matter to this package; every other column
// is carried through untouched:
//
//	MONTH     month of the crash, 1-12
//	STATE     FIPS-style numeric state code, e.g. 1 = Alabama, 48 = Texas
//	LONGITUD  decimal degrees longitude (the column name is truncated in the source)
//	LATITUDE  decimal degrees latitude
//
// # FARS Data Conventions
//
// Unknown coordinates:
//
//	FARS never leaves a coordinate blank. An unknown position is written as an
//	out-of-range sentinel instead, typically 999.9999 for longitude and
//	99.9999 for latitude. Only a longitude above 900 or a latitude above 90
//	counts as unknown, see [Record.HasKnownPosition]; every other value,
//	including 900 and 90 themselves, is plotted as given.
//
// Year keys:
//
//	Years arrive from users as numbers or numeric strings ("2013", 2013,
//	2013.0). [ParseYear] coerces them to a [Year]; [Filename] maps a year to
//	exactly one file name.
//
// # Tables
//
// A [YearTable] holds one parsed file. A [ReducedTable] keeps only
// (MONTH, year) and feeds [Summarize], which pivots the combined rows into a
// month-by-year [SummaryTable] of accident counts.
package domain
