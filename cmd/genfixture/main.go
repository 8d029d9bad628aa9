// Command genfixture writes synthetic FARS accident files for local runs.
//
// Usage:
//
//	go run ./cmd/genfixture -out data -years 2013,2014,2015 -rows 5000
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/BFavetto/fars/internal/domain"
	"github.com/BFavetto/fars/internal/fixture"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", ".", "directory to write accident_<year>.csv.bz2 files into")
	yearsFlag := flag.String("years", "2013,2014,2015", "comma-separated years")
	rows := flag.Int("rows", 1000, "rows per year")
	seed := flag.Uint64("seed", 1, "random seed; each year offsets it by its index")
	flag.Parse()

	if *rows < 0 {
		return fmt.Errorf("-rows must be non-negative")
	}

	years, err := parseYears(*yearsFlag)
	if err != nil {
		return err
	}

	for i, y := range years {
		path, err := fixture.WriteYear(*out, y, fixture.Generate(*rows, *seed+uint64(i)))
		if err != nil {
			return fmt.Errorf("year %d: %w", y, err)
		}
		log.Printf("%s: %d rows", path, *rows)
	}
	return nil
}

func parseYears(s string) ([]domain.Year, error) {
	var years []domain.Year
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		y, err := domain.ParseYear(part)
		if err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	if len(years) == 0 {
		return nil, fmt.Errorf("no years given")
	}
	return years, nil
}
