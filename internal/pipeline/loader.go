package pipeline

import (
	"context"
	"fmt"

	"github.com/BFavetto/fars/internal/domain"
)

// YearResult is the outcome for one requested year: either a reduced table
// or the error that kept the year out of the batch.
type YearResult struct {
	Input any
	Year  domain.Year
	Table *domain.ReducedTable
	Err   error
}

// OK reports whether the year loaded.
func (r YearResult) OK() bool { return r.Err == nil }

// LoadYears loads every year independently and reduces each to (MONTH, year).
// A year that cannot be coerced, found, or reduced is logged as a warning and
// left as a nil-Table slot; the rest of the batch is unaffected. Results are
// in input order.
func (p *Pipeline) LoadYears(ctx context.Context, years []any) []YearResult {
	results := make([]YearResult, len(years))
	for i, input := range years {
		res := p.loadOne(input)
		if res.Err != nil {
			p.logger.WarnContext(ctx, "invalid year",
				"year", fmt.Sprint(input),
				"error", res.Err,
			)
			p.metrics.YearLoadFailures.Inc()
		} else {
			p.metrics.YearsLoaded.Inc()
		}
		results[i] = res
	}
	return results
}

func (p *Pipeline) loadOne(input any) YearResult {
	res := YearResult{Input: input}

	y, err := domain.ParseYear(input)
	if err != nil {
		res.Err = err
		return res
	}
	res.Year = y

	table, err := p.loader.LoadYear(y)
	if err != nil {
		res.Err = fmt.Errorf("%w %d: %w", domain.ErrInvalidYear, y, err)
		return res
	}

	reduced, err := table.Reduce(y)
	if err != nil {
		res.Err = fmt.Errorf("%w %d: %w", domain.ErrInvalidYear, y, err)
		return res
	}
	res.Table = reduced
	return res
}
