package pipeline

import (
	"context"

	"github.com/BFavetto/fars/internal/domain"
)

// SummarizeYears loads the years and counts accidents per month and year.
// Failed years are skipped; if none load, the result is an empty table.
func (p *Pipeline) SummarizeYears(ctx context.Context, years []any) (*domain.SummaryTable, error) {
	results := p.LoadYears(ctx, years)

	tables := make([]*domain.ReducedTable, 0, len(results))
	for _, r := range results {
		if r.OK() {
			tables = append(tables, r.Table)
		}
	}
	if len(tables) == 0 {
		p.logger.WarnContext(ctx, "no valid years loaded", "requested", len(years))
	}

	summary, err := domain.Summarize(tables...)
	if err != nil {
		return nil, err
	}
	p.logger.InfoContext(ctx, "years summarized",
		"requested", len(years),
		"loaded", len(tables),
		"months", summary.Len(),
	)
	return summary, nil
}
