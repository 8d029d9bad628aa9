package pipeline

import (
	"context"
	"fmt"

	"github.com/BFavetto/fars/internal/domain"
)

// RenderStateMap draws the accidents of one state in one year.
//
// Unlike LoadYears nothing is isolated here: a bad year, a missing file, or
// a state code absent from the data is returned to the caller. A state with
// no plottable accidents is logged and skipped without drawing; drawn
// reports whether the canvas was called.
func (p *Pipeline) RenderStateMap(ctx context.Context, state, year any) (drawn bool, err error) {
	code, err := domain.ParseStateCode(state)
	if err != nil {
		return false, err
	}
	y, err := domain.ParseYear(year)
	if err != nil {
		return false, err
	}

	table, err := p.loader.LoadYear(y)
	if err != nil {
		return false, fmt.Errorf("load year %d: %w", y, err)
	}

	known, err := table.HasState(code)
	if err != nil {
		return false, fmt.Errorf("year %d: %w", y, err)
	}
	if !known {
		return false, &domain.InvalidStateError{State: code}
	}

	subset, err := table.FilterState(code)
	if err != nil {
		return false, fmt.Errorf("filter state %d: %w", code, err)
	}
	if subset.Len() == 0 {
		p.logger.InfoContext(ctx, "no accidents to plot", "state", int(code), "year", int(y))
		return false, nil
	}

	records, err := subset.Records()
	if err != nil {
		return false, fmt.Errorf("state %d year %d: %w", code, y, err)
	}
	points, dropped := domain.SanitizeCoordinates(records)
	p.metrics.MapPointsSanitized.Add(float64(dropped))
	if len(points) == 0 {
		p.logger.InfoContext(ctx, "no accidents to plot",
			"state", int(code),
			"year", int(y),
			"unknown_positions", dropped,
		)
		return false, nil
	}

	m := domain.NewStateMap(code, y, points)
	if err := p.canvas.Draw(ctx, m); err != nil {
		return false, fmt.Errorf("draw state %d year %d: %w", code, y, err)
	}
	p.metrics.MapPointsPlotted.Set(float64(len(points)))
	p.logger.InfoContext(ctx, "state map drawn",
		"state", int(code),
		"year", int(y),
		"points", len(points),
		"unknown_positions", dropped,
	)
	return true, nil
}
