// Package mapplot draws state accident maps as PNG files with gonum/plot.
package mapplot

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/BFavetto/fars/internal/domain"
)

// Axis padding. A range narrower than minSpan (a single point, or points on
// one meridian) is widened to minSpan around its centre.
const (
	marginFraction = 0.05
	minSpan        = 1.0
)

var pointColor = color.RGBA{R: 200, G: 30, B: 30, A: 255}

// Canvas writes one PNG per (state, year) into a directory.
type Canvas struct {
	dir    string
	width  vg.Length
	height vg.Length
	logger *slog.Logger
}

// New creates a Canvas that saves width x height images under dir.
func New(dir string, width, height vg.Length, logger *slog.Logger) *Canvas {
	return &Canvas{dir: dir, width: width, height: height, logger: logger}
}

// Path returns where the map for state and year is written.
func (c *Canvas) Path(state domain.StateCode, year domain.Year) string {
	return filepath.Join(c.dir, fmt.Sprintf("accident_map_%d_%d.png", int(state), int(year)))
}

// Draw renders m and saves it. An existing file for the same state and year
// is replaced.
func (c *Canvas) Draw(ctx context.Context, m domain.StateMap) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := Plot(m)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create map dir: %w", err)
	}
	path := c.Path(m.State, m.Year)
	if err := p.Save(c.width, c.height, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	c.logger.DebugContext(ctx, "map saved", "path", path, "points", len(m.Points))
	return nil
}

// Plot builds the figure for m without saving it: a lon/lat grid framed to
// the points' ranges with one dot per accident.
func Plot(m domain.StateMap) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s accidents, %d", m.State.Name(), int(m.Year))
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	p.Add(plotter.NewGrid())

	if len(m.Points) > 0 {
		xys := make(plotter.XYs, len(m.Points))
		for i, pt := range m.Points {
			xys[i].X = pt.Lon
			xys[i].Y = pt.Lat
		}
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("scatter: %w", err)
		}
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(1.5)
		scatter.GlyphStyle.Color = pointColor
		p.Add(scatter)
	}

	p.X.Min, p.X.Max = pad(m.Lon)
	p.Y.Min, p.Y.Max = pad(m.Lat)
	return p, nil
}

func pad(r domain.Range) (lo, hi float64) {
	span := r.Max - r.Min
	if span < minSpan {
		mid := (r.Min + r.Max) / 2
		return mid - minSpan/2, mid + minSpan/2
	}
	margin := span * marginFraction
	return r.Min - margin, r.Max + margin
}
