package output

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/rpgo/takehome/internal/domain"
	"github.com/samber/lo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

const (
	plotWidth  = 10 * vg.Inch
	plotHeight = 6 * vg.Inch
)

var (
	bluePoint = color.RGBA{R: 0x1f, G: 0x3f, B: 0xd4, A: 0xff}
	redPoint  = color.RGBA{R: 0xe0, G: 0x10, B: 0x10, A: 0xff}
	bandFill  = color.NRGBA{R: 0xff, A: 0x4d}
)

// PNGFormatter renders the chart as a PNG image.
type PNGFormatter struct{}

func (PNGFormatter) Name() string { return "png" }

func (PNGFormatter) Format(r *Report) ([]byte, error) {
	return renderPlot(r, func() canvasWriter {
		return vgimg.PngCanvas{Canvas: vgimg.New(plotWidth, plotHeight)}
	})
}

// SVGFormatter renders the chart as an SVG document.
type SVGFormatter struct{}

func (SVGFormatter) Name() string { return "svg" }

func (SVGFormatter) Format(r *Report) ([]byte, error) {
	return renderPlot(r, func() canvasWriter {
		return vgsvg.New(plotWidth, plotHeight)
	})
}

type canvasWriter interface {
	vg.CanvasSizer
	io.WriterTo
}

// oneDecimalTicks relabels the default ticks with one decimal place.
type oneDecimalTicks struct{}

func (oneDecimalTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = formatTick(ticks[i].Value)
		}
	}
	return ticks
}

func renderPlot(r *Report, newCanvas func() canvasWriter) ([]byte, error) {
	p, err := buildPlot(r)
	if err != nil {
		return nil, err
	}
	c := newCanvas()
	p.Draw(draw.New(c))

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}
	return buf.Bytes(), nil
}

func buildPlot(r *Report) (*plot.Plot, error) {
	res := r.Result

	p := plot.New()
	p.Title.Text = ChartTitle
	p.X.Label.Text = r.XLabel()
	p.Y.Label.Text = r.YLabel()
	p.X.Tick.Marker = oneDecimalTicks{}
	p.Y.Tick.Marker = oneDecimalTicks{}
	p.Legend.Top = true
	p.Legend.Left = true

	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(grid)

	xs, ys, colors := r.Series()
	if len(xs) == 0 {
		return p, nil
	}

	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	ymin, ymax := lo.Min(ys), lo.Max(ys)

	for _, iv := range res.Intervals {
		x0, x1 := r.Scaled(iv.Start).Float(), r.Scaled(iv.End).Float()
		band, err := plotter.NewPolygon(plotter.XYs{
			{X: x0, Y: ymin}, {X: x1, Y: ymin}, {X: x1, Y: ymax}, {X: x0, Y: ymax},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build interval band: %w", err)
		}
		band.Color = bandFill
		band.LineStyle.Width = 0
		p.Add(band)
		p.Legend.Add(r.IntervalLabel(iv), band)
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("failed to build scatter: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(2.5)
	base := scatter.GlyphStyle
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		gs := base
		gs.Color = bluePoint
		if colors[i] == domain.ColorRed {
			gs.Color = redPoint
		}
		return gs
	}
	p.Add(scatter)
	p.Legend.Add("Take Home", scatter)

	return p, nil
}
