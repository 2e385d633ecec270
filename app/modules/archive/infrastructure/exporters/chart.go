package archiveexport

import (
	"bytes"
	"fmt"

	archivetypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/domain/types"
	"github.com/Black-And-White-Club/frolf-scorecard/app/shared/utils"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette holds the colors used by the score chart.
type ChartPalette struct {
	Background drawing.Color
	Text       drawing.Color
	Par        drawing.Color
}

// DefaultPalette is used by the CLI and HTTP exports.
var DefaultPalette = ChartPalette{
	Background: drawing.ColorWhite,
	Text:       drawing.ColorFromHex("333333"),
	Par:        drawing.ColorFromHex("888888"),
}

// RenderScoreChart draws cumulative throws per player against cumulative par,
// hole by hole, as a PNG. Rounds without holes get a placeholder image.
func RenderScoreChart(round archivetypes.ArchivedRound, palette ChartPalette) ([]byte, error) {
	holes := round.HoleCount
	if holes == 0 || len(round.ParPerHole) == 0 {
		return renderNoDataPlaceholder(palette)
	}

	xValues := make([]float64, holes+1)
	for h := range xValues {
		xValues[h] = float64(h)
	}

	maxY := 1.0
	cumulative := func(values []string) []float64 {
		out := make([]float64, holes+1)
		for h := 1; h <= holes; h++ {
			out[h] = out[h-1] + float64(utils.IntOrZero(at(values, h-1)))
			if out[h] > maxY {
				maxY = out[h]
			}
		}
		return out
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Par",
			XValues: xValues,
			YValues: cumulative(round.ParPerHole),
			Style: chart.Style{
				StrokeColor:     palette.Par,
				StrokeWidth:     2,
				StrokeDashArray: []float64{5, 5},
			},
		},
	}

	seen := map[string]int{}
	for i, name := range round.Players {
		var scores []string
		if i < len(round.Scores) {
			scores = round.Scores[i]
		}
		seen[name]++
		label := name
		if seen[name] > 1 {
			label = fmt.Sprintf("%s (%d)", name, seen[name])
		}
		series = append(series, chart.ContinuousSeries{
			Name:    label,
			XValues: xValues,
			YValues: cumulative(scores),
			Style: chart.Style{
				StrokeColor: chart.GetDefaultColor(i),
				StrokeWidth: 2,
				DotWidth:    3,
				DotColor:    chart.GetDefaultColor(i),
			},
		})
	}

	graph := chart.Chart{
		Width:  800,
		Height: 400,
		Background: chart.Style{
			FillColor: palette.Background,
			Padding:   chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.XAxis{
			Name:           "Hole",
			ValueFormatter: func(v interface{}) string { return fmt.Sprintf("%.0f", v) },
			Range:          &chart.ContinuousRange{Min: 0, Max: float64(holes)},
			Style:          chart.Style{FontColor: palette.Text},
		},
		YAxis: chart.YAxis{
			Name:  "Throws",
			Range: &chart.ContinuousRange{Min: 0, Max: maxY},
			Style: chart.Style{FontColor: palette.Text},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render score chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// renderNoDataPlaceholder draws the message straight onto a PNG renderer;
// chart.Chart refuses to render without a series.
func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "No holes recorded"
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}

	r.SetFillColor(palette.Background)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	r.SetFont(font)
	r.SetFontColor(palette.Text)
	r.SetFontSize(12.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
