package market

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/marketlens/marketlens/internal/models"
)

// RenderHistoryChart renders a daily close-price line chart with a
// high/low band. Returns raw PNG bytes.
func (s *Service) RenderHistoryChart(ticker string, points []models.HistoricalDataPoint) ([]byte, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(points))
	}

	xValues := make([]time.Time, len(points))
	closeY := make([]float64, len(points))
	highY := make([]float64, len(points))
	lowY := make([]float64, len(points))

	for i, p := range points {
		date, err := time.Parse("2006-01-02", p.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q at index %d: %w", p.Date, i, err)
		}
		xValues[i] = date
		closeY[i] = p.Close
		highY[i] = p.High
		lowY[i] = p.Low
	}

	closeSeries := chart.TimeSeries{
		Name: "Close",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
			StrokeWidth: 2.0,
		},
		XValues: xValues,
		YValues: closeY,
	}

	highSeries := chart.TimeSeries{
		Name: "High",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("9ca3af"), // gray-400
			StrokeWidth:     1.0,
			StrokeDashArray: []float64{4.0, 3.0},
		},
		XValues: xValues,
		YValues: highY,
	}

	lowSeries := chart.TimeSeries{
		Name: "Low",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("9ca3af"),
			StrokeWidth:     1.0,
			StrokeDashArray: []float64{4.0, 3.0},
		},
		XValues: xValues,
		YValues: lowY,
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s - 1 Year Daily", ticker),
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		Series: []chart.Series{
			closeSeries,
			highSeries,
			lowSeries,
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
