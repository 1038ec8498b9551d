// Package charts renders the statistics views as PNG images.
package charts

import (
	"bytes"
	"time"

	"github.com/wcharczuk/go-chart/v2"
)

type DailySales struct {
	Day   time.Time
	Total float64
}

type NamedValue struct {
	Name  string
	Value float64
}

// SalesByDate draws total sales per day as a time series.
func SalesByDate(points []DailySales) ([]byte, error) {

	// go-chart needs two distinct points to draw a continuous series; a
	// single day becomes a flat line ending the day after.
	if len(points) == 1 {
		points = append(points, DailySales{Day: points[0].Day.Add(24 * time.Hour), Total: points[0].Total})
	}

	xs := make([]time.Time, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		xs = append(xs, p.Day)
		ys = append(ys, p.Total)
	}

	graph := chart.Chart{
		Title:  "Ventas por fecha",
		Width:  800,
		Height: 450,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Total vendido",
				XValues: xs,
				YValues: ys,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Bars draws a labelled bar chart, used for top menus and ingredient usage.
func Bars(title string, values []NamedValue) ([]byte, error) {

	bars := make([]chart.Value, 0, len(values))
	for _, v := range values {
		bars = append(bars, chart.Value{Label: v.Name, Value: v.Value})
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    800,
		Height:   450,
		BarWidth: 60,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
