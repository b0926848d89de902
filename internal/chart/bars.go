package chart

import (
	"fmt"
	"slices"

	"worldcup-stats-service/internal/domain/tournaments"
)

// Editions that were scheduled but not played; they still get an axis tick.
var cancelledYears = []int{1942, 1946}

// Frame is the drawing area of the bar chart.
type Frame struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding"`
}

// DefaultFrame is an 800x400 chart with 80px padding.
func DefaultFrame() Frame {
	return Frame{Width: 800, Height: 400, Padding: 80}
}

func (f Frame) plotWidth() float64  { return f.Width - 2*f.Padding }
func (f Frame) plotHeight() float64 { return f.Height - 2*f.Padding }

// Bar is one tournament column.
type Bar struct {
	Year     int     `json:"year"`
	Value    float64 `json:"value"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Fill     string  `json:"fill"`
	Selected bool    `json:"selected"`
}

// Chart is the computed bar chart for one dimension.
type Chart struct {
	Dimension   tournaments.Dimension `json:"dimension"`
	Frame       Frame                 `json:"frame"`
	MaxValue    float64               `json:"maxValue"`
	YearTicks   []int                 `json:"yearTicks"`
	XAxisOffset float64               `json:"xAxisOffset"`
	Bars        []Bar                 `json:"bars"`
}

// BarChart lays out one bar per tournament. Bar coordinates are relative to the
// padded plot origin. selectedYear highlights a bar; zero selects none.
func BarChart(all []tournaments.Tournament, dim tournaments.Dimension, frame Frame, selectedYear int) (Chart, error) {
	if frame.plotWidth() <= 0 || frame.plotHeight() <= 0 {
		return Chart{}, fmt.Errorf("frame %vx%v too small for padding %v", frame.Width, frame.Height, frame.Padding)
	}

	chart := Chart{Dimension: dim, Frame: frame, Bars: []Bar{}, YearTicks: []int{}}
	if len(all) == 0 {
		return chart, nil
	}

	minYear, maxYear := all[0].Year, all[0].Year
	maxValue := 0.0
	for _, t := range all {
		minYear = min(minYear, t.Year)
		maxYear = max(maxYear, t.Year)
		maxValue = max(maxValue, t.Value(dim))
	}

	barWidth := frame.plotWidth() / float64(len(all))
	xScale := NewLinearScale(float64(minYear), float64(maxYear), 0, frame.plotWidth())
	yScale := NewLinearScale(0, maxValue, frame.plotHeight(), 0)
	fill := NewColorScale(0, maxValue, ColorYellow, ColorRed)

	for _, t := range all {
		v := t.Value(dim)
		y := yScale.Scale(v)
		bar := Bar{
			Year:   t.Year,
			Value:  v,
			X:      xScale.Scale(float64(t.Year)),
			Y:      y,
			Width:  barWidth,
			Height: frame.plotHeight() - y,
			Fill:   fill.Color(v),
		}
		if selectedYear != 0 && t.Year == selectedYear {
			bar.Selected = true
			bar.Fill = ColorSelected
		}
		chart.Bars = append(chart.Bars, bar)
	}

	chart.MaxValue = maxValue
	chart.YearTicks = yearTicks(all)
	chart.XAxisOffset = frame.Padding + barWidth/2
	return chart, nil
}

func yearTicks(all []tournaments.Tournament) []int {
	ticks := make([]int, 0, len(all)+len(cancelledYears))
	for _, t := range all {
		ticks = append(ticks, t.Year)
	}
	ticks = append(ticks, cancelledYears...)
	slices.Sort(ticks)
	return slices.Compact(ticks)
}
