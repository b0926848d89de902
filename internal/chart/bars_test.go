package chart

import (
	"testing"

	"worldcup-stats-service/internal/domain/tournaments"
)

func sampleTournaments() []tournaments.Tournament {
	return []tournaments.Tournament{
		{Year: 1930, Goals: 70, AverageAttendance: 32808},
		{Year: 2014, Goals: 171, AverageAttendance: 53592},
	}
}

func TestBarChartGeometry(t *testing.T) {
	c, err := BarChart(sampleTournaments(), tournaments.DimensionGoals, DefaultFrame(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(c.Bars))
	}
	if c.MaxValue != 171 {
		t.Fatalf("expected max 171, got %v", c.MaxValue)
	}

	first, last := c.Bars[0], c.Bars[1]
	if !approx(first.X, 0) || !approx(last.X, 640) {
		t.Fatalf("unexpected x positions %v %v", first.X, last.X)
	}
	if !approx(first.Width, 320) {
		t.Fatalf("expected bar width 320, got %v", first.Width)
	}
	if !approx(last.Y, 0) || !approx(last.Height, 240) {
		t.Fatalf("expected tallest bar to fill plot, got y=%v h=%v", last.Y, last.Height)
	}
	if !approx(first.Y+first.Height, 240) {
		t.Fatalf("expected bar to sit on the x axis, got y=%v h=%v", first.Y, first.Height)
	}
	if last.Fill != ColorRed {
		t.Fatalf("expected max bar red, got %s", last.Fill)
	}
	if !approx(c.XAxisOffset, 80+160) {
		t.Fatalf("unexpected axis offset %v", c.XAxisOffset)
	}
}

func TestBarChartTicksIncludeCancelledYears(t *testing.T) {
	c, err := BarChart(sampleTournaments(), tournaments.DimensionAttendance, DefaultFrame(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1930, 1942, 1946, 2014}
	if len(c.YearTicks) != len(want) {
		t.Fatalf("expected ticks %v, got %v", want, c.YearTicks)
	}
	for i := range want {
		if c.YearTicks[i] != want[i] {
			t.Fatalf("expected ticks %v, got %v", want, c.YearTicks)
		}
	}
}

func TestBarChartSelection(t *testing.T) {
	c, err := BarChart(sampleTournaments(), tournaments.DimensionGoals, DefaultFrame(), 1930)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Bars[0].Selected || c.Bars[0].Fill != ColorSelected {
		t.Fatalf("expected 1930 selected, got %+v", c.Bars[0])
	}
	if c.Bars[1].Selected {
		t.Fatalf("expected only one selected bar")
	}
}

func TestBarChartEmptyAndInvalidFrame(t *testing.T) {
	c, err := BarChart(nil, tournaments.DimensionGoals, DefaultFrame(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Bars) != 0 {
		t.Fatalf("expected no bars")
	}
	if _, err := BarChart(sampleTournaments(), tournaments.DimensionGoals, Frame{Width: 100, Height: 100, Padding: 80}, 0); err == nil {
		t.Fatalf("expected error for frame smaller than padding")
	}
}
