package web

import "github.com/dmitrijs2005/unspoken/internal/models"

const (
	chartMarginLeft = 60
	chartMarginTop  = 40
	chartMarginBot  = 40
	chartBarGap     = 0.2
)

// Bar is one column of the mood chart, in SVG user units.
type Bar struct {
	Label  string
	Count  int
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Tick is a labelled mark on the y axis.
type Tick struct {
	Value int
	Y     float64
}

// Chart is the layout of the mood timeline bar chart.
type Chart struct {
	Width     int
	Height    int
	Title     string
	AxisLabel string
	Bars      []Bar
	Ticks     []Tick
	// Baseline is the y coordinate of the x axis.
	Baseline float64
	Left     float64
}

// Empty reports whether there is nothing to draw.
func (c Chart) Empty() bool {
	return len(c.Bars) == 0
}

// BuildChart lays out one bar per count, in the given order. Bar heights are
// proportional to the largest count.
func BuildChart(counts []models.FeelingCount, width, height int) Chart {
	c := Chart{
		Width:     width,
		Height:    height,
		Title:     models.TimelineTitle,
		AxisLabel: models.TimelineAxisLabel,
		Baseline:  float64(height - chartMarginBot),
		Left:      chartMarginLeft,
	}
	if len(counts) == 0 {
		return c
	}

	maxCount := 0
	for _, fc := range counts {
		maxCount = max(maxCount, fc.Count)
	}

	plotW := float64(width - chartMarginLeft - 10)
	plotH := float64(height - chartMarginTop - chartMarginBot)
	slot := plotW / float64(len(counts))
	barW := slot * (1 - chartBarGap)

	for i, fc := range counts {
		h := 0.0
		if maxCount > 0 {
			h = plotH * float64(fc.Count) / float64(maxCount)
		}
		c.Bars = append(c.Bars, Bar{
			Label:  fc.Feeling,
			Count:  fc.Count,
			X:      chartMarginLeft + float64(i)*slot + (slot-barW)/2,
			Y:      c.Baseline - h,
			Width:  barW,
			Height: h,
		})
	}

	for _, v := range tickValues(maxCount) {
		c.Ticks = append(c.Ticks, Tick{
			Value: v,
			Y:     c.Baseline - plotH*float64(v)/float64(maxCount),
		})
	}

	return c
}

// tickValues returns at most six evenly spaced integers from 0 to top.
func tickValues(top int) []int {
	if top <= 0 {
		return nil
	}
	step := (top + 4) / 5
	var out []int
	for v := 0; v <= top; v += step {
		out = append(out, v)
	}
	if out[len(out)-1] != top {
		out = append(out, top)
	}
	return out
}
