// Package charts renders analysis aggregates as PNG images. It never
// sees feedback text: the boundary types here carry only counts,
// labels and lengths.
package charts

import (
	"fmt"
	"io"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Palette shared by all charts.
var (
	colorPositive  = drawing.ColorFromHex("2ecc71")
	colorNegative  = drawing.ColorFromHex("e74c3c")
	colorNeutral   = drawing.ColorFromHex("95a5a6")
	colorPrimary   = drawing.ColorFromHex("3498db")
	colorSecondary = drawing.ColorFromHex("f39c12")
	colorAccent    = drawing.ColorFromHex("9b59b6")
)

const (
	chartWidth    = 960
	chartHeight   = 640
	histogramBins = 20
	maxBarLabels  = 15
)

// SentimentCounts is the pie chart input.
type SentimentCounts struct {
	Positive int
	Negative int
	Neutral  int
}

// Pair is one labeled count for bar charts.
type Pair struct {
	Label string
	Count int
}

// Point is one labeled value of a trend series.
type Point struct {
	Label string
	Value float64
}

// Artifact is a renderable chart with the filename it exports under.
type Artifact struct {
	Name   string
	render func(w io.Writer) error
}

// WritePNG renders the artifact as a PNG image.
func (a Artifact) WritePNG(w io.Writer) error {
	return a.render(w)
}

// SentimentPie builds the sentiment distribution pie chart.
func SentimentPie(c SentimentCounts) Artifact {
	return Artifact{
		Name: "sentiment_distribution.png",
		render: func(w io.Writer) error {
			all := []chart.Value{
				{Label: "Positive", Value: float64(c.Positive), Style: chart.Style{FillColor: colorPositive}},
				{Label: "Negative", Value: float64(c.Negative), Style: chart.Style{FillColor: colorNegative}},
				{Label: "Neutral", Value: float64(c.Neutral), Style: chart.Style{FillColor: colorNeutral}},
			}
			values := make([]chart.Value, 0, len(all))
			for _, v := range all {
				if v.Value > 0 {
					values = append(values, v)
				}
			}
			if len(values) == 0 {
				return fmt.Errorf("sentiment pie: no non-zero classes")
			}
			pie := chart.PieChart{
				Title:  "Sentiment Distribution",
				Width:  chartHeight,
				Height: chartHeight,
				Values: values,
			}
			return pie.Render(chart.PNG, w)
		},
	}
}

// KeywordBars builds the keyword frequency bar chart from ranked
// (word, count) pairs; only the top entries are drawn.
func KeywordBars(pairs []Pair) Artifact {
	return Artifact{
		Name:   "keyword_frequency.png",
		render: barRenderer("Top Keywords in Feedback", truncatePairs(pairs, maxBarLabels), colorPrimary),
	}
}

// TopicBars builds the topic mention bar chart.
func TopicBars(pairs []Pair) Artifact {
	return Artifact{
		Name:   "topic_mentions.png",
		render: barRenderer("Topic Analysis", pairs, colorSecondary),
	}
}

func truncatePairs(pairs []Pair, n int) []Pair {
	if len(pairs) > n {
		return pairs[:n]
	}
	return pairs
}

func barRenderer(title string, pairs []Pair, color drawing.Color) func(io.Writer) error {
	return func(w io.Writer) error {
		if len(pairs) == 0 {
			return fmt.Errorf("%s: no data to chart", title)
		}
		bars := make([]chart.Value, 0, len(pairs))
		for _, p := range pairs {
			bars = append(bars, chart.Value{
				Label: p.Label,
				Value: float64(p.Count),
				Style: chart.Style{FillColor: color, StrokeColor: color},
			})
		}
		bc := chart.BarChart{
			Title:    title,
			Width:    chartWidth,
			Height:   chartHeight,
			BarWidth: barWidthFor(len(bars)),
			Bars:     bars,
		}
		return bc.Render(chart.PNG, w)
	}
}

func barWidthFor(n int) int {
	if n == 0 {
		return 40
	}
	w := (chartWidth - 100) / (2 * n)
	if w < 10 {
		w = 10
	}
	if w > 60 {
		w = 60
	}
	return w
}

// LengthHistogram bins per-row character lengths into a 20-bin
// histogram rendered as bars.
func LengthHistogram(lengths []int) Artifact {
	return Artifact{
		Name: "feedback_length_histogram.png",
		render: func(w io.Writer) error {
			if len(lengths) == 0 {
				return fmt.Errorf("length histogram: no data to chart")
			}
			x := make([]float64, len(lengths))
			for i, n := range lengths {
				x[i] = float64(n)
			}
			sort.Float64s(x)

			// Upper divider sits one past the max so the largest value
			// lands inside the final bin.
			dividers := make([]float64, histogramBins+1)
			floats.Span(dividers, x[0], x[len(x)-1]+1)
			counts := stat.Histogram(nil, dividers, x, nil)

			bars := make([]chart.Value, histogramBins)
			for i, c := range counts {
				bars[i] = chart.Value{
					Label: fmt.Sprintf("%d", int(dividers[i])),
					Value: c,
					Style: chart.Style{FillColor: colorAccent, StrokeColor: colorAccent},
				}
			}
			bc := chart.BarChart{
				Title:    "Feedback Length Distribution",
				Width:    chartWidth,
				Height:   chartHeight,
				BarWidth: barWidthFor(histogramBins),
				Bars:     bars,
			}
			return bc.Render(chart.PNG, w)
		},
	}
}

// TrendLine draws an ordered (label, value) series as a line chart.
func TrendLine(points []Point) Artifact {
	return Artifact{
		Name: "feedback_trend.png",
		render: func(w io.Writer) error {
			if len(points) == 0 {
				return fmt.Errorf("trend line: no data to chart")
			}
			xs := make([]float64, len(points))
			ys := make([]float64, len(points))
			ticks := make([]chart.Tick, len(points))
			for i, p := range points {
				xs[i] = float64(i)
				ys[i] = p.Value
				ticks[i] = chart.Tick{Value: float64(i), Label: p.Label}
			}
			lc := chart.Chart{
				Title:  "Feedback Trends Over Time",
				Width:  chartWidth,
				Height: chartHeight,
				XAxis:  chart.XAxis{Ticks: ticks},
				Series: []chart.Series{
					chart.ContinuousSeries{
						Style: chart.Style{
							StrokeColor: colorPrimary,
							StrokeWidth: 2,
							DotColor:    colorPrimary,
							DotWidth:    4,
						},
						XValues: xs,
						YValues: ys,
					},
				},
			}
			return lc.Render(chart.PNG, w)
		},
	}
}

// ComparisonBars draws two same-length series as grouped bars, one
// pair of bars per category.
func ComparisonBars(categories []string, a, b []float64, labelA, labelB string) (Artifact, error) {
	if len(a) != len(categories) || len(b) != len(categories) {
		return Artifact{}, fmt.Errorf("comparison chart: series lengths (%d, %d) must match %d categories",
			len(a), len(b), len(categories))
	}
	if len(categories) == 0 {
		return Artifact{}, fmt.Errorf("comparison chart: no categories")
	}

	bars := make([]chart.Value, 0, 2*len(categories))
	for i, cat := range categories {
		bars = append(bars,
			chart.Value{
				Label: fmt.Sprintf("%s (%s)", cat, labelA),
				Value: a[i],
				Style: chart.Style{FillColor: colorPrimary, StrokeColor: colorPrimary},
			},
			chart.Value{
				Label: fmt.Sprintf("%s (%s)", cat, labelB),
				Value: b[i],
				Style: chart.Style{FillColor: colorSecondary, StrokeColor: colorSecondary},
			},
		)
	}

	return Artifact{
		Name: "comparison_analysis.png",
		render: func(w io.Writer) error {
			bc := chart.BarChart{
				Title:    fmt.Sprintf("Comparison: %s vs %s", labelA, labelB),
				Width:    chartWidth,
				Height:   chartHeight,
				BarWidth: barWidthFor(len(bars)),
				Bars:     bars,
			}
			return bc.Render(chart.PNG, w)
		},
	}, nil
}
