package histogram

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcoot/wordlestrat/internal/model"
)

// Default series colours, matching the classic Felix vs Laney chart
const (
	ColorDarkOrchid = "#9932CC"
	ColorSeaGreen   = "#2E8B57"
)

// Bin is one histogram bucket covering [Lower, Upper); the last bin also includes Upper
type Bin struct {
	Lower float64
	Upper float64
	Count int
}

// Series is one set of values drawn with its own bin count and colour
type Series struct {
	Label  string
	Values []float64
	Bins   int
	Color  string
}

// Chart describes a set of overlapping series sharing a count axis
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

// Config holds rendering settings
type Config struct {
	// Width is the length in cells of the longest bar
	Width int
	// BarRune fills the body of each bar
	BarRune rune
	// EdgeRune caps the end of each non-empty bar
	EdgeRune rune
	// Color enables ANSI colouring of bars and headings
	Color bool
}

// DefaultConfig returns sensible defaults for terminal rendering
func DefaultConfig() Config {
	return Config{
		Width:    40,
		BarRune:  '█',
		EdgeRune: '▌',
		Color:    true,
	}
}

// Service renders text histograms
type Service struct {
	cfg Config
}

// New creates a histogram Service
func New(cfg Config) *Service {
	if cfg.Width <= 0 {
		cfg.Width = DefaultConfig().Width
	}
	if cfg.BarRune == 0 {
		cfg.BarRune = DefaultConfig().BarRune
	}
	return &Service{cfg: cfg}
}

// Compute sorts values into bins equal-width buckets spanning [min, max].
// When every value is equal the range is widened to [v-0.5, v+0.5].
func Compute(values []float64, bins int) ([]Bin, error) {
	if bins < 1 {
		return nil, fmt.Errorf("%w: bin count must be at least 1, got %d", model.ErrInvalidInput, bins)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no values to bin", model.ErrInvalidInput)
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	width := (hi - lo) / float64(bins)
	result := make([]Bin, bins)
	for i := range result {
		result[i].Lower = lo + float64(i)*width
		result[i].Upper = lo + float64(i+1)*width
	}
	result[bins-1].Upper = hi

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		result[idx].Count++
	}

	return result, nil
}

// Render writes the chart to w. Bars in every series share one count scale.
func (s *Service) Render(w io.Writer, chart Chart) error {
	binned := make([][]Bin, len(chart.Series))
	maxCount := 0
	for i, series := range chart.Series {
		bins, err := Compute(series.Values, series.Bins)
		if err != nil {
			return fmt.Errorf("series %q: %w", series.Label, err)
		}
		binned[i] = bins
		for _, b := range bins {
			if b.Count > maxCount {
				maxCount = b.Count
			}
		}
	}

	var sb strings.Builder
	if chart.Title != "" {
		sb.WriteString(s.style("", true).Render(chart.Title))
		sb.WriteString("\n\n")
	}

	for i, series := range chart.Series {
		style := s.style(series.Color, false)
		fmt.Fprintf(&sb, "%s %s (n=%d, bins=%d)\n",
			style.Render(string(s.cfg.BarRune)), series.Label, len(series.Values), series.Bins)

		for _, b := range binned[i] {
			fmt.Fprintf(&sb, "  %6.3f - %6.3f |%s %d\n",
				b.Lower, b.Upper, style.Render(s.bar(b.Count, maxCount)), b.Count)
		}
		sb.WriteString("\n")
	}

	if chart.XLabel != "" || chart.YLabel != "" {
		fmt.Fprintf(&sb, "x: %s, y: %s\n", chart.XLabel, chart.YLabel)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (s *Service) bar(count, maxCount int) string {
	if count == 0 || maxCount == 0 {
		return ""
	}
	length := int(math.Round(float64(count) / float64(maxCount) * float64(s.cfg.Width)))
	if length < 1 {
		length = 1
	}
	if s.cfg.EdgeRune == 0 {
		return strings.Repeat(string(s.cfg.BarRune), length)
	}
	return strings.Repeat(string(s.cfg.BarRune), length-1) + string(s.cfg.EdgeRune)
}

func (s *Service) style(color string, bold bool) lipgloss.Style {
	style := lipgloss.NewStyle()
	if !s.cfg.Color {
		return style
	}
	if color != "" {
		style = style.Foreground(lipgloss.Color(color))
	}
	return style.Bold(bold)
}

// StrategyChart builds the two-series chart comparing strategy A and B averages
func StrategyChart(summary *model.TrialSummary, binsA, binsB int) Chart {
	return Chart{
		Title:  "Wordle Guessing Strategies",
		XLabel: "Number of Letters Correct",
		YLabel: "Number of Experiments",
		Series: []Series{
			{Label: "Felix", Values: summary.AveragesA, Bins: binsA, Color: ColorDarkOrchid},
			{Label: "Laney", Values: summary.AveragesB, Bins: binsB, Color: ColorSeaGreen},
		},
	}
}
