package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mcoot/wordlestrat/internal/api/response"
	"github.com/mcoot/wordlestrat/internal/model"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Report is the combined word list, letter and simulation report
type Report struct {
	Words   response.Words       `json:"words"`
	Letters response.BestLetters `json:"letters"`
	Run     response.Run         `json:"run"`
}

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// IsJSON reports whether output is JSON
func (o *Output) IsJSON() bool {
	return o.format == OutputJSON
}

// Writer returns the underlying writer
func (o *Output) Writer() io.Writer {
	return o.w
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.IsJSON() {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Health:
		fmt.Fprintf(o.w, "Status: %s\nWords: %d\n", v.Status, v.Words)
	case response.Words:
		o.printWords(v)
	case response.BestLetters:
		o.printBestLetters(v)
	case response.Score:
		fmt.Fprintf(o.w, "%s vs %s: %d\n", v.Guess, v.Target, v.Score)
	case response.Run:
		o.printRun(v)
	case response.RunList:
		o.printRunList(v)
	case Report:
		o.printWords(v.Words)
		fmt.Fprintln(o.w)
		o.printBestLetters(v.Letters)
		fmt.Fprintln(o.w)
		o.printRun(v.Run)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printWords(w response.Words) {
	fmt.Fprintf(o.w, "First %d words: %s\n", len(w.Words), strings.Join(w.Words, " "))
	fmt.Fprintf(o.w, "Number of words: %d\n", w.Count)
}

func (o *Output) printBestLetters(b response.BestLetters) {
	fmt.Fprintf(o.w, "Best letters by slot (%s):\n", b.Selection)
	for _, slot := range model.SlotNames {
		parts := make([]string, 0, len(b.Slots[slot]))
		for _, lc := range b.Slots[slot] {
			parts = append(parts, fmt.Sprintf("%s:%d", lc.Letter, lc.Count))
		}
		fmt.Fprintf(o.w, "  %-7s %s\n", slot, strings.Join(parts, " "))
	}
}

func (o *Output) printRun(r response.Run) {
	fmt.Fprintf(o.w, "Run: %s\n", r.ID)
	fmt.Fprintf(o.w, "Created: %s\n", r.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(o.w, "Guess: %s\n", r.Params.FixedGuess)
	fmt.Fprintf(o.w, "Trials: %d x %d experiments over %d words\n",
		r.Params.TrialCount, r.Params.ExperimentCount, r.WordCount)
	if r.Params.Seed != nil {
		fmt.Fprintf(o.w, "Seed: %d\n", *r.Params.Seed)
	}
	fmt.Fprintf(o.w, "Duration: %dms\n\n", r.DurationMS)

	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tMEAN\tSTDDEV\tMIN\tMEDIAN\tMAX")
	printStats(tw, "Felix", r.StatsA)
	printStats(tw, "Laney", r.StatsB)
	_ = tw.Flush()
}

func printStats(w io.Writer, label string, s response.Stats) {
	fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\n", label, s.Mean, s.StdDev, s.Min, s.Median, s.Max)
}

func (o *Output) printRunList(l response.RunList) {
	if len(l.Runs) == 0 {
		fmt.Fprintln(o.w, "No runs")
		return
	}

	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tGUESS\tTRIALS\tEXPERIMENTS\tMEAN A\tMEAN B")
	for _, r := range l.Runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%.3f\t%.3f\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Params.FixedGuess,
			r.Params.TrialCount, r.Params.ExperimentCount, r.StatsA.Mean, r.StatsB.Mean)
	}
	_ = tw.Flush()
}
