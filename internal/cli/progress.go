package cli

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/mcoot/wordlestrat/internal/services/simulation"
)

// newProgress returns a progress callback drawing a bar on w, and a func to finish it
func newProgress(w io.Writer, total int) (simulation.ProgressFunc, func()) {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("trials"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)

	progress := func(done, _ int) {
		_ = bar.Set(done)
	}
	return progress, func() { _ = bar.Finish() }
}
