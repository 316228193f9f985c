// Package progress renders transient activity on stderr while source
// trees are scanned or indexed. Every variant clears itself on finish
// so reports start on a clean line.
package progress

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Tracker counts processed files against a known total.
type Tracker struct {
	bar *progressbar.ProgressBar
}

// NewTracker creates a file-count bar for a scan over total files.
func NewTracker(label string, total int) *Tracker {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(label),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files"),
		progressbar.OptionSetWidth(25),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)
	return &Tracker{bar: bar}
}

// NewSpinner creates a spinner for work whose size is unknown until
// the walk completes, like warming the symbol index.
func NewSpinner(label string) *Tracker {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSpinnerType(11),
		progressbar.OptionClearOnFinish(),
	)
	return &Tracker{bar: bar}
}

// Tick records one processed file. Safe for concurrent use.
func (t *Tracker) Tick() {
	t.bar.Add(1)
}

// Done clears the bar.
func (t *Tracker) Done() {
	t.bar.Finish()
	t.bar.Clear()
}

// Fail clears the bar and notes the failure on stderr.
func (t *Tracker) Fail(err error) {
	t.bar.Finish()
	t.bar.Clear()
	fmt.Fprintf(os.Stderr, "aborted: %v\n", err)
}
