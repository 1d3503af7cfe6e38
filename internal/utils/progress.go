package utils

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// DescExtracting is the description of batch progress bars
const DescExtracting = "Extracting"

// NewProgressBar creates a consistently styled progress bar on w.
//
// Parameters:
//   - total: Total number of items. Zero or -1 for unknown totals (spinner mode).
//   - description: Text shown before the bar (e.g., DescExtracting).
//   - w: Destination; nil means stderr so stdout stays free for output.
//
// Example:
//
//	bar := utils.NewProgressBar(len(targets), utils.DescExtracting, nil)
//	defer bar.Finish()
//
//	for _, target := range targets {
//	    // Extract target
//	    bar.Add(1)
//	}
func NewProgressBar(total int, description string, w io.Writer) *progressbar.ProgressBar {
	if w == nil {
		w = os.Stderr
	}

	opts := []progressbar.Option{
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	}

	if total <= 0 {
		total = -1
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		opts = append(opts,
			progressbar.OptionShowIts(),
		)
	}

	return progressbar.NewOptions(total, opts...)
}
