package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"
)

// NewProgressBar returns a bar over total items that writes to w.
func NewProgressBar(w io.Writer, total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]"+description+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

// Advance moves bar forward by one item. A nil bar is ignored.
func Advance(bar *progressbar.ProgressBar) {
	if bar == nil {
		return
	}
	if err := bar.Add(1); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}
