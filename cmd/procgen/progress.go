package main

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"pkg.jsn.cam/procgen/internal/generator"
)

// newProgress returns a per-record callback driving a stderr progress bar,
// or nil when disabled.
func newProgress(enabled bool, total int) func(generator.Record) {
	if !enabled || total <= 0 {
		return nil
	}

	bar := progressbar.NewOptions64(int64(total),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("generating"),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
	)
	return func(generator.Record) {
		_ = bar.Add(1)
	}
}
