package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"pkg.jsn.cam/procgen/internal/history"
)

// openStore returns the bbolt ledger at path, or an in-memory store when path is empty.
func openStore(path string) (history.Store, error) {
	if path == "" {
		return history.NewMemoryStore(), nil
	}
	return history.OpenBbolt(path)
}

func listRuns(store history.Store, w io.Writer) error {
	runs, err := store.ListRuns()
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSEED\tCOUNT\tSIZE\tOUTPUT\tCREATED")
	for _, run := range runs {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
			run.ID,
			run.Seed,
			humanize.Comma(int64(run.Count)),
			humanize.Bytes(uint64(run.Bytes)),
			run.Output,
			humanize.Time(run.CreatedAt),
		)
	}
	return tw.Flush()
}
