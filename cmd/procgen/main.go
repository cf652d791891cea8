package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"pkg.jsn.cam/procgen/internal/generator"
	"pkg.jsn.cam/procgen/internal/history"
)

/*generates a workload of processes for the scheduling simulator in the form of
{id}\t{arrival}\t{runtime}\t{priority}\t{memsize}*/

var (
	OutputPath  = flag.String("output", "processes.txt", "Output workload file path")
	Count       = flag.Int("count", -1, "Number of processes to generate (prompts when negative)")
	Seed        = flag.Uint64("seed", 0, "Random seed (0 seeds from the current time)")
	HistoryPath = flag.String("history", "", "Path to a bbolt run ledger (disabled when empty)")
	Replay      = flag.String("replay", "", "Regenerate the run with this ID from the ledger")
	List        = flag.Bool("list", false, "List recorded runs and exit")
	Progress    = flag.Bool("progress", false, "Show a progress bar on stderr")
	ShowVersion = flag.Bool("version", false, "Print version and exit")
)

type config struct {
	output   string
	count    int
	seed     uint64
	history  string
	replay   string
	list     bool
	progress bool
}

func main() {
	flag.Parse()

	if *ShowVersion {
		fmt.Println("procgen", history.Version)
		return
	}

	cfg := config{
		output:   *OutputPath,
		count:    *Count,
		seed:     *Seed,
		history:  *HistoryPath,
		replay:   *Replay,
		list:     *List,
		progress: *Progress,
	}

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		switch {
		case errors.Is(err, generator.ErrInput):
			log.Fatalf("[PROCGEN] Invalid process count: %v", err)
		case errors.Is(err, generator.ErrIO):
			log.Fatalf("[PROCGEN] Failed to write workload: %v", err)
		default:
			log.Fatalf("[PROCGEN] %v", err)
		}
	}
}

func run(cfg config, stdin io.Reader, stdout io.Writer) error {
	store, err := openStore(cfg.history)
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.list {
		return listRuns(store, stdout)
	}

	seed, count := cfg.seed, cfg.count
	if cfg.replay != "" {
		if cfg.history == "" {
			return errors.New("-replay requires -history")
		}
		prev, err := store.GetRun(cfg.replay)
		if err != nil {
			return fmt.Errorf("replay %s: %w", cfg.replay, err)
		}
		seed, count = prev.Seed, prev.Count
		log.Printf("[PROCGEN] Replaying run %s (seed %d, %d processes)", prev.ID, seed, count)
	}

	if count < 0 {
		count, err = generator.ReadCount(stdin, stdout)
		if err != nil {
			return err
		}
	}
	if seed == 0 {
		seed = generator.TimeSeed()
	}

	rec := newProgress(cfg.progress, count)
	sum, err := generator.WriteFile(cfg.output, count, generator.NewSource(seed), rec)
	if err != nil {
		return err
	}

	log.Printf("[PROCGEN] Wrote %s processes (%s) to %s",
		humanize.Comma(int64(sum.Records)), humanize.Bytes(uint64(sum.Bytes)), cfg.output)

	entry := history.NewRun(seed, count, cfg.output)
	entry.Records = sum.Records
	entry.Bytes = sum.Bytes
	if err := store.SaveRun(entry); err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	if cfg.history != "" {
		log.Printf("[PROCGEN] Recorded run %s", entry.ID)
	}
	return nil
}
