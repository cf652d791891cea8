package history

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for the run ledger
var (
	ErrRunNotFound         = errors.New("run not found")
	ErrIncompatibleVersion = errors.New("incompatible history version")
)

// Run records the parameters of one generation so it can be replayed.
type Run struct {
	ID        string    `json:"id"`
	Seed      uint64    `json:"seed"`
	Count     int       `json:"count"`
	Output    string    `json:"output"`
	Records   int       `json:"records"`
	Bytes     int64     `json:"bytes"`
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRun creates a run with a fresh ID stamped with the current time and version.
func NewRun(seed uint64, count int, output string) *Run {
	return &Run{
		ID:        uuid.New().String(),
		Seed:      seed,
		Count:     count,
		Output:    output,
		Version:   Version,
		CreatedAt: time.Now(),
	}
}

// Store persists runs.
type Store interface {
	SaveRun(run *Run) error
	GetRun(id string) (*Run, error)
	// ListRuns returns all runs, oldest first.
	ListRuns() ([]*Run, error)
	Close() error
}

func sortRuns(runs []*Run) {
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.Before(runs[j].CreatedAt)
	})
}
