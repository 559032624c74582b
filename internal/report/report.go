// Package report writes one structured log record per completed run, as
// newline-delimited JSON, and renders a humanized one-line summary of
// the same record.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/aclarke/rectpack"
)

// Record is the log record emitted for each completed run.
type Record struct {
	Timestamp          time.Time `json:"timestamp"`
	BinSide            int       `json:"bin_side"`
	MinDim             int       `json:"min_dim"`
	MaxDim             int       `json:"max_dim"`
	AlgorithmName      string    `json:"algorithm_name"`
	StrategyOrNeighbor string    `json:"strategy_or_neighbourhood,omitempty"`
	NumRectangles      int       `json:"num_rectangles"`
	NumBins            int       `json:"num_bins"`
	RuntimeSeconds     float64   `json:"runtime_seconds"`
	PerBinFreeArea     []int     `json:"per_bin_free_area"`
}

// NewRecord builds a Record from a completed run, timestamped now.
func NewRecord(inst *rectpack.Instance, sol rectpack.Solution, algorithmName, strategy string, runtime time.Duration, now time.Time) Record {
	free := make([]int, len(sol.Bins))
	for i, b := range sol.Bins {
		free[i] = b.FreeArea()
	}
	return Record{
		Timestamp:          now,
		BinSide:            inst.Side,
		MinDim:             inst.MinDim,
		MaxDim:             inst.MaxDim,
		AlgorithmName:      algorithmName,
		StrategyOrNeighbor: strategy,
		NumRectangles:      inst.NumRectangles(),
		NumBins:            sol.NumBins(),
		RuntimeSeconds:     runtime.Seconds(),
		PerBinFreeArea:     free,
	}
}

// Writer appends Records to an underlying stream as newline-delimited
// JSON, one object per line.
type Writer struct {
	out io.Writer
}

// NewWriter wraps out for record appends.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Write appends rec as a single JSON line.
func (w *Writer) Write(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("report: failed to marshal record: %w", err)
	}
	if _, err := w.out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("report: failed to write record: %w", err)
	}
	return nil
}

// Summary renders rec as a single humanized line for terminal display.
func Summary(rec Record) string {
	return fmt.Sprintf(
		"%s: packed %s rectangles into %d bins in %s (%s)",
		rec.AlgorithmName,
		humanize.Comma(int64(rec.NumRectangles)),
		rec.NumBins,
		humanizeDuration(rec.RuntimeSeconds),
		humanize.Time(rec.Timestamp),
	)
}

func humanizeDuration(seconds float64) string {
	return time.Duration(seconds * float64(time.Second)).Round(time.Millisecond).String()
}
