package analytics

import (
	"errors"

	"career-compass/internal/dataset"
)

// ErrNoData means a query's filtered subset was empty. It is the explicit
// "no data" value of the engine: callers check it with errors.Is and render
// an informational state instead of statistics.
var ErrNoData = errors.New("no data for the specified filters")

// Analyzer answers aggregate queries over a normalized dataset snapshot.
//
// The snapshot is immutable after construction and every query is a pure,
// idempotent read, so one Analyzer may be shared by any number of concurrent
// readers without locking.
type Analyzer struct {
	records []dataset.Record
}

func New(records []dataset.Record) *Analyzer {
	return &Analyzer{records: records}
}

// Len reports the number of records in the snapshot.
func (a *Analyzer) Len() int {
	return len(a.records)
}
