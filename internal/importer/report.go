package importer

import (
	"fmt"
)

// Status is the terminal state of a single item within a run. Items never
// transition back, and the run as a whole has no rollback.
type Status string

const (
	StatusCreated Status = "created"
	StatusUpdated Status = "updated"
	StatusDeleted Status = "deleted"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Item records one product's outcome in feed/listing order.
type Item struct {
	Name   string
	Status Status
	Err    error
}

// Report tallies a run. Partial success is the accepted outcome: per-item
// failures are counted here, never escalated into a run failure.
type Report struct {
	Mode      string
	Succeeded int
	Failed    int
	Skipped   int
	Items     []Item
}

func (r *Report) add(name string, status Status, err error) {
	switch status {
	case StatusCreated, StatusUpdated, StatusDeleted:
		r.Succeeded++
	case StatusFailed:
		r.Failed++
	default:
		r.Skipped++
	}
	r.Items = append(r.Items, Item{Name: name, Status: status, Err: err})
}

func (r *Report) Summary() string {
	return fmt.Sprintf("succeeded=%d failed=%d skipped=%d", r.Succeeded, r.Failed, r.Skipped)
}
