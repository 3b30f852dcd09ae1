package importer

import (
	"fmt"

	"github.com/rsat/josephjoseph-chile/internal/events"
)

// ConfirmFunc is asked once, with the total record count, before a
// destructive wipe proceeds. Returning false aborts with nothing deleted.
type ConfirmFunc func(total int) bool

// DeleteAll removes every record from the catalog store, used for full
// catalog resets before a re-import. Deletion is irreversible on the
// store side, which is why the confirmation hook runs first; pass nil to
// proceed unconditionally.
func (im *Importer) DeleteAll(confirm ConfirmFunc) (*Report, error) {
	report := &Report{Mode: "clean"}

	records, err := im.store.ListAllProducts()
	if err != nil {
		return report, fmt.Errorf("failed to list store products: %w", err)
	}
	if len(records) == 0 {
		im.logger.Info("Store is already empty")
		return report, nil
	}

	if confirm != nil && !confirm(len(records)) {
		im.logger.Info("Aborted, nothing deleted")
		return report, nil
	}

	run := im.startRun(report.Mode)
	for i := range records {
		rec := &records[i]

		if err := im.store.DeleteProduct(rec.DocumentID); err != nil {
			im.logger.Error("Failed to delete %s: %v", rec.DocumentID, err)
			im.record(report, run, rec.Name, StatusFailed, err)
			continue
		}

		im.record(report, run, rec.Name, StatusDeleted, nil)
		im.publish(events.TypeDeleted, rec.DocumentID, rec.Name)
	}
	im.finishRun(run, report)

	im.logger.Info("Deleted %d products", report.Succeeded)
	return report, nil
}
