package journal

import (
	"strings"

	"github.com/emsuite/ems-cli/pkg/api"
)

// ParseObjectIDs splits the free-text object-id field on commas, trims
// whitespace and drops empty tokens. Order is preserved and duplicates are
// allowed.
func ParseObjectIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		ids = append(ids, p)
	}
	return ids
}

// Reconcile re-derives the status rows after an edit to the raw id field.
// Pairing is positional: row i keeps the previous status at index i when one
// exists and defaults to pending otherwise. Inserting or removing an id
// mid-list therefore shifts every status after it; statuses do not follow id
// values around.
func Reconcile(prev []api.ObjectStatus, raw string) []api.ObjectStatus {
	ids := ParseObjectIDs(raw)
	rows := make([]api.ObjectStatus, len(ids))
	for i, id := range ids {
		status := api.StatusPending
		if i < len(prev) {
			status = prev[i].Status
		}
		rows[i] = api.ObjectStatus{ObjectID: id, Status: status}
	}
	return rows
}
