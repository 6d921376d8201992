package journal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/emsuite/ems-cli/pkg/api"
)

// Draft is the in-memory journal entry bound to the current form state. It
// holds the raw text inputs exactly as typed; the typed values are derived at
// submission time. A draft is scoped to one (employee, project) pair and the
// current calendar day.
type Draft struct {
	EmployeeID      string
	ProjectID       string
	TaskType        string
	HoursInput      string
	ObjectIDsInput  string
	StatusPerObject []api.ObjectStatus
	Comments        string

	// Submitted blocks further standard submission in this session. It is a
	// session-local guard, not a server-side check.
	Submitted bool
}

// SetObjectIDs records the raw id text and reconciles the status rows with it
func (d *Draft) SetObjectIDs(raw string) {
	d.ObjectIDsInput = raw
	d.StatusPerObject = Reconcile(d.StatusPerObject, raw)
}

// SetStatus updates the status of exactly one row
func (d *Draft) SetStatus(index int, status string) error {
	if index < 0 || index >= len(d.StatusPerObject) {
		return fmt.Errorf("no status row at index %d", index)
	}
	if status != api.StatusFinished && status != api.StatusPending && status != api.StatusError {
		return fmt.Errorf("unknown status %q", status)
	}
	d.StatusPerObject[index].Status = status
	return nil
}

// Store resolves the current day's draft for an (employee, project) pair
type Store struct {
	gateway Gateway
	now     func() time.Time
}

// NewStore creates a journal entry store over the given gateway
func NewStore(gateway Gateway) *Store {
	return &Store{gateway: gateway, now: time.Now}
}

// Today returns today's date in the local timezone
func (s *Store) Today() string {
	return s.now().Format("2006-01-02")
}

// SelectProject loads today's entry for the project. When an entry exists the
// draft is populated from it and marked submitted; otherwise every field is
// reset. There is no merging of prior edits: switching projects discards the
// old draft wholesale.
func (s *Store) SelectProject(employeeID, projectID string) (*Draft, error) {
	entry, err := s.gateway.FetchEntry(employeeID, projectID, s.Today())
	if err != nil {
		return nil, fmt.Errorf("failed to load today's entry: %w", err)
	}

	draft := &Draft{EmployeeID: employeeID, ProjectID: projectID}
	if entry == nil {
		return draft, nil
	}

	draft.TaskType = entry.TaskType
	draft.HoursInput = strconv.FormatFloat(entry.HoursSpent, 'f', -1, 64)
	draft.ObjectIDsInput = strings.Join(entry.ObjectIDs, ",")
	draft.StatusPerObject = append([]api.ObjectStatus(nil), entry.StatusPerObject...)
	draft.Comments = entry.Comments
	draft.Submitted = true

	return draft, nil
}
