package journal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/emsuite/ems-cli/pkg/api"
)

// ErrAlreadySubmitted guards standard submission once today's entry exists in
// this session. Manual entry bypasses it.
var ErrAlreadySubmitted = errors.New("an entry for today was already submitted")

// ValidationError reports a draft that cannot be submitted as-is
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidationError reports whether err is a draft validation failure
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// Dispatcher receives entries whose save left at least one object in error
// state. Dispatch is advisory: implementations never block the save path and
// swallow their own failures.
type Dispatcher interface {
	NotifyError(entry *api.JournalEntry)
}

// Controller validates drafts, persists them and triggers the error
// notification side channel.
type Controller struct {
	gateway    Gateway
	dispatcher Dispatcher
	now        func() time.Time
}

// NewController creates a submission controller
func NewController(gateway Gateway, dispatcher Dispatcher) *Controller {
	return &Controller{gateway: gateway, dispatcher: dispatcher, now: time.Now}
}

// Submit validates and persists the draft. It is refused once the draft is
// marked submitted; the flag flips on success and resets only when the
// project selection changes.
func (c *Controller) Submit(draft *Draft) (*api.JournalEntry, error) {
	if draft.Submitted {
		return nil, ErrAlreadySubmitted
	}
	return c.submit(draft)
}

// SubmitManual persists the draft regardless of prior submission state. Same
// validation and payload construction as Submit; intended for correction and
// backfill.
func (c *Controller) SubmitManual(draft *Draft) (*api.JournalEntry, error) {
	return c.submit(draft)
}

func (c *Controller) submit(draft *Draft) (*api.JournalEntry, error) {
	entry, err := c.buildEntry(draft)
	if err != nil {
		return nil, err
	}

	saved, err := c.gateway.SaveEntry(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	draft.Submitted = true

	if hasErrorStatus(entry.StatusPerObject) && c.dispatcher != nil {
		c.dispatcher.NotifyError(entry)
	}

	return saved, nil
}

// buildEntry validates the draft and constructs the wire payload. Statuses are
// re-paired with the freshly derived id list by position, discarding any stale
// association.
func (c *Controller) buildEntry(draft *Draft) (*api.JournalEntry, error) {
	ids := ParseObjectIDs(draft.ObjectIDsInput)

	if draft.ProjectID == "" || draft.TaskType == "" || strings.TrimSpace(draft.HoursInput) == "" || len(ids) == 0 {
		return nil, &ValidationError{Reason: "all fields except comments are required"}
	}

	hours, err := strconv.ParseFloat(strings.TrimSpace(draft.HoursInput), 64)
	if err != nil {
		return nil, &ValidationError{Reason: "hours spent must be a number"}
	}

	statuses := make([]api.ObjectStatus, len(ids))
	for i, id := range ids {
		status := api.StatusPending
		if i < len(draft.StatusPerObject) {
			status = draft.StatusPerObject[i].Status
		}
		statuses[i] = api.ObjectStatus{ObjectID: id, Status: status}
	}

	return &api.JournalEntry{
		Date:            c.now().Format("2006-01-02"),
		EmployeeID:      draft.EmployeeID,
		ProjectID:       draft.ProjectID,
		ObjectIDs:       ids,
		TaskType:        draft.TaskType,
		HoursSpent:      hours,
		StatusPerObject: statuses,
		Comments:        draft.Comments,
	}, nil
}

func hasErrorStatus(rows []api.ObjectStatus) bool {
	for _, row := range rows {
		if row.Status == api.StatusError {
			return true
		}
	}
	return false
}
