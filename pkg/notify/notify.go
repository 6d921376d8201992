package notify

import (
	"context"
	"strings"
	"time"

	"github.com/emsuite/ems-cli/pkg/api"
	"github.com/emsuite/ems-cli/pkg/logger"
)

// TemplateVars parameterize the error-notification email
type TemplateVars struct {
	ProjectName  string
	ObjectIDs    string
	EmployeeName string
	Date         string
}

// Sender delivers one notification. Implementations are injected so the
// submission path can be exercised without a live email service.
type Sender interface {
	Send(ctx context.Context, vars TemplateVars) error
}

// Dispatcher turns saved entries with errored objects into a single email.
// Delivery is best-effort: failures are logged and never surfaced or retried.
type Dispatcher struct {
	sender    Sender
	employees []api.Employee
	projects  []api.Project
}

// NewDispatcher creates a dispatcher resolving display names from the given
// directories.
func NewDispatcher(sender Sender, employees []api.Employee, projects []api.Project) *Dispatcher {
	return &Dispatcher{sender: sender, employees: employees, projects: projects}
}

// NotifyError sends one notification for the entry, covering every errored
// object id. The send runs in the background; the caller never waits on it.
func (d *Dispatcher) NotifyError(entry *api.JournalEntry) {
	vars := d.buildVars(entry)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := d.sender.Send(ctx, vars); err != nil {
			logger.Error("Error notification dispatch failed", "project_id", entry.ProjectID, "err", err)
			return
		}
		logger.Debug("Error notification dispatched", "project_id", entry.ProjectID, "object_ids", vars.ObjectIDs)
	}()
}

func (d *Dispatcher) buildVars(entry *api.JournalEntry) TemplateVars {
	erroredIDs := make([]string, 0, len(entry.StatusPerObject))
	for _, row := range entry.StatusPerObject {
		if row.Status == api.StatusError {
			erroredIDs = append(erroredIDs, row.ObjectID)
		}
	}

	return TemplateVars{
		ProjectName:  d.projectName(entry.ProjectID),
		ObjectIDs:    strings.Join(erroredIDs, ", "),
		EmployeeName: d.employeeName(entry.EmployeeID),
		Date:         formatDate(entry.Date),
	}
}

// projectName resolves a project id to its display name, falling back to the
// raw id when the directory has no match.
func (d *Dispatcher) projectName(id string) string {
	for _, p := range d.projects {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}

func (d *Dispatcher) employeeName(id string) string {
	for _, e := range d.employees {
		if e.ID == id {
			return e.Name
		}
	}
	return id
}

func formatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}
