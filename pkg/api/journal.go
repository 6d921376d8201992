package api

import (
	"fmt"

	"github.com/emsuite/ems-cli/pkg/client"
	"github.com/emsuite/ems-cli/pkg/logger"
)

// FetchJournalEntry retrieves the journal entry for an (employee, project, date)
// key. The backend answers with an array; only the first element is used. A nil
// entry with a nil error means no entry exists for that day.
func FetchJournalEntry(employeeID, projectID, date string) (*JournalEntry, error) {
	logger.Debug("Fetching journal entry", "employee_id", employeeID, "project_id", projectID, "date", date)

	var entries []JournalEntry

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"employee_id": employeeID,
			"project_id":  projectID,
			"date":        date,
		}).
		SetResult(&entries).
		Get("/api/journal-entries")

	if err := CheckResponse(resp, err); err != nil {
		return nil, fmt.Errorf("failed to fetch journal entry: %w", err)
	}

	if len(entries) == 0 {
		return nil, nil
	}

	return &entries[0], nil
}

// SaveJournalEntry persists a journal entry. The backend upserts on the
// (employee, project, date) key and echoes the persisted entry back.
func SaveJournalEntry(entry *JournalEntry) (*JournalEntry, error) {
	logger.Debug("Saving journal entry", "project_id", entry.ProjectID, "date", entry.Date)

	var saved JournalEntry

	resp, err := client.GetClient().
		R().
		SetBody(entry).
		SetResult(&saved).
		Post("/api/journal-entries")

	if err := CheckResponse(resp, err); err != nil {
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	return &saved, nil
}
