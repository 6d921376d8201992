package journal

import "github.com/emsuite/ems-cli/pkg/api"

// Gateway is the remote persistence boundary for journal entries. It issues a
// single request per call: no retries, no caching.
type Gateway interface {
	// FetchEntry returns the entry for the key, or (nil, nil) when absent.
	FetchEntry(employeeID, projectID, date string) (*api.JournalEntry, error)
	// SaveEntry persists the entry (backend upserts) and echoes it back.
	SaveEntry(entry *api.JournalEntry) (*api.JournalEntry, error)
}

// APIGateway is the production Gateway backed by the REST API
type APIGateway struct{}

func (APIGateway) FetchEntry(employeeID, projectID, date string) (*api.JournalEntry, error) {
	return api.FetchJournalEntry(employeeID, projectID, date)
}

func (APIGateway) SaveEntry(entry *api.JournalEntry) (*api.JournalEntry, error) {
	return api.SaveJournalEntry(entry)
}
