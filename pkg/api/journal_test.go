package api

import (
	"errors"
	"io"
	"net/http"
	"testing"

	json "github.com/json-iterator/go"
)

func TestFetchJournalEntryTakesFirstElement(t *testing.T) {
	newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/journal-entries" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("employee_id") != "emp-1" || q.Get("project_id") != "proj-1" || q.Get("date") != "2026-08-30" {
			t.Errorf("unexpected query %v", q)
		}
		writeJSON(t, w, http.StatusOK, `[
			{"date":"2026-08-30","employeeId":"emp-1","projectId":"proj-1",
			 "objectIds":["A","B"],"taskType":"coding","hoursSpent":7.5,
			 "statusPerObject":[{"objectId":"A","status":"finished"},{"objectId":"B","status":"pending"}],
			 "comments":"first"},
			{"date":"2026-08-30","employeeId":"emp-1","projectId":"proj-1",
			 "objectIds":["Z"],"taskType":"review","hoursSpent":1,
			 "statusPerObject":[{"objectId":"Z","status":"pending"}]}
		]`)
	})

	entry, err := FetchJournalEntry("emp-1", "proj-1", "2026-08-30")
	if err != nil {
		t.Fatalf("FetchJournalEntry: %v", err)
	}
	if entry == nil {
		t.Fatal("expected an entry")
	}
	if entry.Comments != "first" {
		t.Errorf("got entry %q, want the first array element", entry.Comments)
	}
	if entry.HoursSpent != 7.5 || entry.TaskType != "coding" {
		t.Errorf("entry = %+v", entry)
	}
	if len(entry.StatusPerObject) != 2 || entry.StatusPerObject[0].Status != StatusFinished {
		t.Errorf("StatusPerObject = %v", entry.StatusPerObject)
	}
}

func TestFetchJournalEntryAbsent(t *testing.T) {
	newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `[]`)
	})

	entry, err := FetchJournalEntry("emp-1", "proj-1", "2026-08-30")
	if err != nil {
		t.Fatalf("FetchJournalEntry: %v", err)
	}
	if entry != nil {
		t.Errorf("expected nil entry for empty result, got %+v", entry)
	}
}

func TestFetchJournalEntryServerFailure(t *testing.T) {
	newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, `{"code":"storage_down","message":"boom"}`)
	})

	_, err := FetchJournalEntry("emp-1", "proj-1", "2026-08-30")
	if err == nil {
		t.Fatal("expected error on 500")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want a wrapped *APIError", err)
	}
	if apiErr.Code != "storage_down" || apiErr.StatusCode != 500 {
		t.Errorf("apiErr = %+v", apiErr)
	}
	if !IsServerError(err) {
		t.Error("IsServerError = false for a wrapped 500")
	}
}

func TestSaveJournalEntry(t *testing.T) {
	var received JournalEntry
	newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/journal-entries" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &received); err != nil {
			t.Fatalf("unmarshal request: %v", err)
		}
		writeJSON(t, w, http.StatusOK, string(body))
	})

	entry := &JournalEntry{
		Date:       "2026-08-30",
		EmployeeID: "emp-1",
		ProjectID:  "proj-1",
		ObjectIDs:  []string{"A"},
		TaskType:   "testing",
		HoursSpent: 2,
		StatusPerObject: []ObjectStatus{
			{ObjectID: "A", Status: StatusError},
		},
	}

	saved, err := SaveJournalEntry(entry)
	if err != nil {
		t.Fatalf("SaveJournalEntry: %v", err)
	}

	if received.EmployeeID != "emp-1" || received.TaskType != "testing" {
		t.Errorf("request body = %+v", received)
	}
	if len(received.StatusPerObject) != 1 || received.StatusPerObject[0].ObjectID != "A" {
		t.Errorf("request statuses = %v", received.StatusPerObject)
	}
	if saved.Date != "2026-08-30" || saved.HoursSpent != 2 {
		t.Errorf("echoed entry = %+v", saved)
	}
}

func TestSaveJournalEntryRejected(t *testing.T) {
	newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, `{"code":"invalid_entry","message":"invalid entry"}`)
	})

	_, err := SaveJournalEntry(&JournalEntry{})
	if err == nil {
		t.Fatal("expected error on 400")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want a wrapped *APIError", err)
	}
	if apiErr.StatusCode != 400 {
		t.Errorf("StatusCode = %d, want 400", apiErr.StatusCode)
	}
}
