package api

import (
	"io"
	"net/http"
	"testing"

	json "github.com/json-iterator/go"
)

func TestGetPendingLeaveRequests(t *testing.T) {
	newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/leave-requests" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("status") != "pending" {
			t.Errorf("status query = %q, want pending", r.URL.Query().Get("status"))
		}
		writeJSON(t, w, http.StatusOK, `{"requests":[
			{"id":"lr-1","employeeName":"Dana","startDate":"2026-09-01","endDate":"2026-09-03","leaveType":"vacation"},
			{"id":"lr-2","employeeName":"Sam","startDate":"2026-09-10","endDate":"2026-09-10","leaveType":"sick"}
		]}`)
	})

	requests, err := GetPendingLeaveRequests()
	if err != nil {
		t.Fatalf("GetPendingLeaveRequests: %v", err)
	}
	if len(requests) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(requests))
	}
	if requests[0].ID != "lr-1" || requests[0].EmployeeName != "Dana" {
		t.Errorf("requests[0] = %+v", requests[0])
	}
}

func TestResolveLeaveRequest(t *testing.T) {
	var path string
	newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		writeJSON(t, w, http.StatusOK, `{}`)
	})

	if err := ResolveLeaveRequest("lr-1", LeaveActionApprove); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if path != "/api/leave-requests/lr-1/approve" {
		t.Errorf("path = %q", path)
	}

	if err := ResolveLeaveRequest("lr-2", LeaveActionDeny); err != nil {
		t.Fatalf("deny: %v", err)
	}
	if path != "/api/leave-requests/lr-2/deny" {
		t.Errorf("path = %q", path)
	}
}

func TestResolveLeaveRequestRejectsUnknownAction(t *testing.T) {
	called := false
	newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		writeJSON(t, w, http.StatusOK, `{}`)
	})

	if err := ResolveLeaveRequest("lr-1", "escalate"); err == nil {
		t.Error("expected error for unknown action")
	}
	if called {
		t.Error("unknown action reached the backend")
	}
}

func TestSubmitLeaveRequest(t *testing.T) {
	var received LeaveRequestSubmission
	newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/leave-requests" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &received); err != nil {
			t.Fatalf("unmarshal request: %v", err)
		}
		writeJSON(t, w, http.StatusCreated, `{}`)
	})

	req := &LeaveRequestSubmission{
		LeaveType: "vacation",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-05",
		Reason:    "trip",
	}
	if err := SubmitLeaveRequest(req); err != nil {
		t.Fatalf("SubmitLeaveRequest: %v", err)
	}
	if received.LeaveType != "vacation" || received.EndDate != "2026-09-05" {
		t.Errorf("request body = %+v", received)
	}
}
