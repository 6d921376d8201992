package api

import (
	"io"
	"net/http"
	"testing"

	json "github.com/json-iterator/go"
)

func TestClockInSendsProject(t *testing.T) {
	var body map[string]string
	newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/attendance/clock-in" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("unmarshal request: %v", err)
		}
		writeJSON(t, w, http.StatusOK, `{"success":true,"message":"clocked in"}`)
	})

	if err := ClockIn("proj-1"); err != nil {
		t.Fatalf("ClockIn: %v", err)
	}
	if body["project_id"] != "proj-1" {
		t.Errorf("request body = %v", body)
	}
}

func TestClockInFailureInsideSuccessEnvelope(t *testing.T) {
	newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"success":false,"message":"already clocked in"}`)
	})

	err := ClockIn("")
	if err == nil {
		t.Fatal("expected error when success=false")
	}
	if err.Error() != "already clocked in" {
		t.Errorf("err = %q, want the envelope message", err)
	}
}

func TestClockOutSendsBreakAndNotes(t *testing.T) {
	var body map[string]interface{}
	newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/attendance/clock-out" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("unmarshal request: %v", err)
		}
		writeJSON(t, w, http.StatusOK, `{"success":true}`)
	})

	if err := ClockOut(45, "left early"); err != nil {
		t.Fatalf("ClockOut: %v", err)
	}
	if body["break_duration"] != float64(45) || body["notes"] != "left early" {
		t.Errorf("request body = %v", body)
	}
}

func TestGetTodayAttendance(t *testing.T) {
	newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/attendance/today" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK,
			`{"clocked_in":true,"clocked_out":false,"clock_in_time":"2026-08-30T08:30:00Z"}`)
	})

	status, err := GetTodayAttendance()
	if err != nil {
		t.Fatalf("GetTodayAttendance: %v", err)
	}
	if !status.ClockedIn || status.ClockedOut {
		t.Errorf("status = %+v", status)
	}
	if status.ClockInTime != "2026-08-30T08:30:00Z" {
		t.Errorf("ClockInTime = %q", status.ClockInTime)
	}
}
