package journal

import (
	"reflect"
	"testing"

	"github.com/emsuite/ems-cli/pkg/api"
)

func TestParseObjectIDs(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"A, B ,C", []string{"A", "B", "C"}},
		{"A,,B", []string{"A", "B"}},
		{"  ", []string{}},
		{"", []string{}},
		{"A,A,A", []string{"A", "A", "A"}}, // duplicates allowed
		{"one", []string{"one"}},
		{",trailing,", []string{"trailing"}},
	}

	for _, tt := range tests {
		got := ParseObjectIDs(tt.raw)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseObjectIDs(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestReconcileDefaultsToPending(t *testing.T) {
	rows := Reconcile(nil, "A, B ,C")

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, id := range []string{"A", "B", "C"} {
		if rows[i].ObjectID != id {
			t.Errorf("row %d: ObjectID = %q, want %q", i, rows[i].ObjectID, id)
		}
		if rows[i].Status != api.StatusPending {
			t.Errorf("row %d: Status = %q, want pending", i, rows[i].Status)
		}
	}
}

func TestReconcileKeepsStatusByPosition(t *testing.T) {
	prev := []api.ObjectStatus{
		{ObjectID: "A", Status: api.StatusFinished},
		{ObjectID: "B", Status: api.StatusPending},
	}

	// Replacing the id at position 0 keeps the old status there; position 1
	// keeps pending by position, not because "B" survived as an id.
	rows := Reconcile(prev, "X,B")

	if rows[0].ObjectID != "X" || rows[0].Status != api.StatusFinished {
		t.Errorf("row 0 = %+v, want {X finished}", rows[0])
	}
	if rows[1].ObjectID != "B" || rows[1].Status != api.StatusPending {
		t.Errorf("row 1 = %+v, want {B pending}", rows[1])
	}
}

func TestReconcileInsertionShiftsStatuses(t *testing.T) {
	prev := []api.ObjectStatus{
		{ObjectID: "A", Status: api.StatusFinished},
		{ObjectID: "B", Status: api.StatusError},
	}

	// Inserting in the middle: the old statuses stay with their indexes,
	// they do not follow the ids.
	rows := Reconcile(prev, "A,NEW,B")

	want := []api.ObjectStatus{
		{ObjectID: "A", Status: api.StatusFinished},
		{ObjectID: "NEW", Status: api.StatusError},
		{ObjectID: "B", Status: api.StatusPending},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Reconcile = %v, want %v", rows, want)
	}
}

func TestReconcileLengthMatchesDerivedIDs(t *testing.T) {
	raws := []string{"", "A", "A,B,C", " A , , B ", "A,B,C,D,E", "x"}

	var rows []api.ObjectStatus
	for _, raw := range raws {
		rows = Reconcile(rows, raw)
		if len(rows) != len(ParseObjectIDs(raw)) {
			t.Errorf("after %q: %d rows for %d ids", raw, len(rows), len(ParseObjectIDs(raw)))
		}
	}
}

func TestSetStatusTouchesExactlyOneRow(t *testing.T) {
	draft := &Draft{}
	draft.SetObjectIDs("A,B,C")

	if err := draft.SetStatus(1, api.StatusError); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	want := []api.ObjectStatus{
		{ObjectID: "A", Status: api.StatusPending},
		{ObjectID: "B", Status: api.StatusError},
		{ObjectID: "C", Status: api.StatusPending},
	}
	if !reflect.DeepEqual(draft.StatusPerObject, want) {
		t.Errorf("StatusPerObject = %v, want %v", draft.StatusPerObject, want)
	}
}

func TestSetStatusRejectsBadInput(t *testing.T) {
	draft := &Draft{}
	draft.SetObjectIDs("A")

	if err := draft.SetStatus(5, api.StatusError); err == nil {
		t.Error("expected error for out-of-range index")
	}
	if err := draft.SetStatus(-1, api.StatusError); err == nil {
		t.Error("expected error for negative index")
	}
	if err := draft.SetStatus(0, "done"); err == nil {
		t.Error("expected error for unknown status")
	}
}
