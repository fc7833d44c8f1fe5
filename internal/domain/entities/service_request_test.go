package entities

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to RequestStatus }{
		{RequestStatusPending, RequestStatusAccepted},
		{RequestStatusPending, RequestStatusRejected},
		{RequestStatusPending, RequestStatusCancelled},
		{RequestStatusAccepted, RequestStatusInProgress},
		{RequestStatusAccepted, RequestStatusCancelled},
		{RequestStatusInProgress, RequestStatusCompleted},
		{RequestStatusInProgress, RequestStatusCancelled},
	}
	for _, tr := range allowed {
		if !CanTransition(tr.from, tr.to) {
			t.Fatalf("expected %s -> %s to be legal", tr.from, tr.to)
		}
	}

	denied := []struct{ from, to RequestStatus }{
		{RequestStatusPending, RequestStatusInProgress},
		{RequestStatusPending, RequestStatusCompleted},
		{RequestStatusAccepted, RequestStatusPending},
		{RequestStatusAccepted, RequestStatusRejected},
		{RequestStatusInProgress, RequestStatusAccepted},
		{RequestStatusCompleted, RequestStatusCancelled},
		{RequestStatusCancelled, RequestStatusPending},
		{RequestStatusRejected, RequestStatusAccepted},
	}
	for _, tr := range denied {
		if CanTransition(tr.from, tr.to) {
			t.Fatalf("expected %s -> %s to be illegal", tr.from, tr.to)
		}
	}
}

func TestRequestStatus_Terminal(t *testing.T) {
	for _, s := range []RequestStatus{RequestStatusCompleted, RequestStatusCancelled, RequestStatusRejected} {
		if !s.Terminal() {
			t.Fatalf("expected %s to be terminal", s)
		}
		if CanTransition(s, RequestStatusPending) {
			t.Fatalf("terminal status %s must not transition", s)
		}
	}
	for _, s := range []RequestStatus{RequestStatusPending, RequestStatusAccepted, RequestStatusInProgress} {
		if s.Terminal() {
			t.Fatalf("expected %s to be non-terminal", s)
		}
	}
}

func TestRequestStatusAndPriority_Valid(t *testing.T) {
	if !RequestStatusPending.Valid() || RequestStatus("unknown").Valid() {
		t.Fatal("status validity mismatch")
	}
	if !RequestPriorityEmergency.Valid() || RequestPriority("rush").Valid() {
		t.Fatal("priority validity mismatch")
	}
}
