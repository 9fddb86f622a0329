package appointment

import (
	"testing"

	"github.com/salalivre/room-scheduler/internal/httperr"
	"github.com/salalivre/room-scheduler/internal/models"
)

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusUnderReview {
		t.Errorf("InitialStatus = %q, want %q", InitialStatus(), StatusUnderReview)
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name    string
		current Status
		next    Status
		wantErr string
	}{
		{"review to scheduled", StatusUnderReview, StatusScheduled, ""},
		{"review to canceled", StatusUnderReview, StatusCanceled, ""},
		{"scheduled to canceled", StatusScheduled, StatusCanceled, ""},
		{"canceled stays canceled", StatusCanceled, StatusCanceled, ""},
		{"canceled to scheduled", StatusCanceled, StatusScheduled, "invalid_state"},
		{"canceled to review", StatusCanceled, StatusUnderReview, "invalid_state"},
		{"unknown target", StatusUnderReview, Status("Pendente"), "invalid_status"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.current, tc.next)

			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if !httperr.IsBusiness(err, tc.wantErr) {
				t.Fatalf("err = %v, want business %q", err, tc.wantErr)
			}
		})
	}
}

func TestSetStatus(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusUnderReview)}

	if err := SetStatus(ap, StatusScheduled); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if ap.Status != string(StatusScheduled) {
		t.Errorf("Status = %q, want %q", ap.Status, StatusScheduled)
	}
}

func TestSetStatusKeepsRowOnError(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusCanceled)}

	if err := SetStatus(ap, StatusScheduled); err == nil {
		t.Fatal("expected error leaving canceled state")
	}
	if ap.Status != string(StatusCanceled) {
		t.Errorf("Status mutated to %q on failed transition", ap.Status)
	}
}
