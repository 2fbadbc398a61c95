package goal

import "testing"

func TestNextStatus(t *testing.T) {
	cases := []struct {
		name     string
		prev     Status
		progress int
		want     Status
	}{
		{"fresh zero", StatusNotStarted, 0, StatusNotStarted},
		{"fresh partial", StatusNotStarted, 1, StatusInProgress},
		{"fresh full", StatusNotStarted, 100, StatusCompleted},
		{"in progress regressed to zero", StatusInProgress, 0, StatusNotStarted},
		{"in progress partial", StatusInProgress, 40, StatusInProgress},
		{"in progress full", StatusInProgress, 100, StatusCompleted},
		{"on hold stays on hold", StatusOnHold, 40, StatusOnHold},
		{"on hold released by zero", StatusOnHold, 0, StatusNotStarted},
		{"on hold released by completion", StatusOnHold, 100, StatusCompleted},
		{"completed never reverts", StatusCompleted, 40, StatusCompleted},
		{"completed never reverts to zero", StatusCompleted, 0, StatusCompleted},
		{"progress above 100 completes", StatusInProgress, 120, StatusCompleted},
		{"negative progress treated as zero", StatusInProgress, -5, StatusNotStarted},
	}

	for _, tc := range cases {
		if got := NextStatus(tc.prev, tc.progress); got != tc.want {
			t.Fatalf("%s: NextStatus(%s, %d) = %s, want %s", tc.name, tc.prev, tc.progress, got, tc.want)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusNotStarted, StatusInProgress, StatusCompleted, StatusOnHold} {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if Status("paused").Valid() {
		t.Fatalf("expected unknown status to be invalid")
	}
}
