package entity

import (
	"testing"
	"time"
)

func TestLabelStateDerivation(t *testing.T) {
	now := time.Now()
	np := "I1234"

	cases := []struct {
		name  string
		label Label
		want  LabelState
	}{
		{"fresh label", Label{}, LabelStatePending},
		{"started with inspector", Label{StartedAt: &now, InspectorNP: &np}, LabelStateInProgress},
		{"started without inspector", Label{StartedAt: &now}, LabelStatePending},
		{"finished", Label{StartedAt: &now, InspectorNP: &np, FinishedAt: &now}, LabelStateCompleted},
		{"finish timestamp alone", Label{FinishedAt: &now}, LabelStateCompleted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.label.State(); got != tc.want {
				t.Errorf("State() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestProgressPercent(t *testing.T) {
	cases := []struct {
		completed, total int64
		want             int
	}{
		{0, 0, 0},
		{0, 10, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{10, 10, 100},
		{999, 1000, 100},
		{994, 1000, 99},
	}
	for _, tc := range cases {
		if got := ProgressPercent(tc.completed, tc.total); got != tc.want {
			t.Errorf("ProgressPercent(%d, %d) = %d, want %d", tc.completed, tc.total, got, tc.want)
		}
	}
}
