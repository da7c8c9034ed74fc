package entity

import "testing"

func TestParseOrderType(t *testing.T) {
	cases := []struct {
		input string
		want  OrderType
	}{
		{"regular", OrderTypeRegular},
		{"mmea", OrderTypeMmea},
		{"", OrderTypeRegular},
		{"bogus", OrderTypeRegular},
	}
	for _, tc := range cases {
		if got := ParseOrderType(tc.input); got != tc.want {
			t.Errorf("ParseOrderType(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestOrderTypeLabelsPerRim(t *testing.T) {
	if got := OrderTypeRegular.LabelsPerRim(); got != 2 {
		t.Errorf("regular LabelsPerRim = %d, want 2", got)
	}
	if got := OrderTypeMmea.LabelsPerRim(); got != 1 {
		t.Errorf("mmea LabelsPerRim = %d, want 1", got)
	}
}

func TestOrderTypeRequiresCutSide(t *testing.T) {
	if !OrderTypeRegular.RequiresCutSide() {
		t.Error("regular should require a cut side")
	}
	if OrderTypeMmea.RequiresCutSide() {
		t.Error("mmea should not require a cut side")
	}
}

func TestOrderStatusNext(t *testing.T) {
	next, ok := OrderStatusRegistered.Next()
	if !ok || next != OrderStatusInProgress {
		t.Errorf("registered.Next() = %q, %v", next, ok)
	}
	next, ok = OrderStatusInProgress.Next()
	if !ok || next != OrderStatusCompleted {
		t.Errorf("in_progress.Next() = %q, %v", next, ok)
	}
	if _, ok := OrderStatusCompleted.Next(); ok {
		t.Error("completed must be terminal")
	}
}

func TestOrderStatusIsProcessable(t *testing.T) {
	if !OrderStatusRegistered.IsProcessable() {
		t.Error("registered should be processable")
	}
	if !OrderStatusInProgress.IsProcessable() {
		t.Error("in_progress should be processable")
	}
	if OrderStatusCompleted.IsProcessable() {
		t.Error("completed must not be processable")
	}
}

func TestCutSideOpposite(t *testing.T) {
	if CutSideLeft.Opposite() != CutSideRight {
		t.Error("left.Opposite() should be right")
	}
	if CutSideRight.Opposite() != CutSideLeft {
		t.Error("right.Opposite() should be left")
	}
}

func TestCutSidePriority(t *testing.T) {
	if CutSideLeft.Priority() >= CutSideRight.Priority() {
		t.Errorf("left priority %d should sort before right priority %d",
			CutSideLeft.Priority(), CutSideRight.Priority())
	}
}

func TestUserRoleIsAdmin(t *testing.T) {
	if !RoleAdmin.IsAdmin() {
		t.Error("admin role should report IsAdmin")
	}
	if RoleOperator.IsAdmin() {
		t.Error("operator role should not report IsAdmin")
	}
}
