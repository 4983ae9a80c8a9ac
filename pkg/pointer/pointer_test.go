package pointer

import "testing"

func TestButtonsContain(t *testing.T) {
	held := ButtonPrimary | ButtonTertiary
	if !held.Contain(ButtonPrimary) {
		t.Error("expected primary to be held")
	}
	if !held.Contain(ButtonPrimary | ButtonTertiary) {
		t.Error("expected primary|tertiary to be held")
	}
	if held.Contain(ButtonSecondary) {
		t.Error("secondary should not be held")
	}
	if held.Contain(ButtonPrimary | ButtonSecondary) {
		t.Error("Contain must require the full set")
	}
}

func TestButtonsString(t *testing.T) {
	tests := []struct {
		b    Buttons
		want string
	}{
		{0, "none"},
		{ButtonPrimary, "primary"},
		{ButtonSecondary, "secondary"},
		{ButtonPrimary | ButtonTertiary, "primary|tertiary"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("Buttons(%b).String() = %q, want %q", tt.b, got, tt.want)
		}
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		p    Phase
		want string
	}{
		{PhaseDown, "down"},
		{PhaseMove, "move"},
		{PhaseUp, "up"},
		{PhaseCancel, "cancel"},
		{Phase(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}
