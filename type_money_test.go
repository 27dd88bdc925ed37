package ipoworth

import "testing"

func TestMoney_String(t *testing.T) {
	tests := []struct {
		name     string
		m        Money
		expected string
	}{
		{"grouping and cents", M(739200, "USD"), "$739,200.00"},
		{"small amount", M(22.00, "USD"), "$22.00"},
		{"fractional cents are truncated for display", M(18.005, "USD"), "$18.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestMoney_DivPrice(t *testing.T) {
	shares := M(500, "USD").DivPrice(M(22, "USD"))
	if whole := shares.Floor(); !whole.Equal(Q(22)) {
		t.Errorf("DivPrice().Floor() = %s, want 22", whole)
	}
}

func TestMoney_Mul(t *testing.T) {
	got := M(150, "USD").Mul(Q(4928))
	if want := M(739200, "USD"); !got.Equal(want) {
		t.Errorf("Mul() = %s, want %s", got, want)
	}
}

func TestPercent_Strings(t *testing.T) {
	if got := Percent(147740).String(); got != "147740.00%" {
		t.Errorf("String() = %q", got)
	}
	if got := Percent(-3.2).SignedString(); got != "-3.20%" {
		t.Errorf("SignedString() = %q", got)
	}
	if got := Percent(3.2).SignedString(); got != "+3.20%" {
		t.Errorf("SignedString() = %q", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q", got)
	}
}
