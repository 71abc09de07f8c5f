package element

import "testing"

func TestMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		att, def Type
		want     float64
	}{
		{"fire vs ice is weak", Fire, Ice, 2},
		{"fire vs dragon resists", Fire, Dragon, 0.5},
		{"electric vs ground immune", Electric, Ground, 0},
		{"ice vs flying weak", Ice, Flying, 2},
		{"missing pair neutral", Water, Fighting, 1},
		{"no element neutral", None, Rock, 1},
		{"defender without element", Fire, None, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Multiplier(tt.att, tt.def); got != tt.want {
				t.Errorf("Multiplier(%s, %s) = %v, want %v", tt.att, tt.def, got, tt.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	for ty := Normal; ty <= Dragon; ty++ {
		got, err := Parse(ty.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", ty.String(), err)
		}
		if got != ty {
			t.Errorf("Parse(%q) = %v, want %v", ty.String(), got, ty)
		}
	}
	if _, err := Parse("PLASMA"); err == nil {
		t.Error("expected error for unknown element")
	}
}
