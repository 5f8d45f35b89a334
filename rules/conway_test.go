package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantSurvive := n == 2 || n == 3
		if got := ApplyConwayRules(n, true); got != wantSurvive {
			t.Errorf("alive with %d neighbours: got %v, want %v", n, got, wantSurvive)
		}

		wantBirth := n == 3
		if got := ApplyConwayRules(n, false); got != wantBirth {
			t.Errorf("dead with %d neighbours: got %v, want %v", n, got, wantBirth)
		}
	}
}

func TestNextState(t *testing.T) {
	tests := []struct {
		name       string
		state      uint8
		neighbours int
		want       uint8
	}{
		{"underpopulation", 1, 1, 0},
		{"survives with two", 1, 2, 1},
		{"survives with three", 1, 3, 1},
		{"overpopulation", 1, 4, 0},
		{"birth", 0, 3, 1},
		{"stays dead with two", 0, 2, 0},
		{"stays dead with six", 0, 6, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextState(tt.state, tt.neighbours); got != tt.want {
				t.Errorf("NextState(%d, %d) = %d, want %d", tt.state, tt.neighbours, got, tt.want)
			}
		})
	}
}
