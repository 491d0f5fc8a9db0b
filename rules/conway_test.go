package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	cases := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"lonely cell dies", 0, true, false},
		{"single neighbor dies", 1, true, false},
		{"two neighbors survive", 2, true, true},
		{"two neighbors do not give birth", 2, false, false},
		{"three neighbors survive", 3, true, true},
		{"three neighbors give birth", 3, false, true},
		{"four neighbors overpopulate", 4, true, false},
		{"four neighbors stay dead", 4, false, false},
		{"eight neighbors overpopulate", 8, true, false},
		{"dead with no neighbors stays dead", 0, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ApplyConwayRules(tc.neighbors, tc.alive); got != tc.want {
				t.Fatalf("ApplyConwayRules(%d, %v) = %v, want %v", tc.neighbors, tc.alive, got, tc.want)
			}
		})
	}
}
