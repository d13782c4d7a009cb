package extract

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"385.00", 385.00},
		{"1,250.50", 1250.50},
		{"$99.99", 99.99},
		{"Rs. 500.00", 500.00},
		{"", 0.0},
		{"garbage", 0.0},
		{"1.2.3", 0.0},
	}
	for _, tt := range tests {
		if got := parseAmount(tt.in); got != tt.want {
			t.Errorf("parseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsNumericText(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2", true},
		{"50.00", true},
		{"1,250.00", true},
		{"Qty", false},
		{"A4", false},
		{"", false},
		{",.", false},
		{"12-34", false},
	}
	for _, tt := range tests {
		if got := isNumericText(tt.in); got != tt.want {
			t.Errorf("isNumericText(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRound2(t *testing.T) {
	if got := round2(2 * 50.005); got != 100.01 {
		t.Errorf("round2(100.01) = %v", got)
	}
	if got := round2(100.0 / 3.0); got != 33.33 {
		t.Errorf("round2(33.333...) = %v", got)
	}
}
