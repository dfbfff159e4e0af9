package practice

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"4", "4"},
		{" 2x ", "2x"},
		{"X^2 + C", "x^2 + c"},
		{"x^2   +    C", "x^2 + c"},
		{"\tLN|x| +\nC", "ln|x| + c"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"  2X ", "x^2 + C", "ln|x|  +  c", "mixed   CASE here"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		given    string
		expected string
		want     bool
	}{
		{"4", "4", true},
		{" 4 ", "4", true},
		{"2X", "2x", true},
		{"x^2+C", "x^2 + C", false}, // spacing differences inside tokens are not bridged
		{"x^2 + c", "x^2 + C", true},
		{"5", "4", false},
		{"", "4", false},
	}
	for _, tt := range tests {
		if got := CheckAnswer(tt.given, tt.expected); got != tt.want {
			t.Errorf("CheckAnswer(%q, %q) = %v, want %v", tt.given, tt.expected, got, tt.want)
		}
	}
}
