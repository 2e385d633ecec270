package roundutil

import "testing"

func TestNormalizePlayerName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "empty", input: "", want: "", wantOK: false},
		{name: "whitespace only", input: "   ", want: "", wantOK: false},
		{name: "padded", input: " Alice ", want: "Alice", wantOK: true},
		{name: "inner spaces kept", input: "Paul McBeth", want: "Paul McBeth", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizePlayerName(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("NormalizePlayerName(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCoerceHoleCount(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{name: "eighteen", input: "18", want: 18, wantOK: true},
		{name: "one", input: "1", want: 1, wantOK: true},
		{name: "zero", input: "0", wantOK: false},
		{name: "negative", input: "-9", wantOK: false},
		{name: "empty", input: "", wantOK: false},
		{name: "text", input: "nine", wantOK: false},
		{name: "digits then text", input: "9 holes", want: 9, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CoerceHoleCount(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("CoerceHoleCount(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
