package service

import "testing"

func TestScoreConverterConvert(t *testing.T) {
	conv := NewScoreConverterService()
	tests := []struct {
		score, max float64
		wantPct    float64
		wantLetter string
	}{
		{10, 10, 100, "A"},
		{8, 10, 80, "A"},
		{7.9, 10, 79, "B"},
		{13, 20, 65, "B"},
		{1, 2, 50, "C"},
		{7, 20, 35, "D"},
		{1, 3, 33.33, "E"},
		{0, 3, 0, "E"},
		{0, 0, 0, "E"},
	}
	for _, tt := range tests {
		got, err := conv.Convert(tt.score, tt.max)
		if err != nil {
			t.Fatalf("Convert(%v, %v) error = %v", tt.score, tt.max, err)
		}
		if got.Percentage != tt.wantPct || got.Letter != tt.wantLetter {
			t.Errorf("Convert(%v, %v) = %+v, want %v%% %s", tt.score, tt.max, got, tt.wantPct, tt.wantLetter)
		}
	}
}

func TestScoreConverterRejectsOutOfRange(t *testing.T) {
	conv := NewScoreConverterService()
	for _, in := range [][2]float64{{-1, 5}, {6, 5}, {0, -1}} {
		if _, err := conv.Convert(in[0], in[1]); err == nil {
			t.Errorf("Convert(%v, %v) succeeded, want error", in[0], in[1])
		}
	}
}
