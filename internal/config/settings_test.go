package config

import "testing"

func TestSetFPSLimit_Clamps(t *testing.T) {
	defer SetFPSLimit(DefaultFPSLimit)

	tests := []struct {
		in, want int
	}{
		{0, 0},
		{-10, 0},
		{10, MinFPSLimit},
		{60, 60},
		{144, 144},
		{5000, MaxFPSLimit},
	}
	for _, tt := range tests {
		SetFPSLimit(tt.in)
		if got := GetFPSLimit(); got != tt.want {
			t.Errorf("SetFPSLimit(%d): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}
