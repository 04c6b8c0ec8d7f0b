package errors

import (
	"testing"
	"time"
)

func TestValidatePlacement(t *testing.T) {
	tests := []struct {
		placement string
		wantErr   bool
	}{
		{"", false}, // empty means default
		{"bottom", false},
		{"top-start", false},
		{"right-end", false},
		{"middle", true},
		{"bottom-center", true},
		{"Bottom", true}, // case-sensitive
	}

	for _, tt := range tests {
		err := ValidatePlacement(tt.placement)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePlacement(%q) error = %v, wantErr %v", tt.placement, err, tt.wantErr)
		}
		if tt.wantErr && !Is(err, ErrCodeInvalidPlacement) {
			t.Errorf("ValidatePlacement(%q) code = %v, want %v", tt.placement, GetCode(err), ErrCodeInvalidPlacement)
		}
	}
}

func TestValidateStrategy(t *testing.T) {
	tests := []struct {
		strategy string
		wantErr  bool
	}{
		{"", false}, // empty means default
		{"absolute", false},
		{"fixed", false},
		{"sticky", true},
		{"FIXED", true}, // case-sensitive
	}

	for _, tt := range tests {
		err := ValidateStrategy(tt.strategy)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStrategy(%q) error = %v, wantErr %v", tt.strategy, err, tt.wantErr)
		}
	}
}

func TestValidateUpdateInterval(t *testing.T) {
	tests := []struct {
		interval time.Duration
		wantErr  bool
	}{
		{0, false}, // zero means default
		{time.Millisecond, false},
		{100 * time.Millisecond, false},
		{time.Microsecond, true},
		{-time.Second, true},
	}

	for _, tt := range tests {
		err := ValidateUpdateInterval(tt.interval)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateUpdateInterval(%v) error = %v, wantErr %v", tt.interval, err, tt.wantErr)
		}
	}
}
