package errors

import (
	"fmt"
	"testing"
)

func TestEntryError_Format(t *testing.T) {
	err := WrapEntry(250, 10, ErrRangeOverflow)
	want := "callback entry [250, 250+10): callback range exceeds message type space"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEntryError_Unwrap(t *testing.T) {
	err := WrapEntry(20, 2, ErrRangeOverflow)
	if !Is(err, ErrRangeOverflow) {
		t.Error("should unwrap to ErrRangeOverflow")
	}
}

func TestConfigError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  ConfigError
		want string
	}{
		{
			name: "with value and hint",
			err: ConfigError{
				Field:   "handler.start",
				Value:   300,
				Message: "must fit in one byte",
				Hint:    "message types range from 0 to 255",
			},
			want: "config: handler.start=300: must fit in one byte\n  hint: message types range from 0 to 255",
		},
		{
			name: "missing value",
			err:  ConfigError{Field: "scenario", Message: "no packets defined"},
			want: "config: scenario: no packets defined",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSentinels_Distinct(t *testing.T) {
	sentinels := []error{ErrEmpty, ErrRangeOverflow, ErrCallbacksVersion, ErrNoAuthCallback}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && Is(a, b) {
				t.Errorf("sentinel %v should not match %v", a, b)
			}
		}
	}
}

func TestReexports(t *testing.T) {
	inner := New("inner")
	wrapped := fmt.Errorf("outer: %w", inner)
	if !Is(wrapped, inner) {
		t.Error("Is should see through fmt wrapping")
	}
	if Unwrap(wrapped) != inner {
		t.Error("Unwrap should return the inner error")
	}
}
