package timecode

import (
	"errors"
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		frames int
		fps    int
		want   string
	}{
		{0, 25, "00:00:00:00"},
		{24, 25, "00:00:00:24"},
		{25, 25, "00:00:01:00"},
		{25*3600 + 25*61 + 3, 25, "01:01:01:03"},
		{-30, 30, "-00:00:01:00"},
		{5, 0, "00:00:05:00"},
	}

	for _, tt := range tests {
		if got := Format(tt.frames, tt.fps); got != tt.want {
			t.Errorf("Format(%d, %d) = %q, expected %q", tt.frames, tt.fps, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		text    string
		want    int
		wantErr bool
	}{
		{"25", 25, false},
		{" 7 ", 7, false},
		{"01:10", 35, false},
		{"00:00:01:00", 25, false},
		{"01:01:01:03", 25*3600 + 25*61 + 3, false},
		{"00:00:00:25", 0, true},
		{"00:61:00", 0, true},
		{"1:2:3:4:5", 0, true},
		{"abc", 0, true},
		{"-3", 0, true},
		{"", 0, true},
		{"2562047788015215:00:00:00", 0, true},
		{"9223372036854775807:00", 0, true},
		{"9223372036854775807", math.MaxInt, false},
	}

	for _, tt := range tests {
		got, err := Parse(tt.text, 25)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse(%q) error = %v, expected ErrInvalid", tt.text, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("Parse(%q) = %d, %v, expected %d", tt.text, got, err, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, frames := range []int{0, 1, 29, 30, 1799, 108000} {
		got, err := Parse(Format(frames, 30), 30)
		if err != nil || got != frames {
			t.Errorf("Parse(Format(%d)) = %d, %v", frames, got, err)
		}
	}
}
