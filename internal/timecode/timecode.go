// Package timecode converts frame counts to and from HH:MM:SS:FF text.
package timecode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalid is returned for text that is neither a timecode nor a frame count
var ErrInvalid = errors.New("invalid timecode")

// Format renders frames as HH:MM:SS:FF for the given frame rate
func Format(frames, fps int) string {
	if fps < 1 {
		fps = 1
	}
	sign := ""
	if frames < 0 {
		sign = "-"
		frames = -frames
	}
	ff := frames % fps
	secs := frames / fps
	return fmt.Sprintf("%s%02d:%02d:%02d:%02d", sign, secs/3600, secs/60%60, secs%60, ff)
}

// Parse reads a timecode or a plain frame count. Timecodes may omit leading
// fields, so "01:10" is one second and ten frames.
func Parse(text string, fps int) (int, error) {
	if fps < 1 {
		fps = 1
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("parse %q: %w", text, ErrInvalid)
	}

	fields := strings.Split(text, ":")
	if len(fields) > 4 {
		return 0, fmt.Errorf("parse %q: too many fields: %w", text, ErrInvalid)
	}

	// frames, seconds, minutes, hours
	scale := []int{1, fps, fps * 60, fps * 3600}
	total := 0
	for i := range fields {
		field := fields[len(fields)-1-i]
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("parse %q: field %q: %w", text, field, ErrInvalid)
		}
		if len(fields) > 1 && i == 0 && n >= fps {
			return 0, fmt.Errorf("parse %q: frame %d at %d fps: %w", text, n, fps, ErrInvalid)
		}
		if len(fields) > 1 && (i == 1 || i == 2) && n >= 60 {
			return 0, fmt.Errorf("parse %q: field %q out of range: %w", text, field, ErrInvalid)
		}
		if n > (math.MaxInt-total)/scale[i] {
			return 0, fmt.Errorf("parse %q: field %q overflows: %w", text, field, ErrInvalid)
		}
		total += n * scale[i]
	}
	return total, nil
}
