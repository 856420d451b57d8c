package model

import "fmt"

// MixAlignment describes how a mix is anchored relative to the cut it spans.
type MixAlignment string

const (
	// AlignNone means no explicit anchor; resizes keep the current proportion
	AlignNone MixAlignment = "none"

	// AlignLeft means the mix starts at the cut
	AlignLeft MixAlignment = "left"

	// AlignRight means the mix ends at the cut
	AlignRight MixAlignment = "right"

	// AlignCenter means the mix is centered on the cut
	AlignCenter MixAlignment = "center"
)

// String returns the string representation of MixAlignment
func (a MixAlignment) String() string {
	if a == "" {
		return string(AlignNone)
	}
	return string(a)
}

// IsSet returns true if the alignment anchors the mix to a side or the center
func (a MixAlignment) IsSet() bool {
	return a == AlignLeft || a == AlignRight || a == AlignCenter
}

// ParseMixAlignment converts a stored or user supplied value into a MixAlignment.
// An empty value maps to AlignNone.
func ParseMixAlignment(s string) (MixAlignment, error) {
	switch MixAlignment(s) {
	case "", AlignNone:
		return AlignNone, nil
	case AlignLeft, AlignRight, AlignCenter:
		return MixAlignment(s), nil
	default:
		return AlignNone, fmt.Errorf("unknown mix alignment: %q", s)
	}
}

// MonitorScene identifies the overlay a monitor shows while a parameter set is edited.
type MonitorScene string

const (
	MonitorSceneDefault  MonitorScene = "default"
	MonitorSceneGeometry MonitorScene = "geometry"
)
