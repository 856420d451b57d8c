package model

import "strconv"

// TrackType distinguishes video tracks from audio tracks
type TrackType string

const (
	TrackTypeVideo TrackType = "video"
	TrackTypeAudio TrackType = "audio"
)

// String returns the string representation of TrackType
func (t TrackType) String() string {
	return string(t)
}

// TrackInfo holds the user visible state of a track
type TrackInfo struct {
	Type     TrackType
	Name     string
	IsBlind  bool // video hidden
	IsMute   bool
	IsLocked bool
}

// DisplayName returns the track name, or its index when the track is unnamed
func (ti TrackInfo) DisplayName(index int) string {
	if ti.Name != "" {
		return ti.Name
	}
	return strconv.Itoa(index)
}

// IsVideo returns true for video tracks
func (ti TrackInfo) IsVideo() bool {
	return ti.Type == TrackTypeVideo
}
