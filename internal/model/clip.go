package model

// Clip is a media item placed on a track. Positions and durations are frames.
type Clip struct {
	ID       int
	Track    int
	Position int
	Duration int
}

// End returns the first frame after the clip
func (c Clip) End() int {
	return c.Position + c.Duration
}

// Contains reports whether frame lies inside the clip
func (c Clip) Contains(frame int) bool {
	return frame >= c.Position && frame < c.End()
}

// Overlaps reports whether two clips share at least one frame on the same track
func (c Clip) Overlaps(other Clip) bool {
	if c.Track != other.Track {
		return false
	}
	return c.Position < other.End() && other.Position < c.End()
}

// Mix is a transition spanning the cut between two adjacent clips on one track.
// The right clip owns the mix.
type Mix struct {
	OwnerID int
	LeftID  int

	// Cut is the frame where the left clip ends and the owner clip begins
	Cut int

	// Duration is stored 0-based: the mix covers Duration+1 frames
	Duration int

	// CutOffset is the number of mix frames placed before the cut
	CutOffset int

	Align MixAlignment
}

// Length returns the number of frames covered by the mix
func (m Mix) Length() int {
	return m.Duration + 1
}

// Start returns the first frame of the mix
func (m Mix) Start() int {
	return m.Cut - m.CutOffset
}

// End returns the first frame after the mix
func (m Mix) End() int {
	return m.Start() + m.Length()
}

// Before returns the number of mix frames on the left clip's side of the cut
func (m Mix) Before() int {
	return m.CutOffset
}

// After returns the number of mix frames on the owner clip's side of the cut
func (m Mix) After() int {
	return m.Length() - m.CutOffset
}
