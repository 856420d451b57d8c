package timeline

import "errors"

var (
	ErrTrackNotFound   = errors.New("track not found")
	ErrTrackLocked     = errors.New("track is locked")
	ErrClipNotFound    = errors.New("clip not found")
	ErrClipOverlap     = errors.New("clip overlaps another clip")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrMixNotFound     = errors.New("mix not found")
	ErrMixExists       = errors.New("clip already owns a mix")
	ErrNotAdjacent     = errors.New("clips are not adjacent on one track")
	ErrMixTooLong      = errors.New("mix is longer than the clips it joins")
)
