package timeline

import (
	"fmt"
	"sort"

	"github.com/framecut/framecut/internal/model"
)

// CreateMix joins two adjacent clips with a mix of length frames. The right
// clip becomes the owner.
func (m *Model) CreateMix(leftID, rightID, length int, align model.MixAlignment) error {
	m.mu.Lock()
	left, ok := m.clips[leftID]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("create mix: clip %d: %w", leftID, ErrClipNotFound)
	}
	right, ok := m.clips[rightID]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("create mix: clip %d: %w", rightID, ErrClipNotFound)
	}
	if left.Track != right.Track || left.End() != right.Position {
		m.mu.Unlock()
		return fmt.Errorf("create mix %d-%d: %w", leftID, rightID, ErrNotAdjacent)
	}
	if err := m.checkTrackLocked(right.Track); err != nil {
		m.mu.Unlock()
		return err
	}
	if _, exists := m.mixes[rightID]; exists {
		m.mu.Unlock()
		return fmt.Errorf("create mix on clip %d: %w", rightID, ErrMixExists)
	}
	if length < 1 {
		m.mu.Unlock()
		return fmt.Errorf("create mix of %d frames: %w", length, ErrInvalidDuration)
	}

	mix := model.Mix{OwnerID: rightID, LeftID: leftID, Cut: right.Position}
	if err := placeMix(&mix, *left, *right, length, align, false); err != nil {
		m.mu.Unlock()
		return err
	}
	m.mixes[rightID] = &mix
	m.mu.Unlock()

	m.logger.Debug("mix created", "owner", rightID, "duration", mix.Duration, "align", align)
	m.mixChanged.Emit(MixChange{OwnerID: rightID, Roles: model.Roles{model.ParentDurationRole, model.ParentInRole}})
	return nil
}

// RemoveMix deletes the mix owned by ownerID
func (m *Model) RemoveMix(ownerID int) error {
	m.mu.Lock()
	if _, ok := m.mixes[ownerID]; !ok {
		m.mu.Unlock()
		return fmt.Errorf("remove mix %d: %w", ownerID, ErrMixNotFound)
	}
	delete(m.mixes, ownerID)
	m.mu.Unlock()

	m.mixRemoved.Emit(ownerID)
	return nil
}

// Mix returns a copy of the mix owned by ownerID
func (m *Model) Mix(ownerID int) (model.Mix, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mix, ok := m.mixes[ownerID]
	if !ok {
		return model.Mix{}, false
	}
	return *mix, true
}

// Mixes returns all mixes ordered by owner id
func (m *Model) Mixes() []model.Mix {
	m.mu.RLock()
	defer m.mu.RUnlock()

	mixes := make([]model.Mix, 0, len(m.mixes))
	for _, mix := range m.mixes {
		mixes = append(mixes, *mix)
	}
	sort.Slice(mixes, func(i, j int) bool { return mixes[i].OwnerID < mixes[j].OwnerID })
	return mixes
}

// MixAlign returns the alignment of the mix owned by clipID, or AlignNone
// when the clip owns no mix.
func (m *Model) MixAlign(clipID int) model.MixAlignment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if mix, ok := m.mixes[clipID]; ok {
		return mix.Align
	}
	return model.AlignNone
}

// MixDuration returns the 0-based duration of the mix owned by ownerID
func (m *Model) MixDuration(ownerID int) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if mix, ok := m.mixes[ownerID]; ok {
		return mix.Duration, true
	}
	return 0, false
}

// ResizeMix gives the mix owned by clipID a new 0-based duration and records
// the alignment used to place it. A change notification carrying
// ParentDurationRole follows every successful call.
func (m *Model) ResizeMix(clipID, duration int, align model.MixAlignment) error {
	m.mu.Lock()
	mix, ok := m.mixes[clipID]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("resize mix %d: %w", clipID, ErrMixNotFound)
	}
	if duration < 0 {
		m.mu.Unlock()
		return fmt.Errorf("resize mix %d to %d: %w", clipID, duration, ErrInvalidDuration)
	}
	right := m.clips[clipID]
	if err := m.checkTrackLocked(right.Track); err != nil {
		m.mu.Unlock()
		return err
	}
	left := m.clips[mix.LeftID]

	next := *mix
	if err := placeMix(&next, *left, *right, duration+1, align, true); err != nil {
		m.mu.Unlock()
		return err
	}
	*mix = next
	m.mu.Unlock()

	m.logger.Debug("mix resized", "owner", clipID, "duration", duration, "align", align)
	m.mixChanged.Emit(MixChange{OwnerID: clipID, Roles: model.Roles{model.ParentDurationRole}})
	return nil
}

// placeMix sets duration, cut offset and alignment of mix for a length of
// frames. Left puts the whole mix after the cut, Right before it, Center puts
// length/2 frames before the cut (the odd frame lands after it). None keeps
// the previous before/after proportion when keepRatio is set, and centers the
// mix otherwise.
func placeMix(mix *model.Mix, left, right model.Clip, length int, align model.MixAlignment, keepRatio bool) error {
	var before int
	switch align {
	case model.AlignLeft:
		before = 0
	case model.AlignRight:
		before = length
	case model.AlignCenter:
		before = length / 2
	default:
		align = model.AlignNone
		if keepRatio {
			before = mix.CutOffset * length / mix.Length()
		} else {
			before = length / 2
		}
	}

	after := length - before
	if before > left.Duration || after > right.Duration {
		return fmt.Errorf("place mix of %d frames (%d before cut, %d after): %w", length, before, after, ErrMixTooLong)
	}

	mix.Duration = length - 1
	mix.CutOffset = before
	mix.Align = align
	return nil
}
