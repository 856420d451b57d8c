package timeline

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/framecut/framecut/internal/logging"
	"github.com/framecut/framecut/internal/model"
	"github.com/framecut/framecut/internal/signal"
)

// ClipMove describes the target placement of one clip in a batch move
type ClipMove struct {
	ID       int
	Track    int
	Position int
}

// Model is the authoritative timeline state
type Model struct {
	mu     sync.RWMutex
	tracks []model.TrackInfo
	clips  map[int]*model.Clip
	mixes  map[int]*model.Mix // keyed by owner clip id
	nextID int
	logger *log.Logger

	trackChanged     signal.Signal[int]
	trackListChanged signal.Signal[struct{}]
	clipChanged      signal.Signal[int]
	mixChanged       signal.Signal[MixChange]
	mixRemoved       signal.Signal[int]
}

// New creates an empty timeline
func New(logger *log.Logger) *Model {
	return &Model{
		clips:  make(map[int]*model.Clip),
		mixes:  make(map[int]*model.Mix),
		nextID: 1,
		logger: logging.Component(logger, "timeline"),
	}
}

// TrackChanged is emitted with the index of a track whose state changed
func (m *Model) TrackChanged() *signal.Signal[int] { return &m.trackChanged }

// TrackListChanged is emitted after tracks were inserted or deleted
func (m *Model) TrackListChanged() *signal.Signal[struct{}] { return &m.trackListChanged }

// ClipChanged is emitted with the id of a clip that moved, appeared or disappeared
func (m *Model) ClipChanged() *signal.Signal[int] { return &m.clipChanged }

// MixChanged is emitted after a mix was created, resized or realigned
func (m *Model) MixChanged() *signal.Signal[MixChange] { return &m.mixChanged }

// MixRemoved is emitted with the owner id of a deleted mix
func (m *Model) MixRemoved() *signal.Signal[int] { return &m.mixRemoved }

// TrackCount returns the number of tracks
func (m *Model) TrackCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tracks)
}

// Track returns the track at index
func (m *Model) Track(index int) (model.TrackInfo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if index < 0 || index >= len(m.tracks) {
		return model.TrackInfo{}, false
	}
	return m.tracks[index], true
}

// AddTrack appends a track and returns its index
func (m *Model) AddTrack(info model.TrackInfo) int {
	m.mu.Lock()
	m.tracks = append(m.tracks, info)
	index := len(m.tracks) - 1
	m.mu.Unlock()

	m.trackListChanged.Emit(struct{}{})
	return index
}

// InsertTrack inserts a track before index, shifting the clips of later tracks
func (m *Model) InsertTrack(index int, info model.TrackInfo) error {
	m.mu.Lock()
	if index < 0 || index > len(m.tracks) {
		m.mu.Unlock()
		return fmt.Errorf("insert track %d: %w", index, ErrTrackNotFound)
	}
	m.tracks = append(m.tracks[:index], append([]model.TrackInfo{info}, m.tracks[index:]...)...)
	var shifted []int
	for id, c := range m.clips {
		if c.Track >= index {
			c.Track++
			shifted = append(shifted, id)
		}
	}
	m.mu.Unlock()

	sort.Ints(shifted)
	for _, id := range shifted {
		m.clipChanged.Emit(id)
	}
	m.trackListChanged.Emit(struct{}{})
	return nil
}

// DeleteTrack removes a track together with its clips and their mixes
func (m *Model) DeleteTrack(index int) error {
	m.mu.Lock()
	if index < 0 || index >= len(m.tracks) {
		m.mu.Unlock()
		return fmt.Errorf("delete track %d: %w", index, ErrTrackNotFound)
	}

	var removedClips, removedMixes []int
	for id, c := range m.clips {
		if c.Track == index {
			removedClips = append(removedClips, id)
		}
	}
	sort.Ints(removedClips)
	for _, id := range removedClips {
		removedMixes = append(removedMixes, m.dropMixesLocked(id)...)
		delete(m.clips, id)
	}
	var shifted []int
	for id, c := range m.clips {
		if c.Track > index {
			c.Track--
			shifted = append(shifted, id)
		}
	}
	sort.Ints(shifted)
	m.tracks = append(m.tracks[:index], m.tracks[index+1:]...)
	m.mu.Unlock()

	for _, owner := range removedMixes {
		m.mixRemoved.Emit(owner)
	}
	for _, id := range removedClips {
		m.clipChanged.Emit(id)
	}
	for _, id := range shifted {
		m.clipChanged.Emit(id)
	}
	m.trackListChanged.Emit(struct{}{})
	return nil
}

// RenameTrack sets the display name of a track
func (m *Model) RenameTrack(index int, name string) error {
	return m.updateTrack(index, func(ti *model.TrackInfo) { ti.Name = name })
}

// SetTrackMute mutes or unmutes a track
func (m *Model) SetTrackMute(index int, mute bool) error {
	return m.updateTrack(index, func(ti *model.TrackInfo) { ti.IsMute = mute })
}

// SetTrackBlind hides or shows the video of a track
func (m *Model) SetTrackBlind(index int, blind bool) error {
	return m.updateTrack(index, func(ti *model.TrackInfo) { ti.IsBlind = blind })
}

// SetTrackLocked locks or unlocks a track
func (m *Model) SetTrackLocked(index int, locked bool) error {
	return m.updateTrack(index, func(ti *model.TrackInfo) { ti.IsLocked = locked })
}

func (m *Model) updateTrack(index int, apply func(*model.TrackInfo)) error {
	m.mu.Lock()
	if index < 0 || index >= len(m.tracks) {
		m.mu.Unlock()
		return fmt.Errorf("track %d: %w", index, ErrTrackNotFound)
	}
	apply(&m.tracks[index])
	m.mu.Unlock()

	m.trackChanged.Emit(index)
	return nil
}

// AddClip places a new clip on a track and returns its id
func (m *Model) AddClip(track, position, duration int) (int, error) {
	m.mu.Lock()
	if err := m.checkTrackLocked(track); err != nil {
		m.mu.Unlock()
		return 0, err
	}
	if duration < 1 || position < 0 {
		m.mu.Unlock()
		return 0, fmt.Errorf("add clip at %d (%d frames): %w", position, duration, ErrInvalidDuration)
	}

	c := &model.Clip{ID: m.nextID, Track: track, Position: position, Duration: duration}
	for _, other := range m.clips {
		if c.Overlaps(*other) {
			m.mu.Unlock()
			return 0, fmt.Errorf("add clip at %d on track %d: %w", position, track, ErrClipOverlap)
		}
	}
	m.clips[c.ID] = c
	m.nextID++
	m.mu.Unlock()

	m.clipChanged.Emit(c.ID)
	return c.ID, nil
}

// Clip returns a copy of the clip with the given id
func (m *Model) Clip(id int) (model.Clip, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.clips[id]
	if !ok {
		return model.Clip{}, false
	}
	return *c, true
}

// Clips returns all clips ordered by track then position
func (m *Model) Clips() []model.Clip {
	m.mu.RLock()
	defer m.mu.RUnlock()

	clips := make([]model.Clip, 0, len(m.clips))
	for _, c := range m.clips {
		clips = append(clips, *c)
	}
	sort.Slice(clips, func(i, j int) bool {
		if clips[i].Track != clips[j].Track {
			return clips[i].Track < clips[j].Track
		}
		return clips[i].Position < clips[j].Position
	})
	return clips
}

// ItemPosition returns the timeline position of a clip, or -1 when unknown
func (m *Model) ItemPosition(itemID int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.clips[itemID]; ok {
		return c.Position
	}
	return -1
}

// MoveClip moves one clip to a new track and position
func (m *Model) MoveClip(id, track, position int) error {
	return m.MoveClips([]ClipMove{{ID: id, Track: track, Position: position}})
}

// MoveClips moves several clips at once. Overlaps are checked against the
// final placement, so clips of a group can move past each other. Mixes whose
// clips stay adjacent follow the cut; the others are removed.
func (m *Model) MoveClips(moves []ClipMove) error {
	if len(moves) == 0 {
		return nil
	}

	m.mu.Lock()
	placed := make(map[int]model.Clip, len(m.clips))
	for id, c := range m.clips {
		placed[id] = *c
	}
	for _, mv := range moves {
		c, ok := m.clips[mv.ID]
		if !ok {
			m.mu.Unlock()
			return fmt.Errorf("move clip %d: %w", mv.ID, ErrClipNotFound)
		}
		if err := m.checkTrackLocked(c.Track); err != nil {
			m.mu.Unlock()
			return err
		}
		if err := m.checkTrackLocked(mv.Track); err != nil {
			m.mu.Unlock()
			return err
		}
		if mv.Position < 0 {
			m.mu.Unlock()
			return fmt.Errorf("move clip %d to %d: %w", mv.ID, mv.Position, ErrInvalidDuration)
		}
		target := *c
		target.Track = mv.Track
		target.Position = mv.Position
		placed[mv.ID] = target
	}
	for _, mv := range moves {
		target := placed[mv.ID]
		for id, other := range placed {
			if id != mv.ID && target.Overlaps(other) {
				m.mu.Unlock()
				return fmt.Errorf("move clip %d to %d on track %d: %w", mv.ID, mv.Position, mv.Track, ErrClipOverlap)
			}
		}
	}

	moved := make(map[int]bool, len(moves))
	for _, mv := range moves {
		*m.clips[mv.ID] = placed[mv.ID]
		moved[mv.ID] = true
	}

	var updated, removed []int
	for owner, mix := range m.mixes {
		if !moved[owner] && !moved[mix.LeftID] {
			continue
		}
		left, right := m.clips[mix.LeftID], m.clips[owner]
		if left.Track != right.Track || left.End() != right.Position {
			delete(m.mixes, owner)
			removed = append(removed, owner)
			continue
		}
		mix.Cut = right.Position
		updated = append(updated, owner)
	}
	m.mu.Unlock()

	sort.Ints(updated)
	sort.Ints(removed)
	for _, mv := range moves {
		m.clipChanged.Emit(mv.ID)
	}
	for _, owner := range removed {
		m.logger.Debug("mix dropped after move", "owner", owner)
		m.mixRemoved.Emit(owner)
	}
	for _, owner := range updated {
		m.mixChanged.Emit(MixChange{OwnerID: owner, Roles: model.Roles{model.ParentInRole}})
	}
	return nil
}

// RemoveClip deletes a clip and every mix it takes part in
func (m *Model) RemoveClip(id int) error {
	m.mu.Lock()
	if _, ok := m.clips[id]; !ok {
		m.mu.Unlock()
		return fmt.Errorf("remove clip %d: %w", id, ErrClipNotFound)
	}
	removed := m.dropMixesLocked(id)
	delete(m.clips, id)
	m.mu.Unlock()

	for _, owner := range removed {
		m.mixRemoved.Emit(owner)
	}
	m.clipChanged.Emit(id)
	return nil
}

// dropMixesLocked removes the mixes owned by or anchored on clip id.
func (m *Model) dropMixesLocked(id int) []int {
	var removed []int
	for owner, mix := range m.mixes {
		if owner == id || mix.LeftID == id {
			delete(m.mixes, owner)
			removed = append(removed, owner)
		}
	}
	sort.Ints(removed)
	return removed
}

func (m *Model) checkTrackLocked(track int) error {
	if track < 0 || track >= len(m.tracks) {
		return fmt.Errorf("track %d: %w", track, ErrTrackNotFound)
	}
	if m.tracks[track].IsLocked {
		return fmt.Errorf("track %d: %w", track, ErrTrackLocked)
	}
	return nil
}
