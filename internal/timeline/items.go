package timeline

import (
	"fmt"

	"github.com/framecut/framecut/internal/group"
	"github.com/framecut/framecut/internal/signal"
)

// ClipItem exposes a timeline clip to the group selection. Its bounds are
// frames horizontally and track rows of trackHeight pixels vertically.
type ClipItem struct {
	model       *Model
	id          int
	trackHeight float32

	changed signal.Signal[struct{}]
	conn    *signal.Connection
}

// ClipItem returns a canvas item for clip id. Release must be called once the
// item is no longer displayed.
func (m *Model) ClipItem(id int, trackHeight float32) *ClipItem {
	ci := &ClipItem{model: m, id: id, trackHeight: trackHeight}
	ci.conn = m.clipChanged.Connect(func(changed int) {
		if changed == id {
			ci.changed.Emit(struct{}{})
		}
	})
	return ci
}

// ClipID returns the id of the wrapped clip
func (ci *ClipItem) ClipID() int { return ci.id }

// ItemID returns a canvas wide identifier
func (ci *ClipItem) ItemID() string { return fmt.Sprintf("clip-%d", ci.id) }

// Bounds returns the clip rectangle, or an empty rectangle once the clip is gone
func (ci *ClipItem) Bounds() group.Rect {
	c, ok := ci.model.Clip(ci.id)
	if !ok {
		return group.Rect{}
	}
	return group.NewRect(float32(c.Position), float32(c.Track)*ci.trackHeight, float32(c.Duration), ci.trackHeight)
}

// Track returns the clip track, or group.NoTrack once the clip is gone
func (ci *ClipItem) Track() int {
	c, ok := ci.model.Clip(ci.id)
	if !ok {
		return group.NoTrack
	}
	return c.Track
}

// GeometryChanged is emitted whenever the clip moves or disappears
func (ci *ClipItem) GeometryChanged() *signal.Signal[struct{}] { return &ci.changed }

// Release stops forwarding clip changes
func (ci *ClipItem) Release() {
	ci.conn.Disconnect()
}

// MoveItems moves the clips behind items by frames and tracks in one batch,
// so clips joined by a mix keep their mix.
func (m *Model) MoveItems(items []group.Item, frames, tracks int) error {
	moves := make([]ClipMove, 0, len(items))
	for _, item := range items {
		ci, ok := item.(*ClipItem)
		if !ok || ci.model != m {
			return fmt.Errorf("move %s: %w", item.ItemID(), ErrClipNotFound)
		}
		c, ok := m.Clip(ci.id)
		if !ok {
			return fmt.Errorf("move %s: %w", item.ItemID(), ErrClipNotFound)
		}
		moves = append(moves, ClipMove{ID: c.ID, Track: c.Track + tracks, Position: c.Position + frames})
	}
	return m.MoveClips(moves)
}
