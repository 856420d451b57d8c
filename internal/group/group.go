package group

import (
	"errors"
	"fmt"
	"math"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"

	"github.com/framecut/framecut/internal/signal"
)

// NoTrack is returned by Track when the members do not share a single track
const NoTrack = -1

// ErrNoMover is returned by RequestMove when the group cannot move its members
var ErrNoMover = errors.New("group has no mover")

// Item is a timeline element that can take part in a group. Bounds are in
// scene coordinates.
type Item interface {
	ItemID() string
	Bounds() Rect
	Track() int
}

// Notifier is implemented by items that report their own geometry changes.
type Notifier interface {
	GeometryChanged() *signal.Signal[struct{}]
}

// Mover applies a group move to the underlying items.
type Mover interface {
	MoveItems(items []Item, frames, tracks int) error
}

// Group is a set of items moved, hit-tested and painted as one. Items are not
// owned by the group.
type Group struct {
	id          string
	pos         fyne.Position
	trackHeight float32
	mover       Mover

	items []Item
	conns map[string]*signal.Connection

	shape Shape
	dirty bool

	changed signal.Signal[struct{}]
}

// New creates an empty group placed at pos
func New(pos fyne.Position, trackHeight float32, mover Mover) *Group {
	return &Group{
		id:          uuid.NewString(),
		pos:         pos,
		trackHeight: trackHeight,
		mover:       mover,
		conns:       make(map[string]*signal.Connection),
	}
}

// ID returns the group identifier
func (g *Group) ID() string { return g.id }

// Pos returns the group position in scene coordinates
func (g *Group) Pos() fyne.Position { return g.pos }

// Changed is emitted whenever the shape or the position may have changed.
// Handlers can read Shape right away.
func (g *Group) Changed() *signal.Signal[struct{}] { return &g.changed }

// Len returns the number of members
func (g *Group) Len() int { return len(g.items) }

// Items returns the members in insertion order
func (g *Group) Items() []Item {
	out := make([]Item, len(g.items))
	copy(out, g.items)
	return out
}

// Has reports whether item is a member
func (g *Group) Has(item Item) bool {
	return g.indexOf(item.ItemID()) >= 0
}

// AddItem inserts item into the group. Adding a member twice is a no-op.
func (g *Group) AddItem(item Item) {
	if g.Has(item) {
		return
	}
	g.items = append(g.items, item)
	if n, ok := item.(Notifier); ok {
		g.conns[item.ItemID()] = n.GeometryChanged().Connect(func(struct{}) { g.ItemChanged() })
	}
	g.invalidate()
}

// RemoveItem drops item from the group and reports whether it was a member
func (g *Group) RemoveItem(item Item) bool {
	i := g.indexOf(item.ItemID())
	if i < 0 {
		return false
	}
	g.items = append(g.items[:i], g.items[i+1:]...)
	if conn, ok := g.conns[item.ItemID()]; ok {
		conn.Disconnect()
		delete(g.conns, item.ItemID())
	}
	g.invalidate()
	return true
}

// Dissolve removes every member and stops listening to them
func (g *Group) Dissolve() {
	for id, conn := range g.conns {
		conn.Disconnect()
		delete(g.conns, id)
	}
	g.items = nil
	g.invalidate()
}

// SetPos moves the group origin without touching the members
func (g *Group) SetPos(pos fyne.Position) {
	g.pos = pos
	g.invalidate()
}

// ItemChanged must be called when a member moved or was resized. Members
// implementing Notifier call it themselves.
func (g *Group) ItemChanged() {
	g.invalidate()
}

// Shape returns the union of the member rectangles relative to the group position
func (g *Group) Shape() Shape {
	if g.dirty {
		g.recomputeBounds()
	}
	return g.shape
}

// BoundingRect returns the bounds of Shape
func (g *Group) BoundingRect() Rect {
	return g.Shape().Bounds()
}

// HitTest reports whether the scene point p falls on a member
func (g *Group) HitTest(p fyne.Position) bool {
	return g.Shape().Contains(fyne.NewPos(p.X-g.pos.X, p.Y-g.pos.Y))
}

// Track returns the track shared by all members, or NoTrack
func (g *Group) Track() int {
	if len(g.items) == 0 {
		return NoTrack
	}
	track := g.items[0].Track()
	for _, item := range g.items[1:] {
		if item.Track() != track {
			return NoTrack
		}
	}
	return track
}

// RequestMove moves the group towards target. The position is snapped to
// whole frames and track rows and kept so that no member leaves the scene.
// The accepted position is returned; on error the group stays in place.
func (g *Group) RequestMove(target fyne.Position) (fyne.Position, error) {
	frames := int(math.Round(float64(target.X - g.pos.X)))
	tracks := 0
	if g.trackHeight > 0 {
		tracks = int(math.Round(float64((target.Y - g.pos.Y) / g.trackHeight)))
	}

	for _, item := range g.items {
		b := item.Bounds()
		if int(b.X)+frames < 0 {
			frames = -int(b.X)
		}
		if item.Track()+tracks < 0 {
			tracks = -item.Track()
		}
	}
	if frames == 0 && tracks == 0 {
		return g.pos, nil
	}
	if g.mover == nil {
		return g.pos, ErrNoMover
	}
	if err := g.mover.MoveItems(g.Items(), frames, tracks); err != nil {
		return g.pos, fmt.Errorf("move group %s: %w", g.id, err)
	}

	g.SetPos(fyne.NewPos(g.pos.X+float32(frames), g.pos.Y+float32(tracks)*g.trackHeight))
	return g.pos, nil
}

func (g *Group) invalidate() {
	g.dirty = true
	g.changed.Emit(struct{}{})
}

// recomputeBounds rebuilds the shape from the current member geometry.
func (g *Group) recomputeBounds() {
	rects := make([]Rect, 0, len(g.items))
	for _, item := range g.items {
		rects = append(rects, item.Bounds().Translated(-g.pos.X, -g.pos.Y))
	}
	g.shape = Union(rects...)
	g.dirty = false
}

func (g *Group) indexOf(id string) int {
	for i, item := range g.items {
		if item.ItemID() == id {
			return i
		}
	}
	return -1
}
