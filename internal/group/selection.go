package group

import (
	"fyne.io/fyne/v2"

	"github.com/framecut/framecut/internal/signal"
)

// Selection tracks the selected items of a canvas. A Group exists while two
// or more items are selected; it is dissolved when the selection shrinks to
// one item or is cleared. An item is never a member of two groups.
type Selection struct {
	trackHeight float32
	mover       Mover

	items []Item
	group *Group

	changed signal.Signal[*Group]
}

// NewSelection creates an empty selection
func NewSelection(trackHeight float32, mover Mover) *Selection {
	return &Selection{trackHeight: trackHeight, mover: mover}
}

// Changed is emitted with the current group (nil when none) after every change
func (s *Selection) Changed() *signal.Signal[*Group] { return &s.changed }

// Group returns the active group, or nil when fewer than two items are selected
func (s *Selection) Group() *Group { return s.group }

// Items returns the selected items
func (s *Selection) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Select replaces the selection with items
func (s *Selection) Select(items ...Item) {
	s.dissolve()
	s.items = nil
	for _, item := range items {
		if s.indexOf(item) < 0 {
			s.items = append(s.items, item)
		}
	}
	s.sync()
}

// Add extends the selection with item
func (s *Selection) Add(item Item) {
	if s.indexOf(item) >= 0 {
		return
	}
	s.items = append(s.items, item)
	s.sync()
}

// Remove drops item from the selection
func (s *Selection) Remove(item Item) {
	i := s.indexOf(item)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	if s.group != nil {
		s.group.RemoveItem(item)
	}
	s.sync()
}

// Clear empties the selection
func (s *Selection) Clear() {
	s.items = nil
	s.sync()
}

func (s *Selection) sync() {
	if len(s.items) < 2 {
		s.dissolve()
		s.changed.Emit(nil)
		return
	}
	if s.group == nil {
		s.group = New(topLeft(s.items), s.trackHeight, s.mover)
	}
	for _, item := range s.items {
		s.group.AddItem(item)
	}
	s.changed.Emit(s.group)
}

func (s *Selection) dissolve() {
	if s.group != nil {
		s.group.Dissolve()
		s.group = nil
	}
}

func (s *Selection) indexOf(item Item) int {
	for i, it := range s.items {
		if it.ItemID() == item.ItemID() {
			return i
		}
	}
	return -1
}

func topLeft(items []Item) fyne.Position {
	b := items[0].Bounds()
	x, y := b.X, b.Y
	for _, item := range items[1:] {
		b = item.Bounds()
		x = min(x, b.X)
		y = min(y, b.Y)
	}
	return fyne.NewPos(x, y)
}
