package group

import (
	"testing"

	"fyne.io/fyne/v2"
)

func TestSelection_Lifecycle(t *testing.T) {
	s := NewSelection(50, nil)
	var notified []*Group
	s.Changed().Connect(func(g *Group) { notified = append(notified, g) })

	a := &fakeItem{id: "a", rect: NewRect(30, 50, 10, 50), track: 1}
	b := &fakeItem{id: "b", rect: NewRect(10, 100, 10, 50), track: 2}
	c := &fakeItem{id: "c", rect: NewRect(60, 50, 10, 50), track: 1}

	s.Add(a)
	if s.Group() != nil {
		t.Fatal("A single selected item must not form a group")
	}

	s.Add(b)
	g := s.Group()
	if g == nil {
		t.Fatal("Expected a group for two selected items")
	}
	if g.Pos() != fyne.NewPos(10, 50) {
		t.Errorf("Group position = %v, expected top-left (10, 50)", g.Pos())
	}

	s.Add(c)
	if s.Group() != g || g.Len() != 3 {
		t.Errorf("Expected the same group with 3 members, got len %d", g.Len())
	}

	s.Remove(b)
	if g.Len() != 2 || g.Track() != 1 {
		t.Errorf("After removal: len %d track %d, expected 2 and 1", g.Len(), g.Track())
	}

	s.Remove(c)
	if s.Group() != nil {
		t.Error("Group should be dissolved at one item")
	}
	if a.changed.Len() != 0 {
		t.Errorf("Dissolved group still listens to members: %d", a.changed.Len())
	}

	if len(notified) == 0 || notified[len(notified)-1] != nil {
		t.Error("Last notification should carry a nil group")
	}
}

func TestSelection_SelectAndClear(t *testing.T) {
	s := NewSelection(50, nil)
	a := &fakeItem{id: "a", rect: NewRect(0, 0, 10, 50)}
	b := &fakeItem{id: "b", rect: NewRect(20, 0, 10, 50)}

	s.Select(a, b, a)
	if len(s.Items()) != 2 {
		t.Fatalf("Items() = %d, expected 2", len(s.Items()))
	}
	first := s.Group()

	s.Select(a, b)
	if s.Group() == first {
		t.Error("Select should build a fresh group")
	}
	if first.Len() != 0 {
		t.Error("Replaced group should be dissolved")
	}

	s.Clear()
	if s.Group() != nil || len(s.Items()) != 0 {
		t.Error("Clear should drop the group and the items")
	}
}
