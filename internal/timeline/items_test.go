package timeline

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2"

	"github.com/framecut/framecut/internal/group"
	"github.com/framecut/framecut/internal/model"
)

func TestClipItem_Bounds(t *testing.T) {
	tl := newTestTimeline(t)
	tl.AddTrack(model.TrackInfo{Type: model.TrackTypeAudio})
	id, err := tl.AddClip(1, 40, 25)
	if err != nil {
		t.Fatal(err)
	}

	item := tl.ClipItem(id, 50)
	defer item.Release()

	if item.Bounds() != group.NewRect(40, 50, 25, 50) {
		t.Errorf("Bounds() = %+v, expected 40,50 25x50", item.Bounds())
	}
	if item.Track() != 1 {
		t.Errorf("Track() = %d, expected 1", item.Track())
	}
	if item.ItemID() != "clip-3" {
		t.Errorf("ItemID() = %s, expected clip-3", item.ItemID())
	}

	gone := tl.ClipItem(99, 50)
	defer gone.Release()
	if !gone.Bounds().Empty() || gone.Track() != group.NoTrack {
		t.Error("Unknown clip should have empty bounds and NoTrack")
	}
}

func TestClipItem_ForwardsOwnChangesOnly(t *testing.T) {
	tl := newTestTimeline(t)
	item := tl.ClipItem(1, 50)

	calls := 0
	item.GeometryChanged().Connect(func(struct{}) { calls++ })

	if err := tl.MoveClip(2, 0, 400); err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Errorf("Expected no notification for another clip, got %d", calls)
	}

	if err := tl.MoveClip(1, 0, 10); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("Expected 1 notification, got %d", calls)
	}

	item.Release()
	if err := tl.MoveClip(1, 0, 20); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("Released item should not forward changes, got %d", calls)
	}
}

func TestGroupMoveKeepsMix(t *testing.T) {
	tl := newTestTimeline(t)
	tl.AddTrack(model.TrackInfo{Type: model.TrackTypeVideo})
	if err := tl.CreateMix(1, 2, 10, model.AlignCenter); err != nil {
		t.Fatal(err)
	}

	a, b := tl.ClipItem(1, 50), tl.ClipItem(2, 50)
	sel := group.NewSelection(50, tl)
	sel.Select(a, b)
	g := sel.Group()

	if g.Track() != 0 {
		t.Fatalf("Track() = %d, expected 0", g.Track())
	}

	pos, err := g.RequestMove(fyne.NewPos(30, 50))
	if err != nil {
		t.Fatalf("RequestMove() error = %v", err)
	}
	if pos != fyne.NewPos(30, 50) {
		t.Errorf("RequestMove() = %v, expected (30, 50)", pos)
	}
	if g.Track() != 1 {
		t.Errorf("Track() after move = %d, expected 1", g.Track())
	}
	if g.BoundingRect() != group.NewRect(0, 0, 200, 50) {
		t.Errorf("BoundingRect() = %+v, expected 0,0 200x50", g.BoundingRect())
	}
	mix, ok := tl.Mix(2)
	if !ok || mix.Cut != 130 {
		t.Errorf("Mix after group move = %+v (found %v), expected cut 130", mix, ok)
	}
}

func TestMoveItems_RejectsForeignItems(t *testing.T) {
	tl := newTestTimeline(t)
	other := newTestTimeline(t)

	err := tl.MoveItems([]group.Item{other.ClipItem(1, 50)}, 5, 0)
	if !errors.Is(err, ErrClipNotFound) {
		t.Errorf("MoveItems() error = %v, expected ErrClipNotFound", err)
	}
}

// freshShape unions the current member bounds relative to the group position
func freshShape(g *group.Group) group.Shape {
	var rects []group.Rect
	for _, item := range g.Items() {
		rects = append(rects, item.Bounds().Translated(-g.Pos().X, -g.Pos().Y))
	}
	return group.Union(rects...)
}

func TestGroupFollowsTrackShifts(t *testing.T) {
	tl := newTestTimeline(t)
	a, b := tl.ClipItem(1, 50), tl.ClipItem(2, 50)
	defer a.Release()
	defer b.Release()

	sel := group.NewSelection(50, tl)
	sel.Select(a, b)
	g := sel.Group()

	changes := 0
	g.Changed().Connect(func(struct{}) { changes++ })

	if err := tl.InsertTrack(0, model.TrackInfo{Type: model.TrackTypeAudio}); err != nil {
		t.Fatalf("InsertTrack() error = %v", err)
	}
	if !g.Shape().Equal(freshShape(g)) {
		t.Errorf("Shape() after InsertTrack = %+v, expected %+v", g.Shape().Bounds(), freshShape(g).Bounds())
	}
	if g.Shape().Bounds() != group.NewRect(0, 50, 200, 50) {
		t.Errorf("Bounds after InsertTrack = %+v, expected 0,50 200x50", g.Shape().Bounds())
	}
	if g.Track() != 1 {
		t.Errorf("Track() after InsertTrack = %d, expected 1", g.Track())
	}
	if changes == 0 {
		t.Error("Expected the group to announce the shift")
	}

	if err := tl.DeleteTrack(0); err != nil {
		t.Fatalf("DeleteTrack() error = %v", err)
	}
	if !g.Shape().Equal(freshShape(g)) {
		t.Errorf("Shape() after DeleteTrack = %+v, expected %+v", g.Shape().Bounds(), freshShape(g).Bounds())
	}
	if g.Shape().Bounds() != group.NewRect(0, 0, 200, 50) {
		t.Errorf("Bounds after DeleteTrack = %+v, expected 0,0 200x50", g.Shape().Bounds())
	}
	if g.Track() != 0 {
		t.Errorf("Track() after DeleteTrack = %d, expected 0", g.Track())
	}
}
