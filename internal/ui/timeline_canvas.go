package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/framecut/framecut/internal/group"
	"github.com/framecut/framecut/internal/logging"
	"github.com/framecut/framecut/internal/signal"
	"github.com/framecut/framecut/internal/timeline"
)

// ClipView draws one clip. A primary tap selects it alone, a secondary tap
// toggles it in the selection.
type ClipView struct {
	widget.BaseWidget

	item     *timeline.ClipItem
	selected bool
	onTap    func(view *ClipView, toggle bool)

	rect  *canvas.Rectangle
	label *canvas.Text
}

func newClipView(item *timeline.ClipItem, onTap func(view *ClipView, toggle bool)) *ClipView {
	v := &ClipView{
		item:  item,
		onTap: onTap,
		rect:  canvas.NewRectangle(themeColor(ColorNameClip)),
		label: canvas.NewText(strconv.Itoa(item.ClipID()), themeColor(ColorNameSelectedTrack)),
	}
	v.ExtendBaseWidget(v)
	return v
}

// ClipID returns the id of the displayed clip
func (v *ClipView) ClipID() int { return v.item.ClipID() }

// Tapped selects the clip
func (v *ClipView) Tapped(_ *fyne.PointEvent) {
	if v.onTap != nil {
		v.onTap(v, false)
	}
}

// TappedSecondary toggles the clip in the selection
func (v *ClipView) TappedSecondary(_ *fyne.PointEvent) {
	if v.onTap != nil {
		v.onTap(v, true)
	}
}

func (v *ClipView) setSelected(selected bool) {
	v.selected = selected
	if selected {
		v.rect.StrokeColor = themeColor(ColorNameSelectedTrack)
		v.rect.StrokeWidth = OverlayStrokeWidth
	} else {
		v.rect.StrokeWidth = 0
	}
	v.rect.Refresh()
}

// CreateRenderer creates the widget renderer
func (v *ClipView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(v.rect, container.NewPadded(v.label)))
}

// TimelineCanvas places clip views, mix markers and the group overlay in
// scene coordinates: one pixel per frame and one row per track.
type TimelineCanvas struct {
	tl          *timeline.Model
	logger      *log.Logger
	trackHeight float32

	selection *group.Selection
	overlay   *GroupOverlay
	views     map[int]*ClipView
	mixes     []fyne.CanvasObject
	content   *fyne.Container

	conns    signal.Group
	selConn  *signal.Connection
	onTapped func(clipID int)
}

// NewTimelineCanvas creates the canvas of tl
func NewTimelineCanvas(tl *timeline.Model, trackHeight float32, logger *log.Logger) *TimelineCanvas {
	tc := &TimelineCanvas{
		tl:          tl,
		logger:      logging.Component(logger, "canvas"),
		trackHeight: trackHeight,
		overlay:     NewGroupOverlay(logger),
		views:       make(map[int]*ClipView),
		content:     container.NewWithoutLayout(),
	}
	tc.newSelection()

	rebuild := func() { tc.Rebuild() }
	tc.conns.Add(
		tl.ClipChanged().Connect(func(int) { rebuild() }),
		tl.MixChanged().Connect(func(timeline.MixChange) { rebuild() }),
		tl.MixRemoved().Connect(func(int) { rebuild() }),
		tl.TrackListChanged().Connect(func(struct{}) { rebuild() }),
	)
	tc.Rebuild()
	return tc
}

// Container returns the canvas object to embed in the window
func (tc *TimelineCanvas) Container() *fyne.Container { return tc.content }

// Selection returns the clip selection
func (tc *TimelineCanvas) Selection() *group.Selection { return tc.selection }

// Overlay returns the group overlay
func (tc *TimelineCanvas) Overlay() *GroupOverlay { return tc.overlay }

// SetOnTapped sets the callback run with the id of every tapped clip
func (tc *TimelineCanvas) SetOnTapped(onTapped func(clipID int)) { tc.onTapped = onTapped }

// View returns the view of clip id
func (tc *TimelineCanvas) View(id int) (*ClipView, bool) {
	v, ok := tc.views[id]
	return v, ok
}

// SelectedClipIDs returns the ids of the selected clips in ascending order
func (tc *TimelineCanvas) SelectedClipIDs() []int {
	var ids []int
	for _, item := range tc.selection.Items() {
		if ci, ok := item.(*timeline.ClipItem); ok {
			ids = append(ids, ci.ClipID())
		}
	}
	sort.Ints(ids)
	return ids
}

// SetTrackHeight changes the row height. The selection is cleared since
// its geometry is expressed in rows of the old height.
func (tc *TimelineCanvas) SetTrackHeight(height float32) {
	if height == tc.trackHeight {
		return
	}
	tc.trackHeight = height
	tc.selection.Clear()
	for id, v := range tc.views {
		v.item.Release()
		delete(tc.views, id)
	}
	tc.newSelection()
	tc.Rebuild()
}

// Close stops following the timeline
func (tc *TimelineCanvas) Close() {
	tc.conns.DisconnectAll()
	tc.selConn.Disconnect()
	for _, v := range tc.views {
		v.item.Release()
	}
}

func (tc *TimelineCanvas) newSelection() {
	tc.selConn.Disconnect()
	tc.selection = group.NewSelection(tc.trackHeight, tc.tl)
	tc.selConn = tc.selection.Changed().Connect(tc.onSelectionChanged)
	tc.overlay.SetGroup(nil)
}

// Rebuild syncs the clip views and mix markers with the timeline
func (tc *TimelineCanvas) Rebuild() {
	live := make(map[int]bool)
	for _, c := range tc.tl.Clips() {
		live[c.ID] = true
		if _, ok := tc.views[c.ID]; !ok {
			tc.views[c.ID] = newClipView(tc.tl.ClipItem(c.ID, tc.trackHeight), tc.onClipTapped)
		}
	}
	for id, v := range tc.views {
		if !live[id] {
			tc.selection.Remove(v.item)
			v.item.Release()
			delete(tc.views, id)
		}
	}

	tc.mixes = tc.mixes[:0]
	for _, mix := range tc.tl.Mixes() {
		owner, ok := tc.tl.Clip(mix.OwnerID)
		if !ok {
			continue
		}
		marker := canvas.NewRectangle(themeColor(ColorNameMix))
		marker.Move(fyne.NewPos(float32(mix.Start()), float32(owner.Track)*tc.trackHeight+tc.trackHeight/2))
		marker.Resize(fyne.NewSize(float32(mix.Length()), tc.trackHeight/2))
		tc.mixes = append(tc.mixes, marker)
	}

	objects := make([]fyne.CanvasObject, 0, len(tc.views)+len(tc.mixes)+1)
	ids := make([]int, 0, len(tc.views))
	for id := range tc.views {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		v := tc.views[id]
		b := v.item.Bounds()
		v.Move(b.Position())
		v.Resize(b.Size())
		objects = append(objects, v)
	}
	objects = append(objects, tc.mixes...)
	objects = append(objects, tc.overlay)

	tc.content.Objects = objects
	tc.content.Refresh()
}

func (tc *TimelineCanvas) onClipTapped(v *ClipView, toggle bool) {
	switch {
	case !toggle:
		tc.selection.Select(v.item)
	case v.selected:
		tc.selection.Remove(v.item)
	default:
		tc.selection.Add(v.item)
	}
	if tc.onTapped != nil {
		tc.onTapped(v.ClipID())
	}
}

func (tc *TimelineCanvas) onSelectionChanged(g *group.Group) {
	selected := make(map[string]bool)
	for _, item := range tc.selection.Items() {
		selected[item.ItemID()] = true
	}
	for _, v := range tc.views {
		v.setSelected(selected[v.item.ItemID()])
	}
	tc.overlay.SetGroup(g)
	tc.logger.Debug("selection changed", "items", len(selected), "grouped", g != nil)
}
