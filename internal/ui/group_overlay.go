package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/framecut/framecut/internal/group"
	"github.com/framecut/framecut/internal/logging"
	"github.com/framecut/framecut/internal/signal"
)

// GroupOverlay paints the shape of the selected group above the clips and
// turns drags into group moves.
type GroupOverlay struct {
	widget.BaseWidget

	group  *group.Group
	conn   *signal.Connection
	logger *log.Logger
	drag   fyne.Delta

	onMoved func(err error)
}

// NewGroupOverlay creates a hidden overlay
func NewGroupOverlay(logger *log.Logger) *GroupOverlay {
	o := &GroupOverlay{logger: logging.Component(logger, "group")}
	o.ExtendBaseWidget(o)
	o.Hide()
	return o
}

// SetOnMoved sets the callback run after every drag, with the move error if any
func (o *GroupOverlay) SetOnMoved(onMoved func(err error)) {
	o.onMoved = onMoved
}

// SetGroup shows g and follows its changes, or hides the overlay when g is nil
func (o *GroupOverlay) SetGroup(g *group.Group) {
	if g == o.group {
		o.Sync()
		return
	}
	o.conn.Disconnect()
	o.conn = nil
	o.group = g
	o.drag = fyne.Delta{}
	if g != nil {
		o.conn = g.Changed().Connect(func(struct{}) { o.Sync() })
	}
	o.Sync()
}

// Group returns the displayed group
func (o *GroupOverlay) Group() *group.Group { return o.group }

// Sync places the overlay on the current group geometry
func (o *GroupOverlay) Sync() {
	if o.group == nil || o.group.Len() == 0 {
		o.Hide()
		return
	}
	b := o.group.BoundingRect()
	o.Move(o.group.Pos().Add(o.drag))
	o.Resize(fyne.NewSize(b.Right(), b.Bottom()))
	o.Show()
	o.Refresh()
}

// Dragged moves the overlay with the pointer
func (o *GroupOverlay) Dragged(ev *fyne.DragEvent) {
	if o.group == nil {
		return
	}
	o.drag.DX += ev.Dragged.DX
	o.drag.DY += ev.Dragged.DY
	o.Move(o.group.Pos().Add(o.drag))
}

// DragEnd asks the group to move to where the overlay was dropped
func (o *GroupOverlay) DragEnd() {
	if o.group == nil {
		return
	}
	target := o.group.Pos().Add(o.drag)
	o.drag = fyne.Delta{}

	pos, err := o.group.RequestMove(target)
	if err != nil {
		o.logger.Warn("group move refused", "group", o.group.ID(), "err", err)
	} else {
		o.logger.Debug("group moved", "group", o.group.ID(), "x", pos.X, "y", pos.Y, "track", o.group.Track())
	}
	o.Sync()
	if o.onMoved != nil {
		o.onMoved(err)
	}
}

// CreateRenderer creates the widget renderer
func (o *GroupOverlay) CreateRenderer() fyne.WidgetRenderer {
	r := &groupOverlayRenderer{overlay: o}
	r.Refresh()
	return r
}

// groupOverlayRenderer draws one rectangle per band of the group shape
type groupOverlayRenderer struct {
	overlay *GroupOverlay
	rects   []group.Rect
	objects []fyne.CanvasObject
}

func (r *groupOverlayRenderer) Layout(_ fyne.Size) {
	for i, obj := range r.objects {
		obj.Move(r.rects[i].Position())
		obj.Resize(r.rects[i].Size())
	}
}

func (r *groupOverlayRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *groupOverlayRenderer) Refresh() {
	r.rects = nil
	r.objects = r.objects[:0]
	if g := r.overlay.group; g != nil {
		r.rects = g.Shape().Rects()
	}
	for range r.rects {
		rect := canvas.NewRectangle(themeColor(ColorNameGroupOverlay))
		rect.StrokeColor = themeColor(ColorNameSelectedTrack)
		rect.StrokeWidth = OverlayStrokeWidth
		r.objects = append(r.objects, rect)
	}
	r.Layout(r.overlay.Size())
	canvas.Refresh(r.overlay)
}

func (r *groupOverlayRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *groupOverlayRenderer) Destroy() {}
