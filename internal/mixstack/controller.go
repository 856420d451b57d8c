// Package mixstack keeps the mix duration and alignment controls in sync with
// the timeline.
//
// The timeline is the single source of truth. User edits are turned into
// ResizeMix requests; the panel is only updated from change notifications,
// never from the request path. All methods must be called from the UI thread.
package mixstack

import (
	"github.com/charmbracelet/log"

	"github.com/framecut/framecut/internal/logging"
	"github.com/framecut/framecut/internal/model"
	"github.com/framecut/framecut/internal/signal"
)

// Controller binds a mix parameter model to its panel.
type Controller struct {
	timeline Timeline
	view     ParameterView
	panel    Panel
	monitor  Monitor
	logger   *log.Logger

	model    ParameterModel
	duration int
	align    model.MixAlignment

	// syncing is raised while the panel is updated programmatically
	syncing bool
	conns   signal.Group

	seekToTransPos   signal.Signal[int]
	initKeyframeView signal.Signal[bool]
}

// NewController creates an unbound controller
func NewController(tl Timeline, view ParameterView, panel Panel, monitor Monitor, logger *log.Logger) *Controller {
	c := &Controller{
		timeline: tl,
		view:     view,
		panel:    panel,
		monitor:  monitor,
		logger:   logging.Component(logger, "mixstack"),
		duration: 1,
		align:    model.AlignNone,
	}
	c.sync(func() {
		panel.SetDuration(c.duration)
		panel.SetAlignment(c.align)
		panel.SetEnabled(false)
	})
	return c
}

// SeekToTransPos carries absolute timeline positions requested from the parameter view
func (c *Controller) SeekToTransPos() *signal.Signal[int] { return &c.seekToTransPos }

// InitKeyframeView is emitted with true once a model is bound
func (c *Controller) InitKeyframeView() *signal.Signal[bool] { return &c.initKeyframeView }

// Bound reports whether a model is attached
func (c *Controller) Bound() bool { return c.model != nil }

// Duration returns the displayed, 1-based duration
func (c *Controller) Duration() int { return c.duration }

// Alignment returns the alignment currently shown
func (c *Controller) Alignment() model.MixAlignment { return c.align }

// Bind attaches the controller to m, unbinding the previous model first.
func (c *Controller) Bind(m ParameterModel) {
	c.Unbind()
	if m == nil {
		return
	}

	c.model = m
	c.view.SetModel(m)
	m.SetActive(true)

	if kfr := m.Keyframes(); kfr != nil {
		c.conns.Add(kfr.Changed().Connect(func(struct{}) { c.view.Refresh() }))
	}
	c.conns.Add(c.view.SeekRequested().Connect(func(pos int) {
		// pos is relative to the mix owner
		c.seekToTransPos.Emit(pos + c.timeline.ItemPosition(c.model.OwnerID()))
	}))

	c.initKeyframeView.Emit(true)
	c.monitor.ShowEffectScene(m.MonitorID(), c.view.MonitorScene())

	c.reloadDuration()
	c.conns.Add(m.DataChanged().Connect(c.onDataChanged))
	c.checkAlignment()
	c.sync(func() { c.panel.SetEnabled(true) })
	c.view.Refresh()

	c.logger.Debug("mix bound", "owner", m.OwnerID(), "duration", c.duration, "align", c.align)
}

// Unbind detaches the current model. It is a no-op when nothing is bound.
func (c *Controller) Unbind() {
	if c.model == nil {
		return
	}
	m := c.model

	m.SetActive(false)
	c.conns.DisconnectAll()
	c.monitor.ShowEffectScene(m.MonitorID(), model.MonitorSceneDefault)
	c.view.UnsetModel()
	c.model = nil

	c.duration = 1
	c.align = model.AlignNone
	c.sync(func() {
		c.panel.SetDuration(c.duration)
		c.panel.SetAlignment(c.align)
		c.panel.SetEnabled(false)
	})

	c.logger.Debug("mix unbound", "owner", m.OwnerID())
}

// SetAlignLeft anchors the mix start to the cut
func (c *Controller) SetAlignLeft() { c.setAlign(model.AlignLeft) }

// SetAlignRight anchors the mix end to the cut
func (c *Controller) SetAlignRight() { c.setAlign(model.AlignRight) }

// SetAlignCenter centers the mix on the cut
func (c *Controller) SetAlignCenter() { c.setAlign(model.AlignCenter) }

func (c *Controller) setAlign(align model.MixAlignment) {
	if c.syncing || c.model == nil || c.align == align {
		return
	}
	c.align = align
	c.sync(func() { c.panel.SetAlignment(align) })
	c.requestResize(c.duration-1, align)
}

// SetDuration submits a new 1-based duration entered by the user. Values
// below one frame are clamped.
func (c *Controller) SetDuration(display int) {
	if c.syncing || c.model == nil {
		return
	}
	if display < 1 {
		display = 1
		c.sync(func() { c.panel.SetDuration(display) })
	}
	c.duration = display
	c.requestResize(display-1, c.align)
}

func (c *Controller) requestResize(duration int, align model.MixAlignment) {
	owner := c.model.OwnerID()
	if err := c.timeline.ResizeMix(owner, duration, align); err != nil {
		c.logger.Warn("mix resize refused", "owner", owner, "duration", duration, "align", align, "err", err)
		// show what the timeline actually holds
		c.reloadDuration()
		c.checkAlignment()
	}
}

// onDataChanged reflects model changes on the panel and the view. It never
// writes back to the timeline.
func (c *Controller) onDataChanged(roles model.Roles) {
	if c.model == nil || !roles.Contains(model.ParentDurationRole) {
		return
	}
	c.reloadDuration()
	c.checkAlignment()
	c.view.Refresh()
}

func (c *Controller) reloadDuration() {
	if c.model == nil || c.model.RowCount() == 0 {
		return
	}
	d, ok := c.model.Data(0, model.ParentDurationRole).(int)
	if !ok {
		return
	}
	c.duration = d + 1
	c.sync(func() { c.panel.SetDuration(c.duration) })
}

// checkAlignment shows the alignment stored by the timeline. A missing owner
// reads as AlignNone.
func (c *Controller) checkAlignment() {
	align := model.AlignNone
	if c.model != nil {
		align = c.timeline.MixAlign(c.model.OwnerID())
	}
	c.align = align
	c.sync(func() { c.panel.SetAlignment(align) })
}

func (c *Controller) sync(update func()) {
	prev := c.syncing
	c.syncing = true
	defer func() { c.syncing = prev }()
	update()
}
