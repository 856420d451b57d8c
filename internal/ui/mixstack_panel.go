package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/framecut/framecut/internal/model"
	"github.com/framecut/framecut/internal/timecode"
)

// MixStackPanel holds the mix duration field and the alignment toggles.
// It only displays state; edits are reported through the callbacks.
type MixStackPanel struct {
	widget.BaseWidget

	localization *Localization
	fps          func() int

	duration int
	align    model.MixAlignment

	durationLabel  *widget.Label
	durationEntry  *widget.Entry
	alignLeftBtn   *widget.Button
	alignRightBtn  *widget.Button
	alignCenterBtn *widget.Button

	onDuration    func(display int)
	onAlignLeft   func()
	onAlignRight  func()
	onAlignCenter func()
}

// NewMixStackPanel creates the panel. fps returns the frame rate used to
// render and parse the duration.
func NewMixStackPanel(localization *Localization, fps func() int) *MixStackPanel {
	p := &MixStackPanel{
		localization: localization,
		fps:          fps,
		duration:     1,
		align:        model.AlignNone,
	}
	p.ExtendBaseWidget(p)
	p.createUI()
	return p
}

// SetCallbacks sets the edit callbacks
func (p *MixStackPanel) SetCallbacks(
	onDuration func(display int),
	onAlignLeft func(),
	onAlignRight func(),
	onAlignCenter func(),
) {
	p.onDuration = onDuration
	p.onAlignLeft = onAlignLeft
	p.onAlignRight = onAlignRight
	p.onAlignCenter = onAlignCenter
}

func (p *MixStackPanel) createUI() {
	p.durationLabel = widget.NewLabel(p.localization.GetText(KeyDuration))

	p.durationEntry = widget.NewEntry()
	p.durationEntry.Validator = func(text string) error {
		_, err := timecode.Parse(text, p.fps())
		return err
	}
	p.durationEntry.OnSubmitted = p.submitDuration

	p.alignLeftBtn = widget.NewButton(IconAlignLeft, func() {
		if p.onAlignLeft != nil {
			p.onAlignLeft()
		}
	})
	p.alignRightBtn = widget.NewButton(IconAlignRight, func() {
		if p.onAlignRight != nil {
			p.onAlignRight()
		}
	})
	p.alignCenterBtn = widget.NewButton(IconAlignCenter, func() {
		if p.onAlignCenter != nil {
			p.onAlignCenter()
		}
	})

	p.SetDuration(p.duration)
	p.SetAlignment(p.align)
}

// submitDuration forwards a parsed duration. Text that is not a timecode
// restores the last displayed value.
func (p *MixStackPanel) submitDuration(text string) {
	frames, err := timecode.Parse(text, p.fps())
	if err != nil {
		p.SetDuration(p.duration)
		return
	}
	if p.onDuration != nil {
		p.onDuration(frames)
	}
}

// SetDuration shows a 1-based duration in frames
func (p *MixStackPanel) SetDuration(display int) {
	p.duration = display
	p.durationEntry.SetText(timecode.Format(display, p.fps()))
}

// SetAlignment checks the toggle of align and releases the others
func (p *MixStackPanel) SetAlignment(align model.MixAlignment) {
	p.align = align
	setChecked(p.alignLeftBtn, align == model.AlignLeft)
	setChecked(p.alignRightBtn, align == model.AlignRight)
	setChecked(p.alignCenterBtn, align == model.AlignCenter)
}

// SetEnabled enables or disables every control
func (p *MixStackPanel) SetEnabled(enabled bool) {
	for _, w := range []fyne.Disableable{p.durationEntry, p.alignLeftBtn, p.alignRightBtn, p.alignCenterBtn} {
		if enabled {
			w.Enable()
		} else {
			w.Disable()
		}
	}
}

// Duration returns the displayed duration in frames
func (p *MixStackPanel) Duration() int { return p.duration }

// Alignment returns the checked alignment
func (p *MixStackPanel) Alignment() model.MixAlignment { return p.align }

// Checked reports the toggle state of the button for align
func (p *MixStackPanel) Checked(align model.MixAlignment) bool {
	switch align {
	case model.AlignLeft:
		return p.alignLeftBtn.Importance == widget.HighImportance
	case model.AlignRight:
		return p.alignRightBtn.Importance == widget.HighImportance
	case model.AlignCenter:
		return p.alignCenterBtn.Importance == widget.HighImportance
	default:
		return false
	}
}

// RefreshTexts reapplies localized labels
func (p *MixStackPanel) RefreshTexts() {
	p.durationLabel.SetText(p.localization.GetText(KeyDuration))
}

// CreateRenderer creates the widget renderer
func (p *MixStackPanel) CreateRenderer() fyne.WidgetRenderer {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(DurationEntryWidth, 0))
	durationField := container.NewStack(spacer, p.durationEntry)

	row := container.NewBorder(nil, nil,
		container.NewHBox(p.durationLabel, durationField),
		container.NewHBox(p.alignRightBtn, p.alignCenterBtn, p.alignLeftBtn),
	)
	return widget.NewSimpleRenderer(row)
}
