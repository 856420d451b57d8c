package ui

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/framecut/framecut/internal/model"
)

// TrackHeaderCallbacks receives the track actions triggered from a header.
// Every callback gets the track index.
type TrackHeaderCallbacks struct {
	OnSelect      func(index int)
	OnSwitchVideo func(index int)
	OnSwitchAudio func(index int)
	OnSwitchLock  func(index int)
	OnRename      func(index int, name string)
	OnInsert      func(index int)
	OnDelete      func(index int)
	OnConfigure   func(index int)
}

// TrackHeader shows the name and the hide/mute/lock toggles of one track
type TrackHeader struct {
	widget.BaseWidget

	index        int
	trackType    model.TrackType
	name         string
	isBlind      bool
	isMute       bool
	isLocked     bool
	isSelected   bool
	height       float32
	localization *Localization
	callbacks    TrackHeaderCallbacks

	// UI components
	background *canvas.Rectangle
	nameEntry  *widget.Entry
	videoBtn   *widget.Button
	audioBtn   *widget.Button
	lockBtn    *widget.Button
	menu       *fyne.Menu
}

// NewTrackHeader creates the header of track index
func NewTrackHeader(index int, info model.TrackInfo, height float32, localization *Localization) *TrackHeader {
	th := &TrackHeader{
		index:        index,
		trackType:    info.Type,
		name:         info.DisplayName(index),
		isBlind:      info.IsBlind,
		isMute:       info.IsMute,
		isLocked:     info.IsLocked,
		height:       height,
		localization: localization,
	}
	th.ExtendBaseWidget(th)
	th.createUI()
	th.AdjustSize(height)
	return th
}

// SetCallbacks sets the action callbacks
func (th *TrackHeader) SetCallbacks(callbacks TrackHeaderCallbacks) {
	th.callbacks = callbacks
}

// createUI creates the UI components
func (th *TrackHeader) createUI() {
	th.background = canvas.NewRectangle(themeColor(ColorNameVideoTrack))

	th.nameEntry = widget.NewEntry()
	th.nameEntry.SetText(th.name)
	th.nameEntry.SetPlaceHolder(th.localization.GetText(KeyTrackName))
	th.nameEntry.OnSubmitted = func(string) { th.renameTrack() }

	th.videoBtn = widget.NewButton(IconVideo, th.switchVideo)
	th.audioBtn = widget.NewButton(IconAudio, th.switchAudio)
	th.lockBtn = widget.NewButton(IconUnlock, func() { th.switchLock(true) })
	for _, btn := range []*widget.Button{th.videoBtn, th.audioBtn, th.lockBtn} {
		btn.Importance = widget.LowImportance
	}

	th.menu = fyne.NewMenu("",
		fyne.NewMenuItem(th.localization.GetText(KeyInsertTrack), th.insertTrack),
		fyne.NewMenuItem(th.localization.GetText(KeyDeleteTrack), th.scheduleDelete),
		fyne.NewMenuItem(th.localization.GetText(KeyConfigureTrack), th.configureTrack),
	)

	th.updateButtons()
	th.updateBackground()
}

// Index returns the track index shown by the header
func (th *TrackHeader) Index() int { return th.index }

// Name returns the committed track name
func (th *TrackHeader) Name() string { return th.name }

// IsSelected reports whether the header is highlighted
func (th *TrackHeader) IsSelected() bool { return th.isSelected }

// IsLocked reports the lock toggle state
func (th *TrackHeader) IsLocked() bool { return th.isLocked }

// ButtonsVisible reports whether the toggles are shown
func (th *TrackHeader) ButtonsVisible() bool { return th.audioBtn.Visible() }

// Menu returns the context menu of the header
func (th *TrackHeader) Menu() *fyne.Menu { return th.menu }

// Tapped selects the track
func (th *TrackHeader) Tapped(_ *fyne.PointEvent) {
	if th.releaseFocus() {
		return
	}
	if !th.isSelected && th.callbacks.OnSelect != nil {
		th.callbacks.OnSelect(th.index)
	}
}

// TappedSecondary opens the context menu
func (th *TrackHeader) TappedSecondary(ev *fyne.PointEvent) {
	if th.releaseFocus() {
		return
	}
	if c := fyne.CurrentApp().Driver().CanvasForObject(th); c != nil {
		widget.ShowPopUpMenuAtPosition(th.menu, c, ev.AbsolutePosition)
	}
}

// DoubleTapped opens the track configuration
func (th *TrackHeader) DoubleTapped(_ *fyne.PointEvent) {
	if th.releaseFocus() {
		return
	}
	th.configureTrack()
}

// releaseFocus drops the keyboard focus from the name entry. It reports
// whether the entry had it, in which case the event is consumed.
func (th *TrackHeader) releaseFocus() bool {
	c := fyne.CurrentApp().Driver().CanvasForObject(th)
	if c == nil || c.Focused() != th.nameEntry {
		return false
	}
	c.Unfocus()
	return true
}

// SetSelectedIndex highlights the header when ix is its track
func (th *TrackHeader) SetSelectedIndex(ix int) {
	th.isSelected = th.index == ix
	th.updateBackground()
}

// AdjustSize sets the header height, hiding the toggles on small tracks
func (th *TrackHeader) AdjustSize(height float32) {
	th.height = height
	small := height < SmallTrackHeight
	for _, btn := range []*widget.Button{th.videoBtn, th.audioBtn, th.lockBtn} {
		if small {
			btn.Hide()
		} else {
			btn.Show()
		}
	}
	if th.trackType != model.TrackTypeVideo {
		th.videoBtn.Hide()
	}
	th.Refresh()
}

// SetLock shows the lock state without emitting OnSwitchLock
func (th *TrackHeader) SetLock(lock bool) {
	th.isLocked = lock
	th.switchLock(false)
}

// SetInfo shows the state of info without emitting any callback
func (th *TrackHeader) SetInfo(info model.TrackInfo) {
	th.name = info.DisplayName(th.index)
	th.nameEntry.SetText(th.name)
	th.isBlind = info.IsBlind
	th.isMute = info.IsMute
	th.SetLock(info.IsLocked)
}

func (th *TrackHeader) switchVideo() {
	th.isBlind = !th.isBlind
	th.updateButtons()
	if th.callbacks.OnSwitchVideo != nil {
		th.callbacks.OnSwitchVideo(th.index)
	}
}

func (th *TrackHeader) switchAudio() {
	th.isMute = !th.isMute
	th.updateButtons()
	if th.callbacks.OnSwitchAudio != nil {
		th.callbacks.OnSwitchAudio(th.index)
	}
}

// switchLock toggles the lock when emit is set; otherwise it only redraws
// the button for the current state.
func (th *TrackHeader) switchLock(emit bool) {
	if emit {
		th.isLocked = !th.isLocked
	}
	th.updateButtons()
	if emit && th.callbacks.OnSwitchLock != nil {
		th.callbacks.OnSwitchLock(th.index)
	}
}

func (th *TrackHeader) renameTrack() {
	text := th.nameEntry.Text
	if text == th.name {
		return
	}
	th.name = text
	if th.callbacks.OnRename != nil {
		th.callbacks.OnRename(th.index, text)
	}
}

func (th *TrackHeader) insertTrack() {
	if th.callbacks.OnInsert != nil {
		th.callbacks.OnInsert(th.index)
	}
}

// scheduleDelete lets the context menu close before the header is torn down
func (th *TrackHeader) scheduleDelete() {
	index := th.index
	time.AfterFunc(DeleteTrackDelay, func() {
		fyne.Do(func() {
			if th.callbacks.OnDelete != nil {
				th.callbacks.OnDelete(index)
			}
		})
	})
}

func (th *TrackHeader) configureTrack() {
	if th.callbacks.OnConfigure != nil {
		th.callbacks.OnConfigure(th.index)
	}
}

// updateButtons reflects the toggle states on the buttons
func (th *TrackHeader) updateButtons() {
	setChecked(th.videoBtn, th.isBlind)
	setChecked(th.audioBtn, th.isMute)

	if th.isLocked {
		th.lockBtn.SetText(IconLock)
	} else {
		th.lockBtn.SetText(IconUnlock)
	}
	setChecked(th.lockBtn, th.isLocked)
}

func (th *TrackHeader) updateBackground() {
	switch {
	case th.isSelected:
		th.background.FillColor = themeColor(ColorNameSelectedTrack)
		th.background.Show()
	case th.trackType == model.TrackTypeVideo:
		th.background.FillColor = themeColor(ColorNameVideoTrack)
		th.background.Show()
	default:
		th.background.Hide()
	}
	th.background.Refresh()
}

// setChecked shows a toggle button as pressed or released
func setChecked(btn *widget.Button, checked bool) {
	if checked {
		btn.Importance = widget.HighImportance
	} else {
		btn.Importance = widget.LowImportance
	}
	btn.Refresh()
}

// CreateRenderer creates the widget renderer
func (th *TrackHeader) CreateRenderer() fyne.WidgetRenderer {
	buttons := container.NewHBox(th.videoBtn, th.audioBtn, th.lockBtn)
	content := container.NewBorder(nil, nil, nil, buttons, th.nameEntry)
	return &trackHeaderRenderer{
		header:  th,
		content: content,
		objects: []fyne.CanvasObject{th.background, content},
	}
}

// trackHeaderRenderer renders the track header widget
type trackHeaderRenderer struct {
	header  *TrackHeader
	content *fyne.Container
	objects []fyne.CanvasObject
}

// Layout arranges the components
func (r *trackHeaderRenderer) Layout(size fyne.Size) {
	r.header.background.Resize(size)
	r.content.Resize(size)
}

// MinSize returns the fixed track height and the header width
func (r *trackHeaderRenderer) MinSize() fyne.Size {
	return fyne.NewSize(TrackHeaderWidth, r.header.height)
}

// Refresh refreshes the renderer
func (r *trackHeaderRenderer) Refresh() {
	r.content.Refresh()
	canvas.Refresh(r.header)
}

// Objects returns the container objects
func (r *trackHeaderRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up the renderer
func (r *trackHeaderRenderer) Destroy() {}

// trackLabel returns a short label of the track for status lines
func trackLabel(index int, info model.TrackInfo, localization *Localization) string {
	kind := localization.GetText(KeyAudio)
	if info.IsVideo() {
		kind = localization.GetText(KeyVideo)
	}
	return kind + " " + strconv.Itoa(index) + MiddleDotSeparator + info.DisplayName(index)
}
