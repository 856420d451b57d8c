package ui

import (
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/framecut/framecut/internal/config"
	"github.com/framecut/framecut/internal/logging"
	"github.com/framecut/framecut/internal/mixstack"
	"github.com/framecut/framecut/internal/model"
	"github.com/framecut/framecut/internal/params"
	"github.com/framecut/framecut/internal/platform"
	"github.com/framecut/framecut/internal/timecode"
	"github.com/framecut/framecut/internal/timeline"
)

// ProjectMonitor is the id of the monitor showing the timeline
const ProjectMonitor = "project"

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	logger       *log.Logger
	timeline     *timeline.Model

	// Track headers
	headers   []*TrackHeader
	headerBox *fyne.Container
	selected  int

	// Clip canvas
	canvas *TimelineCanvas

	// Mix editing
	panel      *MixStackPanel
	paramView  *ParameterView
	monitor    *MonitorLabel
	controller *mixstack.Controller
	mixModel   *params.Model

	statusLabel *widget.Label
}

// NewRootUI creates and initializes the main UI for tl
func NewRootUI(window fyne.Window, settings *config.Settings, tl *timeline.Model, logger *log.Logger) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		logger:       logging.Component(logger, "ui"),
		timeline:     tl,
		selected:     -1,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI(logger)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI(logger *log.Logger) {
	ui.createMenu()

	ui.statusLabel = widget.NewLabel("")
	ui.monitor = NewMonitorLabel(ProjectMonitor, ui.localization)

	ui.panel = NewMixStackPanel(ui.localization, ui.settings.GetFrameRate)
	ui.paramView = NewParameterView(ui.localization, logger)
	ui.controller = mixstack.NewController(ui.timeline, ui.paramView, ui.panel, ui.monitor, logger)
	ui.panel.SetCallbacks(
		ui.controller.SetDuration,
		ui.controller.SetAlignLeft,
		ui.controller.SetAlignRight,
		ui.controller.SetAlignCenter,
	)
	ui.controller.SeekToTransPos().Connect(func(pos int) {
		ui.setStatus(ui.localization.GetText(KeyPosition) + " " + timecode.Format(pos, ui.settings.GetFrameRate()))
	})

	ui.canvas = NewTimelineCanvas(ui.timeline, float32(ui.settings.GetTrackHeight()), logger)
	ui.canvas.SetOnTapped(ui.onClipTapped)
	ui.canvas.Overlay().SetOnMoved(func(err error) {
		if err != nil {
			ui.setStatus(ui.localization.GetText(KeyMoveRefused))
		}
	})

	ui.headerBox = container.NewVBox()
	ui.rebuildHeaders()
	ui.timeline.TrackListChanged().Connect(func(struct{}) { ui.rebuildHeaders() })
	ui.timeline.TrackChanged().Connect(ui.onTrackChanged)
	ui.timeline.MixRemoved().Connect(func(owner int) {
		if ui.mixModel != nil && ui.mixModel.OwnerID() == owner {
			ui.unbindMix()
		}
	})

	tracks := container.NewBorder(nil, nil, ui.headerBox, nil, container.NewScroll(ui.canvas.Container()))
	mixArea := container.NewVBox(widget.NewSeparator(), ui.panel, ui.paramView)
	status := container.NewBorder(nil, nil, ui.monitor, nil, ui.statusLabel)

	content := container.NewBorder(nil, container.NewVBox(mixArea, status), nil, nil, tracks)
	ui.window.SetContent(content)

	ui.setStatus(ui.localization.GetText(KeyNoMixSelected))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(IconSettings+" "+ui.localization.GetText(KeySettings), ui.onShowSettings)
	revealItem := fyne.NewMenuItem(IconFolder+" "+ui.localization.GetText(KeyRevealConfig), ui.onRevealConfig)

	editMenu := fyne.NewMenu(ui.localization.GetText(KeyEdit),
		fyne.NewMenuItem(ui.localization.GetText(KeyAddTrack), ui.onAddTrack),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(ui.localization.GetText(KeyCreateMix), ui.onCreateMix),
		fyne.NewMenuItem(ui.localization.GetText(KeyRemoveMix), ui.onRemoveMix),
		fyne.NewMenuItem(ui.localization.GetText(KeyAlignLeft), func() { ui.controller.SetAlignLeft() }),
		fyne.NewMenuItem(ui.localization.GetText(KeyAlignCenter), func() { ui.controller.SetAlignCenter() }),
		fyne.NewMenuItem(ui.localization.GetText(KeyAlignRight), func() { ui.controller.SetAlignRight() }),
	)

	// Language submenu
	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))
	languages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(languages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, revealItem),
		editMenu,
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.panel.RefreshTexts()
	ui.monitor.RefreshTexts()
	ui.rebuildHeaders()

	// Recreate menu to update texts and checkmarks
	ui.createMenu()
}

// setStatus shows message in the status line
func (ui *RootUI) setStatus(message string) {
	ui.statusLabel.SetText(message)
}

// Controller returns the mix panel controller
func (ui *RootUI) Controller() *mixstack.Controller { return ui.controller }

// Canvas returns the clip canvas
func (ui *RootUI) Canvas() *TimelineCanvas { return ui.canvas }

// Panel returns the mix panel
func (ui *RootUI) Panel() *MixStackPanel { return ui.panel }

// Headers returns the track headers in track order
func (ui *RootUI) Headers() []*TrackHeader { return ui.headers }

// Status returns the status line text
func (ui *RootUI) Status() string { return ui.statusLabel.Text }

// rebuildHeaders recreates one header per track
func (ui *RootUI) rebuildHeaders() {
	height := float32(ui.settings.GetTrackHeight())
	ui.headers = ui.headers[:0]
	ui.headerBox.Objects = nil

	for i := 0; i < ui.timeline.TrackCount(); i++ {
		info, _ := ui.timeline.Track(i)
		th := NewTrackHeader(i, info, height, ui.localization)
		th.SetCallbacks(TrackHeaderCallbacks{
			OnSelect:      ui.onSelectTrack,
			OnSwitchVideo: ui.onSwitchVideo,
			OnSwitchAudio: ui.onSwitchAudio,
			OnSwitchLock:  ui.onSwitchLock,
			OnRename:      ui.onRenameTrack,
			OnInsert:      ui.onInsertTrack,
			OnDelete:      ui.onDeleteTrack,
			OnConfigure:   ui.onConfigureTrack,
		})
		th.SetSelectedIndex(ui.selected)
		ui.headers = append(ui.headers, th)
		ui.headerBox.Add(th)
	}
	ui.headerBox.Refresh()
}

// onTrackChanged reflects state changed outside the header
func (ui *RootUI) onTrackChanged(index int) {
	if index < 0 || index >= len(ui.headers) {
		return
	}
	if info, ok := ui.timeline.Track(index); ok {
		ui.headers[index].SetInfo(info)
	}
}

func (ui *RootUI) onSelectTrack(index int) {
	ui.selected = index
	for _, th := range ui.headers {
		th.SetSelectedIndex(index)
	}
	if info, ok := ui.timeline.Track(index); ok {
		ui.setStatus(trackLabel(index, info, ui.localization))
	}
}

func (ui *RootUI) onSwitchVideo(index int) {
	info, ok := ui.timeline.Track(index)
	if !ok {
		return
	}
	ui.logIfFailed("hide track", index, ui.timeline.SetTrackBlind(index, !info.IsBlind))
}

func (ui *RootUI) onSwitchAudio(index int) {
	info, ok := ui.timeline.Track(index)
	if !ok {
		return
	}
	ui.logIfFailed("mute track", index, ui.timeline.SetTrackMute(index, !info.IsMute))
}

func (ui *RootUI) onSwitchLock(index int) {
	info, ok := ui.timeline.Track(index)
	if !ok {
		return
	}
	ui.logIfFailed("lock track", index, ui.timeline.SetTrackLocked(index, !info.IsLocked))
}

func (ui *RootUI) onRenameTrack(index int, name string) {
	ui.logIfFailed("rename track", index, ui.timeline.RenameTrack(index, name))
}

func (ui *RootUI) onInsertTrack(index int) {
	info, ok := ui.timeline.Track(index)
	if !ok {
		return
	}
	ui.logIfFailed("insert track", index, ui.timeline.InsertTrack(index, model.TrackInfo{Type: info.Type}))
}

func (ui *RootUI) onDeleteTrack(index int) {
	if ui.selected == index {
		ui.selected = -1
	}
	ui.logIfFailed("delete track", index, ui.timeline.DeleteTrack(index))
}

// onConfigureTrack edits the name and the toggles of a track in a form dialog
func (ui *RootUI) onConfigureTrack(index int) {
	info, ok := ui.timeline.Track(index)
	if !ok {
		return
	}
	nameEntry := widget.NewEntry()
	nameEntry.SetText(info.DisplayName(index))
	hideCheck := widget.NewCheck("", nil)
	hideCheck.SetChecked(info.IsBlind)
	muteCheck := widget.NewCheck("", nil)
	muteCheck.SetChecked(info.IsMute)
	lockCheck := widget.NewCheck("", nil)
	lockCheck.SetChecked(info.IsLocked)

	items := []*widget.FormItem{widget.NewFormItem(ui.localization.GetText(KeyTrackName), nameEntry)}
	if info.IsVideo() {
		items = append(items, widget.NewFormItem(ui.localization.GetText(KeyHideTrack), hideCheck))
	}
	items = append(items,
		widget.NewFormItem(ui.localization.GetText(KeyMuteTrack), muteCheck),
		widget.NewFormItem(ui.localization.GetText(KeyLockTrack), lockCheck),
	)

	dialog.ShowForm(trackLabel(index, info, ui.localization), ui.localization.GetText(KeySave), ui.localization.GetText(KeyCancel), items, func(confirmed bool) {
		if confirmed {
			ui.applyTrackConfig(index, info, nameEntry.Text, hideCheck.Checked, muteCheck.Checked, lockCheck.Checked)
		}
	}, ui.window)
}

// applyTrackConfig writes the fields of the configure dialog that differ from info
func (ui *RootUI) applyTrackConfig(index int, info model.TrackInfo, name string, blind, mute, locked bool) {
	if name != info.DisplayName(index) {
		ui.onRenameTrack(index, name)
	}
	if blind != info.IsBlind {
		ui.logIfFailed("hide track", index, ui.timeline.SetTrackBlind(index, blind))
	}
	if mute != info.IsMute {
		ui.logIfFailed("mute track", index, ui.timeline.SetTrackMute(index, mute))
	}
	if locked != info.IsLocked {
		ui.logIfFailed("lock track", index, ui.timeline.SetTrackLocked(index, locked))
	}
}

func (ui *RootUI) onAddTrack() {
	ui.timeline.AddTrack(model.TrackInfo{Type: model.TrackTypeVideo})
}

// onClipTapped binds the mix owned by the tapped clip, if any
func (ui *RootUI) onClipTapped(clipID int) {
	if _, ok := ui.timeline.Mix(clipID); !ok {
		ui.unbindMix()
		return
	}
	ui.bindMix(clipID)
}

// bindMix shows the mix owned by owner in the mix panel
func (ui *RootUI) bindMix(owner int) {
	if ui.mixModel != nil && ui.mixModel.OwnerID() == owner {
		return
	}
	m := params.NewMixModel(ui.timeline, owner, ProjectMonitor,
		params.Param{Name: "softness", Value: 0.5, Min: 0, Max: 1},
		params.Param{Name: "reverse", Value: 0, Min: 0, Max: 1},
		params.Param{Name: "rect", Geometry: true},
	)
	m.SetKeyframes(params.NewKeyframeList(0, m.ParentDuration()))

	// the controller unbinds the previous model first
	ui.controller.Bind(m)
	if ui.mixModel != nil {
		ui.mixModel.Close()
	}
	ui.mixModel = m
	ui.setStatus(fmt.Sprintf("%s %d", ui.localization.GetText(KeySelection), owner))
}

func (ui *RootUI) unbindMix() {
	ui.controller.Unbind()
	if ui.mixModel != nil {
		ui.mixModel.Close()
		ui.mixModel = nil
	}
}

// onCreateMix joins the two selected clips with a mix of the default length
func (ui *RootUI) onCreateMix() {
	ids := ui.canvas.SelectedClipIDs()
	if len(ids) != 2 {
		ui.setStatus(ui.localization.GetText(KeySelectTwoClips))
		return
	}
	left, _ := ui.timeline.Clip(ids[0])
	right, _ := ui.timeline.Clip(ids[1])
	if right.Position < left.Position {
		left, right = right, left
	}

	err := ui.timeline.CreateMix(left.ID, right.ID, ui.settings.GetDefaultMixDuration(), ui.settings.GetDefaultMixAlign())
	if err != nil {
		ui.logger.Warn("mix not created", "left", left.ID, "right", right.ID, "err", err)
		ui.setStatus(ui.localization.GetText(KeyMixNotCreated))
		return
	}
	ui.bindMix(right.ID)
}

func (ui *RootUI) onRemoveMix() {
	if ui.mixModel == nil {
		ui.setStatus(ui.localization.GetText(KeyNoMixSelected))
		return
	}
	owner := ui.mixModel.OwnerID()
	if err := ui.timeline.RemoveMix(owner); err != nil {
		ui.logger.Warn("mix not removed", "owner", owner, "err", err)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.applySettings).Show()
}

// applySettings pushes saved settings into the running UI
func (ui *RootUI) applySettings() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())

	height := float32(ui.settings.GetTrackHeight())
	for _, th := range ui.headers {
		th.AdjustSize(height)
	}
	ui.canvas.SetTrackHeight(height)
	ui.panel.SetDuration(ui.controller.Duration())
	ui.refreshUITexts()
	ui.setStatus(ui.localization.GetText(KeySettingsSaved))
}

// onRevealConfig opens the configuration folder in the file manager
func (ui *RootUI) onRevealConfig() {
	dir, err := platform.ConfigDir()
	if err == nil {
		err = platform.RevealDirectory(dir)
	}
	if err != nil {
		ui.logger.Warn("config folder not opened", "err", err)
		dialog.ShowError(err, ui.window)
	}
}

// logIfFailed logs a refused track operation
func (ui *RootUI) logIfFailed(action string, index int, err error) {
	if err != nil {
		ui.logger.Warn(action+" refused", "track", index, "err", err)
		ui.setStatus(err.Error())
	}
}
