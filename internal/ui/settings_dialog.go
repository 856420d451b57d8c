package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/framecut/framecut/internal/config"
	"github.com/framecut/framecut/internal/model"
)

// Dialog size constants
const (
	SettingsDialogWidth  = 420
	SettingsDialogHeight = 380
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	frameRateEntry   *widget.Entry
	trackHeightEntry *widget.Entry
	mixDurationEntry *widget.Entry
	mixAlignSelect   *widget.Select
	languageSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were written.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.frameRateEntry = widget.NewEntry()
	sd.frameRateEntry.SetPlaceHolder(strconv.Itoa(config.MinFrameRate) + "-" + strconv.Itoa(config.MaxFrameRate))

	sd.trackHeightEntry = widget.NewEntry()
	sd.trackHeightEntry.SetPlaceHolder(strconv.Itoa(config.MinTrackHeight) + "-" + strconv.Itoa(config.MaxTrackHeight))

	sd.mixDurationEntry = widget.NewEntry()
	sd.mixDurationEntry.SetPlaceHolder(strconv.Itoa(config.DefaultMixDuration))

	alignOptions := []string{}
	for _, align := range sd.settings.GetDefaultMixAlignOptions() {
		alignOptions = append(alignOptions, align.String())
	}
	sd.mixAlignSelect = widget.NewSelect(alignOptions, nil)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyFrameRate)+":"),
		sd.frameRateEntry,

		widget.NewLabel(sd.localization.GetText(KeyTrackHeight)+":"),
		sd.trackHeightEntry,

		widget.NewLabel(sd.localization.GetText(KeyDefaultMixDuration)+":"),
		sd.mixDurationEntry,

		widget.NewLabel(sd.localization.GetText(KeyDefaultMixAlign)+":"),
		sd.mixAlignSelect,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.frameRateEntry.SetText(strconv.Itoa(sd.settings.GetFrameRate()))
	sd.trackHeightEntry.SetText(strconv.Itoa(sd.settings.GetTrackHeight()))
	sd.mixDurationEntry.SetText(strconv.Itoa(sd.settings.GetDefaultMixDuration()))
	sd.mixAlignSelect.SetSelected(sd.settings.GetDefaultMixAlign().String())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings. Unparsable numbers keep the stored value.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if fps, err := strconv.Atoi(sd.frameRateEntry.Text); err == nil {
		sd.settings.SetFrameRate(fps)
	}
	if height, err := strconv.Atoi(sd.trackHeightEntry.Text); err == nil {
		sd.settings.SetTrackHeight(height)
	}
	if frames, err := strconv.Atoi(sd.mixDurationEntry.Text); err == nil {
		sd.settings.SetDefaultMixDuration(frames)
	}
	if align, err := model.ParseMixAlignment(sd.mixAlignSelect.Selected); err == nil && align.IsSet() {
		sd.settings.SetDefaultMixAlign(align)
	}
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
