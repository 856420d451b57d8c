package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/framecut/framecut/internal/config"
	"github.com/framecut/framecut/internal/model"
	"github.com/framecut/framecut/internal/timeline"
)

func newTestRootUI(t *testing.T) (*RootUI, *timeline.Model, *config.Settings) {
	t.Helper()
	app := test.NewApp()
	settings := config.NewSettings(app)
	tl := newTestTimeline(t)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	return NewRootUI(w, settings, tl, nil), tl, settings
}

func TestRootUI_Setup(t *testing.T) {
	ui, _, _ := newTestRootUI(t)

	headers := ui.Headers()
	if len(headers) != 2 {
		t.Fatalf("Expected 2 track headers, got %d", len(headers))
	}
	if headers[0].Name() != "V1" || headers[1].Name() != "A1" {
		t.Errorf("Header names = %s, %s, expected V1, A1", headers[0].Name(), headers[1].Name())
	}
	if ui.Controller().Bound() {
		t.Error("Controller should start unbound")
	}
	if ui.Status() != ui.localization.GetText(KeyNoMixSelected) {
		t.Errorf("Status = %q, expected the no mix hint", ui.Status())
	}
	if ui.window.Title() != ui.localization.GetText(KeyAppTitle) {
		t.Errorf("Window title = %q", ui.window.Title())
	}
}

func TestRootUI_TapBindsMix(t *testing.T) {
	ui, _, _ := newTestRootUI(t)

	owner, _ := ui.Canvas().View(2)
	test.Tap(owner)
	if !ui.Controller().Bound() {
		t.Fatal("Tapping the mix owner should bind the mix")
	}
	if ui.Panel().Duration() != 20 || !ui.Panel().Checked(model.AlignCenter) {
		t.Errorf("Panel shows %d/%v, expected 20/center", ui.Panel().Duration(), ui.Panel().Alignment())
	}
	first := ui.mixModel

	// tapping the bound owner again keeps the model
	test.Tap(owner)
	if ui.mixModel != first {
		t.Error("Expected the bound model to be kept")
	}

	left, _ := ui.Canvas().View(1)
	test.Tap(left)
	if ui.Controller().Bound() || ui.mixModel != nil {
		t.Error("Tapping a clip without mix should unbind")
	}
	if first.IsActive() {
		t.Error("Expected the previous model to be inactive")
	}
}

func TestRootUI_RemoveAndCreateMix(t *testing.T) {
	ui, tl, settings := newTestRootUI(t)

	owner, _ := ui.Canvas().View(2)
	test.Tap(owner)
	ui.onRemoveMix()
	if _, ok := tl.Mix(2); ok {
		t.Fatal("Expected the mix to be removed")
	}
	if ui.Controller().Bound() {
		t.Error("Removing the bound mix should unbind")
	}

	ui.onCreateMix()
	if ui.Status() != ui.localization.GetText(KeySelectTwoClips) {
		t.Errorf("Status = %q, expected the two clips hint", ui.Status())
	}

	settings.SetDefaultMixDuration(30)
	settings.SetDefaultMixAlign(model.AlignRight)
	left, _ := ui.Canvas().View(1)
	test.Tap(left)
	test.TapSecondary(owner)
	ui.onCreateMix()

	mix, ok := tl.Mix(2)
	if !ok {
		t.Fatalf("Expected a new mix, status %q", ui.Status())
	}
	if mix.Length() != 30 || mix.Align != model.AlignRight {
		t.Errorf("Mix = %d frames %v, expected 30 right", mix.Length(), mix.Align)
	}
	if !ui.Controller().Bound() || ui.Panel().Duration() != 30 {
		t.Errorf("Expected new mix bound with duration 30, got %d", ui.Panel().Duration())
	}

	ui.onCreateMix()
	if ui.Status() != ui.localization.GetText(KeyMixNotCreated) {
		t.Errorf("Status = %q, expected the refused mix message", ui.Status())
	}
}

func TestRootUI_TrackActions(t *testing.T) {
	ui, tl, _ := newTestRootUI(t)

	test.Tap(ui.Headers()[0].lockBtn)
	if info, _ := tl.Track(0); !info.IsLocked {
		t.Error("Expected track 0 to be locked")
	}

	if err := tl.SetTrackLocked(0, false); err != nil {
		t.Fatal(err)
	}
	if ui.Headers()[0].IsLocked() {
		t.Error("Header should follow the timeline lock state")
	}

	test.Tap(ui.Headers()[1].audioBtn)
	if info, _ := tl.Track(1); !info.IsMute {
		t.Error("Expected track 1 to be muted")
	}

	ui.onInsertTrack(1)
	if tl.TrackCount() != 3 || len(ui.Headers()) != 3 {
		t.Fatalf("Expected 3 tracks and headers, got %d and %d", tl.TrackCount(), len(ui.Headers()))
	}
	if info, _ := tl.Track(1); info.Type != model.TrackTypeAudio {
		t.Errorf("Inserted track type = %v, expected audio", info.Type)
	}

	ui.onSelectTrack(2)
	if !ui.Headers()[2].IsSelected() || ui.Headers()[0].IsSelected() {
		t.Error("Expected only header 2 to be selected")
	}

	ui.onDeleteTrack(2)
	if tl.TrackCount() != 2 {
		t.Errorf("TrackCount() = %d, expected 2", tl.TrackCount())
	}
	if _, ok := tl.Clip(3); ok {
		t.Error("Expected the clips of the deleted track to be removed")
	}

	ui.onAddTrack()
	if len(ui.Headers()) != 3 {
		t.Errorf("Expected 3 headers after add, got %d", len(ui.Headers()))
	}
}

func TestRootUI_ApplySettings(t *testing.T) {
	ui, _, settings := newTestRootUI(t)

	settings.SetTrackHeight(30)
	settings.SetLanguage("ru")
	ui.applySettings()

	for i, th := range ui.Headers() {
		if th.ButtonsVisible() {
			t.Errorf("Header %d shows buttons at height 30", i)
		}
	}
	if v, _ := ui.Canvas().View(3); v.Position().Y != 30 {
		t.Errorf("Clip 3 row at %v, expected 30", v.Position().Y)
	}
	if ui.localization.GetCurrentLanguage() != "ru" {
		t.Errorf("Language = %s, expected ru", ui.localization.GetCurrentLanguage())
	}
	if ui.Status() != ui.localization.GetText(KeySettingsSaved) {
		t.Errorf("Status = %q, expected the saved message", ui.Status())
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _, settings := newTestRootUI(t)

	ui.onLanguageChange("pt")
	if settings.GetLanguage() != "pt" {
		t.Errorf("Saved language = %s, expected pt", settings.GetLanguage())
	}
	if ui.window.Title() != ui.localization.GetText(KeyAppTitle) {
		t.Errorf("Window title = %q", ui.window.Title())
	}
	if menu := ui.window.MainMenu(); menu == nil || len(menu.Items) != 3 {
		t.Error("Expected File, Edit and Language menus")
	}
}

func TestRootUI_ApplyTrackConfig(t *testing.T) {
	ui, tl, _ := newTestRootUI(t)

	info, _ := tl.Track(0)
	ui.applyTrackConfig(0, info, "Titles", true, false, true)

	got, _ := tl.Track(0)
	if got.Name != "Titles" || !got.IsBlind || got.IsMute || !got.IsLocked {
		t.Errorf("Track = %+v, expected Titles hidden and locked", got)
	}
	th := ui.Headers()[0]
	if th.Name() != "Titles" || !th.IsLocked() {
		t.Errorf("Header shows %q locked=%v", th.Name(), th.IsLocked())
	}
}
