package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/framecut/framecut/internal/model"
)

func newTestHeader(typ model.TrackType, height float32) *TrackHeader {
	info := model.TrackInfo{Type: typ, Name: "V1"}
	return NewTrackHeader(0, info, height, NewLocalization())
}

func TestTrackHeader_AdjustSize(t *testing.T) {
	test.NewApp()

	tests := []struct {
		name         string
		typ          model.TrackType
		height       float32
		buttons      bool
		videoVisible bool
	}{
		{"tall video", model.TrackTypeVideo, 50, true, true},
		{"small video", model.TrackTypeVideo, 30, false, false},
		{"threshold", model.TrackTypeVideo, SmallTrackHeight, true, true},
		{"tall audio", model.TrackTypeAudio, 50, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHeader(tt.typ, tt.height)
			if th.ButtonsVisible() != tt.buttons {
				t.Errorf("ButtonsVisible() = %v, expected %v", th.ButtonsVisible(), tt.buttons)
			}
			if th.videoBtn.Visible() != tt.videoVisible {
				t.Errorf("video button visible = %v, expected %v", th.videoBtn.Visible(), tt.videoVisible)
			}
			if th.MinSize().Height != tt.height {
				t.Errorf("MinSize().Height = %v, expected %v", th.MinSize().Height, tt.height)
			}
		})
	}
}

func TestTrackHeader_Toggles(t *testing.T) {
	test.NewApp()
	th := newTestHeader(model.TrackTypeVideo, 50)

	var video, audio, lock []int
	th.SetCallbacks(TrackHeaderCallbacks{
		OnSwitchVideo: func(i int) { video = append(video, i) },
		OnSwitchAudio: func(i int) { audio = append(audio, i) },
		OnSwitchLock:  func(i int) { lock = append(lock, i) },
	})

	test.Tap(th.videoBtn)
	test.Tap(th.audioBtn)
	test.Tap(th.lockBtn)
	if len(video) != 1 || len(audio) != 1 || len(lock) != 1 {
		t.Fatalf("Callbacks video=%v audio=%v lock=%v, expected one each", video, audio, lock)
	}
	if !th.IsLocked() || th.lockBtn.Text != IconLock {
		t.Error("Expected the header to show the locked state")
	}

	// SetLock only reflects the state
	th.SetLock(false)
	if th.IsLocked() || th.lockBtn.Text != IconUnlock {
		t.Error("Expected the header to show the unlocked state")
	}
	if len(lock) != 1 {
		t.Errorf("SetLock() emitted OnSwitchLock, got %v", lock)
	}
}

func TestTrackHeader_Rename(t *testing.T) {
	test.NewApp()
	th := newTestHeader(model.TrackTypeVideo, 50)

	var names []string
	th.SetCallbacks(TrackHeaderCallbacks{
		OnRename: func(_ int, name string) { names = append(names, name) },
	})

	th.nameEntry.OnSubmitted(th.nameEntry.Text)
	if len(names) != 0 {
		t.Errorf("Unchanged name emitted %v", names)
	}

	th.nameEntry.SetText("Dialogue")
	th.nameEntry.OnSubmitted(th.nameEntry.Text)
	th.nameEntry.OnSubmitted(th.nameEntry.Text)
	if len(names) != 1 || names[0] != "Dialogue" {
		t.Errorf("Renames = %v, expected [Dialogue]", names)
	}
	if th.Name() != "Dialogue" {
		t.Errorf("Name() = %q, expected Dialogue", th.Name())
	}
}

func TestTrackHeader_Selection(t *testing.T) {
	test.NewApp()
	th := newTestHeader(model.TrackTypeVideo, 50)

	selects := 0
	configures := 0
	th.SetCallbacks(TrackHeaderCallbacks{
		OnSelect:    func(int) { selects++ },
		OnConfigure: func(int) { configures++ },
	})

	test.Tap(th)
	if selects != 1 {
		t.Errorf("Expected 1 select, got %d", selects)
	}

	th.SetSelectedIndex(0)
	if !th.IsSelected() {
		t.Error("Expected header to be selected")
	}
	test.Tap(th)
	if selects != 1 {
		t.Errorf("Tapping a selected header emitted select, got %d", selects)
	}

	th.SetSelectedIndex(3)
	if th.IsSelected() {
		t.Error("Expected header to be deselected")
	}

	test.DoubleTap(th)
	if configures != 1 {
		t.Errorf("Expected 1 configure, got %d", configures)
	}
}

func TestTrackHeader_MenuDeleteIsDelayed(t *testing.T) {
	test.NewApp()
	th := newTestHeader(model.TrackTypeVideo, 50)

	inserted := -1
	deleted := make(chan int, 1)
	th.SetCallbacks(TrackHeaderCallbacks{
		OnInsert: func(i int) { inserted = i },
		OnDelete: func(i int) { deleted <- i },
	})

	items := th.Menu().Items
	if len(items) != 3 {
		t.Fatalf("Menu has %d items, expected 3", len(items))
	}

	items[0].Action()
	if inserted != 0 {
		t.Errorf("Insert emitted %d, expected 0", inserted)
	}

	start := time.Now()
	items[1].Action()
	select {
	case <-deleted:
		t.Fatal("Delete emitted before the delay")
	default:
	}

	select {
	case i := <-deleted:
		if i != 0 {
			t.Errorf("Delete emitted %d, expected 0", i)
		}
		if elapsed := time.Since(start); elapsed < DeleteTrackDelay {
			t.Errorf("Delete emitted after %v, expected at least %v", elapsed, DeleteTrackDelay)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Delete was never emitted")
	}
}

func TestTrackLabel(t *testing.T) {
	loc := NewLocalization()

	got := trackLabel(1, model.TrackInfo{Type: model.TrackTypeAudio, Name: "A1"}, loc)
	expected := loc.GetText(KeyAudio) + " 1" + MiddleDotSeparator + "A1"
	if got != expected {
		t.Errorf("trackLabel() = %q, expected %q", got, expected)
	}
}

func TestTrackHeader_SetInfo(t *testing.T) {
	test.NewApp()
	th := newTestHeader(model.TrackTypeVideo, 50)

	emitted := 0
	th.SetCallbacks(TrackHeaderCallbacks{
		OnSwitchVideo: func(int) { emitted++ },
		OnSwitchAudio: func(int) { emitted++ },
		OnSwitchLock:  func(int) { emitted++ },
		OnRename:      func(int, string) { emitted++ },
	})

	th.SetInfo(model.TrackInfo{Type: model.TrackTypeVideo, Name: "Titles", IsBlind: true, IsMute: true, IsLocked: true})
	if emitted != 0 {
		t.Errorf("SetInfo() emitted %d callbacks", emitted)
	}
	if th.Name() != "Titles" || th.nameEntry.Text != "Titles" {
		t.Errorf("Name() = %q, entry %q, expected Titles", th.Name(), th.nameEntry.Text)
	}
	if !th.IsLocked() || th.videoBtn.Importance != widget.HighImportance || th.audioBtn.Importance != widget.HighImportance {
		t.Error("Expected hide, mute and lock toggles to be checked")
	}
}
