package timeline

import (
	"errors"
	"testing"

	"github.com/framecut/framecut/internal/model"
)

func TestCreateMix(t *testing.T) {
	tests := []struct {
		name       string
		length     int
		align      model.MixAlignment
		wantOffset int
		wantStart  int
	}{
		{"center even", 10, model.AlignCenter, 5, 95},
		{"center odd", 11, model.AlignCenter, 5, 95},
		{"left", 10, model.AlignLeft, 0, 100},
		{"right", 10, model.AlignRight, 10, 90},
		{"none centers", 10, model.AlignNone, 5, 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := newTestTimeline(t)
			if err := tl.CreateMix(1, 2, tt.length, tt.align); err != nil {
				t.Fatalf("CreateMix() error = %v", err)
			}
			mix, ok := tl.Mix(2)
			if !ok {
				t.Fatal("Mix(2) not found")
			}
			if mix.Duration != tt.length-1 {
				t.Errorf("Duration = %d, expected %d", mix.Duration, tt.length-1)
			}
			if mix.CutOffset != tt.wantOffset {
				t.Errorf("CutOffset = %d, expected %d", mix.CutOffset, tt.wantOffset)
			}
			if mix.Start() != tt.wantStart {
				t.Errorf("Start() = %d, expected %d", mix.Start(), tt.wantStart)
			}
			if tl.MixAlign(2) != tt.align {
				t.Errorf("MixAlign(2) = %s, expected %s", tl.MixAlign(2), tt.align)
			}
		})
	}
}

func TestCreateMix_Errors(t *testing.T) {
	tl := newTestTimeline(t)
	if _, err := tl.AddClip(0, 300, 50); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		left    int
		right   int
		length  int
		wantErr error
	}{
		{"not adjacent", 2, 3, 10, ErrNotAdjacent},
		{"missing clip", 1, 9, 10, ErrClipNotFound},
		{"zero length", 1, 2, 0, ErrInvalidDuration},
		{"too long", 1, 2, 201, ErrMixTooLong},
	}

	for _, tt := range tests {
		if err := tl.CreateMix(tt.left, tt.right, tt.length, model.AlignCenter); !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: CreateMix() error = %v, expected %v", tt.name, err, tt.wantErr)
		}
	}

	if err := tl.CreateMix(1, 2, 10, model.AlignCenter); err != nil {
		t.Fatal(err)
	}
	if err := tl.CreateMix(1, 2, 10, model.AlignCenter); !errors.Is(err, ErrMixExists) {
		t.Errorf("duplicate CreateMix() error = %v, expected ErrMixExists", err)
	}
}

func TestResizeMix(t *testing.T) {
	tl := newTestTimeline(t)
	if err := tl.CreateMix(1, 2, 10, model.AlignCenter); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		duration   int
		align      model.MixAlignment
		wantOffset int
	}{
		{"left", 19, model.AlignLeft, 0},
		{"right", 19, model.AlignRight, 20},
		{"center odd", 20, model.AlignCenter, 10},
		{"none keeps ratio", 41, model.AlignNone, 20},
	}

	for _, tt := range tests {
		if err := tl.ResizeMix(2, tt.duration, tt.align); err != nil {
			t.Fatalf("%s: ResizeMix() error = %v", tt.name, err)
		}
		mix, _ := tl.Mix(2)
		if mix.Duration != tt.duration || mix.CutOffset != tt.wantOffset || mix.Align != tt.align {
			t.Errorf("%s: mix = %+v, expected duration %d offset %d align %s",
				tt.name, mix, tt.duration, tt.wantOffset, tt.align)
		}
	}
}

func TestResizeMix_NotifiesAfterCommit(t *testing.T) {
	tl := newTestTimeline(t)
	if err := tl.CreateMix(1, 2, 10, model.AlignCenter); err != nil {
		t.Fatal(err)
	}

	var seenDuration int
	var seenAlign model.MixAlignment
	var roles model.Roles
	tl.MixChanged().Connect(func(c MixChange) {
		seenDuration, _ = tl.MixDuration(c.OwnerID)
		seenAlign = tl.MixAlign(c.OwnerID)
		roles = c.Roles
	})

	if err := tl.ResizeMix(2, 24, model.AlignLeft); err != nil {
		t.Fatal(err)
	}
	if seenDuration != 24 || seenAlign != model.AlignLeft {
		t.Errorf("listener saw duration %d align %s, expected 24 left", seenDuration, seenAlign)
	}
	if !roles.Contains(model.ParentDurationRole) {
		t.Errorf("roles = %v, expected ParentDurationRole", roles)
	}
}

func TestResizeMix_Errors(t *testing.T) {
	tl := newTestTimeline(t)
	if err := tl.CreateMix(1, 2, 10, model.AlignCenter); err != nil {
		t.Fatal(err)
	}

	notified := 0
	tl.MixChanged().Connect(func(MixChange) { notified++ })

	if err := tl.ResizeMix(7, 10, model.AlignLeft); !errors.Is(err, ErrMixNotFound) {
		t.Errorf("unknown owner error = %v", err)
	}
	if err := tl.ResizeMix(2, -1, model.AlignLeft); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("negative duration error = %v", err)
	}
	if err := tl.ResizeMix(2, 149, model.AlignRight); !errors.Is(err, ErrMixTooLong) {
		t.Errorf("too long error = %v", err)
	}
	if err := tl.SetTrackLocked(0, true); err != nil {
		t.Fatal(err)
	}
	if err := tl.ResizeMix(2, 12, model.AlignLeft); !errors.Is(err, ErrTrackLocked) {
		t.Errorf("locked track error = %v", err)
	}

	if notified != 0 {
		t.Errorf("failed resizes must not notify, got %d", notified)
	}
	if mix, _ := tl.Mix(2); mix.Duration != 9 || mix.Align != model.AlignCenter {
		t.Errorf("failed resizes must not modify the mix: %+v", mix)
	}
}

func TestMixAlign_UnknownOwner(t *testing.T) {
	tl := newTestTimeline(t)
	if got := tl.MixAlign(1); got != model.AlignNone {
		t.Errorf("MixAlign(1) = %s, expected none", got)
	}
	if _, ok := tl.MixDuration(1); ok {
		t.Error("MixDuration(1) should not be found")
	}
}

func TestMoveClips_MixFollowsOrDrops(t *testing.T) {
	tl := newTestTimeline(t)
	if err := tl.CreateMix(1, 2, 10, model.AlignCenter); err != nil {
		t.Fatal(err)
	}

	var removed []int
	tl.MixRemoved().Connect(func(owner int) { removed = append(removed, owner) })

	err := tl.MoveClips([]ClipMove{{ID: 1, Track: 0, Position: 50}, {ID: 2, Track: 0, Position: 150}})
	if err != nil {
		t.Fatalf("MoveClips() error = %v", err)
	}
	mix, ok := tl.Mix(2)
	if !ok {
		t.Fatal("Mix should survive a move keeping the clips adjacent")
	}
	if mix.Cut != 150 || mix.Start() != 145 {
		t.Errorf("mix cut/start = %d/%d, expected 150/145", mix.Cut, mix.Start())
	}

	if err := tl.MoveClip(2, 0, 300); err != nil {
		t.Fatal(err)
	}
	if _, ok := tl.Mix(2); ok {
		t.Error("Mix should be dropped once the clips are apart")
	}
	if len(removed) != 1 || removed[0] != 2 {
		t.Errorf("removed = %v, expected [2]", removed)
	}
}

func TestRemoveMix(t *testing.T) {
	tl := newTestTimeline(t)
	if err := tl.CreateMix(1, 2, 10, model.AlignCenter); err != nil {
		t.Fatal(err)
	}
	if err := tl.RemoveMix(2); err != nil {
		t.Fatalf("RemoveMix() error = %v", err)
	}
	if len(tl.Mixes()) != 0 {
		t.Error("Expected no mixes")
	}
	if err := tl.RemoveMix(2); !errors.Is(err, ErrMixNotFound) {
		t.Errorf("second RemoveMix() error = %v", err)
	}
}
