package ui

import (
	"testing"

	"github.com/framecut/framecut/internal/model"
	"github.com/framecut/framecut/internal/timeline"
)

// newTestTimeline builds a video track holding clips 1 [0,100) and
// 2 [100,200) joined by a centered mix of 20 frames, and an audio track
// holding clip 3 [0,50).
func newTestTimeline(t *testing.T) *timeline.Model {
	t.Helper()
	tl := timeline.New(nil)
	tl.AddTrack(model.TrackInfo{Type: model.TrackTypeVideo, Name: "V1"})
	tl.AddTrack(model.TrackInfo{Type: model.TrackTypeAudio, Name: "A1"})

	for _, c := range []struct{ track, pos, dur int }{{0, 0, 100}, {0, 100, 100}, {1, 0, 50}} {
		if _, err := tl.AddClip(c.track, c.pos, c.dur); err != nil {
			t.Fatalf("AddClip(%d, %d, %d): %v", c.track, c.pos, c.dur, err)
		}
	}
	if err := tl.CreateMix(1, 2, 20, model.AlignCenter); err != nil {
		t.Fatalf("CreateMix(): %v", err)
	}
	return tl
}

func fps25() int { return 25 }
