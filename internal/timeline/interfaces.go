package timeline

import (
	"github.com/framecut/framecut/internal/model"
	"github.com/framecut/framecut/internal/signal"
)

// MixChange is emitted after a mix was created or modified.
type MixChange struct {
	OwnerID int
	Roles   model.Roles
}

// Editor defines the timeline surface used by the user interface.
type Editor interface {
	TrackCount() int
	Track(index int) (model.TrackInfo, bool)
	AddTrack(info model.TrackInfo) int
	InsertTrack(index int, info model.TrackInfo) error
	DeleteTrack(index int) error
	RenameTrack(index int, name string) error
	SetTrackMute(index int, mute bool) error
	SetTrackBlind(index int, blind bool) error
	SetTrackLocked(index int, locked bool) error

	AddClip(track, position, duration int) (int, error)
	Clip(id int) (model.Clip, bool)
	Clips() []model.Clip
	MoveClips(moves []ClipMove) error
	RemoveClip(id int) error
	ItemPosition(itemID int) int

	CreateMix(leftID, rightID, length int, align model.MixAlignment) error
	RemoveMix(ownerID int) error
	Mix(ownerID int) (model.Mix, bool)
	Mixes() []model.Mix
	MixAlign(clipID int) model.MixAlignment
	MixDuration(ownerID int) (int, bool)
	ResizeMix(clipID, duration int, align model.MixAlignment) error

	// Change notifications, emitted after the mutation is committed
	TrackChanged() *signal.Signal[int]
	TrackListChanged() *signal.Signal[struct{}]
	ClipChanged() *signal.Signal[int]
	MixChanged() *signal.Signal[MixChange]
	MixRemoved() *signal.Signal[int]
}
