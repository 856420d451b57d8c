package params

import (
	"sort"

	"github.com/framecut/framecut/internal/signal"
)

// KeyframeList stores keyframe positions relative to the owner start.
type KeyframeList struct {
	positions []int
	changed   signal.Signal[struct{}]
}

// NewKeyframeList creates a list holding positions
func NewKeyframeList(positions ...int) *KeyframeList {
	kl := &KeyframeList{}
	for _, p := range positions {
		kl.insert(p)
	}
	return kl
}

// Changed is emitted after every modification
func (kl *KeyframeList) Changed() *signal.Signal[struct{}] { return &kl.changed }

// Add inserts a keyframe. Adding an existing position is a no-op.
func (kl *KeyframeList) Add(pos int) {
	if kl.insert(pos) {
		kl.changed.Emit(struct{}{})
	}
}

// Remove deletes the keyframe at pos and reports whether it existed
func (kl *KeyframeList) Remove(pos int) bool {
	i := sort.SearchInts(kl.positions, pos)
	if i >= len(kl.positions) || kl.positions[i] != pos {
		return false
	}
	kl.positions = append(kl.positions[:i], kl.positions[i+1:]...)
	kl.changed.Emit(struct{}{})
	return true
}

// Positions returns the keyframe positions in ascending order
func (kl *KeyframeList) Positions() []int {
	out := make([]int, len(kl.positions))
	copy(out, kl.positions)
	return out
}

func (kl *KeyframeList) insert(pos int) bool {
	i := sort.SearchInts(kl.positions, pos)
	if i < len(kl.positions) && kl.positions[i] == pos {
		return false
	}
	kl.positions = append(kl.positions, 0)
	copy(kl.positions[i+1:], kl.positions[i:])
	kl.positions[i] = pos
	return true
}
