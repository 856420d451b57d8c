// Package group implements multi-item selection on the timeline canvas.
//
// A Group keeps a set of items that are moved and painted as one. Its shape
// is the union of the member rectangles expressed relative to the group
// position. The shape is recomputed lazily: every membership or geometry
// change marks it dirty, and every read recomputes a dirty shape first, so a
// caller never sees bounds older than the last change it made or was told
// about.
//
// None of the operations fail. An empty group has an empty shape and reports
// NoTrack.
package group
