package timeline

// Package timeline holds the authoritative editing state: tracks, clips placed
// on them, and mixes joining adjacent clips. Every mutation is committed before
// the matching change signal is emitted, so listeners always read the new
// state back from the model.
