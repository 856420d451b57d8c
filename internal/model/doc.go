package model

// Package model defines the timeline data structures shared across the app:
// clips, mixes (transitions between adjacent clips), tracks, alignment and
// parameter roles. Structures are plain values owned by the timeline model;
// views only ever hold copies.
