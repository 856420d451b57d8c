package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconLanguage = "🌐"

	// Track header toggles
	IconVideo  = "👁"
	IconAudio  = "🔊"
	IconLock   = "🔒"
	IconUnlock = "🔓"

	// Mix alignment toggles
	IconAlignLeft   = "⇤"
	IconAlignCenter = "⇹"
	IconAlignRight  = "⇥"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	TrackHeaderWidth float32 = 160

	// Track buttons are hidden below this height
	SmallTrackHeight float32 = 40

	DurationEntryWidth float32 = 120
	ParameterNameWidth float32 = 100

	OverlayStrokeWidth float32 = 2
)

// Delays
const (
	DeleteTrackDelay = 500 * time.Millisecond
)
