package config

import (
	"fyne.io/fyne/v2"

	"github.com/framecut/framecut/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyFrameRate          = "frame_rate"
	KeyTrackHeight        = "track_height"
	KeyDefaultMixDuration = "default_mix_duration"
	KeyDefaultMixAlign    = "default_mix_alignment"
	KeyLanguage           = "app_language"
)

// Default values
const (
	DefaultFrameRate   = 25
	DefaultTrackHeight = 50
	DefaultMixDuration = 25
	DefaultMixAlign    = model.AlignCenter
	DefaultLanguage    = "system"
)

// Limits
const (
	MinFrameRate   = 1
	MaxFrameRate   = 240
	MinTrackHeight = 20
	MaxTrackHeight = 200
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetFrameRate returns the project frame rate in frames per second
func (s *Settings) GetFrameRate() int {
	value := s.app.Preferences().Int(KeyFrameRate)
	if value <= 0 {
		s.SetFrameRate(DefaultFrameRate)
		return DefaultFrameRate
	}
	return value
}

// SetFrameRate sets the project frame rate
func (s *Settings) SetFrameRate(fps int) {
	if fps < MinFrameRate {
		fps = MinFrameRate
	}
	if fps > MaxFrameRate {
		fps = MaxFrameRate
	}
	s.app.Preferences().SetInt(KeyFrameRate, fps)
}

// GetTrackHeight returns the height of a track row in pixels
func (s *Settings) GetTrackHeight() int {
	value := s.app.Preferences().Int(KeyTrackHeight)
	if value <= 0 {
		s.SetTrackHeight(DefaultTrackHeight)
		return DefaultTrackHeight
	}
	return value
}

// SetTrackHeight sets the track row height
func (s *Settings) SetTrackHeight(height int) {
	if height < MinTrackHeight {
		height = MinTrackHeight
	}
	if height > MaxTrackHeight {
		height = MaxTrackHeight
	}
	s.app.Preferences().SetInt(KeyTrackHeight, height)
}

// GetDefaultMixDuration returns the length in frames of newly created mixes
func (s *Settings) GetDefaultMixDuration() int {
	value := s.app.Preferences().Int(KeyDefaultMixDuration)
	if value <= 0 {
		s.SetDefaultMixDuration(DefaultMixDuration)
		return DefaultMixDuration
	}
	return value
}

// SetDefaultMixDuration sets the length of newly created mixes
func (s *Settings) SetDefaultMixDuration(frames int) {
	if frames < 1 {
		frames = 1
	}
	s.app.Preferences().SetInt(KeyDefaultMixDuration, frames)
}

// GetDefaultMixAlign returns the alignment given to newly created mixes
func (s *Settings) GetDefaultMixAlign() model.MixAlignment {
	align, err := model.ParseMixAlignment(s.app.Preferences().String(KeyDefaultMixAlign))
	if err != nil || !align.IsSet() {
		s.SetDefaultMixAlign(DefaultMixAlign)
		return DefaultMixAlign
	}
	return align
}

// SetDefaultMixAlign sets the alignment of newly created mixes
func (s *Settings) SetDefaultMixAlign(align model.MixAlignment) {
	s.app.Preferences().SetString(KeyDefaultMixAlign, string(align))
}

// GetDefaultMixAlignOptions returns the alignments a new mix can start with
func (s *Settings) GetDefaultMixAlignOptions() []model.MixAlignment {
	return []model.MixAlignment{model.AlignLeft, model.AlignCenter, model.AlignRight}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
