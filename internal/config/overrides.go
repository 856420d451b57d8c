package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/framecut/framecut/internal/logging"
	"github.com/framecut/framecut/internal/model"
)

// Overrides is the optional settings file. Zero fields keep the stored
// preference.
type Overrides struct {
	FrameRate   int    `toml:"frame_rate"`
	TrackHeight int    `toml:"track_height"`
	Language    string `toml:"language"`

	Mix struct {
		Duration  int    `toml:"duration"`
		Alignment string `toml:"alignment"`
	} `toml:"mix"`

	// Unknown lists keys of the file that match no setting
	Unknown []string `toml:"-"`
}

// LoadOverrides reads path and applies its non-zero fields to s. A missing
// file is not an error. Unknown keys are logged and skipped.
func LoadOverrides(s *Settings, path string, logger *log.Logger) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Overrides{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read overrides: %w", err)
	}

	var o Overrides
	md, err := toml.Decode(string(data), &o)
	if err != nil {
		return nil, fmt.Errorf("parse overrides %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		o.Unknown = append(o.Unknown, key.String())
	}
	if len(o.Unknown) > 0 {
		logging.Component(logger, "config").Warn("unknown settings ignored", "path", path, "keys", o.Unknown)
	}

	var align model.MixAlignment
	if o.Mix.Alignment != "" {
		align, err = model.ParseMixAlignment(o.Mix.Alignment)
		if err != nil || !align.IsSet() {
			return nil, fmt.Errorf("parse overrides %s: mix alignment %q is not left, right or center", path, o.Mix.Alignment)
		}
	}

	o.apply(s, align)
	return &o, nil
}

func (o *Overrides) apply(s *Settings, align model.MixAlignment) {
	if o.FrameRate != 0 {
		s.SetFrameRate(o.FrameRate)
	}
	if o.TrackHeight != 0 {
		s.SetTrackHeight(o.TrackHeight)
	}
	if o.Language != "" {
		s.SetLanguage(o.Language)
	}
	if o.Mix.Duration != 0 {
		s.SetDefaultMixDuration(o.Mix.Duration)
	}
	if align.IsSet() {
		s.SetDefaultMixAlign(align)
	}
}
