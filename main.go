package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/framecut/framecut/internal/config"
	"github.com/framecut/framecut/internal/logging"
	"github.com/framecut/framecut/internal/model"
	"github.com/framecut/framecut/internal/platform"
	"github.com/framecut/framecut/internal/timeline"
	"github.com/framecut/framecut/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.framecut.framecut"
	AppName = "Framecut"

	WindowWidth  = 1024
	WindowHeight = 640
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:          "framecut",
		Short:        "Framecut edits clips, tracks and mixes on a timeline",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(logging.New(os.Stderr, verbose), configPath)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "settings override file (default: user config dir)")
	return cmd
}

func run(logger *log.Logger, configPath string) error {
	logger.Info("starting", "app", AppName, "version", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewEditorTheme())

	settings := config.NewSettings(myApp)
	if configPath == "" {
		if dir, err := platform.ConfigDir(); err != nil {
			logger.Warn("no config directory", "err", err)
		} else if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			logger.Warn("failed to ensure config dir", "dir", dir, "err", err)
		}
		path, err := platform.DefaultOverridesPath()
		if err != nil {
			logger.Warn("no settings override path", "err", err)
		}
		configPath = path
	}
	if configPath != "" {
		if _, err := config.LoadOverrides(settings, configPath, logger); err != nil {
			return fmt.Errorf("load settings overrides: %w", err)
		}
		logger.Debug("settings loaded", "path", configPath, "fps", settings.GetFrameRate())
	}

	tl, err := newDemoTimeline(logger, settings)
	if err != nil {
		return fmt.Errorf("build timeline: %w", err)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ui.NewRootUI(myWindow, settings, tl, logger)

	myWindow.ShowAndRun()
	return nil
}

// newDemoTimeline builds a two track project with one mix so the editor has
// something to show.
func newDemoTimeline(logger *log.Logger, settings *config.Settings) (*timeline.Model, error) {
	tl := timeline.New(logger)
	tl.AddTrack(model.TrackInfo{Type: model.TrackTypeVideo, Name: "V1"})
	tl.AddTrack(model.TrackInfo{Type: model.TrackTypeVideo, Name: "V2"})
	tl.AddTrack(model.TrackInfo{Type: model.TrackTypeAudio, Name: "A1"})

	fps := settings.GetFrameRate()
	clips := []struct{ track, pos, dur int }{
		{0, 0, 4 * fps},
		{0, 4 * fps, 6 * fps},
		{1, 2 * fps, 3 * fps},
		{2, 0, 10 * fps},
	}
	ids := make([]int, 0, len(clips))
	for _, c := range clips {
		id, err := tl.AddClip(c.track, c.pos, c.dur)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	// the default duration comes from the user and may not fit the clips
	if err := tl.CreateMix(ids[0], ids[1], settings.GetDefaultMixDuration(), settings.GetDefaultMixAlign()); err != nil {
		logging.OrDefault(logger).Warn("demo mix not created", "err", err)
	}
	return tl, nil
}
