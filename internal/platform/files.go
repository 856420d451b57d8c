package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// AppName is the directory name used under the user config directory
const AppName = "framecut"

// OverridesFile is the name of the optional TOML settings file
const OverridesFile = "settings.toml"

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// ConfigDir returns the application config directory, honoring
// XDG_CONFIG_HOME on Linux.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// DefaultOverridesPath returns the location of the settings override file
func DefaultOverridesPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, OverridesFile), nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// RevealDirectory opens dirPath in the system file manager, creating it first
func RevealDirectory(dirPath string) error {
	if err := CreateDirectoryIfNotExists(dirPath); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	name, args, err := revealCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	if err := exec.Command(name, args...).Run(); err == nil || runtime.GOOS != OSLinux {
		return err
	}

	// xdg-open is missing on some desktops
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, absPath).Run()
		}
	}
	return fmt.Errorf("no suitable file manager found")
}

// revealCommand returns the command opening dirPath on goos
func revealCommand(goos, dirPath string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{dirPath}, nil
	case OSWindows:
		return ExplorerCommand, []string{dirPath}, nil
	case OSLinux:
		return XDGOpenCommand, []string{dirPath}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
