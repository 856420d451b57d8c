package ui

import (
	"fyne.io/fyne/v2/widget"

	"github.com/framecut/framecut/internal/model"
)

// MonitorLabel stands in for the monitor in the status line and shows the
// overlay scene requested for it.
type MonitorLabel struct {
	*widget.Label

	localization *Localization
	scenes       map[string]model.MonitorScene
	current      string
}

// NewMonitorLabel creates the label showing monitorID
func NewMonitorLabel(monitorID string, localization *Localization) *MonitorLabel {
	m := &MonitorLabel{
		Label:        widget.NewLabel(""),
		localization: localization,
		scenes:       map[string]model.MonitorScene{},
		current:      monitorID,
	}
	m.updateText()
	return m
}

// ShowEffectScene switches the overlay of monitorID
func (m *MonitorLabel) ShowEffectScene(monitorID string, scene model.MonitorScene) {
	m.scenes[monitorID] = scene
	if monitorID == m.current {
		m.updateText()
	}
}

// Scene returns the overlay shown on monitorID
func (m *MonitorLabel) Scene(monitorID string) model.MonitorScene {
	if scene, ok := m.scenes[monitorID]; ok {
		return scene
	}
	return model.MonitorSceneDefault
}

// RefreshTexts reapplies localized labels
func (m *MonitorLabel) RefreshTexts() { m.updateText() }

func (m *MonitorLabel) updateText() {
	if m.Scene(m.current) == model.MonitorSceneGeometry {
		m.SetText(m.localization.GetText(KeyMonitorGeometry))
		return
	}
	m.SetText(m.localization.GetText(KeyMonitorDefault))
}
