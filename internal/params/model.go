package params

import (
	"fmt"

	"github.com/framecut/framecut/internal/model"
	"github.com/framecut/framecut/internal/signal"
	"github.com/framecut/framecut/internal/timeline"
)

// Param is one editable parameter
type Param struct {
	Name  string
	Value float64
	Min   float64
	Max   float64

	// Geometry marks parameters edited on the monitor overlay
	Geometry bool
}

// MixSource is the part of the timeline a mix parameter model reads from.
type MixSource interface {
	MixDuration(ownerID int) (int, bool)
	ItemPosition(itemID int) int
	MixChanged() *signal.Signal[timeline.MixChange]
}

// Model is the parameter set of one timeline item
type Model struct {
	ownerID   int
	monitorID string
	params    []Param
	keyframes *KeyframeList
	active    bool

	source MixSource
	conn   *signal.Connection

	dataChanged signal.Signal[model.Roles]
}

// NewMixModel creates the parameter model of the mix owned by ownerID. Mix
// changes reported by src for that owner are forwarded as DataChanged.
func NewMixModel(src MixSource, ownerID int, monitorID string, params ...Param) *Model {
	m := &Model{
		ownerID:   ownerID,
		monitorID: monitorID,
		params:    params,
		source:    src,
	}
	m.conn = src.MixChanged().Connect(func(c timeline.MixChange) {
		if c.OwnerID == ownerID {
			m.dataChanged.Emit(c.Roles)
		}
	})
	return m
}

// OwnerID returns the id of the item the parameters belong to
func (m *Model) OwnerID() int { return m.ownerID }

// MonitorID names the monitor showing the owner
func (m *Model) MonitorID() string { return m.monitorID }

// DataChanged is emitted with the roles whose values changed
func (m *Model) DataChanged() *signal.Signal[model.Roles] { return &m.dataChanged }

// SetKeyframes attaches a keyframe list; nil removes it
func (m *Model) SetKeyframes(kl *KeyframeList) { m.keyframes = kl }

// Keyframes returns the keyframe list, or nil when the parameters are not animated
func (m *Model) Keyframes() *KeyframeList { return m.keyframes }

// SetActive marks the model as being edited
func (m *Model) SetActive(active bool) { m.active = active }

// IsActive reports whether a panel currently edits the model
func (m *Model) IsActive() bool { return m.active }

// RowCount returns the number of parameters
func (m *Model) RowCount() int { return len(m.params) }

// Param returns the parameter at row
func (m *Model) Param(row int) (Param, bool) {
	if row < 0 || row >= len(m.params) {
		return Param{}, false
	}
	return m.params[row], true
}

// HasGeometry reports whether any parameter is edited on the monitor
func (m *Model) HasGeometry() bool {
	for _, p := range m.params {
		if p.Geometry {
			return true
		}
	}
	return false
}

// ParentDuration returns the 0-based duration of the owning mix, or 0 when
// the mix no longer exists.
func (m *Model) ParentDuration() int {
	d, _ := m.source.MixDuration(m.ownerID)
	return d
}

// Data returns the value of role for row. Parent roles are the same on every
// row. Unknown rows or roles yield nil.
func (m *Model) Data(row int, role model.Role) any {
	switch role {
	case model.ParentDurationRole:
		return m.ParentDuration()
	case model.ParentInRole:
		return m.source.ItemPosition(m.ownerID)
	}

	p, ok := m.Param(row)
	if !ok {
		return nil
	}
	switch role {
	case model.NameRole:
		return p.Name
	case model.ValueRole:
		return p.Value
	case model.MinRole:
		return p.Min
	case model.MaxRole:
		return p.Max
	default:
		return nil
	}
}

// SetValue changes the value of the parameter at row, clamped to its range
func (m *Model) SetValue(row int, value float64) error {
	if row < 0 || row >= len(m.params) {
		return fmt.Errorf("set value of row %d: out of range", row)
	}
	p := &m.params[row]
	if p.Max > p.Min {
		value = max(p.Min, min(p.Max, value))
	}
	if p.Value == value {
		return nil
	}
	p.Value = value
	m.dataChanged.Emit(model.Roles{model.ValueRole})
	return nil
}

// Close stops forwarding mix changes
func (m *Model) Close() {
	m.conn.Disconnect()
}
