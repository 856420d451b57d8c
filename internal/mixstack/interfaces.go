package mixstack

import (
	"github.com/framecut/framecut/internal/model"
	"github.com/framecut/framecut/internal/params"
	"github.com/framecut/framecut/internal/signal"
)

// Timeline is the authoritative owner of mix duration and alignment.
type Timeline interface {
	MixAlign(clipID int) model.MixAlignment
	ResizeMix(clipID, duration int, align model.MixAlignment) error
	ItemPosition(itemID int) int
}

// ParameterModel is the parameter set of the mix being edited.
type ParameterModel interface {
	OwnerID() int
	MonitorID() string
	RowCount() int
	Data(row int, role model.Role) any
	SetActive(active bool)
	Keyframes() *params.KeyframeList
	DataChanged() *signal.Signal[model.Roles]
}

// ParameterView renders the rows of a parameter model.
type ParameterView interface {
	SetModel(m ParameterModel)
	UnsetModel()
	Refresh()

	// MonitorScene returns the monitor overlay needed to edit the current model
	MonitorScene() model.MonitorScene

	// SeekRequested carries positions relative to the owner start
	SeekRequested() *signal.Signal[int]
}

// Panel shows the duration field and the alignment toggles. Its user
// callbacks end up in the Controller setters.
type Panel interface {
	SetDuration(display int)
	SetAlignment(align model.MixAlignment)
	SetEnabled(enabled bool)
}

// Monitor switches the overlay shown on a monitor.
type Monitor interface {
	ShowEffectScene(monitorID string, scene model.MonitorScene)
}
