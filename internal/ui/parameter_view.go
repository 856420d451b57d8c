package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/framecut/framecut/internal/logging"
	"github.com/framecut/framecut/internal/mixstack"
	"github.com/framecut/framecut/internal/model"
	"github.com/framecut/framecut/internal/signal"
)

// geometryModel is implemented by models that have monitor-edited parameters
type geometryModel interface {
	HasGeometry() bool
}

// valueSetter is implemented by models whose values can be edited
type valueSetter interface {
	SetValue(row int, value float64) error
}

// ParameterView lists the parameters of the bound model with a slider per
// value, and a position slider requesting seeks inside the owner.
type ParameterView struct {
	widget.BaseWidget

	localization *Localization
	logger       *log.Logger
	model        mixstack.ParameterModel

	rows        *fyne.Container
	positionBar *widget.Slider
	seek        signal.Signal[int]
}

// NewParameterView creates an empty parameter view
func NewParameterView(localization *Localization, logger *log.Logger) *ParameterView {
	v := &ParameterView{
		localization: localization,
		logger:       logging.Component(logger, "params"),
		rows:         container.NewVBox(),
	}
	v.ExtendBaseWidget(v)

	v.positionBar = widget.NewSlider(0, 1)
	v.positionBar.Step = 1
	v.positionBar.OnChangeEnded = func(pos float64) {
		if v.model != nil {
			v.seek.Emit(int(pos))
		}
	}
	v.positionBar.Disable()
	return v
}

// SeekRequested carries positions relative to the owner start
func (v *ParameterView) SeekRequested() *signal.Signal[int] { return &v.seek }

// SetModel shows the parameters of m
func (v *ParameterView) SetModel(m mixstack.ParameterModel) {
	v.model = m
	v.positionBar.Enable()
	v.Refresh()
}

// UnsetModel clears the view
func (v *ParameterView) UnsetModel() {
	v.model = nil
	v.positionBar.SetValue(0)
	v.positionBar.Disable()
	v.Refresh()
}

// MonitorScene returns the geometry overlay when the model has geometry parameters
func (v *ParameterView) MonitorScene() model.MonitorScene {
	if gm, ok := v.model.(geometryModel); ok && gm.HasGeometry() {
		return model.MonitorSceneGeometry
	}
	return model.MonitorSceneDefault
}

// RowCount returns the number of displayed parameter rows
func (v *ParameterView) RowCount() int { return len(v.rows.Objects) }

// SeekTo moves the position slider and requests the seek
func (v *ParameterView) SeekTo(pos int) {
	v.positionBar.SetValue(float64(pos))
	v.positionBar.OnChangeEnded(v.positionBar.Value)
}

// Refresh rebuilds the rows from the bound model
func (v *ParameterView) Refresh() {
	v.rows.Objects = nil
	if v.model != nil {
		for row := 0; row < v.model.RowCount(); row++ {
			v.rows.Add(v.createRow(row))
		}
		if d, ok := v.model.Data(0, model.ParentDurationRole).(int); ok {
			v.positionBar.Max = float64(max(d, 1))
		}
	}
	v.rows.Refresh()
	v.positionBar.Refresh()
	v.BaseWidget.Refresh()
}

// createRow builds the name label and value slider of row
func (v *ParameterView) createRow(row int) fyne.CanvasObject {
	name, _ := v.model.Data(row, model.NameRole).(string)
	value, _ := v.model.Data(row, model.ValueRole).(float64)
	lo, _ := v.model.Data(row, model.MinRole).(float64)
	hi, _ := v.model.Data(row, model.MaxRole).(float64)

	nameLabel := widget.NewLabel(name)
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(ParameterNameWidth, 0))
	left := container.NewStack(spacer, nameLabel)

	if hi <= lo {
		return container.NewBorder(nil, nil, left, nil, widget.NewLabel(DashPlaceholder))
	}

	valueLabel := widget.NewLabel(fmt.Sprintf("%.2f", value))
	slider := widget.NewSlider(lo, hi)
	slider.Step = (hi - lo) / 100
	slider.Value = value
	slider.OnChanged = func(f float64) { valueLabel.SetText(fmt.Sprintf("%.2f", f)) }

	if setter, ok := v.model.(valueSetter); ok {
		slider.OnChangeEnded = func(f float64) {
			if err := setter.SetValue(row, f); err != nil {
				v.logger.Warn("parameter not changed", "row", row, "err", err)
			}
		}
	} else {
		slider.Disable()
	}
	return container.NewBorder(nil, nil, left, valueLabel, slider)
}

// CreateRenderer creates the widget renderer
func (v *ParameterView) CreateRenderer() fyne.WidgetRenderer {
	position := container.NewBorder(nil, nil, widget.NewLabel(v.localization.GetText(KeyPosition)), nil, v.positionBar)
	return widget.NewSimpleRenderer(container.NewVBox(v.rows, position))
}
