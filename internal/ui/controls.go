package ui

import (
	"image"
	"math"
	"strconv"

	"cell-arena/internal/core"
)

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// controlPanel holds the adjustable parameters of a sim and the geometry of
// their +/- buttons.
type controlPanel struct {
	controls    []hudControlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

func newControlPanel(sim any, width, top int) controlPanel {
	var p controlPanel
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		p.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			p.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		p.layout(width, top)
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		p.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		p.floatSetter = setter
	}
	return p
}

func (p *controlPanel) layout(width, top int) {
	if width <= 0 {
		return
	}
	for i := range p.controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = rowTop
		p.controls[i].minusRect = minusRect
		p.controls[i].plusRect = plusRect
	}
}

// height is the vertical space the control rows occupy.
func (p *controlPanel) height() int { return len(p.controls) * lineHeight }

func (p *controlPanel) refresh(snapshot core.ParameterSnapshot) {
	for i := range p.controls {
		state := &p.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		}
	}
}

// click applies the button under (x, y), in panel coordinates. It reports
// whether a parameter changed.
func (p *controlPanel) click(x, y int) bool {
	for i := range p.controls {
		state := &p.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(x, y, state.minusRect) {
			return p.adjust(state, -1)
		}
		if pointInRect(x, y, state.plusRect) {
			return p.adjust(state, 1)
		}
	}
	return false
}

func (p *controlPanel) adjust(state *hudControlState, direction int) bool {
	if state == nil || direction == 0 {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if p.intSetter == nil {
			return false
		}
		target := clampControlInt(state.control, state.intValue+direction*intStep(state.control))
		if target == state.intValue {
			return false
		}
		if !p.intSetter.SetIntParameter(state.control.Key, target) {
			return false
		}
		state.intValue = target
		state.floatValue = float64(target)
		state.value = strconv.Itoa(target)
		return true
	case core.ParamTypeFloat:
		if p.floatSetter == nil {
			return false
		}
		target := state.floatValue + float64(direction)*floatStep(state.control)
		if state.control.HasMin && target < state.control.Min {
			target = state.control.Min
		}
		if state.control.HasMax && target > state.control.Max {
			target = state.control.Max
		}
		if math.Abs(target-state.floatValue) < 1e-9 {
			return false
		}
		if !p.floatSetter.SetFloatParameter(state.control.Key, target) {
			return false
		}
		state.floatValue = target
		state.value = formatFloat(state.control, target)
		return true
	}
	return false
}

func (p *controlPanel) canAdjust(state *hudControlState, direction int) bool {
	if state == nil || direction == 0 || !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if p.intSetter == nil {
			return false
		}
		target := state.intValue + direction*intStep(state.control)
		if state.control.HasMin && direction < 0 && target < int(math.Round(state.control.Min)) {
			return false
		}
		if state.control.HasMax && direction > 0 && target > int(math.Round(state.control.Max)) {
			return false
		}
		return true
	case core.ParamTypeFloat:
		if p.floatSetter == nil {
			return false
		}
		target := state.floatValue + float64(direction)*floatStep(state.control)
		if state.control.HasMin && direction < 0 && target < state.control.Min-1e-9 {
			return false
		}
		if state.control.HasMax && direction > 0 && target > state.control.Max+1e-9 {
			return false
		}
		return true
	}
	return false
}

func intStep(ctrl core.ParameterControl) int {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	return step
}

func floatStep(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return 0.05
	}
	return ctrl.Step
}

func clampControlInt(ctrl core.ParameterControl, v int) int {
	if ctrl.HasMin {
		if min := int(math.Round(ctrl.Min)); v < min {
			v = min
		}
	}
	if ctrl.HasMax {
		if max := int(math.Round(ctrl.Max)); v > max {
			v = max
		}
	}
	return v
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch step := floatStep(ctrl); {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 36
	textLineHeight = 16
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	sectionGap     = 14
)
