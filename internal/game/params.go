package game

import (
	"strconv"

	"life-editor/internal/core"
)

const (
	paramChaosChance = "chaos_chance"
	paramDensity     = "random_density"
)

var controls = []core.ParameterControl{
	{Key: paramChaosChance, Label: "Chaos chance", Type: core.ParamTypeFloat, Step: 0.001, Min: 0, Max: 0.1, HasMin: true, HasMax: true},
	{Key: paramDensity, Label: "Random density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
}

// Parameters reports the HUD values.
func (g *Game) Parameters() core.ParameterSnapshot {
	st := g.Status()
	selected := st.Selected
	if selected == "" {
		selected = "none"
	}
	chaos := "off"
	if st.Chaos {
		chaos = "on"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Simulation", Params: []core.Parameter{
			{Key: "state", Label: "State", Type: core.ParamTypeText, Value: st.State.String()},
			{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(st.Generation)},
			{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(st.Population)},
			{Key: "selected", Label: "Pattern", Type: core.ParamTypeText, Value: selected},
		}},
		{Name: "Chaos", Params: []core.Parameter{
			{Key: "chaos", Label: "Chaos", Type: core.ParamTypeBool, Value: chaos},
			{Key: "chaos_stamps", Label: "Stamps", Type: core.ParamTypeInt, Value: strconv.Itoa(st.ChaosStamps)},
			{Key: paramChaosChance, Label: "Chaos chance", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(g.opts.ChaosChance, 'f', -1, 64)},
			{Key: paramDensity, Label: "Random density", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(g.opts.Density, 'f', -1, 64)},
		}},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (g *Game) ParameterControls() []core.ParameterControl {
	return append([]core.ParameterControl(nil), controls...)
}

// SetFloatParameter updates an adjustable value, clamped to its bounds.
func (g *Game) SetFloatParameter(key string, value float64) bool {
	for _, c := range controls {
		if c.Key != key {
			continue
		}
		value = c.Clamp(value)
		switch key {
		case paramChaosChance:
			g.opts.ChaosChance = value
		case paramDensity:
			g.opts.Density = value
		}
		return true
	}
	return false
}
