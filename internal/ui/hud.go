//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"life-editor/internal/core"
	"life-editor/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	colorPanel    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	colorHeader   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	colorText     = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	colorDim      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	colorSelected = color.RGBA{R: 120, G: 220, B: 140, A: 255}
	colorRunning  = color.RGBA{R: 110, G: 200, B: 255, A: 255}
	colorPaused   = color.RGBA{R: 255, G: 200, B: 90, A: 255}
)

// HUD renders the status panel to the right of the grid: game state,
// counters, the pattern catalog and +/- buttons for the tunables.
type HUD struct {
	game       *game.Game
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	controlsTop  int
}

// NewHUD constructs a HUD for the provided game and panel width.
func NewHUD(g *game.Game, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{game: g, width: width, floatSetter: g}
	h.snapshot = g.Parameters()
	controls := g.ParameterControls()
	h.controls = make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		h.controls[i] = hudControlState{control: ctrl, value: "--"}
	}
	h.layoutControls()
	return h
}

// Width reports the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached snapshot and handles button clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.game.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(colorPanel)
	y := h.drawStatus()
	y = h.drawCatalog(y)
	h.drawControls()
	h.drawInstructions(height)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func stateColor(s game.State) color.Color {
	switch s {
	case game.Running:
		return colorRunning
	case game.Paused:
		return colorPaused
	default:
		return colorSelected
	}
}

func (h *HUD) drawStatus() int {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	st := h.game.State()
	text.Draw(h.panel, st.String(), face, panelPadding, y, stateColor(st))
	y += sectionGap
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, colorHeader)
		y += rowHeight
		for _, p := range group.Params {
			if p.Type == core.ParamTypeFloat {
				// tunables are shown next to their buttons
				continue
			}
			text.Draw(h.panel, fmt.Sprintf("%s: %s", p.Label, p.Value), face, panelPadding+indent, y, colorText)
			y += rowHeight
		}
		y += sectionGap - rowHeight
	}
	return y
}

func (h *HUD) drawCatalog(y int) int {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Patterns", face, panelPadding, y, colorHeader)
	y += rowHeight
	selected, ok := h.game.Editor().Selected()
	for _, p := range h.game.Editor().Patterns() {
		clr := colorDim
		prefix := "  "
		if ok && p.ID == selected.ID {
			clr = colorSelected
			prefix = "> "
		}
		text.Draw(h.panel, fmt.Sprintf("%s%d %s (%d)", prefix, p.ID, p.Name, p.Len()), face, panelPadding, y, clr)
		y += rowHeight
	}
	return y
}

func (h *HUD) drawInstructions(height int) {
	face := basicfont.Face7x13
	perLine := (h.width - 2*panelPadding) / glyphWidth
	lines := wrap(HelpText(h.game.State()), perLine)
	y := height - panelPadding - (len(lines)-1)*rowHeight
	for _, line := range lines {
		text.Draw(h.panel, line, face, panelPadding, y, colorDim)
		y += rowHeight
	}
}

// wrap splits s on spaces into lines of at most width runes.
func wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(s) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.floatValue = parsed
		state.value = formatFloat(state.control, parsed)
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if !h.canAdjust(state, direction) {
		return
	}
	target := state.control.Clamp(state.floatValue + float64(direction)*step(state.control))
	if math.Abs(target-state.floatValue) < 1e-9 {
		return
	}
	if h.floatSetter.SetFloatParameter(state.control.Key, target) {
		state.floatValue = target
		state.value = formatFloat(state.control, target)
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if state == nil || direction == 0 || h.floatSetter == nil || !state.hasValue {
		return false
	}
	target := state.floatValue + float64(direction)*step(state.control)
	if state.control.HasMin && direction < 0 && target < state.control.Min-1e-9 {
		return false
	}
	if state.control.HasMax && direction > 0 && target > state.control.Max+1e-9 {
		return false
	}
	return true
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, colorText)
		valueColor := colorText
		if !state.hasValue {
			valueColor = colorDim
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.canAdjust(state, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

// layoutControls places the +/- rows below the status and catalog sections.
func (h *HUD) layoutControls() {
	if len(h.controls) == 0 || h.width <= 0 {
		return
	}
	rows := 0
	for _, group := range h.snapshot.Groups {
		rows++
		for _, p := range group.Params {
			if p.Type != core.ParamTypeFloat {
				rows++
			}
		}
	}
	rows += 1 + len(h.game.Editor().Patterns())
	h.controlsTop = panelPadding + headerBaseline + (len(h.snapshot.Groups)+1)*sectionGap + rows*rowHeight
	for i := range h.controls {
		top := h.controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func step(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return 0.05
	}
	return ctrl.Step
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch s := step(ctrl); {
	case s < 0.001:
		precision = 4
	case s < 0.01:
		precision = 3
	case s < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	rowHeight      = 16
	sectionGap     = 22
	indent         = 8
	glyphWidth     = 7
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
)
