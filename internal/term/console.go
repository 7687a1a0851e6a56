package term

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"life-editor/internal/core"
	"life-editor/internal/game"
	"life-editor/internal/render"
	"life-editor/pkg/life"
)

const (
	viewField   = "field"
	viewStatus  = "status"
	viewCatalog = "catalog"
	viewHelp    = "help"

	sideWidth   = 30
	statusLines = 6
	frameRate   = 30 * time.Millisecond
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	input    game.Input
	viewName string
}

// Console is the interactive terminal frontend. Key handlers and frames both
// run on the gocui main loop, so the game is only touched from one goroutine.
type Console struct {
	game  *game.Game
	gui   *gocui.Gui
	keys  []keyBinding
	cells *render.TextRenderer
	fixed *core.FixedStep

	pending game.Input
	done    chan struct{}
}

var stateDescr = map[game.State]string{
	game.Editing: aurora.Colorize("editing", aurora.GreenFg).String(),
	game.Running: aurora.Colorize("running", aurora.CyanFg).String(),
	game.Paused:  aurora.Colorize("paused", aurora.YellowFg).String(),
}

// NewConsole prepares the terminal UI for g. tps is the generation rate while
// running.
func NewConsole(g *game.Game, tps int) (*Console, error) {
	gui, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "init terminal")
	}
	gui.Mouse = true

	c := &Console{
		game:  g,
		gui:   gui,
		keys:  bindings(),
		cells: render.NewTextRenderer(nil, true, false),
		fixed: core.NewFixedStep(tps),
		done:  make(chan struct{}),
	}
	gui.SetManagerFunc(c.layout)
	if err := c.initKeyBindings(); err != nil {
		gui.Close()
		return nil, err
	}
	return c, nil
}

func bindings() []keyBinding {
	k := []keyBinding{
		{key: gocui.KeySpace, name: "SPACE", descr: "Run/Edit", input: game.Input{Space: true}},
		{key: 'p', name: "P", descr: "Pause", input: game.Input{Pause: true}},
		{key: 'n', name: "N", descr: "Step", input: game.Input{Step: true}},
		{key: 'c', name: "C", descr: "Chaos", input: game.Input{Chaos: true}},
		{key: gocui.KeyEsc, name: "ESC", descr: "Unselect", input: game.Input{Escape: true}},
		{key: 'x', name: "X", descr: "Clear", input: game.Input{Clear: true}},
		{key: 'r', name: "R", descr: "Random", input: game.Input{Random: true}},
		{key: 'g', name: "G", descr: "Gun", input: game.Input{Gun: true}},
	}
	for d := 0; d <= 9; d++ {
		var in game.Input
		in.PressDigit(d)
		k = append(k, keyBinding{key: rune('0' + d), name: fmt.Sprint(d), input: in})
	}
	return k
}

func (c *Console) initKeyBindings() error {
	for _, kb := range c.keys {
		in := kb.input
		handler := func(*gocui.Gui, *gocui.View) error {
			c.pending.Merge(in)
			return nil
		}
		if err := c.gui.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, handler); err != nil {
			return errors.Wrapf(err, "bind %s", kb.name)
		}
	}
	quit := func(*gocui.Gui, *gocui.View) error { return gocui.ErrQuit }
	for _, key := range []interface{}{gocui.KeyCtrlC, 'q'} {
		if err := c.gui.SetKeybinding("", key, gocui.ModNone, quit); err != nil {
			return errors.Wrap(err, "bind quit")
		}
	}
	return errors.Wrap(c.gui.SetKeybinding(viewField, gocui.MouseLeft, gocui.ModNone, c.click), "bind mouse")
}

// Run blocks until the user quits.
func (c *Console) Run() error {
	defer c.gui.Close()
	go c.loop()
	defer close(c.done)
	if err := c.gui.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "terminal main loop")
	}
	log.Printf("quit at generation %d", c.game.Generation())
	return nil
}

// loop posts a frame to the main loop at a steady rate.
func (c *Console) loop() {
	t := time.NewTicker(frameRate)
	defer t.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-t.C:
			c.gui.Update(c.frame)
		}
	}
}

func (c *Console) frame(g *gocui.Gui) error {
	in := c.pending
	c.pending = game.Input{}
	in.Tick = c.fixed.ShouldStep()
	before := c.game.State()
	c.game.Update(in)
	if after := c.game.State(); after != before {
		log.Printf("%s -> %s at generation %d", before, after, c.game.Generation())
	}
	c.render(g)
	return nil
}

func (c *Console) click(_ *gocui.Gui, v *gocui.View) error {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	x, y := cellAt(cx+ox, cy+oy)
	if size := c.game.Grid().Size(); x >= size.W || y >= size.H {
		return nil
	}
	var in game.Input
	in.ClickAt(x, y)
	c.pending.Merge(in)
	return nil
}

// cellAt maps a view position to a cell; every cell is two columns wide.
func cellAt(col, row int) (x, y int) {
	return col / 2, row
}

func (c *Console) render(g *gocui.Gui) {
	if v, err := g.View(viewField); err == nil {
		c.renderField(v)
	}
	if v, err := g.View(viewStatus); err == nil {
		c.renderStatus(v)
	}
	if v, err := g.View(viewCatalog); err == nil {
		c.renderCatalog(v)
	}
	if v, err := g.View(viewHelp); err == nil {
		c.renderHelp(v)
	}
}

func (c *Console) renderField(v *gocui.View) {
	v.Clear()
	grid := c.game.Grid()
	size := grid.Size()
	cells := grid.Cells()
	maxW, maxH := v.Size()
	var b bytes.Buffer
	for y := 0; y < size.H && y < maxH; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		row := cells[y*size.W : (y+1)*size.W]
		for x, cell := range row {
			if 2*x >= maxW {
				break
			}
			b.WriteString(c.cells.Glyph(cell))
		}
	}
	_, _ = fmt.Fprint(v, b.String())
}

func (c *Console) renderStatus(v *gocui.View) {
	v.Clear()
	st := c.game.Status()
	selected := "none"
	if st.Selected != "" {
		selected = st.Selected
	}
	chaos := "off"
	if st.Chaos {
		chaos = aurora.Red("on").String()
	}
	_, _ = fmt.Fprintln(v, renderProp("Mode", "%v", stateDescr[st.State]))
	_, _ = fmt.Fprintln(v, renderProp("Generation", "%v", st.Generation))
	_, _ = fmt.Fprintln(v, renderProp("Live cells", "%v", st.Population))
	_, _ = fmt.Fprintln(v, renderProp("Speed", "%v gen/s", c.fixed.TPS()))
	_, _ = fmt.Fprintln(v, renderProp("Pattern", "%v", selected))
	_, _ = fmt.Fprintln(v, renderProp("Chaos", "%v (%d stamps)", chaos, st.ChaosStamps))
}

func (c *Console) renderCatalog(v *gocui.View) {
	v.Clear()
	selected, ok := c.game.Editor().Selected()
	for _, p := range c.game.Editor().Patterns() {
		_, _ = fmt.Fprintln(v, catalogLine(p, ok && p.ID == selected.ID))
	}
}

// catalogLine shows a pattern's id, name and cell count.
func catalogLine(p life.Pattern, selected bool) string {
	line := fmt.Sprintf(" %d %s (%d)", p.ID, p.Name, p.Len())
	if selected {
		return aurora.Green(">" + line[1:]).String()
	}
	return line
}

func (c *Console) renderHelp(v *gocui.View) {
	v.Clear()
	_, _ = fmt.Fprintln(v, c.game.State().Instructions())
}

func renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	size := c.game.Grid().Size()

	if v, err := g.SetView(viewStatus, 0, 0, sideWidth, statusLines+1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	catalogTop := statusLines + 2
	catalogBottom := catalogTop + len(c.game.Editor().Patterns()) + 1
	if v, err := g.SetView(viewCatalog, 0, catalogTop, sideWidth, catalogBottom); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Patterns"
	}
	fieldRight := min(maxX-1, sideWidth+1+2*size.W+1)
	fieldBottom := min(maxY-3, size.H+1)
	if v, err := g.SetView(viewField, sideWidth+1, 0, fieldRight, fieldBottom); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Field"
	}
	if v, err := g.SetView(viewHelp, -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.Wrap = true
	}
	c.render(g)
	return nil
}
