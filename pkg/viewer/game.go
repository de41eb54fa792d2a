// Package viewer draws the swarm from above with ebiten: heightmap tiles
// coloured by height, one marker per agent and a control panel that drives
// the engine.
package viewer

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/swarm-scape/internal/advisor"
	"github.com/lao-tseu-is-alive/swarm-scape/pb"
	"github.com/lao-tseu-is-alive/swarm-scape/pkg/flock"
	"github.com/lao-tseu-is-alive/swarm-scape/pkg/geometry"
	"github.com/lao-tseu-is-alive/swarm-scape/pkg/heightmap"
	"github.com/lao-tseu-is-alive/swarm-scape/pkg/simulation"
	"github.com/lao-tseu-is-alive/swarm-scape/pkg/ui"
)

const panelWidth = 280

type Game struct {
	ctx    context.Context
	engine *simulation.Engine
	adv    advisor.Advisor
	cfg    *simulation.Config
	logger golog.Logger

	lastState *pb.WorldSnapshot
	facings   map[string]geometry.Vector3D
	cam       camera

	panel            *ui.UIPanel
	widgetCohesion   *ui.Slider
	widgetSeparation *ui.Slider
	widgetAlignment  *ui.Slider
	widgetSpeed      *ui.Slider
	widgetForce      *ui.Slider
	widgetPerception *ui.Slider
	widgetBehaviour  *ui.TextInput
	widgetSuggest    *ui.Button
	widgetAdjust     *ui.Button
	widgetShowRadius *ui.Checkbox
	widgetShowGrid   *ui.Checkbox

	// advisor calls run off the game loop; their results are picked up in Update
	thinking atomic.Bool
	mu       sync.Mutex
	status   string
	pending  *advisor.Weights

	updateAvg float64
	drawAvg   float64
}

// NewGame builds the viewer over a started engine. adv may be nil, which
// disables the advisor buttons.
func NewGame(ctx context.Context, engine *simulation.Engine, adv advisor.Advisor, logger golog.Logger) *Game {
	if logger == nil {
		logger = golog.DiscardLogger
	}
	cfg := engine.Config()
	w, h := float64(cfg.Viewer.Width), float64(cfg.Viewer.Height)
	areaW := w - panelWidth - 20
	base := min(areaW, h) * 0.9 / cfg.Map.Dimension()

	g := &Game{
		ctx:       ctx,
		engine:    engine,
		adv:       adv,
		cfg:       cfg,
		logger:    logger,
		lastState: &pb.WorldSnapshot{},
		facings:   make(map[string]geometry.Vector3D),
		cam:       newCamera(panelWidth+20+areaW/2, h/2, base),
	}

	p := cfg.Parameters
	panel := ui.NewUIPanel("SwarmScape", 10, 10, panelWidth, h-20)

	panel.AddSection("Flocking Weights")
	g.widgetCohesion = panel.AddSlider("Cohesion", 0, 5, p.Cohesion)
	g.widgetSeparation = panel.AddSlider("Separation", 0, 5, p.Separation)
	g.widgetAlignment = panel.AddSlider("Alignment", 0, 5, p.Alignment)
	for _, s := range []*ui.Slider{g.widgetCohesion, g.widgetSeparation, g.widgetAlignment} {
		s.Step = 0.01
	}
	panel.EndSection()

	panel.AddSection("Motion Limits")
	g.widgetSpeed = panel.AddSlider("Speed Limit", 0.01, 1, p.SpeedLimit)
	g.widgetForce = panel.AddSlider("Force Limit", 0.0005, 0.05, p.ForceLimit)
	g.widgetPerception = panel.AddSlider("Perception Radius", 0, 20, p.PerceptionRadius)
	panel.EndSection()

	panel.AddSection("Advisor")
	g.widgetBehaviour = panel.AddTextInput("e.g., tightly packed, exploring slowly", func(string) {
		g.suggestParameters()
	})
	g.widgetSuggest = panel.AddButton("Suggest Parameters", g.suggestParameters)
	g.widgetAdjust = panel.AddButton("Adjust Heights", g.adjustHeights)
	panel.EndSection()

	panel.AddSection("View")
	g.widgetShowRadius = panel.AddCheckbox("Show perception radius", false)
	g.widgetShowGrid = panel.AddCheckbox("Show density counts", false)
	panel.AddButton("Reset Camera", g.cam.reset)
	panel.AddButton("Reset Population", g.resetPopulation)
	panel.EndSection()

	g.panel = panel
	if adv == nil {
		g.widgetSuggest.Disabled = true
		g.widgetAdjust.Disabled = true
	}
	return g
}

func (g *Game) setStatus(format string, args ...any) {
	g.mu.Lock()
	g.status = fmt.Sprintf(format, args...)
	g.mu.Unlock()
}

// startAdvice runs call in a goroutine unless another advisor call is in flight.
func (g *Game) startAdvice(call func(ctx context.Context)) {
	if !g.thinking.CompareAndSwap(false, true) {
		return
	}
	g.widgetSuggest.Disabled = true
	g.widgetAdjust.Disabled = true
	go func() {
		defer g.thinking.Store(false)
		ctx, cancel := context.WithTimeout(g.ctx, g.cfg.AdvisorTimeout())
		defer cancel()
		call(ctx)
	}()
}

func (g *Game) adjustHeights() {
	g.startAdvice(func(ctx context.Context) {
		resp, err := g.engine.AdjustHeights(ctx, g.adv)
		if err != nil {
			g.logger.Warnf("adjust heights: %v", err)
			g.setStatus("Heightmap unchanged: %v", err)
			return
		}
		g.setStatus("%s", resp.Explanation)
	})
}

func (g *Game) suggestParameters() {
	desired := strings.TrimSpace(g.widgetBehaviour.Text)
	if desired == "" {
		g.setStatus("Describe the swarm behaviour first")
		return
	}
	if g.adv == nil {
		return
	}
	g.startAdvice(func(ctx context.Context) {
		w, err := g.engine.SuggestParameters(ctx, g.adv, desired)
		if err != nil {
			g.logger.Warnf("suggest parameters: %v", err)
			g.setStatus("Parameters unchanged: %v", err)
			return
		}
		g.mu.Lock()
		g.pending = &w
		g.status = fmt.Sprintf("%q: cohesion %.2f, separation %.2f, alignment %.2f",
			desired, w.Cohesion, w.Separation, w.Alignment)
		g.mu.Unlock()
	})
}

func (g *Game) resetPopulation() {
	if err := g.engine.ResetPopulation(g.ctx, 0); err != nil {
		g.setStatus("Reset failed: %v", err)
		return
	}
	clear(g.facings)
	g.setStatus("Population reset")
}

func (g *Game) parameters() flock.Parameters {
	return flock.Parameters{
		Cohesion:         g.widgetCohesion.Value,
		Separation:       g.widgetSeparation.Value,
		Alignment:        g.widgetAlignment.Value,
		SpeedLimit:       g.widgetSpeed.Value,
		ForceLimit:       g.widgetForce.Value,
		PerceptionRadius: g.widgetPerception.Value,
	}
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	mx, my := ebiten.CursorPosition()
	g.panel.Update()
	// keys belong to the text field while it has focus
	if !g.widgetBehaviour.Focused() {
		g.cam.update(g.panel.Contains(mx, my))
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.cam.reset()
		}
	}

	// weights suggested by the advisor are already applied in the world;
	// mirroring them on the sliders must not send them back
	g.mu.Lock()
	if w := g.pending; w != nil {
		g.pending = nil
		g.widgetCohesion.SetValue(w.Cohesion)
		g.widgetSeparation.SetValue(w.Separation)
		g.widgetAlignment.SetValue(w.Alignment)
		for _, s := range []*ui.Slider{g.widgetCohesion, g.widgetSeparation, g.widgetAlignment} {
			s.Changed()
		}
	}
	g.mu.Unlock()
	if !g.thinking.Load() && g.adv != nil {
		g.widgetSuggest.Disabled = false
		g.widgetAdjust.Disabled = false
	}

	changed := false
	for _, s := range []*ui.Slider{g.widgetCohesion, g.widgetSeparation, g.widgetAlignment, g.widgetSpeed, g.widgetForce, g.widgetPerception} {
		if s.Changed() {
			changed = true
		}
	}
	if changed {
		if err := g.engine.SetParameters(g.ctx, g.parameters()); err != nil {
			g.setStatus("Parameters rejected: %v", err)
		}
	}

	// keep only the newest snapshot
	for drained := false; !drained; {
		select {
		case snap := <-g.engine.Snapshots():
			g.lastState = snap
		default:
			drained = true
		}
	}

	return g.engine.Tick(g.ctx, time.Now().UnixMilli())
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(color.RGBA{R: 18, G: 18, B: 24, A: 255})
	g.drawTerrain(screen)
	g.drawAgents(screen)
	g.panel.Draw(screen)

	g.mu.Lock()
	status := g.status
	g.mu.Unlock()
	w, h := g.cfg.Viewer.Width, g.cfg.Viewer.Height
	if status != "" {
		ebitenutil.DebugPrintAt(screen, status, panelWidth+30, h-24)
	}
	if g.thinking.Load() {
		vector.FillRect(screen, float32(w/2-70), float32(h/2-20), 160, 40, color.RGBA{R: 0, G: 0, B: 0, A: 180}, true)
		ebitenutil.DebugPrintAt(screen, "AI is thinking...", w/2-50, h/2-8)
	}

	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nFrame: %d\nAgents: %d\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.lastState.GetFrame(),
		len(g.lastState.GetAgents()),
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, w-150, 10)
}

func (g *Game) drawTerrain(screen *ebiten.Image) {
	m := g.cfg.Map.MapConfig
	heights := g.lastState.GetHeights()
	cells := g.lastState.GetDensity().GetCells()
	half := m.Dimension() / 2
	size := float32(m.CellSize * g.cam.scale())

	for row := 0; row < m.GridSize; row++ {
		for col := 0; col < m.GridSize; col++ {
			i := row*m.GridSize + col
			h := heightmap.DefaultHeight
			if i < len(heights) {
				h = heights[i]
			}
			x, y := g.cam.project(-half+float64(col)*m.CellSize, -half+float64(row)*m.CellSize)
			vector.FillRect(screen, float32(x), float32(y), size-1, size-1, heightmap.Color(h), false)
			if g.widgetShowGrid.Value && i < len(cells) && cells[i] > 0 {
				ebitenutil.DebugPrintAt(screen, strconv.Itoa(int(cells[i])), int(x)+2, int(y)+2)
			}
		}
	}
}

func (g *Game) drawAgents(screen *ebiten.Image) {
	s := g.cam.scale()
	b := g.cfg.Map.Bounds()
	radius := g.widgetPerception.Value * s
	seen := make(map[string]struct{}, len(g.lastState.GetAgents()))

	for _, state := range g.lastState.GetAgents() {
		a := simulation.AgentFromProto(state)
		x, y := g.cam.project(a.Position.X, a.Position.Z)
		clr := parseColor(a.Color)

		prev, ok := g.facings[a.ID]
		if !ok {
			prev = geometry.NewVector(1, 0, 0)
		}
		facing := flock.Facing(a.Velocity, prev)
		g.facings[a.ID] = facing
		seen[a.ID] = struct{}{}

		// higher agents are drawn bigger
		r := 2 + 3*(a.Position.Y-b.YMin)/(b.YMax-b.YMin)
		if g.widgetShowRadius.Value {
			vector.StrokeCircle(screen, float32(x), float32(y), float32(radius), 1, color.RGBA{R: clr.R, G: clr.G, B: clr.B, A: 60}, true)
		}
		vector.FillCircle(screen, float32(x), float32(y), float32(r), clr, true)
		vector.StrokeLine(screen, float32(x), float32(y),
			float32(x+facing.X*(r+6)), float32(y+facing.Z*(r+6)), 1.5, clr, true)
	}
	for id := range g.facings {
		if _, ok := seen[id]; !ok {
			delete(g.facings, id)
		}
	}
}

// parseColor reads #RRGGBB, falling back to the default agent colour.
func parseColor(s string) color.RGBA {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil || len(strings.TrimPrefix(s, "#")) != 6 {
		if s != flock.DefaultColor {
			return parseColor(flock.DefaultColor)
		}
		return color.RGBA{R: 100, G: 181, B: 246, A: 255}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

func (g *Game) Layout(w, h int) (int, int) { return g.cfg.Viewer.Width, g.cfg.Viewer.Height }
