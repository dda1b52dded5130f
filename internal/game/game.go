package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/minesweeper/internal/clock"
	"github.com/samdwyer/minesweeper/internal/difficulty"
	"github.com/samdwyer/minesweeper/internal/engine"
	"github.com/samdwyer/minesweeper/internal/telemetry"
	"github.com/samdwyer/minesweeper/internal/ui"
)

// Game hosts one engine at a time in the terminal.
type Game struct {
	screen     *ui.Screen
	renderer   *ui.Renderer
	registry   *difficulty.Registry
	clock      *clock.Driver
	log        logrus.FieldLogger
	cfg        Config
	difficulty string
	engine     *engine.Engine
	cursor     *Cursor
	generation uint64
	games      int64
	mouseDown  tcell.ButtonMask
	running    bool
}

// New creates a new game on the terminal.
func New(cfg Config, log logrus.FieldLogger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g, err := NewWithScreen(screen, cfg, log)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game drawing to an initialized screen.
// An unusable difficulty or board config is rejected here, before anything is drawn.
func NewWithScreen(screen *ui.Screen, cfg Config, log logrus.FieldLogger) (*Game, error) {
	registry, err := difficulty.LoadRegistry()
	if err != nil {
		return nil, fmt.Errorf("load difficulties: %w", err)
	}

	if _, err := registry.Resolve(cfg.Difficulty, cfg.Custom); err != nil {
		return nil, err
	}
	if cfg.TimeLimit < 0 {
		return nil, &engine.ConfigError{
			Config: engine.Config{TimeLimitSeconds: cfg.TimeLimit},
			Reason: "time limit must not be negative",
		}
	}

	return &Game{
		screen:     screen,
		renderer:   ui.NewRenderer(screen, registry),
		registry:   registry,
		clock:      clock.New(time.Second),
		log:        log,
		cfg:        cfg,
		difficulty: cfg.Difficulty,
		running:    true,
	}, nil
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	err := g.restart(ctx, g.difficulty)
	initSpan.End()
	if err != nil {
		g.Close()
		return err
	}

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go g.pumpEvents(events, done)

	for g.running {
		g.render()

		select {
		case <-ctx.Done():
			g.running = false
		case ev, ok := <-events:
			if !ok {
				g.running = false
				continue
			}
			g.handleEvent(ctx, ev)
		case tick := <-g.clock.C():
			g.handleTick(ctx, tick)
		}
	}

	g.Close()
	return nil
}

// pumpEvents forwards terminal events so the main loop can select on them
// together with clock ticks.
func (g *Game) pumpEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Engine returns the engine of the current game.
func (g *Game) Engine() *engine.Engine {
	return g.engine
}

// Close stops the clock and restores the terminal.
func (g *Game) Close() {
	g.clock.Stop()
	if g.screen != nil {
		g.screen.Close()
	}
}

// restart discards the current engine and starts a new game of the given difficulty.
// On error the current game is kept.
func (g *Game) restart(ctx context.Context, id string) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.restart")
	defer span.End()

	cfg, err := g.registry.Resolve(id, g.cfg.Custom)
	if err != nil {
		span.RecordError(err)
		return err
	}
	cfg.TimeLimitSeconds = g.cfg.TimeLimit
	if g.cfg.Seed != 0 {
		cfg.Seed = g.cfg.Seed + g.games
	}

	e, err := engine.NewGame(ctx, cfg, engine.WithLogger(g.log))
	if err != nil {
		span.RecordError(err)
		return err
	}

	g.clock.Stop()
	g.engine = e
	g.difficulty = id
	g.cursor = NewCursor(cfg.Width, cfg.Height)
	g.games++
	g.generation = g.clock.Start(ctx)

	span.SetAttributes(telemetry.GameAttributes(e.ID().String(), cfg.Width, cfg.Height, cfg.MineCount)...)
	span.SetAttributes(
		attribute.String("game.difficulty", id),
		attribute.Int64("game.number", g.games),
	)
	g.log.WithFields(logrus.Fields{
		"game_id":    e.ID().String(),
		"difficulty": id,
		"time_limit": cfg.TimeLimitSeconds,
	}).Info("game started")

	return nil
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		g.handleMouse(ctx, x, y, ev.Buttons())
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, key tcell.Key, r rune) {
	if key == tcell.KeyRune {
		if def := g.registry.GetByKey(r); def != nil {
			if err := g.restart(ctx, def.ID); err != nil {
				g.log.WithError(err).WithField("difficulty", def.ID).Warn("cannot switch difficulty")
			}
			return
		}
	}
	g.perform(ctx, keyAction(key, r))
}

// handleMouse reveals on a primary click and flags on a secondary click.
// Only the press is acted on, not the release or drag events that follow.
func (g *Game) handleMouse(ctx context.Context, x, y int, buttons tcell.ButtonMask) {
	pressed := buttons &^ g.mouseDown
	g.mouseDown = buttons
	if pressed == 0 {
		return
	}

	cfg := g.engine.Config()
	index, ok := ui.CellAt(x, y, cfg.Width, cfg.Height)
	if !ok {
		return
	}
	g.cursor.Set(index)

	switch {
	case pressed&tcell.Button1 != 0:
		g.perform(ctx, ActionReveal)
	case pressed&tcell.Button2 != 0:
		g.perform(ctx, ActionFlag)
	}
}

// perform applies one action to the current game.
func (g *Game) perform(ctx context.Context, action Action) {
	switch action {
	case ActionUp:
		g.cursor.Move(0, -1)
	case ActionDown:
		g.cursor.Move(0, 1)
	case ActionLeft:
		g.cursor.Move(-1, 0)
	case ActionRight:
		g.cursor.Move(1, 0)
	case ActionReveal:
		g.settle(g.engine.Reveal(ctx, g.cursor.Index()))
	case ActionFlag:
		g.settle(g.engine.ToggleFlag(ctx, g.cursor.Index()))
	case ActionRestart:
		if err := g.restart(ctx, g.difficulty); err != nil {
			g.log.WithError(err).Warn("restart failed")
		}
	case ActionQuit:
		g.running = false
	}
}

// handleTick forwards a clock tick to the engine unless it belongs to a
// stopped or replaced game.
func (g *Game) handleTick(ctx context.Context, tick clock.Tick) {
	if g.clock.Stale(tick) {
		g.log.WithField("generation", tick.Generation).Debug("stale tick dropped")
		return
	}
	g.settle(g.engine.Tick(ctx))
}

// settle stops the clock once the game has ended.
func (g *Game) settle(res engine.Result) {
	if res.State.Status.Terminal() {
		g.clock.Stop()
	}
}

// view builds the renderer input for the current game.
func (g *Game) view() ui.View {
	cfg := g.engine.Config()
	name := g.difficulty
	if def := g.registry.GetByID(g.difficulty); def != nil {
		name = def.Name
	}
	return ui.View{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Cells:      g.engine.Displays(),
		Cursor:     g.cursor.Index(),
		State:      g.engine.State(),
		Cause:      g.engine.Cause(),
		Difficulty: name,
		TimeLimit:  cfg.TimeLimitSeconds,
	}
}

func (g *Game) render() {
	g.renderer.Render(g.view())
}
