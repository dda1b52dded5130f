// Package engine implements the minesweeper game state machine.
//
// An Engine owns one board for the lifetime of one game. It has no internal
// concurrency: callers deliver reveal, flag and tick operations one at a time.
// Once a game is Won or Lost every mutating operation is a no-op.
package engine

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/minesweeper/internal/board"
	"github.com/samdwyer/minesweeper/internal/logging"
	"github.com/samdwyer/minesweeper/internal/telemetry"
)

// Engine holds the entire state of one game.
type Engine struct {
	id    uuid.UUID
	cfg   Config
	board *board.Board
	state State
	cause LossCause
	log   logrus.FieldLogger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for game lifecycle entries.
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// NewGame validates cfg and starts a game on a freshly generated board.
// An invalid config returns a *ConfigError and no engine.
func NewGame(ctx context.Context, cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("engine")
	ctx, span := tracer.Start(ctx, "engine.new_game")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	b := board.New(cfg.Width, cfg.Height, rand.New(rand.NewSource(seed)))
	b.Generate(ctx, cfg.MineCount)

	e := newEngine(cfg, b, opts)
	span.SetAttributes(e.attributes()...)
	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("game.time_limit", cfg.TimeLimitSeconds),
	)
	e.log.WithField("seed", seed).Info("new game")

	return e, nil
}

// NewFromBoard starts a game on a prepared board, e.g. a replayed layout.
// The board's dimensions and mine count define the config.
func NewFromBoard(b *board.Board, timeLimitSeconds int, opts ...Option) (*Engine, error) {
	cfg := Config{
		Width:            b.Width,
		Height:           b.Height,
		MineCount:        b.MineCount,
		TimeLimitSeconds: timeLimitSeconds,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := newEngine(cfg, b, opts)
	e.log.Info("new game from prepared board")
	return e, nil
}

func newEngine(cfg Config, b *board.Board, opts []Option) *Engine {
	e := &Engine{
		id:    uuid.New(),
		cfg:   cfg,
		board: b,
		state: State{
			Status:         InProgress,
			FlagsRemaining: cfg.MineCount,
		},
		log: logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.WithFields(logrus.Fields{
		"game_id": e.id.String(),
		"width":   cfg.Width,
		"height":  cfg.Height,
		"mines":   cfg.MineCount,
	})
	return e
}

// ID returns the unique identifier of this game.
func (e *Engine) ID() uuid.UUID {
	return e.id
}

// Config returns the config the game was started with.
func (e *Engine) Config() Config {
	return e.cfg
}

// State returns the current counters and status.
func (e *Engine) State() State {
	return e.state
}

// Cause returns why the game was lost, or CauseNone.
func (e *Engine) Cause() LossCause {
	return e.cause
}

// Over returns true once the game reached a terminal status.
func (e *Engine) Over() bool {
	return e.state.Status.Terminal()
}

// Board returns a read-only copy of the board.
func (e *Engine) Board() *board.Board {
	return e.board.Snapshot()
}

// Display returns the display value of one cell. Out-of-range indices show Blank.
func (e *Engine) Display(index int) Display {
	c := e.board.Cell(index)
	if c == nil {
		return Blank
	}
	return displayOf(*c)
}

// Displays returns the display value of every cell, indexed like the board.
func (e *Engine) Displays() []Display {
	out := make([]Display, len(e.board.Cells))
	for i, c := range e.board.Cells {
		out[i] = displayOf(c)
	}
	return out
}

// ToggleFlag flips the flag on an unrevealed cell.
// Flags are not limited by the mine count, so FlagsRemaining may go negative.
func (e *Engine) ToggleFlag(ctx context.Context, index int) Result {
	c := e.board.Cell(index)
	if c == nil || e.Over() || c.IsRevealed {
		e.log.WithField("index", index).Debug("flag ignored")
		return e.result(nil)
	}

	tracer := telemetry.Tracer("engine")
	_, span := tracer.Start(ctx, "engine.toggle_flag")
	defer span.End()

	c.IsFlagged = !c.IsFlagged
	if c.IsFlagged {
		e.state.Flagged++
	} else {
		e.state.Flagged--
	}
	e.state.FlagsRemaining = e.cfg.MineCount - e.state.Flagged

	span.SetAttributes(
		attribute.String("game.id", e.id.String()),
		attribute.Int("cell.index", index),
		attribute.Bool("cell.flagged", c.IsFlagged),
	)

	return e.result([]Update{{Index: index, Display: displayOf(*c)}})
}

// Tick advances the game clock by one second. It is driven by an external
// timer and does nothing once the game is over. Reaching a positive time
// limit loses the game.
func (e *Engine) Tick(ctx context.Context) Result {
	if e.Over() {
		return e.result(nil)
	}

	e.state.ElapsedSeconds++
	limit := e.cfg.TimeLimitSeconds
	if limit > 0 && e.state.ElapsedSeconds >= limit {
		return e.result(e.lose(ctx, CauseTimeout))
	}
	return e.result(nil)
}

// result wraps updates with the current state.
func (e *Engine) result(updates []Update) Result {
	return Result{Updates: updates, State: e.state}
}

// attributes returns span attributes describing this game.
func (e *Engine) attributes() []attribute.KeyValue {
	return telemetry.GameAttributes(e.id.String(), e.cfg.Width, e.cfg.Height, e.cfg.MineCount)
}
