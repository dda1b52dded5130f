package engine

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/minesweeper/internal/telemetry"
)

// Reveal opens the cell at index.
//
// Revealed or flagged cells, out-of-range indices and finished games are
// ignored. A mine loses the game. A safe cell with no adjacent mines opens
// its neighbours, cascading through the connected zero region and stopping
// at its numbered border and at flags.
func (e *Engine) Reveal(ctx context.Context, index int) Result {
	c := e.board.Cell(index)
	if c == nil || e.Over() || c.IsRevealed || c.IsFlagged {
		e.log.WithField("index", index).Debug("reveal ignored")
		return e.result(nil)
	}

	tracer := telemetry.Tracer("engine")
	ctx, span := tracer.Start(ctx, "engine.reveal")
	defer span.End()

	var updates []Update
	if c.IsMine {
		updates = e.lose(ctx, CauseMine)
	} else {
		updates = e.flood(ctx, index)
	}

	span.SetAttributes(
		attribute.String("game.id", e.id.String()),
		attribute.Int("cell.index", index),
		attribute.Int("cells.updated", len(updates)),
		attribute.String("game.status", e.state.Status.String()),
	)

	return e.result(updates)
}

// flood reveals start and, through zero-hint cells, its connected region.
// An explicit FIFO queue keeps stack depth constant on large boards; the
// visited set guarantees each cell is queued at most once.
func (e *Engine) flood(ctx context.Context, start int) []Update {
	var updates []Update

	visited := mapset.New[int]()
	visited.Put(start)
	queue := []int{start}

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]

		c := &e.board.Cells[i]
		if c.IsRevealed || c.IsFlagged || c.IsMine {
			continue
		}

		c.IsRevealed = true
		e.state.RevealedSafe++
		updates = append(updates, Update{Index: i, Display: displayOf(*c)})

		if e.state.RevealedSafe == e.board.SafeCells() {
			return append(updates, e.win(ctx)...)
		}

		if c.AdjacentMines > 0 {
			continue
		}
		for _, n := range e.board.Neighbors(i) {
			if visited.Has(n) {
				continue
			}
			nc := e.board.Cells[n]
			if nc.IsRevealed || nc.IsFlagged {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}

	return updates
}

// lose ends the game and reveals every mine for display.
func (e *Engine) lose(ctx context.Context, cause LossCause) []Update {
	e.state.Status = Lost
	e.cause = cause

	updates := make([]Update, 0, e.board.MineCount)
	for _, i := range e.board.MineIndices() {
		e.board.Cells[i].IsRevealed = true
		updates = append(updates, Update{Index: i, Display: Mine})
	}

	e.gameOver(ctx)
	return updates
}

// win ends the game and flags every unflagged mine. Flags the player put on
// safe cells are left as they are.
func (e *Engine) win(ctx context.Context) []Update {
	e.state.Status = Won

	var updates []Update
	for _, i := range e.board.MineIndices() {
		c := &e.board.Cells[i]
		if c.IsFlagged {
			continue
		}
		c.IsFlagged = true
		e.state.Flagged++
		updates = append(updates, Update{Index: i, Display: Flag})
	}
	e.state.FlagsRemaining = 0

	e.gameOver(ctx)
	return updates
}

// gameOver records the terminal transition.
func (e *Engine) gameOver(ctx context.Context) {
	tracer := telemetry.Tracer("engine")
	_, span := tracer.Start(ctx, "engine.game_over")
	span.SetAttributes(e.attributes()...)
	span.SetAttributes(
		attribute.String("game.status", e.state.Status.String()),
		attribute.String("game.loss_cause", e.cause.String()),
		attribute.Int("game.elapsed_seconds", e.state.ElapsedSeconds),
		attribute.Int("game.revealed_safe", e.state.RevealedSafe),
	)
	span.End()

	e.log.WithFields(logrus.Fields{
		"status":   e.state.Status.String(),
		"cause":    e.cause.String(),
		"elapsed":  e.state.ElapsedSeconds,
		"revealed": e.state.RevealedSafe,
		"flagged":  e.state.Flagged,
	}).Info("game over")
}
