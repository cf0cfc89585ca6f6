package usecase

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/xo/internal/apperror"
	"github.com/rocketscienceinc/xo/internal/entity"
)

type gameEngine interface {
	Play(row, col int) entity.Outcome
	Restart()

	Board() entity.Board
	Turn() entity.Turn
	FilledCells() int
	IsLocked() bool
}

// State - what a UI needs to render the game.
type State struct {
	Board       entity.Board
	Turn        entity.Turn
	FilledCells int
	Locked      bool
}

type GameUseCase struct {
	logger *slog.Logger
	engine gameEngine

	sessionID string
}

func NewGameUseCase(logger *slog.Logger, engine gameEngine) *GameUseCase {
	sessionID := uuid.NewString()

	return &GameUseCase{
		logger:    logger.With("component", "game", "session", sessionID),
		engine:    engine,
		sessionID: sessionID,
	}
}

func (that *GameUseCase) SessionID() string {
	return that.sessionID
}

// MakeTurn - applies a move to the engine. Coordinates outside the board are rejected
// before they reach the engine.
func (that *GameUseCase) MakeTurn(move entity.Move) (entity.Outcome, error) {
	if move.Restart {
		that.Restart()
		return entity.OutcomeContinue, nil
	}

	if !move.InRange() {
		return entity.OutcomeContinue, fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	log := that.logger.With("method", "MakeTurn", "move", move.String())

	mover := that.engine.Turn()
	filledBefore := that.engine.FilledCells()

	outcome := that.engine.Play(move.Row, move.Col)

	if that.engine.FilledCells() == filledBefore {
		log.Debug("move ignored", "locked", that.engine.IsLocked())
		return outcome, nil
	}

	if outcome.IsTerminal() {
		log.Info("game finished", "outcome", outcome.String(), "filled_cells", that.engine.FilledCells())
		return outcome, nil
	}

	log.Debug("move played", "mark", mover.String(), "next", that.engine.Turn().String())

	return outcome, nil
}

func (that *GameUseCase) Restart() {
	that.engine.Restart()
	that.logger.Info("game restarted")
}

func (that *GameUseCase) State() State {
	return State{
		Board:       that.engine.Board(),
		Turn:        that.engine.Turn(),
		FilledCells: that.engine.FilledCells(),
		Locked:      that.engine.IsLocked(),
	}
}
