package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/xo/internal/apperror"
	"github.com/rocketscienceinc/xo/internal/entity"
)

const maxFilledCells = entity.BoardSize * entity.BoardSize

// Engine - owns a single board and enforces turn order, win and draw detection.
type Engine struct {
	board             entity.Board
	turn              entity.Turn
	filledCells       int
	waitingForRestart bool
}

func NewEngine() *Engine {
	return &Engine{}
}

// Play - marks the cell for the side to move and reports the outcome.
// Plays on an occupied cell or on a finished game are ignored and return OutcomeContinue.
// Coordinates outside the board panic.
func (that *Engine) Play(row, col int) entity.Outcome {
	if !inBoard(row) || !inBoard(col) {
		panic(fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, row, col))
	}

	if that.waitingForRestart || that.board[row][col] != entity.CellEmpty {
		return entity.OutcomeContinue
	}

	mark := that.turn.Mark()
	that.board[row][col] = mark
	that.filledCells++

	outcome := entity.OutcomeContinue
	switch {
	case that.hasWinner(row, col):
		outcome = entity.WinnerOutcome(mark)
		that.waitingForRestart = true
	case that.filledCells == maxFilledCells:
		outcome = entity.OutcomeDraw
		that.waitingForRestart = true
	}

	// flips on terminal plays too
	that.turn = that.turn.Toggle()

	return outcome
}

// Restart - clears the board and hands the first move back to X.
func (that *Engine) Restart() {
	that.board = entity.Board{}
	that.turn = entity.TurnX
	that.filledCells = 0
	that.waitingForRestart = false
}

func (that *Engine) Board() entity.Board {
	return that.board
}

func (that *Engine) Turn() entity.Turn {
	return that.turn
}

func (that *Engine) FilledCells() int {
	return that.filledCells
}

// IsLocked - reports whether the game ended and waits for Restart.
func (that *Engine) IsLocked() bool {
	return that.waitingForRestart
}

// hasWinner - checks the changed row and column, then both diagonals.
func (that *Engine) hasWinner(changedRow, changedCol int) bool {
	if that.hasRowWin(changedRow) {
		return true
	}

	if that.hasColumnWin(changedCol) {
		return true
	}

	return that.hasDiagonalWin()
}

func (that *Engine) hasRowWin(row int) bool {
	return isLine(that.board[row][0], that.board[row][1], that.board[row][2])
}

func (that *Engine) hasColumnWin(col int) bool {
	return isLine(that.board[0][col], that.board[1][col], that.board[2][col])
}

func (that *Engine) hasDiagonalWin() bool {
	if isLine(that.board[0][0], that.board[1][1], that.board[2][2]) {
		return true
	}

	return isLine(that.board[0][2], that.board[1][1], that.board[2][0])
}

func isLine(a, b, c entity.Cell) bool {
	return a != entity.CellEmpty && a == b && b == c
}

func inBoard(idx int) bool {
	return idx >= 0 && idx < entity.BoardSize
}
