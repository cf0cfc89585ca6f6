package entity

const BoardSize = 3

// Cell - state of a single board position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

func (that Cell) String() string {
	switch that {
	case CellX:
		return "X"
	case CellO:
		return "O"
	default:
		return ""
	}
}

// Turn - which side moves next.
type Turn uint8

const (
	TurnX Turn = iota
	TurnO
)

// Mark - returns the cell state placed by the side to move.
func (that Turn) Mark() Cell {
	if that == TurnX {
		return CellX
	}
	return CellO
}

func (that Turn) Toggle() Turn {
	if that == TurnX {
		return TurnO
	}
	return TurnX
}

func (that Turn) String() string {
	return that.Mark().String()
}

// Outcome - result of a single play.
type Outcome uint8

const (
	OutcomeContinue Outcome = iota
	OutcomeXWins
	OutcomeOWins
	OutcomeDraw
)

// WinnerOutcome - maps the mark that completed a line to its outcome.
func WinnerOutcome(mark Cell) Outcome {
	if mark == CellX {
		return OutcomeXWins
	}
	return OutcomeOWins
}

func (that Outcome) IsTerminal() bool {
	return that != OutcomeContinue
}

func (that Outcome) String() string {
	switch that {
	case OutcomeXWins:
		return "x_won"
	case OutcomeOWins:
		return "o_won"
	case OutcomeDraw:
		return "draw"
	default:
		return "continue"
	}
}

// Board - row-major snapshot of the grid.
type Board [BoardSize][BoardSize]Cell

// CountFilled - number of non-empty cells.
func (that Board) CountFilled() int {
	filled := 0
	for _, row := range that {
		for _, cell := range row {
			if cell != CellEmpty {
				filled++
			}
		}
	}

	return filled
}

func (that Board) Rows() [BoardSize]string {
	var rows [BoardSize]string
	for i, row := range that {
		line := make([]byte, 0, BoardSize)
		for _, cell := range row {
			if cell == CellEmpty {
				line = append(line, '.')
				continue
			}
			line = append(line, cell.String()[0])
		}
		rows[i] = string(line)
	}

	return rows
}
