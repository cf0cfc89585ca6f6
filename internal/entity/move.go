package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/xo/internal/apperror"
)

const restartToken = "restart"

// Move - a single input for a game session: either a cell to mark or a restart request.
type Move struct {
	Row     int
	Col     int
	Restart bool
}

func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Move) String() string {
	if that.Restart {
		return restartToken
	}
	return fmt.Sprintf("%d,%d", that.Row, that.Col)
}

// ParseMove - parses "row,col" or "restart".
func ParseMove(raw string) (Move, error) {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, restartToken) {
		return Move{Restart: true}, nil
	}

	rowStr, colStr, ok := strings.Cut(raw, ",")
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", apperror.ErrInvalidMove, raw)
	}

	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return Move{}, fmt.Errorf("%w: row %q: %w", apperror.ErrInvalidMove, rowStr, err)
	}

	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return Move{}, fmt.Errorf("%w: col %q: %w", apperror.ErrInvalidMove, colStr, err)
	}

	return Move{Row: row, Col: col}, nil
}
