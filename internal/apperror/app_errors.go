package apperror

import "errors"

var (
	ErrInvalidCell = errors.New("invalid cell index")
	ErrInvalidMove = errors.New("invalid move")
)
