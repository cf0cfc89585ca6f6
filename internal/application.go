package application

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/xo/internal/config"
	"github.com/rocketscienceinc/xo/internal/entity"
	"github.com/rocketscienceinc/xo/internal/tictactoe"
	"github.com/rocketscienceinc/xo/internal/usecase"
)

// RunApp - runs the application: replays the configured moves against a fresh game.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	moves, err := parseMoves(conf.Moves)
	if err != nil {
		return fmt.Errorf("could not parse moves: %w", err)
	}

	gameUseCase := usecase.NewGameUseCase(logger, tictactoe.NewEngine())
	log.Info("Starting game session", "session", gameUseCase.SessionID(), "moves", len(moves))

	outcome := entity.OutcomeContinue
	for _, move := range moves {
		if outcome, err = gameUseCase.MakeTurn(move); err != nil {
			return fmt.Errorf("could not make turn %s: %w", move, err)
		}
	}

	state := gameUseCase.State()
	log.Info("Game session finished",
		"outcome", outcome.String(),
		"board", state.Board.Rows(),
		"turn", state.Turn.String(),
		"locked", state.Locked,
	)

	return nil
}

func parseMoves(raw []string) ([]entity.Move, error) {
	moves := make([]entity.Move, 0, len(raw))
	for _, item := range raw {
		move, err := entity.ParseMove(item)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}
