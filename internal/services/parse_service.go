package services

import (
	"context"
	"strings"

	"github.com/vytor/santree/internal/errors"
	"github.com/vytor/santree/internal/logger"
	"github.com/vytor/santree/internal/tree"
)

// GameBuilder turns game text into a move tree.
type GameBuilder interface {
	Build(text string) (*tree.Game, error)
}

// ParseService is the entry point for turning user-supplied game text into a tree
type ParseService interface {
	Parse(ctx context.Context, text string) (*tree.Game, error)
}

type parseService struct {
	builder GameBuilder
}

// NewParseService creates a new ParseService
func NewParseService(builder GameBuilder) ParseService {
	return &parseService{builder: builder}
}

// Parse rejects empty input, builds the tree and reports games with no turns.
func (s *parseService) Parse(ctx context.Context, text string) (*tree.Game, error) {
	log := logger.FromContext(ctx)

	text = strings.TrimSpace(text)
	if text == "" {
		log.Debug("rejecting empty input")
		return nil, errors.NewEmptyInputError()
	}

	log.Debug("parsing game text: bytes=%d", len(text))
	game, err := s.builder.Build(text)
	if err != nil {
		log.Warn("game rejected: %v", err)
		return nil, err
	}
	if game == nil || game.Turns == 0 {
		log.Warn("no turns found in game text")
		return nil, errors.NewNoTurnsError()
	}

	if !game.Valid {
		log.Warn("game has %d invalid move(s)", len(game.Invalid))
	}
	if game.Truncated {
		log.Warn("game truncated after %d turn(s)", game.Turns)
	}
	log.Info("parsed game: turns=%d moves=%d", game.Turns, game.Moves())
	return game, nil
}
