package tree

import (
	"fmt"
	"strings"

	"github.com/corentings/chess/v2"
	"github.com/vytor/santree/internal/errors"
	"github.com/vytor/santree/internal/logger"
	"github.com/vytor/santree/internal/pgn"
	"github.com/vytor/santree/internal/san"
)

// Policy decides what an invalid move does to the build.
type Policy int

const (
	// FailFast stops at the first invalid move and returns no tree.
	FailFast Policy = iota
	// BestEffort links every move and reports failures on the Game.
	BestEffort
)

func (p Policy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case BestEffort:
		return "best-effort"
	default:
		return "unknown"
	}
}

// ParsePolicy maps a config value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fail-fast", "failfast":
		return FailFast, nil
	case "best-effort", "besteffort":
		return BestEffort, nil
	default:
		return FailFast, fmt.Errorf("unknown policy %q", s)
	}
}

// DefaultRootLabel is the label of the synthetic start node.
const DefaultRootLabel = "Game"

// Builder turns game text into a Game. It keeps no state between calls and
// is safe to reuse.
type Builder struct {
	linking     Linking
	policy      Policy
	rootLabel   string
	turnNumbers bool
	log         *logger.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLinking sets the linking convention.
func WithLinking(l Linking) Option {
	return func(b *Builder) {
		b.linking = l
	}
}

// WithPolicy sets the invalid-move policy.
func WithPolicy(p Policy) Option {
	return func(b *Builder) {
		b.policy = p
	}
}

// WithRootLabel sets the label of the root node.
func WithRootLabel(label string) Option {
	return func(b *Builder) {
		b.rootLabel = label
	}
}

// WithTurnNumbers controls whether white labels carry the "<n>. " prefix.
func WithTurnNumbers(enabled bool) Option {
	return func(b *Builder) {
		b.turnNumbers = enabled
	}
}

// WithLogger sets the logger used for build diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(b *Builder) {
		b.log = l
	}
}

// NewBuilder returns a breadth-first, fail-fast Builder unless options say otherwise.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		linking:     BreadthFirst,
		policy:      FailFast,
		rootLabel:   DefaultRootLabel,
		turnNumbers: true,
		log:         logger.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Linking returns the configured linking convention.
func (b *Builder) Linking() Linking { return b.linking }

// Policy returns the configured invalid-move policy.
func (b *Builder) Policy() Policy { return b.policy }

// Build scans text turn by turn and links the moves into a new tree.
//
// Under FailFast the first invalid move yields a nil Game and a
// *errors.MoveError. Under BestEffort the error is nil and failures are
// listed on the Game. Text without any turn yields a root-only tree.
func (b *Builder) Build(text string) (*Game, error) {
	root := &MoveNode{Label: b.rootLabel, Valid: true}
	game := &Game{Root: root, Valid: true}
	linker := newLinker(b.linking, root)

	for _, turn := range pgn.ScanTurns(text) {
		white, err := b.node(game, turn, turn.White, chess.White)
		if err != nil {
			return nil, err
		}

		var black *MoveNode
		if turn.HasBlack() {
			black, err = b.node(game, turn, turn.Black, chess.Black)
			if err != nil {
				return nil, err
			}
		}

		if !linker.link(white, black) {
			b.log.Error("%v", errors.NewTreeExhaustedError(turn.Number))
			game.Truncated = true
			break
		}
		game.Turns++
	}

	b.log.WithFields(map[string]any{
		"turns":   game.Turns,
		"linking": b.linking.String(),
		"valid":   game.Valid,
	}).Debug("game tree built")
	return game, nil
}

func (b *Builder) node(game *Game, turn pgn.Turn, token string, side chess.Color) (*MoveNode, error) {
	move := san.NewMove(token, side)
	n := &MoveNode{
		Label: b.label(turn.Raw, token, side),
		Move:  &move,
		Turn:  turn.Number,
		Valid: move.IsValid(),
	}
	if n.Valid {
		return n, nil
	}

	merr := errors.NewMoveError(turn.Number, side, token)
	b.log.WithFields(map[string]any{
		"turn":  turn.Raw,
		"side":  errors.SideName(side),
		"token": token,
	}).Warn("invalid move")

	if b.policy == FailFast {
		return nil, merr
	}
	game.Valid = false
	game.Invalid = append(game.Invalid, merr)
	return n, nil
}

func (b *Builder) label(turn string, token string, side chess.Color) string {
	if side == chess.White && b.turnNumbers {
		return fmt.Sprintf("%s. %s", turn, token)
	}
	return token
}
