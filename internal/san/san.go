// Package san checks chess move tokens against Standard Algebraic Notation
// syntax. Only the text is checked: there is no board, so a well-formed but
// illegal move is accepted.
package san

import (
	"regexp"

	"github.com/corentings/chess/v2"
)

const (
	file     = `[a-h]`
	rank     = `[1-8]`
	square   = file + rank
	piece    = `[KQRBN]`
	suffix   = `[+#]?`
	pawn     = `(?:` + square + `|` + file + `x` + square + `)(?:=[QRBN])?`
	officer  = piece + file + `?` + rank + `?x?` + square
	castling = `O-O(?:-O)?`
)

var (
	moveRe   = regexp.MustCompile(`^(?:` + pawn + `|` + officer + `|` + castling + `)` + suffix + `$`)
	pawnRe   = regexp.MustCompile(`^` + pawn + suffix + `$`)
	pieceRe  = regexp.MustCompile(`^` + officer + suffix + `$`)
	castleRe = regexp.MustCompile(`^` + castling + suffix + `$`)
)

// Kind is the syntactic class of a move token.
type Kind int

const (
	Invalid Kind = iota
	PawnMove
	PieceMove
	Castle
)

func (k Kind) String() string {
	switch k {
	case PawnMove:
		return "pawn"
	case PieceMove:
		return "piece"
	case Castle:
		return "castle"
	default:
		return "invalid"
	}
}

// Move is one side's move as written in the game text.
type Move struct {
	Notation string
	Side     chess.Color
}

// NewMove returns a Move for the given token and side.
func NewMove(notation string, side chess.Color) Move {
	return Move{Notation: notation, Side: side}
}

// IsValid reports whether the notation is well-formed SAN.
func (m Move) IsValid() bool {
	return Validate(m.Notation, m.Side)
}

// Kind classifies the notation.
func (m Move) Kind() Kind {
	return Classify(m.Notation)
}

// Validate reports whether token is well-formed SAN. The side is accepted for
// symmetry with callers but does not change the pattern.
func Validate(token string, _ chess.Color) bool {
	return moveRe.MatchString(token)
}

// Classify returns which SAN form token matches, or Invalid.
func Classify(token string) Kind {
	switch {
	case castleRe.MatchString(token):
		return Castle
	case pieceRe.MatchString(token):
		return PieceMove
	case pawnRe.MatchString(token):
		return PawnMove
	default:
		return Invalid
	}
}
