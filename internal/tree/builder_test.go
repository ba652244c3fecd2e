package tree_test

import (
	"testing"

	"github.com/corentings/chess/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/santree/internal/errors"
	"github.com/vytor/santree/internal/logger"
	"github.com/vytor/santree/internal/pgn"
	"github.com/vytor/santree/internal/tree"
)

const longGame = "1. d4 d5 2. Bf4 Nf6 3. e3 e6 4. c3 c5 5. Nd2 Nc6 6. Bd3 Bd6 7. Bg3 O-O 8. Ngf3 Qe7 9. Ne5 Nd7 10. Nxc6 bxc6 11. Bxd6 Qxd6 12. Nf3 a5 13. O-O Ba6 14. Re1 Rfb8 15. Rb1 Bxd3 16. Qxd3 c4 17. Qc2 f5 18. Nd2 Rb5 19. b3 cxb3 20. axb3 Rab8 21. Qa2 Qc7 22. c4 Rb4 23. cxd5 cxd5 24. Rbc1 Qb6 25. h3 a4 26. bxa4 Rb2 27. Qa3 Rxd2 28. Qe7 Qd8 29. Qxe6+ Kh8 30. Qxf5 Nf6 31. g4 Ne4 32. Rf1 h6 33. Rc6 Qh4 34. Rc8+ Rxc8 35. Qxc8+ Kh7 36. Qf5"

func newBuilder(opts ...tree.Option) *tree.Builder {
	return tree.NewBuilder(append([]tree.Option{tree.WithLogger(logger.Nop())}, opts...)...)
}

func TestBuild_FourMoves(t *testing.T) {
	game, err := newBuilder().Build("1. e4 e5 2. Nf3 Nc6")
	require.NoError(t, err)
	require.NotNil(t, game)

	assert.True(t, game.Valid)
	assert.Equal(t, 2, game.Turns)
	assert.Equal(t, 4, game.Moves())
	assert.ElementsMatch(t, []string{"e4", "e5", "Nf3", "Nc6"}, tree.Notations(game.Root))
}

func TestBuild_BreadthFirstShape(t *testing.T) {
	game, err := newBuilder(tree.WithLinking(tree.BreadthFirst)).Build("1. e4 e5 2. Nf3 Nc6 3. Bb5 a6")
	require.NoError(t, err)

	root := game.Root
	assert.True(t, root.IsRoot())
	assert.Equal(t, tree.DefaultRootLabel, root.Label)

	// Turn 1 fills the root.
	require.NotNil(t, root.Left)
	require.NotNil(t, root.Right)
	assert.Equal(t, "1. e4", root.Left.Label)
	assert.Equal(t, "e5", root.Right.Label)

	// Turn 2 fills e4, turn 3 fills e5.
	assert.Equal(t, "2. Nf3", root.Left.Left.Label)
	assert.Equal(t, "Nc6", root.Left.Right.Label)
	assert.Equal(t, "3. Bb5", root.Right.Left.Label)
	assert.Equal(t, "a6", root.Right.Right.Label)
}

func TestBuild_ChainShape(t *testing.T) {
	game, err := newBuilder(tree.WithLinking(tree.Chain)).Build("1. e4 e5 2. Nf3 Nc6 3. Bb5")
	require.NoError(t, err)

	root := game.Root
	assert.Nil(t, root.Right)

	w1 := root.Left
	require.NotNil(t, w1)
	assert.Equal(t, "1. e4", w1.Label)
	assert.Equal(t, "e5", w1.Right.Label)

	w2 := w1.Left
	require.NotNil(t, w2)
	assert.Equal(t, "2. Nf3", w2.Label)
	assert.Equal(t, "Nc6", w2.Right.Label)

	w3 := w2.Left
	require.NotNil(t, w3)
	assert.Equal(t, "3. Bb5", w3.Label)
	assert.Nil(t, w3.Right)
	assert.Nil(t, w3.Left)
}

func TestBuild_DualSpineShape(t *testing.T) {
	game, err := newBuilder(tree.WithLinking(tree.DualSpine)).Build("1. e4 e5 2. Nf3 Nc6 3. Bb5")
	require.NoError(t, err)

	var whites, blacks []string
	for n := game.Root.Right; n != nil; n = n.Right {
		assert.Nil(t, n.Left)
		whites = append(whites, n.Move.Notation)
		assert.Equal(t, chess.White, n.Move.Side)
	}
	for n := game.Root.Left; n != nil; n = n.Left {
		assert.Nil(t, n.Right)
		blacks = append(blacks, n.Move.Notation)
		assert.Equal(t, chess.Black, n.Move.Side)
	}

	assert.Equal(t, []string{"e4", "Nf3", "Bb5"}, whites)
	assert.Equal(t, []string{"e5", "Nc6"}, blacks)
}

func TestBuild_FinalTurnWithoutBlack(t *testing.T) {
	for _, l := range []tree.Linking{tree.BreadthFirst, tree.Chain, tree.DualSpine} {
		t.Run(l.String(), func(t *testing.T) {
			game, err := newBuilder(tree.WithLinking(l)).Build("1. d4 d5 2. c4")
			require.NoError(t, err)

			assert.True(t, game.Valid)
			assert.Equal(t, 2, game.Turns)
			assert.Equal(t, 3, game.Moves())

			var turn2 []*tree.MoveNode
			tree.Walk(game.Root, func(n *tree.MoveNode, _ int) {
				if n.Turn == 2 {
					turn2 = append(turn2, n)
				}
			})
			require.Len(t, turn2, 1)
			assert.Equal(t, "c4", turn2[0].Move.Notation)
			assert.Equal(t, chess.White, turn2[0].Move.Side)
		})
	}
}

func TestBuild_FailFastInvalidMove(t *testing.T) {
	game, err := newBuilder().Build("1. e4 e9")
	assert.Nil(t, game, "no partial tree on failure")
	require.Error(t, err)

	var merr *errors.MoveError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, 1, merr.Turn)
	assert.Equal(t, chess.Black, merr.Side)
	assert.Equal(t, "e9", merr.Token)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidMove))
	assert.Contains(t, err.Error(), "black")
}

func TestBuild_FailFastInvalidWhite(t *testing.T) {
	game, err := newBuilder().Build("1. e4 e5 2. nf3 Nc6")
	assert.Nil(t, game)

	var merr *errors.MoveError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, 2, merr.Turn)
	assert.Equal(t, chess.White, merr.Side)
	assert.Equal(t, "nf3", merr.Token)
}

func TestBuild_BestEffortInvalidMove(t *testing.T) {
	game, err := newBuilder(tree.WithPolicy(tree.BestEffort)).Build("1. e4 e9 2. Nf3 O-O-O-O")
	require.NoError(t, err)
	require.NotNil(t, game)

	assert.False(t, game.Valid)
	assert.Equal(t, 2, game.Turns)
	assert.Equal(t, 4, game.Moves(), "invalid moves are still linked")
	require.Len(t, game.Invalid, 2)
	assert.Equal(t, "e9", game.Invalid[0].Token)
	assert.Equal(t, "O-O-O-O", game.Invalid[1].Token)

	var invalid []string
	tree.Walk(game.Root, func(n *tree.MoveNode, _ int) {
		if !n.Valid {
			invalid = append(invalid, n.Label)
		}
	})
	assert.ElementsMatch(t, []string{"e9", "O-O-O-O"}, invalid)
}

func TestBuild_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "no turns here"} {
		t.Run(text, func(t *testing.T) {
			game, err := newBuilder().Build(text)
			require.NoError(t, err)
			require.NotNil(t, game.Root)

			assert.Equal(t, 0, game.Turns)
			assert.Equal(t, 0, game.Moves())
			assert.Nil(t, game.Root.Left)
			assert.Nil(t, game.Root.Right)
		})
	}
}

func TestBuild_Idempotent(t *testing.T) {
	for _, l := range []tree.Linking{tree.BreadthFirst, tree.Chain, tree.DualSpine} {
		t.Run(l.String(), func(t *testing.T) {
			b := newBuilder(tree.WithLinking(l))

			first, err := b.Build(longGame)
			require.NoError(t, err)
			second, err := b.Build(longGame)
			require.NoError(t, err)

			assert.True(t, tree.Equal(first.Root, second.Root))
			assert.NotSame(t, first.Root, second.Root)
			assert.Equal(t, tree.Labels(first.Root), tree.Labels(second.Root))
		})
	}
}

func TestBuild_TurnCountMatchesHeaders(t *testing.T) {
	game, err := newBuilder().Build(longGame)
	require.NoError(t, err)

	assert.True(t, game.Valid)
	assert.Equal(t, pgn.CountHeaders(longGame), game.Turns)
	assert.Equal(t, 36, game.Turns)
	assert.Equal(t, 71, game.Moves())
	assert.False(t, game.Truncated)
}

func TestBuild_OverflowingTurnNumberKeepsMoves(t *testing.T) {
	text := "1. e4 e5 99999999999999999999. Nf3 Nc6 3. Bb5"

	game, err := newBuilder().Build(text)
	require.NoError(t, err)

	assert.True(t, game.Valid)
	assert.Equal(t, pgn.CountHeaders(text), game.Turns)
	assert.Equal(t, 5, game.Moves())
	assert.Contains(t, tree.Labels(game.Root), "99999999999999999999. Nf3")
	assert.ElementsMatch(t, []string{"e4", "e5", "Nf3", "Nc6", "Bb5"}, tree.Notations(game.Root))
}

func TestBuild_Labels(t *testing.T) {
	tests := []struct {
		name     string
		opts     []tree.Option
		expected []string
	}{
		{
			name:     "default",
			expected: []string{"Game", "1. e4", "e5"},
		},
		{
			name:     "without turn numbers",
			opts:     []tree.Option{tree.WithTurnNumbers(false)},
			expected: []string{"Game", "e4", "e5"},
		},
		{
			name:     "custom root",
			opts:     []tree.Option{tree.WithRootLabel("Partida")},
			expected: []string{"Partida", "1. e4", "e5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, err := newBuilder(tt.opts...).Build("1. e4 e5")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tree.Labels(game.Root))
		})
	}
}

func TestParseLinking(t *testing.T) {
	tests := []struct {
		in       string
		expected tree.Linking
		wantErr  bool
	}{
		{in: "bfs", expected: tree.BreadthFirst},
		{in: "breadth-first", expected: tree.BreadthFirst},
		{in: "CHAIN", expected: tree.Chain},
		{in: "spine", expected: tree.DualSpine},
		{in: "dual-spine", expected: tree.DualSpine},
		{in: "zigzag", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			l, err := tree.ParseLinking(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, l)
		})
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := tree.ParsePolicy("best-effort")
	require.NoError(t, err)
	assert.Equal(t, tree.BestEffort, p)

	p, err = tree.ParsePolicy("Fail-Fast")
	require.NoError(t, err)
	assert.Equal(t, tree.FailFast, p)

	_, err = tree.ParsePolicy("lenient")
	assert.Error(t, err)
}

func TestEqual(t *testing.T) {
	a := &tree.MoveNode{Label: "Game", Valid: true, Left: &tree.MoveNode{Label: "1. e4", Valid: true}}
	b := &tree.MoveNode{Label: "Game", Valid: true, Left: &tree.MoveNode{Label: "1. e4", Valid: true}}
	c := &tree.MoveNode{Label: "Game", Valid: true, Right: &tree.MoveNode{Label: "1. e4", Valid: true}}

	assert.True(t, tree.Equal(a, b))
	assert.False(t, tree.Equal(a, c), "same labels, different shape")
	assert.True(t, tree.Equal(nil, nil))
	assert.False(t, tree.Equal(a, nil))
}
