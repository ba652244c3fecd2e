// Package render writes a game tree for display. Renderers only read the
// tree.
package render

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vytor/santree/internal/errors"
	"github.com/vytor/santree/internal/tree"
)

// Format selects an output renderer.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a config value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML:
		return f, nil
	default:
		return FormatText, fmt.Errorf("unknown output format %q", s)
	}
}

// Write renders game in the given format.
func Write(w io.Writer, game *tree.Game, format Format) error {
	switch format {
	case FormatYAML:
		return YAML(w, game)
	default:
		return Text(w, game.Root)
	}
}

// Text writes an indented outline of the tree. Children are marked "L:" or
// "R:" and invalid moves end with " !".
func Text(w io.Writer, root *tree.MoveNode) error {
	var sb strings.Builder
	writeText(&sb, root, "", "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeText(sb *strings.Builder, n *tree.MoveNode, indent, edge string) {
	if n == nil {
		return
	}
	sb.WriteString(indent)
	sb.WriteString(edge)
	sb.WriteString(n.Label)
	if !n.Valid {
		sb.WriteString(" !")
	}
	sb.WriteByte('\n')

	writeText(sb, n.Left, indent+"  ", "L: ")
	writeText(sb, n.Right, indent+"  ", "R: ")
}

type yamlNode struct {
	Label string    `yaml:"label"`
	Move  string    `yaml:"move,omitempty"`
	Side  string    `yaml:"side,omitempty"`
	Kind  string    `yaml:"kind,omitempty"`
	Turn  int       `yaml:"turn,omitempty"`
	Valid bool      `yaml:"valid"`
	Left  *yamlNode `yaml:"left,omitempty"`
	Right *yamlNode `yaml:"right,omitempty"`
}

type yamlInvalid struct {
	Turn  int    `yaml:"turn"`
	Side  string `yaml:"side"`
	Token string `yaml:"token"`
}

type yamlGame struct {
	Turns     int           `yaml:"turns"`
	Moves     int           `yaml:"moves"`
	Valid     bool          `yaml:"valid"`
	Truncated bool          `yaml:"truncated,omitempty"`
	Invalid   []yamlInvalid `yaml:"invalid,omitempty"`
	Tree      *yamlNode     `yaml:"tree"`
}

// YAML writes the game summary and tree as a YAML document.
func YAML(w io.Writer, game *tree.Game) error {
	doc := yamlGame{
		Turns:     game.Turns,
		Moves:     game.Moves(),
		Valid:     game.Valid,
		Truncated: game.Truncated,
		Tree:      toYAML(game.Root),
	}
	for _, merr := range game.Invalid {
		doc.Invalid = append(doc.Invalid, yamlInvalid{
			Turn:  merr.Turn,
			Side:  errors.SideName(merr.Side),
			Token: merr.Token,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func toYAML(n *tree.MoveNode) *yamlNode {
	if n == nil {
		return nil
	}
	out := &yamlNode{
		Label: n.Label,
		Turn:  n.Turn,
		Valid: n.Valid,
		Left:  toYAML(n.Left),
		Right: toYAML(n.Right),
	}
	if n.Move != nil {
		out.Move = n.Move.Notation
		out.Side = errors.SideName(n.Move.Side)
		out.Kind = n.Move.Kind().String()
	}
	return out
}
