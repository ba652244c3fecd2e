package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vytor/santree/internal/config"
	"github.com/vytor/santree/internal/errors"
	"github.com/vytor/santree/internal/logger"
	"github.com/vytor/santree/internal/render"
	"github.com/vytor/santree/internal/services"
	"github.com/vytor/santree/internal/tree"
)

const (
	exitOK = iota
	exitFailure
	exitNoGame
	exitInvalidMove
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := config.Load()

	log := logger.New(
		logger.WithOutput(stderr),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(false),
	)
	logger.SetDefault(log)
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		return exitFailure
	}
	log.Debug("tree_linking=%s", cfg.Linking())
	log.Debug("tree_policy=%s", cfg.Policy())
	log.Debug("output_format=%s", cfg.Format())
	log.Debug("max_input_bytes=%d", cfg.MaxInputBytes)

	text, err := readInput(args, stdin, cfg.MaxInputBytes)
	if err != nil {
		log.Error("failed to read game text: %v", err)
		return exitFailure
	}

	builder := tree.NewBuilder(append(cfg.BuilderOptions(), tree.WithLogger(log.WithPrefix("tree")))...)
	svc := services.NewParseService(builder)

	ctx := logger.NewContext(context.Background(), log)
	game, err := svc.Parse(ctx, text)
	if err != nil {
		fmt.Fprintln(stderr, userMessage(err))
		return exitCode(err)
	}

	if err := render.Write(stdout, game, cfg.Format()); err != nil {
		log.Error("failed to render game: %v", err)
		return exitFailure
	}
	if !game.Valid {
		for _, merr := range game.Invalid {
			fmt.Fprintln(stderr, userMessage(merr))
		}
		return exitInvalidMove
	}
	return exitOK
}

// readInput joins the arguments, or reads stdin when there are none. Either
// source is capped at limit bytes.
func readInput(args []string, stdin io.Reader, limit int) (string, error) {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(io.LimitReader(stdin, int64(limit)+1))
		if err != nil {
			return "", err
		}
		text = string(data)
	}
	if len(text) > limit {
		return "", fmt.Errorf("input exceeds %d bytes", limit)
	}
	return text, nil
}

func userMessage(err error) string {
	switch errors.Code(err) {
	case errors.ErrCodeEmptyInput:
		return "Input required: please enter a chess game in SAN notation."
	case errors.ErrCodeNoTurns:
		return "Parsing error: no valid turns found."
	case errors.ErrCodeInvalidMove:
		return fmt.Sprintf("Parsing error: %s", strings.TrimPrefix(err.Error(), errors.ErrCodeInvalidMove+": "))
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func exitCode(err error) int {
	switch errors.Code(err) {
	case errors.ErrCodeEmptyInput, errors.ErrCodeNoTurns:
		return exitNoGame
	case errors.ErrCodeInvalidMove:
		return exitInvalidMove
	default:
		return exitFailure
	}
}
