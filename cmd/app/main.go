package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/drafts/internal"
	"github.com/starford/drafts/internal/apperr"
	pkgconfig "github.com/starford/drafts/pkg/config"
)

const (
	programName = "draft"
	usageLine   = "Usage: %s <note name>\n"
)

func run(ctx context.Context, cmd *cli.Command, extra []internal.Option) error {
	if cmd.Args().Len() != 1 {
		fmt.Fprintf(cmd.ErrWriter, usageLine, programName)
		return apperr.ErrUsage
	}

	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	load := pkgconfig.LoadOptional[internal.Config]
	if cmd.IsSet("config") {
		load = pkgconfig.Load[internal.Config]
	}
	if err := load(configPath, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithStdout(cmd.Writer),
		internal.WithStderr(cmd.ErrWriter),
	}
	opts = append(opts, extra...)

	if err := internal.Run(ctx, cmd.Args().First(), opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func newCommand(stdout, stderr io.Writer, extra ...internal.Option) *cli.Command {
	return &cli.Command{
		Name:            programName,
		Usage:           "Create a dated draft folder with an empty README.md",
		ArgsUsage:       "<note name>",
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, extra)
		},
		OnUsageError: func(_ context.Context, cmd *cli.Command, err error, _ bool) error {
			fmt.Fprintf(cmd.ErrWriter, usageLine, programName)
			return fmt.Errorf("%w: %v", apperr.ErrUsage, err)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("DRAFT_CONFIG_FILE"),
			},
		},
	}
}

// splitArgs moves every argument that is not one of our own flags behind a
// "--" terminator, so note names such as "-draft" reach the action verbatim.
// A trailing "-c"/"--config" without a value is a note name too.
func splitArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	out := []string{args[0]}
	var positional []string
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		a := rest[i]
		switch {
		case a == "--":
			positional = append(positional, rest[i+1:]...)
			i = len(rest)
		case a == "-c" || a == "-config" || a == "--config":
			if i+1 == len(rest) {
				positional = append(positional, a)
				continue
			}
			out = append(out, a, rest[i+1])
			i++
		case strings.HasPrefix(a, "-c=") || strings.HasPrefix(a, "-config=") || strings.HasPrefix(a, "--config="):
			out = append(out, a)
		case a == "-h" || a == "-help" || a == "--help":
			out = append(out, a)
		default:
			positional = append(positional, a)
		}
	}
	if len(positional) > 0 {
		out = append(out, "--")
		out = append(out, positional...)
	}
	return out
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer, extra ...internal.Option) error {
	return newCommand(stdout, stderr, extra...).Run(ctx, splitArgs(args))
}

// realMain runs the CLI and returns the process exit status.
func realMain(args []string, stdout, stderr io.Writer, extra ...internal.Option) int {
	if err := execute(context.Background(), args, stdout, stderr, extra...); err != nil {
		if !errors.Is(err, apperr.ErrUsage) {
			logger := slog.New(slog.NewJSONHandler(stderr, nil))
			logger.Error("application error", slog.String("error", err.Error()))
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(realMain(os.Args, os.Stdout, os.Stderr))
}
