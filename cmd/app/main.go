package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/agentsync/internal"
	"github.com/starford/agentsync/internal/commands"
	"github.com/starford/agentsync/internal/mcpserver"
	"github.com/starford/agentsync/internal/storage"
	"github.com/starford/agentsync/internal/syncer"
	"github.com/starford/agentsync/internal/tool"
	"github.com/starford/agentsync/internal/watch"
	pkgconfig "github.com/starford/agentsync/pkg/config"
)

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openProject locates the project root and returns the loaded configuration
// together with a storage provider rooted there.
func openProject() (*internal.Config, storage.Provider, error) {
	root, err := commands.FindProjectRoot()
	if err != nil {
		return nil, nil, err
	}

	cfg := &internal.Config{}
	if err := pkgconfig.Load(filepath.Join(root, internal.ConfigFile), cfg); err != nil {
		return nil, nil, err
	}

	store, err := storage.NewFS(root)
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

func runInit(ctx context.Context, cmd *cli.Command) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	logger := newLogger(cmd.Bool("verbose"))
	return commands.Init(cwd, cmd.String("import"), logger, os.Stdout)
}

func runAdd(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().First()
	if name == "" {
		return fmt.Errorf("usage: agentsync add <rule-name>")
	}
	_, store, err := openProject()
	if err != nil {
		return err
	}
	return commands.Add(store, name, os.Stdout)
}

func runSync(ctx context.Context, cmd *cli.Command) error {
	cfg, store, err := openProject()
	if err != nil {
		return err
	}
	logger := newLogger(cmd.Bool("verbose"))
	opts := syncer.Options{DryRun: cmd.Bool("dry-run")}

	if from := cmd.String("from"); from != "" {
		t, err := tool.Parse(from)
		if err != nil {
			return err
		}
		result, err := commands.Import(store, cfg, t, opts, logger)
		if err != nil {
			return err
		}
		commands.WriteSummary(os.Stdout, result, opts.DryRun)
		if result.HasErrors() {
			return fmt.Errorf("%d rule(s) failed", len(result.Errors))
		}
		return nil
	}

	result, err := commands.Export(store, cfg, opts, logger)
	if err != nil {
		return err
	}
	commands.WriteSummary(os.Stdout, result, opts.DryRun)
	if result.HasErrors() {
		return fmt.Errorf("%d rule(s) failed", len(result.Errors))
	}

	if cmd.Bool("watch") {
		if opts.DryRun {
			return fmt.Errorf("--watch cannot be combined with --dry-run")
		}
		rulesDir := filepath.Join(store.Root(), filepath.FromSlash(tool.CanonicalDir))
		return watch.Run(ctx, rulesDir, logger, func() error {
			result, err := commands.Export(store, cfg, opts, logger)
			if err != nil {
				return err
			}
			commands.WriteSummary(os.Stdout, result, false)
			return nil
		})
	}
	return nil
}

func runMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, store, err := openProject()
	if err != nil {
		return err
	}
	logger := newLogger(cmd.Bool("verbose"))
	srv := mcpserver.New(store, cfg, logger)
	logger.Info("starting MCP server on stdio")
	return srv.ServeStdio()
}

func main() {
	cmd := &cli.Command{
		Name:  "agentsync",
		Usage: "Keep AI agent rules in sync across Cursor, Copilot, and Windsurf",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
				Sources: cli.EnvVars("AGENTSYNC_VERBOSE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Initialize the project: create .agentsync/rules/ and agentsync.yaml",
				Action: runInit,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "import",
						Usage: "Import existing rules from a tool (cursor, copilot, windsurf)",
					},
				},
			},
			{
				Name:      "add",
				Usage:     "Create a new canonical rule from the template",
				ArgsUsage: "<rule-name>",
				Action:    runAdd,
			},
			{
				Name:   "sync",
				Usage:  "Export canonical rules to tools, or import with --from",
				Action: runSync,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "from",
						Usage: "Import from a tool instead of exporting (cursor, copilot, windsurf)",
					},
					&cli.BoolFlag{
						Name:  "dry-run",
						Usage: "Show what would change without writing files",
					},
					&cli.BoolFlag{
						Name:  "watch",
						Usage: "Keep running and re-export when canonical rules change",
					},
				},
			},
			{
				Name:   "mcp",
				Usage:  "Run the MCP server on stdio",
				Action: runMCP,
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
