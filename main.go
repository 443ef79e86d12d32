package main

import (
	"fmt"
	"os"

	"canvas2d/config"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type runOptions struct {
	configPath string
	script     string
	width      int
	height     int
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	root := &cobra.Command{
		Use:          "canvas2d",
		Short:        "Fixed-resolution canvas scaled to fit a resizable window",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "config file")
	root.Flags().StringVarP(&opts.script, "script", "s", "", "Starlark scene script (overrides config)")
	root.Flags().IntVar(&opts.width, "width", 0, "canvas width in logical pixels (overrides config)")
	root.Flags().IntVar(&opts.height, "height", 0, "canvas height in logical pixels (overrides config)")

	root.AddCommand(newInitConfigCmd())
	return root
}

func newInitConfigCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Default().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func run(opts *runOptions) error {
	level := log.InfoLevel
	if opts.verbose {
		level = log.DebugLevel
	}
	logger := newLogger(os.Stderr, level)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	cfg.Merge(opts.width, opts.height, opts.script)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", opts.configPath, err)
	}
	logger.Info("config loaded", "path", opts.configPath, "canvas", fmt.Sprintf("%dx%d", cfg.Canvas.Width, cfg.Canvas.Height))

	g, err := NewGame(cfg, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	return ebiten.RunGame(g)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
