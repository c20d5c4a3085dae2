package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/kerbaras/gita/pkg/app"
	"github.com/kerbaras/gita/pkg/config"
	"github.com/kerbaras/gita/pkg/integrations"
	"github.com/kerbaras/gita/pkg/services"
	"github.com/kerbaras/gita/pkg/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cli carries the flags and the services built for one invocation.
type cli struct {
	home      string
	debug     bool
	ephemeral bool

	cfg        *config.Config
	logger     *zap.Logger
	controller *services.Controller
	// sharer overrides the clipboard, used by tests.
	sharer integrations.Sharer

	root *cobra.Command
}

func newCLI() *cli {
	c := &cli{}

	c.root = &cobra.Command{
		Use:          "gita",
		Short:        "Daily wisdom from the Bhagavad Gita",
		Long:         "Read the verse of the day, explore verses by topic, ask a question and keep your favorites, in a TUI or from the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Launch TUI by default
			a := app.NewApp(c.controller, c.shareTarget(), c.exportDir())
			return a.Run()
		},
	}

	flags := c.root.PersistentFlags()
	flags.StringVar(&c.home, "home", "", "data directory (default $GITA_HOME or ~/.gita)")
	flags.BoolVar(&c.debug, "debug", false, "log at debug level")
	flags.BoolVar(&c.ephemeral, "ephemeral", false, "keep favorites and settings in memory only")

	c.root.AddCommand(
		c.newTodayCmd(),
		c.newRandomCmd(),
		c.newShowCmd(),
		c.newTagsCmd(),
		c.newTagCmd(),
		c.newSearchCmd(),
		c.newAskCmd(),
		c.newFavCmd(),
		c.newSettingsCmd(),
		c.newExportCmd(),
		c.newShareCmd(),
		c.newConfigCmd(),
		c.newResetCmd(),
	)
	return c
}

func (c *cli) setup() error {
	cfg, err := config.Load(c.home)
	if err != nil {
		return err
	}
	if c.ephemeral {
		cfg.Ephemeral = true
	}
	c.cfg = cfg

	logger, err := utils.NewLogger(cfg.LogPath, cfg.LogLevel, c.debug)
	if err != nil {
		return err
	}
	c.logger = logger

	controller, err := services.NewController(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	c.controller = controller
	return nil
}

func (c *cli) close() {
	if c.controller != nil {
		if err := c.controller.Close(); err != nil {
			c.logger.Warn("Failed to close store", zap.Error(err))
		}
		c.controller = nil
	}
	if c.logger != nil {
		_ = c.logger.Sync()
	}
}

func (c *cli) shareTarget() integrations.Sharer {
	if c.sharer != nil {
		return c.sharer
	}
	return integrations.NewClipboardSharer()
}

// exportDir is where the TUI writes EPUB exports.
func (c *cli) exportDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return c.cfg.Home
}

func (c *cli) execute(ctx context.Context, args []string) error {
	defer c.close()
	if args != nil {
		c.root.SetArgs(args)
	}
	return c.root.ExecuteContext(ctx)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newCLI().execute(ctx, nil); err != nil {
		stop()
		os.Exit(1)
	}
}
