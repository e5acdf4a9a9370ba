// Package cli provides the command-line interface for tg-mosaic.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ironsheep/tg-mosaic/internal/config"
	"github.com/ironsheep/tg-mosaic/internal/logging"
)

// Version information - set by main package at startup
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// app carries state shared between the root command and its subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	debug   bool

	cfg    *config.Config
	logger zerolog.Logger
}

// NewRootCmd creates the root command and all subcommands.
func NewRootCmd() *cobra.Command {
	a := &app{
		v:      config.New(),
		logger: zerolog.Nop(),
	}

	rootCmd := &cobra.Command{
		Use:   "tg-mosaic",
		Short: "Cut an image into a row of 100x100 tiles",
		Long: `tg-mosaic scales an image to a height of 100 pixels and cuts it left to
right into 100x100 PNG tiles named tile_0.png, tile_1.png, ...
The last tile is padded with transparency when the image width is not a
multiple of 100.

Examples:
  # Cut banner.jpg into ./tiles
  tg-mosaic split banner.jpg

  # Cut into a specific directory (created if missing)
  tg-mosaic split banner.jpg out/banner

  # Show how many tiles an image produces without writing anything
  tg-mosaic plan banner.jpg

  # Serve the tiler to an MCP client over stdin/stdout
  tg-mosaic serve`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	rootCmd.SetVersionTemplate(versionText())

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.tg-mosaic.yaml)")
	flags.BoolVar(&a.debug, "debug", false, "enable debug logging")
	flags.String(config.KeyLogLevel, "info", "log level (debug|info|warn|error)")
	flags.String(config.KeyLogFormat, "console", "log format (console|json)")
	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup(config.KeyLogLevel))
	_ = a.v.BindPFlag(config.KeyLogFormat, flags.Lookup(config.KeyLogFormat))

	rootCmd.AddCommand(
		newSplitCmd(a),
		newPlanCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// init reads configuration and builds the logger. Logs go to stderr so
// stdout stays clean for results and the MCP protocol.
func (a *app) init(cmd *cobra.Command) error {
	used, err := config.ReadFile(a.v, a.cfgFile)
	if err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if a.debug {
		level = zerolog.DebugLevel
	}
	format, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(cmd.ErrOrStderr(), level, format)
	if used != "" {
		a.logger.Debug().Str("file", used).Msg("using config file")
	}
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func versionText() string {
	return fmt.Sprintf("tg-mosaic %s\n  Build time: %s\n  Git commit: %s\n", Version, BuildTime, GitCommit)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), versionText())
			return err
		},
	}
}
