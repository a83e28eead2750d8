package main

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"os/signal"

	"sparkcalc/app"
	"sparkcalc/hal"
	"sparkcalc/internal/buildinfo"
	"sparkcalc/internal/config"
	"sparkcalc/internal/errors"
	"sparkcalc/internal/logger"
	"sparkcalc/sparkos/tasks/calculator"
	"sparkcalc/sparkos/tasks/script"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var opts struct {
	config   string
	headless bool
	hz       int
	ticks    uint64
	press    string
	logLevel string
	logJSON  bool
}

var rootCmd = &cobra.Command{
	Use:   "sparkcalc",
	Short: "Simple four-function calculator",
	Long: `sparkcalc opens a 300x400 calculator window with a display field and a
5x4 button grid: digits, ".", + - * / %, "=", x^2, 1/x and Clear.

With --headless no window is opened; --press replays a comma-separated
list of button labels and the final display is printed to stdout.

Examples:
  sparkcalc
  sparkcalc --config calc.toml
  sparkcalc --headless --press 3,+,4,=`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&opts.config, "config", "", "TOML config file")
	f.BoolVar(&opts.headless, "headless", false, "Run without a window.")
	f.IntVar(&opts.hz, "hz", 60, "Tick rate in headless mode.")
	f.Uint64Var(&opts.ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until done or interrupted).")
	f.StringVar(&opts.press, "press", "", "Comma-separated button labels to replay, e.g. 3,+,4,=")
	f.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	f.BoolVar(&opts.logJSON, "log-json", false, "Log as JSON (overrides config)")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if hints := errors.FlattenHints(err); hints != "" {
			fmt.Fprintln(os.Stderr, "hint:", hints)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if cmd.Flags().Changed("log-json") {
		cfg.Log.JSON = opts.logJSON
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(logger.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting",
		zap.String("version", buildinfo.Short()),
		zap.Bool("headless", opts.headless),
		zap.String("config", opts.config),
	)

	theme := themeFrom(cfg.Theme)
	appCfg := app.Config{Theme: &theme}

	if !opts.headless {
		if opts.press != "" {
			appCfg.Script = script.Parse(opts.press)
		}
		appCfg.HoldOnPanic = true
		var sys *app.System
		if err := hal.RunWindow(hal.WindowOptions{
			Title:  cfg.Window.Title,
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			Scale:  cfg.Window.Scale,
			TPS:    cfg.Window.TPS,
			Logger: log,
		}, app.NewStep(appCfg, &sys)); err != nil {
			return err
		}
		if sys != nil {
			return sys.Err()
		}
		return nil
	}

	appCfg.LogDisplay = true
	if opts.press != "" {
		appCfg.Script = script.Parse(opts.press)
		appCfg.ExitWhenDone = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var sys *app.System
	err = hal.RunHeadless(ctx, app.NewStep(appCfg, &sys), hal.HeadlessConfig{
		Enabled: true,
		Hz:      opts.hz,
		Ticks:   opts.ticks,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Logger:  log,
	})
	if err != nil && !errors.Is(err, app.ErrDone) && !errors.Is(err, context.Canceled) {
		return err
	}
	if sys != nil {
		fmt.Fprintln(cmd.OutOrStdout(), sys.Display())
	}
	return nil
}

func themeFrom(t config.Theme) calculator.Theme {
	rgba := func(c config.RGB) color.RGBA { return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff} }
	return calculator.Theme{
		Background:  rgba(t.Background),
		DisplayBG:   rgba(t.DisplayBG),
		DisplayFG:   rgba(t.DisplayFG),
		ButtonBG:    rgba(t.ButtonBG),
		ButtonFG:    rgba(t.ButtonFG),
		ButtonArmed: rgba(t.ButtonArmed),
		OperatorBG:  rgba(t.OperatorBG),
	}
}
