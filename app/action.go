package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomod/daemon"
	"github.com/ayoisaiah/pomod/internal/config"
	"github.com/ayoisaiah/pomod/internal/control"
	"github.com/ayoisaiah/pomod/internal/hook"
	"github.com/ayoisaiah/pomod/internal/logging"
	"github.com/ayoisaiah/pomod/internal/notify"
	"github.com/ayoisaiah/pomod/internal/pathutil"
	"github.com/ayoisaiah/pomod/internal/pidfile"
	"github.com/ayoisaiah/pomod/internal/static"
	"github.com/ayoisaiah/pomod/timer"
)

const (
	envNoColor      = "NO_COLOR"
	envPomodNoColor = "POMOD_NO_COLOR"
)

// loadConfig resolves the configuration from the file named by --config
// (or the default location), the environment, and the command-line flags.
func loadConfig(ctx *cli.Context, paths *pathutil.Paths) (*config.Config, error) {
	configPath := ctx.String("config")
	if configPath == "" {
		configPath = paths.ConfigFilePath()
	}

	return config.New(
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
}

// newNotifier builds the notifier for transitions according to cfg.
func newNotifier(
	cfg *config.Config,
	paths *pathutil.Paths,
	logger *slog.Logger,
) (timer.Notifier, error) {
	if !cfg.Notifications.Enabled {
		return notify.Discard, nil
	}

	icon := cfg.Notifications.Icon
	if icon == "" {
		icon = paths.IconFilePath()
	}

	opts := []notify.DesktopOption{
		notify.WithIcon(icon),
		notify.WithLogger(logger),
	}

	if cfg.Notifications.Sound != "" {
		sound, err := notify.LoadSound(cfg.Notifications.Sound)
		if err != nil {
			return nil, err
		}

		opts = append(opts, notify.WithSound(sound))
	}

	return notify.NewDesktop(opts...), nil
}

// listen registers the signal inbox and then publishes the pid at pidPath.
// Control commands can only find a daemon that is already listening.
func listen(pidPath string) (*control.Signals, error) {
	inbox, err := control.NewSignals()
	if err != nil {
		return nil, err
	}

	if err = pidfile.Write(pidPath); err != nil {
		_ = inbox.Close()
		return nil, err
	}

	return inbox, nil
}

// defaultAction runs the timer daemon in the foreground until it receives
// SIGINT or SIGTERM.
func defaultAction(ctx *cli.Context) error {
	paths, err := pathutil.New()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, paths)
	if err != nil {
		return err
	}

	if cfg.Display.NoColor {
		disableStyling()
	}

	logger, closer := logging.New(logging.Options{
		Path:       paths.LogFilePath(),
		Level:      cfg.Log.SlogLevel(),
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	defer closer.Close()

	slog.SetDefault(logger)

	logger.DebugContext(ctx.Context, "resolved configuration", slog.String("config", cfg.Dump()))

	if err = static.Install(paths.Dir()); err != nil {
		logger.Warn("unable to install static files", slog.Any("error", err))
	}

	inbox, err := listen(paths.PIDFilePath())
	if err != nil {
		return err
	}

	defer inbox.Close()

	defer func() {
		if rerr := pidfile.Remove(paths.PIDFilePath()); rerr != nil {
			logger.Warn("unable to remove pid file", slog.Any("error", rerr))
		}
	}()

	notifier, err := newNotifier(cfg, paths, logger)
	if err != nil {
		return err
	}

	cmd, err := hook.Parse(cfg.Settings.Cmd)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := daemon.New(
		inbox,
		config.Stdout,
		daemon.WithLogger(logger),
		daemon.WithGlyphs(cfg.GlyphOverrides()),
		daemon.WithStatusFile(paths.StatusFilePath()),
		daemon.WithSessionCmd(cmd),
		daemon.WithNotifier(notifier, cfg.Notifications.Strict),
	)

	return d.Run(runCtx)
}

// signalAction returns the action for a command that sends e to the
// running daemon.
func signalAction(e control.Event) cli.ActionFunc {
	return func(_ *cli.Context) error {
		paths, err := pathutil.New()
		if err != nil {
			return err
		}

		pid, err := pidfile.Read(paths.PIDFilePath())
		if err != nil {
			return err
		}

		return control.Send(pid, e)
	}
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Fprintf(
			config.Stdout,
			"https://github.com/ayoisaiah/pomod/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if POMOD_NO_COLOR is set
	if _, exists := os.LookupEnv(envPomodNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
