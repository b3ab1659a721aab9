package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomod/internal/config"
	"github.com/ayoisaiah/pomod/internal/control"
	"github.com/ayoisaiah/pomod/internal/ui"
)

// disableStyling disables all styling provided by pterm and lipgloss.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""

	ui.NoColor = true
}

// Get retrieves the pomod app instance.
func Get() *cli.App {
	pomodApp := &cli.App{
		Name: "pomod",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		pomod is a minimal Pomodoro timer for status bars. It runs in the 
		background, prints the current phase and the time left twice a second, 
		and is controlled with SIGUSR1 (start/stop) and SIGUSR2 (reset).`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "toggle",
				Usage:  "Start or stop the running timer (SIGUSR1)",
				Action: signalAction(control.Toggle),
			},
			{
				Name:   "reset",
				Usage:  "Discard the running timer and start over (SIGUSR2)",
				Action: signalAction(control.Reset),
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running timer",
				Flags:  []cli.Flag{jsonFlag},
				Action: statusAction,
			},
		},
		Flags: []cli.Flag{
			configFlag,
			noColorFlag,
			disableNotificationFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return pomodApp
}
