package v1

import (
	"errors"

	"github.com/luscis/dhcpctl/cmd/api"
	"github.com/luscis/dhcpctl/pkg/config"
	"github.com/luscis/dhcpctl/pkg/libol"
	"github.com/urfave/cli/v2"
)

var (
	Conf    *config.Dhcpctl
	confErr error
)

// Before loads the configuration file. A missing file is created and
// only reported once a command needs the API. Help and version leave
// the file alone, config starts from defaults when the file is broken.
func Before(c *cli.Context) error {
	Conf = config.NewDhcpctl(c.String("conf"))
	confErr = nil
	if skipConfig(c) {
		Conf.Correct()
		return nil
	}
	if err := Conf.Load(); err != nil {
		switch {
		case errors.Is(err, config.ErrMissingConfigFile):
			confErr = err
			libol.Debug("Before %s", err)
		case c.Args().First() == "config":
			libol.Warn("Before %s", err)
			Conf = config.NewDhcpctl(c.String("conf"))
			Conf.Correct()
		default:
			return err
		}
	}
	if Conf.Log.File != "" {
		level := Conf.Log.Verbose
		if api.Verbose {
			level = libol.DEBUG
		}
		libol.SetLogger(Conf.Log.File, level)
	}
	return nil
}

func skipConfig(c *cli.Context) bool {
	switch c.Args().First() {
	case "", "help", "h", "version":
		return true
	}
	for _, arg := range c.Args().Slice() {
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

func After(c *cli.Context) error {
	if api.Verbose && builder != nil {
		out := libol.NewSubLogger("metrics")
		builder.Metrics.Dump(func(name string, value float64) {
			out.Debug("%s %.0f", name, value)
		})
	}
	return nil
}

func Commands(app *api.App) {
	app.After = After
	app.Before = Before
	Version{}.Commands(app)
	Config{}.Commands(app)
	Globals{}.Commands(app)
	Scope{}.Commands(app)
	Lease{}.Commands(app)
}
