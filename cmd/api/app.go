package api

import (
	"github.com/luscis/dhcpctl/pkg/libol"
	"github.com/urfave/cli/v2"
)

var (
	Version = "v1"
	Url     = ""
	Token   = ""
	Conf    = ""
	Verbose = false
)

type App struct {
	cli    *cli.App
	Before func(c *cli.Context) error
	After  func(c *cli.Context) error
}

func (a *App) Flags() []cli.Flag {
	var flags []cli.Flag

	flags = append(flags,
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "output format: table|json|yaml",
			Value:   "table",
		})
	flags = append(flags,
		&cli.StringFlag{
			Name:    "conf",
			Aliases: []string{"c"},
			Usage:   "configuration file",
			Value:   Conf,
		})
	flags = append(flags,
		&cli.StringFlag{
			Name:    "token",
			Aliases: []string{"t"},
			Usage:   "API authentication token, overrides the configuration",
			Value:   Token,
		})
	flags = append(flags,
		&cli.StringFlag{
			Name:    "url",
			Aliases: []string{"l"},
			Usage:   "URL of the ISC DHCP API, overrides the configuration",
			Value:   Url,
		})
	flags = append(flags,
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "enable verbose",
			Value:   false,
		})
	return flags
}

func (a *App) New() *cli.App {
	app := &cli.App{
		Name:     "dhcpctl",
		Usage:    "ISC DHCP API utility",
		Flags:    a.Flags(),
		Commands: []*cli.Command{},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				Verbose = true
				libol.SetLogger("", libol.DEBUG)
			} else {
				Verbose = false
				libol.SetLogger("", libol.WARN)
			}
			if a.Before == nil {
				return nil
			}
			return a.Before(c)
		},
		After: func(c *cli.Context) error {
			if a.After == nil {
				return nil
			}
			return a.After(c)
		},
	}
	a.cli = app
	return a.cli
}

func (a *App) Command(cmd *cli.Command) {
	a.cli.Commands = append(a.cli.Commands, cmd)
}

func (a *App) Run(args []string) error {
	return a.cli.Run(args)
}
