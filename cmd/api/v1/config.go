package v1

import (
	"github.com/luscis/dhcpctl/cmd/api"
	"github.com/urfave/cli/v2"
)

type Config struct {
	Cmd
}

func (u Config) Tmpl() string {
	return `{{ pb 0 "API URL:" }} {{ .Url }}
{{ pb 0 "Auth token:" }} {{ .Token }}
{{ pb 0 "Vendor service:" }} {{ .Vendor }}
{{ pb 0 "Config file:" }} {{ .SaveFile }}
`
}

func (u Config) Set(c *cli.Context) error {
	cfg := u.Config()
	if err := cfg.Set(c.String("url"), c.String("token")); err != nil {
		return err
	}
	u.Log().Debug("Config.Set %s", cfg.SaveFile)
	return nil
}

func (u Config) Get(c *cli.Context) error {
	return u.Out(u.Config(), c.String("format"), u.Tmpl())
}

func (u Config) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:  "config",
		Usage: "CLI configuration",
		Subcommands: []*cli.Command{
			{
				Name:  "set",
				Usage: "Set the url or the token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "url",
						Aliases: []string{"u"},
						Usage:   "Set the URL of the ISC DHCP API.",
					},
					&cli.StringFlag{
						Name:    "token",
						Aliases: []string{"t"},
						Usage:   "API authentication token, sent as the 'authorization' header.",
					},
				},
				Action: u.Set,
			},
			{
				Name:    "get",
				Usage:   "Display the configuration",
				Aliases: []string{"ls"},
				Action:  u.Get,
			},
		},
	})
}
