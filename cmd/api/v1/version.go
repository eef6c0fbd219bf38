package v1

import (
	"github.com/luscis/dhcpctl/cmd/api"
	"github.com/luscis/dhcpctl/pkg/schema"
	"github.com/urfave/cli/v2"
)

type Version struct {
	Cmd
}

func (v Version) Tmpl() string {
	return `Version  :  {{ .Version }}
Build at :  {{ .Date }}
Commit   :  {{ .Commit }}
`
}

func (v Version) List(c *cli.Context) error {
	item := schema.NewVersionSchema()
	return v.Out(item, c.String("format"), v.Tmpl())
}

func (v Version) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:   "version",
		Usage:  "show version information",
		Action: v.List,
	})
}
