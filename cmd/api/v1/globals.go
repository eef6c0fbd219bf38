package v1

import (
	"fmt"
	"strings"

	"github.com/luscis/dhcpctl/cmd/api"
	"github.com/luscis/dhcpctl/pkg/dhcp"
	"github.com/luscis/dhcpctl/pkg/libol"
	"github.com/luscis/dhcpctl/pkg/schema"
	"github.com/urfave/cli/v2"
)

type Globals struct {
	Cmd
}

func (u Globals) Print(item *schema.Globals, format string) error {
	if format == "json" || format == "yaml" {
		return u.Out(item, format, "")
	}
	fmt.Fprintln(api.Output)
	if v := item.Authoritative; v != nil {
		api.OutPair("Authoritative:", *v)
	}
	if v := item.DefaultLeaseTime; v != nil {
		api.OutPair("Default Lease Time:", libol.PrettySeconds(*v))
	}
	if v := item.MaxLeaseTime; v != nil {
		api.OutPair("Max Lease Time:", libol.PrettySeconds(*v))
	}
	if v := item.Options; v != nil {
		fmt.Fprintln(api.Output)
		if v.DomainName != nil {
			api.OutPair("Domain name:", *v.DomainName)
		}
		if v.DomainNameServers != nil {
			api.OutPair("DNS Servers:", strings.Join(v.DomainNameServers, ", "))
		}
	}
	return nil
}

func (u Globals) List(c *cli.Context) error {
	clt, err := u.NewHttp(c)
	if err != nil {
		return err
	}
	ctx, cancel := u.Context(c)
	defer cancel()
	item, err := dhcp.GetGlobals(ctx, clt)
	if err != nil {
		return err
	}
	return u.Print(item, c.String("format"))
}

func (u Globals) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:    "globals",
		Aliases: []string{"gl"},
		Usage:   "Display the global configuration",
		Action:  u.List,
	})
}
