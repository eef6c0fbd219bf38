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

type Scope struct {
	Cmd
}

type scopeRow struct {
	Ip         string
	Subnet     string
	Start      string
	End        string
	Gateway    string
	Dns        string
	Tftp       string
	Bootfile   string
	NextServer string
}

type scopeTable struct {
	Pxe  bool
	Dns  bool
	Rows []scopeRow
}

func (u Scope) Tmpl() string {
	return `{{ pb -16 "Subnet ID" }} {{ pb -16 "Subnet Mask" }} {{ pb -16 "Scope Start" }} {{ pb -16 "Scope End" }} {{ pb -16 "Gateway" }}
{{- if .Dns }} {{ pb -32 "DNS Servers" }}{{ end }}
{{- if .Pxe }} {{ pb -16 "TFTP Server" }} {{ pb -20 "Bootfile" }} {{ pb -16 "Next Server" }}{{ end }}
{{- $dns := .Dns }}{{ $pxe := .Pxe }}
{{- range .Rows }}
{{ ps -16 .Ip }} {{ ps -16 .Subnet }} {{ ps -16 .Start }} {{ ps -16 .End }} {{ ps -16 .Gateway }}
{{- if $dns }} {{ ps -32 .Dns }}{{ end }}
{{- if $pxe }} {{ ps -16 .Tftp }} {{ ps -20 .Bootfile }} {{ ps -16 .NextServer }}{{ end }}
{{- end }}
`
}

func (u Scope) Table(items []schema.Scope, pxe, dns bool) scopeTable {
	data := scopeTable{
		Pxe:  pxe,
		Dns:  dns,
		Rows: make([]scopeRow, 0, len(items)),
	}
	for _, obj := range items {
		data.Rows = append(data.Rows, scopeRow{
			Ip:         obj.Ip,
			Subnet:     obj.Subnet,
			Start:      obj.Range.Start,
			End:        obj.Range.End,
			Gateway:    obj.Options.Routers,
			Dns:        strings.Join(obj.Options.DomainNameServers, ","),
			Tftp:       schema.Value(obj.Options.TftpServerName),
			Bootfile:   schema.Value(obj.Options.BootfileName),
			NextServer: schema.Value(obj.NextServer),
		})
	}
	return data
}

func (u Scope) List(c *cli.Context) error {
	clt, err := u.NewHttp(c)
	if err != nil {
		return err
	}
	ctx, cancel := u.Context(c)
	defer cancel()
	items, err := dhcp.ListScopes(ctx, clt)
	if err != nil {
		return err
	}
	format := c.String("format")
	if format == "json" || format == "yaml" {
		return u.Out(items, format, "")
	}
	return u.Out(u.Table(items, c.Bool("pxe"), c.Bool("dns")), format, u.Tmpl())
}

func notSet(value *string) string {
	if value == nil {
		return "Not set"
	}
	return *value
}

func (u Scope) Print(items []schema.Scope, format string) error {
	if len(items) == 0 {
		fmt.Fprintln(api.Output, "No subnet found by that ID")
		return nil
	}
	if format == "json" || format == "yaml" {
		return u.Out(items, format, "")
	}
	for _, obj := range items {
		api.OutPair("Network ID:", obj.Ip)
		api.OutPair("Subnet Mask:", obj.Subnet)
		api.OutPair("Scope Range:", obj.Range.Start+" - "+obj.Range.End)
		api.OutPair("Gateway:", obj.Options.Routers)
		if obj.HasPxe() {
			fmt.Fprintln(api.Output)
			api.OutPair("TFTP Server:", notSet(obj.Options.TftpServerName))
			api.OutPair("Bootfile:", notSet(obj.Options.BootfileName))
			api.OutPair("Next Server:", notSet(obj.NextServer))
		}
		if obj.Options.DomainNameServers != nil {
			fmt.Fprintln(api.Output)
			api.OutPair("DNS Servers:", strings.Join(obj.Options.DomainNameServers, ","))
		}
		if v := obj.Options.DomainName; v != nil {
			fmt.Fprintln(api.Output)
			api.OutPair("Domain Name:", *v)
		}
		if v := obj.DefaultLeaseTime; v != nil {
			fmt.Fprintln(api.Output)
			api.OutPair("Default Lease Time:", libol.PrettySeconds(*v))
		}
		if v := obj.MaxLeaseTime; v != nil {
			fmt.Fprintln(api.Output)
			api.OutPair("Max Lease Time:", libol.PrettySeconds(*v))
		}
	}
	return nil
}

func (u Scope) Get(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return libol.NewErr("missing subnet id")
	}
	clt, err := u.NewHttp(c)
	if err != nil {
		return err
	}
	ctx, cancel := u.Context(c)
	defer cancel()
	items, err := dhcp.GetScope(ctx, clt, id)
	if err != nil {
		return err
	}
	return u.Print(items, c.String("format"))
}

func (u Scope) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:    "scope",
		Aliases: []string{"scopes", "sc"},
		Usage:   "DHCP scopes",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Usage:   "Display all scopes",
				Aliases: []string{"ls"},
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "pxe", Aliases: []string{"p"}, Usage: "Include PXE options."},
					&cli.BoolFlag{Name: "dns", Aliases: []string{"d"}, Usage: "Include DNS servers."},
				},
				Action: u.List,
			},
			{
				Name:      "get",
				Usage:     "Display a specific scope",
				ArgsUsage: "<subnet-id>",
				Action:    u.Get,
			},
		},
	})
}
