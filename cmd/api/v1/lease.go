package v1

import (
	"context"
	"fmt"

	"github.com/luscis/dhcpctl/cmd/api"
	"github.com/luscis/dhcpctl/pkg/dhcp"
	"github.com/luscis/dhcpctl/pkg/libol"
	"github.com/luscis/dhcpctl/pkg/schema"
	"github.com/luscis/dhcpctl/pkg/vendor"
	"github.com/urfave/cli/v2"
)

// Resolver maps MAC prefixes to vendor names.
type Resolver interface {
	Build(ctx context.Context, prefixes []string) (map[string]string, error)
}

type Lease struct {
	Cmd
}

type leaseTable struct {
	Lookup bool
	Rows   []schema.LeaseRow
}

func (u Lease) Tmpl() string {
	return `{{- if .Lookup }}{{ pb -24 "Mac Vendor" }} {{ end -}}
{{ pb -18 "MAC Address" }} {{ pb -8 "Status" }} {{ pb -16 "IP" }} {{ pb -24 "Hostname" }} {{ pb -20 "Starts" }} {{ pb -20 "Ends" }} {{ pb 0 "Vendor Identifier" }}
{{- $lookup := .Lookup }}
{{- range .Rows }}
{{ if $lookup }}{{ ps -24 .Vendor }} {{ end -}}
{{ ps -18 .HardwareEthernet }} {{ ps -8 .Status }} {{ ps -16 .Ip }} {{ ps -24 .Hostname }} {{ ps -20 .Starts }} {{ ps -20 .Ends }} {{ .VendorIdentifier }}
{{- end }}
`
}

// Rows resolves the vendors of all leases first, then formats every
// lease. A bad timestamp fails all rows.
func (u Lease) Rows(ctx context.Context, items []schema.Lease, resolver Resolver) ([]schema.LeaseRow, error) {
	var vendors map[string]string
	if resolver != nil {
		var err error
		if vendors, err = resolver.Build(ctx, vendor.Prefixes(items)); err != nil {
			return nil, err
		}
	}
	rows := make([]schema.LeaseRow, 0, len(items))
	for _, obj := range items {
		starts, err := libol.SimpleDate(obj.Starts)
		if err != nil {
			return nil, libol.NewErr("%w: starts of %s: %s", dhcp.ErrTimestamp, obj.Ip, err)
		}
		ends, err := libol.SimpleDate(obj.Ends)
		if err != nil {
			return nil, libol.NewErr("%w: ends of %s: %s", dhcp.ErrTimestamp, obj.Ip, err)
		}
		row := schema.LeaseRow{
			HardwareEthernet: obj.HardwareEthernet,
			Status:           obj.BindingState,
			Ip:               obj.Ip,
			Hostname:         schema.Value(obj.ClientHostname),
			Starts:           starts,
			Ends:             ends,
			VendorIdentifier: schema.Value(obj.VendorIdentifier),
		}
		if vendors != nil {
			row.Vendor = vendors[vendor.Prefix(obj.HardwareEthernet)]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Print writes the leases; resolver is nil when the vendor lookup is
// not wanted. Nothing is written on error.
func (u Lease) Print(ctx context.Context, items []schema.Lease, resolver Resolver, format string) error {
	if len(items) == 0 {
		fmt.Fprintln(api.Output, "No leases found")
		return nil
	}
	rows, err := u.Rows(ctx, items, resolver)
	if err != nil {
		return err
	}
	if format == "json" || format == "yaml" {
		return u.Out(rows, format, "")
	}
	data := leaseTable{
		Lookup: resolver != nil,
		Rows:   rows,
	}
	return u.Out(data, format, u.Tmpl())
}

func (u Lease) Resolver(c *cli.Context) Resolver {
	if c.Bool("mac-lookup") {
		return u.NewVendor()
	}
	return nil
}

func (u Lease) List(c *cli.Context) error {
	clt, err := u.NewHttp(c)
	if err != nil {
		return err
	}
	ctx, cancel := u.Context(c)
	defer cancel()
	items, err := dhcp.ListLeases(ctx, clt, c.Args().First())
	if err != nil {
		return err
	}
	return u.Print(ctx, items, u.Resolver(c), c.String("format"))
}

func (u Lease) Search(c *cli.Context) error {
	term := c.Args().First()
	if term == "" {
		return libol.NewErr("missing search string")
	}
	clt, err := u.NewHttp(c)
	if err != nil {
		return err
	}
	ctx, cancel := u.Context(c)
	defer cancel()
	items, err := dhcp.SearchLeases(ctx, clt, term)
	if err != nil {
		return err
	}
	return u.Print(ctx, items, u.Resolver(c), c.String("format"))
}

func (u Lease) Commands(app *api.App) {
	lookup := &cli.BoolFlag{
		Name:    "mac-lookup",
		Aliases: []string{"m"},
		Usage:   "Lookup the MAC vendors on macvendors.co.",
	}
	app.Command(&cli.Command{
		Name:    "lease",
		Aliases: []string{"leases", "le"},
		Usage:   "DHCP address leases",
		Subcommands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "Display all active leases",
				Aliases:   []string{"ls"},
				ArgsUsage: "[cidr], specific CIDR or IP, eg. 10.3.0.0/24 or 10.3.0.120",
				Flags:     []cli.Flag{lookup},
				Action:    u.List,
			},
			{
				Name:      "search",
				Usage:     "Search for leases in 'client-hostname', 'hardware-ethernet' and 'set-vendor-class-identifier'",
				ArgsUsage: "<string>",
				Flags:     []cli.Flag{lookup},
				Action:    u.Search,
			},
		},
	})
}
