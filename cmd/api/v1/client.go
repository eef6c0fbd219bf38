package v1

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/luscis/dhcpctl/cmd/api"
	"github.com/luscis/dhcpctl/pkg/config"
	"github.com/luscis/dhcpctl/pkg/dhcp"
	"github.com/luscis/dhcpctl/pkg/libol"
	"github.com/luscis/dhcpctl/pkg/vendor"
	"github.com/urfave/cli/v2"
)

var builder *vendor.Builder

type Cmd struct {
}

func (c Cmd) Config() *config.Dhcpctl {
	if Conf == nil {
		Conf = config.NewDhcpctl("")
		Conf.Correct()
	}
	return Conf
}

// NewHttp returns the DHCP API client, flags and env win over the file.
func (c Cmd) NewHttp(ctx *cli.Context) (*dhcp.Client, error) {
	cfg := c.Config()
	url := ctx.String("url")
	if url == "" {
		url = cfg.Url
	}
	token := ctx.String("token")
	if token == "" {
		token = cfg.Token
	}
	if url == "" && confErr != nil {
		return nil, libol.NewErr("%w, set the url with 'dhcpctl config set --url https://ip-or-domain-name'", confErr)
	}
	return dhcp.NewClient(url, token), nil
}

func (c Cmd) NewVendor() *vendor.Builder {
	if builder == nil {
		cfg := c.Config()
		builder = vendor.NewBuilder(cfg.Vendor, time.Duration(cfg.Timeout)*time.Second)
	}
	return builder
}

// Context is cancelled on interrupt.
func (c Cmd) Context(ctx *cli.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx.Context, os.Interrupt)
}

func (c Cmd) Out(data interface{}, format string, tmpl string) error {
	if tmpl == "" && format == "table" {
		format = "yaml"
	}
	return api.Out(data, format, tmpl)
}

func (c Cmd) Log() *libol.SubLogger {
	return libol.NewSubLogger("cli")
}
