package dhcp

import (
	"context"
	"net/url"

	"github.com/luscis/dhcpctl/pkg/libol"
	"github.com/luscis/dhcpctl/pkg/schema"
)

// ListLeases returns the leases inside cidr, or all leases when cidr
// is empty. cidr may also be a single IPv4 address.
func ListLeases(ctx context.Context, g Getter, cidr string) ([]schema.Lease, error) {
	if cidr != "" && !libol.IsIPv4Net(cidr) {
		return nil, libol.NewErr("%w: %s", ErrInvalidFilter, cidr)
	}
	items := make([]schema.Lease, 0, 32)
	if err := g.GetJSON(ctx, "/leases/"+cidr, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SearchLeases matches term against the client hostname, the hardware
// address and the vendor class identifier on the server side.
func SearchLeases(ctx context.Context, g Getter, term string) ([]schema.Lease, error) {
	items := make([]schema.Lease, 0, 32)
	if err := g.GetJSON(ctx, "/leases/search/"+url.PathEscape(term), &items); err != nil {
		return nil, err
	}
	return items, nil
}
