package dhcp

import (
	"context"

	"github.com/luscis/dhcpctl/pkg/schema"
)

func ListScopes(ctx context.Context, g Getter) ([]schema.Scope, error) {
	items := make([]schema.Scope, 0, 16)
	if err := g.GetJSON(ctx, "/config/scopes", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetScope keeps the scopes whose network id is id.
func GetScope(ctx context.Context, g Getter, id string) ([]schema.Scope, error) {
	items, err := ListScopes(ctx, g)
	if err != nil {
		return nil, err
	}
	tmp := items[:0]
	for _, obj := range items {
		if obj.Ip == id {
			tmp = append(tmp, obj)
		}
	}
	return tmp, nil
}

func GetGlobals(ctx context.Context, g Getter) (*schema.Globals, error) {
	item := &schema.Globals{}
	if err := g.GetJSON(ctx, "/config/globals", item); err != nil {
		return nil, err
	}
	return item, nil
}
