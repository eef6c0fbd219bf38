package dhcp

import (
	"errors"
	"fmt"
)

var (
	ErrMissingUrl    = errors.New("the URL for the ISC DHCP API is missing, set it with 'dhcpctl config set --url https://ip-or-domain-name'")
	ErrInvalidFilter = errors.New("not a valid CIDR")
	ErrTimestamp     = errors.New("invalid timestamp")
)

// BadStatusCode is a non-2xx answer of a remote service.
type BadStatusCode struct {
	Url    string
	Status string
	Code   int
	Body   string
}

func (e *BadStatusCode) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: %s", e.Url, e.Status)
	}
	return fmt.Sprintf("%s: %s %s", e.Url, e.Status, e.Body)
}
