package schema

import "github.com/luscis/dhcpctl/pkg/libol"

type Version struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit,omitempty"`
}

func NewVersionSchema() Version {
	return Version{
		Version: libol.Version,
		Date:    libol.Date,
		Commit:  libol.Commit,
	}
}
