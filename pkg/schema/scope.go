package schema

type Range struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ScopeOptions struct {
	SubnetMask        string   `json:"subnet-mask"`
	BroadcastAddress  string   `json:"broadcast-address"`
	Routers           string   `json:"routers"`
	TftpServerName    *string  `json:"tftp-server-name,omitempty"`
	BootfileName      *string  `json:"bootfile-name,omitempty"`
	DomainName        *string  `json:"domain-name,omitempty"`
	DomainNameServers []string `json:"domain-name-servers,omitempty"`
}

type Scope struct {
	Ip               string       `json:"ip"`
	Subnet           string       `json:"subnet"`
	Range            Range        `json:"range"`
	Options          ScopeOptions `json:"options"`
	NextServer       *string      `json:"next-server,omitempty"`
	DefaultLeaseTime *string      `json:"default-lease-time,omitempty"`
	MaxLeaseTime     *string      `json:"max-lease-time,omitempty"`
}

func (s Scope) HasPxe() bool {
	return s.Options.TftpServerName != nil || s.Options.BootfileName != nil || s.NextServer != nil
}
