package schema

type GlobalOptions struct {
	DomainName        *string  `json:"domain-name,omitempty"`
	DomainNameServers []string `json:"domain-name-servers,omitempty"`
}

type Globals struct {
	Authoritative    *bool          `json:"authoritative,omitempty"`
	DefaultLeaseTime *string        `json:"default-lease-time,omitempty"`
	MaxLeaseTime     *string        `json:"max-lease-time,omitempty"`
	Options          *GlobalOptions `json:"options,omitempty"`
}
