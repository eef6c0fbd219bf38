package schema

type VendorLookup struct {
	Company   string `json:"company"`
	MacPrefix string `json:"mac_prefix"`
	Address   string `json:"address,omitempty"`
	Country   string `json:"country,omitempty"`
	Error     string `json:"error,omitempty"`
}

type VendorResult struct {
	Result *VendorLookup `json:"result"`
}
