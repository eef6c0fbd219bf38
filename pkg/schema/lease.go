package schema

type Lease struct {
	BindingState       string  `json:"binding-state"`
	ClientHostname     *string `json:"client-hostname,omitempty"`
	Cltt               string  `json:"cltt"`
	Ends               string  `json:"ends"`
	HardwareEthernet   string  `json:"hardware-ethernet"`
	Ip                 string  `json:"ip"`
	NextBindingState   string  `json:"next-binding-state"`
	RewindBindingState string  `json:"rewind-binding-state"`
	VendorIdentifier   *string `json:"set-vendor-class-identifier,omitempty"`
	Starts             string  `json:"starts"`
	Uid                *string `json:"uid,omitempty"`
}

// LeaseRow is a lease as it is displayed.
type LeaseRow struct {
	Vendor           string `json:"vendor,omitempty"`
	HardwareEthernet string `json:"hardware-ethernet"`
	Status           string `json:"status"`
	Ip               string `json:"ip"`
	Hostname         string `json:"hostname"`
	Starts           string `json:"starts"`
	Ends             string `json:"ends"`
	VendorIdentifier string `json:"vendor-identifier"`
}

// Value maps an absent optional field to "".
func Value(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
