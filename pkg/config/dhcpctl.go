package config

import (
	"errors"

	"github.com/luscis/dhcpctl/pkg/libol"
)

const (
	VendorUrl     = "https://macvendors.co"
	VendorTimeout = 5
)

var ErrMissingConfigFile = errors.New("config file not found")

type Dhcpctl struct {
	Url      string `json:"url" yaml:"url"`
	Token    string `json:"token" yaml:"token"`
	Vendor   string `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	Timeout  int    `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	Log      Log    `json:"log,omitempty" yaml:"log,omitempty"`
	SaveFile string `json:"-" yaml:"-"`
}

func NewDhcpctl(file string) *Dhcpctl {
	if file == "" {
		file = DefaultFile()
	}
	return &Dhcpctl{SaveFile: file}
}

func (c *Dhcpctl) Correct() {
	if c.Vendor == "" {
		c.Vendor = VendorUrl
	}
	if c.Timeout <= 0 {
		c.Timeout = VendorTimeout
	}
	c.Log.Correct()
}

// Load reads the file. A missing file is written with defaults and
// reported as ErrMissingConfigFile.
func (c *Dhcpctl) Load() error {
	if err := libol.FileExist(c.SaveFile); err != nil {
		c.Correct()
		if err := c.Save(); err != nil {
			return err
		}
		return libol.NewErr("%w: created %s", ErrMissingConfigFile, c.SaveFile)
	}
	if err := libol.UnmarshalLoad(c, c.SaveFile); err != nil {
		return err
	}
	c.Correct()
	return nil
}

func (c *Dhcpctl) Save() error {
	return libol.MarshalSave(c, c.SaveFile, true)
}

// Set updates the non-empty values and saves the file.
func (c *Dhcpctl) Set(url, token string) error {
	if url != "" {
		c.Url = url
	}
	if token != "" {
		c.Token = token
	}
	return c.Save()
}
