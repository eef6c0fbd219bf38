package config

import (
	"os"
	"path/filepath"

	"github.com/luscis/dhcpctl/pkg/libol"
)

const (
	AppName    = "dhcpctl"
	ConfigName = "config.yaml"
)

type Log struct {
	File    string `json:"file,omitempty" yaml:"file,omitempty"`
	Verbose int    `json:"level,omitempty" yaml:"level,omitempty"`
}

func (l *Log) Correct() {
	if l.Verbose == 0 {
		l.Verbose = libol.INFO
	}
}

// DefaultFile is the configuration file under the user's config
// directory, or the working directory when that is unknown.
func DefaultFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", AppName, ConfigName)
	}
	return filepath.Join(dir, AppName, ConfigName)
}
