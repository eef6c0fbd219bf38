package v1

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/luscis/dhcpctl/pkg/config"
	"github.com/luscis/dhcpctl/pkg/libol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSetGet(t *testing.T) {
	buf, file := setup(t, "")

	require.Nil(t, run(t, "--conf", file, "config", "set", "--url", "https://dhcp.fake", "--token", "secret"))
	require.Nil(t, run(t, "--conf", file, "config", "set", "--token", "other"))

	cfg := config.NewDhcpctl(file)
	require.Nil(t, cfg.Load())
	assert.Equal(t, "https://dhcp.fake", cfg.Url, "url is kept.")
	assert.Equal(t, "other", cfg.Token, "be the same.")

	require.Nil(t, run(t, "--conf", file, "config", "get"))
	out := buf.String()
	assert.Contains(t, out, "API URL: https://dhcp.fake\n")
	assert.Contains(t, out, "Auth token: other\n")
}

func TestConfigMissing(t *testing.T) {
	setup(t, "")
	file := filepath.Join(t.TempDir(), "dhcpctl", config.ConfigName)

	err := run(t, "--conf", file, "globals")
	assert.True(t, errors.Is(err, config.ErrMissingConfigFile), "MUST be missing")

	// The file exists now.
	require.Nil(t, run(t, "--conf", file, "config", "set", "--token", "secret"))
	cfg := config.NewDhcpctl(file)
	require.Nil(t, cfg.Load())
	assert.Equal(t, "secret", cfg.Token, "be the same.")
}

func TestConfigBroken(t *testing.T) {
	_, file := setup(t, "")
	require.Nil(t, os.WriteFile(file, []byte("url: [\n"), 0600))

	err := run(t, "--conf", file, "globals")
	assert.NotNil(t, err, "MUST fail")
	assert.False(t, errors.Is(err, config.ErrMissingConfigFile), "not missing")

	require.Nil(t, run(t, "--conf", file, "config", "set", "--url", "https://dhcp.fake"))
	cfg := config.NewDhcpctl(file)
	require.Nil(t, cfg.Load())
	assert.Equal(t, "https://dhcp.fake", cfg.Url, "be the same.")
}

func TestVersionCommand(t *testing.T) {
	buf, _ := setup(t, "")
	file := filepath.Join(t.TempDir(), "dhcpctl", config.ConfigName)

	require.Nil(t, run(t, "--conf", file, "version"))
	assert.Contains(t, buf.String(), "Version  :  v")
	assert.NotNil(t, libol.FileExist(file), "not created")
}

func TestHelpCommand(t *testing.T) {
	setup(t, "")
	file := filepath.Join(t.TempDir(), "dhcpctl", config.ConfigName)

	require.Nil(t, run(t, "--conf", file, "lease", "list", "--help"))
	assert.NotNil(t, libol.FileExist(file), "not created")
}
