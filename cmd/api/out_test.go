package api

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", Pad(-5, "ab"), "be the same.")
	assert.Equal(t, "   ab", Pad(5, "ab"), "be the same.")
	assert.Equal(t, "日本 ", Pad(-5, "日本"), "wide runes count twice.")
	assert.Equal(t, "abcdef", Pad(-3, "abcdef"), "never cut.")
}

func TestOut(t *testing.T) {
	color.NoColor = true
	buf := &bytes.Buffer{}
	old := Output
	Output = buf
	defer func() { Output = old }()

	data := []struct {
		Name string `json:"name"`
		Time string `json:"time"`
	}{{Name: "fake", Time: "600"}}

	assert.Nil(t, Out(data, "table", `{{ range . }}{{ pb -6 "name" }}{{ ps -6 .Name }}{{ pt .Time }}{{ end }}`))
	assert.Equal(t, "name  fake  600 (10m0s)", buf.String(), "be the same.")

	buf.Reset()
	assert.Nil(t, Out(data, "json", ""))
	assert.Contains(t, buf.String(), `"name": "fake"`)

	buf.Reset()
	assert.Nil(t, Out(data, "yaml", ""))
	assert.Equal(t, "- name: fake\n  time: \"600\"\n\n", buf.String(), "be the same.")

	buf.Reset()
	OutPair("Gateway:", "10.3.0.1")
	assert.Equal(t, "Gateway: 10.3.0.1\n", buf.String(), "be the same.")
}
