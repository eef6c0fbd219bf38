package api

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/fatih/color"
	"github.com/ghodss/yaml"
	"github.com/luscis/dhcpctl/pkg/libol"
	"github.com/mattn/go-runewidth"
)

var Output io.Writer = os.Stdout

func Pad(space int, value string) string {
	if space < 0 {
		return runewidth.FillRight(value, -space)
	}
	return runewidth.FillLeft(value, space)
}

func Bold(value string) string {
	return color.New(color.Bold).Sprint(value)
}

func OutJson(data interface{}) error {
	if out, err := libol.Marshal(data, true); err == nil {
		fmt.Fprintln(Output, string(out))
	} else {
		return err
	}
	return nil
}

func OutYaml(data interface{}) error {
	if out, err := yaml.Marshal(data); err == nil {
		fmt.Fprintln(Output, string(out))
	} else {
		return err
	}
	return nil
}

func OutTable(data interface{}, tmpl string) error {
	funcMap := template.FuncMap{
		"ps": func(space int, args ...interface{}) string {
			return Pad(space, fmt.Sprint(args...))
		},
		"pb": func(space int, value string) string {
			return Bold(Pad(space, value))
		},
		"pt": func(value string) string {
			return libol.PrettySeconds(value)
		},
	}
	if tmpl, err := template.New("main").Funcs(funcMap).Parse(tmpl); err != nil {
		return err
	} else {
		if err := tmpl.Execute(Output, data); err != nil {
			return err
		}
	}
	return nil
}

func Out(data interface{}, format string, tmpl string) error {
	libol.Debug("Out %s", format)
	switch format {
	case "json":
		return OutJson(data)
	case "yaml":
		return OutYaml(data)
	default:
		return OutTable(data, tmpl)
	}
}

// OutPair prints a bold label and its value on one line.
func OutPair(label string, value interface{}) {
	fmt.Fprintf(Output, "%s %v\n", Bold(label), value)
}
