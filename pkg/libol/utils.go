package libol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

const SimpleTime = "2006-01-02 15:04:05"

func IsYaml(file string) bool {
	return strings.HasSuffix(file, ".yaml") || strings.HasSuffix(file, ".yml")
}

func Marshal(v interface{}, pretty bool) ([]byte, error) {
	str, err := json.Marshal(v)
	if err != nil {
		Error("Marshal error: %s", err)
		return nil, err
	}
	if !pretty {
		return str, nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, str, "", "  "); err != nil {
		return str, nil
	}
	return out.Bytes(), nil
}

func MarshalSave(v interface{}, file string, pretty bool) error {
	if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
		Error("MarshalSave: %s", err)
		return err
	}
	f, err := CreateFile(file)
	if err != nil {
		Error("MarshalSave: %s", err)
		return err
	}
	defer f.Close()

	var data []byte
	if IsYaml(file) {
		data, err = yaml.Marshal(v)
	} else {
		data, err = Marshal(v, pretty)
	}
	if err != nil {
		Error("MarshalSave error: %s", err)
		return err
	}
	if _, err := f.Write(data); err != nil {
		Error("MarshalSave: %s", err)
		return err
	}
	return nil
}

func FileExist(file string) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return err
	}
	return nil
}

func LoadFile(file string) ([]byte, error) {
	return os.ReadFile(file)
}

func Unmarshal(v interface{}, contents []byte) error {
	if err := json.Unmarshal(contents, v); err != nil {
		return NewErr("%s", err)
	}
	return nil
}

func UnmarshalLoad(v interface{}, file string) error {
	if err := FileExist(file); err != nil {
		return nil
	}
	contents, err := LoadFile(file)
	if err != nil {
		return NewErr("%s %s", file, err)
	}

	if IsYaml(file) {
		if err := yaml.Unmarshal(contents, v); err != nil {
			return NewErr("%s %s", file, err)
		}
		return nil
	}
	return Unmarshal(v, contents)
}

func OpenWrite(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
}

func CreateFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
}

// IsIPv4Net accepts a.b.c.d/n and a bare a.b.c.d.
func IsIPv4Net(value string) bool {
	if strings.Contains(value, "/") {
		ip, _, err := net.ParseCIDR(value)
		return err == nil && ip.To4() != nil && !strings.Contains(value, ":")
	}
	ip := net.ParseIP(value)
	return ip != nil && ip.To4() != nil && !strings.Contains(value, ":")
}

// SimpleDate parses an RFC3339 value and prints it in SimpleTime,
// keeping the offset of the value.
func SimpleDate(value string) (string, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return "", err
	}
	return t.Format(SimpleTime), nil
}

func PrettyTime(t int64) string {
	s := ""
	if t < 0 {
		s = "-"
		t = -t
	}
	min := t / 60
	if min < 60 {
		return fmt.Sprintf("%s%dm%ds", s, min, t%60)
	}
	hours := min / 60
	if hours < 24 {
		return fmt.Sprintf("%s%dh%dm", s, hours, min%60)
	}
	days := hours / 24
	return fmt.Sprintf("%s%dd%dh", s, days, hours%24)
}

// PrettySeconds appends a readable duration to a seconds value,
// other values are returned as they are.
func PrettySeconds(value string) string {
	sec, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return value
	}
	return fmt.Sprintf("%s (%s)", value, PrettyTime(sec))
}

func GetPrefix(value string, index int) string {
	if len(value) >= index {
		return value[:index]
	}
	return ""
}
