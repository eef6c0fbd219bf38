package v1

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/gorilla/mux"
	"github.com/luscis/dhcpctl/cmd/api"
	"github.com/luscis/dhcpctl/pkg/config"
)

const leasesJson = `[
  {
    "binding-state": "active",
    "client-hostname": "iphone-kerwood",
    "cltt": "2023-05-01T10:15:30Z",
    "ends": "2023-05-01T22:15:30Z",
    "hardware-ethernet": "a8:11:22:33:44:55",
    "ip": "10.3.0.120",
    "next-binding-state": "free",
    "rewind-binding-state": "free",
    "set-vendor-class-identifier": "MSFT 5.0",
    "starts": "2023-05-01T10:15:30Z"
  },
  {
    "binding-state": "active",
    "cltt": "2023-05-01T11:00:00Z",
    "ends": "2023-05-01T23:00:00Z",
    "hardware-ethernet": "02:11:22:33:44:66",
    "ip": "10.3.0.121",
    "next-binding-state": "free",
    "rewind-binding-state": "free",
    "starts": "2023-05-01T11:00:00Z"
  }
]`

const scopesJson = `[
  {
    "ip": "10.3.0.0",
    "subnet": "255.255.255.0",
    "range": {"start": "10.3.0.100", "end": "10.3.0.200"},
    "options": {
      "subnet-mask": "255.255.255.0",
      "broadcast-address": "10.3.0.255",
      "routers": "10.3.0.1",
      "domain-name-servers": ["10.3.0.2", "10.3.0.3"]
    }
  },
  {
    "ip": "10.4.0.0",
    "subnet": "255.255.0.0",
    "range": {"start": "10.4.1.0", "end": "10.4.1.255"},
    "options": {
      "subnet-mask": "255.255.0.0",
      "broadcast-address": "10.4.255.255",
      "routers": "10.4.0.1",
      "bootfile-name": "pxelinux.0"
    },
    "max-lease-time": "7200"
  }
]`

type fakeServer struct {
	lock   sync.Mutex
	paths  []string
	server *httptest.Server
}

func (f *fakeServer) Hits() []string {
	f.lock.Lock()
	defer f.lock.Unlock()
	return append([]string(nil), f.paths...)
}

func newFakeServer(t *testing.T) *fakeServer {
	f := &fakeServer{}
	router := mux.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f.lock.Lock()
			f.paths = append(f.paths, r.URL.Path)
			f.lock.Unlock()
			next.ServeHTTP(w, r)
		})
	})
	router.HandleFunc("/config/globals", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"authoritative": true, "max-lease-time": "7200",
			"options": {"domain-name": "fake.lan", "domain-name-servers": ["10.3.0.2", "10.3.0.3"]}}`))
	})
	router.HandleFunc("/config/scopes", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(scopesJson))
	})
	router.HandleFunc("/leases/search/{term}", func(w http.ResponseWriter, r *http.Request) {
		if mux.Vars(r)["term"] == "iphone" {
			_, _ = w.Write([]byte(leasesJson[:strings.Index(leasesJson, "},")+1] + "]"))
			return
		}
		_, _ = w.Write([]byte("[]"))
	})
	router.HandleFunc("/leases/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(leasesJson))
	})
	router.HandleFunc("/api/{prefix}", func(w http.ResponseWriter, r *http.Request) {
		switch mux.Vars(r)["prefix"] {
		case "a8:11:22":
			_, _ = w.Write([]byte(`{"result":{"company":"Apple, Inc.","mac_prefix":"A8:11:22"}}`))
		case "bb:11:22":
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
		default:
			_, _ = w.Write([]byte(`{"result":{"error":"no result"}}`))
		}
	})
	f.server = httptest.NewServer(router)
	t.Cleanup(f.server.Close)
	return f
}

// setup redirects the output and points the configuration to a file
// in a temporary directory.
func setup(t *testing.T, vendorUrl string) (*bytes.Buffer, string) {
	color.NoColor = true
	buf := &bytes.Buffer{}
	old := api.Output
	api.Output = buf
	file := filepath.Join(t.TempDir(), config.ConfigName)
	Conf = config.NewDhcpctl(file)
	Conf.Vendor = vendorUrl
	Conf.Correct()
	if err := Conf.Save(); err != nil {
		t.Fatalf("save %s: %s", file, err)
	}
	builder = nil
	confErr = nil
	t.Cleanup(func() {
		api.Output = old
		Conf = nil
		builder = nil
		confErr = nil
	})
	return buf, file
}

func run(t *testing.T, args ...string) error {
	app := &api.App{}
	app.New()
	Commands(app)
	return app.Run(append([]string{"dhcpctl"}, args...))
}

// lines drops empty lines and splits the others into fields.
func lines(value string) [][]string {
	var items [][]string
	for _, line := range strings.Split(value, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, strings.Fields(line))
	}
	return items
}

type countResolver struct {
	calls    int
	prefixes []string
	vendors  map[string]string
	err      error
}

func (r *countResolver) Build(ctx context.Context, prefixes []string) (map[string]string, error) {
	r.calls++
	r.prefixes = prefixes
	return r.vendors, r.err
}
