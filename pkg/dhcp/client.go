package dhcp

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/luscis/dhcpctl/pkg/libol"
)

// Getter fetches path from the DHCP API and decodes the answer into v.
type Getter interface {
	GetJSON(ctx context.Context, path string, v interface{}) error
}

type Client struct {
	Url     string
	Token   string
	Timeout time.Duration
}

func NewClient(url, token string) *Client {
	return &Client{
		Url:     strings.TrimRight(url, "/"),
		Token:   token,
		Timeout: 30 * time.Second,
	}
}

func (cl *Client) NewRequest(url string) *libol.HttpClient {
	return &libol.HttpClient{
		Method: "GET",
		Url:    url,
		Auth: libol.Auth{
			Type:  "token",
			Token: cl.Token,
		},
		Timeout: cl.Timeout,
	}
}

func (cl *Client) GetBody(ctx context.Context, url string) ([]byte, error) {
	out := cl.Log()
	client := cl.NewRequest(url)
	defer client.Close()

	out.Debug("Client.GetBody -> %s %s", client.Method, client.Url)
	r, err := client.Do(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	out.Debug("Client.GetBody <- %s %d bytes", r.Status, len(body))
	if r.StatusCode < 200 || r.StatusCode > 299 {
		return nil, &BadStatusCode{
			Url:    url,
			Status: r.Status,
			Code:   r.StatusCode,
			Body:   strings.TrimSpace(string(body)),
		}
	}
	return body, nil
}

func (cl *Client) GetJSON(ctx context.Context, path string, v interface{}) error {
	if cl.Url == "" {
		return ErrMissingUrl
	}
	body, err := cl.GetBody(ctx, cl.Url+path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return libol.NewErr("%s%s: %s", cl.Url, path, err)
	}
	return nil
}

func (cl *Client) Log() *libol.SubLogger {
	return libol.NewSubLogger("dhcp")
}
