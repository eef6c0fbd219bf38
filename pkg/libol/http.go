package libol

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/net/context/ctxhttp"
)

// Auth of the DHCP API is a raw token, no scheme.
type Auth struct {
	Type  string
	Token string
}

type HttpClient struct {
	Method  string
	Url     string
	Auth    Auth
	Timeout time.Duration
	Client  *http.Client
}

func (cl *HttpClient) Do(ctx context.Context) (*http.Response, error) {
	if cl.Method == "" {
		cl.Method = "GET"
	}
	req, err := http.NewRequest(cl.Method, cl.Url, nil)
	if err != nil {
		return nil, err
	}
	if cl.Auth.Type == "token" && cl.Auth.Token != "" {
		req.Header.Set("Authorization", cl.Auth.Token)
	}
	req.Header.Set("Accept", "application/json")
	if cl.Client == nil {
		cl.Client = &http.Client{
			Timeout: cl.Timeout,
		}
	}
	return ctxhttp.Do(ctx, cl.Client, req)
}

func (cl *HttpClient) Close() {
	if cl.Client != nil {
		cl.Client.CloseIdleConnections()
	}
}
