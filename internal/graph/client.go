// Package graph is a small Microsoft Graph client covering the calendar and
// mail calls the booking backend needs.
package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2/clientcredentials"
)

const defaultScope = "https://graph.microsoft.com/.default"

type Client struct {
	http    *http.Client
	baseURL string
	mailbox string
}

// New returns a client for the given mailbox that uses httpClient as is.
// httpClient is expected to add the bearer token itself.
func New(httpClient *http.Client, baseURL, mailbox string) *Client {
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		mailbox: mailbox,
	}
}

// NewWithClientCredentials authenticates as an Azure AD application using
// the client-credentials flow. Tokens are fetched lazily and refreshed on
// expiry.
func NewWithClientCredentials(ctx context.Context, tokenURL, clientID, clientSecret, baseURL, mailbox string) *Client {
	cc := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
		Scopes:       []string{defaultScope},
	}
	hc := cc.Client(ctx)
	hc.Timeout = 20 * time.Second
	return New(hc, baseURL, mailbox)
}

func (c *Client) Mailbox() string { return c.mailbox }

// Error is a non-2xx answer from Graph.
type Error struct {
	Status int
	Code   string
	Msg    string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("graph http %d: %s: %s", e.Status, e.Code, e.Msg)
	}
	return fmt.Sprintf("graph http %d: %s", e.Status, e.Msg)
}

func (c *Client) userPath(suffix string) string {
	return c.baseURL + "/users/" + url.PathEscape(c.mailbox) + suffix
}

func (c *Client) do(ctx context.Context, method, u string, body any, headers map[string]string, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode graph request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return fmt.Errorf("build graph request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("graph %s %s: %w", method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		gerr := &Error{Status: resp.StatusCode, Msg: strings.TrimSpace(string(respBody))}
		var parsed struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(respBody, &parsed) == nil && parsed.Error.Code != "" {
			gerr.Code = parsed.Error.Code
			gerr.Msg = parsed.Error.Message
		}
		return gerr
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode graph response: %w", err)
	}
	return nil
}
