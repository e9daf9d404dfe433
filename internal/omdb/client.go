// Package omdb implements the metadata lookup against the OMDb API.
// The lookup is best-effort: callers skip it when no API key is
// configured and fall back to the user-supplied title whenever it
// fails or returns no match.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.omdbapi.com"

// Result holds the subset of an OMDb response the application stores.
// Year is the raw date string as returned by the API; it can be a
// plain year ("2010") or a range ("2010–2013"), so callers use
// ParseYear to extract the numeric prefix.
type Result struct {
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Director string `json:"Director"`
	Poster   string `json:"Poster"`
	Response string `json:"Response"`
}

// Client queries OMDb by title. The zero value is not usable; build
// one with NewClient.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient returns a Client for the given API key. Whitespace around
// the key is ignored; a blank key produces a disabled client.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is NewClient with the endpoint overridden.
// Used by tests to point the client at a local fake server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// Enabled reports whether an API key is configured. When it returns
// false the handlers skip enrichment entirely.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Lookup searches OMDb for a movie by title. It returns (nil, nil)
// when the provider reports no match, so a nil Result means "store
// the bare title". A non-200 status or a decode failure is returned
// as an error; callers degrade gracefully rather than failing the
// request.
func (c *Client) Lookup(ctx context.Context, title string) (*Result, error) {
	u, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("apikey", c.apiKey)
	q.Set("t", title)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("omdb returned %d", resp.StatusCode)
	}

	var res Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, err
	}
	if res.Response != "True" {
		return nil, nil // no match
	}
	return &res, nil
}

// ParseYear extracts a 4-digit year from the start of an OMDb date
// string. It returns (0, false) unless the first four bytes are all
// digits, which covers both plain years and ranges like "2005–2012".
func ParseYear(s string) (int64, bool) {
	if len(s) < 4 {
		return 0, false
	}
	prefix := s[:4]
	for i := 0; i < len(prefix); i++ {
		if prefix[i] < '0' || prefix[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
