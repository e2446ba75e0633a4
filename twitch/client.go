// This file is part of twitchnotifier.
//
// twitchnotifier is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// twitchnotifier is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with twitchnotifier.  If not, see <https://www.gnu.org/licenses/>.

// Package twitch talks to the kraken api.
package twitch

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/bobbytrapz/twitchnotifier/retry"
	"github.com/bobbytrapz/twitchnotifier/stream"
	"golang.org/x/net/publicsuffix"
)

const (
	// DefaultBaseURL of the kraken api
	DefaultBaseURL = "https://api.twitch.tv/kraken"
	// DefaultClientID is sent when the user does not configure one
	DefaultClientID = "pvv7ytxj4v7i10h0p3s7ewf4vpoz5fc"
	// Limit is the most identifiers the api accepts in one request
	Limit = 100

	accept = "application/vnd.twitchtv.v5+json"
)

var (
	// ErrInvalidNickname means the api does not know at least one of the names we asked for
	ErrInvalidNickname = errors.New("invalid nickname")
	// ErrInvalidUser means the user id does not exist
	ErrInvalidUser = errors.New("invalid user id")

	errNotFound   = errors.New("not found")
	errBadRequest = errors.New("bad request")
)

// Doer sends http requests
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client for the kraken api
type Client struct {
	BaseURL  string
	ClientID string
	// UserID whose follows are checked by Status
	UserID string
	// Limit is the page and chunk size
	Limit int

	http Doer
}

// New client using our own http client
func New(baseURL, clientID string) (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("twitch.New: %s", err)
	}

	return NewWithDoer(baseURL, clientID, &http.Client{
		Jar:     jar,
		Timeout: 60 * time.Second,
	}), nil
}

// NewWithDoer lets the caller provide the transport
func NewWithDoer(baseURL, clientID string, doer Doer) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if clientID == "" {
		clientID = DefaultClientID
	}

	return &Client{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		ClientID: clientID,
		Limit:    Limit,
		http:     doer,
	}
}

func (c *Client) limit() int {
	if c.Limit <= 0 || c.Limit > Limit {
		return Limit
	}

	return c.Limit
}

func (c *Client) makeRequest(ctx context.Context, cmd string, query url.Values) (req *http.Request, err error) {
	u := c.BaseURL + cmd
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err = http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return
	}

	req.Header.Add("Accept", accept)
	req.Header.Add("Client-ID", c.ClientID)
	req.Header.Add("Accept-Encoding", "gzip")

	return
}

// get cmd and decode the response into v
// transport and decoding failures come back as retry.Error
// 429 and 5xx are transient too; any other 4xx is not
func (c *Client) get(ctx context.Context, cmd string, query url.Values, v interface{}) error {
	transient := func(err error) error {
		return retry.Error{
			Message: fmt.Sprintf("twitch.get: %s", cmd),
			Err:     err,
			Attempt: func() error {
				return c.get(ctx, cmd, query, v)
			},
		}
	}

	req, err := c.makeRequest(ctx, cmd, query)
	if err != nil {
		return fmt.Errorf("twitch.get: %s", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return transient(err)
	}
	defer res.Body.Close()

	buf, err := readResponse(res)
	if err != nil {
		return transient(err)
	}
	log.Println("twitch.get:", req.URL, res.StatusCode, buf.Len(), "bytes")

	if res.StatusCode == http.StatusNotFound {
		return errNotFound
	}

	// rejected requests are not retried
	if res.StatusCode >= http.StatusBadRequest && res.StatusCode < http.StatusInternalServerError &&
		res.StatusCode != http.StatusTooManyRequests {
		return fmt.Errorf("twitch.get: %s: status %d: %w", cmd, res.StatusCode, errBadRequest)
	}

	if res.StatusCode >= http.StatusBadRequest {
		return transient(fmt.Errorf("bad status %d", res.StatusCode))
	}

	var e errorResponse
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		return transient(err)
	}
	if e.Status == http.StatusNotFound {
		return errNotFound
	}

	if err := json.Unmarshal(buf.Bytes(), v); err != nil {
		return transient(err)
	}

	return nil
}

func readResponse(res *http.Response) (buf *bytes.Buffer, err error) {
	encoding := res.Header.Get("Content-Encoding")
	var r io.Reader
	switch encoding {
	case "gzip":
		var gz *gzip.Reader
		gz, err = gzip.NewReader(res.Body)
		if err != nil {
			err = fmt.Errorf("twitch.readResponse: %s", err)
			return
		}
		defer gz.Close()
		r = gz
	default:
		r = res.Body
	}

	buf = &bytes.Buffer{}
	if _, err = io.Copy(buf, r); err != nil {
		err = fmt.Errorf("twitch.readResponse: %s", err)
	}

	return
}

func join(names []stream.Name) string {
	s := make([]string, len(names))
	for ndx, n := range names {
		s[ndx] = string(n)
	}

	return strings.Join(s, ",")
}

// unique keeps the first of each name in order
func unique(names []stream.Name) []stream.Name {
	seen := make(map[stream.Name]bool, len(names))
	uniq := make([]stream.Name, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		uniq = append(uniq, n)
	}

	return uniq
}

func chunks(names []stream.Name, size int) (out [][]stream.Name) {
	for len(names) > size {
		out = append(out, names[:size])
		names = names[size:]
	}
	if len(names) > 0 {
		out = append(out, names)
	}

	return
}
