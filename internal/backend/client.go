package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/qdm12/guestbook/internal/constants"
)

var ErrBaseURLNotValid = errors.New("base URL is not valid")

// Client talks to the list backend exposing the lrange and rpush routes.
type Client struct {
	client  *http.Client
	baseURL string
}

// New creates a backend client for the given base URL. Requests and
// responses are logged at the debug level using the logger given,
// and the logger can be nil to disable this logging.
func New(client *http.Client, baseURL string, logger DebugLogger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBaseURLNotValid, err)
	} else if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme %q is not http or https",
			ErrBaseURLNotValid, u.Scheme)
	} else if u.Host == "" {
		return nil, fmt.Errorf("%w: host is empty", ErrBaseURLNotValid)
	}

	if logger != nil {
		client = makeLogClient(client, logger)
	}

	return &Client{
		client:  client,
		baseURL: strings.TrimSuffix(u.String(), "/"),
	}, nil
}

// BaseURL returns the backend base URL without trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListRange returns all the values of the list at key.
func (c *Client) ListRange(ctx context.Context, key string) (values []string, err error) {
	return c.get(ctx, "lrange", key)
}

// RPush appends value to the list at key and returns all the values
// of the list after the append.
func (c *Client) RPush(ctx context.Context, key, value string) (values []string, err error) {
	return c.get(ctx, "rpush", key, value)
}

func (c *Client) buildURL(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, segment := range segments {
		escaped[i] = escapeSegment(segment)
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

func (c *Client) get(ctx context.Context, segments ...string) (values []string, err error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(segments...), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", ErrRequestFailed, err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set(constants.RequestIDHeader, uuid.NewString())

	response, err := c.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, statusToString(response))
	}

	decoder := json.NewDecoder(response.Body)
	err = decoder.Decode(&values)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding JSON body: %w", ErrRequestFailed, err)
	}

	if values == nil { // JSON null
		values = []string{}
	}
	return values, nil
}

type errJSONWrapper struct {
	Error string `json:"error"`
}

func statusToString(response *http.Response) string {
	const maxBodySize = 1024
	b, err := io.ReadAll(io.LimitReader(response.Body, maxBodySize))
	if err != nil || len(b) == 0 {
		return response.Status
	}

	var wrapper errJSONWrapper
	err = json.Unmarshal(b, &wrapper)
	if err == nil && wrapper.Error != "" {
		return response.Status + ": " + wrapper.Error
	}
	return response.Status + ": " + toSingleLine(string(b))
}

// escapeSegment percent-encodes every byte except letters, digits
// and -_.~ so that sub-delimiters such as & + = : @ $ are encoded too.
func escapeSegment(s string) string {
	// QueryEscape encodes '+' as %2B, so any '+' left is a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
