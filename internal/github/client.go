// Package github fetches the public repository list of a single account.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	gh "github.com/google/go-github/v71/github"
	logger "github.com/sirupsen/logrus"

	"github.com/Francobelbruno/Portafolio/internal/models"
)

// DefaultBaseURL is the public GitHub REST endpoint
const DefaultBaseURL = "https://api.github.com/"

var rateLimitPattern = regexp.MustCompile(`(?i)rate limit`)

// FetchError is returned for any non-2xx response or transport failure.
// StatusCode is zero when no response was received.
type FetchError struct {
	StatusCode int
	Message    string

	rateLimited bool
	err         error
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.err
}

// RateLimited reports whether the failure was caused by an API rate limit,
// either as signalled by the response headers or as named in the message.
func (e *FetchError) RateLimited() bool {
	return e.rateLimited || rateLimitPattern.MatchString(e.Message)
}

// IsRateLimit reports whether err carries a rate-limited FetchError
func IsRateLimit(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.RateLimited()
}

// Options configures a Client
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client reads repositories for one account
type Client struct {
	account string
	api     *gh.Client
}

// NewClient creates a Client for account. Zero options talk to the public API
// with no timeout.
func NewClient(account string, opts Options) (*Client, error) {
	if strings.TrimSpace(account) == "" {
		return nil, errors.New("account is required")
	}

	httpClient := &http.Client{Timeout: opts.Timeout}
	api := gh.NewClient(httpClient)

	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", base, err)
	}
	api.BaseURL = u
	if opts.UserAgent != "" {
		api.UserAgent = opts.UserAgent
	}

	return &Client{account: account, api: api}, nil
}

// Account returns the account whose repositories are fetched
func (c *Client) Account() string {
	return c.account
}

// FetchRepositories lists the account's repositories with a single
// unauthenticated request. A body that is not a JSON array yields an empty
// list rather than an error.
func (c *Client) FetchRepositories(ctx context.Context) ([]models.RemoteRepository, error) {
	path := "users/" + url.PathEscape(c.account) + "/repos"
	req, err := c.api.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, &FetchError{Message: err.Error(), err: err}
	}

	var raw json.RawMessage
	resp, err := c.api.Do(ctx, req, &raw)
	var accepted *gh.AcceptedError
	if errors.As(err, &accepted) {
		// 202 is still a success response
		return decodeRepositories(accepted.Raw), nil
	}
	if err != nil {
		return nil, toFetchError(resp, err)
	}

	logger.WithFields(logger.Fields{
		"account": c.account,
		"status":  resp.StatusCode,
		"bytes":   len(raw),
	}).Debug("Fetched repository list")

	return decodeRepositories(raw), nil
}

func decodeRepositories(raw json.RawMessage) []models.RemoteRepository {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []models.RemoteRepository{}
	}

	var repos []models.RemoteRepository
	if err := json.Unmarshal(trimmed, &repos); err != nil {
		logger.Warnf("Discarding malformed repository list: %v", err)
		return []models.RemoteRepository{}
	}
	if repos == nil {
		repos = []models.RemoteRepository{}
	}
	return repos
}

func toFetchError(resp *gh.Response, err error) *FetchError {
	fe := &FetchError{err: err}

	var (
		rateErr  *gh.RateLimitError
		abuseErr *gh.AbuseRateLimitError
		apiErr   *gh.ErrorResponse
		httpResp *http.Response
	)
	switch {
	case errors.As(err, &rateErr):
		fe.rateLimited = true
		fe.Message = rateErr.Message
		httpResp = rateErr.Response
	case errors.As(err, &abuseErr):
		fe.rateLimited = true
		fe.Message = abuseErr.Message
		httpResp = abuseErr.Response
	case errors.As(err, &apiErr):
		fe.Message = apiErr.Message
		httpResp = apiErr.Response
	}

	if httpResp == nil && resp != nil {
		httpResp = resp.Response
	}
	if httpResp == nil {
		fe.Message = err.Error()
		return fe
	}

	fe.StatusCode = httpResp.StatusCode
	if fe.StatusCode == http.StatusTooManyRequests {
		fe.rateLimited = true
	}
	if strings.TrimSpace(fe.Message) == "" {
		fe.Message = statusText(httpResp)
	}
	return fe
}

// statusText returns the reason phrase of a response, e.g. "Forbidden"
func statusText(r *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(r.Status, strconv.Itoa(r.StatusCode)))
	if text == "" {
		text = http.StatusText(r.StatusCode)
	}
	return text
}
