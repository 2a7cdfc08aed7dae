package quran

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the public alquran.cloud API root.
const DefaultBaseURL = "https://api.alquran.cloud/v1"

// edition selects the Arabic Uthmani-script text of the Quran.
const edition = "ar.quran-uthmani"

var (
	// ErrInvalidChapter is returned when a chapter number is outside 1..114.
	ErrInvalidChapter = errors.New("invalid chapter number")

	// ErrUpstream is returned when the content API answers with a non-OK
	// status or a failure envelope.
	ErrUpstream = errors.New("quran api error")
)

// Client fetches chapter data from an alquran.cloud-compatible API.
// The zero value is not usable; construct with NewClient.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for the given API root. Empty baseURL falls
// back to DefaultBaseURL; a non-positive timeout gets a sane default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// envelope is the response wrapper used by every alquran.cloud endpoint.
type envelope struct {
	Code   int             `json:"code"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// ListChapters returns metadata for all 114 chapters, without verse text.
func (c *Client) ListChapters(ctx context.Context) ([]Chapter, error) {
	var chapters []Chapter
	if err := c.get(ctx, c.baseURL+"/surah", &chapters); err != nil {
		return nil, err
	}
	if len(chapters) != TotalChapters {
		return nil, fmt.Errorf("%w: expected %d chapters, got %d", ErrUpstream, TotalChapters, len(chapters))
	}
	return chapters, nil
}

// GetChapter returns chapter n with its full Uthmani verse text.
func (c *Client) GetChapter(ctx context.Context, n int) (*Chapter, error) {
	if !ValidChapter(n) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChapter, n)
	}
	var ch Chapter
	if err := c.get(ctx, fmt.Sprintf("%s/surah/%d/%s", c.baseURL, n, edition), &ch); err != nil {
		return nil, err
	}
	if ch.Number != n {
		return nil, fmt.Errorf("%w: requested chapter %d, got %d", ErrUpstream, n, ch.Number)
	}
	return &ch, nil
}

// get performs a GET against url and decodes the envelope's data field
// into out.
func (c *Client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if env.Code != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrUpstream, env.Status)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
