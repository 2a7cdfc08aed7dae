package quran

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTafsirBaseURL is the public api.quran.com API root serving verse
// commentary.
const DefaultTafsirBaseURL = "https://api.quran.com/api/v4"

// TafsirClient fetches per-verse commentary from an api.quran.com
// compatible API.
type TafsirClient struct {
	baseURL string
	http    *http.Client
}

// NewTafsirClient returns a TafsirClient for the given API root. Empty
// baseURL falls back to DefaultTafsirBaseURL.
func NewTafsirClient(baseURL string, timeout time.Duration) *TafsirClient {
	if baseURL == "" {
		baseURL = DefaultTafsirBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &TafsirClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchVerseCommentary returns the raw commentary text of source sourceID
// for one verse. The text may carry HTML markup; callers clean and
// validate it before storing. An empty string with nil error means the
// source has no entry for that verse.
func (c *TafsirClient) FetchVerseCommentary(ctx context.Context, sourceID, chapter, verse int) (string, error) {
	if !ValidVerseRef(chapter, verse) {
		return "", fmt.Errorf("%w: %d:%d", ErrInvalidChapter, chapter, verse)
	}

	url := fmt.Sprintf("%s/tafsirs/%d/by_ayah/%d:%d", c.baseURL, sourceID, chapter, verse)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var payload struct {
		Tafsir struct {
			Text string `json:"text"`
		} `json:"tafsir"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return payload.Tafsir.Text, nil
}
