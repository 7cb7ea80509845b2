package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dwiprast/yt-trending/pkg/models"
)

// APIError is returned when the YouTube API answers with a non-200 status.
// Body carries the raw response so quota and auth failures are diagnosable.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("youtube api: status %d: %s", e.Status, e.Body)
}

// Client calls the YouTube Data API v3.
type Client struct {
	httpClient *http.Client
	baseURL    string
	key        string
}

func NewClient(baseURL, key string) *Client {
	if baseURL == "" {
		baseURL = "https://www.googleapis.com/youtube/v3"
	}
	return &Client{
		baseURL: baseURL,
		key:     key,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Trending fetches the mostPopular chart for a region. Region and
// maxResults are forwarded as-is; validation is the API's job. The decoded
// body is returned untouched, ranking order and all.
func (c *Client) Trending(ctx context.Context, region string, maxResults int) (models.TrendingResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/videos", nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	q := url.Values{}
	q.Add("part", "snippet,statistics")
	q.Add("chart", "mostPopular")
	q.Add("regionCode", region)
	q.Add("maxResults", strconv.Itoa(maxResults))
	q.Add("key", c.key)
	req.URL.RawQuery = q.Encode()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request trending videos: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return nil, &APIError{Status: res.StatusCode, Body: string(body)}
	}

	var r models.TrendingResponse
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decode trending response: %w", err)
	}
	return r, nil
}
