package models

// TrendingResponse is the decoded body of a YouTube Data API v3
// videos.list call. The API response is kept as a generic JSON value so
// that top-level fields we never interpret (etag, pageInfo, nextPageToken)
// survive a write-back untouched.
type TrendingResponse map[string]any

// Items returns the ranked video entries, or nil when the response has no
// items field. Order is the API's ranking order.
func (r TrendingResponse) Items() []any {
	items, _ := r["items"].([]any)
	return items
}

// Snapshot is the archive metadata of one stored fetch.
type Snapshot struct {
	ID        string `json:"id"`
	Region    string `json:"region"`
	FetchedAt int64  `json:"fetched_at"`
	ItemCount int    `json:"item_count"`
}
