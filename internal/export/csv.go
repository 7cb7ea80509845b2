package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/dwiprast/yt-trending/pkg/models"
)

// WriteCSV writes one title,views row per item, in ranking order. A
// response without items yields a header-only file. View counts stay the
// strings the API returned; counts past int64 range or with odd formatting
// pass through unchanged.
func WriteCSV(data models.TrendingResponse, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"title", "views"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, item := range data.Items() {
		if err := w.Write(videoRow(item)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv to %s: %w", path, err)
	}
	return nil
}

// videoRow projects one item down to its title and view count. Missing
// fields become empty cells; the row itself is always kept.
func videoRow(item any) []string {
	var title, views string
	if m, ok := item.(map[string]any); ok {
		if snippet, ok := m["snippet"].(map[string]any); ok {
			title, _ = snippet["title"].(string)
		}
		if statistics, ok := m["statistics"].(map[string]any); ok {
			views, _ = statistics["viewCount"].(string)
		}
	}
	return []string{title, views}
}
