// Package export writes a fetched trending response to disk, either
// verbatim as JSON or projected down to a title/views CSV.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dwiprast/yt-trending/pkg/models"
)

// WriteJSON serializes the response verbatim to path with two-space
// indentation. Any existing file is overwritten.
func WriteJSON(data models.TrendingResponse, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode json to %s: %w", path, err)
	}
	return nil
}
