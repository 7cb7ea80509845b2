package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dwiprast/yt-trending/pkg/models"
)

func TestWriteJSON_RoundTrip(t *testing.T) {
	data := models.TrendingResponse{
		"kind":          "youtube#videoListResponse",
		"nextPageToken": "CAUQAA",
		"items": []any{
			map[string]any{
				"snippet":    map[string]any{"title": "A"},
				"statistics": map[string]any{"viewCount": "7"},
			},
		},
	}
	path := filepath.Join(t.TempDir(), "out.json")

	if err := WriteJSON(data, path); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var loaded models.TrendingResponse
	if err := json.Unmarshal(b, &loaded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(loaded, data) {
		t.Errorf("round trip mismatch:\ngot  %#v\nwant %#v", loaded, data)
	}
}

func TestWriteJSON_EmptyItems(t *testing.T) {
	data := models.TrendingResponse{"items": []any{}}
	path := filepath.Join(t.TempDir(), "out.json")

	if err := WriteJSON(data, path); err != nil {
		t.Fatalf("write: %v", err)
	}
	var loaded models.TrendingResponse
	b, _ := os.ReadFile(path)
	if err := json.Unmarshal(b, &loaded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(loaded, data) {
		t.Errorf("round trip mismatch: %#v", loaded)
	}
}

func TestWriteJSON_NonASCIIPreserved(t *testing.T) {
	data := models.TrendingResponse{
		"items": []any{
			map[string]any{"snippet": map[string]any{"title": "日本の急上昇"}},
		},
	}
	path := filepath.Join(t.TempDir(), "out.json")

	if err := WriteJSON(data, path); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, _ := os.ReadFile(path)
	if !strings.Contains(string(b), "日本の急上昇") {
		t.Errorf("non-ASCII title was escaped: %s", b)
	}
	if !strings.Contains(string(b), "  ") {
		t.Errorf("output not indented: %s", b)
	}
}

func TestWriteJSON_UnwritablePath(t *testing.T) {
	data := models.TrendingResponse{}
	path := filepath.Join(t.TempDir(), "missing", "out.json")

	if err := WriteJSON(data, path); err == nil {
		t.Fatal("expected error for missing parent dir, got nil")
	}
}

func TestWriteCSV_Rows(t *testing.T) {
	data := models.TrendingResponse{
		"items": []any{
			map[string]any{
				"snippet":    map[string]any{"title": "A"},
				"statistics": map[string]any{"viewCount": "7"},
			},
			map[string]any{
				"snippet":    map[string]any{"title": "B"},
				"statistics": map[string]any{"viewCount": "9"},
			},
		},
	}
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := WriteCSV(data, path); err != nil {
		t.Fatalf("write: %v", err)
	}
	records := readCSV(t, path)
	want := [][]string{
		{"title", "views"},
		{"A", "7"},
		{"B", "9"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("csv = %v, want %v", records, want)
	}
}

func TestWriteCSV_MissingFields(t *testing.T) {
	data := models.TrendingResponse{
		"items": []any{
			// no statistics at all
			map[string]any{"snippet": map[string]any{"title": "A"}},
			// statistics present but no viewCount
			map[string]any{
				"snippet":    map[string]any{"title": "B"},
				"statistics": map[string]any{"likeCount": "3"},
			},
			// no snippet
			map[string]any{"statistics": map[string]any{"viewCount": "42"}},
		},
	}
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := WriteCSV(data, path); err != nil {
		t.Fatalf("write: %v", err)
	}
	records := readCSV(t, path)
	want := [][]string{
		{"title", "views"},
		{"A", ""},
		{"B", ""},
		{"", "42"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("csv = %v, want %v", records, want)
	}
}

func TestWriteCSV_NoItems(t *testing.T) {
	for name, data := range map[string]models.TrendingResponse{
		"empty":  {"items": []any{}},
		"absent": {},
	} {
		path := filepath.Join(t.TempDir(), name+".csv")
		if err := WriteCSV(data, path); err != nil {
			t.Fatalf("%s: write: %v", name, err)
		}
		records := readCSV(t, path)
		if len(records) != 1 || !reflect.DeepEqual(records[0], []string{"title", "views"}) {
			t.Errorf("%s: csv = %v, want header only", name, records)
		}
	}
}

func TestWriteCSV_ViewCountStaysText(t *testing.T) {
	// counts with leading zeros or beyond int64 must survive untouched
	data := models.TrendingResponse{
		"items": []any{
			map[string]any{
				"snippet":    map[string]any{"title": "big"},
				"statistics": map[string]any{"viewCount": "99999999999999999999"},
			},
			map[string]any{
				"snippet":    map[string]any{"title": "padded"},
				"statistics": map[string]any{"viewCount": "007"},
			},
		},
	}
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := WriteCSV(data, path); err != nil {
		t.Fatalf("write: %v", err)
	}
	records := readCSV(t, path)
	if records[1][1] != "99999999999999999999" || records[2][1] != "007" {
		t.Errorf("view counts reformatted: %v", records)
	}
}

func TestWriteCSV_UnwritablePath(t *testing.T) {
	data := models.TrendingResponse{}
	path := filepath.Join(t.TempDir(), "missing", "out.csv")

	if err := WriteCSV(data, path); err == nil {
		t.Fatal("expected error for missing parent dir, got nil")
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return records
}
