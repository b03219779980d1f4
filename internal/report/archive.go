package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go-veille-stages/internal/posting"
)

// Archive is the dated artifact written after every run, empty or not.
// Key names are the historical French ones; changing them breaks the
// scripts that graze the daily files.
type Archive struct {
	Date     string            `json:"date_execution"`
	Total    int               `json:"total"`
	Postings []posting.Posting `json:"offres"`
}

// WriteArchive writes offres_<date>.json under dir and returns its
// path. This is the one deliverable whose failure should abort the run.
func WriteArchive(dir, date string, postings []posting.Posting) (string, error) {
	doc := Archive{Date: date, Total: len(postings), Postings: postings}
	if doc.Postings == nil {
		// an empty day still archives "offres": []
		doc.Postings = []posting.Posting{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("marshal archive: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create archive directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("offres_%s.json", date))
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write archive: %w", err)
	}
	return path, nil
}
