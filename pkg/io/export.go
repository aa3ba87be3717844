package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/dla/pkg/aggregate"
)

// FormatVersion is written into every snapshot file.
const FormatVersion = 1

type file struct {
	Version int `json:"version"`
	aggregate.Snapshot
}

// WriteJSON encodes s as indented JSON to w.
func WriteJSON(s aggregate.Snapshot, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(file{Version: FormatVersion, Snapshot: s}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// MarshalJSON returns the encoded snapshot file.
func MarshalJSON(s aggregate.Snapshot) ([]byte, error) {
	return json.Marshal(file{Version: FormatVersion, Snapshot: s})
}

// ExportJSON writes s to path, replacing any existing file.
func ExportJSON(s aggregate.Snapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(s, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
