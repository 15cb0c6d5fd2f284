package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/gridsnap/pkg/layout"
)

// WriteJSON encodes a snapshot as an indented JSON array and writes it to w.
// A nil snapshot is written as an empty array so the output can always be
// re-imported with [ReadJSON].
func WriteJSON(s layout.Snapshot, w io.Writer) error {
	if s == nil {
		s = layout.Snapshot{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Marshal returns the indented JSON encoding of s.
func Marshal(s layout.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(s, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportJSON writes a snapshot to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(s layout.Snapshot, path string) error {
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
