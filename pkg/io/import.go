package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/gridsnap/pkg/errors"
	"github.com/matzehuels/gridsnap/pkg/layout"
)

// ReadJSON decodes a JSON snapshot from r.
//
// The input must be a JSON array of {"id", "coords"} objects. ReadJSON
// returns an error if:
//   - The JSON is malformed (INVALID_FORMAT)
//   - The top-level value is not an array, including null (INVALID_ARGUMENT)
//   - An entry has an empty or otherwise invalid id (INVALID_UNIT_ID)
//   - An entry has negative or non-finite coordinates (INVALID_RECT)
//   - Two entries share an id (INVALID_ARGUMENT)
//
// An empty array yields an empty, non-nil snapshot. ReadJSON does not
// close r.
func ReadJSON(r io.Reader) (layout.Snapshot, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode layout")
	}
	return decode(raw)
}

// Unmarshal decodes a JSON snapshot from data with the same rules as
// [ReadJSON].
func Unmarshal(data []byte) (layout.Snapshot, error) {
	return ReadJSON(bytes.NewReader(data))
}

// ImportJSON reads a JSON file at path and returns the decoded snapshot.
// A missing file fails with FILE_NOT_FOUND; otherwise it returns the same
// errors as [ReadJSON].
func ImportJSON(path string) (layout.Snapshot, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout file %s not found", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func decode(raw json.RawMessage) (layout.Snapshot, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "layout must be a list of units, got %s", kindOf(trimmed))
	}

	var entries []layout.Entry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode layout entries")
	}

	s := make(layout.Snapshot, 0, len(entries))
	for i, e := range entries {
		if err := errors.ValidateUnitID(e.ID); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		c := e.Coords
		if err := errors.ValidateRect(c.Top, c.Left, c.Width, c.Height); err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e.ID, err)
		}
		s = append(s, e)
	}
	if err := s.CheckIDs(); err != nil {
		return nil, err
	}
	return s, nil
}

// kindOf names the JSON type of a top-level value for error messages.
func kindOf(v []byte) string {
	if len(v) == 0 {
		return "nothing"
	}
	switch v[0] {
	case '{':
		return "an object"
	case '"':
		return "a string"
	case 't', 'f':
		return "a boolean"
	case 'n':
		return "null"
	default:
		return "a number"
	}
}
