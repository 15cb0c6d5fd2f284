// Package io provides JSON import and export for layout snapshots.
//
// # JSON Format
//
// A snapshot is a JSON array with one object per unit, in the manager's
// unit order:
//
//	[
//	  {"id": "u1", "coords": {"top": 20, "left": 20, "width": 200, "height": 200}},
//	  {"id": "u2", "coords": {"top": 20, "left": 240, "width": 400, "height": 200}}
//	]
//
// Coordinates are container-relative pixels. Values are written and read
// verbatim: nothing is snapped or clamped on the way in or out, so a
// snapshot exported from [layout.Manager.GetLayout] and imported into
// [layout.Manager.LoadLayout] reproduces the same layout.
//
// # Import
//
// Use [ImportJSON] to read a snapshot from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	snap, err := io.ImportJSON("layout.json")
//	if err != nil {
//	    return err
//	}
//	if err := m.LoadLayout(snap); err != nil {
//	    return err
//	}
//
// A JSON value that is not an array fails with INVALID_ARGUMENT, malformed
// JSON with INVALID_FORMAT. Entries with an invalid id or negative or
// non-finite coordinates are rejected with INVALID_UNIT_ID and INVALID_RECT.
//
// # Export
//
// Use [ExportJSON] to write a snapshot to a file, or [WriteJSON] to write to
// any io.Writer. [Marshal] and [Unmarshal] work on byte slices for callers
// that embed snapshots in other payloads, such as the HTTP API.
//
// [layout.Manager.GetLayout]: github.com/matzehuels/gridsnap/pkg/layout.Manager.GetLayout
// [layout.Manager.LoadLayout]: github.com/matzehuels/gridsnap/pkg/layout.Manager.LoadLayout
package io
