// Package server exposes a layout manager over HTTP.
//
// The API is a thin JSON shell around [layout.Manager]; every request is
// handled under one mutex because the manager is not safe for concurrent
// use.
//
//	GET    /healthz        build information
//	GET    /layout         current snapshot
//	PUT    /layout         replace the layout with the snapshot in the body
//	DELETE /layout         destroy every unit
//	POST   /units          add a unit from {"id", "coords", "snap", ...}
//	GET    /units/{id}     one unit with its mode and attachment state
//	DELETE /units/{id}     destroy one unit
//	POST   /pointer        dispatch a hit-tested pointer event
//	PUT    /editable       {"editable": true|false}
//
// Errors are returned as {"code": "...", "message": "..."} with a status
// derived from the error code.
//
// [layout.Manager]: github.com/matzehuels/gridsnap/pkg/layout.Manager
package server
