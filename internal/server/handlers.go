package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/gridsnap/pkg/buildinfo"
	"github.com/matzehuels/gridsnap/pkg/errors"
	"github.com/matzehuels/gridsnap/pkg/grid"
	"github.com/matzehuels/gridsnap/pkg/io"
	"github.com/matzehuels/gridsnap/pkg/layout"
)

type unitResponse struct {
	ID       string    `json:"id"`
	Coords   grid.Rect `json:"coords"`
	Mode     string    `json:"mode"`
	Attached bool      `json:"attached"`
}

func newUnitResponse(u *layout.Unit) unitResponse {
	return unitResponse{ID: u.ID(), Coords: u.Rect(), Mode: u.Mode().String(), Attached: u.Attached()}
}

type editableRequest struct {
	Editable *bool `json:"editable"`
}

type pointerResponse struct {
	Consumed bool   `json:"consumed"`
	Session  string `json:"session,omitempty"`
	Units    int    `json:"units"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	var snap layout.Snapshot
	s.withManager(func(m *layout.Manager) { snap = m.GetLayout() })
	writeSnapshot(w, http.StatusOK, snap)
}

func (s *Server) handleLoadLayout(w http.ResponseWriter, r *http.Request) {
	in, err := io.ReadJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, err)
		return
	}
	var snap layout.Snapshot
	s.withManager(func(m *layout.Manager) {
		if err = m.LoadLayout(in); err == nil {
			snap = m.GetLayout()
		}
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeSnapshot(w, http.StatusOK, snap)
}

func (s *Server) handleClearLayout(w http.ResponseWriter, r *http.Request) {
	s.withManager(func(m *layout.Manager) { m.ClearLayout() })
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddUnit(w http.ResponseWriter, r *http.Request) {
	var spec layout.UnitSpec
	if err := decodeBody(w, r, &spec); err != nil {
		s.writeError(w, err)
		return
	}
	if spec.ID != "" {
		if err := errors.ValidateUnitID(spec.ID); err != nil {
			s.writeError(w, err)
			return
		}
	}
	c := spec.Rect
	if err := errors.ValidateRect(c.Top, c.Left, c.Width, c.Height); err != nil {
		s.writeError(w, err)
		return
	}

	var (
		resp unitResponse
		err  error
	)
	s.withManager(func(m *layout.Manager) {
		var u *layout.Unit
		if u, err = m.Add(spec); err == nil {
			resp = newUnitResponse(u)
		}
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetUnit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var (
		resp  unitResponse
		found bool
	)
	s.withManager(func(m *layout.Manager) {
		if u := m.GetUnit(id); u != nil {
			resp, found = newUnitResponse(u), true
		}
	})
	if !found {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "unit %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRemoveUnit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	found := false
	s.withManager(func(m *layout.Manager) {
		if u := m.GetUnit(id); u != nil {
			u.Destroy()
			found = true
		}
	})
	if !found {
		s.writeError(w, errors.New(errors.ErrCodeNotFound, "unit %s not found", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePointer(w http.ResponseWriter, r *http.Request) {
	var ev layout.PointerEvent
	if err := decodeBody(w, r, &ev); err != nil {
		s.writeError(w, err)
		return
	}
	if ev.Kind == 0 {
		s.writeError(w, errors.New(errors.ErrCodeInvalidArgument, "pointer event kind is required"))
		return
	}
	if ev.Part != layout.PartContainer && ev.UnitID == "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidArgument, "pointer event on %s needs a unit id", ev.Part))
		return
	}

	var resp pointerResponse
	s.withManager(func(m *layout.Manager) {
		resp.Consumed = m.Dispatch(ev)
		resp.Session = m.Container().Session()
		resp.Units = m.Len()
	})
	s.logger.Debug("pointer", "event", ev, "consumed", resp.Consumed)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEditable(w http.ResponseWriter, r *http.Request) {
	var req editableRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if req.Editable == nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidArgument, "editable is required"))
		return
	}
	var editable bool
	s.withManager(func(m *layout.Manager) {
		editable = m.SetEditable(*req.Editable).Editable()
	})
	writeJSON(w, http.StatusOK, map[string]bool{"editable": editable})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body")
	}
	return nil
}
