package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"go.trai.ch/kin/internal/adapters/surface"
	"go.trai.ch/kin/internal/app"
	"go.trai.ch/kin/internal/core/domain"
)

type addRequest struct {
	ParentID string `json:"parentId"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Color    string `json:"color"`
}

type pointerRequest struct {
	X     *float64 `json:"x"`
	Y     *float64 `json:"y"`
	Event string   `json:"event"`
}

type pointerResponse struct {
	NodeID  string                  `json:"nodeId"`
	Buttons *domain.ButtonPlacement `json:"buttons,omitempty"`
	Node    *domain.NodeView        `json:"node,omitempty"`
}

const (
	pointerSelect = "select"
	pointerHover  = "hover"
	pointerExpand = "expand"
)

type moveRequest struct {
	Left *float64 `json:"left"`
	Top  *float64 `json:"top"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleNodes(w http.ResponseWriter, r *http.Request) {
	forest, err := app.Query(r.Context(), s.loop, func(context.Context) ([]*domain.TreeNode, error) {
		return s.app.Nodes(), nil
	})
	s.respond(w, http.StatusOK, forest, err)
}

func (s *Server) handleNode(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	view, err := app.Query(r.Context(), s.loop, func(context.Context) (domain.NodeView, error) {
		return s.app.Node(id)
	})
	s.respond(w, http.StatusOK, view, err)
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	form := domain.FormValues{Name: req.Name, Role: req.Role, Color: req.Color}

	view, err := app.Query(r.Context(), s.loop, func(ctx context.Context) (domain.NodeView, error) {
		if err := s.app.OpenAdd(ctx, req.ParentID); err != nil {
			return domain.NodeView{}, err
		}
		child, err := s.app.Submit(ctx, form)
		if err != nil {
			s.app.ClosePanel()
			return domain.NodeView{}, err
		}
		return s.app.Node(child.ID)
	})
	s.respond(w, http.StatusCreated, view, err)
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var form domain.FormValues
	if err := decode(r, &form); err != nil {
		s.fail(w, err)
		return
	}

	view, err := app.Query(r.Context(), s.loop, func(ctx context.Context) (domain.NodeView, error) {
		if _, err := s.app.OpenEdit(ctx, id); err != nil {
			return domain.NodeView{}, err
		}
		if _, err := s.app.Submit(ctx, form); err != nil {
			s.app.ClosePanel()
			return domain.NodeView{}, err
		}
		return s.app.Node(id)
	})
	s.respond(w, http.StatusOK, view, err)
}

func (s *Server) handleExpand(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	view, err := app.Query(r.Context(), s.loop, func(ctx context.Context) (domain.NodeView, error) {
		if err := s.app.Expand(ctx, id); err != nil {
			return domain.NodeView{}, err
		}
		return s.app.Node(id)
	})
	s.respond(w, http.StatusOK, view, err)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req moveRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if req.Left == nil || req.Top == nil {
		s.fail(w, errBadRequest("left and top are required"))
		return
	}

	view, err := app.Query(r.Context(), s.loop, func(ctx context.Context) (domain.NodeView, error) {
		if err := s.app.Drag(ctx, id, *req.Left, *req.Top); err != nil {
			return domain.NodeView{}, err
		}
		return s.app.Node(id)
	})
	s.respond(w, http.StatusOK, view, err)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	placement, err := app.Query(r.Context(), s.loop, func(ctx context.Context) (domain.ButtonPlacement, error) {
		return s.app.Select(ctx, id)
	})
	s.respond(w, http.StatusOK, placement, err)
}

// handlePointer delivers a pointer event at a page position to the node under it.
func (s *Server) handlePointer(w http.ResponseWriter, r *http.Request) {
	var req pointerRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if req.X == nil || req.Y == nil {
		s.fail(w, errBadRequest("x and y are required"))
		return
	}
	switch req.Event {
	case pointerSelect, pointerHover, pointerExpand:
	default:
		s.fail(w, errBadRequest("event must be one of select, hover, expand"))
		return
	}

	resp, err := app.Query(r.Context(), s.loop, func(ctx context.Context) (pointerResponse, error) {
		id, err := s.app.NodeAt(domain.Point{X: *req.X, Y: *req.Y})
		if err != nil {
			return pointerResponse{}, err
		}
		resp := pointerResponse{NodeID: id}
		switch req.Event {
		case pointerSelect:
			placement, err := s.app.Select(ctx, id)
			if err != nil {
				return pointerResponse{}, err
			}
			resp.Buttons = &placement
		case pointerHover:
			if err := s.app.Hover(ctx, id); err != nil {
				return pointerResponse{}, err
			}
		case pointerExpand:
			if err := s.app.Expand(ctx, id); err != nil {
				return pointerResponse{}, err
			}
			view, err := s.app.Node(id)
			if err != nil {
				return pointerResponse{}, err
			}
			resp.Node = &view
		}
		return resp, nil
	})
	s.respond(w, http.StatusOK, resp, err)
}

func (s *Server) handlePanel(w http.ResponseWriter, r *http.Request) {
	panel, err := app.Query(r.Context(), s.loop, func(context.Context) (domain.Panel, error) {
		return s.app.Panel(), nil
	})
	s.respond(w, http.StatusOK, panel, err)
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	scene, err := app.Query(r.Context(), s.loop, func(context.Context) (*domain.Scene, error) {
		return s.app.Scene(), nil
	})
	if err != nil {
		s.fail(w, err)
		return
	}

	etag := strconv.Quote(surface.Fingerprint(scene))
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	// Render into memory so a failure can still produce an error response.
	var buf bytes.Buffer
	if err := s.exporter.Export(r.Context(), scene, &buf); err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", s.exporter.ContentType())
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errBadRequest("invalid request body: " + err.Error())
	}
	return nil
}

func (s *Server) respond(w http.ResponseWriter, status int, body any, err error) {
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
