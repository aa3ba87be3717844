package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/dla/pkg/aggregate"
	"github.com/matzehuels/dla/pkg/errors"
	"github.com/matzehuels/dla/pkg/lattice"
	"github.com/matzehuels/dla/pkg/pipeline"
	"github.com/matzehuels/dla/pkg/render"
)

// State is the JSON body returned by the walk and density endpoints.
type State struct {
	RunID     string          `json:"run_id"`
	Seed      uint64          `json:"seed"`
	Radius    int             `json:"radius"`
	Sites     int             `json:"sites"`
	Density   float64         `json:"density"`
	Threshold float64         `json:"threshold"`
	Reached   bool            `json:"reached"`
	Stats     aggregate.Stats `json:"stats"`
}

// GridBody is the JSON body of GET /grid.
type GridBody struct {
	Size     int             `json:"size"`
	Count    int             `json:"count"`
	Occupied []lattice.Point `json:"occupied"`
}

func (s *Server) state() State {
	return State{
		RunID:     s.runID,
		Seed:      s.opts.Seed,
		Radius:    s.engine.Radius(),
		Sites:     s.engine.ClusterLen(),
		Density:   s.engine.Density(),
		Threshold: s.opts.Threshold,
		Reached:   s.engine.Reached(s.opts.Threshold),
		Stats:     s.engine.Stats(),
	}
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) walks(w http.ResponseWriter, r *http.Request) {
	grow := r.URL.Query().Get("grow") != ""
	n, err := intParam(r, "n", s.opts.Batch)
	if err != nil {
		writeError(w, err)
		return
	}
	if n < 1 || n > pipeline.MaxBatch {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "n must be in [1, %d], got %d", pipeline.MaxBatch, n))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if grow {
		_, err = pipeline.Grow(r.Context(), s.engine, s.opts, s.runID)
	} else {
		_, err = pipeline.Step(r.Context(), s.engine, n, s.runID)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.state())
}

func (s *Server) resetRun(w http.ResponseWriter, r *http.Request) {
	seed, err := intParam(r, "seed", 0)
	if err != nil {
		writeError(w, err)
		return
	}
	if seed < 0 {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "seed must not be negative"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.reset(uint64(seed)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.state())
}

func (s *Server) density(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.state())
}

func (s *Server) grid(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	g := s.engine.Grid()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, GridBody{Size: g.Size(), Count: g.Count(), Occupied: g.Points()})
}

var contentTypes = map[string]string{
	render.FormatTXT:  "text/plain; charset=utf-8",
	render.FormatSVG:  "image/svg+xml",
	render.FormatPNG:  "image/png",
	render.FormatJSON: "application/json",
	render.FormatDOT:  "image/svg+xml",
	render.FormatPDF:  "application/pdf",
}

func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := render.ValidateFormat(format); err != nil {
		writeError(w, err)
		return
	}

	s.mu.Lock()
	snap := s.engine.Snapshot()
	opts := s.opts
	s.mu.Unlock()

	opts.Formats = []string{format}
	if style := r.URL.Query().Get("style"); style != "" {
		opts.Style = style
	}
	if scale := r.URL.Query().Get("scale"); scale != "" {
		v, err := strconv.ParseFloat(scale, 64)
		if err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "scale"))
			return
		}
		opts.Scale = v
	}

	artifacts, err := s.runner.Render(r.Context(), snap, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "query parameter %s", name)
	}
	return v, nil
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), errorBody{Code: code, Message: errors.UserMessage(err)})
}

func statusFor(code errors.Code) int {
	switch code.Kind() {
	case errors.KindInvalid:
		return http.StatusBadRequest
	case errors.KindState:
		return http.StatusConflict
	case errors.KindNotFound:
		return http.StatusNotFound
	case errors.KindUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
