package api

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	kerrors "github.com/matzehuels/kgraph/pkg/errors"
	"github.com/matzehuels/kgraph/pkg/matrix"
	"github.com/matzehuels/kgraph/pkg/observability"
	"github.com/matzehuels/kgraph/pkg/render/nodelink"
	"github.com/matzehuels/kgraph/pkg/scene"
)

// matrixRequest is the body accepted by every POST endpoint.
type matrixRequest struct {
	Weights matrix.Matrix `json:"weights"`
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error   bool         `json:"error"`
	Code    kerrors.Code `json:"code"`
	Message string       `json:"message"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, http.StatusOK, map[string]string{"status": "healthy"})
}

// derive handles POST /api/v1/derive.
func (s *Server) derive(w http.ResponseWriter, r *http.Request) {
	weights, err := decodeMatrix(w, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	start := time.Now()
	d, err := matrix.Derive(weights)
	observability.Pipeline().OnDerive(r.Context(), len(weights), time.Since(start), err)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, r, http.StatusOK, d)
}

// buildScene handles POST /api/v1/scene.
func (s *Server) buildScene(w http.ResponseWriter, r *http.Request) {
	sc, err := s.sceneFor(w, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, r, http.StatusOK, sc)
}

// render handles POST /api/v1/render.
func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	sc, err := s.sceneFor(w, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	detailed, _ := strconv.ParseBool(r.URL.Query().Get("detailed"))
	start := time.Now()
	svg, err := nodelink.RenderSVG(nodelink.ToDOT(sc, nodelink.Options{Detailed: detailed}))
	observability.Pipeline().OnRender(r.Context(), "svg", len(svg), time.Since(start), err)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(svg); err != nil {
		s.logger.Debug("write response failed", "path", r.URL.Path, "err", err)
	}
}

// sceneFor builds the scene described by the request body and query.
func (s *Server) sceneFor(w http.ResponseWriter, r *http.Request) (*scene.Scene, error) {
	weights, err := decodeMatrix(w, r)
	if err != nil {
		return nil, err
	}
	seed, err := s.seedFor(r)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	sc, err := scene.Build(weights, s.scene, matrix.NewRand(seed))
	if err != nil {
		observability.Pipeline().OnLayout(r.Context(), len(weights), 0, time.Since(start), err)
		return nil, err
	}
	observability.Pipeline().OnLayout(r.Context(), len(sc.Nodes), len(sc.Edges), time.Since(start), nil)
	if ref := r.URL.Query().Get("select"); ref != "" {
		if _, err := sc.SelectRef(ref); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

// seedFor reads ?seed=N, falling back to the server seed and then to a
// fresh random one.
func (s *Server) seedFor(r *http.Request) (uint64, error) {
	if v := r.URL.Query().Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, kerrors.New(kerrors.ErrCodeInvalidInput, "invalid seed %q", v)
		}
		return seed, nil
	}
	if s.seed != 0 {
		return s.seed, nil
	}
	return rand.Uint64(), nil
}

// decodeMatrix reads a matrixRequest body. Shape is checked later by the
// matrix package so that ragged input maps to INVALID_MATRIX_SHAPE.
func decodeMatrix(w http.ResponseWriter, r *http.Request) (matrix.Matrix, error) {
	var req matrixRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, kerrors.New(kerrors.ErrCodeInvalidInput, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return nil, kerrors.Wrap(kerrors.ErrCodeInvalidInput, err, "malformed JSON body")
	}
	if len(req.Weights) > kerrors.MaxMatrixSize {
		return nil, kerrors.New(kerrors.ErrCodeInvalidInput, "matrix size too large (max %d), got %d", kerrors.MaxMatrixSize, len(req.Weights))
	}
	return req.Weights, nil
}

// respondError classifies err and writes it as an errorResponse.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	err = kerrors.Classify(err)
	code := kerrors.GetCode(err)
	status := kerrors.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	} else {
		s.logger.Debug("request rejected", "path", r.URL.Path, "code", code, "err", err)
	}
	s.respondJSON(w, r, status, errorResponse{
		Error:   true,
		Code:    code,
		Message: kerrors.UserMessage(err),
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug("write response failed", "path", r.URL.Path, "err", err)
	}
}
