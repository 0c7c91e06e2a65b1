package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/matzehuels/asciidag/pkg/buildinfo"
	"github.com/matzehuels/asciidag/pkg/dag"
	dagerrors "github.com/matzehuels/asciidag/pkg/errors"
	dagio "github.com/matzehuels/asciidag/pkg/io"
	"github.com/matzehuels/asciidag/pkg/pipeline"
)

// contentTypes maps single-format responses to their media type.
var contentTypes = map[string]string{
	pipeline.FormatText: "text/plain; charset=utf-8",
	pipeline.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
}

// renderRequest is a graph document plus render options.
type renderRequest struct {
	dagio.Document
	Format   string   `json:"format,omitempty"`
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"`
	NoCache  bool     `json:"no_cache,omitempty"`
}

// renderResponse is returned when more than one format is requested.
type renderResponse struct {
	GraphHash string            `json:"graph_hash"`
	Mode      string            `json:"mode"`
	Nodes     int               `json:"nodes"`
	Edges     int               `json:"edges"`
	Cached    []string          `json:"cached"`
	Artifacts map[string]string `json:"artifacts"`
}

type checkResponse struct {
	Acyclic      bool                 `json:"acyclic"`
	Cycle        []uint               `json:"cycle,omitempty"`
	Placeholders []uint               `json:"placeholders,omitempty"`
	Layout       pipeline.LayoutStats `json:"layout"`
}

type errorResponse struct {
	Error struct {
		Code    dagerrors.Code `json:"code"`
		Message string         `json:"message"`
	} `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// handleRender renders the posted graph. A single format is returned as the
// raw artifact; several formats come back as one JSON object. The format
// query parameter overrides the body.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	g, err := s.build(&req.Document)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	formats := req.Formats
	if req.Format != "" {
		formats = append(formats, req.Format)
	}
	if q := r.URL.Query().Get("format"); q != "" {
		formats = pipeline.ParseFormats(q)
	}
	opts := pipeline.Options{
		Formats:  pipeline.ParseFormats(strings.Join(formats, ",")),
		Detailed: req.Detailed,
		NoCache:  req.NoCache,
		Logger:   s.logger,
	}

	result, err := s.cfg.Runner.Execute(r.Context(), g, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("X-Graph-Hash", result.GraphHash)
	if len(result.Artifacts) == 1 {
		for format, data := range result.Artifacts {
			w.Header().Set("Content-Type", contentTypes[format])
			w.Header().Set("X-Cache", cacheStatus(result.CacheInfo.RenderHit))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(data)
		}
		return
	}

	resp := renderResponse{
		GraphHash: result.GraphHash,
		Mode:      result.Mode.String(),
		Nodes:     result.Stats.NodeCount,
		Edges:     result.Stats.EdgeCount,
		Cached:    result.CacheInfo.Hits,
		Artifacts: make(map[string]string, len(result.Artifacts)),
	}
	if resp.Cached == nil {
		resp.Cached = []string{}
	}
	for format, data := range result.Artifacts {
		resp.Artifacts[format] = string(data)
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleCheck reports structural problems without rendering.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var doc dagio.Document
	if err := s.decode(w, r, &doc); err != nil {
		s.writeError(w, r, err)
		return
	}
	g, err := s.build(&doc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := checkResponse{Layout: pipeline.DescribeLayout(g)}
	resp.Cycle, _ = g.FindCyclePath()
	resp.Acyclic = resp.Cycle == nil
	for _, n := range g.Nodes() {
		if g.IsAutoCreated(n.ID) {
			resp.Placeholders = append(resp.Placeholders, n.ID)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// decode reads a JSON body of at most MaxBodyBytes into v.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return dagerrors.New(dagerrors.ErrCodeTooLarge, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return dagerrors.Wrap(dagerrors.ErrCodeInvalidFormat, err, "decode request body")
	}
	return nil
}

func (s *Server) build(doc *dagio.Document) (*dag.DAG, error) {
	if err := doc.Validate(s.cfg.Limits); err != nil {
		return nil, err
	}
	return doc.Build()
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := dagerrors.HTTPStatus(err)
	var resp errorResponse
	resp.Error.Code = dagerrors.GetCode(err)
	if resp.Error.Code == "" {
		resp.Error.Code = dagerrors.ErrCodeInternal
	}
	resp.Error.Message = dagerrors.UserMessage(err)
	resp.RequestID = RequestIDFromContext(r.Context())
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err, "request_id", resp.RequestID)
		resp.Error.Message = "internal error"
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func cacheStatus(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}
