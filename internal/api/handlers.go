package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"clipstruct/internal/captions"
	"clipstruct/internal/pipeline"
)

// analyzeRequest carries either decoded caption events or a raw caption file
// body with its format.
type analyzeRequest struct {
	Captions      []pipeline.CaptionEvent `json:"captions"`
	Format        string                  `json:"format,omitempty"`
	Data          string                  `json:"data,omitempty"`
	VideoDuration float64                 `json:"videoDuration,omitempty"`
	Source        string                  `json:"source,omitempty"`
}

type overrideRequest struct {
	Segment  pipeline.StructureSegment `json:"segment"`
	Override pipeline.Override         `json:"override"`
}

type statsRequest struct {
	Segments []pipeline.StructureSegment `json:"segments"`
}

type typeInfo struct {
	Name       string `json:"name"`
	Label      string `json:"label"`
	ShortLabel string `json:"shortLabel"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decode(w, r, &req) {
		return
	}

	events := req.Captions
	if req.Data != "" {
		format, err := captions.ParseFormat(req.Format)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		events, err = captions.DecodeBytes([]byte(req.Data), format)
		if err != nil {
			jsonError(w, "invalid caption data: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	analysis, err := s.analyzer.Analyze(events, req.VideoDuration)
	if err != nil {
		s.pipelineError(w, err)
		return
	}

	s.log.Info("analysis complete",
		"source", req.Source,
		"captions", len(events),
		"segments", len(analysis.Structure))
	writeJSON(w, http.StatusOK, pipeline.NewReport(req.Source, req.VideoDuration, analysis))
}

func (s *Server) handleOverride(w http.ResponseWriter, r *http.Request) {
	var req overrideRequest
	if !s.decode(w, r, &req) {
		return
	}

	seg, err := req.Segment.Override(req.Override)
	if err != nil {
		s.pipelineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, seg)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var req statsRequest
	if !s.decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, pipeline.StructureStatsOf(req.Segments))
}

func (s *Server) handleTypes(w http.ResponseWriter, r *http.Request) {
	types := make([]typeInfo, 0, len(pipeline.SegmentTypes))
	for _, t := range pipeline.SegmentTypes {
		types = append(types, typeInfo{Name: t.String(), Label: t.Label(), ShortLabel: t.ShortLabel()})
	}
	writeJSON(w, http.StatusOK, types)
}

// decode reads the JSON body into v and writes the error response itself
// when that fails.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		jsonError(w, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
		return false
	}
	jsonError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
	return false
}

// pipelineError maps pipeline errors to a status and the end-user message.
func (s *Server) pipelineError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	if errors.Is(err, pipeline.ErrEmptyInput) || errors.Is(err, pipeline.ErrInvalidOverride) {
		code = http.StatusUnprocessableEntity
	} else {
		s.log.Error("analysis failed", "err", err)
	}
	jsonError(w, pipeline.UserMessage(err), code)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
