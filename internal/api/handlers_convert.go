package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dgallion1/md2conf/internal/storage"
)

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	start := time.Now()
	res, err := s.converter.Convert(body)
	if err != nil {
		s.conversionError(w, r, err)
		return
	}
	s.orchestrator.Latency().Since(start)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (s *Server) handleSanitize(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	out, err := storage.Sanitize(string(body))
	if err != nil {
		s.conversionError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	io.WriteString(w, out)
}

type compareRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 2*s.cfg.MaxUploadBytes)

	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("body exceeds max size (%d bytes)", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}

	eq, err := storage.Equivalent(req.A, req.B)
	if err != nil {
		s.conversionError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"equivalent": eq})
}

// readBody reads the whole request body within the upload limit.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("body exceeds max size (%d bytes)", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return nil, false
		}
		jsonError(w, "failed to read body", http.StatusBadRequest)
		return nil, false
	}
	return body, true
}

func (s *Server) conversionError(w http.ResponseWriter, r *http.Request, err error) {
	code := conversionStatus(err)
	if code == http.StatusInternalServerError {
		s.log.Error("conversion failed", "path", r.URL.Path, "error", err)
	}
	jsonError(w, err.Error(), code)
}

// conversionStatus maps storage errors to HTTP status codes. Anything the
// caller can fix in the input is unprocessable.
func conversionStatus(err error) int {
	var perr *storage.ParseError
	switch {
	case errors.Is(err, storage.ErrMissingPageID),
		errors.Is(err, storage.ErrDuplicatePageID),
		errors.Is(err, storage.ErrMissingAttribute),
		errors.As(err, &perr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
