// internal/httpserver/routes_teacher.go
//
// HTTP routes for the teacher panel.
// Exposes three endpoints under /teacher:
//   - POST /teacher/words  → add one word (format always enforced)
//   - GET  /teacher/export → download the dictionary as words_updated.txt
//   - POST /teacher/import → replace the dictionary from an uploaded file
//
// Import accepts either a multipart upload (field "file") or a raw
// text/plain body, one word per line. An unreadable upload is reported as
// file_read_failed, distinct from any parse outcome.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nadiamel/huroof/apps/go-server/internal/dictionary"
	"github.com/nadiamel/huroof/apps/go-server/internal/session"
)

// maxImportBytes caps import uploads, multipart or raw.
const maxImportBytes = 4 << 20

// teacherServer wraps dependencies for /teacher endpoints.
type teacherServer struct {
	sess *session.Teacher
}

// mountTeacher registers all /teacher routes.
func (s *Server) mountTeacher(r chi.Router) {
	tt := &teacherServer{sess: session.NewTeacher(s.dict, s.blob)}
	r.Route("/teacher", func(r chi.Router) {
		r.Post("/words", tt.handleAdd)
		r.Get("/export", tt.handleExport)
		r.Post("/import", tt.handleImport)
	})
}

// -----------------------------------------------------------------------------
// POST /teacher/words

// addReq/addRes payloads for adding a word.
type addReq struct {
	Word string `json:"word"`
}
type addRes struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// handleAdd validates and appends one word, persisting on success.
// Error mapping: empty/format → 400, duplicate → 409.
func (tt *teacherServer) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req addReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	word, err := tt.sess.AddWord(r.Context(), req.Word)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrEmptyInput):
			http.Error(w, `{"error":"empty_input"}`, http.StatusBadRequest)
		case errors.Is(err, session.ErrInvalidFormat):
			http.Error(w, `{"error":"invalid_format"}`, http.StatusBadRequest)
		case errors.Is(err, dictionary.ErrAlreadyExists):
			http.Error(w, `{"error":"already_exists"}`, http.StatusConflict)
		default:
			http.Error(w, `{"error":"add_failed"}`, http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(addRes{Word: word, Count: tt.sess.Count()})
}

// -----------------------------------------------------------------------------
// GET /teacher/export

// handleExport streams the dictionary as a plain-text attachment.
func (tt *teacherServer) handleExport(w http.ResponseWriter, r *http.Request) {
	name, data := tt.sess.Export()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// -----------------------------------------------------------------------------
// POST /teacher/import

// importRes is returned by /teacher/import.
type importRes struct {
	Imported int `json:"imported"`
}

// handleImport replaces the dictionary from an uploaded word list.
// Oversized uploads surface as a read failure, same as unreadable ones.
func (tt *teacherServer) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	contents, err := readImportBody(r)
	if err != nil {
		http.Error(w, `{"error":"file_read_failed"}`, http.StatusBadRequest)
		return
	}
	count := tt.sess.Import(r.Context(), contents)
	_ = json.NewEncoder(w).Encode(importRes{Imported: count})
}

// readImportBody extracts the uploaded word list, from a multipart "file"
// part when present, otherwise from the raw request body.
func readImportBody(r *http.Request) (string, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImportBytes); err != nil {
			return "", err
		}
		f, _, err := r.FormFile("file")
		if err != nil {
			return "", err
		}
		defer f.Close()
		b, err := io.ReadAll(f)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
