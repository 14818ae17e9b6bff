package main

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/muhammadolammi/resumeworker/internal/extractor"
	"github.com/muhammadolammi/resumeworker/internal/logger"
	"github.com/muhammadolammi/resumeworker/internal/render"
)

const maxUploadSize = 10 << 20

const uploadPage = `<!DOCTYPE html>
<html>
<head><title>Resume Parser</title></head>
<body>
<h2>Upload a resume (PDF, DOCX or TXT)</h2>
<form method="post" action="/parse" enctype="multipart/form-data">
<input type="file" name="resume">
<button type="submit">Parse</button>
</form>
</body>
</html>
`

type uploadServer struct {
	dispatcher *extractor.Dispatcher
	// uploadDir holds uploads while they are parsed; "" means the OS temp dir.
	uploadDir string
}

// setupRoutes configures the HTTP routes for the upload server
func setupRoutes(mux *http.ServeMux, s *uploadServer) {
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, uploadPage)
	})
	mux.HandleFunc("POST /parse", s.handleParse)
}

func (s *uploadServer) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("resume")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			http.Error(w, "No file part", http.StatusBadRequest)
			return
		}
		http.Error(w, "Error retrieving file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	log := logger.Ctx(r.Context()).With().Str("file", header.Filename).Logger()

	// unsupported uploads never touch the disk
	if !extractor.Supported(header.Filename) {
		log.Info().Msg("unsupported upload rejected")
		http.Error(w, "Could not parse the uploaded resume.", http.StatusBadRequest)
		return
	}

	path, err := s.saveUpload(file, header.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to store upload")
		http.Error(w, "Error saving file", http.StatusInternalServerError)
		return
	}
	defer os.Remove(path) // clean up uploaded file

	parsed, err := s.dispatcher.ParseFile(path)
	if err != nil {
		log.Info().Err(err).Msg("upload could not be parsed")
		http.Error(w, "Could not parse the uploaded resume.", http.StatusBadRequest)
		return
	}

	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		err = render.JSON(w, parsed)
	} else {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = render.HTML(w, parsed)
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to render resume")
	}
}

// saveUpload copies the upload to a temp file that keeps the original extension, which is
// what the extractor dispatches on.
func (s *uploadServer) saveUpload(src io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	dst, err := os.CreateTemp(s.uploadDir, "resume-*"+ext)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return dst.Name(), nil
}

func wantsJSON(r *http.Request) bool {
	if r.URL.Query().Get("format") == "json" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
