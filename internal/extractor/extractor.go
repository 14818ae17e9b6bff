// Package extractor turns resume files into plain-text lines and hands them to the
// extraction engine. Adapters are chosen by file extension for paths on disk and by MIME
// type for bytes fetched from object storage.
package extractor

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/muhammadolammi/resumeworker/internal/resume"
)

var (
	ErrNotFound          = errors.New("resume file not found")
	ErrUnsupportedFormat = errors.New("unsupported resume format")
	// ErrUnparseable marks the absent result: the caller gets no record at all.
	ErrUnparseable = errors.New("resume could not be parsed")
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

// textFunc decodes one document format into plain text.
type textFunc func(data []byte) (string, error)

type format struct {
	ext     string
	mime    string
	extract textFunc
}

var formats = []format{
	{ext: ".pdf", mime: MimePDF, extract: extractPDFText},
	{ext: ".docx", mime: MimeDOCX, extract: extractDocxText},
	{ext: ".txt", mime: MimeText, extract: extractPlainText},
}

func formatForExt(path string) (format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range formats {
		if f.ext == ext {
			return f, true
		}
	}
	return format{}, false
}

func formatForMime(contentType string) (format, bool) {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt = strings.ToLower(strings.TrimSpace(contentType))
	}
	for _, f := range formats {
		if f.mime == mt {
			return f, true
		}
	}
	return format{}, false
}

// MimeForExtension returns the MIME type of a supported file name, or "".
func MimeForExtension(name string) string {
	if f, ok := formatForExt(name); ok {
		return f.mime
	}
	return ""
}

// Supported reports whether name has an extension an adapter exists for.
func Supported(name string) bool {
	_, ok := formatForExt(name)
	return ok
}

// ExtractText decodes data of the given MIME type into plain text.
func ExtractText(contentType string, data []byte) (string, error) {
	f, ok := formatForMime(contentType)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, contentType)
	}
	return f.extract(data)
}

// ExtractFile reads path and decodes it with the adapter for its extension. The extension is
// checked before the file is touched.
func ExtractFile(path string) (string, error) {
	f, ok := formatForExt(path)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return f.extract(data)
}

// ExtractLines is ExtractFile split into lines.
func ExtractLines(path string) ([]string, error) {
	text, err := ExtractFile(path)
	if err != nil {
		return nil, err
	}
	return resume.SplitLines(text), nil
}
