package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ppiankov/geoshort/internal/extract"
)

// StdinPath names standard input wherever a file path is accepted
const StdinPath = "-"

// DefaultMaxInputBytes caps how much of one input is read
const DefaultMaxInputBytes = 2_000_000

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Loader reads shorthand input from files or standard input
type Loader struct {
	maxBytes int64
	stdin    io.Reader
}

// NewLoader creates a loader reading at most maxBytes per input
func NewLoader(maxBytes int64) *Loader {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxInputBytes
	}
	return &Loader{
		maxBytes: maxBytes,
		stdin:    os.Stdin,
	}
}

// Load returns the text at path, or standard input for "-". A leading BOM
// is dropped and invalid UTF-8 is replaced so the translator sees clean
// text. HTML files are reduced to the shorthand they show.
func (l *Loader) Load(path string) (string, error) {
	var r io.Reader
	if path == StdinPath {
		r = l.stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	// read one byte past the limit to tell "exactly at limit" from "over"
	data, err := io.ReadAll(io.LimitReader(r, l.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if int64(len(data)) > l.maxBytes {
		return "", fmt.Errorf("input larger than %d bytes", l.maxBytes)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	text := string(data)
	if !utf8.Valid(data) {
		text = strings.ToValidUTF8(text, "�")
	}

	if IsHTMLPath(path) {
		return extract.HTMLText(text)
	}
	return text, nil
}

// IsHTMLPath reports whether path names an HTML page
func IsHTMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// Subject derives a display name from an input path: the file name
// without extension, or "stdin"
func Subject(path string) string {
	if path == StdinPath || path == "" {
		return "stdin"
	}

	name := filepath.Base(path)
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}
