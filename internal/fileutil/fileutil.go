// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultOutputName is the output filename used when the caller supplies
// no hint.
const DefaultOutputName = "output.pdf"

// TempPDFPath allocates a uniquely named temporary file with a .pdf
// extension and returns its path. The file is created empty and closed;
// the caller overwrites it and owns its removal.
func TempPDFPath() (string, error) {
	tmpFile, err := os.CreateTemp("", "txt2pdf-*.pdf")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	path := tmpFile.Name()
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	return path, nil
}

// OutputName resolves the output filename for a conversion.
//
// A hint that differs from the default wins. Otherwise, when the input
// came from a file, the name derives from the input's base name with
// its extension replaced by .pdf. With neither, the default is used.
//
// Examples:
//   - OutputName("notes.md", "")           -> "notes.pdf"
//   - OutputName("notes.md", "output.pdf") -> "notes.pdf"
//   - OutputName("notes.md", "report.pdf") -> "report.pdf"
//   - OutputName("", "")                   -> "output.pdf"
func OutputName(inputPath, hint string) string {
	if hint != "" && hint != DefaultOutputName {
		return hint
	}
	if inputPath != "" {
		base := filepath.Base(inputPath)
		return strings.TrimSuffix(base, filepath.Ext(base)) + ".pdf"
	}
	return DefaultOutputName
}

// IsMarkdownFile reports whether path has a .md extension
// (case-insensitive). Anything else, including .markdown, defaults to
// plain text; the caller's explicit flag always wins over this
// inference.
func IsMarkdownFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".md")
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsDir returns true if the path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather
// than a bare name. A string containing path separators (/, \) is
// treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
