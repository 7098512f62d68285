package parser

import (
	"fmt"
	"path/filepath"
	"strings"
)

// InputKind names the kinds of input a statement can arrive in.
type InputKind string

const (
	Text InputKind = "text"
	PDF  InputKind = "pdf"
)

// DetectInputKind picks the input kind from the file extension.
func DetectInputKind(path string) (InputKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text":
		return Text, nil
	case ".pdf":
		return PDF, nil
	default:
		return "", fmt.Errorf("unsupported input file type: %s", path)
	}
}
