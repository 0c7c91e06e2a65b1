package io

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/asciidag/pkg/dag"
	"github.com/matzehuels/asciidag/pkg/errors"
)

// Format identifies a graph file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath infers the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unsupported graph file extension: %q", filepath.Ext(path))
	}
}

// Decode reads a [Document] from r without building a DAG.
func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported graph format: %q", f)
	}
	return &doc, nil
}

// Read decodes a graph from r and builds a DAG from it.
//
// Unlike [Document.Validate], Read applies no size limits; callers reading
// untrusted input should [Decode], validate, then [Document.Build].
// Read does not close r.
func Read(r io.Reader, f Format) (*dag.DAG, error) {
	doc, err := Decode(r, f)
	if err != nil {
		return nil, err
	}
	return doc.Build()
}

// ReadJSON is Read with [FormatJSON].
func ReadJSON(r io.Reader) (*dag.DAG, error) { return Read(r, FormatJSON) }

// ReadTOML is Read with [FormatTOML].
func ReadTOML(r io.Reader) (*dag.DAG, error) { return Read(r, FormatTOML) }

// Import reads the graph file at path, choosing the decoder by extension.
// A path of "-" reads JSON from standard input.
func Import(path string) (*dag.DAG, error) {
	if path == "-" {
		return ReadJSON(os.Stdin)
	}
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer file.Close()

	g, err := Read(file, f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "read %s", path)
	}
	return g, nil
}
